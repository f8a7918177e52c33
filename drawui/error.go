package drawui

import (
	"fmt"
)

// errorHandler returns a check function that aborts by panicking with
// a wrapped error, and a handle function to defer, which recovers such
// panics and passes the error to fn. Other panics are passed on.
func errorHandler(fn func(xerr error)) (func(error, string), func()) {
	type localError struct {
		err error
	}

	check := func(err error, msg string) {
		if err != nil {
			panic(&localError{fmt.Errorf("%s: %w", msg, err)})
		}
	}
	handle := func() {
		e := recover()
		if e == nil {
			return
		}
		if le, ok := e.(*localError); ok {
			fn(le.err)
		} else {
			panic(e)
		}
	}
	return check, handle
}
