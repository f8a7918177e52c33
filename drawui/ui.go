// Package drawui shows a splitter in a devdraw window.
//
// You run the event loop yourself: receive from UI.Inputs and
// pass each value to UI.Input. Functions sent on UI.Call run from that
// loop too, and may change the splitter.
package drawui

import (
	"image"
	"io"
	"sync"

	"9fans.net/go/draw"
	"github.com/rs/zerolog"

	"github.com/mjl-/splitter"
)

const (
	Button1 = 1 << iota
	Button2
	Button3
)

type InputType byte

const (
	InputMouse = InputType(iota)
	InputKey
	InputFunc
	InputResize
	InputError
)

type Input struct {
	Type  InputType
	Mouse draw.Mouse
	Key   rune
	Func  func()
	Error error
}

// Pane backgrounds, used in order.
var paneColors = []draw.Color{0xdce6f2ff, 0xf2e6dcff, 0xe2f2dcff, 0xf2dcecff, 0xeeeeeeff}

// UI is a window with panes laid out by a splitter.
type UI struct {
	Inputs  chan Input
	Call    chan func()   // Functions sent here are run by Input in the main loop.
	Done    chan struct{} // Closed when the window is gone.
	Display *draw.Display

	host  *host
	split *splitter.Splitter
	panes []*Pane
	log   zerolog.Logger

	background,
	sashNormal,
	sashActive *draw.Image
	paneColors []*draw.Image

	stop          chan struct{}
	doneOnce      sync.Once
	mousectl      *draw.Mousectl
	keyctl        *draw.Keyboardctl
	mouse         draw.Mouse
	dragging      bool
	draggingIndex int
}

// New opens a window with a pane for each title and lays them out
// evenly. Dim is the window size, like "800x600".
func New(name, dim string, cfg splitter.Config, titles []string, log zerolog.Logger) (ui *UI, err error) {
	errch := make(chan error, 1)
	display, err := draw.Init(errch, "", name, dim)
	if err != nil {
		return nil, err
	}

	check, handle := errorHandler(func(xerr error) {
		display.Close()
		ui = nil
		err = xerr
	})
	defer handle()

	makeColor := func(v draw.Color) *draw.Image {
		c, err := display.AllocImage(image.Rect(0, 0, 1, 1), draw.ARGB32, true, v)
		check(err, "allocimage")
		return c
	}

	ui = &UI{
		Inputs:  make(chan Input, 1),
		Call:    make(chan func(), 1),
		Done:    make(chan struct{}),
		Display: display,

		host: &host{},
		log:  log.With().Str("component", "drawui").Logger(),

		background: makeColor(0xfcfcfcff),
		sashNormal: makeColor(draw.Color(cfg.Sash.Color)),
		sashActive: makeColor(0x3272dcff),

		stop:     make(chan struct{}, 1),
		mousectl: display.InitMouse(),
		keyctl:   display.InitKeyboard(),
	}
	for _, c := range paneColors {
		ui.paneColors = append(ui.paneColors, makeColor(c))
	}

	rects := make([]splitter.Rect, len(titles))
	for i, t := range titles {
		p := &Pane{Title: t}
		p.Sz = splitter.Vec{1, 1}
		ui.panes = append(ui.panes, p)
		rects[i] = p
	}
	ui.host.resize(display.ScreenImage.R.Size())
	ui.split = splitter.New(ui.host, rects, cfg, splitter.WithLogger(log))

	go func() {
		for {
			select {
			case m := <-ui.mousectl.C:
				ui.Inputs <- Input{Type: InputMouse, Mouse: m}
			case k := <-ui.keyctl.C:
				ui.Inputs <- Input{Type: InputKey, Key: k}
			case <-ui.mousectl.Resize:
				ui.Inputs <- Input{Type: InputResize}
			case fn := <-ui.Call:
				ui.Inputs <- Input{Type: InputFunc, Func: fn}
			case <-ui.stop:
				return
			case e := <-errch:
				if e == io.EOF {
					// devdraw went away, typically because the window was closed.
					ui.done()
					return
				}
				ui.Inputs <- Input{Type: InputError, Error: e}
			}
		}
	}()

	ui.Draw()
	return ui, nil
}

// Splitter returns the splitter laying out the panes.
func (ui *UI) Splitter() *splitter.Splitter {
	return ui.split
}

// Input handles an event received from Inputs.
func (ui *UI) Input(e Input) {
	switch e.Type {
	case InputMouse:
		ui.Mouse(e.Mouse)
	case InputKey:
		ui.Key(e.Key)
	case InputResize:
		ui.Resize()
	case InputFunc:
		e.Func()
		ui.Draw()
	case InputError:
		ui.log.Error().Err(e.Error).Msg("error from devdraw")
	}
}

// Mouse starts a drag when button 1 goes down on a sash, and moves the
// sash while the button stays down.
func (ui *UI) Mouse(m draw.Mouse) {
	m.Point = m.Point.Sub(ui.Display.ScreenImage.R.Min)
	defer func() {
		ui.mouse = m
	}()

	if m.Buttons == Button1 && ui.mouse.Buttons == 0 {
		index := sashAt(ui.split.Sashes(), m.Point, ui.scale(1))
		if index >= 0 {
			ui.dragging = true
			ui.draggingIndex = index
			ui.Draw()
		}
		return
	}
	if !ui.dragging {
		return
	}
	if m.Buttons != Button1 {
		ui.dragging = false
		ui.Draw()
		return
	}
	sashes := ui.split.Sashes()
	if ui.draggingIndex >= len(sashes) {
		ui.dragging = false
		return
	}
	delta := ui.split.Config().Axis.ScreenDelta(m.Point.Sub(ui.mouse.Point))
	if delta != 0 && sashes[ui.draggingIndex].Drag(delta) {
		ui.Draw()
	}
}

func (ui *UI) Key(k rune) {
	switch k {
	case 'q', draw.KeyCmd + 'w':
		ui.Close()
		ui.done()
	}
}

func (ui *UI) done() {
	ui.doneOnce.Do(func() {
		close(ui.Done)
	})
}

// Resize reattaches to the resized window and lays out again.
func (ui *UI) Resize() {
	if err := ui.Display.Attach(draw.Refmesg); err != nil {
		ui.log.Error().Err(err).Msg("attach after resize")
		return
	}
	ui.host.resize(ui.Display.ScreenImage.R.Size())
	ui.split.Resize()
	ui.Draw()
}

// Draw paints all panes and sashes and flushes the display.
func (ui *UI) Draw() {
	img := ui.Display.ScreenImage
	orig := img.R.Min
	img.Draw(img.R, ui.background, nil, image.ZP)
	for i, p := range ui.panes {
		r := splitter.ImageRect(p).Add(orig)
		img.Draw(r, ui.paneColors[i%len(ui.paneColors)], nil, image.ZP)
		img.String(r.Min.Add(image.Pt(ui.scale(4), ui.scale(2))), ui.Display.Black, image.ZP, ui.Display.DefaultFont, p.Title)
	}
	for i, s := range ui.split.Sashes() {
		c := ui.sashNormal
		if ui.dragging && i == ui.draggingIndex {
			c = ui.sashActive
		}
		img.Draw(splitter.ImageRect(s.View()).Add(orig), c, nil, image.ZP)
	}
	if err := ui.Display.Flush(); err != nil {
		ui.log.Error().Err(err).Msg("flush")
	}
}

// Close stops forwarding events and closes the display.
func (ui *UI) Close() {
	ui.stop <- struct{}{}
	ui.Display.Close()
}

func (ui *UI) scale(n int) int {
	return (ui.Display.DPI / 100) * n
}
