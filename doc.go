/*
Package splitter lays out panes side by side or stacked, with a draggable sash between each pair of adjacent panes.

The splitter does not draw anything itself. A Host supplies the container size, adopts the panes and creates and destroys the rectangles for sashes. The tui package is a host for terminals, drawui is a host for devdraw windows. Both call Resize when the container changes size, and Sash.Drag while a sash is being dragged.

Layout

Each pane has a logical size along the axis, taken from the pane when the splitter is created. On Layout, every pane is first raised to Config.MinSize. The space left after the minimums and sashes is then divided among the panes in proportion to how much each was above the minimum. If the container is too small to give every pane its minimum, all panes get an equal share instead and may end up below the minimum.

Coordinates are relative to the top-left corner of the container, with Y pointing up. Vertical splitters therefore place panes at negative Y.

Dragging

Dragging a sash moves space from one neighbouring pane to the other, never more than keeps both at or above the minimum size. Other panes are not touched and no full Layout is done, only the two cached sizes are refreshed.

All calls must be made from the goroutine handling the host's events.
*/
package splitter
