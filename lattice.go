package lattice

// Vec2 is a 2D vector used for positions, sizes, margins, and offsets
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Width and Height may be negative:
// layout never clamps (a control can request more margin than size).
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the smallest rectangle enclosing both r and other.
func (r Rect) Union(other Rect) Rect {
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.X+r.Width, other.X+other.Width) - x,
		Height: max(r.Y+r.Height, other.Y+other.Height) - y,
	}
}

// Visibility controls how a Control participates in layout and drawing.
type Visibility uint8

const (
	Visible   Visibility = iota // laid out and drawn (default)
	Hidden                      // laid out but not drawn
	Collapsed                   // not drawn; zero bounds; children skipped by layout
)

// EventType identifies a kind of system event delivered to ProcessEvents.
// The set is closed: an unrecognized value dispatches to nothing.
type EventType uint8

const (
	EventContextClick    EventType = iota // right-click / context menu request
	EventDragExited                       // a drag operation left the window
	EventDragPerform                      // a drag payload was dropped
	EventDragUpdated                      // a drag operation moved over the window
	EventExecuteCommand                   // a named command should execute
	EventIgnore                           // the host discarded this event
	EventKeyDown                          // a key was pressed
	EventKeyUp                            // a key was released
	EventLayout                           // frame-phase notification before drawing
	EventMouseDown                        // a mouse button was pressed
	EventMouseDrag                        // the mouse moved with a button held
	EventMouseMove                        // the mouse moved with no button held
	EventMouseUp                          // a mouse button was released
	EventRepaint                          // frame-phase notification after input
	EventScrollWheel                      // the scroll wheel moved
	EventUsed                             // another recipient already used this event
	EventValidateCommand                  // a named command queries availability
)

// EventResult reports whether a dispatch step consumed the event.
// Consumed stops the traversal immediately at every recursion level.
type EventResult uint8

const (
	Ignored  EventResult = iota // event not handled; traversal continues
	Consumed                    // event handled; no further controls see it
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
