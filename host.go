package lattice

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PaintContext is the ebiten-backed DrawContext. Widget draw hooks that know
// they run under a Host can type-assert their DrawContext to *PaintContext
// and paint onto Screen directly.
type PaintContext struct {
	screen        *ebiten.Image
	disabledDepth int
}

// Screen returns the frame's target image. Only valid inside a draw hook.
func (p *PaintContext) Screen() *ebiten.Image {
	return p.screen
}

// BeginDisabled opens a disabled-appearance scope. Scopes nest.
func (p *PaintContext) BeginDisabled() {
	p.disabledDepth++
}

// EndDisabled closes the innermost disabled scope.
// Unbalanced calls are clamped rather than underflowing.
func (p *PaintContext) EndDisabled() {
	if p.disabledDepth > 0 {
		p.disabledDepth--
	}
}

// Disabled reports whether at least one disabled scope is open. Widgets use
// this to pick a grayed-out appearance.
func (p *PaintContext) Disabled() bool {
	return p.disabledDepth > 0
}

// Host owns a control tree and drives the per-frame protocol: Layout, then
// event dispatch, then Draw, strictly sequentially on one goroutine. It
// implements ebiten.Game so it can be passed to ebiten.RunGame directly
// (or use the Run convenience).
type Host struct {
	root *Control
	ctx  PaintContext

	injectQueue []Event

	// Polled input state carried across frames.
	prevCursor   Vec2
	cursorValid  bool
	heldButton   MouseButton
	buttonHeld   bool
	justPressed  []ebiten.Key
	justReleased []ebiten.Key

	needsRepaint bool
	debug        bool
}

// NewHost creates a host driving the given root control.
func NewHost(root *Control) *Host {
	return &Host{root: root}
}

// Root returns the tree this host drives.
func (h *Host) Root() *Control {
	return h.root
}

// NeedsRepaint reports whether any control marked itself dirty during the
// most recent Tick. The flag is the end-of-frame repaint decision; Draw
// clears the tree's dirty flags after painting.
func (h *Host) NeedsRepaint() bool {
	return h.needsRepaint
}

// SetDebugMode enables or disables debug mode. When enabled, suspicious tree
// shapes warn on stderr and per-frame pass timings are logged.
func (h *Host) SetDebugMode(enabled bool) {
	h.debug = enabled
	globalDebug = enabled
}

// Update implements ebiten.Game: it gathers this frame's events (injected
// first, then polled hardware input) and runs one Tick.
func (h *Host) Update() error {
	return h.Tick(h.gatherEvents())
}

// Tick runs one frame's layout and event dispatch with the given events.
// The tree sees the frame-phase EventLayout notification first, then each
// event in order, then EventRepaint. Tests drive frames through Tick
// directly, with no ebiten loop behind them.
func (h *Host) Tick(events []Event) error {
	var stats frameStats
	var t0 time.Time
	if h.debug {
		t0 = time.Now()
	}

	h.root.Layout()

	if h.debug {
		stats.layoutTime = time.Since(t0)
		t0 = time.Now()
	}

	phase := Event{Type: EventLayout}
	h.root.ProcessEvents(&phase)
	for i := range events {
		h.root.ProcessEvents(&events[i])
	}
	phase = Event{Type: EventRepaint}
	h.root.ProcessEvents(&phase)

	h.needsRepaint = h.root.IsDirty()

	if h.debug {
		stats.eventTime = time.Since(t0)
		stats.eventCount = len(events)
		stats.repaint = h.needsRepaint
		h.debugLog(stats)
	}
	return nil
}

// Draw implements ebiten.Game: it paints the tree through a PaintContext and
// then clears the whole tree's dirty flags — clearing is explicit and owned
// by whoever performed the repaint.
func (h *Host) Draw(screen *ebiten.Image) {
	h.ctx.screen = screen
	h.root.Draw(&h.ctx)
	h.ctx.screen = nil
	clearDirtyTree(h.root)
	h.needsRepaint = false
}

// Layout implements ebiten.Game. The root control tracks the screen size;
// a resize dirties the tree so the next frame repaints.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := Vec2{float64(outsideWidth), float64(outsideHeight)}
	if h.root.Size != size {
		h.root.Size = size
		h.root.SetDirty(true)
	}
	return outsideWidth, outsideHeight
}

// clearDirtyTree clears dirty on the whole subtree. SetDirty(false) is
// deliberately local, so subtree clearing walks every node.
func clearDirtyTree(c *Control) {
	c.SetDirty(false)
	for _, child := range c.children {
		clearDirtyTree(child)
	}
}

// --- Hardware input translation ---

// gatherEvents collects this frame's events. At most one injected event is
// consumed per frame (so an injected press/release pair spans two frames,
// like real input); when one is consumed, hardware polling is skipped for
// the frame.
func (h *Host) gatherEvents() []Event {
	if ev, ok := h.popInjected(); ok {
		return []Event{ev}
	}
	return h.pollInput(nil)
}

// pollInput appends the frame's hardware input events to buf: cursor
// motion (move or drag depending on button state), button edges, wheel,
// and key edges.
func (h *Host) pollInput(buf []Event) []Event {
	mods := readModifiers()
	mx, my := ebiten.CursorPosition()
	cursor := Vec2{float64(mx), float64(my)}

	// Button press/release edges. Only one held button is tracked at a
	// time; the first pressed wins until released.
	for _, b := range []struct {
		eb ebiten.MouseButton
		lb MouseButton
	}{
		{ebiten.MouseButtonLeft, MouseButtonLeft},
		{ebiten.MouseButtonRight, MouseButtonRight},
		{ebiten.MouseButtonMiddle, MouseButtonMiddle},
	} {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			buf = append(buf, Event{Type: EventMouseDown, Position: cursor, Button: b.lb, Modifiers: mods})
			if !h.buttonHeld {
				h.buttonHeld = true
				h.heldButton = b.lb
			}
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			buf = append(buf, Event{Type: EventMouseUp, Position: cursor, Button: b.lb, Modifiers: mods})
			if h.buttonHeld && h.heldButton == b.lb {
				h.buttonHeld = false
			}
		}
	}

	// Cursor motion: drag while a button is held, plain move otherwise.
	if h.cursorValid && cursor != h.prevCursor {
		delta := cursor.Sub(h.prevCursor)
		typ := EventMouseMove
		var button MouseButton
		if h.buttonHeld {
			typ = EventMouseDrag
			button = h.heldButton
		}
		buf = append(buf, Event{Type: typ, Position: cursor, Delta: delta, Button: button, Modifiers: mods})
	}
	h.prevCursor = cursor
	h.cursorValid = true

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		buf = append(buf, Event{Type: EventScrollWheel, Position: cursor, Delta: Vec2{wx, wy}, Modifiers: mods})
	}

	h.justPressed = inpututil.AppendJustPressedKeys(h.justPressed[:0])
	for _, k := range h.justPressed {
		buf = append(buf, Event{Type: EventKeyDown, Key: k, Modifiers: mods})
	}
	h.justReleased = inpututil.AppendJustReleasedKeys(h.justReleased[:0])
	for _, k := range h.justReleased {
		buf = append(buf, Event{Type: EventKeyUp, Key: k, Modifiers: mods})
	}

	return buf
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// --- Run convenience ---

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int // window width in pixels (default 640)
	Height int // window height in pixels (default 480)
}

// Run creates a window and game loop for the given tree and blocks until the
// window closes. For full control, implement ebiten.Game yourself or embed a
// Host in your own game.
func Run(root *Control, cfg RunConfig) error {
	w, ht := cfg.Width, cfg.Height
	if w <= 0 {
		w = 640
	}
	if ht <= 0 {
		ht = 480
	}
	ebiten.SetWindowSize(w, ht)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(NewHost(root))
}
