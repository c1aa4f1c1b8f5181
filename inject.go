package lattice

import "github.com/hajimehoshi/ebiten/v2"

// Inject queues a synthetic event for delivery ahead of hardware input.
// One injected event is consumed per frame, so sequences pace themselves
// the way real input would. Useful for automated tests and demos.
func (h *Host) Inject(ev Event) {
	h.injectQueue = append(h.injectQueue, ev)
}

// InjectClick queues a left-button mouse-down followed by a mouse-up at the
// same position. Consumes two frames.
func (h *Host) InjectClick(x, y float64) {
	pos := Vec2{x, y}
	h.Inject(Event{Type: EventMouseDown, Position: pos, Button: MouseButtonLeft})
	h.Inject(Event{Type: EventMouseUp, Position: pos, Button: MouseButtonLeft})
}

// InjectKey queues a key-down followed by a key-up for the given key.
// Consumes two frames.
func (h *Host) InjectKey(key ebiten.Key) {
	h.Inject(Event{Type: EventKeyDown, Key: key})
	h.Inject(Event{Type: EventKeyUp, Key: key})
}

// InjectCommand queues an execute-command event carrying the given name.
func (h *Host) InjectCommand(name string) {
	h.Inject(Event{Type: EventExecuteCommand, Command: name})
}

// InjectPending reports how many injected events are waiting for delivery.
func (h *Host) InjectPending() int {
	return len(h.injectQueue)
}

// popInjected removes and returns the oldest injected event, if any.
func (h *Host) popInjected() (Event, bool) {
	if len(h.injectQueue) == 0 {
		return Event{}, false
	}
	ev := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]
	return ev, true
}
