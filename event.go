package lattice

import "github.com/hajimehoshi/ebiten/v2"

// Event is a single tagged input event from the host. Only the fields
// matching Type are meaningful; payloads are forwarded to hooks verbatim and
// are otherwise opaque to the engine.
type Event struct {
	Type EventType

	// Mouse events: absolute cursor position; Delta is the movement since
	// the previous frame (mouse-drag, mouse-move) or the wheel offset
	// (scroll-wheel).
	Position Vec2
	Delta    Vec2
	Button   MouseButton

	// Key events.
	Key  ebiten.Key
	Rune rune

	Modifiers KeyModifiers

	// Command events (execute-command, validate-command).
	Command string

	// Drag-and-drop payload (drag-updated, drag-perform, drag-exited).
	DragData any
}

// ProcessEvents routes ev through this control's subtree in pre-order:
// the control's own typed hook first, then each child in child-list order.
// Visibility and enabled state do not suppress delivery — that policy, when
// wanted, belongs to widgets. A nil event is a no-op.
//
// The first hook to return Consumed stops the traversal immediately: no
// remaining siblings or subtrees are visited at any recursion level.
func (c *Control) ProcessEvents(ev *Event) EventResult {
	if ev == nil {
		return Ignored
	}
	if c.dispatchEvent(ev) == Consumed {
		return Consumed
	}
	for _, child := range c.children {
		if child.ProcessEvents(ev) == Consumed {
			return Consumed
		}
	}
	return Ignored
}

// dispatchEvent invokes exactly one typed hook for ev's kind.
// Unrecognized kinds (and controls with no widget) dispatch to nothing.
func (c *Control) dispatchEvent(ev *Event) EventResult {
	w := c.widget
	if w == nil {
		return Ignored
	}
	switch ev.Type {
	case EventContextClick:
		return w.OnContextClick(c, ev)
	case EventDragExited:
		return w.OnDragExited(c, ev)
	case EventDragPerform:
		return w.OnDragPerform(c, ev)
	case EventDragUpdated:
		return w.OnDragUpdated(c, ev)
	case EventExecuteCommand:
		return w.OnExecuteCommand(c, ev)
	case EventIgnore:
		return w.OnIgnore(c, ev)
	case EventKeyDown:
		return w.OnKeyDown(c, ev)
	case EventKeyUp:
		return w.OnKeyUp(c, ev)
	case EventLayout:
		return w.OnLayoutEvent(c, ev)
	case EventMouseDown:
		return w.OnMouseDown(c, ev)
	case EventMouseDrag:
		return w.OnMouseDrag(c, ev)
	case EventMouseMove:
		return w.OnMouseMove(c, ev)
	case EventMouseUp:
		return w.OnMouseUp(c, ev)
	case EventRepaint:
		return w.OnRepaint(c, ev)
	case EventScrollWheel:
		return w.OnScrollWheel(c, ev)
	case EventUsed:
		return w.OnUsed(c, ev)
	case EventValidateCommand:
		return w.OnValidateCommand(c, ev)
	}
	return Ignored
}
