package lattice

// Control is the fundamental tree element. A single flat struct carries the
// hierarchy links, author-set geometry, state flags, and computed layout
// outputs; behavior is supplied by an optional Widget.
type Control struct {
	// Hierarchy. Parent is a non-owning back-reference used only to avoid
	// re-walking ancestors; never traverse it for ownership decisions.
	Parent   *Control
	children []*Control

	// Geometry inputs, in parent-local space.
	Position          Vec2
	Size              Vec2
	MarginTopLeft     Vec2
	MarginBottomRight Vec2

	// State flags. Enabled suppresses drawing appearance only; it is not
	// pushed into children's own flags.
	Enabled    bool
	Visibility Visibility

	widget Widget

	// Computed by Layout. Valid only until the next geometry mutation.
	bounds          Rect
	screenRect      Rect
	parentScreenPos Vec2

	dirty bool
}

// NewControl creates a detached control with zero geometry, Enabled true,
// and Visible visibility.
func NewControl() *Control {
	return &Control{Enabled: true}
}

// --- Tree manipulation ---

// AddChild appends child to this control's children and sets its back-reference.
// No cycle or double-attach checking is performed: adding a control that is
// still attached elsewhere, or an ancestor of this control, is a caller error
// with undefined traversal results. Nil child is a no-op.
func (c *Control) AddChild(child *Control) {
	if child == nil {
		return
	}
	child.Parent = c
	c.children = append(c.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(c)
	}
}

// AddChildAt inserts child at the given index. Indexes outside [0, len] are
// clamped. Same caller contract as AddChild.
func (c *Control) AddChildAt(child *Control, index int) {
	if child == nil {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(c.children) {
		index = len(c.children)
	}
	child.Parent = c
	c.children = append(c.children, nil)
	copy(c.children[index+1:], c.children[index:])
	c.children[index] = child
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(c)
	}
}

// RemoveChild detaches child from this control. Guarded: it only mutates
// state when child's current container is this control; detaching a control
// someone else owns is a silent no-op, not an error.
func (c *Control) RemoveChild(child *Control) {
	if child == nil || child.Parent != c {
		return
	}
	c.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this control from its container.
// No-op if this control has no container.
func (c *Control) RemoveFromParent() {
	if c.Parent == nil {
		return
	}
	c.Parent.RemoveChild(c)
}

// RemoveChildren detaches all children from this control.
func (c *Control) RemoveChildren() {
	for _, child := range c.children {
		child.Parent = nil
	}
	c.children = c.children[:0]
}

// Children returns the child list in traversal (z) order.
// The returned slice MUST NOT be mutated by the caller.
func (c *Control) Children() []*Control {
	return c.children
}

// NumChildren returns the number of children.
func (c *Control) NumChildren() int {
	return len(c.children)
}

// ChildAt returns the child at the given index.
func (c *Control) ChildAt(index int) *Control {
	return c.children[index]
}

// removeChildByPtr removes child from c.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (c *Control) removeChildByPtr(child *Control) {
	for i, ch := range c.children {
		if ch == child {
			copy(c.children[i:], c.children[i+1:])
			c.children[len(c.children)-1] = nil
			c.children = c.children[:len(c.children)-1]
			return
		}
	}
}

// --- Fluent configuration setters ---
//
// Setters mutate exactly one field and return the control for chaining at
// construction time. They do not mark the control dirty: repaint signalling
// is the caller's responsibility (see SetDirty).

// SetPosition sets the control's local position.
func (c *Control) SetPosition(x, y float64) *Control {
	c.Position = Vec2{x, y}
	return c
}

// SetPositionVec sets the control's local position from a Vec2.
func (c *Control) SetPositionVec(p Vec2) *Control {
	c.Position = p
	return c
}

// SetSize sets the control's size.
func (c *Control) SetSize(w, h float64) *Control {
	c.Size = Vec2{w, h}
	return c
}

// SetSizeVec sets the control's size from a Vec2.
func (c *Control) SetSizeVec(s Vec2) *Control {
	c.Size = s
	return c
}

// SetMargin sets all four margins: left/top shrink from the top-left edge,
// right/bottom from the bottom-right edge.
func (c *Control) SetMargin(left, top, right, bottom float64) *Control {
	c.MarginTopLeft = Vec2{left, top}
	c.MarginBottomRight = Vec2{right, bottom}
	return c
}

// SetMarginVec sets the margins from two Vec2 values.
func (c *Control) SetMarginVec(topLeft, bottomRight Vec2) *Control {
	c.MarginTopLeft = topLeft
	c.MarginBottomRight = bottomRight
	return c
}

// SetWidget attaches the widget that receives this control's hooks.
func (c *Control) SetWidget(w Widget) *Control {
	c.widget = w
	return c
}

// Widget returns the attached widget, or nil.
func (c *Control) Widget() Widget {
	return c.widget
}

// SetEnabled sets the enabled flag.
func (c *Control) SetEnabled(enabled bool) *Control {
	c.Enabled = enabled
	return c
}

// SetVisibility sets the visibility state.
func (c *Control) SetVisibility(v Visibility) *Control {
	c.Visibility = v
	return c
}

// --- Dirty flag ---

// SetDirty sets the control's dirty flag. Setting true also marks every
// ancestor up to the root (idempotent when an ancestor is already dirty);
// setting false clears only this control — clearing a subtree is explicit,
// owned by whoever performed the repaint.
func (c *Control) SetDirty(dirty bool) {
	c.dirty = dirty
	if !dirty {
		return
	}
	for p := c.Parent; p != nil; p = p.Parent {
		p.dirty = true
	}
}

// IsDirty reports whether this control has been marked dirty since the
// last clear.
func (c *Control) IsDirty() bool {
	return c.dirty
}

// --- Computed geometry accessors ---
//
// Outputs of the most recent Layout call. They are stale after any geometry
// mutation until Layout runs again, and are never authored directly.

// Bounds returns the control's content-inclusive bounding box in the
// parent's local space.
func (c *Control) Bounds() Rect {
	return c.bounds
}

// ScreenRect returns the control's absolute rectangle after margin and
// ancestor-offset accumulation.
func (c *Control) ScreenRect() Rect {
	return c.screenRect
}

// ParentScreenPosition returns the cached absolute offset of the container,
// as captured by the last Layout call.
func (c *Control) ParentScreenPosition() Vec2 {
	return c.parentScreenPos
}
