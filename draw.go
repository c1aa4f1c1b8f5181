package lattice

// DrawContext is the collaborator the draw pass hands to widget hooks. The
// engine itself only uses the disabled-scope primitive; concrete backends
// (see PaintContext) expose whatever painting surface their widgets need.
//
// BeginDisabled and EndDisabled nest: the region is disabled while at least
// one scope is open. The draw pass always closes what it opened.
type DrawContext interface {
	BeginDisabled()
	EndDisabled()
	Disabled() bool
}

// Draw paints this control's subtree through ctx.
//
// The enabled flag is snapshotted once at entry: a draw hook may flip
// Enabled mid-call (a button action firing synchronously) and the closing
// EndDisabled must still match the opening decision, or the backend's scope
// stack would be left unbalanced. Children paint before the control's own
// draw hook, so containers paint frames over their content. Hidden and
// collapsed controls fire no hooks and draw no children, but the disabled
// scope around their no-op subtree still opens and closes symmetrically.
func (c *Control) Draw(ctx DrawContext) {
	disabled := !c.Enabled
	if disabled {
		ctx.BeginDisabled()
	}
	if c.Visibility == Visible {
		if c.widget != nil {
			c.widget.OnBeforeDraw(c, ctx)
		}
		for _, child := range c.children {
			child.Draw(ctx)
		}
		if c.widget != nil {
			c.widget.OnDraw(c, ctx)
		}
	}
	if disabled {
		ctx.EndDisabled()
	}
}
