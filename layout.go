package lattice

// Layout computes the absolute screen rectangle and content-inclusive bounds
// for this control and (unless collapsed) its whole subtree. It is meant to
// be called once per frame on the root; starting mid-tree still produces a
// locally-consistent answer from whatever container chain exists.
//
// Ancestor offsets accumulate through container positions only, never through
// resolved screen rects: margins apply at each control's own level and do not
// nest, so resolving a control costs two additions per ancestor level.
func (c *Control) Layout() {
	if c.Parent == nil {
		c.parentScreenPos = Vec2{}
	} else {
		c.parentScreenPos = c.Parent.parentScreenPos.Add(c.Parent.Position)
	}

	// Margins shrink the rect from both edges. Negative extents are left
	// as-is: callers must not rely on non-negativity.
	c.screenRect = Rect{
		X:      c.parentScreenPos.X + c.Position.X + c.MarginTopLeft.X,
		Y:      c.parentScreenPos.Y + c.Position.Y + c.MarginTopLeft.Y,
		Width:  c.Size.X - c.MarginTopLeft.X - c.MarginBottomRight.X,
		Height: c.Size.Y - c.MarginTopLeft.Y - c.MarginBottomRight.Y,
	}

	if c.widget != nil {
		c.widget.OnLayoutGeometry(c)
	}

	if c.Visibility == Collapsed {
		// Collapsed controls occupy no area and their children keep the
		// stale geometry of the previous pass, if any.
		c.bounds = Rect{X: c.Position.X, Y: c.Position.Y}
	} else {
		for _, child := range c.children {
			child.Layout()
		}
		b := Rect{Width: c.Size.X, Height: c.Size.Y}.Union(c.GetContentBounds())
		b.X += c.Position.X
		b.Y += c.Position.Y
		c.bounds = b
	}

	if c.widget != nil {
		c.widget.OnAfterLayout(c)
	}
}

// GetContentBounds returns the minimal rectangle enclosing the children's
// local position+size extents, with the top-left clamped to not exceed the
// origin. A collapsed child contributes no extent but its position can still
// pull the minimum corner; with no children the result is a zero rect at
// the origin.
func (c *Control) GetContentBounds() Rect {
	var minX, minY, maxX, maxY float64
	for _, child := range c.children {
		if child.Visibility != Collapsed {
			maxX = max(maxX, child.Position.X+child.Size.X)
			maxY = max(maxY, child.Position.Y+child.Size.Y)
		}
		minX = min(minX, child.Position.X)
		minY = min(minY, child.Position.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
