package lattice

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Control simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenSize,
// TweenMargins) and call Update(dt) each frame. The group auto-applies
// values and marks the control dirty, so a Host driving the tree sees the
// animation in its end-of-frame repaint decision.
//
// There is no global animation manager — users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Control
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target
// fields, and marks the control dirty.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.SetDirty(true)
	}
}

// TweenPosition creates a TweenGroup that animates the control's local
// position to the given coordinates over the specified duration using the
// easing function.
func TweenPosition(c *Control, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: c}
	g.tweens[0] = gween.New(float32(c.Position.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(c.Position.Y), float32(toY), duration, fn)
	g.fields[0] = &c.Position.X
	g.fields[1] = &c.Position.Y
	return g
}

// TweenSize creates a TweenGroup that animates the control's size to the
// given extents over the specified duration using the easing function.
func TweenSize(c *Control, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: c}
	g.tweens[0] = gween.New(float32(c.Size.X), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(c.Size.Y), float32(toH), duration, fn)
	g.fields[0] = &c.Size.X
	g.fields[1] = &c.Size.Y
	return g
}

// TweenMargins creates a TweenGroup that animates all four margin components
// to the target top-left and bottom-right values over the specified duration.
func TweenMargins(c *Control, topLeft, bottomRight Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: c}
	g.tweens[0] = gween.New(float32(c.MarginTopLeft.X), float32(topLeft.X), duration, fn)
	g.tweens[1] = gween.New(float32(c.MarginTopLeft.Y), float32(topLeft.Y), duration, fn)
	g.tweens[2] = gween.New(float32(c.MarginBottomRight.X), float32(bottomRight.X), duration, fn)
	g.tweens[3] = gween.New(float32(c.MarginBottomRight.Y), float32(bottomRight.Y), duration, fn)
	g.fields[0] = &c.MarginTopLeft.X
	g.fields[1] = &c.MarginTopLeft.Y
	g.fields[2] = &c.MarginBottomRight.X
	g.fields[3] = &c.MarginBottomRight.Y
	return g
}
