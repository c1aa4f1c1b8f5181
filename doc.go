// Package lattice is a retained-mode GUI control tree for [Ebitengine].
//
// Lattice provides the tree data structure and the three per-frame passes —
// layout, draw, and event dispatch — that a widget toolkit is built on. It
// deliberately implements no concrete widgets: buttons, panels, and text
// fields are written against the [Widget] interface and plugged into
// [Control] nodes.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	root := lattice.NewControl()
//	// ... add children with widgets ...
//	lattice.Run(root, lattice.RunConfig{
//		Title: "My App", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself or embed a [Host] and
// call [Control.Layout], [Control.ProcessEvents], and [Control.Draw] once
// each per frame, in that order.
//
// # Control tree
//
// Every element is a [Control]. Controls form a rooted ordered tree; child
// order is traversal and z-order. Geometry is authored in parent-local space
// (position, size, margins) and resolved by [Control.Layout] into absolute
// screen rectangles and content bounds:
//
//	panel := lattice.NewControl().
//		SetPosition(10, 10).
//		SetSize(200, 120).
//		SetMargin(4, 4, 4, 4).
//		SetWidget(myPanelWidget)
//	root.AddChild(panel)
//
// # Passes
//
// [Control.Layout] resolves screen rects top-down and content bounds
// bottom-up. [Control.Draw] paints visible controls through an injected
// [DrawContext], bracketing disabled subtrees in the context's
// disabled-appearance scope. [Control.ProcessEvents] routes one typed
// [Event] to every control's matching hook in pre-order, stopping as soon
// as a hook returns [Consumed].
//
// Repaint decisions ride on the dirty flag: [Control.SetDirty] with true
// propagates to every ancestor, and the frame owner reads the root's flag at
// end of frame (see [Host.NeedsRepaint]).
//
// Tweens (via [gween]) animate control geometry; see [TweenPosition],
// [TweenSize], and [TweenMargins].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package lattice
