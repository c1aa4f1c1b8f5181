package lattice

import "testing"

// fakeDrawContext records disabled-scope calls and tracks nesting depth.
type fakeDrawContext struct {
	depth  int
	begins int
	ends   int
	log    []string
}

func (f *fakeDrawContext) BeginDisabled() {
	f.depth++
	f.begins++
	f.log = append(f.log, "begin")
}

func (f *fakeDrawContext) EndDisabled() {
	f.depth--
	f.ends++
	f.log = append(f.log, "end")
}

func (f *fakeDrawContext) Disabled() bool {
	return f.depth > 0
}

// drawRecorder logs draw hook firings.
type drawRecorder struct {
	WidgetBase
	name string
	log  *[]string
}

func (w *drawRecorder) OnBeforeDraw(c *Control, ctx DrawContext) {
	*w.log = append(*w.log, "before:"+w.name)
}

func (w *drawRecorder) OnDraw(c *Control, ctx DrawContext) {
	*w.log = append(*w.log, "draw:"+w.name)
}

func assertLog(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("log = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("log = %v, want %v", got, want)
		}
	}
}

// --- Draw order ---

func TestDrawChildrenBeforeOwnHook(t *testing.T) {
	var log []string
	root := NewControl().SetWidget(&drawRecorder{name: "root", log: &log})
	a := NewControl().SetWidget(&drawRecorder{name: "a", log: &log})
	b := NewControl().SetWidget(&drawRecorder{name: "b", log: &log})
	root.AddChild(a)
	root.AddChild(b)

	root.Draw(&fakeDrawContext{})

	assertLog(t, log,
		"before:root",
		"before:a", "draw:a",
		"before:b", "draw:b",
		"draw:root")
}

// --- Visibility suppression ---

func TestDrawHiddenFiresNothing(t *testing.T) {
	var log []string
	root := NewControl().SetVisibility(Hidden).SetWidget(&drawRecorder{name: "root", log: &log})
	root.AddChild(NewControl().SetWidget(&drawRecorder{name: "child", log: &log}))

	root.Draw(&fakeDrawContext{})

	if len(log) != 0 {
		t.Errorf("hidden subtree fired hooks: %v", log)
	}
}

func TestDrawCollapsedFiresNothing(t *testing.T) {
	var log []string
	root := NewControl().SetVisibility(Collapsed).SetWidget(&drawRecorder{name: "root", log: &log})
	root.AddChild(NewControl().SetWidget(&drawRecorder{name: "child", log: &log}))

	root.Draw(&fakeDrawContext{})

	if len(log) != 0 {
		t.Errorf("collapsed subtree fired hooks: %v", log)
	}
}

// --- Disabled scope ---

func TestDrawDisabledScopeWrapsSubtree(t *testing.T) {
	ctx := &fakeDrawContext{}
	var log []string
	root := NewControl().SetEnabled(false).SetWidget(&drawRecorder{name: "root", log: &log})
	root.AddChild(NewControl().SetWidget(&drawRecorder{name: "child", log: &log}))

	root.Draw(ctx)

	if ctx.begins != 1 || ctx.ends != 1 {
		t.Errorf("begins/ends = %d/%d, want 1/1", ctx.begins, ctx.ends)
	}
	if ctx.depth != 0 {
		t.Errorf("depth = %d after Draw, want 0", ctx.depth)
	}
	// The whole subtree draws inside the scope.
	assertLog(t, log, "before:root", "before:child", "draw:child", "draw:root")
}

func TestDrawDisabledScopeNests(t *testing.T) {
	ctx := &fakeDrawContext{}
	root := NewControl().SetEnabled(false)
	root.AddChild(NewControl().SetEnabled(false))

	root.Draw(ctx)

	if ctx.begins != 2 || ctx.ends != 2 || ctx.depth != 0 {
		t.Errorf("begins/ends/depth = %d/%d/%d, want 2/2/0", ctx.begins, ctx.ends, ctx.depth)
	}
	assertLog(t, ctx.log, "begin", "begin", "end", "end")
}

func TestDrawDisabledScopeAroundHiddenSubtree(t *testing.T) {
	ctx := &fakeDrawContext{}
	root := NewControl().SetEnabled(false).SetVisibility(Hidden)

	root.Draw(ctx)

	// No hooks fire, but the scope still opens and closes symmetrically.
	if ctx.begins != 1 || ctx.ends != 1 || ctx.depth != 0 {
		t.Errorf("begins/ends/depth = %d/%d/%d, want 1/1/0", ctx.begins, ctx.ends, ctx.depth)
	}
}

// enableFlipper re-enables its own control from inside the draw hook, the
// way a button action firing synchronously might.
type enableFlipper struct {
	WidgetBase
}

func (enableFlipper) OnDraw(c *Control, ctx DrawContext) {
	c.Enabled = true
}

func TestDrawScopeBalanceOnMidDrawFlip(t *testing.T) {
	ctx := &fakeDrawContext{}
	c := NewControl().SetEnabled(false).SetWidget(enableFlipper{})

	c.Draw(ctx)

	// The close decision matches the snapshot taken at entry, not the
	// mutated live value.
	if ctx.begins != 1 || ctx.ends != 1 {
		t.Errorf("begins/ends = %d/%d, want 1/1", ctx.begins, ctx.ends)
	}
	if ctx.depth != 0 {
		t.Errorf("depth = %d, want 0 (scope stack unbalanced)", ctx.depth)
	}
	if !c.Enabled {
		t.Error("hook's mutation should stick")
	}
}

// disabledProbe records whether the context reported disabled during draw.
type disabledProbe struct {
	WidgetBase
	sawDisabled bool
}

func (w *disabledProbe) OnDraw(c *Control, ctx DrawContext) {
	w.sawDisabled = ctx.Disabled()
}

func TestDrawChildSeesAncestorDisabledScope(t *testing.T) {
	probe := &disabledProbe{}
	root := NewControl().SetEnabled(false)
	child := NewControl().SetWidget(probe) // child's own flag stays true
	root.AddChild(child)

	root.Draw(&fakeDrawContext{})

	if !probe.sawDisabled {
		t.Error("child should draw inside the ancestor's disabled scope")
	}
	if !child.Enabled {
		t.Error("ancestor disabled state must not overwrite the child's own flag")
	}
}
