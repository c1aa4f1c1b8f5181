package lattice

// Widget is the customization surface for concrete controls. The engine holds
// a Widget per Control and calls these hooks from the three passes; every
// method has a no-op default via WidgetBase, so widgets embed WidgetBase and
// override only what they need.
//
// OnLayoutGeometry and OnLayoutEvent are deliberately distinct: the first
// fires from the geometry pass once the control's screen rect is known, the
// second fires when the host delivers an EventLayout system event. They share
// no trigger.
type Widget interface {
	// Layout pass hooks.
	OnLayoutGeometry(c *Control)
	OnAfterLayout(c *Control)

	// Draw pass hooks. Children draw between the two.
	OnBeforeDraw(c *Control, ctx DrawContext)
	OnDraw(c *Control, ctx DrawContext)

	// Event hooks, one per EventType.
	OnContextClick(c *Control, ev *Event) EventResult
	OnDragExited(c *Control, ev *Event) EventResult
	OnDragPerform(c *Control, ev *Event) EventResult
	OnDragUpdated(c *Control, ev *Event) EventResult
	OnExecuteCommand(c *Control, ev *Event) EventResult
	OnIgnore(c *Control, ev *Event) EventResult
	OnKeyDown(c *Control, ev *Event) EventResult
	OnKeyUp(c *Control, ev *Event) EventResult
	OnLayoutEvent(c *Control, ev *Event) EventResult
	OnMouseDown(c *Control, ev *Event) EventResult
	OnMouseDrag(c *Control, ev *Event) EventResult
	OnMouseMove(c *Control, ev *Event) EventResult
	OnMouseUp(c *Control, ev *Event) EventResult
	OnRepaint(c *Control, ev *Event) EventResult
	OnScrollWheel(c *Control, ev *Event) EventResult
	OnUsed(c *Control, ev *Event) EventResult
	OnValidateCommand(c *Control, ev *Event) EventResult
}

// WidgetBase is the no-op implementation of Widget, meant for embedding.
type WidgetBase struct{}

func (WidgetBase) OnLayoutGeometry(*Control) {}
func (WidgetBase) OnAfterLayout(*Control)    {}

func (WidgetBase) OnBeforeDraw(*Control, DrawContext) {}
func (WidgetBase) OnDraw(*Control, DrawContext)       {}

func (WidgetBase) OnContextClick(*Control, *Event) EventResult    { return Ignored }
func (WidgetBase) OnDragExited(*Control, *Event) EventResult      { return Ignored }
func (WidgetBase) OnDragPerform(*Control, *Event) EventResult     { return Ignored }
func (WidgetBase) OnDragUpdated(*Control, *Event) EventResult     { return Ignored }
func (WidgetBase) OnExecuteCommand(*Control, *Event) EventResult  { return Ignored }
func (WidgetBase) OnIgnore(*Control, *Event) EventResult          { return Ignored }
func (WidgetBase) OnKeyDown(*Control, *Event) EventResult         { return Ignored }
func (WidgetBase) OnKeyUp(*Control, *Event) EventResult           { return Ignored }
func (WidgetBase) OnLayoutEvent(*Control, *Event) EventResult     { return Ignored }
func (WidgetBase) OnMouseDown(*Control, *Event) EventResult       { return Ignored }
func (WidgetBase) OnMouseDrag(*Control, *Event) EventResult       { return Ignored }
func (WidgetBase) OnMouseMove(*Control, *Event) EventResult       { return Ignored }
func (WidgetBase) OnMouseUp(*Control, *Event) EventResult         { return Ignored }
func (WidgetBase) OnRepaint(*Control, *Event) EventResult         { return Ignored }
func (WidgetBase) OnScrollWheel(*Control, *Event) EventResult     { return Ignored }
func (WidgetBase) OnUsed(*Control, *Event) EventResult            { return Ignored }
func (WidgetBase) OnValidateCommand(*Control, *Event) EventResult { return Ignored }
