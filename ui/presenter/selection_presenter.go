package presenter

import (
	"strconv"
	"strings"

	"github.com/selevt/video-area-selection/domain/selection"
	"github.com/selevt/video-area-selection/ui/model"
)

// SelectionEngine narrows the engine contract to what this presenter needs.
type SelectionEngine interface {
	Enable() *selection.Engine
	Disable()
	Enabled() bool
	GetSelection() *selection.SelectionData
	SetSelection(selection.NativeRect)
	ClearSelection()
}

// CoordinateView renders the two coordinate groups, or the empty state.
type CoordinateView interface {
	ShowSelection(selection.SelectionData)
	ShowNone()
}

// TemplateView displays the substituted template output.
type TemplateView interface {
	SetOutput(string)
}

// TemplateSource supplies the current template string (user-editable).
type TemplateSource func() string

// SelectionPresenter fans selection snapshots out to the coordinate panel and
// the template bar, and owns enable/disable/clear presentation logic.
type SelectionPresenter struct {
	engine   SelectionEngine
	coords   *model.CoordinateModel
	view     CoordinateView
	tmplView TemplateView
	template TemplateSource
}

func NewSelectionPresenter(engine SelectionEngine, coords *model.CoordinateModel, view CoordinateView, tmplView TemplateView, template TemplateSource) *SelectionPresenter {
	return &SelectionPresenter{engine: engine, coords: coords, view: view, tmplView: tmplView, template: template}
}

// OnChange receives engine snapshots. Register it with the engine's change
// listener list.
func (p *SelectionPresenter) OnChange(d selection.SelectionData) {
	if p == nil {
		return
	}
	if p.coords != nil {
		p.coords.Set(d)
	}
	if p.view != nil {
		p.view.ShowSelection(d)
	}
	p.refreshTemplate()
}

// Toggle flips the engine's interactive state. Idempotent per direction.
func (p *SelectionPresenter) Toggle() {
	if p == nil || p.engine == nil {
		return
	}
	if p.engine.Enabled() {
		p.engine.Disable()
		return
	}
	p.engine.Enable()
}

// Clear drops the selection everywhere: engine, model and both views.
func (p *SelectionPresenter) Clear() {
	if p == nil || p.engine == nil {
		return
	}
	p.engine.ClearSelection()
	if p.coords != nil {
		p.coords.Clear()
	}
	if p.view != nil {
		p.view.ShowNone()
	}
	if p.tmplView != nil {
		p.tmplView.SetOutput("")
	}
}

// SelectFullFrame programmatically selects the entire native frame.
func (p *SelectionPresenter) SelectFullFrame(nativeW, nativeH int) {
	if p == nil || p.engine == nil || nativeW <= 0 || nativeH <= 0 {
		return
	}
	p.engine.SetSelection(selection.NativeRect{Left: 0, Top: 0, Width: nativeW, Height: nativeH})
}

// RefreshTemplate recomputes the template output from the stored snapshot,
// e.g. after the user edits the template string.
func (p *SelectionPresenter) RefreshTemplate() {
	if p == nil {
		return
	}
	p.refreshTemplate()
}

func (p *SelectionPresenter) refreshTemplate() {
	if p.tmplView == nil || p.template == nil || p.coords == nil {
		return
	}
	d, ok := p.coords.Get()
	if !ok {
		p.tmplView.SetOutput("")
		return
	}
	p.tmplView.SetOutput(Substitute(p.template(), d))
}

// Substitute replaces {abs.*}, {rel.*} and {video.*} placeholders in tmpl
// with values from the snapshot. Absolute values render as integers, relative
// values with 6 decimal places. Unknown placeholders are left untouched.
func Substitute(tmpl string, d selection.SelectionData) string {
	pairs := []string{
		"{abs.left}", strconv.Itoa(d.Absolute.Left),
		"{abs.top}", strconv.Itoa(d.Absolute.Top),
		"{abs.width}", strconv.Itoa(d.Absolute.Width),
		"{abs.height}", strconv.Itoa(d.Absolute.Height),
		"{abs.right}", strconv.Itoa(d.Absolute.Right),
		"{abs.bottom}", strconv.Itoa(d.Absolute.Bottom),
		"{rel.left}", formatRel(d.Relative.Left),
		"{rel.top}", formatRel(d.Relative.Top),
		"{rel.width}", formatRel(d.Relative.Width),
		"{rel.height}", formatRel(d.Relative.Height),
		"{rel.right}", formatRel(d.Relative.Right),
		"{rel.bottom}", formatRel(d.Relative.Bottom),
		"{video.width}", strconv.Itoa(d.Video.Width),
		"{video.height}", strconv.Itoa(d.Video.Height),
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

func formatRel(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
