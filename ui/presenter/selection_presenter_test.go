package presenter

import (
	"testing"

	"github.com/selevt/video-area-selection/domain/selection"
	"github.com/selevt/video-area-selection/ui/model"
)

func refData() selection.SelectionData {
	return selection.SelectionData{
		Absolute: selection.AbsoluteCoords{Left: 200, Top: 100, Width: 400, Height: 200, Right: 1320, Bottom: 780},
		Relative: selection.RelativeCoords{Left: 0.104167, Top: 0.092593, Width: 0.208333, Height: 0.185185, Right: 0.6875, Bottom: 0.722222},
		Video:    selection.VideoSize{Width: 1920, Height: 1080},
	}
}

func TestSubstitute_CropTemplate(t *testing.T) {
	out := Substitute("crop={abs.width}:{abs.height}:{abs.left}:{abs.top}", refData())
	if out != "crop=400:200:200:100" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSubstitute_RelativeAndVideoFields(t *testing.T) {
	out := Substitute("{rel.left}|{rel.right}|{video.width}x{video.height}", refData())
	if out != "0.104167|0.687500|1920x1080" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSubstitute_UnknownPlaceholderUntouched(t *testing.T) {
	out := Substitute("{abs.left} {nope}", refData())
	if out != "200 {nope}" {
		t.Fatalf("unexpected output %q", out)
	}
}

type mockEngine struct {
	enabled          bool
	cleared          int
	setCalls         []selection.NativeRect
	enables, disable int
}

func (m *mockEngine) Enable() *selection.Engine { m.enabled = true; m.enables++; return nil }
func (m *mockEngine) Disable()                  { m.enabled = false; m.disable++ }
func (m *mockEngine) Enabled() bool             { return m.enabled }
func (m *mockEngine) GetSelection() *selection.SelectionData {
	return nil
}
func (m *mockEngine) SetSelection(r selection.NativeRect) { m.setCalls = append(m.setCalls, r) }
func (m *mockEngine) ClearSelection()                     { m.cleared++ }

type mockCoordView struct {
	shown int
	none  int
	last  selection.SelectionData
}

func (v *mockCoordView) ShowSelection(d selection.SelectionData) { v.shown++; v.last = d }
func (v *mockCoordView) ShowNone()                               { v.none++ }

type mockTemplateView struct{ outputs []string }

func (v *mockTemplateView) SetOutput(s string) { v.outputs = append(v.outputs, s) }

func newTestPresenter() (*SelectionPresenter, *mockEngine, *mockCoordView, *mockTemplateView) {
	eng := &mockEngine{}
	coordView := &mockCoordView{}
	tmplView := &mockTemplateView{}
	p := NewSelectionPresenter(eng, model.NewCoordinateModel(), coordView, tmplView,
		func() string { return "{abs.left},{abs.top}" })
	return p, eng, coordView, tmplView
}

func TestSelectionPresenter_OnChangeUpdatesViewsAndTemplate(t *testing.T) {
	p, _, coordView, tmplView := newTestPresenter()
	p.OnChange(refData())
	if coordView.shown != 1 || coordView.last.Absolute.Left != 200 {
		t.Fatalf("coordinate view not updated: %+v", coordView)
	}
	if len(tmplView.outputs) != 1 || tmplView.outputs[0] != "200,100" {
		t.Fatalf("template output wrong: %v", tmplView.outputs)
	}
}

func TestSelectionPresenter_ClearResetsEverything(t *testing.T) {
	p, eng, coordView, tmplView := newTestPresenter()
	p.OnChange(refData())
	p.Clear()
	if eng.cleared != 1 {
		t.Fatalf("engine not cleared")
	}
	if coordView.none != 1 {
		t.Fatalf("coordinate view not reset")
	}
	if tmplView.outputs[len(tmplView.outputs)-1] != "" {
		t.Fatalf("template output not emptied: %v", tmplView.outputs)
	}
	p.RefreshTemplate()
	if tmplView.outputs[len(tmplView.outputs)-1] != "" {
		t.Fatalf("refresh after clear must stay empty")
	}
}

func TestSelectionPresenter_ToggleFlipsEngine(t *testing.T) {
	p, eng, _, _ := newTestPresenter()
	p.Toggle()
	if !eng.enabled || eng.enables != 1 {
		t.Fatalf("toggle should enable")
	}
	p.Toggle()
	if eng.enabled || eng.disable != 1 {
		t.Fatalf("toggle should disable")
	}
}

func TestSelectionPresenter_SelectFullFrame(t *testing.T) {
	p, eng, _, _ := newTestPresenter()
	p.SelectFullFrame(1920, 1080)
	if len(eng.setCalls) != 1 || eng.setCalls[0] != (selection.NativeRect{Width: 1920, Height: 1080}) {
		t.Fatalf("unexpected set calls %v", eng.setCalls)
	}
	p.SelectFullFrame(0, 0) // unknown metadata: must be ignored
	if len(eng.setCalls) != 1 {
		t.Fatalf("metadata-less full frame must no-op")
	}
}
