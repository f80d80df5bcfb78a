package view

import (
	"fmt"

	"github.com/selevt/video-area-selection/domain/selection"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CoordinatePanel shows the current selection in absolute and relative
// coordinates plus the native video size.
type CoordinatePanel interface {
	Build(startRow int) (endRow int)
	ShowSelection(d selection.SelectionData)
	ShowNone()
}

type coordinatePanel struct {
	absLbl   *LabelWidget
	relLbl   *LabelWidget
	videoLbl *LabelWidget
}

func NewCoordinatePanel() CoordinatePanel {
	return &coordinatePanel{}
}

func (v *coordinatePanel) Build(startRow int) (row int) {
	row = startRow
	makeRow := func(caption string) *LabelWidget {
		lbl := Label(Txt(caption), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		val := Label(Txt("none"), Anchor("w"))
		Grid(val, Row(row), Column(1), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		row++
		return val
	}
	v.absLbl = makeRow("Absolute")
	v.relLbl = makeRow("Relative")
	v.videoLbl = makeRow("Video")
	return row
}

func (v *coordinatePanel) ShowSelection(d selection.SelectionData) {
	if v == nil {
		return
	}
	a, r := d.Absolute, d.Relative
	if v.absLbl != nil {
		v.absLbl.Configure(Txt(fmt.Sprintf("left=%d top=%d width=%d height=%d right=%d bottom=%d",
			a.Left, a.Top, a.Width, a.Height, a.Right, a.Bottom)))
	}
	if v.relLbl != nil {
		v.relLbl.Configure(Txt(fmt.Sprintf("left=%.6f top=%.6f width=%.6f height=%.6f right=%.6f bottom=%.6f",
			r.Left, r.Top, r.Width, r.Height, r.Right, r.Bottom)))
	}
	if v.videoLbl != nil {
		v.videoLbl.Configure(Txt(fmt.Sprintf("%dx%d", d.Video.Width, d.Video.Height)))
	}
}

func (v *coordinatePanel) ShowNone() {
	if v == nil {
		return
	}
	for _, lbl := range []*LabelWidget{v.absLbl, v.relLbl, v.videoLbl} {
		if lbl != nil {
			lbl.Configure(Txt("none"))
		}
	}
}
