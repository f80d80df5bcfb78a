package model

import (
	"testing"

	"github.com/selevt/video-area-selection/domain/selection"
)

func TestCoordinateModel_SetGetClear(t *testing.T) {
	m := NewCoordinateModel()
	if _, ok := m.Get(); ok {
		t.Fatalf("fresh model must report no selection")
	}
	d := selection.SelectionData{
		Absolute: selection.AbsoluteCoords{Left: 200, Top: 100, Width: 400, Height: 200, Right: 1320, Bottom: 780},
		Video:    selection.VideoSize{Width: 1920, Height: 1080},
	}
	m.Set(d)
	got, ok := m.Get()
	if !ok || got.Absolute != d.Absolute {
		t.Fatalf("stored snapshot mismatch: %+v", got)
	}
	m.Clear()
	if _, ok := m.Get(); ok {
		t.Fatalf("clear must drop the snapshot")
	}
}
