package model

import (
	"github.com/selevt/video-area-selection/domain/selection"
)

// CoordinateModel holds the latest selection snapshot for the display panel.
// The zero value means no selection yet and is usable. No synchronization
// needed: updates occur on the UI thread tick.
type CoordinateModel struct {
	data    selection.SelectionData
	hasData bool
}

func NewCoordinateModel() *CoordinateModel { return &CoordinateModel{} }

// Set stores a fresh snapshot.
func (m *CoordinateModel) Set(d selection.SelectionData) {
	if m == nil {
		return
	}
	m.data = d
	m.hasData = true
}

// Clear drops the snapshot, returning the model to the no-selection state.
func (m *CoordinateModel) Clear() {
	if m == nil {
		return
	}
	m.data = selection.SelectionData{}
	m.hasData = false
}

// Get returns the latest snapshot and whether one exists.
func (m *CoordinateModel) Get() (selection.SelectionData, bool) {
	if m == nil {
		return selection.SelectionData{}, false
	}
	return m.data, m.hasData
}
