package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// PlaybackStats updates the playback duration and frame counter labels.
type PlaybackStats interface {
	SetPlayback(elapsed time.Duration, frames uint64)
}

type playbackStats struct {
	elapsedLbl *LabelWidget
	framesLbl  *LabelWidget
}

// NewPlaybackStats creates the duration and frame count labels at
// (row, startCol) and (row, startCol+1).
func NewPlaybackStats(row, startCol int) PlaybackStats {
	s := &playbackStats{elapsedLbl: Label(Width(14)), framesLbl: Label(Width(14))}
	Grid(s.elapsedLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.framesLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	s.elapsedLbl.Configure(Txt("Playing: 00:00"))
	s.framesLbl.Configure(Txt("Frames: 0"))
	return s
}

func (s *playbackStats) SetPlayback(elapsed time.Duration, frames uint64) {
	if s == nil || s.elapsedLbl == nil || s.framesLbl == nil {
		return
	}
	seconds := int(elapsed.Seconds())
	min, sec := seconds/60, seconds%60
	s.elapsedLbl.Configure(Txt(fmt.Sprintf("Playing: %02d:%02d", min, sec)))
	s.framesLbl.Configure(Txt(fmt.Sprintf("Frames: %d", frames)))
}
