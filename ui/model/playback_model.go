package model

import (
	"time"
)

// PlaybackModel tracks how long the frame source has been playing and how
// many frames it has delivered. It is decoupled from the UI; presenters poll
// OnTick/Values and update views. The zero value is ready to use.
type PlaybackModel struct {
	playing   bool
	playStart time.Time
	elapsed   time.Duration
	lastSeq   uint64
	frames    uint64
}

// NewPlaybackModel returns a pointer to a ready-to-use PlaybackModel.
func NewPlaybackModel() *PlaybackModel { return &PlaybackModel{} }

// OnTick updates the model from the source's running flag, latest frame
// sequence number and timestamp. Call periodically from a presenter tick.
func (m *PlaybackModel) OnTick(playing bool, seq uint64, now time.Time) {
	if m == nil {
		return
	}
	if playing {
		if !m.playing { // transition stopped -> playing
			m.playing = true
			m.playStart = now
		}
		m.elapsed = now.Sub(m.playStart)
	} else if m.playing { // transition playing -> stopped
		m.elapsed = now.Sub(m.playStart)
		m.playing = false
	}
	if seq > m.lastSeq {
		m.frames += seq - m.lastSeq
		m.lastSeq = seq
	}
}

// Values returns the current play duration and total delivered frame count.
func (m *PlaybackModel) Values() (elapsed time.Duration, frames uint64) {
	if m == nil {
		return 0, 0
	}
	return m.elapsed, m.frames
}
