package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It ticks the playback presenter and invokes a scheduler callback so the
// host can requeue the next tick on its event loop. The zero value is usable
// (methods are nil-safe).
type Loop struct {
	Playback *PlaybackPresenter
	Schedule func()
}

func NewLoop(playback *PlaybackPresenter, schedule func()) *Loop {
	return &Loop{Playback: playback, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Playback != nil {
		l.Playback.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
