package video

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/vova616/screenshot"
)

const screenStatsLogInterval = 5 * time.Second

// ScreenSource treats the live screen as the video surface, capturing frames
// continuously. Selections then describe a region of the physical screen.
type ScreenSource struct {
	fps     int
	logger  *slog.Logger
	running atomic.Bool
	latest  atomic.Pointer[FrameSnapshot]

	frames       atomic.Uint64
	skipped      atomic.Uint64
	acquireNanos atomic.Uint64
	seq          atomic.Uint64
}

// NewScreenSource constructs a live screen capture source.
func NewScreenSource(fps int, logger *slog.Logger) *ScreenSource {
	if fps < 1 {
		fps = 10
	}
	return &ScreenSource{fps: fps, logger: logger}
}

func (s *ScreenSource) Start() {
	if s.running.Load() {
		return
	}
	s.running.Store(true)
	go s.loop()
}

func (s *ScreenSource) Stop() {
	if !s.running.Load() {
		return
	}
	s.running.Store(false)
}

func (s *ScreenSource) Running() bool { return s.running.Load() }

func (s *ScreenSource) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

// NativeSize reports the captured screen resolution once a frame arrived.
func (s *ScreenSource) NativeSize() (int, int) {
	snap := s.latest.Load()
	if snap == nil || snap.Image == nil {
		return 0, 0
	}
	b := snap.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Stats returns acquisition instrumentation.
func (s *ScreenSource) Stats() SourceStats {
	frames := s.frames.Load()
	total := s.acquireNanos.Load()
	var avg time.Duration
	if frames > 0 && total > 0 {
		avg = time.Duration(total / frames)
	}
	snap := s.LatestFrame()
	age := time.Duration(0)
	if !snap.CapturedAt.IsZero() {
		age = time.Since(snap.CapturedAt)
	}
	return SourceStats{
		Frames:         frames,
		Skipped:        s.skipped.Load(),
		AvgAcquire:     avg,
		LastFrame:      snap.CapturedAt,
		LatestFrameAge: age,
		Sequence:       snap.Sequence,
	}
}

func (s *ScreenSource) loop() {
	interval := time.Second / time.Duration(s.fps)
	logTicker := time.NewTicker(screenStatsLogInterval)
	defer logTicker.Stop()
	for s.running.Load() {
		start := time.Now()
		img, err := screenshot.CaptureScreen()
		if err != nil || img == nil {
			if err != nil && s.logger != nil {
				s.logger.Error("screen capture", "error", err)
			}
			s.skipped.Add(1)
			time.Sleep(interval)
			continue
		}
		s.acquireNanos.Add(uint64(time.Since(start).Nanoseconds()))
		s.frames.Add(1)
		seq := s.seq.Add(1)
		s.latest.Store(&FrameSnapshot{Image: img, CapturedAt: time.Now(), Sequence: seq})

		select {
		case <-logTicker.C:
			s.logStats()
		default:
		}
		time.Sleep(interval)
	}
}

func (s *ScreenSource) logStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("screen.stats",
		"frames", stats.Frames,
		"skipped", stats.Skipped,
		"avg_acquire", stats.AvgAcquire,
		"age", stats.LatestFrameAge,
	)
}

var _ FrameSource = (*ScreenSource)(nil)
