package video

import (
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// SequenceSource plays a directory of numbered frame images in a loop at a
// fixed rate, standing in for decoded video playback.
type SequenceSource struct {
	dir     string
	fps     int
	logger  *slog.Logger
	running atomic.Bool
	latest  atomic.Pointer[FrameSnapshot]
	frames  []*image.RGBA
	seq     atomic.Uint64
	done    chan struct{}
}

// NewSequenceSource constructs a source over dir. fps values below 1 fall
// back to 10.
func NewSequenceSource(dir string, fps int, logger *slog.Logger) *SequenceSource {
	if fps < 1 {
		fps = 10
	}
	return &SequenceSource{dir: dir, fps: fps, logger: logger}
}

// Start decodes every frame concurrently, then begins the playback loop.
// All frames must share one resolution; mismatched files are rejected.
func (s *SequenceSource) Start() {
	if s.running.Load() {
		return
	}
	if s.frames == nil {
		if err := s.load(); err != nil {
			if s.logger != nil {
				s.logger.Error("sequence load", "dir", s.dir, "error", err)
			}
			return
		}
	}
	if len(s.frames) == 0 {
		return
	}
	s.running.Store(true)
	s.done = make(chan struct{})
	s.publish(0)
	go s.loop()
}

func (s *SequenceSource) Stop() {
	if !s.running.Load() {
		return
	}
	s.running.Store(false)
	close(s.done)
}

func (s *SequenceSource) Running() bool { return s.running.Load() }

func (s *SequenceSource) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

// NativeSize reports the shared frame resolution, or zeros before loading.
func (s *SequenceSource) NativeSize() (int, int) {
	if len(s.frames) == 0 {
		return 0, 0
	}
	b := s.frames[0].Bounds()
	return b.Dx(), b.Dy()
}

func (s *SequenceSource) load() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg", ".bmp", ".webp":
			paths = append(paths, filepath.Join(s.dir, e.Name()))
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return os.ErrNotExist
	}

	decoded := make([]*image.RGBA, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, p := range paths {
		g.Go(func() error {
			img, err := decodeRGBA(p)
			if err != nil {
				return err
			}
			decoded[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	ref := decoded[0].Bounds()
	for i, img := range decoded {
		if img.Bounds().Dx() != ref.Dx() || img.Bounds().Dy() != ref.Dy() {
			if s.logger != nil {
				s.logger.Error("sequence frame size mismatch", "path", paths[i])
			}
			return os.ErrInvalid
		}
	}
	s.frames = decoded
	if s.logger != nil {
		s.logger.Info("sequence loaded", "dir", s.dir, "frames", len(decoded), "width", ref.Dx(), "height", ref.Dy())
	}
	return nil
}

func (s *SequenceSource) loop() {
	ticker := time.NewTicker(time.Second / time.Duration(s.fps))
	defer ticker.Stop()
	idx := 0
	for {
		select {
		case <-ticker.C:
			idx = (idx + 1) % len(s.frames)
			s.publish(idx)
		case <-s.done:
			return
		}
	}
}

func (s *SequenceSource) publish(idx int) {
	seq := s.seq.Add(1)
	s.latest.Store(&FrameSnapshot{Image: s.frames[idx], CapturedAt: time.Now(), Sequence: seq})
}

var _ FrameSource = (*SequenceSource)(nil)
