package video

import (
	"image"
	"log/slog"
	"sync/atomic"
	"time"
)

// StillSource serves a single decoded image as a frozen video frame. Useful
// for selecting over a poster frame or an exported screenshot of a clip.
type StillSource struct {
	path    string
	data    []byte
	logger  *slog.Logger
	running atomic.Bool
	latest  atomic.Pointer[FrameSnapshot]
}

// NewStillSource constructs a source for one image file. Decoding happens on
// Start so construction stays side-effect free.
func NewStillSource(path string, logger *slog.Logger) *StillSource {
	return &StillSource{path: path, logger: logger}
}

// NewStillFromBytes constructs a source for an in-memory image, typically an
// embedded poster frame.
func NewStillFromBytes(data []byte, logger *slog.Logger) *StillSource {
	return &StillSource{path: "embedded", data: data, logger: logger}
}

// Start decodes the image once. Errors degrade to "no metadata": the source
// stays running with no frame and the engine simply reports no selection.
func (s *StillSource) Start() {
	if s.running.Load() {
		return
	}
	s.running.Store(true)
	var (
		img *image.RGBA
		err error
	)
	if s.data != nil {
		img, err = decodeRGBABytes(s.data)
	} else {
		img, err = decodeRGBA(s.path)
	}
	if err != nil {
		if s.logger != nil {
			s.logger.Error("still source decode", "path", s.path, "error", err)
		}
		return
	}
	s.latest.Store(&FrameSnapshot{Image: img, CapturedAt: time.Now(), Sequence: 1})
	if s.logger != nil {
		b := img.Bounds()
		s.logger.Info("still source loaded", "path", s.path, "width", b.Dx(), "height", b.Dy())
	}
}

func (s *StillSource) Stop()         { s.running.Store(false) }
func (s *StillSource) Running() bool { return s.running.Load() }

func (s *StillSource) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

// NativeSize reports the decoded resolution, or zeros before decoding.
func (s *StillSource) NativeSize() (int, int) {
	snap := s.latest.Load()
	if snap == nil || snap.Image == nil {
		return 0, 0
	}
	b := snap.Image.Bounds()
	return b.Dx(), b.Dy()
}

var _ FrameSource = (*StillSource)(nil)
