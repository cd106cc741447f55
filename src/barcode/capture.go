package barcode

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"
)

type SessionState string

const (
	StateIdle       SessionState = "idle"
	StateRequesting SessionState = "requesting"
	StateStreaming  SessionState = "streaming"
	StateDenied     SessionState = "denied"
)

// FrameSource delivers snapshots of the live video stream. Frame
// reports ok=false while the stream has not buffered enough data yet.
type FrameSource interface {
	Frame() (frame image.Image, ok bool)
	Close() error
}

// CameraProvider acquires a video-only stream. Open blocks until the
// platform grants or refuses access.
type CameraProvider interface {
	Open(ctx context.Context) (FrameSource, error)
}

// Scheduler paces the sampling loop, standing in for the display's
// animation-frame cadence. Next returns false once the loop is
// cancelled.
type Scheduler interface {
	Next(ctx context.Context) bool
}

// TickScheduler samples on a fixed interval.
type TickScheduler struct {
	Interval time.Duration
}

func (s *TickScheduler) Next(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(s.Interval):
		return true
	}
}

// CaptureSession is one camera-to-decoder loop: Idle -> Requesting ->
// Streaming -> Idle, with Requesting -> Denied on refusal. At most one
// decode attempt is in flight at a time; frame N+1 is not sampled until
// frame N's attempt has returned.
type CaptureSession struct {
	mu            sync.Mutex
	state         SessionState
	source        FrameSource
	cancel        context.CancelFunc
	done          chan struct{}
	lastScannedAt time.Time

	decoder   *Decoder
	scheduler Scheduler
}

func NewCaptureSession(decoder *Decoder, scheduler Scheduler) *CaptureSession {
	return &CaptureSession{
		state:     StateIdle,
		decoder:   decoder,
		scheduler: scheduler,
	}
}

func (s *CaptureSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *CaptureSession) LastScannedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastScannedAt
}

// Start acquires the camera and begins sampling frames. On a successful
// decode the session stops itself and onScanned runs once with the
// decoded value. On refusal the session lands in Denied and the error
// wraps ErrCameraAccessDenied; there is no automatic retry.
func (s *CaptureSession) Start(ctx context.Context, provider CameraProvider, onScanned func(string)) error {
	s.mu.Lock()
	if s.state == StateRequesting || s.state == StateStreaming {
		s.mu.Unlock()
		return errors.New("capture session already active")
	}
	s.state = StateRequesting
	s.mu.Unlock()

	source, err := provider.Open(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = StateDenied
		s.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrCameraAccessDenied, err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.mu.Lock()
	s.source = source
	s.cancel = cancel
	s.done = done
	s.state = StateStreaming
	s.mu.Unlock()

	go s.loop(loopCtx, done, onScanned)
	return nil
}

func (s *CaptureSession) loop(ctx context.Context, done chan struct{}, onScanned func(string)) {
	defer close(done)

	for s.scheduler.Next(ctx) {
		s.mu.Lock()
		source := s.source
		s.mu.Unlock()
		if source == nil {
			return
		}

		frame, ok := source.Frame()
		if !ok {
			// stream not ready yet, try again on the next tick
			continue
		}

		value, matched := s.decoder.Decode(frame)
		if !matched {
			continue
		}

		s.mu.Lock()
		s.lastScannedAt = time.Now()
		s.mu.Unlock()

		s.Stop()
		if onScanned != nil {
			onScanned(value)
		}
		return
	}
}

// Stop halts the sampling loop, releases the frame source and returns
// the session to Idle. Idempotent and safe to call from any state.
func (s *CaptureSession) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	source := s.source
	s.cancel = nil
	s.source = nil
	s.state = StateIdle
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if source != nil {
		_ = source.Close()
	}
}
