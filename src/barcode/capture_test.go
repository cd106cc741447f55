package barcode_test

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/src/barcode"
)

func whiteImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

// symbolFrame renders a decodable frame carrying the given identifier.
func symbolFrame(t *testing.T, identifier string) image.Image {
	t.Helper()

	renderer, err := barcode.NewRenderer("")
	require.NoError(t, err)
	symbol, err := barcode.Encode(identifier, "Test Asset", barcode.SymbologyQR)
	require.NoError(t, err)
	img, err := renderer.RenderImage(symbol)
	require.NoError(t, err)
	return img
}

// scriptedSource plays back a fixed sequence of frames, then repeats the
// last one. A nil entry means the stream is not ready on that tick.
type scriptedSource struct {
	mu     sync.Mutex
	frames []image.Image
	next   int
	closed bool
	served int
}

func (s *scriptedSource) Frame() (image.Image, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(s.frames) == 0 {
		return nil, false
	}
	idx := s.next
	if idx >= len(s.frames) {
		idx = len(s.frames) - 1
	} else {
		s.next++
	}
	frame := s.frames[idx]
	if frame == nil {
		return nil, false
	}
	s.served++
	return frame, true
}

func (s *scriptedSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *scriptedSource) Served() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.served
}

func (s *scriptedSource) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// countingScheduler grants a fixed number of ticks, then stops the loop.
type countingScheduler struct {
	mu    sync.Mutex
	ticks int
	limit int
}

func (s *countingScheduler) Next(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx.Err() != nil || s.ticks >= s.limit {
		return false
	}
	s.ticks++
	return true
}

func (s *countingScheduler) Ticks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

type fakeProvider struct {
	source *scriptedSource
	err    error
}

func (p *fakeProvider) Open(ctx context.Context) (barcode.FrameSource, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.source, nil
}

func TestCaptureSession(t *testing.T) {
	decoder := barcode.NewDecoder()
	tick := &barcode.TickScheduler{Interval: time.Millisecond}

	t.Run("stops itself after the first successful decode", func(t *testing.T) {
		source := &scriptedSource{frames: []image.Image{
			nil, // stream warming up
			whiteImage(64, 64),
			symbolFrame(t, "asset-1"),
		}}
		session := barcode.NewCaptureSession(decoder, tick)

		scanned := make(chan string, 1)
		err := session.Start(context.Background(), &fakeProvider{source: source}, func(value string) {
			scanned <- value
		})
		require.NoError(t, err)

		select {
		case value := <-scanned:
			assert.Equal(t, "asset-1", value)
		case <-time.After(5 * time.Second):
			t.Fatal("session never scanned the symbol frame")
		}

		assert.Eventually(t, func() bool {
			return session.State() == barcode.StateIdle && source.Closed()
		}, time.Second, 5*time.Millisecond)
		assert.False(t, session.LastScannedAt().IsZero())
	})

	t.Run("denied camera lands in Denied without a retry", func(t *testing.T) {
		session := barcode.NewCaptureSession(decoder, tick)
		provider := &fakeProvider{err: errors.New("permission dismissed")}

		err := session.Start(context.Background(), provider, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, barcode.ErrCameraAccessDenied)
		assert.Equal(t, barcode.StateDenied, session.State())
	})

	t.Run("second start on an active session is refused", func(t *testing.T) {
		source := &scriptedSource{frames: []image.Image{whiteImage(64, 64)}}
		session := barcode.NewCaptureSession(decoder, tick)

		require.NoError(t, session.Start(context.Background(), &fakeProvider{source: source}, nil))
		defer session.Stop()

		err := session.Start(context.Background(), &fakeProvider{source: source}, nil)
		assert.Error(t, err)
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		source := &scriptedSource{frames: []image.Image{whiteImage(64, 64)}}
		session := barcode.NewCaptureSession(decoder, tick)

		require.NoError(t, session.Start(context.Background(), &fakeProvider{source: source}, nil))
		session.Stop()
		session.Stop()
		assert.Equal(t, barcode.StateIdle, session.State())
		assert.True(t, source.Closed())
	})

	t.Run("samples at most one frame per scheduler tick", func(t *testing.T) {
		source := &scriptedSource{frames: []image.Image{whiteImage(64, 64)}}
		sched := &countingScheduler{limit: 5}
		session := barcode.NewCaptureSession(decoder, sched)

		require.NoError(t, session.Start(context.Background(), &fakeProvider{source: source}, nil))

		// the loop exits once the scheduler stops granting ticks
		assert.Eventually(t, func() bool {
			return sched.Ticks() == sched.limit
		}, time.Second, 5*time.Millisecond)
		session.Stop()
		assert.LessOrEqual(t, source.Served(), sched.limit)
	})

	t.Run("stop on an idle session is a no-op", func(t *testing.T) {
		session := barcode.NewCaptureSession(decoder, tick)
		session.Stop()
		assert.Equal(t, barcode.StateIdle, session.State())
	})
}

func TestTickScheduler(t *testing.T) {
	tick := &barcode.TickScheduler{Interval: time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	assert.True(t, tick.Next(ctx))

	cancel()
	assert.False(t, tick.Next(ctx))
}
