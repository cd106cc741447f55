package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"inventory/src/barcode"
	"inventory/src/notifications"
)

// ScannerService owns the single capture session behind the scanner
// dialog. A second Open while a session is active is refused.
type ScannerService struct {
	mu      sync.Mutex
	session *barcode.CaptureSession

	provider barcode.CameraProvider
	decoder  *barcode.Decoder
	resolver *barcode.Resolver
	notifier notifications.Notifier
	interval time.Duration
}

func NewScannerService(
	provider barcode.CameraProvider,
	decoder *barcode.Decoder,
	resolver *barcode.Resolver,
	notifier notifications.Notifier,
	interval time.Duration,
) *ScannerService {
	if interval <= 0 {
		interval = 33 * time.Millisecond
	}
	return &ScannerService{
		provider: provider,
		decoder:  decoder,
		resolver: resolver,
		notifier: notifier,
		interval: interval,
	}
}

// Open starts a capture session. The sampling loop outlives the request
// that opened it; Close or a successful decode ends it.
func (s *ScannerService) Open(ctx context.Context) error {
	s.mu.Lock()
	if s.session != nil {
		state := s.session.State()
		if state == barcode.StateRequesting || state == barcode.StateStreaming {
			s.mu.Unlock()
			return errors.New("scanner already open")
		}
	}
	session := barcode.NewCaptureSession(s.decoder, &barcode.TickScheduler{Interval: s.interval})
	s.session = session
	s.mu.Unlock()

	err := session.Start(context.Background(), s.provider, func(value string) {
		s.resolver.Resolve(context.Background(), value)
	})
	if err != nil {
		if errors.Is(err, barcode.ErrCameraAccessDenied) {
			s.notifier.Notify(
				notifications.KindError,
				"Camera access error",
				"Could not access the camera. Please check permissions.",
			)
		}
		return err
	}
	return nil
}

// Close stops the active session. Safe to call when nothing is open.
func (s *ScannerService) Close() {
	s.mu.Lock()
	session := s.session
	s.mu.Unlock()

	if session != nil {
		session.Stop()
	}
}

func (s *ScannerService) State() barcode.SessionState {
	s.mu.Lock()
	session := s.session
	s.mu.Unlock()

	if session == nil {
		return barcode.StateIdle
	}
	return session.State()
}
