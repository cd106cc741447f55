package notifications

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notice is one user-facing notification, the server-side equivalent of
// a toast on the dashboard.
type Notice struct {
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
}

// Highlight asks the presenting table to emphasize one asset row for a
// short duration. Purely cosmetic.
type Highlight struct {
	AssetID  string        `json:"assetId"`
	Duration time.Duration `json:"duration"`
	At       time.Time     `json:"at"`
}

// Notifier is consumed fire-and-forget; callers never observe a result.
type Notifier interface {
	Notify(kind Kind, title, description string)
}

// LogNotifier writes every notice to the service logger.
type LogNotifier struct {
	Logger *logrus.Logger
}

func (n *LogNotifier) Notify(kind Kind, title, description string) {
	n.Logger.WithFields(logrus.Fields{
		"kind":        kind,
		"description": description,
	}).Info(title)
}

// Feed keeps the most recent notices and highlight requests in memory so
// clients can poll them. It also satisfies Notifier.
type Feed struct {
	mu         sync.Mutex
	limit      int
	notices    []Notice
	highlights []Highlight
}

func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = 50
	}
	return &Feed{limit: limit}
}

func (f *Feed) Notify(kind Kind, title, description string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.notices = append(f.notices, Notice{
		Kind:        kind,
		Title:       title,
		Description: description,
		At:          time.Now(),
	})
	if len(f.notices) > f.limit {
		f.notices = f.notices[len(f.notices)-f.limit:]
	}
}

// RequestHighlight records a transient row-highlight request.
func (f *Feed) RequestHighlight(assetID string, duration time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.highlights = append(f.highlights, Highlight{
		AssetID:  assetID,
		Duration: duration,
		At:       time.Now(),
	})
	if len(f.highlights) > f.limit {
		f.highlights = f.highlights[len(f.highlights)-f.limit:]
	}
}

func (f *Feed) Notices() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notice, len(f.notices))
	copy(out, f.notices)
	return out
}

func (f *Feed) Highlights() []Highlight {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Highlight, len(f.highlights))
	copy(out, f.highlights)
	return out
}

// Fanout forwards each notice to every attached notifier.
type Fanout []Notifier

func (f Fanout) Notify(kind Kind, title, description string) {
	for _, n := range f {
		n.Notify(kind, title, description)
	}
}
