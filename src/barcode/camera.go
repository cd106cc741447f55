package barcode

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	_ "image/jpeg"
	_ "image/png"
)

// NoCamera is the provider for hosts without any capture device. Every
// Open attempt is refused, which the session reports as access denied.
type NoCamera struct{}

func (NoCamera) Open(ctx context.Context) (FrameSource, error) {
	return nil, errors.New("no camera device available")
}

// DirectoryCamera replays image files from a directory as a frame
// stream, in file-name order, looping. It stands in for a real camera
// on headless deployments and in tests.
type DirectoryCamera struct {
	Dir string
}

func (c DirectoryCamera) Open(ctx context.Context) (FrameSource, error) {
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".png", ".jpg", ".jpeg":
			paths = append(paths, filepath.Join(c.Dir, entry.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, errors.New("no frame images in directory")
	}
	sort.Strings(paths)

	return &directorySource{paths: paths}, nil
}

type directorySource struct {
	mu     sync.Mutex
	paths  []string
	next   int
	closed bool
}

func (s *directorySource) Frame() (image.Image, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(s.paths) == 0 {
		return nil, false
	}

	path := s.paths[s.next%len(s.paths)]
	s.next++

	file, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, false
	}
	return img, true
}

func (s *directorySource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
