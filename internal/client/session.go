package client

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
)

// State is the lifecycle of a Session.
type State int

const (
	StateIdle State = iota
	StateUploading
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUploading:
		return "uploading"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Uploader is the part of Client a Session needs.
type Uploader interface {
	UploadAndTranscribe(ctx context.Context, userID, path string) (string, error)
	DownloadTranscriptions(ctx context.Context, userID string, w io.Writer) (int64, error)
}

// ProgressFunc is called after each successful upload.
type ProgressFunc func(done, total int, percent float64)

// Session uploads a selection of files one at a time and unlocks the
// archive download once all of them are transcribed.
type Session struct {
	uploader Uploader
	userID   string

	mu       sync.Mutex
	files    []string
	state    State
	progress float64
	err      error
}

// NewSession creates an idle session for userID.
func NewSession(uploader Uploader, userID string) *Session {
	return &Session{
		uploader: uploader,
		userID:   userID,
	}
}

// SelectFiles replaces the selection. More than MaxFiles is refused; the
// previous selection, state and error are kept.
func (s *Session) SelectFiles(paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateUploading {
		return ErrUploadInProgress
	}
	if len(paths) > MaxFiles {
		return ErrTooManyFiles
	}

	s.files = append([]string(nil), paths...)
	s.state = StateIdle
	s.progress = 0
	s.err = nil
	return nil
}

// Files returns the current selection.
func (s *Session) Files() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.files...)
}

// Start uploads the selected files in order. The first failure stops the
// session; later files are not sent.
func (s *Session) Start(ctx context.Context, onProgress ProgressFunc) error {
	s.mu.Lock()
	if s.state == StateUploading {
		s.mu.Unlock()
		return ErrUploadInProgress
	}
	if len(s.files) == 0 {
		s.err = ErrNoFiles
		s.mu.Unlock()
		return ErrNoFiles
	}
	files := append([]string(nil), s.files...)
	s.state = StateUploading
	s.progress = 0
	s.err = nil
	s.mu.Unlock()

	total := len(files)
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return s.fail(err)
		}
		if _, err := s.uploader.UploadAndTranscribe(ctx, s.userID, path); err != nil {
			return s.fail(fmt.Errorf("%s: %w", filepath.Base(path), err))
		}

		done := i + 1
		percent := float64(done) / float64(total) * 100

		s.mu.Lock()
		s.progress = percent
		s.mu.Unlock()

		if onProgress != nil {
			onProgress(done, total, percent)
		}
	}

	s.mu.Lock()
	s.state = StateComplete
	s.mu.Unlock()
	return nil
}

func (s *Session) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateFailed
	s.err = err
	return err
}

// Download writes the archive to w. Only a complete session may download.
func (s *Session) Download(ctx context.Context, w io.Writer) (int64, error) {
	if s.State() != StateComplete {
		return 0, ErrDownloadNotReady
	}
	return s.uploader.DownloadTranscriptions(ctx, s.userID, w)
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Progress returns the percentage of files transcribed so far.
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// Err returns the last error, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
