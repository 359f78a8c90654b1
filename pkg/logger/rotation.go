package logger

import (
	"fmt"
	"os"
	"sync"
)

// session owns the file sink state for one logger: the single open handle,
// the rotation index, and the count of bytes written to the current file.
// All mutation happens under mu so appends and rotations are atomic with
// respect to each other.
type session struct {
	mu sync.Mutex

	dir      string
	stem     string
	ext      string
	stamp    string
	maxBytes int64

	index   int
	file    *os.File
	written int64
	closed  bool
}

// openSession opens the first file of a session eagerly, so a construction
// failure surfaces before any record is accepted and the session never sits
// without an open handle.
func openSession(dir, stem, ext, stamp string, maxBytes int64) (*session, error) {
	s := &session{
		dir:      dir,
		stem:     stem,
		ext:      ext,
		stamp:    stamp,
		maxBytes: maxBytes,
	}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

// shouldRotate decides, before a write, whether appending a candidate record
// would push the current file past the threshold. Rotation happens before
// the breaching write, so no file receives a write that takes it over
// maxBytes when rotating first was an option.
func shouldRotate(written, candidate, maxBytes int64) bool {
	return written+candidate > maxBytes
}

// open opens the file for the current rotation index with create-if-missing
// append semantics. A leftover file from a prior run is appended to, never
// truncated, and its existing size counts toward the rotation threshold.
// Callers classify the error: at construction it is a configuration
// problem, mid-session it is a write failure.
func (s *session) open() error {
	path := s.dir + fileName(s.stem, s.stamp, s.index, s.ext)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat %s: %w", path, err)
	}
	s.file = f
	s.written = info.Size()
	return nil
}

// append writes one encoded record to the current file, rotating first if
// the record would push the file past the threshold. An oversized record
// hitting an empty file is written in place; rotating to another empty file
// would gain nothing.
func (s *session) append(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.file == nil {
		// A previous rotation failed to open a file; retry before giving
		// up on this record.
		if err := s.open(); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
	}

	if s.written > 0 && shouldRotate(s.written, int64(len(p)), s.maxBytes) {
		if err := s.rotate(); err != nil {
			return err
		}
	}

	n, err := s.file.Write(p)
	s.written += int64(n)
	if err != nil {
		return fmt.Errorf("%w: append %s: %w", ErrWriteFailed, s.file.Name(), err)
	}
	return nil
}

// rotate flushes and closes the current file, bumps the rotation index and
// opens the next file. Callers hold mu. If the next file cannot be opened
// the session falls back to the previous file name so it keeps an open
// handle, and the failure is surfaced to the caller.
func (s *session) rotate() error {
	name := s.file.Name()
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("%w: flush %s: %w", ErrWriteFailed, name, err)
	}
	if err := s.file.Close(); err != nil {
		s.file = nil
		return fmt.Errorf("%w: close %s: %w", ErrWriteFailed, name, err)
	}
	s.file = nil
	s.index++

	if err := s.open(); err != nil {
		s.index--
		// Best effort: reopen the file we just closed so the session stays
		// usable. The original failure is what the caller needs to see.
		_ = s.open()
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// Close flushes and closes the current file. Closing an already-closed
// session is a no-op.
func (s *session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.file == nil {
		return nil
	}

	syncErr := s.file.Sync()
	closeErr := s.file.Close()
	s.file = nil
	if syncErr != nil {
		return fmt.Errorf("failed to flush log file: %w", syncErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close log file: %w", closeErr)
	}
	return nil
}
