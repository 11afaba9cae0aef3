package scores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// FileStore keeps every record in a single JSON array on disk.
//
// Writes load the whole file, append, and replace it through a temporary
// file and rename, serialized by a mutex. Separate processes sharing the
// file can still lose each other's writes.
type FileStore struct {
	path   string
	logger *log.Logger
	mu     sync.Mutex
}

// OpenFileStore opens the score file at path, creating it (and its
// directory) with an empty array when missing. A nil logger uses the
// default charmbracelet logger.
func OpenFileStore(path string, logger *log.Logger) (*FileStore, error) {
	if logger == nil {
		logger = log.Default()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scores: create directory: %w", err)
	}

	s := &FileStore{path: path, logger: logger}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := s.save([]Record{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("scores: stat %s: %w", path, err)
	}

	return s, nil
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// All returns every stored record. A file that does not hold a JSON
// array reads as empty.
func (s *FileStore) All(_ context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Append adds r to the end of the file.
func (s *FileStore) Append(_ context.Context, r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	return s.save(append(records, r))
}

// Close is a no-op; the file is only open during reads and writes.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scores: read %s: %w", s.path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("score file is malformed, treating as empty", "path", s.path, "err", err)
		return []Record{}, nil
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

func (s *FileStore) save(records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("scores: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".scores-*.json")
	if err != nil {
		return fmt.Errorf("scores: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("scores: chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("scores: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("scores: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("scores: replace %s: %w", s.path, err)
	}
	return nil
}
