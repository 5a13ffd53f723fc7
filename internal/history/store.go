package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
)

// ErrNotFound is returned when no record carries the requested ID.
var ErrNotFound = errors.New("history record not found")

// FileStore keeps the record log in a single JSON file. Each append rewrites
// the whole file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (s *FileStore) load() ([]domain.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var recs []domain.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("reading history %s: %w", s.path, err)
	}
	return recs, nil
}

func (s *FileStore) write(recs []domain.Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Append adds one record to the end of the log.
func (s *FileStore) Append(rec domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := s.load()
	if err != nil {
		return err
	}
	return s.write(append(recs, rec))
}

// List returns all records, newest first.
func (s *FileStore) List() ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, len(recs))
	for i, r := range recs {
		out[len(recs)-1-i] = r
	}
	return out, nil
}

// Get looks a record up by ID.
func (s *FileStore) Get(id string) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := s.load()
	if err != nil {
		return domain.Record{}, err
	}
	for _, r := range recs {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
