package artifacts

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/youruser/cardforge/internal/util"
)

// FileStore writes artifacts into a directory and has the janitor remove
// them when they expire.
type FileStore struct {
	dir     string
	janitor *Janitor
}

func NewFileStore(dir string, janitor *Janitor) (*FileStore, error) {
	if err := util.EnsureDir(dir); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, janitor: janitor}, nil
}

// Path is where name lives on disk.
func (s *FileStore) Path(name string) string { return filepath.Join(s.dir, name) }

func (s *FileStore) Save(_ context.Context, name string, data []byte, lifetime time.Duration) error {
	if err := CheckName(name); err != nil {
		return err
	}
	path := s.Path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	s.janitor.Schedule(path, lifetime)
	return nil
}

func (s *FileStore) Get(_ context.Context, name string) (*Stored, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Stored{Name: name, ContentType: ContentType(name), Data: data}, nil
}
