package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

const (
	fileExt = ".scene.yml"

	// maxCandidates bounds the allocator probe: the base name plus nine
	// numbered fallbacks.
	maxCandidates = 10
)

// DirStore keeps one file per saved scene inside a single directory.
// The directory is externally owned; the only discipline enforced here
// is that writes target freshly allocated, previously nonexistent paths.
type DirStore struct {
	dir string
}

// NewDirStore opens (creating if needed) the save directory.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create save directory", goerr.V("dir", dir))
	}
	return &DirStore{dir: dir}, nil
}

// Allocate probes base, base-1, ... base-9 and returns the first
// candidate whose file does not exist yet. Candidates that cannot be
// tested for existence are skipped; if every candidate is untestable the
// result is ErrInvalidPath, and if every testable candidate is occupied
// it is ErrTooManyCollisions.
func (s *DirStore) Allocate(base string) (string, error) {
	tested := false
	for i := 0; i < maxCandidates; i++ {
		name := base
		if i > 0 {
			name = fmt.Sprintf("%s-%d", base, i)
		}
		path := s.Path(name)

		_, err := os.Stat(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			return path, nil
		case err != nil:
			continue
		default:
			tested = true
		}
	}
	if !tested {
		return "", goerr.Wrap(ErrInvalidPath, "no candidate could be tested", goerr.V("base", base))
	}
	return "", goerr.Wrap(ErrTooManyCollisions, "all candidates occupied", goerr.V("base", base))
}

// Write stores data at an allocated path. The file must not exist:
// O_EXCL turns a lost race with an external writer into an error instead
// of an overwrite.
func (s *DirStore) Write(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return goerr.Wrap(err, "failed to create scene file", goerr.V("path", path))
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return goerr.Wrap(err, "failed to write scene file", goerr.V("path", path))
	}
	return nil
}

// Read loads the scene saved under name. Loads target the exact
// canonical path; no collision probing happens here.
func (s *DirStore) Read(name string) ([]byte, error) {
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, goerr.Wrap(ErrMissingFile, "no saved scene", goerr.V("path", path))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read scene file", goerr.V("path", path))
	}
	return data, nil
}

// List returns the names of all saved scenes, sorted.
func (s *DirStore) List() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+fileExt))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list save directory", goerr.V("dir", s.dir))
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), fileExt))
	}
	sort.Strings(names)
	return names, nil
}

// Path returns the canonical path for a scene name. Loads target this
// exact path; only saves go through candidate probing.
func (s *DirStore) Path(name string) string {
	return filepath.Join(s.dir, name+fileExt)
}
