package repository_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/anvil3d/scenevault/pkg/repository"
	"github.com/m-mizutani/gt"
)

func newStore(t *testing.T) (*repository.DirStore, string) {
	dir := t.TempDir()
	store, err := repository.NewDirStore(dir)
	gt.NoError(t, err)
	return store, dir
}

// occupy creates a save file directly, the way an earlier save (or an
// external writer) would have left it.
func occupy(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name+".scene.yml")
	gt.NoError(t, os.WriteFile(path, []byte("[]\n"), 0o644))
}

func TestAllocateEmptyDir(t *testing.T) {
	store, dir := newStore(t)

	path, err := store.Allocate("room")
	gt.NoError(t, err)
	gt.Equal(t, path, filepath.Join(dir, "room.scene.yml"))

	// Allocation probes, it does not reserve.
	_, statErr := os.Stat(path)
	gt.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestAllocateSkipsOccupiedCandidates(t *testing.T) {
	store, dir := newStore(t)
	occupy(t, dir, "room")
	occupy(t, dir, "room-1")

	path, err := store.Allocate("room")
	gt.NoError(t, err)
	gt.Equal(t, path, filepath.Join(dir, "room-2.scene.yml"))
}

func TestAllocateBoundary(t *testing.T) {
	store, dir := newStore(t)
	occupy(t, dir, "room")
	for i := 1; i <= 8; i++ {
		occupy(t, dir, fmt.Sprintf("room-%d", i))
	}

	// Nine existing files: the tenth candidate is still free.
	path, err := store.Allocate("room")
	gt.NoError(t, err)
	gt.Equal(t, path, filepath.Join(dir, "room-9.scene.yml"))

	occupy(t, dir, "room-9")
	_, err = store.Allocate("room")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrTooManyCollisions))
}

func TestAllocateUntestableCandidates(t *testing.T) {
	store, _ := newStore(t)

	// A NUL byte makes stat fail outright for every candidate, rather
	// than report not-exist: no candidate can be tested at all.
	_, err := store.Allocate("room\x00")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidPath))
}

func TestWriteRefusesExistingFile(t *testing.T) {
	store, _ := newStore(t)

	path, err := store.Allocate("room")
	gt.NoError(t, err)
	gt.NoError(t, store.Write(path, []byte("[]\n")))

	gt.Error(t, store.Write(path, []byte("[]\n")))
}

func TestReadWrite(t *testing.T) {
	store, _ := newStore(t)

	path, err := store.Allocate("room")
	gt.NoError(t, err)
	gt.NoError(t, store.Write(path, []byte("- kind: table\n")))

	data, err := store.Read("room")
	gt.NoError(t, err)
	gt.Equal(t, string(data), "- kind: table\n")
}

func TestReadMissing(t *testing.T) {
	store, _ := newStore(t)

	_, err := store.Read("nope")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrMissingFile))
}

func TestList(t *testing.T) {
	store, dir := newStore(t)

	names, err := store.List()
	gt.NoError(t, err)
	gt.Equal(t, len(names), 0)

	occupy(t, dir, "room-1")
	occupy(t, dir, "attic")
	occupy(t, dir, "room")

	names, err = store.List()
	gt.NoError(t, err)
	gt.Equal(t, names, []string{"attic", "room", "room-1"})
}
