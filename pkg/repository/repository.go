// Package repository persists encoded scenes under logical names.
package repository

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidPath means no save path candidate could even be tested
	// for existence.
	ErrInvalidPath = goerr.New("no testable save path")

	// ErrTooManyCollisions means every probed candidate already exists.
	ErrTooManyCollisions = goerr.New("too many saves with this name")

	// ErrMissingFile means the load target does not exist. It is a
	// specialization of a read failure, surfaced distinctly to the user.
	ErrMissingFile = goerr.New("scene file does not exist")
)

// Store is the persistence boundary used by the orchestrator.
type Store interface {
	// Allocate returns a collision-free destination path for a save
	// under the given base name.
	Allocate(base string) (string, error)

	// Write stores encoded scene data at a path returned by Allocate.
	// The path must not already exist.
	Write(path string, data []byte) error

	// Read loads the scene saved under the exact given name.
	Read(name string) ([]byte, error)

	// Path returns the canonical path for a scene name, for reporting.
	Path(name string) string

	// List returns the names of all saved scenes.
	List() ([]string, error)
}
