// Package persist orchestrates save and load requests: it walks the live
// scene, drives the codec and the store, and emits spawn requests to the
// external spawn mechanism. Each request is independent and terminal on
// failure; there is no retry and no partial commit.
package persist

import (
	"context"
	"io"
	"os"

	"github.com/anvil3d/scenevault/pkg/model"
	"github.com/anvil3d/scenevault/pkg/repository"
	"github.com/anvil3d/scenevault/pkg/scene"
)

// Spawner is the outgoing boundary to the spawn mechanism. It owns the
// default-name convention and the actual instantiation of objects;
// spawn emission is fire-and-forget from the orchestrator's standpoint.
type Spawner interface {
	scene.DefaultNamer
	Spawn(ctx context.Context, req model.SpawnRequest) error
}

// UseCase processes save and load requests against a live scene.
type UseCase struct {
	scene   *scene.Scene
	store   repository.Store
	spawner Spawner
	output  io.Writer
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithOutput sets the writer for user-facing reports
func WithOutput(w io.Writer) Option {
	return func(uc *UseCase) {
		uc.output = w
	}
}

// New creates a persistence UseCase instance
func New(sc *scene.Scene, store repository.Store, spawner Spawner, opts ...Option) *UseCase {
	uc := &UseCase{
		scene:   sc,
		store:   store,
		spawner: spawner,
		output:  os.Stdout,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
