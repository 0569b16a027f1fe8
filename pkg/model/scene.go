package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidSceneName = goerr.New("invalid scene name")
)

// Kind identifies what the spawn mechanism should instantiate for an
// object. It is opaque to the persistence layer and must round-trip
// through a save file unchanged.
type Kind string

// Tag is a stable handle into the live scene arena. The zero Tag means
// "no object" and is never assigned.
type Tag uint64

// SceneObjectRecord is the unit of persistence: one tracked object as
// observed at save time. Records are produced transiently during a save
// and never mutated.
type SceneObjectRecord struct {
	Kind      Kind
	Transform Transform
	Name      *string

	// ParentName is set only when the live parent is itself tracked and
	// carries a name that differs from its kind's default name.
	// Default-named parents are treated as anonymous: the reconstructed
	// scene only has to nest the child under some equivalently-typed
	// parent, not reproduce the auto-generated name.
	ParentName *string
}

// SpawnRequest instructs the spawn mechanism to create one object. It is
// structurally identical to SceneObjectRecord but directional: Parent is
// a name reference resolved by the spawn mechanism at spawn time.
type SpawnRequest struct {
	Kind      Kind
	Transform Transform
	Name      *string
	Parent    *string
}

// SaveRequest asks for the current scene to be persisted under a logical
// name. One-shot; not stored.
type SaveRequest struct {
	Name string
}

// LoadRequest asks for a persisted scene to replace the current one.
type LoadRequest struct {
	Name string
}

// Validate checks that the requested name is usable as a save file name.
func (r SaveRequest) Validate() error {
	return validateSceneName(r.Name)
}

// Validate checks that the requested name is usable as a save file name.
func (r LoadRequest) Validate() error {
	return validateSceneName(r.Name)
}

func validateSceneName(name string) error {
	if name == "" {
		return goerr.Wrap(ErrInvalidSceneName, "name is empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return goerr.Wrap(ErrInvalidSceneName, "name must not contain path elements", goerr.V("name", name))
	}
	return nil
}
