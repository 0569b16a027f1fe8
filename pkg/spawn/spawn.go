// Package spawn is the reference spawn mechanism: it instantiates spawn
// requests into a live scene and owns the default-name convention for
// object kinds. Mesh, material, and physics setup belong to the
// application embedding this registry, not to the persistence layer.
package spawn

import (
	"context"
	"sort"
	"strings"

	"github.com/anvil3d/scenevault/pkg/model"
	"github.com/anvil3d/scenevault/pkg/scene"
	"github.com/anvil3d/scenevault/pkg/utils/logging"
)

// Registry maps object kinds to their default display names and spawns
// requested objects into a scene.
type Registry struct {
	sc    *scene.Scene
	names map[model.Kind]string
}

// New creates a registry over the given live scene, pre-populated with
// the built-in object kinds.
func New(sc *scene.Scene) *Registry {
	return &Registry{
		sc: sc,
		names: map[model.Kind]string{
			"table":       "Table",
			"lamp":        "Lamp",
			"chair":       "Chair",
			"crate":       "Crate",
			"point-light": "Point Light",
			"camera-rig":  "Camera Rig",
		},
	}
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []model.Kind {
	kinds := make([]model.Kind, 0, len(r.names))
	for k := range r.names {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// DefaultName reports the display name assigned when a spawn request
// carries none. Unregistered kinds get a title-cased form of the kind so
// they still round-trip through a save file.
func (r *Registry) DefaultName(kind model.Kind) string {
	if name, ok := r.names[kind]; ok {
		return name
	}
	return titleCase(string(kind))
}

// Spawn instantiates one object into the scene. A parent reference that
// does not resolve among tracked objects spawns the object as a root and
// logs a warning; it does not fail the request.
func (r *Registry) Spawn(ctx context.Context, req model.SpawnRequest) error {
	name := r.DefaultName(req.Kind)
	if req.Name != nil && *req.Name != "" {
		name = *req.Name
	}

	var parent model.Tag
	if req.Parent != nil {
		obj, ok := r.sc.FindByName(*req.Parent)
		if !ok {
			logging.From(ctx).Warn("parent not found, spawning as root",
				"kind", req.Kind, "name", name, "parent", *req.Parent)
		} else {
			parent = obj.Tag
		}
	}

	transform := req.Transform
	r.sc.Track(req.Kind, name, parent, &transform)
	return nil
}

func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
