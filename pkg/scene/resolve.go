package scene

import "github.com/anvil3d/scenevault/pkg/model"

// DefaultNamer reports the display name a kind's spawn mechanism assigns
// when no explicit name is given. The default-name heuristic for
// collapsing parent references lives entirely behind this interface.
type DefaultNamer interface {
	DefaultName(kind model.Kind) string
}

// Resolve derives the persistable records for every tracked object, in
// arena order. Parent references survive only as names, and only when
// the parent is itself tracked, named, and not carrying its kind's
// default name. Single pass over the arena; parent lookups go through
// the tag index.
func Resolve(sc *Scene, namer DefaultNamer) []model.SceneObjectRecord {
	objects := sc.Tracked()
	records := make([]model.SceneObjectRecord, 0, len(objects))

	for _, obj := range objects {
		rec := model.SceneObjectRecord{
			Kind:      obj.Kind,
			Transform: model.IdentityTransform(),
		}
		if obj.Transform != nil {
			rec.Transform = *obj.Transform
		}
		if obj.Name != "" {
			name := obj.Name
			rec.Name = &name
		}
		if parent, ok := sc.Lookup(obj.Parent); ok {
			if parent.Name != "" && parent.Name != namer.DefaultName(parent.Kind) {
				parentName := parent.Name
				rec.ParentName = &parentName
			}
		}
		records = append(records, rec)
	}
	return records
}
