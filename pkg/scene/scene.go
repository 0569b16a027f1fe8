// Package scene holds the live scene: a flat arena of tracked objects
// with weak, by-tag parent references. Only objects explicitly tracked
// here participate in save/load; incidental scaffolding (lights,
// colliders created as spawn side effects) never enters the arena.
package scene

import "github.com/anvil3d/scenevault/pkg/model"

// Object is one tracked entry in the arena. Parent is a non-owning
// reference: it is looked up at resolution time and may point at an
// object that has since been despawned.
type Object struct {
	Tag       model.Tag
	Kind      model.Kind
	Name      string
	Parent    model.Tag // zero when the object has no parent
	Transform *model.Transform
}

// Scene is the live scene arena. It is not safe for concurrent use;
// requests are processed one at a time.
type Scene struct {
	next    model.Tag
	objects map[model.Tag]*Object
	order   []model.Tag
}

func New() *Scene {
	return &Scene{
		objects: make(map[model.Tag]*Object),
	}
}

// Track adds an object to the arena and returns it with a freshly
// assigned tag.
func (s *Scene) Track(kind model.Kind, name string, parent model.Tag, transform *model.Transform) *Object {
	s.next++
	obj := &Object{
		Tag:       s.next,
		Kind:      kind,
		Name:      name,
		Parent:    parent,
		Transform: transform,
	}
	s.objects[obj.Tag] = obj
	s.order = append(s.order, obj.Tag)
	return obj
}

// Lookup resolves a tag to its object.
func (s *Scene) Lookup(tag model.Tag) (*Object, bool) {
	obj, ok := s.objects[tag]
	return obj, ok
}

// Tracked returns all live objects in insertion order. Parents always
// precede their children because a parent must exist to be referenced.
func (s *Scene) Tracked() []*Object {
	live := make([]*Object, 0, len(s.objects))
	for _, tag := range s.order {
		if obj, ok := s.objects[tag]; ok {
			live = append(live, obj)
		}
	}
	return live
}

// Len returns the number of live objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// FindByName returns the first live object with the given name, in
// insertion order. Name uniqueness is not enforced, so resolution among
// duplicates is best-effort.
func (s *Scene) FindByName(name string) (*Object, bool) {
	if name == "" {
		return nil, false
	}
	for _, tag := range s.order {
		if obj, ok := s.objects[tag]; ok && obj.Name == name {
			return obj, true
		}
	}
	return nil, false
}

// Despawn removes an object and all of its descendants from the arena.
// Despawning an unknown tag is a no-op.
func (s *Scene) Despawn(tag model.Tag) {
	if _, ok := s.objects[tag]; !ok {
		return
	}

	children := make(map[model.Tag][]model.Tag, len(s.objects))
	for t, obj := range s.objects {
		if obj.Parent != 0 {
			children[obj.Parent] = append(children[obj.Parent], t)
		}
	}

	stack := []model.Tag{tag}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := s.objects[t]; !ok {
			continue
		}
		delete(s.objects, t)
		stack = append(stack, children[t]...)
	}

	// Drop despawned tags from the order so it stays proportional to the
	// live object count across repeated load cycles.
	live := s.order[:0]
	for _, t := range s.order {
		if _, ok := s.objects[t]; ok {
			live = append(live, t)
		}
	}
	s.order = live
}
