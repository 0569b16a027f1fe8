// Package codec converts between scene object records and their persisted
// textual form. It performs no I/O: encoding and decoding are pure
// transformations over byte slices.
package codec

import (
	"strings"

	"github.com/anvil3d/scenevault/pkg/model"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// ErrMalformedData is returned when persisted text does not parse as a
// valid sequence of scene records. Decoding untrusted or hand-edited
// files must surface this error rather than panic.
var ErrMalformedData = goerr.New("malformed scene data")

// record is the wire form of one scene object. Field names are the
// on-disk schema and must stay stable across releases.
type record struct {
	Kind      string         `yaml:"kind"`
	Transform *wireTransform `yaml:"transform,omitempty"`
	Name      *string        `yaml:"name,omitempty"`
	Parent    *string        `yaml:"parent,omitempty"`
}

// wireTransform keeps saved files human-diffable: vectors are flow
// sequences, and components at their identity value are omitted.
// Rotation is a quaternion in [x, y, z, w] order.
type wireTransform struct {
	Translation []float64 `yaml:"translation,omitempty,flow"`
	Rotation    []float64 `yaml:"rotation,omitempty,flow"`
	Scale       []float64 `yaml:"scale,omitempty,flow"`
}

// Encode serializes records into the persisted scene format. It never
// fails for records produced by the hierarchy resolver.
func Encode(records []model.SceneObjectRecord) ([]byte, error) {
	wire := make([]record, 0, len(records))
	for _, r := range records {
		wire = append(wire, record{
			Kind:      string(r.Kind),
			Transform: encodeTransform(r.Transform),
			Name:      r.Name,
			Parent:    r.ParentName,
		})
	}

	data, err := yaml.Marshal(wire)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal scene records")
	}
	return data, nil
}

// Decode parses persisted text back into spawn requests, in file order.
// Any structural problem yields ErrMalformedData.
func Decode(data []byte) ([]model.SpawnRequest, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, goerr.Wrap(ErrMalformedData, "empty document")
	}

	var wire []record
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, goerr.Wrap(ErrMalformedData, "not a scene record sequence", goerr.V("cause", err.Error()))
	}

	requests := make([]model.SpawnRequest, 0, len(wire))
	for i, r := range wire {
		if r.Kind == "" {
			return nil, goerr.Wrap(ErrMalformedData, "record has no kind", goerr.V("index", i))
		}
		transform, err := decodeTransform(r.Transform)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid transform", goerr.V("index", i))
		}
		requests = append(requests, model.SpawnRequest{
			Kind:      model.Kind(r.Kind),
			Transform: transform,
			Name:      r.Name,
			Parent:    r.Parent,
		})
	}
	return requests, nil
}

func encodeTransform(t model.Transform) *wireTransform {
	if t.IsIdentity() {
		return nil
	}

	w := &wireTransform{}
	if t.Translation != (mgl64.Vec3{}) {
		w.Translation = t.Translation[:]
	}
	if t.Rotation != mgl64.QuatIdent() {
		w.Rotation = []float64{t.Rotation.V[0], t.Rotation.V[1], t.Rotation.V[2], t.Rotation.W}
	}
	if t.Scale != (mgl64.Vec3{1, 1, 1}) {
		w.Scale = t.Scale[:]
	}
	return w
}

func decodeTransform(w *wireTransform) (model.Transform, error) {
	t := model.IdentityTransform()
	if w == nil {
		return t, nil
	}

	if w.Translation != nil {
		if len(w.Translation) != 3 {
			return t, goerr.Wrap(ErrMalformedData, "translation must have 3 components", goerr.V("got", len(w.Translation)))
		}
		copy(t.Translation[:], w.Translation)
	}
	if w.Rotation != nil {
		if len(w.Rotation) != 4 {
			return t, goerr.Wrap(ErrMalformedData, "rotation must have 4 components", goerr.V("got", len(w.Rotation)))
		}
		t.Rotation = mgl64.Quat{
			V: mgl64.Vec3{w.Rotation[0], w.Rotation[1], w.Rotation[2]},
			W: w.Rotation[3],
		}
	}
	if w.Scale != nil {
		if len(w.Scale) != 3 {
			return t, goerr.Wrap(ErrMalformedData, "scale must have 3 components", goerr.V("got", len(w.Scale)))
		}
		copy(t.Scale[:], w.Scale)
	}
	return t, nil
}
