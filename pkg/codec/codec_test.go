package codec_test

import (
	"errors"
	"testing"

	"github.com/anvil3d/scenevault/pkg/codec"
	"github.com/anvil3d/scenevault/pkg/model"
	"github.com/m-mizutani/gt"
)

func ptr(s string) *string { return &s }

func TestRoundTrip(t *testing.T) {
	records := []model.SceneObjectRecord{
		{Kind: "table", Transform: model.IdentityTransform(), Name: ptr("KitchenTable")},
		{Kind: "lamp", Transform: model.Translated(0, 1, 0), Name: ptr("Lamp"), ParentName: ptr("KitchenTable")},
		{Kind: "crate", Transform: model.IdentityTransform()},
	}

	data, err := codec.Encode(records)
	gt.NoError(t, err)

	requests, err := codec.Decode(data)
	gt.NoError(t, err)
	gt.Equal(t, len(requests), len(records))

	for i, req := range requests {
		gt.Equal(t, req.Kind, records[i].Kind)
		gt.Equal(t, req.Transform, records[i].Transform)
		gt.Equal(t, req.Name, records[i].Name)
		gt.Equal(t, req.Parent, records[i].ParentName)
	}
}

func TestRoundTripRotationAndScale(t *testing.T) {
	transform := model.IdentityTransform()
	transform.Rotation.W = 0.7071067811865476
	transform.Rotation.V[1] = 0.7071067811865476
	transform.Scale[0] = 2.5

	data, err := codec.Encode([]model.SceneObjectRecord{
		{Kind: "crate", Transform: transform},
	})
	gt.NoError(t, err)

	requests, err := codec.Decode(data)
	gt.NoError(t, err)
	gt.Equal(t, len(requests), 1)
	gt.Equal(t, requests[0].Transform, transform)
}

func TestEncodeEmptySceneRoundTrips(t *testing.T) {
	data, err := codec.Encode(nil)
	gt.NoError(t, err)

	requests, err := codec.Decode(data)
	gt.NoError(t, err)
	gt.Equal(t, len(requests), 0)
}

func TestEncodeOmitsIdentityTransform(t *testing.T) {
	data, err := codec.Encode([]model.SceneObjectRecord{
		{Kind: "table", Transform: model.IdentityTransform(), Name: ptr("Table")},
	})
	gt.NoError(t, err)
	gt.S(t, string(data)).NotContains("transform")
}

func TestDecodeKindIsOpaque(t *testing.T) {
	requests, err := codec.Decode([]byte("- kind: some-modded-kind.v2\n"))
	gt.NoError(t, err)
	gt.Equal(t, requests[0].Kind, model.Kind("some-modded-kind.v2"))
	gt.Equal(t, requests[0].Transform, model.IdentityTransform())
}

func TestDecodeMalformed(t *testing.T) {
	testCases := []struct {
		title string
		input string
	}{
		{"empty", ""},
		{"blank", "   \n\t\n"},
		{"not a sequence", "kind: table\n"},
		{"scalar document", "42\n"},
		{"garbage", "{{{{"},
		{"truncated quote", `- kind: "tab`},
		{"kind wrong type", "- kind: [1, 2]\n"},
		{"name wrong type", "- kind: table\n  name: [1]\n"},
		{"missing kind", "- name: Foo\n"},
		{"transform wrong type", "- kind: table\n  transform: 5\n"},
		{"translation wrong type", "- kind: table\n  transform:\n    translation: nope\n"},
		{"translation arity", "- kind: table\n  transform:\n    translation: [1, 2]\n"},
		{"rotation arity", "- kind: table\n  transform:\n    rotation: [0, 0, 1]\n"},
		{"scale arity", "- kind: table\n  transform:\n    scale: [1, 1, 1, 1]\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			_, err := codec.Decode([]byte(tc.input))
			gt.Error(t, err)
			gt.True(t, errors.Is(err, codec.ErrMalformedData))
		})
	}
}
