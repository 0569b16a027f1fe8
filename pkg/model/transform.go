package model

import "github.com/go-gl/mathgl/mgl64"

// Transform places an object in 3D space. The zero value is not a valid
// transform (zero scale, zero rotation); use IdentityTransform.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// IdentityTransform returns the transform applied to objects that were
// saved without one.
func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// Translated returns the identity transform moved to (x, y, z).
func Translated(x, y, z float64) Transform {
	t := IdentityTransform()
	t.Translation = mgl64.Vec3{x, y, z}
	return t
}

// IsIdentity reports whether the transform equals IdentityTransform.
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}
