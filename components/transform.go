package components

import (
	"github.com/automoto/orbitrig/shared/rigmath"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// TransformData is the local transform of a node, relative to its parent.
type TransformData struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// IdentityTransform returns a transform at the origin with no rotation and unit scale.
func IdentityTransform() TransformData {
	return TransformData{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// TransformAt returns an identity transform moved to translation.
func TransformAt(translation mgl32.Vec3) TransformData {
	t := IdentityTransform()
	t.Translation = translation
	return t
}

// LookingAt returns a transform at eye facing target with Y up.
func LookingAt(eye, target mgl32.Vec3) TransformData {
	t := TransformAt(eye)
	t.Rotation = rigmath.LookAt(eye, target, rigmath.AxisY)
	return t
}

// Matrix returns translation * rotation * scale.
func (t TransformData) Matrix() mgl32.Mat4 {
	return rigmath.Compose(t.Translation, t.Rotation, t.Scale)
}

var Transform = donburi.NewComponentType[TransformData]()

// GlobalTransformData is the world matrix derived from the Transform hierarchy.
type GlobalTransformData struct {
	Matrix mgl32.Mat4
}

// Position is the world-space origin of the node.
func (g GlobalTransformData) Position() mgl32.Vec3 {
	return rigmath.Position(g.Matrix)
}

var GlobalTransform = donburi.NewComponentType[GlobalTransformData]()
