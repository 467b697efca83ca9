package rigmath

import "github.com/go-gl/mathgl/mgl32"

var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// Yaw is a rotation about the world Y axis.
func Yaw(angle float32) mgl32.Quat { return mgl32.QuatRotate(angle, AxisY) }

// Pitch is a rotation about the X axis.
func Pitch(angle float32) mgl32.Quat { return mgl32.QuatRotate(angle, AxisX) }

// Roll is a rotation about the Z axis.
func Roll(angle float32) mgl32.Quat { return mgl32.QuatRotate(angle, AxisZ) }

// LookAt returns the orientation of a node at eye whose -Z axis points at target and
// whose Y axis leans toward up.
func LookAt(eye, target, up mgl32.Vec3) mgl32.Quat {
	forward := target.Sub(eye)
	if forward.Len() == 0 {
		return mgl32.QuatIdent()
	}
	forward = forward.Normalize()
	right := forward.Cross(up)
	if right.Len() == 0 {
		// up is parallel to the view direction; any perpendicular will do
		right = forward.Cross(AxisX)
	}
	right = right.Normalize()
	realUp := right.Cross(forward)

	basis := mgl32.Mat3FromCols(right, realUp, forward.Mul(-1))
	return mgl32.Mat4ToQuat(basis.Mat4()).Normalize()
}

// Compose builds the local matrix translation * rotation * scale.
func Compose(translation mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(translation[0], translation[1], translation[2]).
		Mul4(rotation.Mat4()).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

// Position extracts the translation column of a world matrix.
func Position(m mgl32.Mat4) mgl32.Vec3 {
	return m.Col(3).Vec3()
}
