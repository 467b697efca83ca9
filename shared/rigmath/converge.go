// Package rigmath holds the engine-free math behind the camera rig: convergence steps,
// axis rotations and screen projection.
package rigmath

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Frame time at which a single step reaches its target.
	ConvergeWindow = 100 * time.Millisecond

	// Below these distances a step snaps straight to the target.
	TranslationSnap float32 = 0.005
	RotationSnap    float32 = 1e-5
)

// LerpFactor maps the frame time onto the interpolation weight used by both steps,
// clamped to [0, 1].
func LerpFactor(dt time.Duration) float32 {
	t := float32(dt.Microseconds()) / float32(ConvergeWindow.Microseconds())
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// StepTranslation moves current toward target by weight t, snapping when close.
func StepTranslation(current, target mgl32.Vec3, t float32) mgl32.Vec3 {
	if current == target {
		return current
	}
	diff := target.Sub(current)
	if diff.Len() > TranslationSnap {
		return current.Add(diff.Mul(t))
	}
	return target
}

// StepRotation moves current toward target by a component-wise lerp of weight t. The
// result is not normalised; it snaps to target once every component is within
// RotationSnap.
func StepRotation(current, target mgl32.Quat, t float32) mgl32.Quat {
	if current == target {
		return current
	}
	if !QuatWithin(current, target, RotationSnap) {
		return mgl32.QuatLerp(current, target, t)
	}
	return target
}

// QuatWithin reports whether every component of a and b differs by at most eps.
func QuatWithin(a, b mgl32.Quat, eps float32) bool {
	return a.ApproxEqualFunc(b, func(x, y float32) bool {
		return mgl32.Abs(x-y) <= eps
	})
}
