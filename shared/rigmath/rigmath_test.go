package rigmath

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func TestLerpFactor(t *testing.T) {
	assert.Equal(t, float32(0), LerpFactor(0))
	assert.InDelta(t, 0.5, LerpFactor(50*time.Millisecond), 1e-6)
	assert.Equal(t, float32(1), LerpFactor(100*time.Millisecond))
	assert.Equal(t, float32(1), LerpFactor(time.Second))
	assert.Equal(t, float32(0), LerpFactor(-time.Millisecond))
}

func TestStepTranslation(t *testing.T) {
	cur := mgl32.Vec3{0, 0, 0}

	got := StepTranslation(cur, mgl32.Vec3{10, 0, 0}, 0.25)
	assertVec(t, mgl32.Vec3{2.5, 0, 0}, got, 1e-6)

	// Inside the snap distance the target is taken exactly.
	near := mgl32.Vec3{0.004, 0, 0}
	assert.Equal(t, near, StepTranslation(cur, near, 0.01))

	assert.Equal(t, cur, StepTranslation(cur, cur, 1))
}

func TestStepTranslationConverges(t *testing.T) {
	cur := mgl32.Vec3{0, 0, 0}
	target := mgl32.Vec3{3, -4, 12}
	for i := 0; i < 200 && cur != target; i++ {
		cur = StepTranslation(cur, target, LerpFactor(16*time.Millisecond))
	}
	assert.Equal(t, target, cur)
}

func TestStepRotationIsComponentWise(t *testing.T) {
	from := mgl32.QuatIdent()
	to := Yaw(math.Pi / 2)

	got := StepRotation(from, to, 0.5)
	want := mgl32.Quat{
		W: (from.W + to.W) / 2,
		V: mgl32.Vec3{(from.V[0] + to.V[0]) / 2, (from.V[1] + to.V[1]) / 2, (from.V[2] + to.V[2]) / 2},
	}
	assert.InDelta(t, want.W, got.W, 1e-6)
	assertVec(t, want.V, got.V, 1e-6)
	// Plain lerp shrinks the quaternion.
	assert.Less(t, got.Len(), float32(1))
}

func TestStepRotationSnaps(t *testing.T) {
	from := mgl32.QuatIdent()
	to := mgl32.Quat{W: 1, V: mgl32.Vec3{5e-6, 0, 0}}
	assert.Equal(t, to, StepRotation(from, to, 0.1))
}

func TestQuatWithin(t *testing.T) {
	a := mgl32.QuatIdent()
	assert.True(t, QuatWithin(a, mgl32.Quat{W: 1 - 1e-6}, 1e-5))
	assert.False(t, QuatWithin(a, mgl32.Quat{W: 1, V: mgl32.Vec3{0, 1e-3, 0}}, 1e-5))
}

func TestLookAtPointsNegativeZAtTarget(t *testing.T) {
	eye := mgl32.Vec3{-75, 75, 0}
	q := LookAt(eye, mgl32.Vec3{}, AxisY)

	forward := q.Rotate(mgl32.Vec3{0, 0, -1})
	assertVec(t, mgl32.Vec3{}.Sub(eye).Normalize(), forward, 1e-5)

	right := q.Rotate(AxisX)
	assertVec(t, AxisZ, right, 1e-5)
}

func TestCompose(t *testing.T) {
	m := Compose(mgl32.Vec3{1, 2, 3}, Yaw(math.Pi/2), mgl32.Vec3{1, 1, 1})
	assertVec(t, mgl32.Vec3{1, 2, 3}, Position(m), 1e-6)

	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assertVec(t, mgl32.Vec3{1, 2, 2}, p, 1e-5)
}

func TestProjectAndScreenRay(t *testing.T) {
	eye := mgl32.Vec3{-10, 10, 0}
	cam := Compose(eye, LookAt(eye, mgl32.Vec3{}, AxisY), mgl32.Vec3{1, 1, 1})
	lens := Lens{Fov: 0.8, Near: 0.1, Far: 100}
	vp := Viewport{Width: 800, Height: 600}

	x, y, ok := Project(ViewProjection(cam, lens, vp), mgl32.Vec3{}, vp)
	require.True(t, ok)
	assert.InDelta(t, 400, x, 0.01)
	assert.InDelta(t, 300, y, 0.01)

	_, _, ok = Project(ViewProjection(cam, lens, vp), mgl32.Vec3{-20, 20, 0}, vp)
	assert.False(t, ok, "point behind the camera")

	origin, dir := ScreenRay(cam, lens, vp, 400, 300)
	hit, ok := IntersectGround(origin, dir, 0)
	require.True(t, ok)
	assertVec(t, mgl32.Vec3{}, hit, 1e-3)
}

func TestScreenRayRoundTripsOffCenter(t *testing.T) {
	eye := mgl32.Vec3{-10, 10, 0}
	cam := Compose(eye, LookAt(eye, mgl32.Vec3{}, AxisY), mgl32.Vec3{1, 1, 1})
	lens := Lens{Fov: 0.8, Near: 0.1, Far: 100}
	vp := Viewport{Width: 800, Height: 600}

	point := mgl32.Vec3{1.5, 0, -2}
	x, y, ok := Project(ViewProjection(cam, lens, vp), point, vp)
	require.True(t, ok)

	origin, dir := ScreenRay(cam, lens, vp, x, y)
	hit, ok := IntersectGround(origin, dir, 0)
	require.True(t, ok)
	assertVec(t, point, hit, 1e-2)
}

func TestIntersectGroundMisses(t *testing.T) {
	_, ok := IntersectGround(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{1, 0, 0}, 0)
	assert.False(t, ok, "parallel")

	_, ok = IntersectGround(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 1, 0}, 0)
	assert.False(t, ok, "pointing away")
}
