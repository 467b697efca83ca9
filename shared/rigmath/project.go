package rigmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Lens describes a perspective camera.
type Lens struct {
	Fov  float32 // Vertical, radians
	Near float32
	Far  float32
}

// Viewport is the screen area a lens renders into, in pixels.
type Viewport struct {
	Width, Height int
}

func (v Viewport) aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// ViewProjection returns projection * view for a camera whose world matrix is camWorld.
func ViewProjection(camWorld mgl32.Mat4, lens Lens, vp Viewport) mgl32.Mat4 {
	proj := mgl32.Perspective(lens.Fov, vp.aspect(), lens.Near, lens.Far)
	return proj.Mul4(camWorld.Inv())
}

// Project maps a world point to screen pixels (origin top-left, y down). ok is false
// when the point lies behind the near plane.
func Project(viewProj mgl32.Mat4, p mgl32.Vec3, vp Viewport) (x, y float32, ok bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, false
	}
	nx, ny := clip.X()/w, clip.Y()/w
	x = (nx + 1) / 2 * float32(vp.Width)
	y = (1 - ny) / 2 * float32(vp.Height)
	return x, y, true
}

// ScreenRay returns the world-space ray leaving the camera through screen pixel (sx, sy).
func ScreenRay(camWorld mgl32.Mat4, lens Lens, vp Viewport, sx, sy float32) (origin, dir mgl32.Vec3) {
	right := camWorld.Col(0).Vec3().Normalize()
	up := camWorld.Col(1).Vec3().Normalize()
	forward := camWorld.Col(2).Vec3().Normalize().Mul(-1)
	origin = Position(camWorld)

	nx := 2*sx/float32(vp.Width) - 1
	ny := 1 - 2*sy/float32(vp.Height)
	halfH := float32(math.Tan(float64(lens.Fov) / 2))
	halfW := halfH * vp.aspect()

	dir = forward.Add(right.Mul(nx * halfW)).Add(up.Mul(ny * halfH)).Normalize()
	return origin, dir
}

// IntersectGround intersects a ray with the horizontal plane y = height. ok is false
// when the ray is parallel to the plane or points away from it.
func IntersectGround(origin, dir mgl32.Vec3, height float32) (mgl32.Vec3, bool) {
	if mgl32.Abs(dir.Y()) < 1e-6 {
		return mgl32.Vec3{}, false
	}
	d := (height - origin.Y()) / dir.Y()
	if d < 0 {
		return mgl32.Vec3{}, false
	}
	return origin.Add(dir.Mul(d)), true
}
