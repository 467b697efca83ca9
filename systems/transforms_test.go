package systems

import (
	"testing"

	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/shared/rigmath"
	"github.com/go-gl/mathgl/mgl32"
)

func TestPropagateTransformsComposesParentAndChild(t *testing.T) {
	w, rig, cam := newRigWorld(t, mgl32.Vec3{0, 0, 10})
	tr := components.Transform.Get(rig)
	tr.Translation = mgl32.Vec3{5, 0, 0}
	tr.Rotation = rigmath.Yaw(mgl32.DegToRad(90))

	PropagateTransforms(w)

	assertVec3(t, mgl32.Vec3{5, 0, 0}, components.GlobalTransform.Get(rig).Position(), 1e-5)
	// Camera offset (0,0,10) turned a quarter around Y lands on +X
	assertVec3(t, mgl32.Vec3{15, 0, 0}, components.GlobalTransform.Get(cam).Position(), 1e-4)
}
