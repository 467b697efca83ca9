package systems

import (
	"testing"
	"time"

	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/logger"
	"github.com/automoto/orbitrig/shared/rigmath"
	"github.com/automoto/orbitrig/systems/factory"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var testLens = rigmath.Lens{Fov: 0.8, Near: 0.1, Far: 500}

// newRigWorld spawns one rig at the origin with its camera at cameraOffset.
func newRigWorld(t *testing.T, cameraOffset mgl32.Vec3) (donburi.World, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	w := donburi.NewWorld()
	rig, cam := factory.CreateCameraRig(w, factory.RigSpec{
		Config:       config.DefaultRigConfig(),
		CameraOffset: cameraOffset,
		Lens:         testLens,
	})
	return w, rig, cam
}

// frame resets the input singleton to dt with nothing held, then applies fill.
func frame(w donburi.World, dt time.Duration, fill func(in *components.RigInputData)) {
	in := GetOrCreateInput(w)
	in.Clear()
	in.Delta = dt
	if in.Keys == nil {
		in.Keys = map[config.KeyCode]bool{}
	}
	if in.Buttons == nil {
		in.Buttons = map[config.MouseButton]bool{}
	}
	if fill != nil {
		fill(in)
	}
}

func holdKeys(keys ...config.KeyCode) func(in *components.RigInputData) {
	return func(in *components.RigInputData) {
		for _, k := range keys {
			in.Keys[k] = true
		}
	}
}

func transformOf(e *donburi.Entry) components.TransformData {
	return components.Transform.GetValue(e)
}

func assertVec3(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d: want %v got %v", i, want, got)
	}
}

func assertQuat(t *testing.T, want, got mgl32.Quat, delta float64) {
	t.Helper()
	assert.InDelta(t, want.W, got.W, delta, "W: want %v got %v", want, got)
	assertVec3(t, want.V, got.V, delta)
}

// observeLogs routes the package logger into an in-memory sink for the test.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}
