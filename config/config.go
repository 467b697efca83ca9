package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int // Ticks per second; the rig input uses 1/TPS as the frame time
}

var C *Config

// DebugConfig contains debug toggles set from the command line
type DebugConfig struct {
	Overlay   bool // Draw the rig state overlay
	NoPersist bool // Skip loading and saving the rig pose
}

var Debug DebugConfig

// SceneConfig contains the skirmish scene setup
type SceneConfig struct {
	LevelPath string

	// Fallback spawn used when the level has no Rig object
	RigStart    mgl32.Vec3
	CameraStart mgl32.Vec3 // Camera offset from the rig, looking at the rig origin

	// Perspective lens
	Fov  float32 // Vertical field of view in radians
	Near float32
	Far  float32

	// Ground grid drawn around the origin
	GridHalfExtent int
	GridStep       int

	// Level pixels per world unit when reading TMX object positions
	PixelsPerUnit float32

	// Picking space covers [-PickExtent, PickExtent] on world X and Z, measured in
	// pixels of PickPixelsPerUnit so every box and cursor marker is at least one pixel wide
	PickExtent        float64
	PickPixelsPerUnit float64
	PickCellSize      int     // Pixels
	UnitPickSize      float64 // Side of the pick box around each unit, in world units

	// gdata
	AppName    string
	PersistKey string
}

var Scene SceneConfig

// RenderConfig contains colors used by the renderers
type RenderConfig struct {
	Background   color.RGBA
	Grid         color.RGBA
	GridAxis     color.RGBA
	Unit         color.RGBA
	UnitFollowed color.RGBA
	RigPivot     color.RGBA
	HUDText      color.RGBA
	UnitRadius   float32 // Screen pixels at distance 1
}

var Render RenderConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	DarkGray     = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	Night        = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "orbitrig",
		TPS:    60,
	}

	Scene = SceneConfig{
		LevelPath:   "levels/skirmish.tmx",
		RigStart:    mgl32.Vec3{0, 0, 0},
		CameraStart: mgl32.Vec3{-75, 75, 0},

		Fov:  0.1,
		Near: 0.1,
		Far:  1000,

		GridHalfExtent: 40,
		GridStep:       4,

		PixelsPerUnit: 16,
		PickExtent:        128,
		PickPixelsPerUnit: 16,
		PickCellSize:      32,
		UnitPickSize:      3,

		AppName:    "orbitrig",
		PersistKey: "rig-pose",
	}

	Render = RenderConfig{
		Background:   Night,
		Grid:         DarkGray,
		GridAxis:     DarkBlue,
		Unit:         LightBlue,
		UnitFollowed: Orange,
		RigPivot:     Yellow,
		HUDText:      White,
		UnitRadius:   40,
	}
}
