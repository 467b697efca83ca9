package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/orbitrig/components"
	cfg "github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/fonts"
	"github.com/automoto/orbitrig/shared/rigmath"
	"github.com/automoto/orbitrig/systems"
	"github.com/automoto/orbitrig/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
	hudWidth      = 260
)

var frozenOverlay = color.RGBA{0, 0, 0, 96}

var hudHints = []string{
	"WASD/arrows move  Q/E yaw",
	"LMB drag  RMB orbit  wheel zoom",
	"1-9 follow  0/Esc stop  MMB pick",
	"P freeze",
}

// DrawHUD renders the rig state and follow status in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	rigEntry, ok := tags.Rig.First(e.World)
	if !ok || !rigEntry.HasComponent(components.Transform) {
		return
	}
	lines := rigLines(e.World, rigEntry)
	lines = append(lines, hudHints...)

	vector.FillRect(screen, hudMargin/2, hudMargin/2,
		hudWidth, float32(len(lines)*hudLineHeight+hudMargin),
		cfg.BlackOverlay, false)

	face := fonts.HUD.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight-4, cfg.Render.HUDText)
	}
}

func rigLines(w donburi.World, rigEntry *donburi.Entry) []string {
	rig := components.CameraRig.Get(rigEntry)
	tr := components.Transform.Get(rigEntry)

	state := "moving"
	switch {
	case rig.Disabled:
		state = "disabled"
	case rig.AtRest():
		state = "at rest"
	}

	lines := []string{
		fmt.Sprintf("rig %.1f %.1f %.1f  %s", tr.Translation.X(), tr.Translation.Y(), tr.Translation.Z(), state),
		fmt.Sprintf("yaw %.0f deg", headingDegrees(tr.Rotation)),
	}

	if children := components.Children.Get(rigEntry); len(children.Entities) > 0 {
		cam := w.Entry(children.Entities[0])
		if cam.Valid() && cam.HasComponent(components.Transform) {
			dist := components.Transform.Get(cam).Translation.Len()
			lines = append(lines, fmt.Sprintf("camera distance %.1f", dist))
		}
	}

	following := "following nothing"
	if entry, ok := systems.FollowedEntry(w); ok {
		following = "following " + systems.UnitName(entry)
	}
	return append(lines, following)
}

// headingDegrees is the rotation of the rig's forward (+X) axis about world Y.
func headingDegrees(q mgl32.Quat) float64 {
	f := q.Rotate(rigmath.AxisX)
	return float64(mgl32.RadToDeg(float32(math.Atan2(float64(-f.Z()), float64(f.X())))))
}

// DrawFrozen dims the screen and shows a banner while the rigs are frozen.
func DrawFrozen(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.AnyRigFrozen(e.World) {
		return
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(screen, 0, 0, float32(width), float32(height), frozenOverlay, false)

	title := "RIG FROZEN"
	titleFont := fonts.Title.Get()
	titleX := int((width - float64(font.MeasureString(titleFont, title).Round())) / 2)
	text.Draw(screen, title, titleFont, titleX, int(height/2), cfg.Render.HUDText)

	hint := "P: resume"
	hintFont := fonts.HUDSmall.Get()
	hintX := int((width - float64(font.MeasureString(hintFont, hint).Round())) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height/2)+24, cfg.Render.HUDText)
}
