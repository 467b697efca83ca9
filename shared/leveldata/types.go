// Package leveldata parses skirmish layouts from TMX files.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// Skirmish is the layout of one scene in world units. TMX pixel positions are
// centred on the map and divided by the pixels-per-unit scale; TMX y becomes world z.
type Skirmish struct {
	Width, Depth float32 // World units covered by the map
	Rig          RigSpawn
	HasRig       bool // False when the map has no Rig object; callers use their default
	Units        []UnitPlacement
}

// RigSpawn is where the rig pivot starts.
type RigSpawn struct {
	X, Y, Z float32
}

// UnitPlacement is one followable unit and its patrol.
type UnitPlacement struct {
	Name   string
	X, Z   float32
	DX, DZ float32 // Patrol offset from the start position
	Period float32 // Seconds per leg, zero for a still unit
	Armed  bool    // Followed from the first frame
}
