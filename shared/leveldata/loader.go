package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

const (
	RigGroup  = "Rig"
	UnitGroup = "Units"
)

// LoadSkirmish parses a TMX file into a skirmish layout. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadSkirmish(fsys fs.FS, tmxPath string, pixelsPerUnit float32) (*Skirmish, error) {
	if pixelsPerUnit <= 0 {
		return nil, fmt.Errorf("load TMX %s: pixels per unit must be positive", tmxPath)
	}
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	pxW := float64(levelMap.Width * levelMap.TileWidth)
	pxH := float64(levelMap.Height * levelMap.TileHeight)
	toWorld := func(x, y float64) (float32, float32) {
		return float32(x-pxW/2) / pixelsPerUnit, float32(y-pxH/2) / pixelsPerUnit
	}

	data := &Skirmish{
		Width: float32(pxW) / pixelsPerUnit,
		Depth: float32(pxH) / pixelsPerUnit,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case RigGroup:
			for _, o := range og.Objects {
				x, z := toWorld(o.X, o.Y)
				data.Rig = RigSpawn{X: x, Y: float32(o.Properties.GetFloat("height")), Z: z}
				data.HasRig = true
				break
			}
		case UnitGroup:
			for _, o := range og.Objects {
				x, z := toWorld(o.X, o.Y)
				name := o.Name
				if name == "" {
					name = fmt.Sprintf("unit-%d", o.ID)
				}
				data.Units = append(data.Units, UnitPlacement{
					Name:   name,
					X:      x,
					Z:      z,
					DX:     float32(o.Properties.GetFloat("patrol_dx")),
					DZ:     float32(o.Properties.GetFloat("patrol_dz")),
					Period: float32(o.Properties.GetFloat("period")),
					Armed:  o.Properties.GetBool("armed"),
				})
			}
		}
	}

	// Stable order so number keys always pick the same unit
	sort.SliceStable(data.Units, func(i, j int) bool {
		return data.Units[i].Name < data.Units[j].Name
	})

	return data, nil
}
