package assets

import (
	"embed"
	"fmt"

	"github.com/lafriks/go-tiled"
)

//go:embed levels
var levelFS embed.FS

// Arena is the playable field parsed from a Tiled map. Only object groups
// are used; the walls double as drawing geometry and resolv bodies.
type Arena struct {
	Name   string
	Width  int
	Height int

	Walls        []WallRect
	PlayerSpawn  Spawn
	HazardSpawns []HazardSpawn
}

type WallRect struct {
	X, Y, W, H float64
}

type Spawn struct {
	X, Y float64
}

// HazardSpawn carries the per-object properties set in Tiled.
type HazardSpawn struct {
	X, Y  float64
	Kind  string  // "saw" or "ring"
	Sweep string  // "horizontal", "vertical" or "" for a static hazard
	Range float64 // Sweep distance in pixels
}

// MustLoadArena parses the embedded arena map, panicking on any defect: a
// broken bundled level is a build error, not a runtime condition.
func MustLoadArena() *Arena {
	arena, err := LoadArena("levels/arena.tmx")
	if err != nil {
		panic(err)
	}
	return arena
}

// LoadArena parses one embedded Tiled map into an Arena.
func LoadArena(path string) (*Arena, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(levelFS))
	if err != nil {
		return nil, fmt.Errorf("load arena %s: %w", path, err)
	}

	arena := &Arena{
		Name:   path,
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "walls":
			for _, o := range og.Objects {
				arena.Walls = append(arena.Walls, WallRect{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
				})
			}
		case "spawns":
			for _, o := range og.Objects {
				switch o.Name {
				case "player":
					arena.PlayerSpawn = Spawn{X: o.X, Y: o.Y}
				case "hazard":
					arena.HazardSpawns = append(arena.HazardSpawns, HazardSpawn{
						X:     o.X,
						Y:     o.Y,
						Kind:  o.Properties.GetString("kind"),
						Sweep: o.Properties.GetString("sweep"),
						Range: o.Properties.GetFloat("range"),
					})
				}
			}
		}
	}

	if len(arena.Walls) == 0 {
		return nil, fmt.Errorf("arena %s has no walls object group", path)
	}
	return arena, nil
}
