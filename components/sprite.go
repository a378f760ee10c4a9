package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nimah79/spritelab/collision"
	"github.com/yohamta/donburi"
)

// SpriteData pairs a drawable image with the silhouette used for
// pixel-accurate collision queries. Image and AlphaMap come from the same
// asset and share its lifetime; X, Y, Size and Angle are this entity's
// per-frame placement, mutated by game systems only.
type SpriteData struct {
	Image    *ebiten.Image
	AlphaMap *collision.AlphaMap

	X, Y  float64 // Center position on screen
	Size  float64 // On-screen destination size (square sprites)
	Angle float64 // Degrees, clockwise
}

// DestRect returns the integer destination rect the sprite is drawn into
// this frame, which is also the rect collision queries scale the silhouette
// to.
func (s *SpriteData) DestRect() collision.Rect {
	size := int(s.Size)
	return collision.Rect{
		X: int(s.X) - size/2,
		Y: int(s.Y) - size/2,
		W: size,
		H: size,
	}
}

var Sprite = donburi.NewComponentType[SpriteData]()
