package assets

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nimah79/spritelab/collision"
	cfg "github.com/nimah79/spritelab/config"
)

// Sprite is a loaded drawable paired with the silhouette used for
// pixel-accurate collision. The alpha map is extracted once here and shared
// by every query for as long as the sprite is registered.
type Sprite struct {
	Name     string
	Image    *ebiten.Image
	AlphaMap *collision.AlphaMap
}

var sprites = map[string]*Sprite{}

// Load builds the demo sprites and their alpha maps. Call once at startup.
// The sprites are generated rather than decoded from files; what matters for
// collision is that each one has real transparent regions.
func Load() {
	register("ship", shipRGBA(cfg.Player.SpriteSize))
	register("saw", sawRGBA(cfg.Hazard.SpriteSize))
	register("ring", ringRGBA(cfg.Hazard.SpriteSize))
}

// Get returns a registered sprite, panicking on unknown names like the font
// registry does: a missing asset is a programming error, not a runtime
// condition.
func Get(name string) *Sprite {
	s, ok := sprites[name]
	if !ok {
		panic(fmt.Sprintf("Sprite %s not found", name))
	}
	return s
}

func register(name string, img *image.RGBA) {
	sprites[name] = &Sprite{
		Name:     name,
		Image:    ebiten.NewImageFromImage(img),
		AlphaMap: collision.AlphaMapFromImage(img),
	}
}

// shipRGBA draws a triangle pointing along +X, so angle 0 faces right.
func shipRGBA(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	nose := [2]float64{s - 3, s / 2}
	back1 := [2]float64{3, 4}
	back2 := [2]float64{3, s - 4}
	body := color.RGBA{R: 120, G: 190, B: 255, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := [2]float64{float64(x) + 0.5, float64(y) + 0.5}
			if inTriangle(p, nose, back1, back2) {
				img.SetRGBA(x, y, body)
			}
		}
	}
	return img
}

func inTriangle(p, a, b, c [2]float64) bool {
	d1 := cross(p, a, b)
	d2 := cross(p, b, c)
	d3 := cross(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross(p, a, b [2]float64) float64 {
	return (p[0]-b[0])*(a[1]-b[1]) - (a[0]-b[0])*(p[1]-b[1])
}

// sawRGBA draws a toothed disk with a transparent center hole. The teeth
// make the silhouette deviate from its bounding circle, so box collision
// and pixel collision visibly disagree.
func sawRGBA(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	outer := c - 1
	hole := outer * 0.22
	blade := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	hub := color.RGBA{R: 150, G: 60, B: 60, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			d := math.Hypot(dx, dy)
			if d < hole {
				continue // center hole stays transparent
			}
			// Eight teeth: the rim radius oscillates with the polar angle.
			rim := outer * (0.78 + 0.22*math.Cos(8*math.Atan2(dy, dx)))
			if d > rim {
				continue
			}
			if d < hole*2 {
				img.SetRGBA(x, y, hub)
			} else {
				img.SetRGBA(x, y, blade)
			}
		}
	}
	return img
}

// ringRGBA draws an annulus with four gaps. A sprite can sit entirely inside
// the ring without touching it, which only pixel-accurate collision gets
// right.
func ringRGBA(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	outer := c - 1
	inner := outer * 0.72
	band := color.RGBA{R: 240, G: 160, B: 60, A: 255}
	const gapHalf = math.Pi / 12 // 15 degrees either side of each axis gap
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			d := math.Hypot(dx, dy)
			if d < inner || d > outer {
				continue
			}
			a := math.Atan2(dy, dx)
			// Four gaps centered on the diagonals.
			rel := math.Mod(a+2*math.Pi, math.Pi/2)
			if math.Abs(rel-math.Pi/4) < gapHalf {
				continue
			}
			img.SetRGBA(x, y, band)
		}
	}
	return img
}
