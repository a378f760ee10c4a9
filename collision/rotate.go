package collision

import "math"

// Rotated returns m rotated about its own center by angle degrees, sized to
// the bounding box of the source rect at that rotation.
//
// This is a forward scatter, not a gather: every nonzero source cell is
// pushed through the rotation and rounded to its nearest destination cell,
// last write wins. Zero cells are skipped since the destination starts out
// transparent. Oblique angles leave small coverage gaps between scattered
// cells; that aliasing is the accepted price of the single cheap pass.
func (m *AlphaMap) Rotated(angle float64) *AlphaMap {
	angle = -angle
	sin, cos := math.Sincos(angle * math.Pi / 180)
	box := BoundingBox(Rect{W: m.w, H: m.h}, angle)

	cx := m.w / 2
	cy := m.h / 2
	offX := cx + (box.W-m.w)/2
	offY := cy + (box.H-m.h)/2

	out := &AlphaMap{w: box.W, h: box.H, pix: make([]uint8, box.W*box.H)}
	for i := 0; i < m.h; i++ {
		for j := 0; j < m.w; j++ {
			a := m.pix[i*m.w+j]
			if a == 0 {
				continue
			}
			x := int(math.Round(float64(i-cy)*sin+float64(j-cx)*cos)) + offX
			y := int(math.Round(float64(i-cy)*cos-float64(j-cx)*sin)) + offY
			// Corner cells can round one past the box edge at oblique
			// angles when a dimension is odd; those scatters are dropped.
			if x < 0 || x >= box.W || y < 0 || y >= box.H {
				continue
			}
			out.pix[y*box.W+x] = a
		}
	}
	return out
}
