package collision

import "math"

// Rect is an integer axis-aligned rectangle in screen coordinates.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r is the no-overlap sentinel.
func (r Rect) Empty() bool {
	return r.W == 0 && r.H == 0
}

// Intersection returns the overlap of a and b, or the zero Rect when there
// is none. Rects that merely touch along an edge or corner do not overlap.
func Intersection(a, b Rect) Rect {
	x1 := max(a.X, b.X)
	y1 := max(a.Y, b.Y)
	x2 := min(a.X+a.W, b.X+b.W)
	y2 := min(a.Y+a.H, b.Y+b.H)
	if x2-x1 > 0 && y2-y1 > 0 {
		return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
	}
	return Rect{}
}

// BoundingBox returns the minimal axis-aligned rectangle containing r after
// rotating it about its own center by angle degrees (clockwise positive).
//
// Rotated corner coordinates are rounded up, never truncated, and width and
// height are inclusive pixel counts (max - min + 1). The box therefore never
// under-covers the rotated shape, and even a zero-area rect yields a 1x1
// box. Rotated alpha maps are sized with the same convention, so box-local
// pixel indices line up without a systematic offset.
func BoundingBox(r Rect, angle float64) Rect {
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	sin, cos := math.Sincos(angle * math.Pi / 180)

	left := float64(r.X - cx)
	top := float64(r.Y - cy)
	right := left + float64(r.W)
	bottom := top + float64(r.H)

	corners := [4][2]float64{
		{left, top},
		{right, top},
		{right, bottom},
		{left, bottom},
	}

	var xmin, xmax, ymin, ymax int
	for i, c := range corners {
		x := int(math.Ceil(c[1]*sin + c[0]*cos))
		y := int(math.Ceil(c[1]*cos - c[0]*sin))
		if i == 0 {
			xmin, xmax = x, x
			ymin, ymax = y, y
			continue
		}
		xmin = min(xmin, x)
		xmax = max(xmax, x)
		ymin = min(ymin, y)
		ymax = max(ymax, y)
	}

	return Rect{
		X: xmin + cx,
		Y: ymin + cy,
		W: xmax - xmin + 1,
		H: ymax - ymin + 1,
	}
}
