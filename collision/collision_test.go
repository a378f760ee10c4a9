package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// countNarrowPhase swaps the narrow-phase hooks for counting wrappers and
// returns pointers to the counters. Cleanup restores the real functions.
func countNarrowPhase(t *testing.T) (resizes, rotates *int) {
	t.Helper()
	var nResize, nRotate int
	origResize, origRotate := resizeAlpha, rotateAlpha
	resizeAlpha = func(m *AlphaMap, w2, h2 int) *AlphaMap {
		nResize++
		return origResize(m, w2, h2)
	}
	rotateAlpha = func(m *AlphaMap, angle float64) *AlphaMap {
		nRotate++
		return origRotate(m, angle)
	}
	t.Cleanup(func() {
		resizeAlpha, rotateAlpha = origResize, origRotate
	})
	return &nResize, &nRotate
}

func TestCheck(t *testing.T) {
	opaque := uniformMap(10, 10, 255)

	t.Run("Same placement collides", func(t *testing.T) {
		r := Rect{X: 0, Y: 0, W: 10, H: 10}
		require.True(t, Check(opaque, r, 0, opaque, r, 0))
	})

	t.Run("Edge adjacent rects do not collide", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, W: 10, H: 10}
		b := Rect{X: 10, Y: 0, W: 10, H: 10}
		require.False(t, Check(opaque, a, 0, opaque, b, 0))
	})

	t.Run("Distant rects reject before the narrow phase", func(t *testing.T) {
		resizes, rotates := countNarrowPhase(t)
		a := Rect{X: 0, Y: 0, W: 10, H: 10}
		b := Rect{X: 100, Y: 100, W: 10, H: 10}
		require.False(t, Check(opaque, a, 0, opaque, b, 0))
		require.Zero(t, *resizes, "cheap reject must not resample")
		require.Zero(t, *rotates, "cheap reject must not rotate")
	})

	t.Run("Overlap runs the narrow phase once per sprite", func(t *testing.T) {
		resizes, rotates := countNarrowPhase(t)
		a := Rect{X: 0, Y: 0, W: 10, H: 10}
		b := Rect{X: 5, Y: 5, W: 10, H: 10}
		require.True(t, Check(opaque, a, 0, opaque, b, 0))
		require.Equal(t, 2, *resizes)
		require.Equal(t, 2, *rotates)
	})

	t.Run("Symmetric in sprite order", func(t *testing.T) {
		cases := []struct {
			rectA, rectB   Rect
			angleA, angleB float64
		}{
			{Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, 0, 0},
			{Rect{0, 0, 10, 10}, Rect{9, 9, 10, 10}, 45, 30},
			{Rect{0, 0, 10, 10}, Rect{30, 0, 10, 10}, 0, 0},
			{Rect{0, 0, 10, 10}, Rect{12, 12, 10, 10}, 45, 45},
		}
		for _, c := range cases {
			ab := Check(opaque, c.rectA, c.angleA, opaque, c.rectB, c.angleB)
			ba := Check(opaque, c.rectB, c.angleB, opaque, c.rectA, c.angleA)
			require.Equal(t, ab, ba, "rects %v/%v angles %v/%v", c.rectA, c.rectB, c.angleA, c.angleB)
		}
	})

	t.Run("Boxes overlap but silhouettes miss", func(t *testing.T) {
		// A is opaque only in its leftmost columns, B only in its
		// rightmost; placed so the boxes overlap but the pixels cannot.
		pixA := make([]byte, 100)
		pixB := make([]byte, 100)
		for y := 0; y < 10; y++ {
			for x := 0; x < 3; x++ {
				pixA[y*10+x] = 255
				pixB[y*10+(9-x)] = 255
			}
		}
		left := NewAlphaMap(pixA, 10, 10, FormatGray)
		right := NewAlphaMap(pixB, 10, 10, FormatGray)

		a := Rect{X: 5, Y: 0, W: 10, H: 10} // opaque near screen x 5..8
		b := Rect{X: 0, Y: 0, W: 10, H: 10} // opaque near screen x 7..9
		require.True(t, Check(left, a, 0, right, b, 0))

		b = Rect{X: -4, Y: 0, W: 10, H: 10} // opaque near screen x 3..5, still touching
		require.True(t, Check(left, a, 0, right, b, 0))

		resizes, _ := countNarrowPhase(t)
		b = Rect{X: -5, Y: 0, W: 10, H: 10} // boxes overlap by a column, pixels end at 4
		require.False(t, Check(left, a, 0, right, b, 0))
		require.Positive(t, *resizes, "the miss must come from the pixel scan, not the box reject")
	})

	t.Run("Scaled sprite collides at its on-screen size", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, W: 20, H: 20}
		b := Rect{X: 19, Y: 19, W: 10, H: 10}
		require.True(t, Check(opaque, a, 0, opaque, b, 0))
		require.False(t, Check(opaque, Rect{X: 0, Y: 0, W: 10, H: 10}, 0, opaque, b, 0))
	})

	t.Run("Rotated sprites collide through their overlap", func(t *testing.T) {
		r := Rect{X: 0, Y: 0, W: 10, H: 10}
		require.True(t, Check(opaque, r, 45, opaque, r, 45))
	})
}
