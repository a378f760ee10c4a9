package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func nonzeroCells(m *AlphaMap) int {
	n := 0
	for _, v := range m.pix {
		if v != 0 {
			n++
		}
	}
	return n
}

func TestRotated(t *testing.T) {
	t.Run("Zero angle places cells identically", func(t *testing.T) {
		m := uniformMap(10, 10, 255)
		got := m.Rotated(0)
		// Output is sized like the bounding box: one padding pixel.
		require.Equal(t, 11, got.Width())
		require.Equal(t, 11, got.Height())
		require.Equal(t, 100, nonzeroCells(got))
		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				require.EqualValues(t, 255, got.At(x, y))
			}
		}
	})

	t.Run("Quarter turn is lossless", func(t *testing.T) {
		// Rounding a quarter turn permutes cells one-to-one, so the scatter
		// loses nothing.
		got := uniformMap(10, 10, 255).Rotated(90)
		require.Equal(t, 100, nonzeroCells(got))
	})

	t.Run("Oblique angle keeps most cells", func(t *testing.T) {
		got := uniformMap(10, 10, 255).Rotated(45)
		n := nonzeroCells(got)
		require.LessOrEqual(t, n, 100)
		require.GreaterOrEqual(t, n, 60, "scatter aliasing should stay bounded")
	})

	t.Run("Transparent cells never scatter", func(t *testing.T) {
		m := uniformMap(8, 8, 0)
		got := m.Rotated(30)
		require.Equal(t, 0, nonzeroCells(got))
	})

	t.Run("Opacity values survive rotation", func(t *testing.T) {
		m := uniformMap(6, 6, 77)
		got := m.Rotated(90)
		for _, v := range got.pix {
			if v != 0 {
				require.EqualValues(t, 77, v)
			}
		}
		require.Equal(t, 36, nonzeroCells(got))
	})
}
