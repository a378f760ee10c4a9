package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// uniformMap builds a w x h map with every cell set to v.
func uniformMap(w, h int, v uint8) *AlphaMap {
	pix := make([]byte, w*h)
	for i := range pix {
		pix[i] = v
	}
	return NewAlphaMap(pix, w, h, FormatGray)
}

func TestResized(t *testing.T) {
	t.Run("Identity resample of a uniform map is exact", func(t *testing.T) {
		m := uniformMap(8, 8, 200)
		got := m.Resized(8, 8)
		require.Equal(t, 8, got.Width())
		require.Equal(t, 8, got.Height())
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				require.EqualValues(t, 200, got.At(x, y))
			}
		}
	})

	t.Run("Upscale keeps full opacity", func(t *testing.T) {
		got := uniformMap(4, 4, 255).Resized(16, 16)
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				require.EqualValues(t, 255, got.At(x, y))
			}
		}
	})

	t.Run("Downscale keeps full opacity", func(t *testing.T) {
		got := uniformMap(8, 8, 255).Resized(3, 3)
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				require.EqualValues(t, 255, got.At(x, y))
			}
		}
	})

	t.Run("Fixed point blend of a vertical edge", func(t *testing.T) {
		// 2x2 source with an opaque right column upscaled to 4x4: the step
		// ratio is (2-1)<<16/4, so columns sample at dx = 0, .25, .5, .75.
		m := NewAlphaMap([]byte{
			0, 255,
			0, 255,
		}, 2, 2, FormatGray)
		got := m.Resized(4, 4)
		want := []uint8{0, 63, 127, 191}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				require.EqualValues(t, want[x], got.At(x, y), "cell (%d,%d)", x, y)
			}
		}
	})

	t.Run("Deterministic across calls", func(t *testing.T) {
		m := NewAlphaMap([]byte{
			10, 40, 90, 160,
			20, 60, 110, 180,
			30, 80, 130, 200,
			40, 100, 150, 220,
		}, 4, 4, FormatGray)
		first := m.Resized(7, 5)
		second := m.Resized(7, 5)
		require.Equal(t, first.pix, second.pix)
	})

	t.Run("Single cell source", func(t *testing.T) {
		got := uniformMap(1, 1, 180).Resized(5, 5)
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				require.EqualValues(t, 180, got.At(x, y))
			}
		}
	})

	t.Run("Single column source", func(t *testing.T) {
		m := NewAlphaMap([]byte{255, 255, 0, 0}, 1, 4, FormatGray)
		got := m.Resized(3, 4)
		require.EqualValues(t, 255, got.At(0, 0))
		require.EqualValues(t, 255, got.At(2, 0))
	})
}
