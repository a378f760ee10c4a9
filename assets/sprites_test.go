package assets

import (
	"testing"

	"github.com/nimah79/spritelab/collision"
	"github.com/stretchr/testify/require"
)

func opacityStats(m *collision.AlphaMap) (opaque, transparent int) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.At(x, y) != 0 {
				opaque++
			} else {
				transparent++
			}
		}
	}
	return
}

func TestGeneratedSilhouettes(t *testing.T) {
	t.Run("Ship is a solid triangle", func(t *testing.T) {
		m := collision.AlphaMapFromImage(shipRGBA(32))
		opaque, transparent := opacityStats(m)
		require.Positive(t, opaque)
		require.Positive(t, transparent, "corners must stay transparent")
		// Nose points along +X: the right midrow is opaque, the left
		// corners are not.
		require.NotZero(t, m.At(27, 16))
		require.Zero(t, m.At(0, 0))
		require.Zero(t, m.At(31, 0))
	})

	t.Run("Saw has a transparent center hole", func(t *testing.T) {
		m := collision.AlphaMapFromImage(sawRGBA(64))
		require.Zero(t, m.At(32, 32))
		require.NotZero(t, m.At(32, 16))
	})

	t.Run("Ring is hollow with gaps", func(t *testing.T) {
		m := collision.AlphaMapFromImage(ringRGBA(64))
		// Hollow middle.
		require.Zero(t, m.At(32, 32))
		// Band on the +X axis is solid; the diagonal is a gap.
		require.NotZero(t, m.At(60, 32))
		require.Zero(t, m.At(52, 52))
	})

	t.Run("Hazard silhouettes differ from their bounding box", func(t *testing.T) {
		for name, m := range map[string]*collision.AlphaMap{
			"saw":  collision.AlphaMapFromImage(sawRGBA(64)),
			"ring": collision.AlphaMapFromImage(ringRGBA(64)),
		} {
			opaque, _ := opacityStats(m)
			require.Less(t, opaque, 64*64/2, "%s should be mostly transparent", name)
		}
	})
}
