package assets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena("levels/arena.tmx")
	require.NoError(t, err)

	require.Equal(t, 640, arena.Width)
	require.Equal(t, 360, arena.Height)

	t.Run("Walls", func(t *testing.T) {
		require.Len(t, arena.Walls, 5)
		require.Equal(t, WallRect{X: 0, Y: 0, W: 640, H: 20}, arena.Walls[0])
	})

	t.Run("Player spawn", func(t *testing.T) {
		require.Equal(t, Spawn{X: 80, Y: 90}, arena.PlayerSpawn)
	})

	t.Run("Hazard spawns carry Tiled properties", func(t *testing.T) {
		require.Len(t, arena.HazardSpawns, 4)

		first := arena.HazardSpawns[0]
		require.Equal(t, "saw", first.Kind)
		require.Equal(t, "vertical", first.Sweep)
		require.InDelta(t, 120, first.Range, 0.001)

		static := arena.HazardSpawns[2]
		require.Equal(t, "ring", static.Kind)
		require.Empty(t, static.Sweep)
		require.Zero(t, static.Range)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadArena("levels/missing.tmx")
		require.Error(t, err)
	})
}
