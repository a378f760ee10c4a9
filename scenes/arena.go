package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nimah79/spritelab/assets"
	cfg "github.com/nimah79/spritelab/config"
	"github.com/nimah79/spritelab/systems"
	"github.com/nimah79/spritelab/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one survival attempt: dodge the spinning hazards for as
// long as possible.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewArenaScene creates a new arena scene
func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ecs = ecs.NewECS(donburi.NewWorld())

	createArenaScene := func() interface{} {
		return NewArenaScene(as.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(as.sceneChanger)
	}

	as.ecs.AddSystem(systems.UpdateInput)
	as.ecs.AddSystem(systems.UpdateArenaState)
	as.ecs.AddSystem(systems.UpdatePlayer)
	as.ecs.AddSystem(systems.UpdateMovement)
	as.ecs.AddSystem(systems.UpdateHazards)
	as.ecs.AddSystem(systems.UpdatePixelHits)
	as.ecs.AddSystem(systems.UpdateScore)
	as.ecs.AddSystem(systems.NewUpdateGameOver(as.sceneChanger, createArenaScene, createMenuScene))

	as.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	as.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	as.ecs.AddRenderer(cfg.Overlay, systems.DrawDebugOverlay)
	as.ecs.AddRenderer(cfg.Overlay, systems.DrawGameOver)

	// Build the arena from the embedded Tiled map
	arena := assets.MustLoadArena()

	factory.CreateSpace(as.ecs, arena.Width, arena.Height, 20, 20)

	for _, wall := range arena.Walls {
		factory.CreateWall(as.ecs, wall.X, wall.Y, wall.W, wall.H)
	}

	factory.CreatePlayer(as.ecs, arena.PlayerSpawn.X, arena.PlayerSpawn.Y)

	for _, spawn := range arena.HazardSpawns {
		factory.CreateHazard(as.ecs, spawn)
	}

	// Seed the score with the persisted best so the HUD shows it from the
	// first frame.
	best, _ := systems.LoadBestTime()
	systems.GetScore(as.ecs).BestSeconds = best
}
