package archetypes

import (
	"github.com/nimah79/spritelab/components"
	cfg "github.com/nimah79/spritelab/config"
	"github.com/nimah79/spritelab/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Sprite,
		components.Object,
		components.Health,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Sprite,
		components.Object,
		components.Motion,
		components.Pulse,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
