package factory

import (
	"log/slog"

	"github.com/automoto/doomerang-ai/archetypes"
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/nav"
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the collision space, the walls and the navigation grid
// for a parsed level. One world unit is one tile.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	if _, ok := components.Space.First(ecs.World); !ok {
		CreateSpace(ecs, level.MapWidth, level.MapHeight, level.TileWidth, level.TileHeight)
	}
	space := components.Space.Get(components.Space.MustFirst(ecs.World))

	for _, r := range level.SolidRects {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}

	scale := float64(level.TileWidth)
	grid := nav.NewGrid(space,
		float64(level.MapWidth)/scale,
		float64(level.MapHeight)/scale,
		cfg.World.NavCellSize,
		scale,
	)

	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
		Grid:         grid,
		Scale:        scale,
	})

	slog.Info("level loaded",
		"level", level.Name,
		"solids", len(level.SolidRects),
		"agent_spawns", len(level.AgentSpawns),
		"routes", len(level.PatrolPaths),
		"size", [2]int{level.MapWidth, level.MapHeight},
	)
	return entry
}
