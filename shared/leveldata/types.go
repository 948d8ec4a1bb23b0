// Package leveldata provides TMX arena parsing for the server.
// It has no dependencies on the ECS or the physics space, pure data only.
// All coordinates are level pixels.
package leveldata

import "github.com/automoto/doomerang-ai/shared/gamemath"

// Level holds everything the server needs from a TMX arena.
type Level struct {
	Name         string
	SolidRects   []SolidRect
	PatrolPaths  map[string]PatrolPath
	AgentSpawns  []AgentSpawn
	TargetSpawns []SpawnPoint
	MapWidth     int
	MapHeight    int
	TileWidth    int
	TileHeight   int
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	X, Y, W, H float64
}

// PatrolPath is a named polyline agents walk in order and loop.
type PatrolPath struct {
	Name   string
	Points []gamemath.Vec2
}

// AgentSpawn places one hostile agent. AgentType selects a tuning profile and
// PathName a patrol route; either may be empty.
type AgentSpawn struct {
	X, Y      float64
	AgentType string
	PathName  string
}

// SpawnPoint represents a target spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Route returns the waypoints of the named patrol path, or nil when the name
// is empty or unknown.
func (l *Level) Route(name string) []gamemath.Vec2 {
	if name == "" {
		return nil
	}
	return l.PatrolPaths[name].Points
}
