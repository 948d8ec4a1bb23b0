package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

// GameLoop steps an arena at a fixed rate and, when networked, ships a
// snapshot to clients after every step.
type GameLoop struct {
	arena    *Arena
	tickRate int
	sync     bool
}

func NewGameLoop(arena *Arena, tickRate int, sync bool) *GameLoop {
	if tickRate < 1 {
		tickRate = 1
	}
	return &GameLoop{
		arena:    arena,
		tickRate: tickRate,
		sync:     sync,
	}
}

// Run ticks until ctx is cancelled.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	slog.Info("game loop started", "tick_rate", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			slog.Info("game loop stopped")
			return nil
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) tick() {
	g.arena.Step(1 / float64(g.tickRate))

	if !g.sync {
		return
	}
	if err := srvsync.DoSync(); err != nil {
		slog.Error("sync error", "err", err)
	}
}
