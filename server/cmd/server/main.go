package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/automoto/doomerang-ai/ai"
	"github.com/automoto/doomerang-ai/assets"
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/server/core"
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/automoto/doomerang-ai/shared/protocol"
)

type options struct {
	port     uint
	tickRate int
	level    string
	profiles string
	logLevel string
	version  string
	seed     uint64
	headless bool
	list     bool
}

func main() {
	var opts options
	flag.UintVar(&opts.port, "port", config.Net.Port, "Server port")
	flag.IntVar(&opts.tickRate, "tickrate", config.Net.TickRate, "Server tick rate (updates per second)")
	flag.StringVar(&opts.level, "level", assets.DefaultLevel, "Embedded level name or path to a .tmx file")
	flag.StringVar(&opts.profiles, "profiles", "profiles.yaml", "Agent tuning overrides (YAML, optional)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&opts.version, "version", "", "Required client version (empty = accept any)")
	flag.Uint64Var(&opts.seed, "seed", 1, "Seed for agent wander choices")
	flag.BoolVar(&opts.headless, "headless", false, "Run the simulation without accepting clients")
	flag.BoolVar(&opts.list, "list-levels", false, "Print the embedded level names and exit")
	flag.Parse()

	if opts.list {
		if err := listLevels(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	level, err := parseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
	ai.EnableDebugLogging(level <= slog.LevelDebug)

	profiles, err := config.LoadProfiles(opts.profiles)
	if err != nil {
		return fmt.Errorf("loading profiles: %w", err)
	}
	config.Agent = profiles.Agent
	config.World = profiles.World
	config.Target = profiles.Target
	slog.Info("profiles loaded", "path", opts.profiles, "types", len(config.Agent.Types), "default", config.Agent.DefaultType)

	arenaLevel, err := loadLevel(opts.level)
	if err != nil {
		return err
	}

	arena := core.NewArena(arenaLevel, opts.seed)
	loop := core.NewGameLoop(arena, opts.tickRate, !opts.headless)

	var server *core.Server
	if !opts.headless {
		if err := protocol.RegisterComponents(); err != nil {
			return fmt.Errorf("registering components: %w", err)
		}
		if err := arena.EnableNetworking(); err != nil {
			return fmt.Errorf("enabling networking: %w", err)
		}
		server = core.NewServer(arena, opts.version)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})

	if server != nil {
		g.Go(func() error {
			slog.Info("starting arena server", "port", opts.port, "tick_rate", opts.tickRate, "level", arenaLevel.Name)
			if err := server.Serve(gctx, opts.port); err != nil {
				return fmt.Errorf("transport: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	slog.Info("shut down")
	return nil
}

// loadLevel reads a .tmx path from disk, or an embedded level by name.
func loadLevel(name string) (*leveldata.Level, error) {
	if !strings.HasSuffix(name, ".tmx") {
		return assets.LoadLevel(name)
	}
	level, err := leveldata.LoadLevel(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	if err != nil {
		return nil, fmt.Errorf("loading level: %w", err)
	}
	return level, nil
}

func listLevels(w io.Writer) error {
	names, err := assets.LevelNames()
	if err != nil {
		return fmt.Errorf("listing levels: %w", err)
	}
	for _, name := range names {
		marker := ""
		if name == assets.DefaultLevel {
			marker = " (default)"
		}
		fmt.Fprintf(w, "%s%s\n", name, marker)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid -log-level %q: %w", s, err)
	}
	return level, nil
}
