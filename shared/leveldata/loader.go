package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/doomerang-ai/shared/gamemath"
)

// Layer and object group names read from TMX files.
const (
	SolidLayer        = "wg-tiles"
	AgentSpawnGroup   = "AgentSpawn"
	TargetSpawnGroup  = "TargetSpawn"
	PatrolPathsGroup  = "PatrolPaths"
	agentTypeProperty = "agentType"
	pathNameProperty  = "pathName"
	spawnIndexProp    = "spawnIndex"
)

// ErrNoAgentSpawns is returned for arenas without a single agent spawn.
var ErrNoAgentSpawns = errors.New("level has no agent spawns")

// LoadLevel parses a TMX arena. It takes an fs.FS so callers can pass
// embed.FS, os.DirFS or fstest.MapFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		PatrolPaths: make(map[string]PatrolPath),
		MapWidth:    levelMap.Width * levelMap.TileWidth,
		MapHeight:   levelMap.Height * levelMap.TileHeight,
		TileWidth:   levelMap.TileWidth,
		TileHeight:  levelMap.TileHeight,
	}

	// Parse solid tiles from wg-tiles layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if layer.Tiles[y*levelMap.Width+x].IsNil() {
					continue
				}
				level.SolidRects = append(level.SolidRects, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case AgentSpawnGroup:
			for _, o := range og.Objects {
				level.AgentSpawns = append(level.AgentSpawns, AgentSpawn{
					X:         o.X,
					Y:         o.Y,
					AgentType: o.Properties.GetString(agentTypeProperty),
					PathName:  o.Properties.GetString(pathNameProperty),
				})
			}
		case TargetSpawnGroup:
			for _, o := range og.Objects {
				level.TargetSpawns = append(level.TargetSpawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt(spawnIndexProp),
				})
			}
		case PatrolPathsGroup:
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				// Use the first polyline if multiple polylines exist
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) == 0 {
					continue
				}
				points := make([]gamemath.Vec2, len(*polyline.Points))
				for i, point := range *polyline.Points {
					points[i] = gamemath.V(o.X+point.X, o.Y+point.Y)
				}
				level.PatrolPaths[o.Name] = PatrolPath{Name: o.Name, Points: points}
			}
		}
	}

	if len(level.AgentSpawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoAgentSpawns)
	}

	// Sort target spawns by index, then left to right
	sort.SliceStable(level.TargetSpawns, func(i, j int) bool {
		a, b := level.TargetSpawns[i], level.TargetSpawns[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
