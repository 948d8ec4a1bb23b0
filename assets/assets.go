// Package assets embeds the arenas shipped with the server.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/doomerang-ai/shared/leveldata"
)

// DefaultLevel is the arena the server runs when none is named.
const DefaultLevel = "arena"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS returns the embedded file system holding levels/*.tmx.
func LevelFS() fs.FS {
	return assetFS
}

// LoadLevel parses an embedded level by name, without the .tmx suffix.
func LoadLevel(name string) (*leveldata.Level, error) {
	level, err := leveldata.LoadLevel(assetFS, path.Join("levels", name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("embedded level %q: %w", name, err)
	}
	return level, nil
}

// LevelNames lists the embedded levels sorted by name.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(assetFS, "levels")
	if err != nil {
		return nil, err
	}
	return names, nil
}
