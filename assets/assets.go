package assets

import (
	"embed"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/grumpus/jam/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

const levelsDir = "levels"

// DefaultLevel is the arena loaded when no level is requested.
const DefaultLevel = "arena"

// LevelNames lists the embedded levels.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAll(assetFS, levelsDir)
	return names, err
}

// LoadLevel resolves name to a level. A bare name refers to an embedded
// level; anything ending in .tmx is read from disk relative to its directory.
func LoadLevel(name string) (*leveldata.Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	if strings.HasSuffix(name, ".tmx") {
		dir, file := path.Split(name)
		if dir == "" {
			dir = "."
		}
		return leveldata.Load(os.DirFS(dir), file)
	}

	level, err := leveldata.Load(assetFS, path.Join(levelsDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return level, nil
}
