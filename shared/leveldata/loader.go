package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object names recognised in TMX files.
const (
	SolidLayer   = "solid"
	ObjectLayer  = "objects"
	PlayerObject = "player"
	SpawnerObj   = "spawner"
)

var (
	ErrNoSolidLayer = errors.New("leveldata: no solid tile layer")
	ErrNoSpawn      = errors.New("leveldata: no player spawn object")
)

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// the embedded assets or os.DirFS for levels on disk.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	if err := loadSolids(levelMap, level); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	if err := loadObjects(levelMap, level); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	return level, nil
}

// loadSolids merges each horizontal run of solid tiles into one platform.
// Tiled rows count down from the top, so rows are flipped into y-up.
func loadSolids(levelMap *tiled.Map, level *Level) error {
	tw, th := levelMap.TileWidth, levelMap.TileHeight
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		for row := 0; row < levelMap.Height; row++ {
			y := float64(level.Height - (row+1)*th)
			start := -1
			for col := 0; col <= levelMap.Width; col++ {
				solid := col < levelMap.Width && !layer.Tiles[row*levelMap.Width+col].IsNil()
				switch {
				case solid && start < 0:
					start = col
				case !solid && start >= 0:
					level.Platforms = append(level.Platforms, Rect{
						X: float64(start * tw),
						Y: y,
						W: (col - start) * tw,
						H: th,
					})
					start = -1
				}
			}
		}
		return nil
	}
	return ErrNoSolidLayer
}

func loadObjects(levelMap *tiled.Map, level *Level) error {
	var spawns []Point
	for _, og := range levelMap.ObjectGroups {
		if og.Name != ObjectLayer {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case PlayerObject:
				spawns = append(spawns, Point{
					X: o.X,
					Y: float64(level.Height) - o.Y - o.Height,
				})
			case SpawnerObj:
				level.Spawner = true
			}
		}
	}
	if len(spawns) == 0 {
		return ErrNoSpawn
	}

	// Several spawn objects pick the leftmost one.
	sort.Slice(spawns, func(i, j int) bool {
		return spawns[i].X < spawns[j].X
	})
	level.Spawn = spawns[0]
	return nil
}

// LoadAll loads every .tmx file in dir and returns them keyed by file stem,
// plus the sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
