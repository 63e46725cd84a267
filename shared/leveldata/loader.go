package leveldata

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	GroundLayer     = "ground"
	ClimbableGroup  = "climbable"
	SpawnGroup      = "spawn"
	slopeProperty   = "slope"
	spawnIndexField = "spawnIndex"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS. Tiled is Y-down; everything returned is flipped to Y-up.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width) * tileW,
		Height: float64(levelMap.Height) * tileH,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != GroundLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			worldY := level.Height - float64(y+1)*tileH
			var run *Rect
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					run = nil
					continue
				}

				var slope string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					slope = tilesetTile.Properties.GetString(slopeProperty)
				}
				rect := Rect{X: float64(x) * tileW, Y: worldY, W: tileW, H: tileH}
				if slope != "" {
					level.Ramps = append(level.Ramps, Ramp{Rect: rect, Slope: slope})
					run = nil
					continue
				}

				// Merge horizontal runs so bodies slide across tile seams
				if run != nil {
					run.W += tileW
					continue
				}
				level.Ground = append(level.Ground, rect)
				run = &level.Ground[len(level.Ground)-1]
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case ClimbableGroup:
			for _, o := range og.Objects {
				level.Climbables = append(level.Climbables, Rect{
					X: o.X,
					Y: level.Height - o.Y - o.Height,
					W: o.Width,
					H: o.Height,
				})
			}
		case SpawnGroup:
			for _, o := range og.Objects {
				level.Spawns = append(level.Spawns, SpawnPoint{
					X:     o.X,
					Y:     level.Height - o.Y,
					Index: o.Properties.GetInt(spawnIndexField),
				})
			}
		}
	}

	sort.Slice(level.Spawns, func(i, j int) bool {
		return level.Spawns[i].Index < level.Spawns[j].Index
	})

	log.Printf("leveldata: loaded %s (%d ground, %d ramps, %d climbables)",
		level.Name, len(level.Ground), len(level.Ramps), len(level.Climbables))
	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
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
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
