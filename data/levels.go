package data

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"ebiten-timecrawl/config"
)

//go:embed levels/*.yaml
var levelFS embed.FS

// Cell values of an authored grid
const (
	CellNothing     = 0
	CellWall        = 1
	CellFloor       = 2
	CellPlayerStart = 3
	CellTeleport    = 4
)

// Level is an authored room. Columns[x][y] is a digit cell value.
type Level struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
	File    string   `yaml:"-"`
}

// Cell returns the cell value at x, y. Non-digit cells read as nothing.
func (l *Level) Cell(x, y int) int {
	if x < 0 || x >= len(l.Columns) || y < 0 || y >= len(l.Columns[x]) {
		return CellNothing
	}
	c := l.Columns[x][y]
	if c < '0' || c > '9' {
		return CellNothing
	}
	return int(c - '0')
}

// Validate checks the grid size and that there is exactly one player start
// and one teleport.
func (l *Level) Validate() error {
	if len(l.Columns) != config.GridWidth {
		return fmt.Errorf("level %q: expected %d columns, got %d", l.Name, config.GridWidth, len(l.Columns))
	}
	for x, column := range l.Columns {
		if len(column) != config.GridHeight {
			return fmt.Errorf("level %q: column %d has %d cells, expected %d", l.Name, x, len(column), config.GridHeight)
		}
	}

	starts, teleports := 0, 0
	for _, column := range l.Columns {
		starts += strings.Count(column, "3")
		teleports += strings.Count(column, "4")
	}
	if starts != 1 {
		return fmt.Errorf("level %q: expected one player start, found %d", l.Name, starts)
	}
	if teleports != 1 {
		return fmt.Errorf("level %q: expected one teleport, found %d", l.Name, teleports)
	}
	return nil
}

// ParseLevel decodes and validates one YAML level
func ParseLevel(name string, raw []byte) (Level, error) {
	var level Level
	if err := yaml.Unmarshal(raw, &level); err != nil {
		return Level{}, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	level.File = name
	if level.Name == "" {
		level.Name = strings.TrimSuffix(name, path.Ext(name))
	}
	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

// LevelLibrary is the pool of rooms the player moves between
type LevelLibrary struct {
	Levels []Level
}

// LoadLevels loads the embedded levels
func LoadLevels() (*LevelLibrary, error) {
	return LoadLevelsFrom(levelFS, "levels")
}

// LoadLevelsFrom loads every .yaml file in dir, ordered by file name
func LoadLevelsFrom(fsys fs.FS, dir string) (*LevelLibrary, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	lib := &LevelLibrary{}
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read level %s: %w", name, err)
		}
		level, err := ParseLevel(name, raw)
		if err != nil {
			return nil, err
		}
		lib.Levels = append(lib.Levels, level)
	}

	if len(lib.Levels) == 0 {
		return nil, fmt.Errorf("no levels found in %s", dir)
	}
	return lib, nil
}

// Len returns the pool size
func (l *LevelLibrary) Len() int {
	return len(l.Levels)
}

// Get returns a level by index
func (l *LevelLibrary) Get(index int) (Level, error) {
	if index < 0 || index >= len(l.Levels) {
		return Level{}, fmt.Errorf("level index %d out of range [0, %d)", index, len(l.Levels))
	}
	return l.Levels[index], nil
}
