package data

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	lib, err := LoadLevels()
	require.NoError(t, err)

	require.Equal(t, 3, lib.Len())
	assert.Equal(t, "level1.yaml", lib.Levels[0].File)
	assert.Equal(t, "Long Hall", lib.Levels[0].Name)

	level, err := lib.Get(0)
	require.NoError(t, err)
	assert.Equal(t, CellWall, level.Cell(0, 0))
	assert.Equal(t, CellPlayerStart, level.Cell(9, 5))
	assert.Equal(t, CellTeleport, level.Cell(7, 15))
	assert.Equal(t, CellNothing, level.Cell(40, 0))

	_, err = lib.Get(3)
	assert.Error(t, err)
}

func grid(fill byte) []string {
	columns := make([]string, 32)
	for i := range columns {
		columns[i] = strings.Repeat(string(fill), 32)
	}
	return columns
}

func levelYAML(columns []string) string {
	var b strings.Builder
	b.WriteString("columns:\n")
	for _, c := range columns {
		b.WriteString("  - \"" + c + "\"\n")
	}
	return b.String()
}

func TestLevelValidation(t *testing.T) {
	columns := grid('2')
	columns[3] = "3" + columns[3][1:]
	columns[4] = "4" + columns[4][1:]

	level, err := ParseLevel("ok.yaml", []byte(levelYAML(columns)))
	require.NoError(t, err)
	assert.Equal(t, "ok", level.Name)

	_, err = ParseLevel("short.yaml", []byte(levelYAML(columns[:31])))
	assert.ErrorContains(t, err, "columns")

	noTeleport := grid('2')
	noTeleport[0] = "3" + noTeleport[0][1:]
	_, err = ParseLevel("noteleport.yaml", []byte(levelYAML(noTeleport)))
	assert.ErrorContains(t, err, "teleport")
}

func TestLoadLevelsFromSortsByFileName(t *testing.T) {
	columns := grid('2')
	columns[0] = "34" + columns[0][2:]
	body := []byte(levelYAML(columns))

	fsys := fstest.MapFS{
		"rooms/b.yaml":    {Data: body},
		"rooms/a.yaml":    {Data: body},
		"rooms/notes.txt": {Data: []byte("ignored")},
	}

	lib, err := LoadLevelsFrom(fsys, "rooms")
	require.NoError(t, err)
	require.Equal(t, 2, lib.Len())
	assert.Equal(t, "a.yaml", lib.Levels[0].File)
	assert.Equal(t, "b.yaml", lib.Levels[1].File)

	_, err = LoadLevelsFrom(fstest.MapFS{"rooms/x.txt": {Data: nil}}, "rooms")
	assert.Error(t, err)
}

func TestTemplatesLoad(t *testing.T) {
	lib, err := LoadTemplates()
	require.NoError(t, err)

	stationary, ok := lib.GetEnemy("stationary")
	require.True(t, ok)
	assert.Equal(t, 30.0, stationary.HalfWidth)
	assert.Equal(t, 50.0, stationary.HalfHeight)
	assert.False(t, stationary.Moves)
	assert.True(t, stationary.Shoots)

	noShoot, ok := lib.GetEnemy("no_shoot")
	require.True(t, ok)
	assert.True(t, noShoot.Moves)
	assert.False(t, noShoot.Shoots)

	assert.Equal(t, "@", lib.Style(16).Glyph)
	assert.Equal(t, "?", lib.Style(999).Glyph)
	assert.NotEmpty(t, lib.Sprites())
}

func TestParseHexColor(t *testing.T) {
	c := ParseHexColor("#FF8000")
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.Equal(t, uint8(255), c.A)

	short := ParseHexColor("#fff")
	assert.Equal(t, uint8(255), short.G)
}
