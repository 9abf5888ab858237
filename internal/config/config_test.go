package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mayjs/mayjs3d/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mayjs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 18.0, cfg.Maze.WallWidth)
	assert.Equal(t, "/", cfg.Route)
}

func TestLoadOverlaysDefaults(t *testing.T) {

	path := writeConfig(t, `
window:
  width: 1280
log:
  level: debug
  format: json
route: /mayjs-game
maze:
  wall_width: 20
  player:
    speed: 200
  grid:
    - [0, 1]
    - [1, 0]
viewer:
  carousel:
    slide_time: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 540, cfg.Window.Height, "keys left out keep their defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/mayjs-game", cfg.Route)

	assert.Equal(t, 20.0, cfg.Maze.WallWidth)
	assert.Equal(t, 30.0, cfg.Maze.WallHeight)
	assert.Equal(t, 200.0, cfg.Maze.Player.Speed)
	assert.Equal(t, 10.0, cfg.Maze.Player.Damping)
	assert.Len(t, cfg.Maze.Pursuers, 2)

	grid, err := cfg.Maze.LoadGrid()
	require.NoError(t, err)
	assert.Equal(t, ".#\n#.", grid.String())

	assert.Zero(t, cfg.Viewer.Carousel.SlideTime)
	assert.Equal(t, 30.0, cfg.Viewer.Carousel.FieldOfView)

}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "window:\n  colour: red\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.True(t, strings.Contains(err.Error(), "line 2"), err.Error())
}

func TestLoadValidates(t *testing.T) {

	path := writeConfig(t, `
log:
  level: loud
maze:
  grid:
    - [0, 1, 0]
    - [1]
viewer:
  showcase:
    min_distance: -1
`)

	_, err := Load(path)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, maze.ErrRaggedGrid)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "showcase.max_distance")

}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateRoute(t *testing.T) {
	cfg := Default()
	cfg.Route = "mayjs-game"
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "route")
}
