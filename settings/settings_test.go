package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinywheels/game"
)

func TestLoadGamePlay_MissingFile(t *testing.T) {
	gp, err := LoadGamePlay(filepath.Join(t.TempDir(), "gameplay.yaml"))
	require.NoError(t, err)
	assert.Equal(t, game.DefaultGamePlay(), gp)

	gp, err = LoadGamePlay("")
	require.NoError(t, err)
	assert.Equal(t, game.DefaultGamePlay(), gp)
}

func TestLoadGamePlay_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gameplay.json")
	cfg := `{
		"maxDrivingForce": 200,
		"rotateCamera": false,
		"racerCount": 4
	}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	gp, err := LoadGamePlay(path)
	require.NoError(t, err)

	want := game.DefaultGamePlay()
	want.MaxDrivingForce = 200
	want.RotateCamera = false
	want.RacerCount = 4
	assert.Equal(t, want, gp)
}

func TestLoadGamePlay_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gameplay.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"maxDrivingForce": `), 0644))

	_, err := LoadGamePlay(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestSaveGamePlay_OnlyWritesChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gameplay.yaml")
	gp := game.DefaultGamePlay()
	gp.GroundDragFactor = 5
	gp.HudButtonSize = 90

	require.NoError(t, SaveGamePlay(path, gp))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "grounddragfactor")
	assert.Contains(t, content, "hudbuttonsize")
	assert.NotContains(t, content, "maxdrivingforce")
	assert.NotContains(t, content, "racercount")

	loaded, err := LoadGamePlay(path)
	require.NoError(t, err)
	assert.Equal(t, gp, loaded)
}

func TestGameConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadGameConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultGameConfig(), cfg)

	cfg.Input = "keyboard"
	cfg.Track = "oval"
	cfg.Laps = 5
	require.NoError(t, SaveGameConfig(path, cfg))

	loaded, err := LoadGameConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
