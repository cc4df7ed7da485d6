package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ShortRace(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	err := run([]string{
		"--gameplay", filepath.Join(dir, "gameplay.yaml"),
		"--config", filepath.Join(dir, "config.yaml"),
		"--racers", "2",
		"--ticks", "120",
		"--log-level", "error",
	}, &stdout, &stderr)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "1. CPU"))
	assert.Contains(t, lines[1], "laps")
	assert.Empty(t, stderr.String())
}

func TestRun_UnknownTrack(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	err := run([]string{
		"--gameplay", filepath.Join(dir, "gameplay.yaml"),
		"--config", filepath.Join(dir, "config.yaml"),
		"--track", "nowhere",
	}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nowhere")
	assert.Empty(t, stdout.String())
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--laps-count", "3"}, &stdout, &stderr)
	assert.Error(t, err)
}

func TestRun_List(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--list"}, &stdout, &stderr))

	assert.Contains(t, stdout.String(), "classic: Classic (oval)")
	assert.Contains(t, stdout.String(), "tracks: oval")
}

func TestRun_SaveGamePlay(t *testing.T) {
	dir := t.TempDir()
	gameplay := filepath.Join(dir, "gameplay.yaml")
	var stdout, stderr bytes.Buffer

	err := run([]string{
		"--gameplay", gameplay,
		"--config", filepath.Join(dir, "config.yaml"),
		"--racers", "2",
		"--ticks", "1",
		"--save-gameplay",
		"--log-level", "error",
	}, &stdout, &stderr)
	require.NoError(t, err)

	raw, err := os.ReadFile(gameplay)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "racercount: 2")
	assert.NotContains(t, string(raw), "maxdrivingforce")
}
