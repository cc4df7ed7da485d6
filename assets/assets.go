// Package assets embeds the default tracks and the HUD icons
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"tinywheels/tiled"
)

//go:embed tracks/*.tmx
var trackFS embed.FS

const trackDir = "tracks"

// DefaultTrack is the track used when none is configured
const DefaultTrack = "oval"

// Championship is an ordered list of tracks
type Championship struct {
	ID     string
	Name   string
	Tracks []string
}

var championships = []Championship{
	{ID: "classic", Name: "Classic", Tracks: []string{"oval"}},
}

// Championships returns the built-in championships
func Championships() []Championship {
	return championships
}

// FindChampionship returns the championship with the given id
func FindChampionship(id string) (Championship, bool) {
	for _, c := range championships {
		if c.ID == id {
			return c, true
		}
	}
	return Championship{}, false
}

// TrackNames lists the embedded tracks, sorted
func TrackNames() []string {
	entries, err := fs.ReadDir(trackFS, trackDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".tmx"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// LoadTrack parses the embedded track called name
func LoadTrack(name string) (*tiled.Map, error) {
	f, err := trackFS.Open(path.Join(trackDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("unknown track %q: %w", name, err)
	}
	defer f.Close()

	m, err := tiled.Load(f)
	if err != nil {
		return nil, fmt.Errorf("track %q: %w", name, err)
	}
	return m, nil
}
