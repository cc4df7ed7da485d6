// Package settings loads and saves the gameplay tunables and the game
// configuration with viper
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"tinywheels/game"
)

// GameConfig holds the player choices that survive a restart
type GameConfig struct {
	// Input is the id of the input handler
	Input string `mapstructure:"input"`

	// Track is the track to race on, empty for the first championship track
	Track string `mapstructure:"track"`

	// Championship is the id of the selected championship
	Championship string `mapstructure:"championship"`

	// Laps is the number of laps of a race
	Laps int `mapstructure:"laps"`
}

// DefaultGameConfig returns the configuration of a first start
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Input:        "touch",
		Championship: "classic",
		Laps:         3,
	}
}

// LoadGamePlay reads the tunables from path. Keys missing from the file, or
// a missing file, keep their default value.
func LoadGamePlay(path string) (game.GamePlay, error) {
	gp := game.DefaultGamePlay()
	if err := load(path, &gp); err != nil {
		return game.GamePlay{}, err
	}
	return gp, nil
}

// SaveGamePlay writes the tunables which differ from the defaults to path
func SaveGamePlay(path string, gp game.GamePlay) error {
	return save(path, gp, game.DefaultGamePlay())
}

// LoadGameConfig reads the game configuration from path
func LoadGameConfig(path string) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := load(path, &cfg); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// SaveGameConfig writes the whole game configuration to path
func SaveGameConfig(path string, cfg GameConfig) error {
	return save(path, cfg, GameConfig{})
}

// load fills out, which already holds the defaults, from the file at path
func load(path string, out any) error {
	v := viper.New()
	if err := setDefaults(v, out); err != nil {
		return err
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("error reading config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper, defaults any) error {
	values := map[string]any{}
	if err := mapstructure.Decode(defaults, &values); err != nil {
		return fmt.Errorf("failed to read defaults: %w", err)
	}
	for key, value := range values {
		v.SetDefault(key, value)
	}
	return nil
}

// save writes the fields of value which differ from reference. The format
// follows the file extension (yaml, json, toml...).
func save(path string, value, reference any) error {
	values := map[string]any{}
	if err := mapstructure.Decode(value, &values); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	refs := map[string]any{}
	if err := mapstructure.Decode(reference, &refs); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	v := viper.New()
	for key, val := range values {
		if reflect.DeepEqual(val, refs[key]) {
			continue
		}
		v.Set(key, val)
	}
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
