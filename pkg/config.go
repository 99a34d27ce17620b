package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
)

// Config is the client configuration file
type Config struct {
	Board      game.Config    `json:"board"`
	GravityMs  int            `json:"gravityMs"`
	Randomizer string         `json:"randomizer"`
	Theme      string         `json:"theme"`
	Themes     []gui.ThemeHex `json:"themes"`
}

func DefaultConfig() Config {
	return Config{
		Board:      game.DefaultConfig(),
		GravityMs:  int(DefaultGravity / time.Millisecond),
		Randomizer: "uniform",
		Theme:      gui.ThemeBasic.Name,
		Themes:     []gui.ThemeHex{},
	}
}

func (c Config) Gravity() time.Duration {
	return time.Duration(c.GravityMs) * time.Millisecond
}

func (c Config) Validate() error {
	if c.GravityMs <= 0 {
		return fmt.Errorf("invalid gravity %dms", c.GravityMs)
	}
	return c.Board.Validate()
}

// LoadConfig reads the configuration at path. A missing file is created with
// the default configuration.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()

	data, err := ioutil.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return conf, WriteConfig(path, conf)
	} else if err != nil {
		return conf, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return conf, fmt.Errorf("config %s: %w", path, err)
	}

	return conf, nil
}

func WriteConfig(path string, conf Config) error {
	data, err := json.MarshalIndent(conf, "", "  ")
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
