package game

import (
	"fmt"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Config holds the static board dimensions of a game.
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func DefaultConfig() Config {
	return Config{Width: mino.DefaultWidth, Height: mino.DefaultHeight}
}

// Validate rejects boards too small to spawn every shape.
func (c Config) Validate() error {
	if c.Width < 4 || c.Height < 4 {
		return fmt.Errorf("board must be at least 4x4, got %dx%d", c.Width, c.Height)
	}

	return nil
}
