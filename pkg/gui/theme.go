package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name     string      `json:"name"`
	Cyan     tcell.Color `json:"cyan"`
	Yellow   tcell.Color `json:"yellow"`
	Magenta  tcell.Color `json:"magenta"`
	Green    tcell.Color `json:"green"`
	Red      tcell.Color `json:"red"`
	Blue     tcell.Color `json:"blue"`
	Orange   tcell.Color `json:"orange"`
	Garbage  tcell.Color `json:"garbage"`
	Ghost    tcell.Color `json:"ghost"`
	Border   tcell.Color `json:"border"`
	Label    tcell.Color `json:"label"`
	Score    tcell.Color `json:"score"`
	GameOver tcell.Color `json:"gameOver"`
}

// ThemeHex is the JSON form of a Theme
type ThemeHex struct {
	Name     string `json:"name"`
	Cyan     string `json:"cyan"`
	Yellow   string `json:"yellow"`
	Magenta  string `json:"magenta"`
	Green    string `json:"green"`
	Red      string `json:"red"`
	Blue     string `json:"blue"`
	Orange   string `json:"orange"`
	Garbage  string `json:"garbage"`
	Ghost    string `json:"ghost"`
	Border   string `json:"border"`
	Label    string `json:"label"`
	Score    string `json:"score"`
	GameOver string `json:"gameOver"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Cyan.Hex()),
		fmtHex(t.Yellow.Hex()),
		fmtHex(t.Magenta.Hex()),
		fmtHex(t.Green.Hex()),
		fmtHex(t.Red.Hex()),
		fmtHex(t.Blue.Hex()),
		fmtHex(t.Orange.Hex()),
		fmtHex(t.Garbage.Hex()),
		fmtHex(t.Ghost.Hex()),
		fmtHex(t.Border.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Score.Hex()),
		fmtHex(t.GameOver.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.Cyan),
		tcell.GetColor(t.Yellow),
		tcell.GetColor(t.Magenta),
		tcell.GetColor(t.Green),
		tcell.GetColor(t.Red),
		tcell.GetColor(t.Blue),
		tcell.GetColor(t.Orange),
		tcell.GetColor(t.Garbage),
		tcell.GetColor(t.Ghost),
		tcell.GetColor(t.Border),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.Score),
		tcell.GetColor(t.GameOver),
	}
}

// BlockColor returns the color a block is drawn with
func (t Theme) BlockColor(b mino.Block) tcell.Color {
	switch b {
	case mino.BlockSolidCyan:
		return t.Cyan
	case mino.BlockSolidYellow:
		return t.Yellow
	case mino.BlockSolidMagenta:
		return t.Magenta
	case mino.BlockSolidGreen:
		return t.Green
	case mino.BlockSolidRed:
		return t.Red
	case mino.BlockSolidBlue:
		return t.Blue
	case mino.BlockSolidOrange:
		return t.Orange
	case mino.BlockGarbage:
		return t.Garbage
	case mino.BlockGhost:
		return t.Ghost
	default:
		return tcell.ColorDefault
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range BuiltinThemes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, errors.New("theme: no theme found")
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",                     // Name
	tcell.NewHexColor(0x00eeee), // Cyan
	tcell.NewHexColor(0xdddd00), // Yellow
	tcell.NewHexColor(0xc000cc), // Magenta
	tcell.NewHexColor(0x00e900), // Green
	tcell.NewHexColor(0xee0000), // Red
	tcell.NewHexColor(0x2864ff), // Blue
	tcell.NewHexColor(0xff7308), // Orange
	tcell.NewHexColor(0xbbbbbb), // Garbage
	tcell.Color240,              // Ghost
	tcell.Color247,              // Border
	tcell.Color247,              // Label
	tcell.ColorDefault,          // Score
	tcell.Color160,              // GameOver
}

// ThemeMono draws every block in the terminal's default color
var ThemeMono = Theme{
	"mono",             // Name
	tcell.ColorDefault, // Cyan
	tcell.ColorDefault, // Yellow
	tcell.ColorDefault, // Magenta
	tcell.ColorDefault, // Green
	tcell.ColorDefault, // Red
	tcell.ColorDefault, // Blue
	tcell.ColorDefault, // Orange
	tcell.ColorDefault, // Garbage
	tcell.ColorDefault, // Ghost
	tcell.ColorDefault, // Border
	tcell.ColorDefault, // Label
	tcell.ColorDefault, // Score
	tcell.ColorDefault, // GameOver
}

var BuiltinThemes = []Theme{ThemeBasic, ThemeMono}
