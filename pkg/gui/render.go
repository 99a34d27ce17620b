package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// CellWidth is the number of terminal columns used for one board cell
const CellWidth = 2

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// styleBlock applies the theme's color to a block
func styleBlock(b mino.Block, t Theme) tcell.Style {
	return DefStyle.Foreground(t.BlockColor(b))
}

// drawCell draws one board cell, two columns wide to make it square
func drawCell(s tcell.Screen, x, y int, b mino.Block, t Theme) {
	style := styleBlock(b, t)
	r := b.Rune()
	for i := 0; i < CellWidth; i++ {
		drawRune(s, x+i, y, style, r)
	}
}

// BoardSize returns the width and height in terminal cells of a bordered
// board of w by h cells
func BoardSize(w, h int) (int, int) {
	return w*CellWidth + 2, h + 2
}

// DrawBoard draws the bordered board of a view with its top left corner at
// x, y
func DrawBoard(s tcell.Screen, x, y int, v game.View, t Theme) {
	border := DefStyle.Foreground(t.Border)
	width, height := BoardSize(v.W, v.H)

	for col := 1; col < width-1; col++ {
		drawRune(s, x+col, y, border, tcell.RuneHLine)
		drawRune(s, x+col, y+height-1, border, tcell.RuneHLine)
	}
	for row := 1; row < height-1; row++ {
		drawRune(s, x, y+row, border, tcell.RuneVLine)
		drawRune(s, x+width-1, y+row, border, tcell.RuneVLine)
	}
	drawRune(s, x, y, border, tcell.RuneULCorner)
	drawRune(s, x+width-1, y, border, tcell.RuneURCorner)
	drawRune(s, x, y+height-1, border, tcell.RuneLLCorner)
	drawRune(s, x+width-1, y+height-1, border, tcell.RuneLRCorner)

	for row := 0; row < v.H; row++ {
		for col := 0; col < v.W; col++ {
			drawCell(s, x+1+col*CellWidth, y+1+row, v.Block(col, row), t)
		}
	}

	if v.GameOver {
		msg := " GAME OVER "
		mx := x + (width-len(msg))/2
		if mx < x {
			mx = x
		}
		drawText(s, mx, y+height/2, DefStyle.Foreground(t.GameOver).Bold(true), msg)
	}
}

// DrawStats draws the score panel of a view starting at x, y
func DrawStats(s tcell.Screen, x, y int, v game.View, t Theme, status string) {
	label := DefStyle.Foreground(t.Label)
	value := DefStyle.Foreground(t.Score).Bold(true)

	rows := []struct {
		name  string
		value string
	}{
		{"Score", fmt.Sprint(v.Score)},
		{"Lines", fmt.Sprint(v.Lines)},
		{"Pieces", fmt.Sprint(v.Pieces)},
	}
	for i, r := range rows {
		drawText(s, x, y+i*2, label, r.name)
		drawText(s, x, y+i*2+1, value, r.value)
	}

	if status != "" {
		drawText(s, x, y+len(rows)*2+1, DefStyle.Foreground(t.GameOver), status)
	}
}
