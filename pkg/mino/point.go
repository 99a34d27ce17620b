package mino

import (
	"strconv"
	"strings"
)

// Point is a board coordinate. X is the column, Y is the row with 0 at the
// top of the board.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// RotateCW rotates p clockwise inside a size×size box.
func (p Point) RotateCW(size int) Point { return Point{size - 1 - p.Y, p.X} }

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Y))
	b.WriteRune(')')

	return b.String()
}
