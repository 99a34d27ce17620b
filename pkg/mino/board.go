package mino

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Board is the grid of locked cells. Row 0 is the top row.
type Board struct {
	W int // Width
	H int // Height

	M []Block
}

func I(x int, y int, w int) int {
	return (y * w) + x
}

func NewBoard(w int, h int) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid board size %dx%d", w, h)
	}

	return &Board{W: w, H: h, M: make([]Block, w*h)}, nil
}

func (b *Board) InBounds(x int, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Block returns the cell at x, y. Out of bounds cells are BlockNone.
func (b *Board) Block(x int, y int) Block {
	if !b.InBounds(x, y) {
		return BlockNone
	}

	return b.M[I(x, y, b.W)]
}

// IsOccupied reports whether x, y is filled. Cells outside the board are
// never traversable and report as occupied.
func (b *Board) IsOccupied(x int, y int) bool {
	if !b.InBounds(x, y) {
		return true
	}

	return b.M[I(x, y, b.W)] != BlockNone
}

// Fits reports whether every cell of m may be occupied by a falling piece.
// Rows above the board form an empty buffer; columns are always checked.
func (b *Board) Fits(m Mino) bool {
	for _, p := range m {
		if p.X < 0 || p.X >= b.W || p.Y >= b.H {
			return false
		}

		if p.Y >= 0 && b.M[I(p.X, p.Y, b.W)] != BlockNone {
			return false
		}
	}

	return true
}

// SetBlock fills an empty in-bounds cell.
func (b *Board) SetBlock(x int, y int, block Block) bool {
	if !b.InBounds(x, y) || b.M[I(x, y, b.W)] != BlockNone {
		return false
	}

	b.M[I(x, y, b.W)] = block

	return true
}

// LockPiece writes the cells of p into the board. The caller must have
// checked that p fits. Cells above the board are dropped.
func (b *Board) LockPiece(p *Piece) {
	block := p.Block()
	for _, c := range p.Cells() {
		if !b.InBounds(c.X, c.Y) {
			continue
		}

		b.M[I(c.X, c.Y, b.W)] = block
	}
}

func (b *Board) LineFilled(y int) bool {
	for x := 0; x < b.W; x++ {
		if b.M[I(x, y, b.W)] == BlockNone {
			return false
		}
	}

	return true
}

// ClearFullLines removes every full row at once and shifts the remaining
// rows down, keeping their order. It returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	dst := b.H - 1
	for src := b.H - 1; src >= 0; src-- {
		if b.LineFilled(src) {
			continue
		}

		if dst != src {
			copy(b.M[I(0, dst, b.W):I(0, dst+1, b.W)], b.M[I(0, src, b.W):I(0, src+1, b.W)])
		}
		dst--
	}

	cleared := dst + 1
	for i := 0; i < I(0, cleared, b.W); i++ {
		b.M[i] = BlockNone
	}

	return cleared
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, block := range b.M {
		if block != BlockNone {
			n++
		}
	}

	return n
}

func (b *Board) Clear() {
	for i := range b.M {
		b.M[i] = BlockNone
	}
}

func (b *Board) Clone() *Board {
	m := make([]Block, len(b.M))
	copy(m, b.M)

	return &Board{W: b.W, H: b.H, M: m}
}

func (b *Board) Equal(other *Board) bool {
	if other == nil || b.W != other.W || b.H != other.H {
		return false
	}

	for i := range b.M {
		if b.M[i] != other.M[i] {
			return false
		}
	}

	return true
}

// Render returns the board top to bottom, one line per row.
func (b *Board) Render() string {
	var s strings.Builder

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			s.WriteRune(b.M[I(x, y, b.W)].Rune())
		}

		if y < b.H-1 {
			s.WriteRune('\n')
		}
	}

	return s.String()
}

// ParseCells fills the board from a flat "x,y,x,y,..." list.
func (b *Board) ParseCells(list string, block Block) error {
	fields := strings.Split(list, ",")
	if len(fields)%2 != 0 {
		return errors.New("cell list must contain x,y pairs")
	}

	for i := 0; i < len(fields); i += 2 {
		var x, y int
		if _, err := fmt.Sscanf(strings.TrimSpace(fields[i])+" "+strings.TrimSpace(fields[i+1]), "%d %d", &x, &y); err != nil {
			return fmt.Errorf("failed to parse cell #%d: %w", i/2, err)
		}

		if !b.InBounds(x, y) {
			return fmt.Errorf("cell %s out of bounds", Point{x, y})
		}

		b.M[I(x, y, b.W)] = block
	}

	return nil
}
