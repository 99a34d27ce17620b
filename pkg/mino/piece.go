package mino

import (
	"fmt"
)

// Piece is the falling tetromino. Point is the origin of the shape's
// rotation box on the board.
type Piece struct {
	Point
	Shape    Shape
	Rotation int
}

func NewPiece(s Shape, loc Point) *Piece {
	return &Piece{Shape: s, Point: loc}
}

// SpawnPiece places s in rotation 0 centred on a board of width w with its
// top cell on row 0.
func SpawnPiece(s Shape, w int) *Piece {
	box := s.BoxSize()

	top := box
	for _, p := range Offsets(s, Rotation0) {
		if p.Y < top {
			top = p.Y
		}
	}

	return NewPiece(s, Point{(w - box) / 2, -top})
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s@%s r%d", p.Shape, p.Point, p.Rotation)
}

func (p *Piece) Block() Block {
	return p.Shape.Block()
}

// Cells returns the absolute board coordinates of the piece.
func (p *Piece) Cells() Mino {
	return p.cellsAt(p.Rotation, p.Point)
}

func (p *Piece) cellsAt(rotation int, loc Point) Mino {
	return Offsets(p.Shape, rotation).Translate(loc)
}

// TryMove shifts the piece horizontally when the destination fits.
func (p *Piece) TryMove(b *Board, dx int) bool {
	return p.tryMoveTo(b, Point{p.X + dx, p.Y})
}

// TryRotate advances to the next rotation state in place. There is no wall
// kick: a blocked rotation leaves the piece untouched.
func (p *Piece) TryRotate(b *Board) bool {
	next := normalizeRotation(p.Rotation + 1)
	if !b.Fits(p.cellsAt(next, p.Point)) {
		return false
	}

	p.Rotation = next

	return true
}

// TickFall lowers the piece one row. It returns false when the piece can
// not fall and should lock.
func (p *Piece) TickFall(b *Board) bool {
	return p.tryMoveTo(b, Point{p.X, p.Y + 1})
}

// HardDrop lowers the piece until it lands and returns the rows dropped.
func (p *Piece) HardDrop(b *Board) int {
	rows := 0
	for p.TickFall(b) {
		rows++
	}

	return rows
}

// Ghost returns the cells the piece would occupy after a hard drop.
func (p *Piece) Ghost(b *Board) Mino {
	loc := p.Point
	for b.Fits(p.cellsAt(p.Rotation, Point{loc.X, loc.Y + 1})) {
		loc.Y++
	}

	return p.cellsAt(p.Rotation, loc)
}

func (p *Piece) tryMoveTo(b *Board, loc Point) bool {
	if !b.Fits(p.cellsAt(p.Rotation, loc)) {
		return false
	}

	p.Point = loc

	return true
}
