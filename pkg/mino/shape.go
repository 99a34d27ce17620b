package mino

import (
	"fmt"
	"strings"
)

const (
	Rotation0 = 0
	RotationR = 1
	Rotation2 = 2
	RotationL = 3

	RotationStates = 4
)

// Shape is one of the seven tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL

	ShapeCount = 7
)

// AllShapes lists every shape in catalog order.
var AllShapes = []Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

type shapeDef struct {
	name  string
	box   int
	block Block
	base  Mino
}

// Base states are given with row 0 at the top of the shape's bounding box.
var shapeDefs = [ShapeCount]shapeDef{
	ShapeI: {"I", 4, BlockSolidCyan, Mino{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
	ShapeO: {"O", 2, BlockSolidYellow, Mino{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	ShapeT: {"T", 3, BlockSolidMagenta, Mino{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
	ShapeS: {"S", 3, BlockSolidGreen, Mino{{1, 0}, {2, 0}, {0, 1}, {1, 1}}},
	ShapeZ: {"Z", 3, BlockSolidRed, Mino{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	ShapeJ: {"J", 3, BlockSolidBlue, Mino{{0, 0}, {0, 1}, {1, 1}, {2, 1}}},
	ShapeL: {"L", 3, BlockSolidOrange, Mino{{2, 0}, {0, 1}, {1, 1}, {2, 1}}},
}

var rotations [ShapeCount][RotationStates]Mino

func init() {
	for s, def := range shapeDefs {
		state := def.base
		for r := 0; r < RotationStates; r++ {
			rotations[s][r] = state

			next := make(Mino, len(state))
			for i, p := range state {
				next[i] = p.RotateCW(def.box)
			}
			state = next
		}
	}
}

// Offsets returns the cells of shape s in the given rotation, relative to the
// piece origin. Rotation is taken modulo RotationStates.
func Offsets(s Shape, rotation int) Mino {
	state := rotations[s][normalizeRotation(rotation)]

	m := make(Mino, len(state))
	copy(m, state)

	return m
}

func normalizeRotation(rotation int) int {
	rotation %= RotationStates
	if rotation < 0 {
		rotation += RotationStates
	}

	return rotation
}

func (s Shape) Valid() bool {
	return s >= 0 && s < ShapeCount
}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}

	return shapeDefs[s].name
}

// Block returns the colour a shape locks into the board with.
func (s Shape) Block() Block {
	return shapeDefs[s].block
}

// BoxSize returns the side of the square the shape rotates inside.
func (s Shape) BoxSize() int {
	return shapeDefs[s].box
}

func ParseShape(name string) (Shape, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for s, def := range shapeDefs {
		if def.name == name {
			return Shape(s), nil
		}
	}

	return 0, fmt.Errorf("unknown shape %q", name)
}

// ParseShapes parses a comma separated list of shape names.
func ParseShapes(list string) ([]Shape, error) {
	var shapes []Shape
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}

		s, err := ParseShape(name)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}

	return shapes, nil
}
