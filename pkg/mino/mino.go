package mino

import (
	"sort"
	"strings"
)

// Mino is a set of cells. Depending on context the points are either
// offsets relative to a piece origin or absolute board coordinates.
type Mino []Point

func (m Mino) Equal(other Mino) bool {
	if len(m) != len(other) {
		return false
	}

	for i := 0; i < len(m); i++ {
		if !m.HasPoint(other[i]) {
			return false
		}
	}

	return true
}

func (m Mino) String() string {
	newMino := make(Mino, len(m))
	copy(newMino, m)

	sort.Sort(newMino)

	var b strings.Builder
	for i := range newMino {
		if i > 0 {
			b.WriteRune(',')
		}

		b.WriteString(newMino[i].String())
	}

	return b.String()
}

func (m Mino) Len() int      { return len(m) }
func (m Mino) Swap(i, j int) { m[i], m[j] = m[j], m[i] }
func (m Mino) Less(i, j int) bool {
	return m[i].Y < m[j].Y || (m[i].Y == m[j].Y && m[i].X < m[j].X)
}

func (m Mino) HasPoint(p Point) bool {
	for _, mp := range m {
		if mp == p {
			return true
		}
	}

	return false
}

// Translate returns a copy of m moved by loc.
func (m Mino) Translate(loc Point) Mino {
	newMino := make(Mino, len(m))
	for i := range m {
		newMino[i] = m[i].Add(loc)
	}

	return newMino
}

func (m Mino) minCoords() (int, int) {
	minx := m[0].X
	miny := m[0].Y
	for i := 1; i < len(m); i++ {
		if m[i].X < minx {
			minx = m[i].X
		}
		if m[i].Y < miny {
			miny = m[i].Y
		}
	}
	return minx, miny
}

// Origin returns a copy of m shifted so its smallest coordinates are 0.
func (m Mino) Origin() Mino {
	if len(m) == 0 {
		return Mino{}
	}

	minx, miny := m.minCoords()

	return m.Translate(Point{-minx, -miny})
}

// Size returns the width and height of the bounding box of m.Origin().
func (m Mino) Size() (int, int) {
	var w, h int
	for _, p := range m.Origin() {
		if p.X+1 > w {
			w = p.X + 1
		}
		if p.Y+1 > h {
			h = p.Y + 1
		}
	}

	return w, h
}

// Render draws m top to bottom using X for occupied cells.
func (m Mino) Render() string {
	var b strings.Builder

	o := m.Origin()
	w, h := o.Size()
	for y := 0; y < h; y++ {
		line := make([]rune, w)
		for x := 0; x < w; x++ {
			line[x] = ' '
			if o.HasPoint(Point{x, y}) {
				line[x] = 'X'
			}
		}

		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteRune('\n')
	}

	return b.String()
}
