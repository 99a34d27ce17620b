package mino

import (
	"testing"
)

func newTestBoard(t *testing.T) *Board {
	b, err := NewBoard(DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatal(err)
	}

	return b
}

func fillRow(b *Board, y int, block Block) {
	for x := 0; x < b.W; x++ {
		b.M[I(x, y, b.W)] = block
	}
}

// addTestBlocks fills a few partial rows at the bottom of the board.
func addTestBlocks(b *Board) {
	var block Block
	for y := b.H - 7; y < b.H; y++ {
		for x := 0; x < b.W-1; x++ {
			if y < b.H-4 && (x < 2 || x > 7) {
				continue
			}

			if y == b.H-3 || (y < b.H-5 && x%2 > 0) {
				block = BlockSolidMagenta
			} else {
				block = BlockSolidYellow
			}

			b.M[I(x, y, b.W)] = block
		}
	}
}

func TestNewBoard(t *testing.T) {
	for _, size := range [][2]int{{0, 20}, {10, 0}, {-1, -1}} {
		if _, err := NewBoard(size[0], size[1]); err == nil {
			t.Errorf("failed to reject board size %dx%d", size[0], size[1])
		}
	}
}

func TestIsOccupied(t *testing.T) {
	b := newTestBoard(t)

	b.SetBlock(3, 19, BlockSolidRed)

	if !b.IsOccupied(3, 19) {
		t.Error("filled cell reported empty")
	}
	if b.IsOccupied(4, 19) {
		t.Error("empty cell reported occupied")
	}

	for _, p := range []Point{{-1, 0}, {10, 0}, {0, -1}, {0, 20}} {
		if !b.IsOccupied(p.X, p.Y) {
			t.Errorf("out of bounds cell %s not reported as blocked", p)
		}
	}
}

func TestFits(t *testing.T) {
	b := newTestBoard(t)
	b.SetBlock(5, 5, BlockSolidRed)

	var fitTestData = []struct {
		Cells Mino
		Fits  bool
	}{
		{Mino{{0, 0}, {9, 19}}, true},
		{Mino{{0, -3}, {1, -1}}, true},
		{Mino{{-1, -3}}, false},
		{Mino{{10, 0}}, false},
		{Mino{{0, 20}}, false},
		{Mino{{5, 5}}, false},
		{Mino{{5, 4}, {5, 6}}, true},
	}

	for _, d := range fitTestData {
		if got := b.Fits(d.Cells); got != d.Fits {
			t.Errorf("Fits(%s): expected %v, got %v", d.Cells, d.Fits, got)
		}
	}
}

func TestClearFullLinesNone(t *testing.T) {
	b := newTestBoard(t)
	addTestBlocks(b)

	before := b.Clone()

	if cleared := b.ClearFullLines(); cleared != 0 {
		t.Errorf("expected no lines cleared, got %d", cleared)
	}

	if !b.Equal(before) {
		t.Errorf("board changed without full lines:\n%s\n\nexpected:\n%s", b.Render(), before.Render())
	}
}

func TestClearFullLines(t *testing.T) {
	b := newTestBoard(t)
	addTestBlocks(b)

	ok := b.SetBlock(9, 19, BlockSolidMagenta)
	if !ok {
		t.Error("failed to set final block after test blocks")
	}
	ok = b.SetBlock(9, 18, BlockSolidMagenta)
	if !ok {
		t.Error("failed to set final block after test blocks")
	}
	ok = b.SetBlock(9, 16, BlockSolidMagenta)
	if !ok {
		t.Error("failed to set final block after test blocks")
	}

	filled := b.Filled()

	var survivors [][]Block
	for y := 0; y < b.H; y++ {
		if b.LineFilled(y) {
			continue
		}
		survivors = append(survivors, append([]Block(nil), b.M[I(0, y, b.W):I(0, y+1, b.W)]...))
	}

	cleared := b.ClearFullLines()
	if cleared != 3 {
		t.Errorf("failed to clear lines, wanted 3 got %d", cleared)
	}

	if b.Filled() != filled-3*b.W {
		t.Errorf("expected %d filled cells after clear, got %d", filled-3*b.W, b.Filled())
	}

	for y := 0; y < cleared; y++ {
		for x := 0; x < b.W; x++ {
			if b.Block(x, y) != BlockNone {
				t.Errorf("vacated row %d not empty at column %d", y, x)
			}
		}
	}

	for i, row := range survivors {
		y := cleared + i
		for x := 0; x < b.W; x++ {
			if b.Block(x, y) != row[x] {
				t.Errorf("row order not preserved: row %d column %d expected %s got %s", y, x, row[x], b.Block(x, y))
			}
		}
	}
}

func TestClearFullLinesMatchesSequential(t *testing.T) {
	for mask := 0; mask < 1<<6; mask++ {
		b, err := NewBoard(4, 6)
		if err != nil {
			t.Fatal(err)
		}

		for y := 0; y < b.H; y++ {
			if mask&(1<<y) != 0 {
				fillRow(b, y, BlockSolidBlue)
			} else {
				b.SetBlock(y%b.W, y, Block(int(BlockSolidBlue)+y%6))
			}
		}

		expected := b.Clone()
		expectedCleared := sequentialClear(expected)

		if cleared := b.ClearFullLines(); cleared != expectedCleared {
			t.Errorf("mask %06b: expected %d lines, got %d", mask, expectedCleared, cleared)
		}

		if !b.Equal(expected) {
			t.Errorf("mask %06b: board differs from sequential clear:\n%s\n\nexpected:\n%s", mask, b.Render(), expected.Render())
		}
	}
}

// sequentialClear removes full rows one at a time from the bottom.
func sequentialClear(b *Board) int {
	cleared := 0
	for y := b.H - 1; y >= 0; {
		if !b.LineFilled(y) {
			y--
			continue
		}

		for row := y; row > 0; row-- {
			copy(b.M[I(0, row, b.W):I(0, row+1, b.W)], b.M[I(0, row-1, b.W):I(0, row, b.W)])
		}
		for x := 0; x < b.W; x++ {
			b.M[I(x, 0, b.W)] = BlockNone
		}

		cleared++
	}

	return cleared
}

func TestLockPiece(t *testing.T) {
	b := newTestBoard(t)

	p := NewPiece(ShapeO, Point{0, 18})
	b.LockPiece(p)

	for _, c := range (Mino{{0, 18}, {1, 18}, {0, 19}, {1, 19}}) {
		if b.Block(c.X, c.Y) != BlockSolidYellow {
			t.Errorf("expected locked block at %s", c)
		}
	}

	if b.Filled() != 4 {
		t.Errorf("expected 4 filled cells, got %d", b.Filled())
	}

	// Cells above the board are not stored.
	p = NewPiece(ShapeI, Point{3, -2})
	p.Rotation = RotationR
	b.LockPiece(p)

	if b.Filled() != 6 {
		t.Errorf("expected 6 filled cells, got %d", b.Filled())
	}
}

func TestParseCells(t *testing.T) {
	b := newTestBoard(t)

	if err := b.ParseCells("0,19, 1,19,9,0", BlockGarbage); err != nil {
		t.Fatal(err)
	}

	if b.Filled() != 3 || b.Block(9, 0) != BlockGarbage {
		t.Errorf("unexpected board after parsing cells:\n%s", b.Render())
	}

	if err := b.ParseCells("0,19,1", BlockGarbage); err == nil {
		t.Error("failed to reject odd cell list")
	}
	if err := b.ParseCells("0,20", BlockGarbage); err == nil {
		t.Error("failed to reject out of bounds cell")
	}
}

func BenchmarkClearFullLines(b *testing.B) {
	board, err := NewBoard(DefaultWidth, DefaultHeight)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		addTestBlocks(board)
		fillRow(board, board.H-1, BlockGarbage)
		board.ClearFullLines()
		board.Clear()
	}
}
