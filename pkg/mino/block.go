package mino

type Block int

func (b Block) String() string {
	return string(b.Rune())
}

func (b Block) Rune() rune {
	switch b {
	case BlockNone:
		return ' '
	case BlockGhost:
		return '▓'
	case BlockSolidBlue, BlockSolidCyan, BlockSolidRed, BlockSolidYellow, BlockSolidMagenta, BlockSolidGreen, BlockSolidOrange, BlockGarbage:
		return '█'
	default:
		return '?'
	}
}

// Solid reports whether b occupies a board cell.
func (b Block) Solid() bool {
	return b != BlockNone && b != BlockGhost
}

const (
	BlockNone Block = iota
	BlockGhost
	BlockGarbage
	BlockSolidBlue
	BlockSolidCyan
	BlockSolidRed
	BlockSolidYellow
	BlockSolidMagenta
	BlockSolidGreen
	BlockSolidOrange
)
