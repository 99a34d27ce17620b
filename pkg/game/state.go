package game

type State int

const (
	StateSpawning State = iota
	StateFalling
	StateLocking
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSpawning:
		return "Spawning"
	case StateFalling:
		return "Falling"
	case StateLocking:
		return "Locking"
	case StateGameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}
