package event

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionMoveLeft
	ActionMoveRight
	ActionRotate
	ActionSoftDrop
	ActionHardDrop
)

func (a GameAction) String() string {
	switch a {
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "Soft Drop"
	case ActionHardDrop:
		return "Hard Drop"
	default:
		return "Unknown"
	}
}
