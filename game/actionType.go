package game

// ActionType is the result of applying one rod selection to the game.
type ActionType int

const (
	PickUpAction   ActionType = iota // A disk was lifted off the rod
	EmptyRodAction                   // Nothing to lift; state unchanged
	PlaceAction                      // The held disk was placed; counts as a move
	RejectAction                     // The held disk is larger than the rod's top; state unchanged
)

func (a ActionType) String() string {
	switch a {
	case PickUpAction:
		return "pick-up"
	case EmptyRodAction:
		return "empty-rod"
	case PlaceAction:
		return "place"
	case RejectAction:
		return "reject"
	default:
		return "unknown"
	}
}
