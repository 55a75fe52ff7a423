package game

// Direction is one of the four ways a player can move.
//
// The set is closed: isDirection is unexported, so only this package can add
// variants, and every variant must define Label to satisfy the interface.
type Direction interface {
	Label() string
	isDirection()
}

type (
	Up    struct{}
	Down  struct{}
	Left  struct{}
	Right struct{}
)

var (
	_ Direction = Up{}
	_ Direction = Down{}
	_ Direction = Left{}
	_ Direction = Right{}
)

func (Up) Label() string { return "UP" }
func (Down) Label() string { return "DOWN" }
func (Left) Label() string { return "LEFT" }
func (Right) Label() string { return "RIGHT" }

func (d Up) String() string { return d.Label() }
func (d Down) String() string { return d.Label() }
func (d Left) String() string { return d.Label() }
func (d Right) String() string { return d.Label() }

func (Up) isDirection() {}
func (Down) isDirection() {}
func (Left) isDirection() {}
func (Right) isDirection() {}

// Directions returns every variant in declaration order.
func Directions() []Direction {
	return []Direction{Up{}, Down{}, Left{}, Right{}}
}

// LabelOf returns the uppercase display label of d.
func LabelOf(d Direction) string {
	return d.Label()
}
