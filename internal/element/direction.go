package element

// Direction is the canonical orientation of an element or its label.
type Direction string

const (
	Right Direction = "RIGHT"
	Down  Direction = "DOWN"
	Left  Direction = "LEFT"
	Up    Direction = "UP"
)

// legacyDirections maps orientation tokens written by older save routines to
// their canonical form: lowercase words and the numeric encoding 0..3.
var legacyDirections = map[string]Direction{
	"right": Right, "down": Down, "left": Left, "up": Up,
	"0": Right, "1": Down, "2": Left, "3": Up,
}

// NormalizeDirection maps any known orientation token, legacy or canonical, to
// its canonical form. Unknown tokens report ok=false.
func NormalizeDirection(token string) (Direction, bool) {
	switch Direction(token) {
	case Right, Down, Left, Up:
		return Direction(token), true
	}
	if d, ok := legacyDirections[token]; ok {
		return d, true
	}
	return "", false
}

// Opposite returns the direction 180 degrees from d.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	case Down:
		return Up
	}
	return Left
}

// Orient rotates an offset expressed in RIGHT-facing coordinates into the
// given direction. Elements use it to keep port geometry consistent when
// FixDirection runs.
func Orient(dx, dy int, d Direction) (int, int) {
	switch d {
	case Down:
		return -dy, dx
	case Left:
		return -dx, -dy
	case Up:
		return dy, -dx
	default:
		return dx, dy
	}
}
