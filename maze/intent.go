package maze

import "math"

// MoveIntent holds which movement keys are currently held. It is sampled once per tick; there is no queueing.
type MoveIntent struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Any returns true if any movement key is held.
func (intent MoveIntent) Any() bool {
	return intent.Forward || intent.Backward || intent.Left || intent.Right
}

// ProbeAngle returns the rotation about world Y (in radians) to apply to the look direction to get the direction the
// player is moving in. Only one key decides it: backward wins over left, left over right, right over forward.
// The boolean is false if the look direction should be used as it is.
func (intent MoveIntent) ProbeAngle() (float64, bool) {
	switch {
	case intent.Backward:
		return math.Pi, true
	case intent.Left:
		return math.Pi / 2, true
	case intent.Right:
		return math.Pi * 3 / 2, true
	}
	return 0, false
}
