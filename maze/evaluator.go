package maze

import (
	"fmt"

	"github.com/mayjs/mayjs3d"
)

// State is the state of a game session. A session only moves forward, NotStarted -> Running -> Won or Lost;
// Session.Reset is the only way back to NotStarted.
type State int

const (
	NotStarted State = iota
	Running
	Won
	Lost
)

func (state State) String() string {
	switch state {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("State(%d)", int(state))
}

// Terminal returns true for Won and Lost.
func (state State) Terminal() bool {
	return state == Won || state == Lost
}

// Thresholds are the distances the evaluator compares against.
type Thresholds struct {
	Arrive float64 // The player wins when closer than this to the door.
	Catch  float64 // The player loses when closer than this to a pursuer.
}

// Outcome is the result of one evaluation.
type Outcome struct {
	State State
	// Move holds, for each pursuer passed to Evaluate, whether it should move this tick.
	Move []bool
}

// Evaluate decides the next State from the player's, the door's and the pursuers' positions. Only a Running state is
// evaluated; any other is returned unchanged with no pursuer allowed to move.
//
// The door is checked first: reaching it wins and no pursuer moves. Otherwise each pursuer that has caught the player
// makes the game lost and stays put, while the rest move.
func Evaluate(state State, player, door mayjs3d.Vector, pursuers []mayjs3d.Vector, thresholds Thresholds) Outcome {

	out := Outcome{State: state, Move: make([]bool, len(pursuers))}

	if state != Running {
		return out
	}

	if player.Distance(door) < thresholds.Arrive {
		out.State = Won
		return out
	}

	for i, p := range pursuers {
		if p.Distance(player) < thresholds.Catch {
			out.State = Lost
		} else {
			out.Move[i] = true
		}
	}

	return out

}
