package enemy

import (
	"github.com/looplab/fsm"
)

// State is the exclusive combat state of one enemy
type State uint8

const (
	Idle State = iota
	Chase
	Windup
	Casting
	Recover
	Blocking
	Staggered
	Parried
	Retreat
	Strafe
	Redeemed
	stateCount
)

var stateNames = [stateCount]string{
	Idle:      "idle",
	Chase:     "chase",
	Windup:    "windup",
	Casting:   "casting",
	Recover:   "recover",
	Blocking:  "blocking",
	Staggered: "staggered",
	Parried:   "parried",
	Retreat:   "retreat",
	Strafe:    "strafe",
	Redeemed:  "redeemed",
}

func (s State) String() string {
	if s >= stateCount {
		return "unknown"
	}
	return stateNames[s]
}

// Timed reports whether the state carries a remaining-duration timer
func (s State) Timed() bool {
	return s != Idle && s != Redeemed && s != Chase && s != Retreat
}

// enterEvent names the machine event that moves into s
func enterEvent(s State) string {
	return "to_" + s.String()
}

func names(states ...State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.String()
	}
	return out
}

// active lists every non-terminal state
var active = []State{Idle, Chase, Windup, Casting, Recover, Blocking, Staggered, Parried, Retreat, Strafe}

// transitionGraph declares every legal edge; hard resets bypass it via SetState
func transitionGraph() fsm.Events {
	return fsm.Events{
		{Name: enterEvent(Idle), Src: names(Chase), Dst: Idle.String()},
		{Name: enterEvent(Chase), Src: names(Idle, Recover, Blocking, Staggered, Retreat, Strafe), Dst: Chase.String()},
		{Name: enterEvent(Windup), Src: names(Chase), Dst: Windup.String()},
		{Name: enterEvent(Casting), Src: names(Chase), Dst: Casting.String()},
		{Name: enterEvent(Recover), Src: names(Windup, Casting), Dst: Recover.String()},
		{Name: enterEvent(Retreat), Src: names(Chase), Dst: Retreat.String()},
		{Name: enterEvent(Strafe), Src: names(Chase), Dst: Strafe.String()},
		{Name: enterEvent(Blocking), Src: names(Idle, Chase, Recover), Dst: Blocking.String()},
		{Name: enterEvent(Parried), Src: names(Windup), Dst: Parried.String()},
		{Name: enterEvent(Staggered), Src: names(active...), Dst: Staggered.String()},
		{Name: enterEvent(Redeemed), Src: names(active...), Dst: Redeemed.String()},
	}
}
