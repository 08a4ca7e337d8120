package game

import "fmt"

// Action is a move from the closed vocabulary of cardinal directions plus Stop.
type Action string

const (
	North Action = "North"
	South Action = "South"
	East  Action = "East"
	West  Action = "West"
	Stop  Action = "Stop"
)

// Directions lists the actions in the order legal actions are generated.
var Directions = []Action{North, South, East, West, Stop}

// Rows grow downwards, so North decrements Y.
var vectors = map[Action]Position{
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	West:  {X: -1, Y: 0},
	Stop:  {X: 0, Y: 0},
}

func ParseAction(name string) (Action, error) {
	action := Action(name)
	if _, ok := vectors[action]; !ok {
		return "", fmt.Errorf("unknown action %q", name)
	}
	return action, nil
}

func (a Action) Vector() Position {
	return vectors[a]
}

func (a Action) Reverse() Action {
	switch a {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return Stop
	}
}

func (p Position) Step(a Action) Position {
	v := a.Vector()
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}
