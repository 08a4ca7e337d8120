package game

// Pacman is always agent index 0, ghosts are >= 1
const Pacman = 0

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// GhostState is a ghost's position and the number of ghost moves it stays harmless for.
type GhostState struct {
	Position    Position `json:"position"`
	ScaredTimer int      `json:"scared_timer"`
}

// State should be immutable - operations on State always return a new copy
type State interface {
	// LegalActions is empty when the agent has no moves (win, loss)
	LegalActions(agent int) []Action
	// Successor panics if the action is not legal for the agent
	Successor(agent int, action Action) State
	NumAgents() int
	Score() float64

	PacmanPosition() Position
	Food() []Position
	Ghosts() []GhostState
}

// Evaluates a game state to a utility from pacman's perspective, higher is better.
type Evaluate func(State) float64
