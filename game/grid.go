package game

import (
	"fmt"
	"strings"

	"pursuit/utils"
)

// GridState is the dynamic state of a grid game. The layout and rules are shared and never modified.
type GridState struct {
	Layout    *Layout      `json:"-"`
	Rules     Rules        `json:"-"`
	Pacman    Position     `json:"pacman"`
	GhostList []GhostState `json:"ghosts"`
	Headings  []Action     `json:"headings"` // Last move per ghost, ghosts may not reverse
	FoodLeft  []Position   `json:"food"`
	Capsules  []Position   `json:"capsules"`
	Points    float64      `json:"score"`
	Won       bool         `json:"won"`
	Lost      bool         `json:"lost"`
}

// NewGridState places every agent on its starting position.
func NewGridState(l *Layout, rules Rules) *GridState {
	gs := &GridState{
		Layout:    l,
		Rules:     rules,
		Pacman:    l.PacmanStart,
		GhostList: make([]GhostState, len(l.GhostStarts)),
		Headings:  make([]Action, len(l.GhostStarts)),
		FoodLeft:  append([]Position(nil), l.Food...),
		Capsules:  append([]Position(nil), l.Capsules...),
	}
	for i, start := range l.GhostStarts {
		gs.GhostList[i] = GhostState{Position: start}
		gs.Headings[i] = Stop
	}
	gs.Won = len(gs.FoodLeft) == 0
	return gs
}

func (gs GridState) Copy() *GridState {
	return &GridState{
		Layout:    gs.Layout, // Layout is immutable
		Rules:     gs.Rules,  // Rules are immutable
		Pacman:    gs.Pacman,
		GhostList: append([]GhostState(nil), gs.GhostList...),
		Headings:  append([]Action(nil), gs.Headings...),
		FoodLeft:  append([]Position(nil), gs.FoodLeft...),
		Capsules:  append([]Position(nil), gs.Capsules...),
		Points:    gs.Points,
		Won:       gs.Won,
		Lost:      gs.Lost,
	}
}

func (gs GridState) LegalActions(agent int) []Action {
	if gs.Won || gs.Lost {
		return nil
	}
	if agent == Pacman {
		return gs.pacmanActions()
	}
	return gs.ghostActions(agent - 1)
}

func (gs GridState) pacmanActions() []Action {
	actions := []Action{}
	for _, action := range Directions {
		if action == Stop || !gs.Layout.IsWall(gs.Pacman.Step(action)) {
			actions = append(actions, action)
		}
	}
	return actions
}

func (gs GridState) ghostActions(ghost int) []Action {
	if ghost < 0 || ghost >= len(gs.GhostList) {
		panic(fmt.Sprintf("no ghost with agent index %d", ghost+1))
	}
	position := gs.GhostList[ghost].Position

	actions := []Action{}
	for _, action := range Directions {
		if action != Stop && !gs.Layout.IsWall(position.Step(action)) {
			actions = append(actions, action)
		}
	}
	// Ghosts only turn back at dead ends
	if reverse := gs.Headings[ghost].Reverse(); reverse != Stop && len(actions) > 1 {
		if i := utils.FindIndex(actions, reverse); i >= 0 {
			actions = append(actions[:i], actions[i+1:]...)
		}
	}
	// Boxed in ghosts wait
	if len(actions) == 0 {
		actions = append(actions, Stop)
	}
	return actions
}

func (gs GridState) Successor(agent int, action Action) State {
	if !utils.Contains(gs.LegalActions(agent), action) {
		panic(fmt.Sprintf("illegal action %s for agent %d", action, agent))
	}

	next := gs.Copy()
	if agent == Pacman {
		next.movePacman(action)
	} else {
		next.moveGhost(agent-1, action)
	}
	return next
}

func (gs *GridState) movePacman(action Action) {
	gs.Pacman = gs.Pacman.Step(action)
	gs.Points -= gs.Rules.TimePenalty()

	if i := utils.FindIndex(gs.FoodLeft, gs.Pacman); i >= 0 {
		gs.FoodLeft = append(gs.FoodLeft[:i], gs.FoodLeft[i+1:]...)
		gs.Points += gs.Rules.FoodReward()
		if len(gs.FoodLeft) == 0 {
			gs.Points += gs.Rules.WinReward()
			gs.Won = true
			return
		}
	}

	if i := utils.FindIndex(gs.Capsules, gs.Pacman); i >= 0 {
		gs.Capsules = append(gs.Capsules[:i], gs.Capsules[i+1:]...)
		for g := range gs.GhostList {
			gs.GhostList[g].ScaredTimer = gs.Rules.ScaredTime()
		}
	}

	for g := range gs.GhostList {
		gs.checkCollision(g)
		if gs.Lost {
			return
		}
	}
}

func (gs *GridState) moveGhost(ghost int, action Action) {
	g := &gs.GhostList[ghost]
	g.Position = g.Position.Step(action)
	if g.ScaredTimer > 0 {
		g.ScaredTimer--
	}
	gs.Headings[ghost] = action
	gs.checkCollision(ghost)
}

// checkCollision resolves pacman and a ghost sharing a cell
func (gs *GridState) checkCollision(ghost int) {
	g := &gs.GhostList[ghost]
	if g.Position != gs.Pacman {
		return
	}
	if g.ScaredTimer > 0 {
		gs.Points += gs.Rules.GhostReward()
		g.Position = gs.Layout.GhostStarts[ghost]
		g.ScaredTimer = 0
		gs.Headings[ghost] = Stop
		return
	}
	gs.Points += gs.Rules.LoseReward()
	gs.Lost = true
}

func (gs GridState) NumAgents() int {
	return 1 + len(gs.GhostList)
}

func (gs GridState) Score() float64 {
	return gs.Points
}

func (gs GridState) PacmanPosition() Position {
	return gs.Pacman
}

func (gs GridState) Food() []Position {
	return append([]Position(nil), gs.FoodLeft...)
}

func (gs GridState) Ghosts() []GhostState {
	return append([]GhostState(nil), gs.GhostList...)
}

func (gs GridState) IsWin() bool {
	return gs.Won
}

func (gs GridState) IsLose() bool {
	return gs.Lost
}

// String draws the state with layout glyphs
func (gs GridState) String() string {
	rows := make([][]byte, gs.Layout.Height)
	for y := range rows {
		rows[y] = make([]byte, gs.Layout.Width)
		for x := range rows[y] {
			if gs.Layout.Walls[y][x] {
				rows[y][x] = WallGlyph
			} else {
				rows[y][x] = EmptyGlyph
			}
		}
	}
	for _, p := range gs.FoodLeft {
		rows[p.Y][p.X] = FoodGlyph
	}
	for _, p := range gs.Capsules {
		rows[p.Y][p.X] = CapsuleGlyph
	}
	rows[gs.Pacman.Y][gs.Pacman.X] = PacmanGlyph
	for _, g := range gs.GhostList {
		rows[g.Position.Y][g.Position.X] = GhostGlyph
	}

	var b strings.Builder
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
