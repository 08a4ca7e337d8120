package game

import (
	"fmt"
)

// Snapshot is the wire form of a GridState, as exchanged with remote agents.
// The layout travels as drawn at the start of the game so ghost spawns survive, while the
// dynamic fields carry everything that moved or was eaten since.
type Snapshot struct {
	Layout string    `json:"layout"`
	State  GridState `json:"state"`
}

func (gs GridState) Snapshot() Snapshot {
	return Snapshot{
		Layout: gs.Layout.String(),
		State:  *gs.Copy(),
	}
}

// Restore rebuilds the state under the given rules and checks it fits its layout.
func (s Snapshot) Restore(rules Rules) (*GridState, error) {
	l, err := ParseLayout(s.Layout)
	if err != nil {
		return nil, err
	}

	gs := s.State.Copy()
	gs.Layout = l
	gs.Rules = rules

	if len(gs.GhostList) != l.NumAgents()-1 {
		return nil, fmt.Errorf("%w: %d ghosts for %d ghost starts", ErrInvalidLayout, len(gs.GhostList), l.NumAgents()-1)
	}
	if len(gs.Headings) == 0 {
		gs.Headings = make([]Action, len(gs.GhostList))
		for i := range gs.Headings {
			gs.Headings[i] = Stop
		}
	}
	if len(gs.Headings) != len(gs.GhostList) {
		return nil, fmt.Errorf("%w: %d headings for %d ghosts", ErrInvalidLayout, len(gs.Headings), len(gs.GhostList))
	}
	for _, heading := range gs.Headings {
		if _, err := ParseAction(string(heading)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
		}
	}

	if err := l.checkOpen("pacman", gs.Pacman); err != nil {
		return nil, err
	}
	for i, ghost := range gs.GhostList {
		if err := l.checkOpen(fmt.Sprintf("ghost %d", i+1), ghost.Position); err != nil {
			return nil, err
		}
		if ghost.ScaredTimer < 0 {
			return nil, fmt.Errorf("%w: ghost %d has negative scared timer", ErrInvalidLayout, i+1)
		}
	}
	for _, p := range gs.FoodLeft {
		if err := l.checkOpen("food", p); err != nil {
			return nil, err
		}
	}
	for _, p := range gs.Capsules {
		if err := l.checkOpen("capsule", p); err != nil {
			return nil, err
		}
	}
	return gs, nil
}

func (l *Layout) checkOpen(what string, p Position) error {
	if l.IsWall(p) {
		return fmt.Errorf("%w: %s at (%d, %d) is inside a wall", ErrInvalidLayout, what, p.X, p.Y)
	}
	return nil
}
