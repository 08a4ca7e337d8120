package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// roundTrip sends the state through JSON the way the agent server receives it
func roundTrip(t *testing.T, gs *GridState) *GridState {
	t.Helper()
	data, err := json.Marshal(gs.Snapshot())
	require.NoError(t, err)
	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	restored, err := snapshot.Restore(NewStandardRules())
	require.NoError(t, err)
	return restored
}

func TestLayoutString(t *testing.T) {
	text := "%%%%%\n%Po.%\n%G .%\n%%%%%\n"
	l, err := ParseLayout(text)
	require.NoError(t, err)

	require.Equal(t, text, l.String())
}

func TestSnapshot(t *testing.T) {
	t.Run("keeping food under a ghost", func(t *testing.T) {
		gs := mustState(t, "%%%%%%\n%P .G%\n%%%%%%\n")
		gs = gs.Successor(Pacman, Stop).(*GridState)
		gs = gs.Successor(1, West).(*GridState)
		require.Equal(t, gs.Ghosts()[0].Position, gs.Food()[0], "Ghost should stand on the last food")

		restored := roundTrip(t, gs)

		require.Equal(t, []Position{{X: 3, Y: 1}}, restored.Food())
		require.False(t, restored.IsWin())
		require.NotEmpty(t, restored.LegalActions(Pacman))
		require.Equal(t, []Action{West}, restored.Headings)
		require.Equal(t, gs, restored)
	})

	t.Run("keeping ghosts that share a cell", func(t *testing.T) {
		gs := mustState(t, "%%%%%%%\n%P  GG%\n%%%%%%%\n")
		gs = gs.Successor(Pacman, Stop).(*GridState)
		gs = gs.Successor(1, East).(*GridState)
		require.Equal(t, gs.Ghosts()[0].Position, gs.Ghosts()[1].Position)

		restored := roundTrip(t, gs)

		require.Len(t, restored.Ghosts(), 2)
		require.Equal(t, []Position{{X: 4, Y: 1}, {X: 5, Y: 1}}, restored.Layout.GhostStarts, "Spawns come from the layout")
		require.Equal(t, gs, restored)
	})

	t.Run("keeping capsules, timers and score", func(t *testing.T) {
		gs := mustState(t, "%%%%%%%\n%P.oG.%\n%%%%%%%\n")
		gs = gs.Successor(Pacman, East).(*GridState)
		gs = gs.Successor(1, West).(*GridState)
		gs.GhostList[0].ScaredTimer = 5

		restored := roundTrip(t, gs)

		require.Equal(t, []Position{{X: 3, Y: 1}}, restored.Capsules)
		require.Equal(t, 5, restored.Ghosts()[0].ScaredTimer)
		require.Equal(t, 9.0, restored.Score())
	})

	t.Run("defaulting missing headings", func(t *testing.T) {
		snapshot := mustState(t, corridor).Snapshot()
		snapshot.State.Headings = nil

		gs, err := snapshot.Restore(NewStandardRules())

		require.NoError(t, err)
		require.Equal(t, []Action{Stop}, gs.Headings)
	})

	t.Run("rejecting states that do not fit the layout", func(t *testing.T) {
		for name, broken := range map[string]func(s *Snapshot){
			"bad layout":      func(s *Snapshot) { s.Layout = "%%%" },
			"missing ghost":   func(s *Snapshot) { s.State.GhostList = nil },
			"extra heading":   func(s *Snapshot) { s.State.Headings = []Action{Stop, Stop} },
			"unknown heading": func(s *Snapshot) { s.State.Headings = []Action{"Up"} },
			"pacman in wall":  func(s *Snapshot) { s.State.Pacman = Position{X: 0, Y: 0} },
			"ghost off grid":  func(s *Snapshot) { s.State.GhostList[0].Position = Position{X: 9, Y: 9} },
			"food in wall":    func(s *Snapshot) { s.State.FoodLeft = []Position{{X: 0, Y: 1}} },
			"negative timer":  func(s *Snapshot) { s.State.GhostList[0].ScaredTimer = -1 },
		} {
			snapshot := mustState(t, corridor).Snapshot()
			broken(&snapshot)

			_, err := snapshot.Restore(NewStandardRules())

			require.ErrorIs(t, err, ErrInvalidLayout, name)
		}
	})
}
