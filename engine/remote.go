package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"pursuit/game"
	"pursuit/searcher/agent"
)

type remoteAgent struct {
	url    string
	client *http.Client
}

// NewRemoteAgent returns an agent that asks an agent server for pacman's moves
func NewRemoteAgent(url string, client *http.Client) agent.Agent {
	if client == nil {
		client = http.DefaultClient
	}
	return remoteAgent{url: url, client: client}
}

// ChooseAction posts a snapshot of the state to /findmove on the agent side
func (a remoteAgent) ChooseAction(state game.State) (game.Action, error) {
	gs, ok := state.(*game.GridState)
	if !ok {
		return "", fmt.Errorf("remote agents need a grid state, got %T", state)
	}

	body, err := json.Marshal(gs.Snapshot())
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}

	resp, err := a.client.Post(a.url+"/findmove", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity {
		return "", agent.ErrNoLegalActions
	}
	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("agent returned status %d: %s", resp.StatusCode, out)
	}

	var move struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&move); err != nil {
		return "", fmt.Errorf("failed to decode move: %w", err)
	}
	return game.ParseAction(move.Action)
}
