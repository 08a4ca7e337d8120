package agent

import (
	"encoding/json"
	"errors"
	"net/http"

	"pursuit/game"

	"github.com/rs/zerolog/log"
)

type findMoveResponse struct {
	Action game.Action `json:"action"`
}

// NewAgentServer serves POST /findmove for remote game masters.
func NewAgentServer(a Agent, rules game.Rules) http.Handler {
	// Create a local mux rather than using the global DefaultServeMux
	mux := http.NewServeMux()
	mux.HandleFunc("POST /findmove", func(w http.ResponseWriter, r *http.Request) {
		handleFindMove(w, r, a, rules)
	})
	return mux
}

// StartAgentServer blocks serving the agent on the given address.
func StartAgentServer(addr string, a Agent, rules game.Rules) error {
	log.Info().Msgf("starting agent server on %s ...", addr)
	return http.ListenAndServe(addr, NewAgentServer(a, rules))
}

func handleFindMove(w http.ResponseWriter, r *http.Request, a Agent, rules game.Rules) {
	var snapshot game.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	state, err := snapshot.Restore(rules)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	action, err := a.ChooseAction(state)
	if errors.Is(err, ErrNoLegalActions) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to choose action")
		http.Error(w, "failed to choose action: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("action", string(action)).Msg("served move")
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(findMoveResponse{Action: action}); err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
	}
}
