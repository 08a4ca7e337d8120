package searcher

import (
	"errors"
	"fmt"
	"strings"
)

type Policy int

const (
	Minimax Policy = iota
	AlphaBeta
	Expectimax
)

var ErrUnknownPolicy = errors.New("unknown search policy")

var policyNames = map[Policy]string{
	Minimax:    "minimax",
	AlphaBeta:  "alphabeta",
	Expectimax: "expectimax",
}

func ParsePolicy(name string) (Policy, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
	for policy, policyName := range policyNames {
		if policyName == normalized {
			return policy, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

func (p Policy) Valid() bool {
	_, ok := policyNames[p]
	return ok
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

func (p Policy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(text []byte) error {
	policy, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = policy
	return nil
}
