package experiments

import (
	"errors"
	"fmt"
	"os"

	"pursuit/meta"
	"pursuit/searcher"
	"pursuit/searcher/agent"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

type GhostKind string

const (
	RandomGhosts      GhostKind = "random"
	DirectionalGhosts GhostKind = "directional"
)

// AgentConfig describes one pacman agent taking part in an experiment.
// A reflex agent ignores policy and depth.
type AgentConfig struct {
	ID        int             `yaml:"id"`
	Reflex    bool            `yaml:"reflex"`
	Policy    searcher.Policy `yaml:"policy"`
	Evaluator agent.Evaluator `yaml:"evaluator"`
	Depth     int             `yaml:"depth"`
}

type Config struct {
	Name       string        `yaml:"name"`
	Layout     string        `yaml:"layout"`      // Inline board, takes precedence over LayoutPath
	LayoutPath string        `yaml:"layout_path"` // Relative to the working directory
	Games      int           `yaml:"games"`
	Seed       uint64        `yaml:"seed"`
	Ghosts     GhostKind     `yaml:"ghosts"`
	OutputDir  string        `yaml:"output_dir"`
	Agents     []AgentConfig `yaml:"agents"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML config, fills defaults and validates it
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{
		Games:     meta.NUM_GAMES,
		Ghosts:    DirectionalGhosts,
		OutputDir: "experiments",
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for i := range cfg.Agents {
		if cfg.Agents[i].Depth == 0 && !cfg.Agents[i].Reflex {
			cfg.Agents[i].Depth = meta.DEFAULT_DEPTH
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidConfig)
	}
	if c.Layout == "" && c.LayoutPath == "" {
		return fmt.Errorf("%w: missing layout", ErrInvalidConfig)
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Ghosts != RandomGhosts && c.Ghosts != DirectionalGhosts {
		return fmt.Errorf("%w: unknown ghosts %q", ErrInvalidConfig, c.Ghosts)
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("%w: no agents", ErrInvalidConfig)
	}
	ids := map[int]bool{}
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, a.ID)
		}
		ids[a.ID] = true
		if a.Depth < 0 {
			return fmt.Errorf("%w: agent %d has negative depth", ErrInvalidConfig, a.ID)
		}
	}
	return nil
}
