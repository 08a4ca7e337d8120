// meta/meta.go
package meta

// DEFAULT_DEPTH is the number of full rounds searched when no depth is configured.
const DEFAULT_DEPTH = 2

// MAX_MOVES bounds the number of pacman moves in one game.
const MAX_MOVES = 500

// NUM_GAMES is the number of games played per agent config in an experiment.
const NUM_GAMES = 10

// DIRECTIONAL_PROBABILITY is the chance a directional ghost chases pacman instead of wandering.
const DIRECTIONAL_PROBABILITY = 0.8
