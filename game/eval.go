package game

import "math"

// DangerDistance is the Manhattan distance below which a ghost that is not scared is fatal.
const DangerDistance = 2

// EvaluateScore simply returns the state's score, meant for adversarial search agents
func EvaluateScore(s State) float64 {
	return s.Score()
}

// EvaluateComposite blends food proximity and ghost distance into the state's score.
// A live ghost within DangerDistance is -Inf, a state with no food left is +Inf.
func EvaluateComposite(s State) float64 {
	pacman := s.PacmanPosition()

	ghostSum := 0
	for _, ghost := range s.Ghosts() {
		distance := Manhattan(pacman, ghost.Position)
		if distance < DangerDistance && ghost.ScaredTimer == 0 {
			return math.Inf(-1)
		}
		ghostSum += distance
	}

	foodSum := 0
	for _, food := range s.Food() {
		foodSum += Manhattan(pacman, food)
	}

	// Food is never under pacman, so a zero sum means every food is eaten
	if foodSum == 0 {
		return math.Inf(1)
	}

	// Farther ghosts and closer food both raise the score
	return s.Score() + float64(ghostSum)/float64(foodSum)
}
