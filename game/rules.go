package game

// Rules configures the scoring and timing of a grid game.
type Rules interface {
	TimePenalty() float64
	FoodReward() float64
	WinReward() float64
	LoseReward() float64
	GhostReward() float64
	ScaredTime() int
}

type StandardRules struct {
	Penalty     float64
	Food        float64
	Win         float64
	Lose        float64
	EatGhost    float64
	ScaredMoves int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Penalty:     1,
		Food:        10,
		Win:         500,
		Lose:        -500,
		EatGhost:    200,
		ScaredMoves: 40,
	}
}

func (sr *StandardRules) TimePenalty() float64 {
	return sr.Penalty
}

func (sr *StandardRules) FoodReward() float64 {
	return sr.Food
}

func (sr *StandardRules) WinReward() float64 {
	return sr.Win
}

func (sr *StandardRules) LoseReward() float64 {
	return sr.Lose
}

func (sr *StandardRules) GhostReward() float64 {
	return sr.EatGhost
}

func (sr *StandardRules) ScaredTime() int {
	return sr.ScaredMoves
}
