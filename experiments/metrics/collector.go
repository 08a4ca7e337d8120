package metrics

import (
	"time"
)

type SearchMetric struct {
	Policy          string
	Depth           int
	Duration        time.Duration
	NodesExpanded   int
	LeavesEvaluated int
	Prunes          int
}

type MoveMetric struct {
	Step   int
	Action string
	Score  float64 // Game score after the move
	SearchMetric
}

type GameMetric struct {
	Layout     string
	Won        bool
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int // Pacman moves only
}

// Collector counts the work done by one search. A collector is used by a single search at a time.
type Collector interface {
	Start(policy string, depth int)
	AddNode()
	AddLeaf()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	policy    string
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	prunes    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(policy string, depth int) {
	m.startTime = time.Now()
	m.policy = policy
	m.depth = depth
	m.nodes, m.leaves, m.prunes = 0, 0, 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddPrune() {
	m.prunes++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Policy:          m.policy,
		Depth:           m.depth,
		Duration:        time.Since(m.startTime),
		NodesExpanded:   m.nodes,
		LeavesEvaluated: m.leaves,
		Prunes:          m.prunes,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(policy string, depth int) {}
func (m *dummyCollector) AddNode()                       {}
func (m *dummyCollector) AddLeaf()                       {}
func (m *dummyCollector) AddPrune()                      {}
func (m *dummyCollector) Complete() SearchMetric         { return SearchMetric{} }
