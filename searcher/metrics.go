package searcher

import (
	"time"
)

// MoveMetrics describes one completed search: how long it ran, how many
// interior nodes and leaves it visited, and how often pruning cut a node's
// move list short.
type MoveMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Depth     int
	Value     int // score of the chosen move, set by the searcher
	Nodes     int64
	Leaves    int64
	Cutoffs   int64
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete(depth int) MoveMetrics
}

type metricsCollector struct {
	startTime time.Time
	nodes     int64
	leaves    int64
	cutoffs   int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes = 0
	m.leaves = 0
	m.cutoffs = 0
}

func (m *metricsCollector) AddNode() {
	m.nodes++
}

func (m *metricsCollector) AddLeaf() {
	m.leaves++
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs++
}

func (m *metricsCollector) Complete(depth int) MoveMetrics {
	return MoveMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Depth:     depth,
		Nodes:     m.nodes,
		Leaves:    m.leaves,
		Cutoffs:   m.cutoffs,
	}
}

// dummyCollector is used when metric collection is disabled.
type dummyCollector struct{}

func NewDummyCollector() MetricsCollector {
	return dummyCollector{}
}

func (dummyCollector) Start()     {}
func (dummyCollector) AddNode()   {}
func (dummyCollector) AddLeaf()   {}
func (dummyCollector) AddCutoff() {}
func (dummyCollector) Complete(depth int) MoveMetrics {
	return MoveMetrics{Depth: depth}
}
