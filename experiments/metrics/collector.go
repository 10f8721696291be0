package metrics

import (
	"minimax/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Height     int
	Root       game.Role
	Duration   time.Duration
	Leaves     int // Leaf visits
	Nodes      int // Interior nodes combined
	Spawned    int // Subtrees handed to a new goroutine
}

type Collector interface {
	Start(goroutines, height int, root game.Role)
	AddLeaf()
	AddNode()
	AddSpawn()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	height     int
	root       game.Role
	startTime  time.Time
	leaves     atomic.Int64
	nodes      atomic.Int64
	spawned    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, height int, root game.Role) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.height = height
	m.root = root
	m.leaves.Store(0)
	m.nodes.Store(0)
	m.spawned.Store(0)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddSpawn() {
	m.spawned.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Height:     m.height,
		Root:       m.root,
		Duration:   time.Since(m.startTime),
		Leaves:     int(m.leaves.Load()),
		Nodes:      int(m.nodes.Load()),
		Spawned:    int(m.spawned.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, height int, root game.Role) {}
func (m *dummyCollector) AddLeaf()                                     {}
func (m *dummyCollector) AddNode()                                     {}
func (m *dummyCollector) AddSpawn()                                    {}
func (m *dummyCollector) Complete() SearchMetric                       { return SearchMetric{} }
