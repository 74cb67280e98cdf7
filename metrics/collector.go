package metrics

import (
	"time"

	"github.com/rs/zerolog/log"

	"hanoi/game"
)

type GameMetric struct {
	Disks      int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration // Wall clock
	CPUTime    time.Duration // User plus system time of the process
	Actions    int           // Rod selections received
	EmptyPicks int
	Rejections int
	TotalMoves uint64
	Solved     bool
}

type Collector interface {
	Start(disks int)
	Record(out game.Outcome)
	Complete(moves uint64, solved bool) GameMetric
}

type collector struct {
	metric   GameMetric
	cpuStart time.Duration
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(disks int) {
	m.metric = GameMetric{
		Disks:     disks,
		StartTime: time.Now(),
	}
	m.cpuStart = cpuTime()
}

func (m *collector) Record(out game.Outcome) {
	m.metric.Actions++
	switch out.Type {
	case game.EmptyRodAction:
		m.metric.EmptyPicks++
	case game.RejectAction:
		m.metric.Rejections++
	}
}

func (m *collector) Complete(moves uint64, solved bool) GameMetric {
	m.metric.EndTime = time.Now()
	m.metric.Duration = m.metric.EndTime.Sub(m.metric.StartTime)
	m.metric.CPUTime = cpuTime() - m.cpuStart
	m.metric.TotalMoves = moves
	m.metric.Solved = solved
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(disks int)         {}
func (m *dummyCollector) Record(out game.Outcome) {}
func (m *dummyCollector) Complete(moves uint64, solved bool) GameMetric {
	return GameMetric{TotalMoves: moves, Solved: solved}
}

func logCPUError(err error) {
	log.Warn().Err(err).Msg("failed to read process cpu time")
}
