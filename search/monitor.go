package search

import "github.com/poiesic/worklens/core"

// RankMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps during a search.
type RankMonitor interface {
	Start(query string)
	AfterCorrection(original, corrected string)
	Scored(work *core.Work, score float64)
	Dropped(work *core.Work, score float64)
	Finish(results []core.Match)
}

// noopMonitor is a no-op implementation of RankMonitor
type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                      {}
func (n *noopMonitor) AfterCorrection(_, _ string)         {}
func (n *noopMonitor) Scored(_ *core.Work, _ float64)      {}
func (n *noopMonitor) Dropped(_ *core.Work, _ float64)     {}
func (n *noopMonitor) Finish(_ []core.Match)               {}
