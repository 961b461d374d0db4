package renderer

import "time"

// IterationStats describes one completed render iteration
type IterationStats struct {
	Iteration       int           // Iteration index (0-based)
	ActivePaths     []int         // Active path count entering each depth level, after compaction
	DepthsRun       int           // Depth levels actually executed
	TerminatedPaths int           // Survivors that ended at a light or spent their bounce budget
	Duration        time.Duration // Wall time for the whole iteration
}

// FinalActive returns the number of paths that survived to accumulation
func (st IterationStats) FinalActive() int {
	if len(st.ActivePaths) == 0 {
		return 0
	}
	return st.ActivePaths[len(st.ActivePaths)-1]
}
