package pipeline

// RunStats tracks aggregate counters across a preview or apply pass.
type RunStats struct {
	Total     int
	Renamed   int
	Unchanged int
	Skipped   int
	Failed    int
}
