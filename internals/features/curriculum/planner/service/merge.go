// internals/features/curriculum/planner/service/merge.go
package service

// Run is a contiguous block of row indexes sharing one grouping key.
// Start and End are inclusive.
type Run struct {
	Start int
	End   int
}

// ContiguousRuns walks n rows and returns the contiguous equal-key runs.
// The export uses it once per grouping level (detail, course outcome,
// evidence type) instead of tracking start-row counters in nested loops.
func ContiguousRuns(n int, key func(i int) string) []Run {
	if n == 0 {
		return nil
	}
	runs := make([]Run, 0, n)
	start := 0
	for i := 1; i < n; i++ {
		if key(i) != key(start) {
			runs = append(runs, Run{Start: start, End: i - 1})
			start = i
		}
	}
	runs = append(runs, Run{Start: start, End: n - 1})
	return runs
}
