package docxgen

import "runtime"

// Worker sizing bounds for batch conversion.
const (
	MinWorkers = 1
	MaxWorkers = 16
)

// ResolveWorkers determines how many files to convert in parallel.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs for
// containers), clamped to [MinWorkers, MaxWorkers].
func ResolveWorkers(workers int) int {
	n := workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return min(max(n, MinWorkers), MaxWorkers)
}
