package compare

import (
	"runtime"
	"sync"

	"github.com/seqdiff/seqdiff/internal/seq"
)

// workItem is one variant queued for comparison against the reference.
type workItem struct {
	idx   int
	entry seq.Entry
}

// workResult is the finished comparison for one variant.
type workResult struct {
	idx        int
	comparison VariantComparison
}

// compareAll diffs every variant against the reference using a worker pool.
// Results land at their input index regardless of worker scheduling, so
// difference lists stay deterministic.
func (c *Comparator) compareAll(reference string, variants []seq.Entry) []VariantComparison {
	workers := runtime.NumCPU()
	if workers > len(variants) {
		workers = len(variants)
	}
	if workers < 1 {
		workers = 1
	}

	items := make(chan workItem, 2*workers)
	results := make(chan workResult, 2*workers)

	go func() {
		defer close(items)
		for i, v := range variants {
			items <- workItem{idx: i, entry: v}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				cmp := Pairwise(reference, item.entry.Sequence, c.seqType)
				cmp.Header = item.entry.Header
				results <- workResult{idx: item.idx, comparison: cmp}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([]VariantComparison, len(variants))
	for r := range results {
		ordered[r.idx] = r.comparison
	}
	return ordered
}
