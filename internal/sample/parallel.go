package sample

import (
	"runtime"
	"sync"
)

// workItem holds one sample queued for analysis.
type workItem struct {
	seq  int
	item *Item
}

// workResult holds the outcome for a single sample.
type workResult struct {
	seq  int
	item *Item
	err  error
}

// parallelAnalyze runs sample analyses on a pool of workers. Results
// arrive in completion order; use orderedCollect to consume them in
// sequence order. If workers is 0, runtime.NumCPU() is used. Samples are
// independent and the catalog is read-only, so no locking is needed.
func (g *Group) parallelAnalyze(items <-chan workItem, workers int) <-chan workResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan workResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for wi := range items {
				results <- workResult{
					seq:  wi.seq,
					item: wi.item,
					err:  wi.item.Analyze(g.Params),
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// orderedCollect calls fn for each result in sequence order, buffering
// out-of-order arrivals until the next expected sequence number shows up.
// Blocks until the results channel is closed.
func orderedCollect(results <-chan workResult, fn func(workResult) error) error {
	pending := make(map[int]workResult)
	nextSeq := 0

	for r := range results {
		pending[r.seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
