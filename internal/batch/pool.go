package batch

import (
	"sync"
)

// EvaluateAll splits evals into contiguous shards, one per worker. Each
// result is written at its input index, so the output order is the input order.
// rlog may be nil.
func EvaluateAll(evals []Evaluation, workers int, rlog *ResultLog) []Result {
	results := make([]Result, len(evals))
	if len(evals) == 0 {
		return results
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(evals) {
		workers = len(evals)
	}
	DebugLogOnce("Launching %d workers for %d evaluations", workers, len(evals))

	per, rem := len(evals)/workers, len(evals)%workers
	var wg sync.WaitGroup
	lo := 0
	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		wg.Add(1)
		go func(wid, lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				results[i] = Evaluate(evals[i])
				if rlog != nil {
					rlog.add(results[i])
				}
			}
			DebugLog("Worker #%d done: [%d, %d)", wid, lo, hi)
		}(w, lo, lo+n)
		lo += n
	}
	wg.Wait()
	return results
}
