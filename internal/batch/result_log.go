package batch

import (
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/lukaszgryglicki/photonics/photonics"
)

type Category uint8

const (
	OK              Category = iota // finite value
	DomainViolation                 // real beta on the wrong side of k0·n
	NonFinite                       // NaN or Inf propagated from the inputs
	Failed                          // evaluation could not be dispatched
	numCategories
)

var categoryNames = [numCategories]string{"ok", "domain", "non-finite", "failed"}

func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return "unknown"
}

func categorize(r Result) Category {
	switch {
	case errors.Is(r.Err, photonics.ErrDomain):
		return DomainViolation
	case r.Err != nil:
		return Failed
	case !isFiniteC(r.Value):
		return NonFinite
	}
	return OK
}

// ResultLog counts outcomes per op; safe for concurrent use by pool workers.
type ResultLog struct {
	mu     sync.Mutex
	counts map[Op]*[numCategories]int
}

func newResultLog() *ResultLog {
	return &ResultLog{counts: make(map[Op]*[numCategories]int)}
}

func (l *ResultLog) add(r Result) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.counts[r.Op]
	if !ok {
		c = &[numCategories]int{}
		l.counts[r.Op] = c
	}
	c[r.Category]++
}

func (l *ResultLog) Count(op Op, cat Category) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok := l.counts[op]; ok && cat < numCategories {
		return c[cat]
	}
	return 0
}

func (l *ResultLog) Stats() {
	l.mu.Lock()
	defer l.mu.Unlock()
	ops := make([]string, 0, len(l.counts))
	for op := range l.counts {
		ops = append(ops, string(op))
	}
	sort.Strings(ops)
	for _, op := range ops {
		c := l.counts[Op(op)]
		slog.Info("outcomes",
			"op", op,
			OK.String(), humanize.Comma(int64(c[OK])),
			DomainViolation.String(), humanize.Comma(int64(c[DomainViolation])),
			NonFinite.String(), humanize.Comma(int64(c[NonFinite])),
			Failed.String(), humanize.Comma(int64(c[Failed])),
		)
	}
}
