// Package bench runs timed workloads against the containers and sorts.
package bench

import (
	"context"
	"math/rand/v2"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/percona/percona-compsci/alloc"
	"github.com/percona/percona-compsci/config"
	"github.com/percona/percona-compsci/dynarray"
	"github.com/percona/percona-compsci/errors"
	"github.com/percona/percona-compsci/list"
	"github.com/percona/percona-compsci/log"
	"github.com/percona/percona-compsci/metrics"
	"github.com/percona/percona-compsci/queue"
	"github.com/percona/percona-compsci/ring"
	"github.com/percona/percona-compsci/sel"
	"github.com/percona/percona-compsci/sorting"
	"github.com/percona/percona-compsci/stack"
)

// MaxQuadraticSortSize caps the input of the O(n^2) sorts.
const MaxQuadraticSortSize = 10_000

// Options configure a bench run.
type Options struct {
	// N is the number of elements each worker processes.
	N int
	// Workers is the number of goroutines running each bench.
	Workers int
	// RingCapacity is the fixed capacity of the ring buffer bench.
	RingCapacity int
	// Filter selects the benches to run. Nil runs every bench.
	Filter sel.Filter
}

// Result describes one finished bench.
type Result struct {
	// ID is the "group.name" identifier of the bench.
	ID string
	// N is the number of elements each worker processed.
	N int
	// Workers is the number of goroutines that ran the bench.
	Workers int
	// Elapsed is the wall time until every worker finished.
	Elapsed time.Duration
	// Stats is the allocation accounting summed over every worker.
	Stats alloc.Stats
}

// workload processes n elements and returns the allocation accounting of the
// containers it owned.
type workload func(n int) alloc.Stats

type entry struct {
	id  string
	run workload
}

func registry(opts Options) []entry {
	entries := []entry{
		{"container.dynarray", runDynarray},
		{"container.list", runList},
		{"container.ring", func(n int) alloc.Stats { return runRing(n, opts.RingCapacity) }},
		{"container.stack", runStack},
		{"container.queue", runQueue},
	}

	for _, name := range sorting.Names() {
		sortFn, _ := sorting.ByName[int](name)
		quadratic := name != sorting.MergeName && name != sorting.QuickName

		entries = append(entries, entry{"sort." + name, func(n int) alloc.Stats {
			if quadratic {
				n = min(n, MaxQuadraticSortSize)
			}

			return runSort(n, sortFn)
		}})
	}

	return entries
}

// IDs returns the identifiers of every bench.
func IDs() []string {
	entries := registry(Options{})
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}

	return ids
}

// Run runs every selected bench in turn. Each bench runs on opts.Workers
// goroutines; every goroutine owns its own containers.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.N <= 0 {
		opts.N = config.DefaultBenchSize
	}

	if opts.Workers <= 0 {
		opts.Workers = config.DefaultBenchWorkers
	}

	if opts.RingCapacity <= 0 {
		opts.RingCapacity = config.DefaultRingCapacity
	}

	if opts.Filter == nil {
		opts.Filter = sel.AllowAll
	}

	var results []Result

	for _, e := range registry(opts) {
		if !opts.Filter.Allows(e.id) {
			continue
		}

		res, err := runOne(ctx, e, opts)
		if err != nil {
			return results, errors.Wrap(err, e.id)
		}

		results = append(results, res)
	}

	return results, nil
}

func runOne(ctx context.Context, e entry, opts Options) (Result, error) {
	lg := log.Ctx(ctx).With(log.Str("bench", e.id))

	stats := make([]alloc.Stats, opts.Workers)

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.NumCPU())

	startedAt := time.Now()

	for i := range opts.Workers {
		grp.Go(func() (err error) {
			if ctxErr := grpCtx.Err(); ctxErr != nil {
				return ctxErr //nolint:wrapcheck
			}

			defer errors.Recover(&err)

			stats[i] = e.run(opts.N)

			return nil
		})
	}

	err := grp.Wait()
	if err != nil {
		return Result{}, errors.Wrap(err, "wait")
	}

	elapsed := time.Since(startedAt)
	metrics.SetBenchDuration(e.id, elapsed)

	res := Result{
		ID:      e.id,
		N:       opts.N,
		Workers: opts.Workers,
		Elapsed: elapsed,
	}

	for _, s := range stats {
		res.Stats.Acquired += s.Acquired
		res.Stats.Released += s.Released
		res.Stats.Resized += s.Resized
		res.Stats.LiveBytes += s.LiveBytes
	}

	lg.With(log.Elapsed(elapsed), log.Int("acquired", res.Stats.Acquired)).Debug("bench done")

	return res, nil
}

func runDynarray(n int) alloc.Stats {
	arr := dynarray.New[int]()
	for i := range n {
		arr.Push(i)
	}

	// a handful of shifting operations near the front
	for i := range min(n, 64) {
		arr.Insert(i, i)
		arr.Remove(i)
	}

	it := arr.IntoIter()
	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}

	return it.Stats()
}

func runList(n int) alloc.Stats {
	l := list.New[int]()
	for i := range n {
		if i%2 == 0 {
			l.PushBack(i)
		} else {
			l.PushFront(i)
		}
	}

	for i := range min(n, 64) {
		l.At(i * (l.Len() - 1) / 64)
	}

	for l.Len() > n/2 {
		l.PopBack()
	}

	it := l.IntoIter()
	it.Close()

	return it.Stats()
}

func runRing(n, capacity int) alloc.Stats {
	b := ring.New[int](capacity)
	for i := range n {
		if b.PushBack(i) != nil {
			b.PopFront()
			_ = b.PushBack(i)
		}
	}

	for range b.Drain() { //nolint:revive
	}

	return alloc.Stats{}
}

func runStack(n int) alloc.Stats {
	s := stack.New[int]()
	for i := range n {
		s.Push(i)
	}

	for s.Len() > 0 {
		s.Pop()
	}

	return alloc.Stats{}
}

func runQueue(n int) alloc.Stats {
	q := queue.New[int]()
	for i := range n {
		q.Enqueue(i)
	}

	for q.Len() > 0 {
		q.Dequeue()
	}

	return alloc.Stats{}
}

func runSort(n int, sortFn func([]int)) alloc.Stats {
	rnd := rand.New(rand.NewPCG(uint64(n), 0x5eed)) //nolint:gosec

	s := make([]int, n)
	for i := range s {
		s[i] = rnd.Int()
	}

	sortFn(s)

	return alloc.Stats{}
}
