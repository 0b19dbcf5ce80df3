package engine

import (
	"errors"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrInvalidDepth = errors.New("search depth must be at least 1")
	ErrNoOptions    = errors.New("no moves to choose from")
)

type Engine struct {
	Estimator Estimator
	Depth     int
	// Threads bounds how many root children are searched at once; <= 0 means GOMAXPROCS.
	Threads int
	// Pick chooses one of n equally scored root options. Defaults to uniform random.
	Pick func(n int) int

	nodes int64

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewEngine(est Estimator, depth int) *Engine {
	e := &Engine{
		Estimator: est,
		Depth:     depth,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	e.Pick = e.randomPick
	return e
}

// Seed makes the default tie-break reproducible.
func (e *Engine) Seed(seed int64) {
	e.rngMu.Lock()
	e.rng = rand.New(rand.NewSource(seed))
	e.rngMu.Unlock()
}

func (e *Engine) randomPick(n int) int {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e.rng.Intn(n)
}

// FirstTie always picks the first of the tied options.
func FirstTie(int) int { return 0 }

// Nodes is the number of positions visited by the last search.
func (e *Engine) Nodes() int64 {
	return atomic.LoadInt64(&e.nodes)
}

func (e *Engine) threads() int {
	if e.Threads > 0 {
		return e.Threads
	}
	return runtime.GOMAXPROCS(0)
}

func (e *Engine) pick(n int) int {
	if n <= 1 {
		return 0
	}
	pick := e.Pick
	if pick == nil {
		pick = e.randomPick
	}
	i := pick(n)
	if i < 0 || i >= n {
		return 0
	}
	return i
}
