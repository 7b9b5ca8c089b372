package seed

import (
	"math/rand"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/cmcutils/internal/logx"
)

// DefaultSeed is used when no seed is given.
const DefaultSeed int64 = 42

// Generators bundles the random streams of one run.
type Generators struct {
	seed          int64
	deterministic bool

	General *rand.Rand
	Numeric *rand.Rand
	Tensor  TensorBackend
}

// New returns Generators seeded with s.
func New(s int64, opts ...Option) *Generators {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.backend == nil {
		o.backend = NewStreamBackend(o.devices)
	}
	g := &Generators{Tensor: o.backend, deterministic: o.deterministic}
	g.Reseed(s)
	return g
}

// Seed returns the seed last applied by Reseed.
func (g *Generators) Seed() int64 { return g.seed }

// Reseed resets every stream to s: general, numeric, tensor CPU and all
// devices. It also applies the kernel policy and empties the device cache.
// Calling it twice with the same seed restarts identical sequences.
func (g *Generators) Reseed(s int64) {
	g.seed = s
	g.General = newRand(s)
	g.Numeric = newRand(s)
	g.Tensor.ManualSeed(s)
	g.Tensor.EmptyCache()
	g.Tensor.ManualSeedAll(s)
	g.Tensor.SetDeterministic(g.deterministic, !g.deterministic)
	logx.For("seed").WithField("seed", s).Debug("seed set")
}

// SeedWorker reseeds General and Numeric with WorkerSeed of the tensor
// backend's initial seed. The tensor backend itself is left untouched.
// workerID is accepted so the method fits WorkerInitFunc; it does not
// influence the seed.
func (g *Generators) SeedWorker(workerID int) {
	ws := WorkerSeed(g.Tensor.InitialSeed())
	g.General = newRand(ws)
	g.Numeric = newRand(ws)
	logx.For("seed").WithFields(log.Fields{"worker": workerID, "seed": ws}).Trace("worker seeded")
}

// Derive returns an independent stream for a goroutine or worker. The
// result depends only on the current seed and stream, not on how much the
// other streams have been consumed.
func (g *Generators) Derive(stream uint64) *rand.Rand {
	return newRand(deriveSeed(g.seed, stream))
}

// WorkerInitFunc is the hook shape data-loading pools call once per worker.
type WorkerInitFunc func(workerID int)

var (
	mu      sync.Mutex
	current *Generators
)

// All seeds the process default with s and returns it. Existing default
// Generators are reseeded in place so holders of Default() stay in sync.
func All(s int64) *Generators {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = New(s)
		return current
	}
	current.Reseed(s)
	return current
}

// Install makes g the process default and returns the previous one.
func Install(g *Generators) *Generators {
	mu.Lock()
	defer mu.Unlock()
	prev := current
	current = g
	return prev
}

// Default returns the process default, seeding it with DefaultSeed on
// first use.
func Default() *Generators {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = New(DefaultSeed)
	}
	return current
}

// Worker seeds the process default for a data-loading worker. It matches
// WorkerInitFunc.
func Worker(workerID int) {
	g := Default()
	mu.Lock()
	defer mu.Unlock()
	g.SeedWorker(workerID)
}

// Reset drops the process default; the next Default call starts fresh.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = nil
}
