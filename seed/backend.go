package seed

import (
	"math/rand"
	"sync"
)

// TensorBackend is the tensor library's random state and kernel policy.
type TensorBackend interface {
	// ManualSeed reseeds the CPU generator and records the initial seed.
	ManualSeed(seed int64)
	// ManualSeedAll reseeds every device generator.
	ManualSeedAll(seed int64)
	// InitialSeed returns the seed last given to ManualSeed.
	InitialSeed() int64
	// SetDeterministic toggles deterministic kernels and benchmark-driven
	// (non-deterministic) kernel selection.
	SetDeterministic(deterministic, benchmark bool)
	// EmptyCache releases cached device memory.
	EmptyCache()
}

// StreamBackend is an in-process TensorBackend: one CPU stream plus one
// stream per device, each derived from the seed with deriveSeed.
type StreamBackend struct {
	mu            sync.Mutex
	initial       int64
	cpu           *rand.Rand
	devices       []*rand.Rand
	deterministic bool
	benchmark     bool
	cacheFlushes  int
}

// NewStreamBackend returns a backend with the given number of devices
// (negative counts as zero), seeded with DefaultSeed.
func NewStreamBackend(devices int) *StreamBackend {
	if devices < 0 {
		devices = 0
	}
	b := &StreamBackend{devices: make([]*rand.Rand, devices), benchmark: true}
	b.ManualSeed(DefaultSeed)
	b.ManualSeedAll(DefaultSeed)
	return b
}

func (b *StreamBackend) ManualSeed(seed int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initial = seed
	b.cpu = newRand(seed)
}

func (b *StreamBackend) ManualSeedAll(seed int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.devices {
		b.devices[i] = newRand(deriveSeed(seed, uint64(i)))
	}
}

func (b *StreamBackend) InitialSeed() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initial
}

func (b *StreamBackend) SetDeterministic(deterministic, benchmark bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deterministic = deterministic
	b.benchmark = benchmark
}

func (b *StreamBackend) EmptyCache() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cacheFlushes++
}

// CPU returns the CPU stream. Not goroutine-safe; see package docs.
func (b *StreamBackend) CPU() *rand.Rand {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cpu
}

// Device returns the stream of device i, or nil when i is out of range.
func (b *StreamBackend) Device(i int) *rand.Rand {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.devices) {
		return nil
	}
	return b.devices[i]
}

// Devices returns the device count.
func (b *StreamBackend) Devices() int { return len(b.devices) }

// Deterministic reports the kernel policy: (deterministic, benchmark).
func (b *StreamBackend) Deterministic() (bool, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.deterministic, b.benchmark
}

// CacheFlushes counts EmptyCache calls.
func (b *StreamBackend) CacheFlushes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cacheFlushes
}
