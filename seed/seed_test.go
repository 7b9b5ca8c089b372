package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmcutils/array"
	"github.com/katalvlaran/cmcutils/seed"
)

// TestAll_SameSeedSameDraws checks the reproducibility contract: seeding
// twice with S and drawing once each time yields identical values.
func TestAll_SameSeedSameDraws(t *testing.T) {
	defer seed.Reset()

	g := seed.All(7)
	first := g.General.Float64()
	firstNum := g.Numeric.Int63()

	g = seed.All(7)
	require.Equal(t, first, g.General.Float64())
	require.Equal(t, firstNum, g.Numeric.Int63())
}

func TestAll_ReseedsTensorBackend(t *testing.T) {
	defer seed.Reset()

	be := seed.NewStreamBackend(2)
	seed.Install(seed.New(1, seed.WithBackend(be)))

	seed.All(99)
	assert.Equal(t, int64(99), be.InitialSeed())

	det, bench := be.Deterministic()
	assert.True(t, det)
	assert.False(t, bench)
	assert.Equal(t, 2, be.CacheFlushes(), "New and All each empty the cache")

	cpu := be.CPU().Int63()
	dev0 := be.Device(0).Int63()
	dev1 := be.Device(1).Int63()
	assert.NotEqual(t, dev0, dev1, "device streams are decorrelated")

	seed.All(99)
	assert.Equal(t, cpu, be.CPU().Int63())
	assert.Equal(t, dev0, be.Device(0).Int63())
	assert.Nil(t, be.Device(2))
}

func TestDefault_LazyAndReset(t *testing.T) {
	seed.Reset()
	defer seed.Reset()

	g := seed.Default()
	assert.Equal(t, seed.DefaultSeed, g.Seed())
	assert.Same(t, g, seed.Default())

	seed.Reset()
	assert.NotSame(t, g, seed.Default())
}

func TestWorker_UsesInitialSeedModulo(t *testing.T) {
	defer seed.Reset()

	const big = int64(1)<<40 + 5
	g := seed.All(big)
	be := g.Tensor.(*seed.StreamBackend)
	be.CPU().Int63() // advance the tensor stream by one draw

	seed.Worker(3)
	want := seed.New(5) // 2^40+5 mod 2^32 == 5
	assert.Equal(t, want.General.Int63(), g.General.Int63())
	assert.Equal(t, want.Numeric.Int63(), g.Numeric.Int63())

	ref := seed.NewStreamBackend(0)
	ref.ManualSeed(big)
	ref.CPU().Int63()
	assert.Equal(t, ref.CPU().Int63(), be.CPU().Int63(), "tensor stream is not reseeded by workers")
	assert.Equal(t, big, be.InitialSeed())
}

func TestWorker_IDDoesNotChangeSeed(t *testing.T) {
	a := seed.New(11)
	b := seed.New(11)
	a.SeedWorker(0)
	b.SeedWorker(5)
	assert.Equal(t, a.General.Int63(), b.General.Int63())
}

func TestWorkerSeed(t *testing.T) {
	assert.Equal(t, int64(5), seed.WorkerSeed(int64(1)<<32+5))
	assert.Equal(t, int64(1)<<32-1, seed.WorkerSeed(-1))
}

func TestWithDeterministicOff(t *testing.T) {
	be := seed.NewStreamBackend(0)
	seed.New(3, seed.WithBackend(be), seed.WithDeterministic(false))
	det, bench := be.Deterministic()
	assert.False(t, det)
	assert.True(t, bench)
}

func TestDerive_Independent(t *testing.T) {
	g := seed.New(5)
	a := g.Derive(1).Int63()
	g.General.Int63() // consuming other streams does not matter
	assert.Equal(t, a, g.Derive(1).Int63())
	assert.NotEqual(t, a, g.Derive(2).Int63())
}

func TestNumericStreamFeedsArrays(t *testing.T) {
	a, err := array.Random(2, 2, seed.New(8).Numeric)
	require.NoError(t, err)
	b, err := array.Random(2, 2, seed.New(8).Numeric)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { seed.WithBackend(nil) })
	assert.Panics(t, func() { seed.WithDevices(-1) })
	assert.Equal(t, 0, seed.NewStreamBackend(-4).Devices())
}

var _ seed.WorkerInitFunc = seed.Worker
