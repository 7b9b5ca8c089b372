// Package seed makes experiment randomness reproducible.
//
// A *Generators value bundles every random stream a run touches:
//
//	General   the general-purpose stream (shuffles, sampling, augmentation)
//	Numeric   the numeric-array stream (array.Random and friends)
//	Tensor    a TensorBackend with a CPU stream and one stream per device
//
// Generators can be built and passed around explicitly (New) or installed
// as the process default with a small lifecycle:
//
//	seed.All(42)              // init: reseed everything, deterministic kernels
//	g := seed.Default()       // read (lazily seeded with DefaultSeed)
//	seed.Worker(id)           // per data-loading worker: General+Numeric only
//	seed.Reset()              // teardown
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe; give each goroutine its own stream
//     (Generators.Derive) instead of sharing one.
//   - All/Default/Worker/Reset are serialised by a package mutex, but racing
//     callers that seed differently still observe whichever call ran last.
package seed
