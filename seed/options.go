package seed

// Option customizes New.
type Option func(*options)

type options struct {
	backend       TensorBackend
	devices       int
	deterministic bool
}

func defaultOptions() options {
	return options{deterministic: true}
}

// WithBackend injects the tensor backend. Panics on nil.
func WithBackend(b TensorBackend) Option {
	if b == nil {
		panic("seed: WithBackend(nil)")
	}
	return func(o *options) { o.backend = b }
}

// WithDevices sets the device count of the default StreamBackend. Ignored
// when WithBackend is used. Panics on negative counts.
func WithDevices(n int) Option {
	if n < 0 {
		panic("seed: WithDevices(n<0)")
	}
	return func(o *options) { o.devices = n }
}

// WithDeterministic controls the kernel policy applied on seeding. true
// (the default) selects deterministic kernels and disables benchmarking.
func WithDeterministic(on bool) Option {
	return func(o *options) { o.deterministic = on }
}
