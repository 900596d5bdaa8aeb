package array

// Defaults used by New when no Option overrides them.
const (
	// DefaultCapacity is the number of slots allocated by New.
	DefaultCapacity = 10
	// DefaultGrowthFactor multiplies the capacity each time a full array grows.
	DefaultGrowthFactor = 2
)

const (
	panicCapacityInvalid = "array: WithCapacity: capacity must be at least 1"
	panicGrowthInvalid   = "array: WithGrowthFactor: factor must be at least 2"
)

// Option configures an Array built by New.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	capacity int
	growth   int
}

func defaultOptions() options {
	return options{capacity: DefaultCapacity, growth: DefaultGrowthFactor}
}

// WithCapacity sets the initial capacity.
func WithCapacity(n int) Option {
	if n < 1 {
		panic(panicCapacityInvalid)
	}
	return func(o *options) {
		o.capacity = n
	}
}

// WithGrowthFactor sets the multiplier applied to the capacity when the array is full.
func WithGrowthFactor(f int) Option {
	if f < 2 {
		panic(panicGrowthInvalid)
	}
	return func(o *options) {
		o.growth = f
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
