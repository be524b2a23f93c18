package config

// Size units.
const (
	KiB = 1 << 10
	MiB = 1 << 20
)

// Bench defaults.
const (
	// DefaultBenchSize is the number of elements each bench worker pushes.
	DefaultBenchSize = 100_000
	// DefaultBenchWorkers is the number of bench workers run in parallel.
	DefaultBenchWorkers = 4
	// DefaultRingCapacity is the fixed capacity used for ring buffer benches.
	DefaultRingCapacity = 4 * KiB
)

// DefaultLogLevel is the log level used when --log-level is not set.
const DefaultLogLevel = "info"
