package primes

const (
	// DefaultLimit is the exclusive upper bound of the candidate range.
	DefaultLimit uint64 = 10_000_000

	// DefaultWorkers is the fixed size of the worker pool.
	DefaultWorkers = 8

	// DefaultTopK is the number of primes kept in the top collection.
	DefaultTopK = 10

	// DefaultProgressEvery is the candidate interval at which a progress
	// signal is emitted.
	DefaultProgressEvery uint64 = 1_000_000

	// FirstCandidate is the smallest integer ever tested.
	FirstCandidate uint64 = 2
)
