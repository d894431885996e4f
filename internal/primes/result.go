package primes

// Result is the outcome of one enumeration pass.
type Result struct {
	// Sum is the sum of all primes found, modulo 2^64.
	Sum uint64
	// Count is the number of primes found.
	Count uint64
	// Top is the finalized top-K collection.
	Top []uint64
	// SumOverflow is set when Sum wrapped around at least once. Sum is then
	// only the low 64 bits of the true total.
	SumOverflow bool
	// TopPeak is the largest size the top collection reached during the run.
	TopPeak int
	// Claimed is the number of candidates tested.
	Claimed uint64
}
