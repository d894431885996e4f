package primes

// referencePrimes returns the primes below limit using a sieve of
// Eratosthenes. It is independent of IsPrime and only used as an oracle.
func referencePrimes(limit uint64) []uint64 {
	if limit < 3 {
		return nil
	}
	composite := make([]bool, limit)
	var out []uint64
	for i := uint64(2); i < limit; i++ {
		if composite[i] {
			continue
		}
		out = append(out, i)
		for j := i * i; j < limit; j += i {
			composite[j] = true
		}
	}
	return out
}

func sumOf(values []uint64) uint64 {
	var s uint64
	for _, v := range values {
		s += v
	}
	return s
}

func lastN(values []uint64, n int) []uint64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

func equalSlices(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
