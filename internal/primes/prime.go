package primes

import "math"

// IsPrime reports whether n is prime by trial division with every integer
// in [2, floor(sqrt(n))]. It is defined for n >= 2 only; callers never pass
// smaller values.
func IsPrime(n uint64) bool {
	sqr := isqrt(n) + 1
	for i := uint64(2); i < sqr; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// isqrt returns floor(sqrt(n)). The float estimate is corrected in both
// directions because float64 cannot represent every uint64.
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	const maxRoot = math.MaxUint32
	if r > maxRoot {
		r = maxRoot
	}
	for r*r > n {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
