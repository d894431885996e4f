// Package primes enumerates the primes below a limit, reporting their count,
// their sum and a bounded top-K collection.
//
// Two execution strategies share the same per-candidate logic:
//
//   - Pool runs a fixed number of workers that claim candidates one at a
//     time from a shared Cursor, test them with trial division and merge
//     positive results into a shared Accumulator. Each shared cell has its
//     own lock.
//   - RunSequential walks the same range on the calling goroutine without
//     any synchronization and serves as correctness cross-check and
//     throughput baseline.
//
// The two strategies retain their top-K collection differently by default:
// the pool keeps every prime it finds and trims once at the end, the
// sequential run keeps a sliding window of the most recently found primes.
// See Policy.
package primes
