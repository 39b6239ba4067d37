package gaest

import "math"

// ExpectedAlignments estimates how many cache entries the GA run will
// create, from the expected number of gene evaluations. Each evaluation
// of a never-seen pair adds two entries (the pair and its mirror), and
// the chance of a pair being new decays as the cache fills:
//
//	d(0) = 0
//	d(k) = d(k-1) + 2 - 2*d(k-1) / (n*(n-1))
//
// evaluated one step past the total gene evaluation count: every gene of every
// genome in the first generation, plus the mutated genes of the
// following generations
func ExpectedAlignments(n, popSize, nGen int, pMut float64) float64 {
	if n < 2 {
		return 0
	}

	total := float64(n*popSize) + pMut*float64(nGen)*float64(n)*float64(popSize)

	done := 0.0
	pairs := float64(n * (n - 1))
	for k := 0; k < int(math.Floor(total))+1; k++ {
		done = done + 2 - 2*done/pairs
	}
	return done
}

// TableSize turns the expected cache entry count into a per-row map
// capacity: the expected partners per row at the requested load, clamped
// by the sequence count and the configured maximum. Purely advisory
func TableSize(expected float64, n, maxSize int, load float64) int {
	size := int(expected / float64(n) / load)
	if size > n {
		size = n
	}
	if size > maxSize {
		size = maxSize
	}
	return size
}
