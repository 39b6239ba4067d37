package gaest

// Oracle answers "are these two sequences significantly similar?" for
// pairs of sequence indices, caching each verdict so every unordered pair
// is aligned at most once over the whole GA run
type Oracle struct {
	seqs    []*Sequence
	scoring Scoring

	// one sparse map per sequence, keyed by partner index. The verdict
	// is stored under both orientations, so cache[i][j] == cache[j][i]
	cache []map[int]bool

	// the number of dynamic programming alignments actually run
	aligned int
}

// NewOracle makes an oracle over the sequences. tableSize is the expected
// number of partners per row (from the sizing predictor) and only shapes
// the maps' starting capacity
func NewOracle(seqs []*Sequence, scoring Scoring, tableSize int) *Oracle {
	cache := make([]map[int]bool, len(seqs))
	for i := range cache {
		cache[i] = make(map[int]bool, tableSize)
	}

	return &Oracle{
		seqs:    seqs,
		scoring: scoring,
		cache:   cache,
	}
}

// Significant reports whether sequences i and j are significantly
// similar, aligning them in significance-probe mode on the first query
// and answering every later query from the cache
func (o *Oracle) Significant(i, j int) bool {
	if verdict, ok := o.cache[i][j]; ok {
		return verdict
	}

	verdict := Probe(o.seqs[i], o.seqs[j], o.scoring)
	o.aligned++

	o.cache[i][j] = verdict
	o.cache[j][i] = verdict
	return verdict
}

// Cached returns the cached verdict for (i, j), or false when the pair
// has never been probed. Fitness and cluster extraction read edges
// through this: a pair the GA never proposed is no edge
func (o *Oracle) Cached(i, j int) bool {
	return o.cache[i][j]
}

// Alignments returns the number of dynamic programming alignments run
func (o *Oracle) Alignments() int {
	return o.aligned
}
