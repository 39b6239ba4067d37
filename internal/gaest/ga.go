package gaest

import (
	"math"
	"math/rand"
)

// Genome encodes a candidate clustering: position i holds the partner
// sequence the GA proposes for sequence i. A genome never pairs a
// sequence with itself
type Genome []int

func (g Genome) clone() Genome {
	c := make(Genome, len(g))
	copy(c, g)
	return c
}

// individual is one member of the GA population
type individual struct {
	genome Genome
	score  float64
}

// Engine is a simple generational GA over partner genomes: roulette-wheel
// selection, single-point crossover, per-gene mutation and optional
// elitism. The oracle is consulted (and thereby warmed) by the
// initializer and the mutator; fitness reads edges from its cache only
type Engine struct {
	// PopulationSize is the number of genomes per generation
	PopulationSize int

	// Generations is the number of generations to run
	Generations int

	// PMutation is the per-gene mutation rate
	PMutation float64

	// PCrossover is the chance a selected pair is recombined
	PCrossover float64

	// Elitism carries the best individual into the next generation
	Elitism bool

	oracle *Oracle
	n      int
	rng    *rand.Rand

	pop       []individual
	best      Genome
	bestScore float64

	stats Statistics
}

// NewEngine makes a GA engine over the oracle's sequences
func NewEngine(oracle *Oracle, popSize, nGen int, pMut, pCross float64, elitism bool, rng *rand.Rand) *Engine {
	return &Engine{
		PopulationSize: popSize,
		Generations:    nGen,
		PMutation:      pMut,
		PCrossover:     pCross,
		Elitism:        elitism,
		oracle:         oracle,
		n:              len(oracle.seqs),
		rng:            rng,
	}
}

// Initialize builds and evaluates the first population
func (e *Engine) Initialize() {
	e.pop = make([]individual, e.PopulationSize)
	for p := range e.pop {
		genome := make(Genome, e.n)
		e.initializer(genome)
		e.pop[p] = individual{genome: genome, score: e.objective(genome)}
		e.stats.Evaluations++
	}

	e.trackBest()
	e.stats.Initial = e.bestScore
	e.stats.record(e.pop)
}

// Step advances the GA by one generation
func (e *Engine) Step() {
	prevBest := individual{genome: e.best, score: e.bestScore}

	next := make([]individual, 0, e.PopulationSize)
	for len(next) < e.PopulationSize {
		p1 := e.selectParent()
		p2 := e.selectParent()

		c1, c2 := p1.clone(), p2.clone()
		if e.rng.Float64() < e.PCrossover {
			e.crossover(c1, c2)
		}

		e.mutator(c1, e.PMutation)
		next = append(next, individual{genome: c1, score: e.objective(c1)})
		e.stats.Evaluations++

		if len(next) < e.PopulationSize {
			e.mutator(c2, e.PMutation)
			next = append(next, individual{genome: c2, score: e.objective(c2)})
			e.stats.Evaluations++
		}
	}

	// keep the best individual alive across generations
	if e.Elitism {
		worst := 0
		for p := range next {
			if next[p].score < next[worst].score {
				worst = p
			}
		}
		if prevBest.score > next[worst].score {
			next[worst] = individual{genome: prevBest.genome.clone(), score: prevBest.score}
		}
	}

	e.pop = next
	e.stats.Generations++
	e.trackBest()
	e.stats.record(e.pop)
}

// Run initializes the population and steps through every generation,
// calling onGeneration (when set) before each step with the generation
// index and the best score so far
func (e *Engine) Run(onGeneration func(gen int, best float64)) {
	e.Initialize()
	for gen := 0; gen < e.Generations; gen++ {
		if onGeneration != nil {
			onGeneration(gen, e.bestScore)
		}
		e.Step()
	}
	e.stats.Final = e.bestScore
}

// Best returns the best genome found so far and its score
func (e *Engine) Best() (Genome, float64) {
	return e.best, e.bestScore
}

// Statistics returns the run statistics accumulated so far
func (e *Engine) Statistics() *Statistics {
	return &e.stats
}

func (e *Engine) trackBest() {
	for p := range e.pop {
		if e.best == nil || e.pop[p].score > e.bestScore {
			e.best = e.pop[p].genome.clone()
			e.bestScore = e.pop[p].score
		}
	}
}

// initializer pairs every sequence with a uniformly drawn partner other
// than itself, probing the oracle along the way so the cache already
// holds the verdict when fitness asks for it
func (e *Engine) initializer(g Genome) {
	for i := range g {
		j := e.randPartner(i)
		e.oracle.Significant(i, j)
		g[i] = j
	}
}

// mutator rewrites floor(rate * len) genes, each with a fresh uniform
// position and partner. When that count rounds to zero a single mutation
// happens with probability rate * len. Returns the mutation count
func (e *Engine) mutator(g Genome, rate float64) int {
	total := int(math.Floor(rate * float64(len(g))))

	if total == 0 {
		if e.rng.Float64() < rate*float64(len(g)) {
			e.mutate(g)
			return 1
		}
		return 0
	}

	for c := 0; c < total; c++ {
		e.mutate(g)
	}
	return total
}

func (e *Engine) mutate(g Genome) {
	i := e.rng.Intn(len(g))
	j := e.randPartner(i)
	e.oracle.Significant(i, j)
	g[i] = j
}

// objective scores a genome by its cluster sizes: the graph over cached
// true edges is traversed and every component of size k adds (k-1)^2,
// so one large cluster beats two half-sized ones
func (e *Engine) objective(g Genome) float64 {
	edges := adjacency(g, e.oracle.Cached)

	total := 0.0
	visited := make([]bool, len(g))
	for i := range visited {
		if !visited[i] {
			k := float64(traverse(edges, visited, i, nil) - 1)
			total += k * k
		}
	}
	return total
}

// selectParent draws an individual with probability proportional to its
// score. An all-zero population falls back to a uniform draw
func (e *Engine) selectParent() Genome {
	total := 0.0
	for p := range e.pop {
		total += e.pop[p].score
	}
	if total <= 0 {
		return e.pop[e.rng.Intn(len(e.pop))].genome
	}

	r := e.rng.Float64() * total
	for p := range e.pop {
		r -= e.pop[p].score
		if r <= 0 {
			return e.pop[p].genome
		}
	}
	return e.pop[len(e.pop)-1].genome
}

// crossover swaps the tails of the two genomes at a uniform cut point.
// Position i of a child always comes from position i of a parent, so the
// no-self-pairing invariant survives recombination untouched
func (e *Engine) crossover(c1, c2 Genome) {
	cut := e.rng.Intn(len(c1))
	for i := cut; i < len(c1); i++ {
		c1[i], c2[i] = c2[i], c1[i]
	}
}

// randPartner draws a partner for i uniformly from every other sequence
func (e *Engine) randPartner(i int) int {
	j := e.rng.Intn(e.n)
	for j == i {
		j = e.rng.Intn(e.n)
	}
	return j
}
