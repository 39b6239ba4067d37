package gaest

import (
	"fmt"
	"os"
	"strings"
)

// Statistics accumulates per-run and per-generation GA scores
type Statistics struct {
	// Generations stepped through so far
	Generations int

	// Evaluations is the number of objective calls
	Evaluations int

	// Initial is the best score of the first population
	Initial float64

	// Final is the best score when the run finished
	Final float64

	// Best holds the best score of each generation, the initial
	// population included
	Best []float64

	// Mean holds the mean score of each generation
	Mean []float64
}

// record appends the generation's best and mean scores
func (s *Statistics) record(pop []individual) {
	best, sum := 0.0, 0.0
	for p := range pop {
		if pop[p].score > best {
			best = pop[p].score
		}
		sum += pop[p].score
	}

	s.Best = append(s.Best, best)
	s.Mean = append(s.Mean, sum/float64(len(pop)))
}

// String renders the statistics as a summary block followed by a
// per-generation score table
func (s *Statistics) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "generations:\t%d\n", s.Generations)
	fmt.Fprintf(&b, "evaluations:\t%d\n", s.Evaluations)
	fmt.Fprintf(&b, "initial best:\t%g\n", s.Initial)
	fmt.Fprintf(&b, "final best:\t%g\n", s.Final)
	b.WriteString("\ngeneration\tbest\tmean\n")
	for gen := range s.Best {
		fmt.Fprintf(&b, "%d\t%g\t%g\n", gen, s.Best[gen], s.Mean[gen])
	}

	return b.String()
}

// Write writes the statistics to a file on the local FS
func (s *Statistics) Write(path string) error {
	if err := os.WriteFile(path, []byte(s.String()), 0644); err != nil {
		return fmt.Errorf("failed to write GA statistics to %s: %v", path, err)
	}
	return nil
}
