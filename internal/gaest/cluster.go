package gaest

import (
	"fmt"
	"io"
)

// adjacency builds the undirected cluster graph of a genome: an edge
// between i and its partner exists when the edge predicate holds
func adjacency(g Genome, edge func(i, j int) bool) [][]int {
	edges := make([][]int, len(g))
	for i, j := range g {
		if edge(i, j) {
			edges[i] = append(edges[i], j)
			edges[j] = append(edges[j], i)
		}
	}
	return edges
}

// traverse walks the component containing i depth-first, marking every
// reached vertex and calling visit in pre-order. Returns the number of
// vertices reached; zero when i was already visited
func traverse(edges [][]int, visited []bool, i int, visit func(int)) int {
	if visited[i] {
		return 0
	}

	visited[i] = true
	if visit != nil {
		visit(i)
	}

	count := 1
	for _, j := range edges[i] {
		count += traverse(edges, visited, j, visit)
	}
	return count
}

// components splits the graph into its connected components: vertices
// with at least one edge become clusters (in DFS pre-order, in order of
// their lowest index), the rest are unclustered singletons
func components(edges [][]int) (clusters [][]int, unclustered []int) {
	visited := make([]bool, len(edges))

	for i := range edges {
		if !visited[i] && len(edges[i]) > 0 {
			var members []int
			traverse(edges, visited, i, func(v int) {
				members = append(members, v)
			})
			clusters = append(clusters, members)
		}
	}

	for i := range edges {
		if !visited[i] {
			unclustered = append(unclustered, i)
		}
	}

	return clusters, unclustered
}

// Clusters extracts the clustering encoded by a genome: an edge between
// i and genome[i] exists when the oracle's cache holds a true verdict
func Clusters(g Genome, o *Oracle) (clusters [][]int, unclustered []int) {
	return components(adjacency(g, o.Cached))
}

// ExhaustiveEdges probes every unordered sequence pair and returns the
// resulting adjacency lists. n*(n-1)/2 alignments: the brute-force
// counterpart the GA approximates
func ExhaustiveEdges(seqs []*Sequence, sc Scoring) [][]int {
	edges := make([][]int, len(seqs))
	for i := range seqs {
		for j := i + 1; j < len(seqs); j++ {
			if Probe(seqs[i], seqs[j], sc) {
				edges[i] = append(edges[i], j)
				edges[j] = append(edges[j], i)
			}
		}
	}
	return edges
}

// ClusterScore is the objective value of a clustering: every component
// of size k contributes (k-1)^2
func ClusterScore(clusters [][]int) float64 {
	total := 0.0
	for _, members := range clusters {
		k := float64(len(members) - 1)
		total += k * k
	}
	return total
}

// WriteClusters writes the clusters followed by the unclustered
// sequences. Members print as " i: " and either the sequence name or the
// sequence itself in the given mode
func WriteClusters(w io.Writer, clusters [][]int, unclustered []int, seqs []*Sequence, namesOnly bool, mode PrintMode, wrap int) {
	for k, members := range clusters {
		fmt.Fprintf(w, "Cluster %d\n", k)
		for _, i := range members {
			writeMember(w, i, seqs[i], namesOnly, mode, wrap)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Unclustered sequences:")
	for _, i := range unclustered {
		writeMember(w, i, seqs[i], namesOnly, mode, wrap)
	}
	fmt.Fprintln(w)
}

func writeMember(w io.Writer, i int, seq *Sequence, namesOnly bool, mode PrintMode, wrap int) {
	if namesOnly {
		fmt.Fprintf(w, " %d: %s\n", i, seq.Name)
		return
	}
	fmt.Fprintf(w, " %d: %s\n", i, seq.Format(mode, wrap))
}
