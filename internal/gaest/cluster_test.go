package gaest

import (
	"reflect"
	"strings"
	"testing"
)

func Test_components(t *testing.T) {
	type want struct {
		clusters    [][]int
		unclustered []int
	}
	tests := []struct {
		name  string
		edges [][]int
		want  want
	}{
		{
			"one chain and two singletons",
			[][]int{
				1: {2}, 2: {1}, 4: nil,
			},
			want{
				clusters:    [][]int{{1, 2}},
				unclustered: []int{0, 3, 4},
			},
		},
		{
			"two components in index order",
			[][]int{
				0: {3}, 1: {2}, 2: {1}, 3: {0},
			},
			want{
				clusters:    [][]int{{0, 3}, {1, 2}},
				unclustered: nil,
			},
		},
		{
			"no edges at all",
			make([][]int, 3),
			want{
				clusters:    nil,
				unclustered: []int{0, 1, 2},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clusters, unclustered := components(tt.edges)

			if !reflect.DeepEqual(clusters, tt.want.clusters) {
				t.Errorf("clusters = %v, want %v", clusters, tt.want.clusters)
			}
			if !reflect.DeepEqual(unclustered, tt.want.unclustered) {
				t.Errorf("unclustered = %v, want %v", unclustered, tt.want.unclustered)
			}
		})
	}
}

// members come out in DFS pre-order: the entry vertex first, then each
// neighbor's subtree in turn
func Test_components_preorder(t *testing.T) {
	edges := [][]int{
		0: {1, 3},
		1: {0, 2},
		2: {1},
		3: {0},
	}

	clusters, _ := components(edges)

	want := [][]int{{0, 1, 2, 3}}
	if !reflect.DeepEqual(clusters, want) {
		t.Errorf("clusters = %v, want %v", clusters, want)
	}
}

func Test_ClusterScore(t *testing.T) {
	tests := []struct {
		name     string
		clusters [][]int
		want     float64
	}{
		{"no clusters", nil, 0},
		{"one pair", [][]int{{0, 1}}, 1},
		{"one triple", [][]int{{0, 1, 2}}, 4},
		{"triple beats pair plus pair", [][]int{{0, 1}, {2, 3}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClusterScore(tt.clusters); got != tt.want {
				t.Errorf("ClusterScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_WriteClusters(t *testing.T) {
	seqs := []*Sequence{
		NewSequence("first", "ACGT"),
		NewSequence("second", "ACGT"),
		NewSequence("third", "GGGG"),
	}
	clusters := [][]int{{0, 1}}
	unclustered := []int{2}

	var b strings.Builder
	WriteClusters(&b, clusters, unclustered, seqs, true, ModeNice, 60)

	want := "Cluster 0\n" +
		" 0: first\n" +
		" 1: second\n" +
		"\n" +
		"Unclustered sequences:\n" +
		" 2: third\n" +
		"\n"
	if got := b.String(); got != want {
		t.Errorf("WriteClusters() = %q, want %q", got, want)
	}
}
