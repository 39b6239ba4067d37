package gaest

import (
	"math"
	"strings"
	"testing"
)

func Test_Align_identical(t *testing.T) {
	body := strings.Repeat("ACGTTGCAAT", 6) // 60 bases
	x := NewSequence("x", body)
	y := NewSequence("y", body)

	a := Align(x, y, DefaultScoring())

	if !a.Aligned() {
		t.Fatal("Aligned() = false after a full fill")
	}
	if a.Score != 60.0 {
		t.Errorf("Score = %v, want 60", a.Score)
	}
	if a.XEnd != 59 || a.YEnd != 59 {
		t.Errorf("end = (%d, %d), want (59, 59)", a.XEnd, a.YEnd)
	}
	if !a.Significant() {
		t.Error("Significant() = false, want true")
	}

	a.Tracepath()

	if a.XBegin != 0 || a.YBegin != 0 {
		t.Errorf("begin = (%d, %d), want (0, 0)", a.XBegin, a.YBegin)
	}
	if a.PathLength != 60 {
		t.Errorf("PathLength = %d, want 60", a.PathLength)
	}
	if want := strings.Repeat("|", 60); a.Align != want {
		t.Errorf("Align = %q, want 60 bars", a.Align)
	}
	if a.Top != body || a.Bottom != body {
		t.Errorf("Top/Bottom = %q/%q, want the sequence itself", a.Top, a.Bottom)
	}
}

func Test_Align_unrelated(t *testing.T) {
	x := NewSequence("x", strings.Repeat("AC", 30))
	y := NewSequence("y", strings.Repeat("GT", 30))

	a := Align(x, y, DefaultScoring())

	if a.Score != 0 {
		t.Errorf("Score = %v, want 0", a.Score)
	}
	if a.Significant() {
		t.Error("Significant() = true, want false")
	}
	if Probe(x, y, DefaultScoring()) {
		t.Error("Probe() = true, want false")
	}
}

// a two-base insertion costs one gap open plus one gap extension
func Test_Align_gap(t *testing.T) {
	left, right := "ACGTAGCTAG", "TGCATGACTG"
	x := NewSequence("x", left+right)
	y := NewSequence("y", left+"CA"+right)

	a := Align(x, y, DefaultScoring())
	a.Tracepath()

	// 20 matches bridged by a two-letter gap: 20 - 6.0 - 0.2
	if math.Abs(a.Score-13.8) > 1e-9 {
		t.Errorf("Score = %v, want 13.8", a.Score)
	}
	if a.PathLength != 22 {
		t.Errorf("PathLength = %d, want 22", a.PathLength)
	}
	if !strings.Contains(a.Top, "--") {
		t.Errorf("Top = %q, want a two-letter gap", a.Top)
	}
	if strings.Contains(a.Bottom, "-") {
		t.Errorf("Bottom = %q, want no gap", a.Bottom)
	}
}

// endpoints stay in range, display strings share a length, and gaps
// never face gaps, whatever the input shape
func Test_Align_invariants(t *testing.T) {
	tests := []struct {
		name string
		x    string
		y    string
	}{
		{"identical", "ACGTTGCAATGCACGT", "ACGTTGCAATGCACGT"},
		{"substring", "TTGCAA", "ACGTTGCAATGC"},
		{"insertion", "ACGTTGCAACTTGACGGTAC", "ACGTTGCAACGGTTGACGGTAC"},
		{"ambiguous letters", "ACGTRYKMSWBDHVN", "ACGTACGTACGTACG"},
		{"short against long", "ACG", "TTTTTTACGTTTTTT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := NewSequence("x", tt.x)
			y := NewSequence("y", tt.y)

			a := Align(x, y, DefaultScoring())
			a.Tracepath()

			if a.XBegin < 0 || a.XBegin > a.XEnd || a.XEnd >= x.Len() {
				t.Errorf("x coords out of range: begin %d end %d len %d", a.XBegin, a.XEnd, x.Len())
			}
			if a.YBegin < 0 || a.YBegin > a.YEnd || a.YEnd >= y.Len() {
				t.Errorf("y coords out of range: begin %d end %d len %d", a.YBegin, a.YEnd, y.Len())
			}
			if a.PathLength < a.XEnd-a.XBegin+1 || a.PathLength < a.YEnd-a.YBegin+1 {
				t.Errorf("PathLength %d shorter than the aligned spans", a.PathLength)
			}
			if len(a.Top) != a.PathLength || len(a.Bottom) != a.PathLength || len(a.Align) != a.PathLength {
				t.Errorf("display strings %d/%d/%d, want length %d", len(a.Top), len(a.Bottom), len(a.Align), a.PathLength)
			}

			for k := 0; k < a.PathLength; k++ {
				if a.Top[k] == '-' && a.Bottom[k] == '-' {
					t.Errorf("column %d is a gap in both sequences", k)
				}
				if c := a.Align[k]; c != '|' && c != ':' && c != ' ' {
					t.Errorf("column %d has alignment char %q", k, c)
				}
				if a.Align[k] == '|' && a.Top[k] != a.Bottom[k] {
					t.Errorf("column %d marked identical for %q/%q", k, a.Top[k], a.Bottom[k])
				}
			}
		})
	}
}

// the significance cutoff allows a 5% mismatch over the minimum length:
// 40 * (1.0 + 0.05*-2.0) = 36
func Test_Significant_threshold(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"36 identical bases make the cutoff", strings.Repeat("ACGT", 9), true},
		{"35 fall short", strings.Repeat("ACGT", 9)[:35], false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := NewSequence("x", tt.body)
			y := NewSequence("y", tt.body)

			if got := Align(x, y, DefaultScoring()).Significant(); got != tt.want {
				t.Errorf("Significant() = %v, want %v", got, tt.want)
			}
			if got := Probe(x, y, DefaultScoring()); got != tt.want {
				t.Errorf("Probe() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Alignment_Format(t *testing.T) {
	body := strings.Repeat("ACGTTGCAAT", 6)
	a := Align(NewSequence("first", body), NewSequence("second", body), DefaultScoring())
	a.Tracepath()

	out := a.Format(60)

	if strings.Contains(out, "WARNING") {
		t.Error("significant alignment formatted with a warning")
	}
	if !strings.Contains(out, "Top sequence: first\n") {
		t.Errorf("missing top sequence name in %q", out)
	}
	if !strings.Contains(out, "Score: 60\n") {
		t.Errorf("missing score in %q", out)
	}
	if !strings.Contains(out, "     1  "+body+"\n") {
		t.Errorf("missing aligned region in %q", out)
	}

	// a short unrelated pair carries the warning
	weak := Align(
		NewSequence("x", strings.Repeat("AC", 30)),
		NewSequence("y", strings.Repeat("GT", 30)),
		DefaultScoring(),
	)
	if out := weak.Format(0); !strings.HasPrefix(out, "WARNING: The alignment is not considered significant.\n") {
		t.Errorf("missing warning in %q", out)
	}
}
