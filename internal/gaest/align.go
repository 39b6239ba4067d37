package gaest

import (
	"fmt"
	"strings"
)

// pointer values in the traceback matrix
const (
	ptrNull = iota
	ptrLeft
	ptrUp
	ptrDiag
)

// Scoring holds the rewards and penalties of the alignment
// (positive value = reward, negative value = penalty)
type Scoring struct {
	// Match is the reward for a full-strength match
	Match float64

	// Mismatch is the penalty for aligning two incompatible letters
	Mismatch float64

	// GapOpen is the penalty for starting a gap
	GapOpen float64

	// GapExtend is the penalty for growing an existing gap
	GapExtend float64

	// Significance scales the significance threshold: an alignment is
	// significant when its score reaches
	// Significance * (Match + 0.05*Mismatch)
	Significance int
}

// DefaultScoring returns the standard rewards and penalties
func DefaultScoring() Scoring {
	return Scoring{
		Match:        1.0,
		Mismatch:     -2.0,
		GapOpen:      -6.0,
		GapExtend:    -0.2,
		Significance: 40,
	}
}

// threshold is the minimum score of a significant alignment. A 5% mismatch
// rate is allowed over the minimum significant length
func (sc Scoring) threshold() float64 {
	return float64(sc.Significance) * (sc.Match + 0.05*sc.Mismatch)
}

// Alignment is a local alignment of two sequences. Align fills the score
// and pointer matrices and the end coordinates; Tracepath additionally
// fills the begin coordinates, the path length and the display strings
type Alignment struct {
	x, y    *Sequence
	scoring Scoring

	scr [][]float64
	ptr [][]int

	// Score of the best local alignment found
	Score float64

	// XBegin and YBegin are the 0-based coordinates of the start of the
	// aligned region (set by Tracepath)
	XBegin, YBegin int

	// XEnd and YEnd are the 0-based coordinates of the end of the
	// aligned region
	XEnd, YEnd int

	// PathLength is the number of columns in the aligned region,
	// counting gaps (set by Tracepath)
	PathLength int

	// Top, Bottom and Align are the gapped display strings of the
	// aligned region (set by Tracepath)
	Top, Bottom, Align string

	aligned bool
}

func newAlignment(x, y *Sequence, sc Scoring) *Alignment {
	xlen, ylen := x.Len(), y.Len()

	scr := make([][]float64, xlen)
	ptr := make([][]int, xlen)
	for i := 0; i < xlen; i++ {
		scr[i] = make([]float64, ylen)
		ptr[i] = make([]int, ylen)
	}

	return &Alignment{
		x:       x,
		y:       y,
		scoring: sc,
		scr:     scr,
		ptr:     ptr,
	}
}

// Align aligns two sequences with the Smith-Waterman dynamic programming
// algorithm and returns the filled alignment. Traceback is a separate,
// optional step: call Tracepath before reading the display strings
func Align(x, y *Sequence, sc Scoring) *Alignment {
	a := newAlignment(x, y, sc)
	a.fill(false)
	return a
}

// Probe aligns two sequences only far enough to decide significance.
// The fill stops as soon as the running best score crosses the
// significance threshold, so most related pairs cost a fraction of a
// full alignment
func Probe(x, y *Sequence, sc Scoring) bool {
	a := newAlignment(x, y, sc)
	return a.fill(true)
}

// fill computes the local alignment score of every cell in the matrix,
// column by column, keeping the best cell seen. The gap penalty is
// GapExtend when the neighboring cell's pointer already runs in the gap's
// direction and GapOpen otherwise: affine gaps folded into a single matrix
func (a *Alignment) fill(probe bool) bool {
	x, y := a.x, a.y
	xlen, ylen := x.Len(), y.Len()
	sc := a.scoring

	if xlen == 0 || ylen == 0 {
		a.aligned = true
		return false
	}

	// first row and first column start fresh: a match or nothing
	for i := 0; i < xlen; i++ {
		if m := Compare(x.At(i), y.At(0)); m > 0 {
			a.scr[i][0] = m * sc.Match
		}
		a.ptr[i][0] = ptrNull
	}
	for j := 1; j < ylen; j++ {
		if m := Compare(x.At(0), y.At(j)); m > 0 {
			a.scr[0][j] = m * sc.Match
		}
		a.ptr[0][j] = ptrNull
	}

	threshold := sc.threshold()
	var all [4]float64

	for j := 1; j < ylen; j++ {
		for i := 1; i < xlen; i++ {
			// a local alignment can always restart at zero
			all[ptrNull] = 0

			if a.ptr[i-1][j] == ptrLeft {
				all[ptrLeft] = a.scr[i-1][j] + sc.GapExtend
			} else {
				all[ptrLeft] = a.scr[i-1][j] + sc.GapOpen
			}

			if a.ptr[i][j-1] == ptrUp {
				all[ptrUp] = a.scr[i][j-1] + sc.GapExtend
			} else {
				all[ptrUp] = a.scr[i][j-1] + sc.GapOpen
			}

			if m := Compare(x.At(i), y.At(j)); m > 0 {
				all[ptrDiag] = a.scr[i-1][j-1] + m*sc.Match
			} else {
				all[ptrDiag] = a.scr[i-1][j-1] + sc.Mismatch
			}

			// on ties the last candidate wins: DIAG over UP over LEFT
			best := ptrNull
			for p := ptrLeft; p <= ptrDiag; p++ {
				if all[p] >= all[best] {
					best = p
				}
			}
			a.ptr[i][j] = best
			a.scr[i][j] = all[best]

			if a.scr[i][j] > a.Score {
				a.Score = a.scr[i][j]
				a.XEnd = i
				a.YEnd = j

				// in probe mode the verdict is all that matters:
				// stop as soon as it's decided
				if probe && a.Score >= threshold {
					return true
				}
			}
		}
	}

	a.aligned = true
	return a.Score >= threshold
}

// Aligned reports whether the sequences have been fully aligned
func (a *Alignment) Aligned() bool {
	return a.aligned
}

// Significant reports whether the aligned sequences are similar enough to
// be considered related
func (a *Alignment) Significant() bool {
	return a.aligned && a.Score >= a.scoring.threshold()
}

// Tracepath traces the alignment from the highest-scoring cell back to
// the cell where the local alignment starts, filling the begin
// coordinates, the path length and the three display strings. Calling it
// again after the first trace is a no-op
func (a *Alignment) Tracepath() {
	if !a.aligned || a.PathLength > 0 {
		return
	}

	// first pass finds the start of the alignment and its length
	i, j := a.XEnd, a.YEnd
	for a.ptr[i][j] != ptrNull {
		switch a.ptr[i][j] {
		case ptrDiag:
			i--
			j--
		case ptrLeft:
			i--
		case ptrUp:
			j--
		default:
			stderr.Fatalf("unrecognized pointer value in traceback matrix. x = %d; y = %d", i, j)
		}
		a.PathLength++
	}

	// the cell the trace stops on is itself an aligned column
	a.PathLength++
	a.XBegin, a.YBegin = i, j

	top := make([]byte, a.PathLength)
	bottom := make([]byte, a.PathLength)
	align := make([]byte, a.PathLength)

	// second pass writes the display strings back to front
	i, j = a.XEnd, a.YEnd
	for k := a.PathLength - 1; k >= 0; k-- {
		switch a.ptr[i][j] {
		case ptrDiag:
			top[k] = a.x.Letter(i)
			bottom[k] = a.y.Letter(j)
			align[k] = matchChar(Compare(a.x.At(i), a.y.At(j)))
			i--
			j--
		case ptrLeft:
			top[k] = a.x.Letter(i)
			bottom[k] = '-'
			align[k] = ' '
			i--
		case ptrUp:
			top[k] = '-'
			bottom[k] = a.y.Letter(j)
			align[k] = ' '
			j--
		default:
			// the start of the alignment: emit it like a match column
			top[k] = a.x.Letter(i)
			bottom[k] = a.y.Letter(j)
			align[k] = matchChar(Compare(a.x.At(i), a.y.At(j)))
		}
	}

	a.Top = string(top)
	a.Bottom = string(bottom)
	a.Align = string(align)
}

// matchChar is the alignment-row character of a match strength:
// '|' for identity, ':' for a partial match, ' ' for none
func matchChar(m float64) byte {
	switch {
	case m == 1:
		return '|'
	case m == 0:
		return ' '
	}
	return ':'
}

// Format renders the alignment: a warning when it isn't significant, the
// two sequence names and the score, then the aligned regions wrap
// characters at a time, each line prefixed with its 1-based start index
func (a *Alignment) Format(wrap int) string {
	if !a.aligned {
		stderr.Println("tried to output an alignment that hasn't been run")
		return ""
	}

	var b strings.Builder

	if !a.Significant() {
		b.WriteString("WARNING: The alignment is not considered significant.\n")
	}

	fmt.Fprintf(&b, "Top sequence: %s\n", a.x.Name)
	fmt.Fprintf(&b, "Bottom sequence: %s\n", a.y.Name)
	fmt.Fprintf(&b, "Score: %g\n", a.Score)

	if wrap < 1 {
		return b.String()
	}

	a.Tracepath()

	for i := 0; i < a.PathLength; i += wrap {
		end := i + wrap
		if end > a.PathLength {
			end = a.PathLength
		}
		fmt.Fprintf(&b, "%6d  %s\n", a.XBegin+i+1, a.Top[i:end])
		fmt.Fprintf(&b, "%6d  %s\n", i+1, a.Align[i:end])
		fmt.Fprintf(&b, "%6d  %s\n", a.YBegin+i+1, a.Bottom[i:end])
		b.WriteByte('\n')
	}

	return b.String()
}
