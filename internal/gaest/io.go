package gaest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// PrintMode selects how a sequence body is rendered
type PrintMode int

const (
	// ModeFasta wraps the body at the wrap width with no indices
	ModeFasta PrintMode = iota

	// ModeNice prefixes each line with its 1-based start index and spaces
	// every group of ten letters
	ModeNice

	// ModeRaw prints the whole body on a single line
	ModeRaw
)

// ParsePrintMode maps a mode flag to its PrintMode
func ParsePrintMode(mode string) (PrintMode, error) {
	switch strings.ToLower(mode) {
	case "fasta":
		return ModeFasta, nil
	case "nice":
		return ModeNice, nil
	case "raw":
		return ModeRaw, nil
	}
	return ModeNice, fmt.Errorf("failed to parse print mode %q: want fasta, nice or raw", mode)
}

// ReadSequences reads every FASTA record from the stream.
//
// A record's header starts at a '>'. The name runs to the end of the line,
// except that a '>' opening the next line continues the name (the '>' is
// read as a space). The body runs to the next header or end-of-stream;
// newlines are discarded and characters outside the IUPAC alphabet dropped
func ReadSequences(r io.Reader) (seqs []*Sequence, err error) {
	in := bufio.NewReader(r)

	for {
		// skip to the next header signal
		if _, err := in.ReadString('>'); err != nil {
			break
		}

		// read the name, folding continued header lines into it
		var name strings.Builder
		for {
			c, err := in.ReadByte()
			if err != nil {
				break
			}
			if c == '\n' {
				if next, err := in.Peek(1); err == nil && next[0] == '>' {
					in.ReadByte()
					name.WriteByte(' ')
					continue
				}
				break
			}
			name.WriteByte(c)
		}

		// then read the body until the next record begins
		var data []Nucleotide
		for {
			c, err := in.ReadByte()
			if err != nil {
				break
			}
			if c == '\n' {
				if next, err := in.Peek(1); err == nil && next[0] == '>' {
					break
				}
				continue
			}
			if n := ParseNucleotide(c); n != NucX {
				data = append(data, n)
			}
		}

		seqs = append(seqs, &Sequence{Name: name.String(), Data: data})
	}

	return seqs, nil
}

// ReadSequenceFile reads every FASTA record from a file on the local FS
func ReadSequenceFile(path string) ([]*Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %v", err)
	}
	defer f.Close()

	seqs, err := ReadSequences(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequences from %s: %v", path, err)
	}
	return seqs, nil
}

// Format renders the sequence in the requested print mode. The name line
// is always emitted; a wrap below 1 emits only the name line
func (s *Sequence) Format(mode PrintMode, wrap int) string {
	var b strings.Builder
	b.WriteByte('>')
	b.WriteString(s.Name)

	if wrap < 1 {
		b.WriteByte('\n')
		return b.String()
	}

	switch mode {
	case ModeNice:
		for i := range s.Data {
			if i%wrap == 0 {
				fmt.Fprintf(&b, "\n%6d ", i+1)
			} else if i%dnaGroup == 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(s.Data[i].Letter())
		}
		b.WriteByte('\n')
	case ModeFasta:
		for i := range s.Data {
			if i%wrap == 0 {
				b.WriteByte('\n')
			}
			b.WriteByte(s.Data[i].Letter())
		}
	case ModeRaw:
		b.WriteByte('\n')
		for i := range s.Data {
			b.WriteByte(s.Data[i].Letter())
		}
	}

	return b.String()
}
