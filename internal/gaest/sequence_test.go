package gaest

import (
	"testing"
)

func Test_NewSequence(t *testing.T) {
	type args struct {
		name string
		raw  string
	}
	tests := []struct {
		name     string
		args     args
		wantLen  int
		wantBody string
	}{
		{
			"plain bases",
			args{"est1", "ACGT"},
			4,
			"ACGT",
		},
		{
			"lowercase canonicalized",
			args{"est2", "acgtacgt"},
			8,
			"ACGTACGT",
		},
		{
			"invalid characters dropped",
			args{"est3", "AC GT\n12!xACGT"},
			8,
			"ACGTACGT",
		},
		{
			"ambiguity codes kept",
			args{"est4", "ARYN"},
			4,
			"ARYN",
		},
		{
			"empty",
			args{"est5", ""},
			0,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSequence(tt.args.name, tt.args.raw)

			if s.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.wantLen)
			}

			body := ""
			for i := 0; i < s.Len(); i++ {
				body += string(s.Letter(i))
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

// every stored nucleotide maps back to a valid letter: X is never stored
func Test_NewSequence_noX(t *testing.T) {
	s := NewSequence("junk", "a!c@g#t$r%y^k&m*swbdhvn(x)Z")
	for i, n := range s.Data {
		if n == NucX {
			t.Errorf("Data[%d] = NucX, want a valid nucleotide", i)
		}
		if ParseNucleotide(n.Letter()) != n {
			t.Errorf("Data[%d] doesn't round-trip through its letter %q", i, n.Letter())
		}
	}
	// the fifteen IUPAC letters survive; 'x' and 'Z' don't
	if s.Len() != 15 {
		t.Errorf("Len() = %d, want 15", s.Len())
	}
}
