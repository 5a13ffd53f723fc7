package domain

import (
	"encoding/json"
	"fmt"
)

// Alphabet is the ordered sequence of n distinct symbols used to fill a grid.
// Candidate order during solving follows alphabet order, so the alphabet also
// fixes the canonical completion of an empty board.
type Alphabet []rune

const defaultSymbols = "123456789ABCDEFGHIJKLMNOP"

// DefaultAlphabet returns digits then uppercase letters, truncated to k²
// symbols.
func DefaultAlphabet(k int) (Alphabet, error) {
	if k < MinBlockSize || k > MaxBlockSize {
		return nil, ErrBadBlockSize
	}
	return Alphabet(defaultSymbols[:k*k]), nil
}

// ParseAlphabet validates that s holds exactly k² distinct symbols.
func ParseAlphabet(s string, k int) (Alphabet, error) {
	if k < MinBlockSize || k > MaxBlockSize {
		return nil, ErrBadBlockSize
	}
	a := Alphabet(s)
	n := k * k
	if len(a) != n {
		return nil, fmt.Errorf("%w: got %d symbols, want %d", ErrBadAlphabet, len(a), n)
	}
	seen := make(map[rune]bool, n)
	for _, r := range a {
		if seen[r] {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrBadAlphabet, r)
		}
		seen[r] = true
	}
	return a, nil
}

// Index maps a symbol to its 1-based cell value.
func (a Alphabet) Index(sym rune) (Cell, error) {
	for i, r := range a {
		if r == sym {
			return Cell(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, sym)
}

// Symbol maps a cell value back to its symbol; empty cells map to "".
func (a Alphabet) Symbol(v Cell) string {
	if v == 0 || int(v) > len(a) {
		return ""
	}
	return string(a[v-1])
}

func (a Alphabet) String() string { return string(a) }

// MarshalJSON encodes the alphabet as a plain string, matching the persisted
// history format.
func (a Alphabet) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

func (a *Alphabet) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = Alphabet(s)
	return nil
}
