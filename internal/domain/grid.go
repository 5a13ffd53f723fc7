package domain

import "fmt"

// Grid is the boundary representation of a board: symbols as strings, ""
// for empty. JSON payloads and history records use this form.
type Grid [][]string

// ToGrid renders the board's values through the alphabet.
func (b *Board) ToGrid(a Alphabet) Grid {
	n := b.Size()
	g := make(Grid, n)
	for r := 0; r < n; r++ {
		g[r] = make([]string, n)
		for c := 0; c < n; c++ {
			g[r][c] = a.Symbol(b.Cells[r][c])
		}
	}
	return g
}

// BoardFromGrid converts a symbol grid into a board, assigning the given role
// to every filled cell. Unknown symbols and wrong dimensions fail fast.
func BoardFromGrid(g Grid, k int, a Alphabet, role Role) (*Board, error) {
	b, err := NewBoard(k)
	if err != nil {
		return nil, err
	}
	n := b.Size()
	if len(g) != n {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrDimension, len(g), n)
	}
	for r := 0; r < n; r++ {
		if len(g[r]) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrDimension, r, len(g[r]), n)
		}
		for c := 0; c < n; c++ {
			s := g[r][c]
			if s == "" {
				continue
			}
			runes := []rune(s)
			if len(runes) != 1 {
				return nil, fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, s)
			}
			v, err := a.Index(runes[0])
			if err != nil {
				return nil, err
			}
			b.Cells[r][c] = v
			b.Roles[r][c] = role
		}
	}
	return b, nil
}
