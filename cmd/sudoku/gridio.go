package main

import (
	"fmt"
	"strings"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
)

// parseGridText reads a board from plain text: one row per line, one symbol
// per cell, '.' (or '·') for empty, whitespace ignored. Blank lines are
// skipped so block-separated layouts paste cleanly.
func parseGridText(text string, k int, a domain.Alphabet) (*domain.Board, error) {
	g := domain.Grid{}
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(strings.ReplaceAll(line, "|", " "))
		cells := []string{}
		for _, f := range fields {
			for _, r := range f {
				switch r {
				case '.', '·':
					cells = append(cells, "")
				default:
					cells = append(cells, string(r))
				}
			}
		}
		if len(cells) > 0 {
			g = append(g, cells)
		}
	}
	return domain.BoardFromGrid(g, k, a, domain.RoleUser)
}

// formatBoard renders a board with spaces between cells and gaps on block
// boundaries, '.' for empty.
func formatBoard(b *domain.Board, a domain.Alphabet) string {
	var w strings.Builder
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			sym := a.Symbol(b.Cells[r][c])
			if sym == "" {
				sym = "."
			}
			fmt.Fprint(&w, sym)
			if c < n-1 {
				w.WriteByte(' ')
				if (c+1)%b.K == 0 {
					w.WriteByte(' ')
				}
			}
		}
		w.WriteByte('\n')
		if (r+1)%b.K == 0 && r < n-1 {
			w.WriteByte('\n')
		}
	}
	return w.String()
}
