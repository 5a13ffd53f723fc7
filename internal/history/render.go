package history

import (
	"fmt"
	"strings"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
)

// RenderText lays a record out as box-drawing grids suitable for a terminal
// or a .txt export. Empty cells show as "·"; block boundaries get their own
// separator lines.
func RenderText(rec domain.Record) string {
	var w strings.Builder
	fmt.Fprintf(&w, "Time: %s\n", rec.Timestamp)
	if rec.Mode == domain.ModeChallenge {
		fmt.Fprintf(&w, "Mode: challenge - %s\n", rec.Difficulty)
		fmt.Fprintf(&w, "Elapsed: %s\n", rec.Elapsed)
	}
	w.WriteByte('\n')

	if rec.Mode == domain.ModeChallenge && rec.Puzzle != nil {
		w.WriteString("Puzzle:\n")
		renderGrid(&w, rec.Puzzle, rec.K)
		w.WriteString("User answer:\n")
		renderGrid(&w, rec.Input, rec.K)
	} else {
		w.WriteString("Input:\n")
		renderGrid(&w, rec.Input, rec.K)
	}
	w.WriteString("        ↓ result\n")
	w.WriteString("Result:\n")
	renderGrid(&w, rec.Result, rec.K)
	return w.String()
}

func renderGrid(w *strings.Builder, g domain.Grid, k int) {
	n := len(g)
	inner := strings.Repeat("─", 4*n+2)
	fmt.Fprintf(w, "┌%s┐\n", inner)
	for i, row := range g {
		w.WriteString("│ ")
		for j, cell := range row {
			if cell == "" {
				cell = "·"
			}
			fmt.Fprintf(w, " %s ", cell)
			if (j+1)%k == 0 && j < n-1 {
				w.WriteString("│ ")
			} else if j < n-1 {
				w.WriteString(" ")
			}
		}
		w.WriteString(" │\n")
		if (i+1)%k == 0 && i < n-1 {
			fmt.Fprintf(w, "├%s┤\n", inner)
		}
	}
	fmt.Fprintf(w, "└%s┘\n\n", inner)
}
