// Package solver implements the exhaustive backtracking search that fills a
// board. The search is depth-first over the first empty cell in row-major
// order, trying candidates in alphabet order. It prunes on direct conflicts
// only and applies no heuristics.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
	"github.com/EmpyreanHYR/sudoku/internal/ports"
	"github.com/EmpyreanHYR/sudoku/internal/validator"
)

// ErrUnsolvable signals that no completion exists for the input. This is an
// expected outcome, not a defect; callers should errors.Is against it.
var ErrUnsolvable = errors.New("no completion exists")

// BacktrackingSolver is a straightforward recursive solver.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func findEmpty(b *domain.Board) (int, int, bool) {
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.Cells[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Solve searches for a full valid assignment. It works on a copy, so the
// input board is unchanged whatever the outcome; on success every cell the
// search filled carries RoleSolved. Candidate order is fixed, so a given
// (k, alphabet) empty board always yields the same canonical completion.
// Recursion depth is bounded by n² (≤ 625 for k=5).
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Clone()
	n := grid.Size()
	nodes := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(grid)
		if !ok {
			return true
		}
		for v := domain.Cell(1); int(v) <= n; v++ {
			nodes++
			if validator.Allowed(grid, r, c, v) {
				grid.Cells[r][c] = v
				if dfs() {
					return true
				}
				grid.Cells[r][c] = 0
			}
		}
		return false
	}

	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.Cells[r][c] == 0 {
				grid.Roles[r][c] = domain.RoleSolved
			}
		}
	}
	return grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
