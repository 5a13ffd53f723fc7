// Package validator holds the constraint checks shared by the solver, the
// hinter, and the verification of challenge answers.
package validator

import (
	"context"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
)

// Allowed reports whether placing v at (row, col) keeps the board free of
// conflicts: v must not already occur in the row, the column, or the
// containing k×k block. It never mutates the board.
func Allowed(b *domain.Board, row, col int, v domain.Cell) bool {
	n := b.Size()
	for i := 0; i < n; i++ {
		if b.Cells[row][i] == v || b.Cells[i][col] == v {
			return false
		}
	}
	k := b.K
	br, bc := (row/k)*k, (col/k)*k
	for dr := 0; dr < k; dr++ {
		for dc := 0; dc < k; dc++ {
			if b.Cells[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// FastValidator scans a whole board for conflicts with per-unit bitmasks.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate returns the coordinates of cells that duplicate an earlier value
// in their row, column, or block. Values fit a uint32 mask since n ≤ 25.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	n := b.Size()
	k := b.K
	conf := make([]domain.CellCoord, 0, 8)

	for r := 0; r < n; r++ {
		var m uint32
		for c := 0; c < n; c++ {
			val := b.Cells[r][c]
			if val == 0 {
				continue
			}
			bit := uint32(1) << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	for c := 0; c < n; c++ {
		var m uint32
		for r := 0; r < n; r++ {
			val := b.Cells[r][c]
			if val == 0 {
				continue
			}
			bit := uint32(1) << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	for br := 0; br < k; br++ {
		for bc := 0; bc < k; bc++ {
			var m uint32
			for dr := 0; dr < k; dr++ {
				for dc := 0; dc < k; dc++ {
					r := br*k + dr
					c := bc*k + dc
					val := b.Cells[r][c]
					if val == 0 {
						continue
					}
					bit := uint32(1) << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

// Match reports exact cell-by-cell equality between a candidate grid and a
// solution grid. A structurally valid but different completion does not
// match; there is no partial credit.
func Match(candidate, solution *domain.Board) (bool, error) {
	if candidate == nil || solution == nil || candidate.K != solution.K {
		return false, domain.ErrDimension
	}
	return candidate.Equal(solution), nil
}
