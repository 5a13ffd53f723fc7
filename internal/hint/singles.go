package hint

import (
	"context"
	"fmt"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
	"github.com/EmpyreanHYR/sudoku/internal/validator"
)

// Singles implements a minimal Hinter that suggests naked singles: the first
// empty cell with exactly one allowed candidate.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, b *domain.Board, a domain.Alphabet) (domain.Hint, bool, error) {
	n := b.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.Cells[r][c] != 0 {
				continue
			}
			v, ok := soleCandidate(b, r, c)
			if ok {
				sym := a.Symbol(v)
				return domain.Hint{
					Message: fmt.Sprintf("Single: only %s fits here", sym),
					Cells:   []domain.CellCoord{{Row: r, Col: c}},
					Symbol:  sym,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(b *domain.Board, r, c int) (domain.Cell, bool) {
	n := b.Size()
	var last domain.Cell
	count := 0
	for v := domain.Cell(1); int(v) <= n; v++ {
		if validator.Allowed(b, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
