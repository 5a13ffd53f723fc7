package ports

import (
	"context"
	"time"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver fills the empty cells of a board. The input board is never mutated;
// on success the returned board is fully and validly filled.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Generator carves puzzles from a canonical solution at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, k int, a domain.Alphabet, d domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/block).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step, if one is found.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, a domain.Alphabet) (domain.Hint, bool, error)
}

// HistoryStore is the append-only record log owned by the surrounding
// application.
type HistoryStore interface {
	Append(rec domain.Record) error
	List() ([]domain.Record, error)
	Get(id string) (domain.Record, error)
}
