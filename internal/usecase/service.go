package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
	"github.com/EmpyreanHYR/sudoku/internal/history"
	"github.com/EmpyreanHYR/sudoku/internal/ports"
	"github.com/EmpyreanHYR/sudoku/internal/solver"
	"github.com/EmpyreanHYR/sudoku/internal/telemetry"
	"github.com/EmpyreanHYR/sudoku/internal/validator"
)

var errNotConfigured = errors.New("usecase dependency not configured")

// Service wires the engine components behind one facade. It owns history
// emission, metrics, and the duplicate-input shortcut.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	History   ports.HistoryStore

	mu         sync.Mutex
	lastInput  *domain.Board
	lastResult *domain.Board
	lastStats  ports.Stats
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, hs ports.HistoryStore) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, History: hs}
}

// Solve runs the solver on the user's grid. A successful solve emits one
// history record. If the input equals the previous solve's input, the cached
// result is returned without re-solving or appending.
func (u *Service) Solve(ctx context.Context, b *domain.Board, a domain.Alphabet) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}

	u.mu.Lock()
	if u.lastInput != nil && u.lastInput.Equal(b) {
		out, st := u.lastResult.Clone(), u.lastStats
		u.mu.Unlock()
		return out, st, nil
	}
	u.mu.Unlock()

	out, st, err := u.Solver.Solve(ctx, b)
	telemetry.SolveDuration.Observe(st.Duration.Seconds())
	if err != nil {
		if errors.Is(err, solver.ErrUnsolvable) {
			telemetry.SolvesTotal.WithLabelValues("unsolvable").Inc()
		} else {
			telemetry.SolvesTotal.WithLabelValues("error").Inc()
		}
		return nil, st, err
	}
	telemetry.SolvesTotal.WithLabelValues("ok").Inc()

	// the cache keeps its own copies so caller mutation cannot reach it
	u.mu.Lock()
	u.lastInput = b.Clone()
	u.lastResult = out.Clone()
	u.lastStats = st
	u.mu.Unlock()

	if u.History != nil {
		if err := u.History.Append(history.NewSolveRecord(b, out, a)); err != nil {
			slog.Warn("history append failed", "err", err)
		}
	}
	return out, st, nil
}

// Generate creates a puzzle and its retained solution.
func (u *Service) Generate(ctx context.Context, seed int64, k int, a domain.Alphabet, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	p, st, err := u.Generator.Generate(ctx, seed, k, a, d)
	if err == nil {
		telemetry.GenerationsTotal.WithLabelValues(d.String()).Inc()
	}
	return p, st, err
}

// Validate scans a board for row/col/block conflicts.
func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

// Hint returns the next naked single, if any.
func (u *Service) Hint(ctx context.Context, b *domain.Board, a domain.Alphabet) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b, a)
}

// Check verifies a challenge answer by exact cell-by-cell comparison against
// the puzzle's stored solution. A structurally valid but different completion
// counts as incorrect. A correct answer emits one challenge record.
func (u *Service) Check(ctx context.Context, candidate *domain.Board, p *domain.Puzzle, elapsed time.Duration) (bool, error) {
	match, err := validator.Match(candidate, p.Solution)
	if err != nil {
		return false, err
	}
	if !match {
		telemetry.VerificationsTotal.WithLabelValues("incorrect").Inc()
		return false, nil
	}
	telemetry.VerificationsTotal.WithLabelValues("correct").Inc()

	if u.History != nil {
		// without a clue grid there is nothing to strip: the whole
		// candidate is the user's input
		input := candidate
		if p.Board != nil {
			input = userCells(candidate, p)
		}
		rec := history.NewChallengeRecord(p.Board, input, p.Solution, p.Alphabet, p.Difficulty, elapsed)
		if err := u.History.Append(rec); err != nil {
			slog.Warn("history append failed", "err", err)
		}
	}
	return true, nil
}

// userCells strips the clues out of a candidate so the record shows only what
// the user filled in.
func userCells(candidate *domain.Board, p *domain.Puzzle) *domain.Board {
	out := candidate.Clone()
	n := out.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if p.Board.Cells[r][c] != 0 {
				out.Cells[r][c] = 0
				out.Roles[r][c] = domain.RoleEmpty
			} else if out.Cells[r][c] != 0 {
				out.Roles[r][c] = domain.RoleUser
			}
		}
	}
	return out
}

// Records lists history, newest first.
func (u *Service) Records() ([]domain.Record, error) {
	if u.History == nil {
		return nil, errNotConfigured
	}
	return u.History.List()
}

// Record fetches one history entry by ID.
func (u *Service) Record(id string) (domain.Record, error) {
	if u.History == nil {
		return domain.Record{}, errNotConfigured
	}
	return u.History.Get(id)
}
