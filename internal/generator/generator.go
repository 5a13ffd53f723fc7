// Package generator carves puzzles out of a solved grid. The solution comes
// from the deterministic solver, so a given (k, alphabet) always starts from
// the same canonical completion; only the carve step is randomized, through
// a seeded source so generation is reproducible in tests.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
	"github.com/EmpyreanHYR/sudoku/internal/ports"
)

// CarveGenerator builds puzzles with a provided Solver.
type CarveGenerator struct {
	Solver ports.Solver
}

func NewCarveGenerator(s ports.Solver) *CarveGenerator {
	return &CarveGenerator{Solver: s}
}

// Generate solves an empty k²×k² board, draws a removal fraction uniformly
// from the difficulty tier's interval, and clears floor(n²·fraction)
// distinct cells chosen without replacement. The solution is retained
// unmodified as ground truth. No check is made that the clue subset has a
// unique completion; high-removal puzzles may admit several.
func (g *CarveGenerator) Generate(ctx context.Context, seed int64, k int, a domain.Alphabet, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if _, err := domain.ParseAlphabet(a.String(), k); err != nil {
		return nil, ports.Stats{}, err
	}
	empty, err := domain.NewBoard(k)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	solution, st, err := g.Solver.Solve(ctx, empty)
	if err != nil {
		return nil, st, fmt.Errorf("filling empty board: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	low, high := d.Interval()
	fraction := low + rng.Float64()*(high-low)

	n := k * k
	total := n * n
	remove := int(float64(total) * fraction)

	positions := make([]int, total)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(total, func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	board := solution.Clone()
	removed := make([]domain.CellCoord, 0, remove)
	for _, pos := range positions[:remove] {
		r, c := pos/n, pos%n
		board.Cells[r][c] = 0
		board.Roles[r][c] = domain.RoleEmpty
		removed = append(removed, domain.CellCoord{Row: r, Col: c})
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if board.Cells[r][c] != 0 {
				board.Roles[r][c] = domain.RoleClue
			}
		}
	}

	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		K:          k,
		Alphabet:   a,
		Difficulty: d,
		Board:      board,
		Removed:    removed,
		Solution:   solution,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}, nil
}
