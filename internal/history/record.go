// Package history produces, persists, and renders the immutable records of
// solve and challenge outcomes. Records are append-only: once written they
// are never edited or removed.
package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

// FormatElapsed renders a duration as minutes:seconds, e.g. "03:25".
func FormatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// NewSolveRecord snapshots a successful direct solve.
func NewSolveRecord(input, result *domain.Board, a domain.Alphabet) domain.Record {
	return domain.Record{
		ID:        uuid.NewString(),
		Timestamp: time.Now().Format(timestampLayout),
		Mode:      domain.ModeSolve,
		Input:     input.ToGrid(a),
		Result:    result.ToGrid(a),
		Alphabet:  a,
		K:         input.K,
	}
}

// NewChallengeRecord snapshots a verified challenge completion. The puzzle
// grid carries the clues, input the user's answers, result the full solution.
// A nil puzzle board leaves the clue grid out of the record.
func NewChallengeRecord(puzzle, input, result *domain.Board, a domain.Alphabet, d domain.Difficulty, elapsed time.Duration) domain.Record {
	rec := domain.Record{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().Format(timestampLayout),
		Mode:       domain.ModeChallenge,
		Input:      input.ToGrid(a),
		Result:     result.ToGrid(a),
		Alphabet:   a,
		K:          input.K,
		Difficulty: d.String(),
		Elapsed:    FormatElapsed(elapsed),
	}
	if puzzle != nil {
		rec.Puzzle = puzzle.ToGrid(a)
	}
	return rec
}
