package history

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
	"github.com/EmpyreanHYR/sudoku/internal/solver"
)

func solveRecord(t *testing.T) domain.Record {
	t.Helper()
	a, err := domain.ParseAlphabet("ABCD", 2)
	require.NoError(t, err)
	in, _ := domain.NewBoard(2)
	in.Cells[0][0] = 1
	in.Roles[0][0] = domain.RoleUser
	out, _, err := solver.NewBacktrackingSolver().Solve(context.Background(), in)
	require.NoError(t, err)
	return NewSolveRecord(in, out, a)
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00", FormatElapsed(0))
	assert.Equal(t, "00:59", FormatElapsed(59*time.Second))
	assert.Equal(t, "03:25", FormatElapsed(3*time.Minute+25*time.Second))
	assert.Equal(t, "61:05", FormatElapsed(61*time.Minute+5*time.Second))
}

func TestFileStoreAppendAndList(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.json"))

	recs, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, recs)

	first := solveRecord(t)
	second := solveRecord(t)
	require.NoError(t, store.Append(first))
	require.NoError(t, store.Append(second))

	recs, err = store.List()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	// newest first
	assert.Equal(t, second.ID, recs[0].ID)
	assert.Equal(t, first.ID, recs[1].ID)

	got, err := store.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Input, got.Input)
	assert.Equal(t, first.Result, got.Result)
	assert.Equal(t, first.Alphabet, got.Alphabet)
	assert.Equal(t, 2, got.K)

	_, err = store.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRenderTextSolve(t *testing.T) {
	rec := solveRecord(t)
	text := RenderText(rec)

	assert.Contains(t, text, "Time: "+rec.Timestamp)
	assert.Contains(t, text, "Input:")
	assert.Contains(t, text, "Result:")
	assert.NotContains(t, text, "Mode: challenge")
	// the input grid shows the one clue and empty-cell dots
	assert.Contains(t, text, "A")
	assert.Contains(t, text, "·")
	// box borders with block separators
	assert.Contains(t, text, "┌")
	assert.Contains(t, text, "├")
	assert.Contains(t, text, "└")
	// one separator row per internal block boundary, per grid
	assert.Equal(t, 2, strings.Count(text, "├"))
}

func TestRenderTextChallenge(t *testing.T) {
	a, _ := domain.ParseAlphabet("ABCD", 2)
	full, _, err := solver.NewBacktrackingSolver().Solve(context.Background(), mustBoard(t))
	require.NoError(t, err)
	rec := NewChallengeRecord(mustBoard(t), mustBoard(t), full, a, domain.Easy, 95*time.Second)

	text := RenderText(rec)
	assert.Contains(t, text, "Mode: challenge - easy")
	assert.Contains(t, text, "Elapsed: 01:35")
	assert.Contains(t, text, "Puzzle:")
	assert.Contains(t, text, "User answer:")
}

func mustBoard(t *testing.T) *domain.Board {
	t.Helper()
	b, err := domain.NewBoard(2)
	require.NoError(t, err)
	return b
}

func TestRenderPNG(t *testing.T) {
	rec := solveRecord(t)
	data, err := RenderPNG(rec)
	require.NoError(t, err)
	// PNG signature
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}
