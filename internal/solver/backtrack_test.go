package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
)

// A classic, solvable Sudoku (0 = empty).
var sample = [9][9]domain.Cell{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func sampleBoard(t *testing.T) *domain.Board {
	t.Helper()
	b, err := domain.NewBoard(3)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Cells[r][c] = sample[r][c]
			if sample[r][c] != 0 {
				b.Roles[r][c] = domain.RoleClue
			}
		}
	}
	return b
}

// assertSolved checks that every row, column, and block is a permutation of
// the n values.
func assertSolved(t *testing.T, b *domain.Board) {
	t.Helper()
	n := b.Size()
	k := b.K
	for r := 0; r < n; r++ {
		var row, col uint32
		for c := 0; c < n; c++ {
			row |= uint32(1) << b.Cells[r][c]
			col |= uint32(1) << b.Cells[c][r]
		}
		want := (uint32(1)<<(n+1) - 1) &^ 1
		if row != want {
			t.Fatalf("row %d is not a permutation", r)
		}
		if col != want {
			t.Fatalf("col %d is not a permutation", r)
		}
	}
	for br := 0; br < k; br++ {
		for bc := 0; bc < k; bc++ {
			var m uint32
			for dr := 0; dr < k; dr++ {
				for dc := 0; dc < k; dc++ {
					m |= uint32(1) << b.Cells[br*k+dr][bc*k+dc]
				}
			}
			if m != (uint32(1)<<(n+1)-1)&^1 {
				t.Fatalf("block (%d,%d) is not a permutation", br, bc)
			}
		}
	}
}

func TestSolveClassicSample(t *testing.T) {
	in := sampleBoard(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := NewBacktrackingSolver().Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	assertSolved(t, out)

	// clues survive untouched, filled cells carry the solved role
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sample[r][c] != 0 {
				if out.Cells[r][c] != sample[r][c] {
					t.Fatalf("clue overwritten at %d,%d", r, c)
				}
			} else if out.Roles[r][c] != domain.RoleSolved {
				t.Fatalf("missing solved role at %d,%d", r, c)
			}
		}
	}
}

func TestSolveEmptyBoards(t *testing.T) {
	ks := []int{2, 3, 4}
	if !testing.Short() {
		ks = append(ks, 5)
	}
	for _, k := range ks {
		b, err := domain.NewBoard(k)
		if err != nil {
			t.Fatal(err)
		}
		out, _, err := NewBacktrackingSolver().Solve(context.Background(), b)
		if err != nil {
			t.Fatalf("k=%d: %v", k, err)
		}
		assertSolved(t, out)
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	b1, _ := domain.NewBoard(3)
	b2, _ := domain.NewBoard(3)
	s := NewBacktrackingSolver()
	out1, _, err1 := s.Solve(context.Background(), b1)
	out2, _, err2 := s.Solve(context.Background(), b2)
	if err1 != nil || err2 != nil {
		t.Fatalf("errs: %v %v", err1, err2)
	}
	if !out1.Equal(out2) {
		t.Error("same input must give the same canonical completion")
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	in := sampleBoard(t)
	before := in.Clone()
	if _, _, err := NewBacktrackingSolver().Solve(context.Background(), in); err != nil {
		t.Fatal(err)
	}
	if !in.Equal(before) {
		t.Error("input board mutated by Solve")
	}
}

func TestSolveCompleteBoardIsIdempotent(t *testing.T) {
	b, _ := domain.NewBoard(3)
	full, _, err := NewBacktrackingSolver().Solve(context.Background(), b)
	if err != nil {
		t.Fatal(err)
	}
	again, _, err := NewBacktrackingSolver().Solve(context.Background(), full)
	if err != nil {
		t.Fatal(err)
	}
	if !again.Equal(full) {
		t.Error("solving a complete board must not alter any cell")
	}
}

func TestSolveUnsolvable(t *testing.T) {
	b, _ := domain.NewBoard(2)
	// 1 and 2 in the top-left block row, 3 and 4 in the cells below: the
	// remaining top-left block cells have no candidates left.
	b.Cells[0][0] = 1
	b.Cells[0][1] = 2
	b.Cells[1][2] = 3
	b.Cells[1][3] = 4
	before := b.Clone()

	_, _, err := NewBacktrackingSolver().Solve(context.Background(), b)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("want ErrUnsolvable, got %v", err)
	}
	if !b.Equal(before) {
		t.Error("failed solve must leave the input unchanged")
	}
}

func TestSolveKTwoScenario(t *testing.T) {
	a, err := domain.ParseAlphabet("ABCD", 2)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := domain.NewBoard(2)
	out, _, err := NewBacktrackingSolver().Solve(context.Background(), b)
	if err != nil {
		t.Fatal(err)
	}
	assertSolved(t, out)

	seen := map[string]bool{}
	for _, sym := range out.ToGrid(a)[0] {
		seen[sym] = true
	}
	for _, want := range []string{"A", "B", "C", "D"} {
		if !seen[want] {
			t.Fatalf("row 0 is missing %s", want)
		}
	}
}

func TestSolveCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b, _ := domain.NewBoard(3)
	_, _, err := NewBacktrackingSolver().Solve(ctx, b)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
