package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
	"github.com/EmpyreanHYR/sudoku/internal/generator"
	"github.com/EmpyreanHYR/sudoku/internal/hint"
	"github.com/EmpyreanHYR/sudoku/internal/history"
	"github.com/EmpyreanHYR/sudoku/internal/solver"
	"github.com/EmpyreanHYR/sudoku/internal/usecase"
	"github.com/EmpyreanHYR/sudoku/internal/validator"
)

var (
	solveK        int
	solveAlphabet string
	solveFile     string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a grid read from a file or stdin",
	Long: `Reads one row per line, one symbol per cell, '.' for empty.
A successful solve is appended to the history log.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		k := blockSize(cmd, solveK)
		a, err := resolveAlphabet(k, solveAlphabet)
		if err != nil {
			return err
		}

		var text []byte
		if solveFile == "" || solveFile == "-" {
			text, err = io.ReadAll(os.Stdin)
		} else {
			text, err = os.ReadFile(solveFile)
		}
		if err != nil {
			return err
		}
		board, err := parseGridText(string(text), k, a)
		if err != nil {
			return err
		}

		uc := newService(cfg.HistoryFile)
		out, st, err := uc.Solve(cmd.Context(), board, a)
		if err != nil {
			return err
		}
		fmt.Print(formatBoard(out, a))
		slog.Info("solved", "nodes", st.Nodes, "dur", st.Duration)
		return nil
	},
}

func init() {
	solveCmd.Flags().IntVar(&solveK, "k", 3, "block size (2-5, default from config)")
	solveCmd.Flags().StringVar(&solveAlphabet, "alphabet", "", "symbols to fill with (default digits then letters)")
	solveCmd.Flags().StringVar(&solveFile, "file", "-", "grid file, '-' for stdin")
}

func resolveAlphabet(k int, raw string) (domain.Alphabet, error) {
	if raw == "" {
		return domain.DefaultAlphabet(k)
	}
	return domain.ParseAlphabet(raw, k)
}

func newService(historyFile string) *usecase.Service {
	s := solver.NewBacktrackingSolver()
	return usecase.NewService(
		s,
		generator.NewCarveGenerator(s),
		validator.New(),
		hint.NewSingles(),
		history.NewFileStore(historyFile),
	)
}
