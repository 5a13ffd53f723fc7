package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
)

var (
	genK        int
	genAlphabet string
	genDiff     string
	genSeed     int64
	genSolution bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle at a difficulty tier",
	RunE: func(cmd *cobra.Command, args []string) error {
		k := blockSize(cmd, genK)
		if genDiff == "" {
			genDiff = cfg.DefaultDifficulty
		}
		diff, err := domain.ParseDifficulty(genDiff)
		if err != nil {
			return err
		}
		a, err := resolveAlphabet(k, genAlphabet)
		if err != nil {
			return err
		}
		seed := genSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		uc := newService(cfg.HistoryFile)
		p, st, err := uc.Generate(cmd.Context(), seed, k, a, diff)
		if err != nil {
			return err
		}
		fmt.Print(formatBoard(p.Board, a))
		if genSolution {
			fmt.Println("solution:")
			fmt.Print(formatBoard(p.Solution, a))
		}
		slog.Info("generated", "id", p.ID, "difficulty", diff, "seed", seed,
			"removed", len(p.Removed), "dur", st.Duration)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&genK, "k", 3, "block size (2-5, default from config)")
	generateCmd.Flags().StringVar(&genAlphabet, "alphabet", "", "symbols to fill with")
	generateCmd.Flags().StringVar(&genDiff, "difficulty", "", "easy|medium|hard")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "carve seed, 0 = current time")
	generateCmd.Flags().BoolVar(&genSolution, "solution", false, "also print the solution")
}
