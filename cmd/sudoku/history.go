package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EmpyreanHYR/sudoku/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the solve/challenge record log",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List records, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := history.NewFileStore(cfg.HistoryFile)
		recs, err := store.List()
		if err != nil {
			return err
		}
		for _, r := range recs {
			line := fmt.Sprintf("%s  %s  %s  k=%d", r.ID, r.Timestamp, r.Mode, r.K)
			if r.Mode == "challenge" {
				line += fmt.Sprintf("  %s  %s", r.Difficulty, r.Elapsed)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var (
	exportID     string
	exportFormat string
	exportOut    string
)

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one record as text or PNG",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := history.NewFileStore(cfg.HistoryFile)
		rec, err := store.Get(exportID)
		if err != nil {
			return err
		}
		switch exportFormat {
		case "png":
			data, err := history.RenderPNG(rec)
			if err != nil {
				return err
			}
			if exportOut == "" {
				exportOut = "sudoku_record_" + rec.ID + ".png"
			}
			return os.WriteFile(exportOut, data, 0o644)
		case "txt", "text":
			text := history.RenderText(rec)
			if exportOut == "" {
				fmt.Print(text)
				return nil
			}
			return os.WriteFile(exportOut, []byte(text), 0o644)
		}
		return fmt.Errorf("unknown format %q (want txt or png)", exportFormat)
	},
}

func init() {
	historyExportCmd.Flags().StringVar(&exportID, "id", "", "record ID")
	historyExportCmd.Flags().StringVar(&exportFormat, "format", "txt", "txt|png")
	historyExportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout for txt)")
	_ = historyExportCmd.MarkFlagRequired("id")
	historyCmd.AddCommand(historyListCmd, historyExportCmd)
}
