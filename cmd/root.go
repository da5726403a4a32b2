package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/topsis/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "topsis <InputDataFile> <Weights> <Impacts> <ResultFileName>",
	Short: "Rank alternatives with TOPSIS",
	Long: `Scores every row of a decision table with TOPSIS and writes the table
back out with Topsis_Score and Rank columns appended.

The first column identifies the alternative; the remaining columns are
criteria. Non-numeric criteria are label-encoded. Weights are comma-separated
numbers and impacts are comma-separated + (benefit) or - (cost) signs, one per
criterion. Input may be a local path or an http(s) URL; .xlsx files are read
and written as workbooks, everything else as CSV.

Examples:
  topsis data.csv "1,1,1,2" "+,+,-,+" result.csv
  topsis --precision 4 https://example.com/funds.csv "1,1,1,1,1" "-,+,+,+,-" ranked.xlsx`,
	Args: cobra.ExactArgs(4),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	RunE: runRank,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
