package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/topsis/internal/config"
	"github.com/sells-group/topsis/internal/scorer"
	"github.com/sells-group/topsis/internal/table"
)

func init() {
	f := rootCmd.Flags()
	// Impacts such as "-,+" begin with a dash; stop flag parsing at the first
	// positional so they are not read as shorthand flags.
	f.SetInterspersed(false)
	f.String("delimiter", "", "CSV field delimiter (overrides config)")
	f.String("charset", "", "input charset, e.g. windows-1252 (overrides config)")
	f.String("sheet", "", "worksheet name for .xlsx input (overrides config)")
	f.Int("precision", -1, "decimals written for Topsis_Score, -1 for full precision (overrides config)")
}

func runRank(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	ctx := cmd.Context()

	input, weightsArg, impactsArg, output := args[0], args[1], args[2], args[3]

	rc := applyRankOverrides(cmd, *cfg)
	if err := rc.Validate("rank"); err != nil {
		return err
	}

	log := zap.L().With(
		zap.String("command", "rank"),
		zap.String("run_id", uuid.NewString()),
	)

	weights, err := table.ParseWeights(weightsArg)
	if err != nil {
		return err
	}
	impacts, err := table.ParseImpacts(impactsArg)
	if err != nil {
		return err
	}

	fetcher := table.NewHTTPFetcher(table.HTTPOptions{
		UserAgent:  rc.Fetch.UserAgent,
		Timeout:    time.Duration(rc.Fetch.TimeoutSecs) * time.Second,
		MaxRetries: rc.Fetch.MaxRetries,
		RatePerSec: rc.Fetch.RatePerSec,
	})
	tbl, err := table.Load(ctx, input, table.LoadOptions{
		CSV: table.CSVOptions{
			Delimiter:  rc.Input.DelimiterRune(),
			Charset:    rc.Input.Charset,
			Comment:    rc.Input.CommentRune(),
			LazyQuotes: rc.Input.LazyQuotes,
			TrimSpace:  rc.Input.TrimSpace,
		},
		XLSX:    table.XLSXOptions{SheetName: rc.Input.Sheet},
		Fetcher: fetcher,
	})
	if err != nil {
		return err
	}
	log.Debug("loaded input",
		zap.String("input", input),
		zap.Int("rows", len(tbl.Rows)),
		zap.Strings("criteria", tbl.Criteria()),
	)

	matrix, encoded, err := tbl.Matrix(table.LabelEncoder{})
	if err != nil {
		return err
	}
	if len(encoded) > 0 {
		log.Info("label-encoded categorical columns", zap.Strings("columns", encoded))
	}

	res, err := scorer.Score(matrix, weights, impacts)
	if err != nil {
		return eris.Wrap(err, "rank: score")
	}

	out, err := tbl.WithResults(res, rc.Output.ScorePrecision)
	if err != nil {
		return err
	}
	if err := table.Save(output, out); err != nil {
		return err
	}

	best := res.Best()
	log.Info("rank complete",
		zap.Int("alternatives", len(tbl.Rows)),
		zap.Int("criteria", len(weights)),
		zap.String("best", tbl.Rows[best][0]),
		zap.Float64("best_score", res.Scores[best]),
		zap.String("output", output),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Ranked %d alternatives; best: %s (%s). Results written to %s\n",
		len(tbl.Rows), tbl.Rows[best][0], table.FormatScore(res.Scores[best], 4), output)

	return nil
}

// applyRankOverrides returns a copy of the base config with CLI flag overrides applied.
func applyRankOverrides(cmd *cobra.Command, base config.Config) config.Config {
	c := base
	f := cmd.Flags()

	if f.Changed("delimiter") {
		c.Input.Delimiter, _ = f.GetString("delimiter")
	}
	if f.Changed("charset") {
		c.Input.Charset, _ = f.GetString("charset")
	}
	if f.Changed("sheet") {
		c.Input.Sheet, _ = f.GetString("sheet")
	}
	if f.Changed("precision") {
		c.Output.ScorePrecision, _ = f.GetInt("precision")
	}

	return c
}
