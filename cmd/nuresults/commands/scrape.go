package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nuresults/lib/auditlog"
	"nuresults/lib/restyutil"
	"nuresults/lib/results"
	"nuresults/lib/scrapers/nu"
	"nuresults/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/spf13/cobra"
)

var (
	scrapeStart uint64
	scrapeEnd   uint64
	scrapeGroup string
	scrapeYear  string
	scrapeOut   string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Collects results for a contiguous registration-number range and writes them to CSV.",
	Run: func(cmd *cobra.Command, args []string) {
		config := loadConfig()
		out := scrapeOut
		if out == "" {
			out = config.OutputCsv
		}
		scrape(cmd.Context(), config, out)
	},
}

func init() {
	scrapeCmd.Flags().Uint64Var(&scrapeStart, "start", 0, "first registration number, inclusive")
	scrapeCmd.Flags().Uint64Var(&scrapeEnd, "end", 0, "last registration number, inclusive")
	scrapeCmd.Flags().StringVar(&scrapeGroup, "group", "", "cohort label, e.g. B.Sc")
	scrapeCmd.Flags().StringVar(&scrapeYear, "year", "", "exam year, e.g. 2023")
	scrapeCmd.Flags().StringVar(&scrapeOut, "out", "", "output csv path, overrides output_csv from config")
	scrapeCmd.MarkFlagRequired("start")
	scrapeCmd.MarkFlagRequired("end")
	scrapeCmd.MarkFlagRequired("group")
	scrapeCmd.MarkFlagRequired("year")
	rootCmd.AddCommand(scrapeCmd)
}

func scrape(ctx context.Context, config Config, out string) {
	if scrapeEnd < scrapeStart {
		serviceutil.Fatal("invalid range", fmt.Errorf("--end %d is below --start %d", scrapeEnd, scrapeStart))
	}
	if verbose {
		// dump every http exchange so a markup change on the portal can
		// be diagnosed from the run itself
		nu.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput("debug_http"))
	}

	journal, err := auditlog.Open(config.AuditDb)
	if err != nil {
		serviceutil.Fatal("failed to open attempt journal", err)
	}
	defer journal.Close()

	client, err := nu.NewClient(ctx, nu.ClientOptions{
		BaseUrl:   config.BaseUrl,
		ExamLevel: config.ExamLevel,
		Timeout:   time.Duration(config.TimeoutSeconds) * time.Second,
		Audit:     journal,
	})
	if err != nil {
		serviceutil.Fatal("failed to construct portal client", err)
	}

	pw := progress.NewWriter()
	pw.SetUpdateFrequency(time.Millisecond * 100)
	go pw.Render()
	tracker := &progress.Tracker{
		Message: fmt.Sprintf("collecting %d-%d", scrapeStart, scrapeEnd),
		Total:   int64(scrapeEnd - scrapeStart + 1),
	}
	pw.AppendTracker(tracker)

	outcomes, collectErr := client.Collect(ctx, nu.CollectRequest{
		Start:  scrapeStart,
		End:    scrapeEnd,
		Group:  scrapeGroup,
		Year:   scrapeYear,
		Delay:  time.Duration(config.DelaySeconds) * time.Second,
		Policy: config.retryPolicy(),
	}, func(results.Outcome) {
		tracker.Increment(1)
	})

	tracker.MarkAsDone()
	pw.Stop()
	for pw.IsRenderInProgress() {
		time.Sleep(time.Millisecond * 5)
	}

	if collectErr != nil {
		slog.Warn(
			"collection stopped early, keeping the partial batch",
			"collected", len(outcomes),
			"err", collectErr,
		)
	}
	if len(outcomes) == 0 {
		serviceutil.Fatal("nothing was collected", collectErr)
	}

	counts := map[results.OutcomeKind]int{}
	for _, o := range outcomes {
		fmt.Printf("%s: %s\n", o.RegistrationNo, o.Kind)
		counts[o.Kind]++
	}
	slog.Info(
		"collection summary",
		"total", len(outcomes),
		"success", counts[results.Success],
		"not_registered", counts[results.NotRegistered],
		"format_unrecognized", counts[results.FormatUnrecognized],
		"retry_exhausted", counts[results.RetryExhausted],
	)

	err = results.WriteFile(out, outcomes)
	if err != nil {
		// the batch is still in memory, one more try at a path that
		// should always be writable before giving up
		fallback := "nu_results_fallback.csv"
		slog.Error(
			"failed to persist batch, retrying at fallback path",
			"path", out,
			"fallback", fallback,
			"err", err,
		)
		err = results.WriteFile(fallback, outcomes)
		if err != nil {
			serviceutil.Fatal("failed to persist batch at fallback path", err)
		}
		out = fallback
	}
	slog.Info("batch persisted", "path", out, "records", len(outcomes))
}
