package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"nuresults/lib/ranking"
	"nuresults/lib/report"
	"nuresults/lib/serviceutil"

	"github.com/spf13/cobra"
)

var (
	rankIn      string
	rankReports string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Ranks a collected CSV per cohort and renders table and PDF reports.",
	Run: func(cmd *cobra.Command, args []string) {
		config := loadConfig()
		in := rankIn
		if in == "" {
			in = config.OutputCsv
		}
		reports := rankReports
		if reports == "" {
			reports = config.ReportDir
		}
		rank(config, in, reports)
	},
}

func init() {
	rankCmd.Flags().StringVar(&rankIn, "in", "", "collected csv path, overrides output_csv from config")
	rankCmd.Flags().StringVar(&rankReports, "reports", "", "directory for pdf reports, overrides report_dir from config")
	rootCmd.AddCommand(rankCmd)
}

func rank(config Config, in, reports string) {
	records, err := ranking.Load(in, ranking.Options{ExpectedCourses: config.ExpectedCourses})
	if err != nil {
		serviceutil.Fatal("failed to load collected results", err)
	}
	if len(records) == 0 {
		serviceutil.Fatal("no rankable records", fmt.Errorf("%s holds no valid student rows", in))
	}

	grouped := ranking.RankByGroup(records)
	for _, group := range ranking.Groups(grouped) {
		ranked := grouped[group]
		report.WriteTable(os.Stdout, group, ranked)

		name := group
		if name == "" {
			name = "ungrouped"
		}
		path := filepath.Join(reports, name+".pdf")
		err = report.WritePDF(path, group, ranked[0].Year, ranked)
		if err != nil {
			serviceutil.Fatal("failed to render pdf report", err)
		}
		slog.Info("report written", "group", group, "students", len(ranked), "path", path)
	}
}
