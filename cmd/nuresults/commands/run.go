package commands

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrapes a registration-number range then ranks the collected batch.",
	Run: func(cmd *cobra.Command, args []string) {
		config := loadConfig()
		out := scrapeOut
		if out == "" {
			out = config.OutputCsv
		}
		reports := rankReports
		if reports == "" {
			reports = config.ReportDir
		}
		scrape(cmd.Context(), config, out)
		rank(config, out, reports)
	},
}

func init() {
	runCmd.Flags().Uint64Var(&scrapeStart, "start", 0, "first registration number, inclusive")
	runCmd.Flags().Uint64Var(&scrapeEnd, "end", 0, "last registration number, inclusive")
	runCmd.Flags().StringVar(&scrapeGroup, "group", "", "cohort label, e.g. B.Sc")
	runCmd.Flags().StringVar(&scrapeYear, "year", "", "exam year, e.g. 2023")
	runCmd.Flags().StringVar(&scrapeOut, "out", "", "output csv path, overrides output_csv from config")
	runCmd.Flags().StringVar(&rankReports, "reports", "", "directory for pdf reports, overrides report_dir from config")
	runCmd.MarkFlagRequired("start")
	runCmd.MarkFlagRequired("end")
	runCmd.MarkFlagRequired("group")
	runCmd.MarkFlagRequired("year")
	rootCmd.AddCommand(runCmd)
}
