package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpopescu/gazex/internal/logging"
	"github.com/mpopescu/gazex/internal/pipeline"
)

var (
	extractOut       string
	extractRecursive bool
	extractReport    string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <dir>",
	Short: "Extract company articles from gazette portal pages",
	Long: `Extract walks a directory of saved gazette portal HTML pages and emits
one JSON entry per company article, named <company>.<article>.<bulletin>.json.

Articles are taken both from the visible #articolNNN blocks and from the
print_r dumps embedded in the page's modal dialogs.

Example:
  gazex extract ./pages --out ./entries
  gazex extract ./pages --out ./entries --recursive --report run_report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractOut, "out", "./entries", "output directory for entry JSON files")
	extractCmd.Flags().BoolVar(&extractRecursive, "recursive", false, "descend into subdirectories")
	extractCmd.Flags().StringVar(&extractReport, "report", "", "write a run report JSON to this path")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log, closeLog := logging.New(cfg.Logging)
	defer closeLog()

	p := pipeline.New(cfg, log)
	summary, err := p.ExtractDir(args[0], extractOut, extractRecursive)
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	if extractReport != "" {
		if err := pipeline.WriteRunReport(extractReport, summary); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	fmt.Fprintf(os.Stdout, "Processed %d files: %d articles, %d modal articles, %d errors\n",
		summary.Processed, summary.TotalArticles, summary.TotalModalArticles, summary.TotalErrors)
	return nil
}
