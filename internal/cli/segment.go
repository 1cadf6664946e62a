package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpopescu/gazex/internal/logging"
	"github.com/mpopescu/gazex/internal/pipeline"
)

var (
	segmentOut       string
	segmentRecursive bool
	segmentMinChunk  int
	segmentReport    string
)

// segmentCmd represents the segment command
var segmentCmd = &cobra.Command{
	Use:   "segment <dir>",
	Short: "Segment rendered bulletin pages into per-company notices",
	Long: `Segment splits rendered gazette bulletin pages into per-company text
chunks, recovers identifiers from each chunk by pattern matching and
writes the entries bucketed by legal form:

  <out>/SRL/  <out>/SA/  <out>/PFA/  <out>/SNC/  <out>/OTHER/

Example:
  gazex segment ./bulletins --out ./segments
  gazex segment ./bulletins --out ./segments --min-chunk-len 120`,
	Args: cobra.ExactArgs(1),
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)

	segmentCmd.Flags().StringVar(&segmentOut, "out", "./segments", "output directory for bucketed entries")
	segmentCmd.Flags().BoolVar(&segmentRecursive, "recursive", false, "descend into subdirectories")
	segmentCmd.Flags().IntVar(&segmentMinChunk, "min-chunk-len", 0, "minimum chunk length in characters (0 uses the configured default)")
	segmentCmd.Flags().StringVar(&segmentReport, "report", "", "write a run report JSON to this path")
}

func runSegment(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if segmentMinChunk > 0 {
		cfg.Segmenter.MinChunkLen = segmentMinChunk
	}
	log, closeLog := logging.New(cfg.Logging)
	defer closeLog()

	p := pipeline.New(cfg, log)
	summary, err := p.SegmentDir(args[0], segmentOut, segmentRecursive)
	if err != nil {
		return fmt.Errorf("segment failed: %w", err)
	}

	if segmentReport != "" {
		if err := pipeline.WriteRunReport(segmentReport, summary); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	fmt.Fprintf(os.Stdout, "Processed %d files: %d segments, %d errors\n",
		summary.Processed, summary.TotalSegments, summary.TotalErrors)
	return nil
}
