package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpopescu/gazex/internal/logging"
	"github.com/mpopescu/gazex/internal/pipeline"
)

var (
	parseOut         string
	parseForceLLM    bool
	parseLLMProvider string
	parseLLMModel    string
	parseConcurrency int
	parseNoCache     bool
	parseReport      string
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <dir>",
	Short: "Parse segmented entries into structured company records",
	Long: `Parse runs segmented entries through the hybrid extractor: regex
heuristics first, with escalation to an LLM provider for entries the
heuristics could not fill in. Records are written one JSON file per
company plus an aggregate NDJSON file.

Without --llm-provider only the heuristic pass runs. With a provider
set, escalated entries go through the cache and rate limiter before
hitting the API.

Examples:
  gazex parse ./segments --out ./records
  gazex parse ./segments --out ./records --llm-provider openai --llm-model gpt-4o-mini
  gazex parse ./segments --out ./records --llm-provider ollama --llm-model llama3 --force-llm`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseOut, "out", "./records", "output directory for company records")
	parseCmd.Flags().BoolVar(&parseForceLLM, "force-llm", false, "escalate every entry to the LLM regardless of heuristic results")
	parseCmd.Flags().StringVar(&parseLLMProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	parseCmd.Flags().StringVar(&parseLLMModel, "llm-model", "", "model name for the LLM provider")
	parseCmd.Flags().IntVar(&parseConcurrency, "concurrency", 0, "escalation worker count (0 uses the configured default)")
	parseCmd.Flags().BoolVar(&parseNoCache, "no-cache", false, "disable the LLM response cache")
	parseCmd.Flags().StringVar(&parseReport, "report", "", "write a run report JSON to this path")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if parseLLMProvider != "" {
		cfg.LLM.Provider = parseLLMProvider
	}
	if parseLLMModel != "" {
		cfg.LLM.Model = parseLLMModel
	}
	if parseConcurrency > 0 {
		cfg.Concurrency.Workers = parseConcurrency
	}
	if parseForceLLM {
		cfg.Escalation.Force = true
	}
	if parseNoCache {
		cfg.Cache.Enabled = false
	}

	// Get API key from environment
	switch cfg.LLM.Provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		baseURL := os.Getenv("OLLAMA_BASE_URL")
		if baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	log, closeLog := logging.New(cfg.Logging)
	defer closeLog()

	p := pipeline.New(cfg, log)
	summary, err := p.ParseDir(context.Background(), args[0], parseOut)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if parseReport != "" {
		if err := pipeline.WriteRunReport(parseReport, summary); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	fmt.Fprintf(os.Stdout, "Parsed %d entries: %d written, %d escalated, %d via LLM, %d errors\n",
		summary.Read, summary.Written, summary.Escalated, summary.LLMUsed, summary.Errors)
	return nil
}
