// Package pipeline wires the extraction stages into the three batch
// drivers behind the CLI: dump extraction, page segmentation and hybrid
// parsing. A failure in one input file never aborts the batch; it is
// recorded in the run summary and the batch moves on.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/mpopescu/gazex/internal/cache"
	"github.com/mpopescu/gazex/internal/extract"
	"github.com/mpopescu/gazex/internal/hybrid"
	"github.com/mpopescu/gazex/internal/llm"
	"github.com/mpopescu/gazex/internal/model"
	"github.com/mpopescu/gazex/internal/segment"
)

// Pipeline orchestrates the complete batch process
type Pipeline struct {
	cfg          *model.Config
	log          *zap.Logger
	extractor    *extract.Extractor
	segmenter    *segment.Segmenter
	orchestrator *hybrid.Orchestrator
}

// New creates a pipeline with the given configuration
func New(cfg *model.Config, log *zap.Logger) *Pipeline {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}

	// Create LLM provider if configured
	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			log.Warn("failed to initialize LLM provider, escalation disabled", zap.Error(err))
		} else {
			provider = p
		}
	}

	return &Pipeline{
		cfg:          cfg,
		log:          log,
		extractor:    extract.New(log),
		segmenter:    segment.NewSegmenter(cfg.Segmenter.MinChunkLen),
		orchestrator: hybrid.New(cfg, provider, cache.New(cfg.Cache), log),
	}
}
