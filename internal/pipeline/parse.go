package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mpopescu/gazex/internal/model"
	"github.com/mpopescu/gazex/internal/textutil"
)

// ParseDir loads segmented entries from inputDir (descending through
// the legal-form buckets), runs each through the hybrid orchestrator
// and writes one company-record JSON per entry plus an aggregate NDJSON
// file under outDir.
func (p *Pipeline) ParseDir(ctx context.Context, inputDir, outDir string) (*model.HybridSummary, error) {
	files, err := listFiles(inputDir, true, ".json")
	if err != nil {
		return nil, fmt.Errorf("list entry files: %w", err)
	}

	summary := &model.HybridSummary{}

	var entries []model.Entry
	for _, file := range files {
		entry, err := readEntry(file)
		if err != nil {
			summary.Errors++
			p.log.Warn("skipping unreadable entry", zap.String("file", file), zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}
	summary.Read = len(entries)

	outcomes := p.orchestrator.ProcessAll(ctx, entries)

	ndjsonPath := filepath.Join(outDir, p.cfg.Output.NDJSON)
	nd, err := newNDJSONWriter(ndjsonPath)
	if err != nil {
		return nil, err
	}
	defer nd.Close()

	for i, out := range outcomes {
		if out.Escalated {
			summary.Escalated++
		}
		if out.LLMUsed {
			summary.LLMUsed++
		}
		if out.Err != nil {
			summary.Errors++
		}

		name := fmt.Sprintf("%s__%03d.json", textutil.Slug(out.Record.Name, 60), i)
		if err := writeJSON(filepath.Join(outDir, name), out.Record); err != nil {
			summary.Errors++
			p.log.Warn("record write failed", zap.String("record", name), zap.Error(err))
			continue
		}
		if err := nd.Write(out.Record); err != nil {
			summary.Errors++
			p.log.Warn("ndjson append failed", zap.Error(err))
			continue
		}
		summary.Written++
	}

	p.log.Info("hybrid parse finished",
		zap.Int("read", summary.Read),
		zap.Int("written", summary.Written),
		zap.Int("escalated", summary.Escalated),
		zap.Int("llm_used", summary.LLMUsed),
		zap.Int("errors", summary.Errors))
	return summary, nil
}

func readEntry(path string) (model.Entry, error) {
	var entry model.Entry
	data, err := os.ReadFile(path)
	if err != nil {
		return entry, err
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		return entry, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return entry, nil
}
