package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/mpopescu/gazex/internal/fields"
	"github.com/mpopescu/gazex/internal/model"
	"github.com/mpopescu/gazex/internal/segment"
	"github.com/mpopescu/gazex/internal/textutil"
)

// SegmentDir segments every HTML file in inputDir into per-entity
// entries, bucketed under outDir by legal form (SRL/, SA/, PFA/, SNC/,
// OTHER/).
func (p *Pipeline) SegmentDir(inputDir, outDir string, recursive bool) (*model.RunSummary, error) {
	files, err := listFiles(inputDir, recursive, ".html", ".htm")
	if err != nil {
		return nil, fmt.Errorf("list input files: %w", err)
	}

	summary := &model.RunSummary{TotalFiles: len(files)}
	for _, file := range files {
		result, err := p.SegmentFile(file, outDir)
		if err != nil {
			p.log.Error("segmentation failed", zap.String("file", file), zap.Error(err))
			result = model.FileResult{File: file, Errors: []string{err.Error()}}
		}
		summary.Add(result)
	}

	p.log.Info("segmentation run finished",
		zap.Int("files", summary.TotalFiles),
		zap.Int("segments", summary.TotalSegments),
		zap.Int("errors", summary.TotalErrors))
	return summary, nil
}

// SegmentFile splits one gazette page into entity chunks, recovers
// fields for each and writes one bucketed JSON entry per chunk.
func (p *Pipeline) SegmentFile(path, outDir string) (model.FileResult, error) {
	result := model.FileResult{File: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("read: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		return result, fmt.Errorf("parse HTML: %w", err)
	}
	bulletin := segment.BulletinMeta(doc)

	chunks, err := p.segmenter.Segment(string(data))
	if err != nil {
		return result, fmt.Errorf("segment: %w", err)
	}
	result.Segments = len(chunks)

	for i, chunk := range chunks {
		entry := fields.Recover(chunk.Text, "", bulletin)

		bucket := model.LegalForm(entry.Meta.LegalType).Bucket()
		name := fmt.Sprintf("%s__%03d.json", textutil.Slug(entry.CompanyName, 60), i)
		dest := filepath.Join(outDir, bucket, name)

		if err := writeJSON(dest, entry); err != nil {
			result.Errors = append(result.Errors, err.Error())
			p.log.Warn("segment write failed", zap.String("segment", name), zap.Error(err))
		}
	}

	p.log.Info("file segmented",
		zap.String("file", filepath.Base(path)),
		zap.String("bulletin", bulletin.Number),
		zap.Int("segments", result.Segments))
	return result, nil
}
