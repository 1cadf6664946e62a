package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/mpopescu/gazex/internal/model"
	"github.com/mpopescu/gazex/internal/textutil"
)

// ExtractDir runs dump extraction over every HTML file in inputDir and
// writes one JSON entry per recovered article under outDir.
func (p *Pipeline) ExtractDir(inputDir, outDir string, recursive bool) (*model.RunSummary, error) {
	files, err := listFiles(inputDir, recursive, ".html", ".htm")
	if err != nil {
		return nil, fmt.Errorf("list input files: %w", err)
	}

	summary := &model.RunSummary{TotalFiles: len(files)}
	for _, file := range files {
		result, err := p.ExtractFile(file, outDir)
		if err != nil {
			// File-level failure: record and continue with the batch.
			p.log.Error("extraction failed", zap.String("file", file), zap.Error(err))
			result = model.FileResult{File: file, Errors: []string{err.Error()}}
		}
		summary.Add(result)
	}

	p.log.Info("extraction run finished",
		zap.Int("files", summary.TotalFiles),
		zap.Int("articles", summary.TotalArticles),
		zap.Int("modal_articles", summary.TotalModalArticles),
		zap.Int("errors", summary.TotalErrors))
	return summary, nil
}

// ExtractFile extracts article entries from one gazette HTML page.
func (p *Pipeline) ExtractFile(path, outDir string) (model.FileResult, error) {
	result := model.FileResult{File: path}

	f, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return result, fmt.Errorf("parse HTML: %w", err)
	}

	entries := p.extractor.Articles(doc, &result.Errors)
	result.Articles = len(entries)

	for _, modal := range p.extractor.Modals(doc) {
		result.ModalArticles += len(modal.Items)
		entries = append(entries, modal.Items...)
	}

	for i, entry := range entries {
		name := entryFileName(entry, i)
		if err := writeJSON(filepath.Join(outDir, name), entry); err != nil {
			result.Errors = append(result.Errors, err.Error())
			p.log.Warn("entry write failed", zap.String("entry", name), zap.Error(err))
		}
	}

	p.log.Info("file extracted",
		zap.String("file", filepath.Base(path)),
		zap.Int("articles", result.Articles),
		zap.Int("modal_articles", result.ModalArticles),
		zap.Int("errors", len(result.Errors)))
	return result, nil
}

// entryFileName derives the output name <slug>.<articleID>.<bulletinID>.json,
// substituting the batch index for a missing article id.
func entryFileName(entry model.Entry, index int) string {
	slug := textutil.CompactSlug(entry.CompanyName)

	artID := entry.ArticleID
	if artID == "" {
		artID = "n" + strconv.Itoa(index)
	}
	bullID := entry.BulletinID
	if bullID == "" {
		bullID = "0"
	}

	return strings.Join([]string{slug, artID, bullID, "json"}, ".")
}
