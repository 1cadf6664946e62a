package model

// FileResult summarizes the processing of a single input document.
type FileResult struct {
	File          string   `json:"file"`
	Articles      int      `json:"articles"`
	ModalArticles int      `json:"modal_articles"`
	Segments      int      `json:"segments"`
	Errors        []string `json:"errors"`
}

// RunSummary aggregates counts across a whole batch run. It is
// accumulated by the pipeline and written out at end of run.
type RunSummary struct {
	TotalFiles         int          `json:"total_files"`
	Processed          int          `json:"processed"`
	Files              []FileResult `json:"files"`
	TotalArticles      int          `json:"total_articles"`
	TotalModalArticles int          `json:"total_modal_articles"`
	TotalSegments      int          `json:"total_segments"`
	TotalErrors        int          `json:"total_errors"`
}

// Add records one file result and updates the running totals.
func (s *RunSummary) Add(r FileResult) {
	s.Files = append(s.Files, r)
	s.Processed++
	s.TotalArticles += r.Articles
	s.TotalModalArticles += r.ModalArticles
	s.TotalSegments += r.Segments
	s.TotalErrors += len(r.Errors)
}

// HybridSummary aggregates counts for a hybrid parse run.
type HybridSummary struct {
	Read      int `json:"read"`
	Written   int `json:"written"`
	Escalated int `json:"escalated"`
	LLMUsed   int `json:"llm_used"`
	Errors    int `json:"errors"`
}
