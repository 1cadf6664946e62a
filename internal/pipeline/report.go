package pipeline

// WriteRunReport persists a run summary (extraction, segmentation or
// hybrid parse) as JSON for later inspection.
func WriteRunReport(path string, summary any) error {
	return writeJSON(path, summary)
}
