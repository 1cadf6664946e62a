// Package segment splits the plain-text rendering of a gazette page
// into per-entity chunks, anchored at emphasized company names and
// terminated at page/volume locator markers.
package segment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/mpopescu/gazex/internal/model"
	"github.com/mpopescu/gazex/internal/textutil"
)

var (
	// LegalFormToken matches the Romanian legal-form abbreviations,
	// tolerating stray dots and spacing (S.R.L., S R L, SRL, ...).
	LegalFormToken = regexp.MustCompile(`(?i)\b(S\.?\s*A\.?|S\.?\s*R\.?\s*L\.?|P\.?\s*F\.?\s*A\.?|S\.?\s*N\.?\s*C\.?)\b`)

	// endMark is the parenthesized page/volume locator closing a notice,
	// e.g. "(45/123.456)" with dot-grouped thousands.
	endMark = regexp.MustCompile(`\(\s*\d+\s*/\s*\d{1,3}(?:\.\d{3})+\s*\)`)

	bulletinH1 = regexp.MustCompile(`(?i)Partea\s+a\s+IV-a\s+nr\.\s*(\d+)\s+din\s+(\d{2}\.\d{2}\.\d{4})`)
)

// Chunk is a window over the full page text believed to describe one
// legal entity's notice.
type Chunk struct {
	Start  int    // byte offset of the anchor in the full text
	End    int    // byte offset just past the closing marker
	Anchor string // the emphasized company-name text that anchored it
	Text   string // cleaned chunk content
}

// Segmenter locates entity chunks in gazette pages.
type Segmenter struct {
	minChunkLen int
}

// NewSegmenter creates a segmenter. Chunks whose trimmed text is
// shorter than minChunkLen characters are discarded as noise (spurious
// anchors in headings and tables of contents).
func NewSegmenter(minChunkLen int) *Segmenter {
	if minChunkLen <= 0 {
		minChunkLen = 80
	}
	return &Segmenter{minChunkLen: minChunkLen}
}

// Segment renders htmlContent to plain text, finds company-name anchors
// in <strong> spans and cuts one chunk per anchor, ending at the next
// page/volume locator. Chunks come back in ascending, non-overlapping
// start order.
func (s *Segmenter) Segment(htmlContent string) ([]Chunk, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	full := FullText(doc)

	type anchor struct {
		pos  int
		text string
	}
	var anchors []anchor
	doc.Find("strong").Each(func(_ int, sel *goquery.Selection) {
		text := textutil.Clean(strings.TrimSpace(sel.Text()))
		if text == "" || !LegalFormToken.MatchString(text) {
			return
		}
		if pos := strings.Index(full, text); pos != -1 {
			anchors = append(anchors, anchor{pos: pos, text: text})
		}
	})
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].pos < anchors[j].pos })

	var chunks []Chunk
	lastEnd := -1
	for _, a := range anchors {
		if a.pos < lastEnd {
			// Overlapping anchor, already covered by the previous chunk.
			continue
		}
		loc := endMark.FindStringIndex(full[a.pos:])
		if loc == nil {
			continue
		}
		end := a.pos + loc[1]
		text := textutil.Clean(full[a.pos:end])
		if len([]rune(text)) < s.minChunkLen {
			continue
		}
		chunks = append(chunks, Chunk{Start: a.pos, End: end, Anchor: a.text, Text: text})
		lastEnd = end
	}
	return chunks, nil
}

// FullText renders the document's visible text, text nodes joined by
// newlines, scripts and styles skipped, whitespace normalized.
func FullText(doc *goquery.Document) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, root := range doc.Nodes {
		walk(root)
	}
	return textutil.Clean(buf.String())
}

// BulletinMeta reads the gazette issue header from the page <h1>,
// e.g. "Partea a IV-a nr. 4587 din 03.11.2022".
func BulletinMeta(doc *goquery.Document) model.BulletinInfo {
	var info model.BulletinInfo
	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return info
	}
	text := textutil.Clean(h1.Text())
	m := bulletinH1.FindStringSubmatch(text)
	if m == nil {
		return info
	}
	info.Number = m[1]
	info.Date = m[2]
	if len(m[2]) >= 4 {
		info.Year = m[2][len(m[2])-4:]
	}
	return info
}
