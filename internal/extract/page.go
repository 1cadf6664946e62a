// Package extract locates company-article structures in gazette HTML
// pages: article blocks under list containers and modal dialogs holding
// embedded print_r dumps.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/mpopescu/gazex/internal/printr"
)

var (
	articolID  = regexp.MustCompile(`^articol(\d+)$`)
	bulletinID = regexp.MustCompile(`listaarticole_(\d+)`)
	numarInRaw = regexp.MustCompile(`\[numar\]\s*=>\s*([^\s\]]+)`)
	anInRaw    = regexp.MustCompile(`\[an\]\s*=>\s*([^\s\]]+)`)
)

// Extractor walks parsed gazette pages. The logger is injected; every
// structural miss is a warning, never a failure.
type Extractor struct {
	log *zap.Logger
}

// New creates an extractor with the given logger.
func New(log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{log: log}
}

// pageMeta reads the page-level form inputs that carry the bulletin
// number and year, e.g. <input id="numar" value="1017">.
func pageMeta(doc *goquery.Document) (numar, an string) {
	pick := func(selectors ...string) string {
		for _, sel := range selectors {
			el := doc.Find(sel).First()
			if el.Length() == 0 {
				continue
			}
			if val, ok := el.Attr("value"); ok && strings.TrimSpace(val) != "" {
				return strings.TrimSpace(val)
			}
		}
		return ""
	}
	numar = pick(`input#numar`, `input[name="numar"]`, `input[id*="numar"]`, `input[name*="numar"]`)
	an = pick(`input#an`, `input[name="an"]`, `input[id*="an"]`, `input[name*="an"]`)
	return numar, an
}

// resolveNumarAn applies the bulletin-resolution priority for one dump:
// parsed tree first, then a raw-text regex scan, then the page inputs.
func resolveNumarAn(raw, pageNumar, pageAn string) (string, string) {
	var numar, an string
	if strings.Contains(raw, "Array") {
		tree := printr.Parse(raw)
		if v, ok := tree.Find("numar"); ok {
			numar = strings.TrimSpace(v)
		}
		if v, ok := tree.Find("an"); ok {
			an = strings.TrimSpace(v)
		}
	}
	if numar == "" {
		if m := numarInRaw.FindStringSubmatch(raw); m != nil {
			numar = strings.TrimSpace(m[1])
		}
	}
	if an == "" {
		if m := anInRaw.FindStringSubmatch(raw); m != nil {
			an = strings.TrimSpace(m[1])
		}
	}
	if numar == "" {
		numar = pageNumar
	}
	if an == "" {
		an = pageAn
	}
	return numar, an
}

// preText renders a <pre> element's text with line structure intact,
// each line right-trimmed the way the dump scanners expect.
func preText(sel *goquery.Selection, trim bool) string {
	text := printr.NormalizeEntities(sel.Text())
	if !trim {
		return text
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
