package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/mpopescu/gazex/internal/model"
	"github.com/mpopescu/gazex/internal/printr"
)

var plainSRLName = regexp.MustCompile(`\b([A-Z0-9][A-Z0-9\.\-\s&]+?)\s*-\s*S\.R\.L\.`)

// Modal is the per-dialog aggregation: the items parsed out of its
// dumps plus a best-effort list of company names.
type Modal struct {
	Index     int
	Numar     string
	An        string
	Companies []string
	Items     []model.Entry
}

// Modals walks the page's modal dialogs and slices each embedded
// [articole] dump into per-item entries using the block locator, which
// survives dumps the generic parser cannot fully reconstruct. When no
// machine-parseable list exists, company names are scraped from the
// dialog's visible text instead.
func (e *Extractor) Modals(doc *goquery.Document) []Modal {
	pageNumar, pageAn := pageMeta(doc)

	sel := doc.Find("div.modal.fade.bs-example-modal-lg")
	if sel.Length() == 0 {
		e.log.Info("no modals (bs-example-modal-lg) found")
		return nil
	}

	var modals []Modal
	sel.Each(func(i int, modal *goquery.Selection) {
		out := Modal{Index: i + 1}
		usedPre := false

		modal.Find("pre").Each(func(_ int, pre *goquery.Selection) {
			// Line breaks must survive for the depth splitter.
			raw := preText(pre, false)
			if strings.TrimSpace(raw) == "" {
				return
			}
			block, ok := printr.ExtractNamedBlock(raw, "articole")
			if !ok {
				return
			}
			usedPre = true

			// Convenience numar/an pickup from the whole dump.
			n, a := resolveNumarAn(raw, "", "")
			if out.Numar == "" {
				out.Numar = n
			}
			if out.An == "" {
				out.An = a
			}

			for _, item := range printr.SplitTopLevelItems(block.Text) {
				entry := e.modalItem(item.Text)
				entry.Number = firstNonEmpty(out.Numar, pageNumar)
				entry.Year = firstNonEmpty(out.An, pageAn)
				if entry.CompanyName != "" {
					out.Companies = append(out.Companies, entry.CompanyName)
				}
				out.Items = append(out.Items, entry)
			}
		})

		// Fallback: no parseable articole list, scrape visible text.
		if !usedPre {
			body := modal.Text()
			for _, m := range plainSRLName.FindAllStringSubmatch(body, -1) {
				name := strings.TrimSpace(m[1])
				if name != "" && !containsString(out.Companies, name) {
					out.Companies = append(out.Companies, name)
				}
			}
		}

		if len(out.Companies) > 0 || len(out.Items) > 0 {
			if out.Numar == "" {
				out.Numar = pageNumar
			}
			if out.An == "" {
				out.An = pageAn
			}
			modals = append(modals, out)
		} else {
			e.log.Debug("empty modal skipped", zap.Int("modal", i+1))
		}
	})
	return modals
}

// modalItem parses one "[N] => Array(...)" slice into an Entry. Scalar
// fields come from pattern anchoring on the exact source slice so that
// the item need not be well-formed as a whole.
func (e *Extractor) modalItem(seg string) model.Entry {
	company := grabScalar(seg, "numesocietate")
	if company == "" {
		company = grabScalar(seg, "numesocietateinit")
	}

	articol := ""
	if raw, ok := printr.ExtractKeyBlock(seg, "articol"); ok {
		articol = printr.Dedent(raw)
	}

	return model.Entry{
		Type:        "article",
		CompanyName: company,
		ArticleID:   grabScalar(seg, "id"),
		BulletinID:  grabScalar(seg, "buletinid"),
		RawText:     articol,
		Meta: model.MetaInfo{
			CUI:       grabArrayFirst(seg, "cif"),
			RegNumber: grabArrayFirst(seg, "regcom"),
		},
	}
}

// grabScalar returns the first single-line scalar value for a key,
// rejecting nested Array values.
func grabScalar(seg, name string) string {
	re := regexp.MustCompile(`\[` + regexp.QuoteMeta(name) + `\]\s*=>\s*(.*)`)
	m := re.FindStringSubmatch(seg)
	if m == nil {
		return ""
	}
	val := strings.TrimSpace(m[1])
	if strings.HasPrefix(val, "Array") {
		return ""
	}
	return val
}

// grabArrayFirst returns the first element of a nested single-level
// array value, e.g. [regcom] => Array ( [0] => J12/345/2020 ... ).
func grabArrayFirst(seg, name string) string {
	re := regexp.MustCompile(`(?s)\[` + regexp.QuoteMeta(name) + `\]\s*=>\s*Array\s*\(\s*\[\d+\]\s*=>\s*([^)\n]*)`)
	m := re.FindStringSubmatch(seg)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
