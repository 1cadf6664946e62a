package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/mpopescu/gazex/internal/model"
)

// Articles emits one Entry per #articolNNN block found under any
// div.col-lg-12 list container. Missing expected sub-elements are
// logged as warnings and appended to errs; partial records are still
// emitted with the affected fields empty.
func (e *Extractor) Articles(doc *goquery.Document, errs *[]string) []model.Entry {
	pageNumar, pageAn := pageMeta(doc)

	var entries []model.Entry
	found := false

	doc.Find("div.col-lg-12").Each(func(_ int, col *goquery.Selection) {
		parentClasses, _ := col.Attr("class")
		col.Find("div").Each(func(_ int, block *goquery.Selection) {
			id, ok := block.Attr("id")
			if !ok {
				return
			}
			m := articolID.FindStringSubmatch(id)
			if m == nil {
				return
			}
			found = true
			artID := m[1]

			pre := block.Find("pre").First()
			text := ""
			if pre.Length() == 0 {
				msg := fmt.Sprintf("missing <pre> for articol%s", artID)
				e.log.Warn(msg)
				*errs = append(*errs, msg)
			} else {
				text = preText(pre, true)
			}

			numar, an := resolveNumarAn(text, pageNumar, pageAn)

			var company, href string
			header := block.PrevAllFiltered("div.societateContainer").First()
			if header.Length() == 0 {
				e.log.Warn("missing societateContainer", zap.String("articol", artID))
			} else {
				a := header.Find("a").First()
				if a.Length() > 0 {
					company = strings.TrimSpace(a.Text())
					href, _ = a.Attr("href")
				}
			}

			var bullID string
			if m := bulletinID.FindStringSubmatch(parentClasses); m != nil {
				bullID = m[1]
			} else {
				e.log.Warn("no bulletin id (listaarticole_XXXX) in list container classes",
					zap.String("articol", artID))
			}

			entries = append(entries, model.Entry{
				Type:              "article",
				CompanyName:       company,
				ArticleID:         artID,
				BulletinID:        bullID,
				ListParentClasses: parentClasses,
				CollapseID:        "articol" + artID,
				SourceHref:        href,
				RawText:           text,
				Number:            numar,
				Year:              an,
			})
		})
	})

	if !found {
		e.log.Info("no articol* blocks found under any .col-lg-12")
	}
	return entries
}
