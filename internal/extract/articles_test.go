package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const articlesHTML = `
<html><body>
<input id="numar" value="1017">
<input id="an" value="2024">
<div class="col-lg-12 listaarticole_4437">
  <div class="societateContainer"><a href="/detalii/55">ACME PROD - S.R.L.</a></div>
  <div id="articol55" class="collapse">
    <pre>Societatea ACME PROD S.R.L., cu sediul in Cluj-Napoca, CUI 12345678.</pre>
  </div>
  <div class="societateContainer"><a href="/detalii/56">BETA TRANS - S.R.L.</a></div>
  <div id="articol56" class="collapse">
    <pre>Societatea BETA TRANS S.R.L., cu sediul in Dej.</pre>
  </div>
</div>
</body></html>
`

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Failed to parse fixture HTML: %v", err)
	}
	return doc
}

func TestArticles(t *testing.T) {
	doc := mustDoc(t, articlesHTML)
	var errs []string

	entries := New(nil).Articles(doc, &errs)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}

	first := entries[0]
	if first.CompanyName != "ACME PROD - S.R.L." {
		t.Errorf("Expected company 'ACME PROD - S.R.L.', got %q", first.CompanyName)
	}
	if first.ArticleID != "55" {
		t.Errorf("Expected article id 55, got %q", first.ArticleID)
	}
	if first.BulletinID != "4437" {
		t.Errorf("Expected bulletin id 4437, got %q", first.BulletinID)
	}
	if first.CollapseID != "articol55" {
		t.Errorf("Expected collapse id articol55, got %q", first.CollapseID)
	}
	if first.SourceHref != "/detalii/55" {
		t.Errorf("Expected href /detalii/55, got %q", first.SourceHref)
	}
	if !strings.Contains(first.RawText, "CUI 12345678") {
		t.Errorf("Expected raw text to carry the article body, got %q", first.RawText)
	}
	if first.Number != "1017" || first.Year != "2024" {
		t.Errorf("Expected bulletin 1017/2024 from page inputs, got %s/%s", first.Number, first.Year)
	}

	second := entries[1]
	if second.CompanyName != "BETA TRANS - S.R.L." {
		t.Errorf("Expected company 'BETA TRANS - S.R.L.', got %q", second.CompanyName)
	}
	if second.ArticleID != "56" {
		t.Errorf("Expected article id 56, got %q", second.ArticleID)
	}
}

func TestArticles_MissingPreIsWarnedNotFatal(t *testing.T) {
	html := `
<div class="col-lg-12 listaarticole_4437">
  <div class="societateContainer"><a href="/d/9">GAMA SERV - S.R.L.</a></div>
  <div id="articol9" class="collapse"></div>
</div>`
	doc := mustDoc(t, html)
	var errs []string

	entries := New(nil).Articles(doc, &errs)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 partial entry, got %d", len(entries))
	}
	if entries[0].RawText != "" {
		t.Errorf("Expected empty raw text, got %q", entries[0].RawText)
	}
	if entries[0].CompanyName != "GAMA SERV - S.R.L." {
		t.Errorf("Expected header company to survive, got %q", entries[0].CompanyName)
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "articol9") {
		t.Errorf("Expected one recorded error naming articol9, got %v", errs)
	}
}

func TestArticles_NumarAnFromRawTextOverPage(t *testing.T) {
	html := `
<input id="numar" value="999">
<input id="an" value="2020">
<div class="col-lg-12 listaarticole_1">
  <div class="societateContainer"><a href="#">X - S.R.L.</a></div>
  <div id="articol1"><pre>[numar] => 1017
[an] => 2024
Societatea X S.R.L.</pre></div>
</div>`
	doc := mustDoc(t, html)
	var errs []string

	entries := New(nil).Articles(doc, &errs)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Number != "1017" || entries[0].Year != "2024" {
		t.Errorf("Expected raw-text bulletin 1017/2024 to win, got %s/%s",
			entries[0].Number, entries[0].Year)
	}
}

func TestArticles_NoBlocks(t *testing.T) {
	doc := mustDoc(t, `<div class="col-lg-12"><p>nothing here</p></div>`)
	var errs []string

	entries := New(nil).Articles(doc, &errs)
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}
