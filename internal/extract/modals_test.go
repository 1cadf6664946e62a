package extract

import (
	"strings"
	"testing"
)

const modalHTML = `
<html><body>
<input id="numar" value="999">
<input id="an" value="2020">
<div class="modal fade bs-example-modal-lg" id="m1">
  <div class="modal-body">
<pre>Array
(
    [numar] => 1017
    [an] => 2024
    [articole] => Array
        (
            [0] => Array
                (
                    [id] => 55
                    [buletinid] => 4437
                    [numesocietate] => ACME PROD S.R.L.
                    [cif] => Array
                        (
                            [0] => 12345678
                        )

                    [regcom] => Array
                        (
                            [0] => J12/345/2020
                        )

                    [articol] => Societatea ACME PROD S.R.L.
                        cu sediul in Cluj-Napoca.
                )

            [1] => Array
                (
                    [id] => 56
                    [numesocietateinit] => BETA TRANS S.R.L.
                    [articol] => Text beta.
                )

        )

)
</pre>
  </div>
</div>
<div class="modal fade bs-example-modal-lg" id="m2">
  <div class="modal-body">
    <p>In acest buletin: GAMA SERV - S.R.L. si DELTA COM - S.R.L.</p>
  </div>
</div>
</body></html>
`

func TestModals_PrintRDump(t *testing.T) {
	doc := mustDoc(t, modalHTML)

	modals := New(nil).Modals(doc)
	if len(modals) != 2 {
		t.Fatalf("Expected 2 modals, got %d", len(modals))
	}

	m := modals[0]
	if m.Numar != "1017" || m.An != "2024" {
		t.Errorf("Expected dump bulletin 1017/2024 to win over page inputs, got %s/%s", m.Numar, m.An)
	}
	if len(m.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(m.Items))
	}

	first := m.Items[0]
	if first.CompanyName != "ACME PROD S.R.L." {
		t.Errorf("Expected company 'ACME PROD S.R.L.', got %q", first.CompanyName)
	}
	if first.ArticleID != "55" {
		t.Errorf("Expected article id 55, got %q", first.ArticleID)
	}
	if first.BulletinID != "4437" {
		t.Errorf("Expected bulletin id 4437, got %q", first.BulletinID)
	}
	if first.Meta.CUI != "12345678" {
		t.Errorf("Expected CUI 12345678 from cif array, got %q", first.Meta.CUI)
	}
	if first.Meta.RegNumber != "J12/345/2020" {
		t.Errorf("Expected reg number J12/345/2020 from regcom array, got %q", first.Meta.RegNumber)
	}
	if first.Number != "1017" || first.Year != "2024" {
		t.Errorf("Expected items to carry bulletin 1017/2024, got %s/%s", first.Number, first.Year)
	}
	if !strings.HasPrefix(first.RawText, "Societatea ACME PROD S.R.L.") {
		t.Errorf("Expected dedented article text, got %q", first.RawText)
	}
	if !strings.Contains(first.RawText, "\n") {
		t.Errorf("Expected multi-line article text to keep its line break, got %q", first.RawText)
	}

	second := m.Items[1]
	if second.CompanyName != "BETA TRANS S.R.L." {
		t.Errorf("Expected numesocietateinit fallback, got %q", second.CompanyName)
	}
	if second.Meta.CUI != "" {
		t.Errorf("Expected absent cif to stay empty, got %q", second.Meta.CUI)
	}
}

func TestModals_PlainTextFallback(t *testing.T) {
	doc := mustDoc(t, modalHTML)

	modals := New(nil).Modals(doc)
	if len(modals) != 2 {
		t.Fatalf("Expected 2 modals, got %d", len(modals))
	}

	m := modals[1]
	if len(m.Items) != 0 {
		t.Errorf("Expected no parsed items in the text-only modal, got %d", len(m.Items))
	}
	want := []string{"GAMA SERV", "DELTA COM"}
	if len(m.Companies) != len(want) {
		t.Fatalf("Expected %d companies, got %v", len(want), m.Companies)
	}
	for i, name := range want {
		if m.Companies[i] != name {
			t.Errorf("Expected company %q at %d, got %q", name, i, m.Companies[i])
		}
	}
	if m.Numar != "999" || m.An != "2020" {
		t.Errorf("Expected page-input bulletin 999/2020 fallback, got %s/%s", m.Numar, m.An)
	}
}

func TestModals_None(t *testing.T) {
	doc := mustDoc(t, `<div class="modal fade other"><pre>Array()</pre></div>`)
	if got := New(nil).Modals(doc); len(got) != 0 {
		t.Errorf("Expected no modals, got %d", len(got))
	}
}

func TestGrabScalar_RejectsNestedArray(t *testing.T) {
	seg := "[cif] => Array\n    (\n        [0] => 123\n    )\n[id] => 7"
	if got := grabScalar(seg, "cif"); got != "" {
		t.Errorf("Expected empty for Array-valued key, got %q", got)
	}
	if got := grabScalar(seg, "id"); got != "7" {
		t.Errorf("Expected 7, got %q", got)
	}
}

func TestGrabArrayFirst(t *testing.T) {
	seg := "[regcom] => Array\n    (\n        [0] => J12/345/2020\n        [1] => J12/999/2021\n    )"
	if got := grabArrayFirst(seg, "regcom"); got != "J12/345/2020" {
		t.Errorf("Expected first element, got %q", got)
	}
	if got := grabArrayFirst(seg, "missing"); got != "" {
		t.Errorf("Expected empty for missing key, got %q", got)
	}
}
