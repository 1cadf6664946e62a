package fields

import (
	"strings"
	"testing"
)

const noticeText = `EXTRAS AL ÎNCHEIERII NR. 1234/05.03.2020
- denumire și formă juridică: ACME PROD - S.R.L.;
- sediul social: municipiul Cluj-Napoca, str. Exemplu nr. 1, jud. Cluj; număr de ordine în registrul comerțului J12/345/2020; CUI 12345678;
- domeniul principal de activitate: grupa CAEN 412;
4120 - Lucrări de construcții a clădirilor rezidențiale
- capital social: 200 lei;
administrator: Popescu Ion și Ionescu Maria, puteri conferite: depline;
fondatori: 1. Popescu Ion; 2. Georgescu Dan.
înmatriculată la data de 05.03.2020`

func TestExtractCompany_FullNotice(t *testing.T) {
	rec := ExtractCompany(noticeText, "Official Gazette - MoF IV")

	if rec.ID == "" {
		t.Errorf("Expected generated id")
	}
	if rec.Type != "company" {
		t.Errorf("Expected type company, got %q", rec.Type)
	}
	if rec.Name != "ACME PROD - S.R.L." {
		t.Errorf("Expected labelled name line to win, got %q", rec.Name)
	}
	if rec.LegalForm != "SRL" {
		t.Errorf("Expected legal form SRL, got %q", rec.LegalForm)
	}
	if rec.MainInfo.CUI != "RO12345678" {
		t.Errorf("Expected RO-prefixed CUI, got %q", rec.MainInfo.CUI)
	}
	if rec.MainInfo.RegistrationNumber != "J12/345/2020" {
		t.Errorf("Expected registration number, got %q", rec.MainInfo.RegistrationNumber)
	}
	if rec.MainInfo.CAEN != "4120" {
		t.Errorf("Expected CAEN 4120, got %q", rec.MainInfo.CAEN)
	}
	if !strings.Contains(rec.MainInfo.ActivityFieldDesc, "Lucrări de construcții") {
		t.Errorf("Expected activity description, got %q", rec.MainInfo.ActivityFieldDesc)
	}
	if rec.MainInfo.Capital != "200 lei capital social" {
		t.Errorf("Expected normalized capital, got %q", rec.MainInfo.Capital)
	}
	if rec.MainInfo.DateOfCreation != "2020-03-05" {
		t.Errorf("Expected ISO creation date, got %q", rec.MainInfo.DateOfCreation)
	}
	if len(rec.MainInfo.DataSource) != 1 || rec.MainInfo.DataSource[0] != "Official Gazette - MoF IV" {
		t.Errorf("Expected data source carried through, got %v", rec.MainInfo.DataSource)
	}
}

func TestExtractCompany_HeaderYearIsNotCAEN(t *testing.T) {
	text := "EXTRAS AL ÎNCHEIERII NR. 77/12.08.2021\n" +
		"- denumire și formă juridică: BETA COM - S.R.L.;\n" +
		"- capital social: 100 lei;"
	rec := ExtractCompany(text, "")

	if rec.MainInfo.CAEN != "" {
		t.Errorf("Expected no CAEN without an activity line, got %q", rec.MainInfo.CAEN)
	}
	if rec.MainInfo.ActivityFieldDesc != "" {
		t.Errorf("Expected no activity description, got %q", rec.MainInfo.ActivityFieldDesc)
	}
}

func TestExtractCompany_Address(t *testing.T) {
	rec := ExtractCompany(noticeText, "")

	if len(rec.MainInfo.Addresses) != 1 {
		t.Fatalf("Expected one address, got %d", len(rec.MainInfo.Addresses))
	}
	addr := rec.MainInfo.Addresses[0]
	if !strings.HasPrefix(addr.FullAddress, "municipiul Cluj-Napoca") {
		t.Errorf("Expected full address, got %q", addr.FullAddress)
	}
	if addr.County != "Cluj" {
		t.Errorf("Expected county Cluj, got %q", addr.County)
	}
	if addr.City != "Cluj-Napoca" {
		t.Errorf("Expected city Cluj-Napoca, got %q", addr.City)
	}
	if addr.Country != "Romania" {
		t.Errorf("Expected country Romania, got %q", addr.Country)
	}
}

func TestExtractCompany_Officers(t *testing.T) {
	rec := ExtractCompany(noticeText, "")

	if len(rec.MainInfo.Ownership) != 1 {
		t.Fatalf("Expected one ownership block, got %d", len(rec.MainInfo.Ownership))
	}
	own := rec.MainInfo.Ownership[0]

	adminNames := make([]string, 0, len(own.Administrators))
	for _, p := range own.Administrators {
		adminNames = append(adminNames, p.Name)
	}
	if len(adminNames) != 2 || adminNames[0] != "Popescu Ion" || adminNames[1] != "Ionescu Maria" {
		t.Errorf("Expected administrators [Popescu Ion, Ionescu Maria], got %v", adminNames)
	}
	for _, p := range own.Administrators {
		if strings.Contains(strings.ToLower(p.Name), "puteri") {
			t.Errorf("Role boilerplate must not survive as a person: %q", p.Name)
		}
	}
}

func TestExtractCompany_EmptyTextIsHarmless(t *testing.T) {
	rec := ExtractCompany("", "")
	if rec.Name != "" || rec.MainInfo.CUI != "" {
		t.Errorf("Expected empty record fields, got %+v", rec)
	}
	if rec.MainInfo.Country != "Romania" {
		t.Errorf("Country default must still be set")
	}
	if len(rec.MainInfo.DataSource) != 1 || rec.MainInfo.DataSource[0] != "Official Gazette" {
		t.Errorf("Expected default data source, got %v", rec.MainInfo.DataSource)
	}
}

func TestCreationDate_FallsBackToExcerptHeader(t *testing.T) {
	text := "EXTRAS AL ÎNCHEIERII NR. 99/10.12.2019 privind societatea"
	if got := creationDate(text); got != "2019-12-10" {
		t.Errorf("Expected 2019-12-10, got %q", got)
	}
}

func TestSplitPeople_FiltersAndDeduplicates(t *testing.T) {
	raw := "Popescu Ion, cu domiciliul în Cluj, Ionescu Maria; Popescu Ion și exercitate separat"
	got := splitPeople(raw)
	want := []string{"Popescu Ion", "Ionescu Maria"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Name %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
