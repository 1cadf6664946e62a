package fields

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/mpopescu/gazex/internal/model"
	"github.com/mpopescu/gazex/internal/textutil"
)

var (
	reCompanyAddress = regexp.MustCompile(`(?is)\bsediul\s+social\s*[:\-]?\s*(.+?)(?:[;,.]\s*(?:identificator unic|EUID|număr de ordine|J\d|F\d|CUI|domeniul principal|activitate principală|capital social|fondator|administrator|durata de func|înregistrat[ăa] la O\.?R\.?C|înmatriculat[ăa])\b|$)`)
	reCounty         = regexp.MustCompile(`(?i)\bjud\.\s*([A-ZĂÂÎȘȚ][A-Za-zĂÂÎȘȚăâîșț \-]+)`)
	reCity           = regexp.MustCompile(`(?i)\b(?:municipiul|ora[șs]ul|mun\.)\s*([A-ZĂÂÎȘȚ][A-Za-zĂÂÎȘȚăâîșț \-]+)`)

	reNameLine   = regexp.MustCompile(`(?im)^\s*-\s*denumire\s+și\s+form[ăa]\s+juridic[ăa]\s*[:\-]?\s*(.+?)\s*;?\s*$`)
	reNameStrong = regexp.MustCompile(`(?m)^\s*([A-Z0-9 \-\.„”"'&]+(?:S\.?R\.?L\.?|S\.?A\.?|P\.?F\.?A\.?))\s*$`)

	// Code and description stay on one physical line, like the
	// list-formatted lines caenPatterns matches. A year at the end of
	// the excerpt header must never pair with the next line.
	reCAENPair    = regexp.MustCompile(`(?m)^\s*(\d{4})[ \t]*-[ \t]*([A-ZĂÂÎȘȚa-zăâîșț ,\-/]+)`)
	reCAENGroup   = regexp.MustCompile(`(?i)\bgrupa\s*CAEN\s*[:\-]?\s*(\d{3})\b`)
	reCapitalLei  = regexp.MustCompile(`(?i)\bcapital\s+social\s*[:\-]?\s*([0-9\.\s]+)\s*lei\b`)
	reCUILoose    = regexp.MustCompile(`(?i)\b(?:CUI|Cod(?:ul)?\s+unic(?:\s+de)?\s+înregistrare)\s*[:\-]?\s*(?:RO\s*)?(\d{3,10})\b`)
	reEUIDLabeled = regexp.MustCompile(`(?i)\bEUID\s*[:\-]?\s*([A-Z]{2,}\.ONRC\.[A-Z]\d{1,2}/\d{3,8}/\d{4}|ROONRC\.[A-Z]\d{6,})\b`)
	reRegLoose    = regexp.MustCompile(`(?i)\b([JFC]\s*\d{1,2}/\d{1,6}/\d{4})\b`)

	reCreatedAt = regexp.MustCompile(`(?i)înmatriculat[ăa]\s*(?:la|în)\s*data\s+de\s+(\d{2}\.\d{2}\.\d{4})`)
	reExtrasNo  = regexp.MustCompile(`(?i)EXTRAS\s+AL\s+ÎNCHEIERII\s+NR\.\s*([0-9]+)/(\d{2}\.\d{2}\.\d{4})`)
	reDMYDate   = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})`)
)

// ExtractCompany runs the heuristic structured extraction over one raw
// notice text and returns a CompanyRecord. Missing attributes stay
// empty; the function cannot fail.
func ExtractCompany(rawText, dataSource string) model.CompanyRecord {
	text := textutil.Clean(rawText)

	name := findCompanyName(text)
	cui := firstGroup(reCUILoose, text)
	euid := firstGroup(reEUIDLabeled, text)
	regno := firstGroup(reRegLoose, text)

	var caenCode, caenDesc string
	if m := reCAENPair.FindStringSubmatch(text); m != nil {
		caenCode, caenDesc = m[1], strings.TrimSpace(m[2])
	} else if m := reCAENGroup.FindStringSubmatch(text); m != nil {
		caenCode = m[1]
	}

	var capital string
	if m := reCapitalLei.FindStringSubmatch(text); m != nil {
		capital = strings.ReplaceAll(strings.TrimSpace(m[1]), " ", "") + " lei capital social"
	}

	source := dataSource
	if source == "" {
		source = "Official Gazette"
	}

	legalForm := ClassifyLegalForm(name)

	record := model.CompanyRecord{
		ID:   uuid.NewString(),
		Type: "company",
		Name: name,
		MainInfo: model.MainInfo{
			Addresses:          parseAddresses(text),
			CAEN:               caenCode,
			CUI:                NormalizeCUI(cui),
			DateOfCreation:     creationDate(text),
			EUID:               euid,
			Capital:            capital,
			Ownership:          []model.Ownership{extractOwnership(text)},
			ActivityFieldDesc:  caenDesc,
			Country:            "Romania",
			DataSource:         []string{source},
			RegistrationNumber: regno,
		},
	}
	if legalForm != model.FormOther {
		record.LegalForm = string(legalForm)
	}
	return record
}

// parseAddresses recovers the registered office and splits out county
// and city when clearly stated.
func parseAddresses(text string) []model.Address {
	m := reCompanyAddress.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	full := strings.Trim(strings.TrimSpace(m[1]), ".,")
	addr := model.Address{FullAddress: full, Country: "Romania"}
	if mc := reCounty.FindStringSubmatch(full); mc != nil {
		addr.County = strings.TrimSpace(mc[1])
	}
	if mc := reCity.FindStringSubmatch(full); mc != nil {
		addr.City = strings.TrimSpace(mc[1])
	}
	return []model.Address{addr}
}

// findCompanyName tries the labelled name line, then a standalone
// uppercase name line, then any line with a legal-form token.
func findCompanyName(text string) string {
	if m := reNameLine.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reNameStrong.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return nameFromChunk(text)
}

// creationDate recovers the incorporation date, normalized to
// yyyy-mm-dd, from the "înmatriculată la data de" clause or the
// registrar excerpt header.
func creationDate(text string) string {
	if m := reCreatedAt.FindStringSubmatch(text); m != nil {
		return normDate(m[1])
	}
	if m := reExtrasNo.FindStringSubmatch(text); m != nil {
		return normDate(m[2])
	}
	return ""
}

func normDate(d string) string {
	m := reDMYDate.FindStringSubmatch(d)
	if m == nil {
		return ""
	}
	return m[3] + "-" + m[2] + "-" + m[1]
}
