package fields

import (
	"regexp"
	"strings"

	"github.com/mpopescu/gazex/internal/model"
	"github.com/mpopescu/gazex/internal/segment"
)

// Recover applies the regex battery to one entity chunk and builds an
// Entry. All scans are independent: a miss leaves its field empty and
// never affects the others, and malformed chunks cannot fail.
func Recover(chunk, nameHint string, bulletin model.BulletinInfo) model.Entry {
	meta := model.MetaInfo{
		CUI:       firstGroup(reCUI, chunk),
		RegNumber: firstMatch(reRegNo, chunk),
		EUID:      firstMatch(reEUID, chunk),
		CAEN:      caenCodes(chunk),
		Capital:   capital(chunk),
		Address:   address(chunk),
	}

	companyName := nameHint
	if companyName == "" {
		companyName = nameFromChunk(chunk)
	}

	classified := ClassifyLegalForm(companyName)
	if classified == model.FormOther {
		classified = ClassifyLegalForm(chunk)
	}
	if classified != model.FormOther {
		meta.LegalType = string(classified)
	}

	return model.Entry{
		Type:        docType(chunk),
		Number:      bulletin.Number,
		Date:        bulletin.Date,
		Year:        bulletin.Year,
		CompanyName: companyName,
		Meta:        meta,
		RawText:     chunk,
	}
}

// NormalizeCUI prefixes the RO country code when absent. Idempotent,
// and a no-op on empty input.
func NormalizeCUI(cui string) string {
	if cui == "" || strings.HasPrefix(cui, "RO") {
		return cui
	}
	return "RO" + cui
}

// ClassifyLegalForm derives the legal form from a name or chunk,
// checking tokens in fixed priority order: SA, SRL, PFA, SNC.
func ClassifyLegalForm(text string) model.LegalForm {
	t := strings.ToUpper(text)
	switch {
	case reLegalSA.MatchString(t):
		return model.FormSA
	case reLegalSRL.MatchString(t):
		return model.FormSRL
	case reLegalPFA.MatchString(t):
		return model.FormPFA
	case reLegalSNC.MatchString(t):
		return model.FormSNC
	default:
		return model.FormOther
	}
}

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func firstMatch(re *regexp.Regexp, s string) string {
	return strings.TrimSpace(re.FindString(s))
}

func caenCodes(chunk string) []string {
	codes := make([]string, 0, 4)
	seen := make(map[string]bool)
	for _, p := range caenPatterns {
		for _, m := range p.re.FindAllStringSubmatch(chunk, -1) {
			code := m[1]
			if !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}
	return codes
}

func capital(chunk string) string {
	m := reCapital.FindStringSubmatch(chunk)
	if m == nil {
		return ""
	}
	return strings.TrimRight(strings.TrimSpace(m[1]), ";.")
}

func address(chunk string) string {
	for _, tier := range addressTiers {
		if m := tier.re.FindStringSubmatch(chunk); m != nil {
			return strings.Trim(m[1], " ,;.")
		}
	}
	return ""
}

func docType(chunk string) string {
	m := reDocType.FindStringSubmatch(chunk)
	if m == nil {
		return ""
	}
	return titleCase(m[1])
}

// nameFromChunk returns the first line containing a legal-form token.
func nameFromChunk(chunk string) string {
	for _, line := range strings.Split(chunk, "\n") {
		if segment.LegalFormToken.MatchString(line) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

// titleCase uppercases the first rune of each word, lowercasing the
// rest, the way the source documents title their headings.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
