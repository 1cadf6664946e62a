// Package fields recovers structured company attributes from free-form
// legal prose using an ordered regex battery. Every field's fallback
// chain is held as data so new tiers can be added without touching
// control flow, and no field's absence ever blocks another.
package fields

import "regexp"

// stopPhrases are the clause boundaries that terminate an address
// capture. The final $ accepts end-of-text.
const stopPhrases = `(?:înregistrat[ăa]|având|reprezentând|la\s+data\s+de|domiciliat|identificat|deținând|cod\s+unic|CUI|am\s+decis|$)`

var (
	reCUI = regexp.MustCompile(`(?i)\b(?:CUI|Cod(?:ul)?\s+unic(?:\s+de)?\s+înregistrare)\s*[:\-]?\s*(?:RO\s*)?(\d{6,10})\b`)

	reRegNo = regexp.MustCompile(`(?i)\b[JCF]\s*\d{1,2}/\d{1,6}/\d{4}\b`)

	reEUID = regexp.MustCompile(`(?i)\b(?:ROONRC\.[A-Z]\d+|[A-Z]{2,}\.?ONRC\.[A-Z]\d{1,2}/\d{3,8}/\d{4})\b`)

	reCapital = regexp.MustCompile(`(?i)\bcapital\s+social\s*:\s*([^;\n]+)`)

	reDocType = regexp.MustCompile(`(?i)(NOTIFICARE|HOT[ĂA]R[ÂA]RE|DECIZIE|ÎN[ȘS]TIIN[ȚT]ARE)`)

	reLegalSA  = regexp.MustCompile(`\bS\.?\s*A\.?\b`)
	reLegalSRL = regexp.MustCompile(`\bS\.?\s*R\.?\s*L\.?\b`)
	reLegalPFA = regexp.MustCompile(`\bP\.?\s*F\.?\s*A\.?\b`)
	reLegalSNC = regexp.MustCompile(`\bS\.?\s*N\.?\s*C\.?\b`)
)

// caenPatterns are the independent sources of activity codes. Their
// matches are unioned, deduplicated in first-seen order.
var caenPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	// List-formatted line: "0123 - description".
	{"listline", regexp.MustCompile(`(?m)^\s*(\d{4})\s*-\s+`)},
	// Inline mention: "grupa CAEN ... 0123".
	{"inline", regexp.MustCompile(`(?i)(?:CAEN|grupa\s+CAEN)\D+(\d{4})\b`)},
}

// addressTiers is the ordered fallback chain for the registered-office
// address; the first matching tier wins. RE2 has no lookahead, so the
// stop boundary is consumed rather than asserted; group 1 carries the
// address either way.
var addressTiers = []struct {
	name string
	re   *regexp.Regexp
}{
	{"colon", regexp.MustCompile(`(?i)\b(?:sediul\s+social|sediul)\s*:\s*([^;\n]+?)[,;]?\s*` + stopPhrases)},
	{"prepositional", regexp.MustCompile(`(?i)\bcu\s+sediul\s+social\s+(?:în|in)\s+([^;\n]+?)[,;]?\s*` + stopPhrases)},
	{"locality", regexp.MustCompile(`(?i)(?:^|\s)(în\s+(?:satul|municipiul|orașul|mun\.?|jud\.?|com\.)\s+[^;\n]+?)[,;]?\s*` + stopPhrases)},
}
