// Package textutil holds small text normalization helpers shared by the
// extraction stages.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	spacesRe   = regexp.MustCompile(`[ \t]+`)
	newlinesRe = regexp.MustCompile(`\n{2,}`)
	slugDropRe = regexp.MustCompile(`[^A-Za-z0-9\-_.\s]`)
	wsRe       = regexp.MustCompile(`\s+`)
)

// Clean normalizes whitespace in extracted page text: non-breaking
// spaces become regular spaces, runs of spaces/tabs collapse to one
// space, blank-line runs collapse to a single newline.
func Clean(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = spacesRe.ReplaceAllString(s, " ")
	s = newlinesRe.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// FoldDiacritics strips combining marks so that Romanian diacritics
// (ă, â, î, ș, ț) survive slug generation as their ASCII base letters.
func FoldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slug builds a filesystem-safe file name fragment from a company name.
// Falls back to "entry" when nothing survives.
func Slug(name string, maxLen int) string {
	s := FoldDiacritics(name)
	s = slugDropRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = wsRe.ReplaceAllString(s, "_")
	if maxLen > 0 && len(s) > maxLen {
		s = s[:maxLen]
	}
	s = strings.Trim(s, "_")
	if s == "" {
		return "entry"
	}
	return s
}

// CompactSlug lowercases and removes all whitespace, the naming scheme
// used for dump-extracted article files.
func CompactSlug(name string) string {
	if strings.TrimSpace(name) == "" {
		return "unknown"
	}
	s := strings.ToLower(name)
	return wsRe.ReplaceAllString(s, "")
}
