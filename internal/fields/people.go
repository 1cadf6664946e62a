package fields

import (
	"regexp"
	"strings"

	"github.com/mpopescu/gazex/internal/model"
)

var (
	reAdminBlock   = regexp.MustCompile(`(?is)\badministrator[i]?\s*[:\-]\s*(?:\d+\.\s*)?(.+?)(?:;|\.?\s*$|\n-|\n\d+\.)`)
	reFounderBlock = regexp.MustCompile(`(?is)\bfondator[i]?\s*[:\-]\s*(?:\d+\.\s*)?(.+?)(?:;|\.?\s*$|\n-|\n\d+\.)`)

	reSplitNames = regexp.MustCompile(`(?i)\s*,\s*|\s*;\s*|\s+(?:și|si)\s+`)
	rePersonLike = regexp.MustCompile(`^\s*(?:\d+\.\s*)?([A-ZĂÂÎȘȚ][A-Za-zĂÂÎȘȚăâîșț'\-]+(?:\s+[A-ZĂÂÎȘȚ][A-Za-zĂÂÎȘȚăâîșț'\-]+)+)\s*$`)
	reLeadingNum = regexp.MustCompile(`^\d+\.\s*`)
)

// dropTokens mark fragments of officer blocks that are role or address
// boilerplate, not person names.
var dropTokens = []string{
	"puteri conferite: depline", "exercitate separat", "exercitate împreună", "exercitate impreuna",
	"cu domiciliul în", "domiciliul în", "domiciliat în", "sectorul", "strada", "str.", "scara", "etaj", "ap.",
}

// extractOwnership pulls administrator and founder names from their
// labelled blocks.
func extractOwnership(text string) model.Ownership {
	return model.Ownership{
		Administrators: peopleFromBlock(text, reAdminBlock),
		Associates:     peopleFromBlock(text, reFounderBlock),
	}
}

func peopleFromBlock(text string, block *regexp.Regexp) []model.Person {
	m := block.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	names := splitPeople(m[1])
	people := make([]model.Person, 0, len(names))
	for _, n := range names {
		people = append(people, model.Person{Name: n})
	}
	return people
}

// splitPeople splits a raw officer block on list separators, keeps only
// person-shaped fragments and deduplicates case-insensitively.
func splitPeople(raw string) []string {
	parts := reSplitNames.Split(raw, -1)
	seen := make(map[string]bool)
	var out []string
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), ";.,")
		if p == "" {
			continue
		}
		low := strings.ToLower(p)
		if containsAny(low, dropTokens) {
			continue
		}
		m := rePersonLike.FindStringSubmatch(p)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(reLeadingNum.ReplaceAllString(m[1], ""))
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
