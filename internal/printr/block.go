package printr

import (
	"regexp"
	"strings"
)

// TextBlock is a verbatim slice of dump text together with its line
// offsets in the scanned source ([Start, End) over the line sequence).
// Carving exact source slices keeps downstream regexes working even
// when the dump as a whole is not well-formed enough for Parse.
type TextBlock struct {
	Text  string
	Start int
	End   int
}

var (
	itemStart = regexp.MustCompile(`^\s*\[\d+\]\s*=>\s*Array\s*$`)
	anyKey    = regexp.MustCompile(`^\s*\[[A-Za-z0-9_]+\]\s*=>`)
)

// ExtractNamedBlock locates "[key] => Array" in raw dump text and
// returns the verbatim content between its opening parenthesis and the
// matching close, tolerating irregular nesting. It works line-by-line,
// independently of Parse, so it survives dumps where whole-tree parsing
// merges or loses sibling items.
func ExtractNamedBlock(text, key string) (TextBlock, bool) {
	lines := strings.Split(text, "\n")
	header := regexp.MustCompile(`\[` + regexp.QuoteMeta(key) + `\]\s*=>\s*Array\s*$`)

	for i, l := range lines {
		if !header.MatchString(l) {
			continue
		}
		j := i + 1
		for j < len(lines) && !openLine.MatchString(lines[j]) {
			j++
		}
		if j >= len(lines) {
			return TextBlock{}, false
		}
		j++
		start := j
		j = scanBalanced(lines, j)
		return TextBlock{
			Text:  strings.Join(lines[start:j-1], "\n"),
			Start: start,
			End:   j - 1,
		}, true
	}
	return TextBlock{}, false
}

// SplitTopLevelItems slices a block into its "[N] => Array" items,
// returning the exact source slice of each so that formatting needed by
// downstream scalar extraction is preserved.
func SplitTopLevelItems(blockText string) []TextBlock {
	lines := strings.Split(blockText, "\n")
	var items []TextBlock
	i := 0
	for i < len(lines) {
		if itemStart.MatchString(lines[i]) && i+1 < len(lines) && openLine.MatchString(lines[i+1]) {
			i += 2
			start := i
			i = scanBalanced(lines, i)
			items = append(items, TextBlock{
				Text:  strings.Join(lines[start:i-1], "\n"),
				Start: start,
				End:   i - 1,
			})
		} else {
			i++
		}
	}
	return items
}

// scanBalanced advances from just inside an opening parenthesis (depth
// 1) to the line after the matching close. An "Array" line immediately
// followed by "(" counts as one nesting increment.
func scanBalanced(lines []string, i int) int {
	depth := 1
	for i < len(lines) && depth > 0 {
		switch {
		case i+1 < len(lines) && arrayLine.MatchString(lines[i]) && openLine.MatchString(lines[i+1]):
			depth++
			i += 2
		case openLine.MatchString(lines[i]):
			depth++
			i++
		case closeLine.MatchString(lines[i]):
			depth--
			i++
		default:
			i++
		}
	}
	return i
}

// ExtractKeyBlock returns the value slice for "[key] => ..." within a
// flat item segment, up to the next "[otherKey] =>" line or end of
// segment. Internal newlines are preserved.
func ExtractKeyBlock(segment, key string) (string, bool) {
	segment = NormalizeEntities(segment)
	lines := strings.Split(segment, "\n")
	keyRe := regexp.MustCompile(`^\s*\[` + regexp.QuoteMeta(key) + `\]\s*=>\s*(.*)$`)

	for i, l := range lines {
		m := keyRe.FindStringSubmatch(l)
		if m == nil {
			continue
		}
		out := []string{m[1]}
		for j := i + 1; j < len(lines); j++ {
			if anyKey.MatchString(lines[j]) {
				break
			}
			out = append(out, lines[j])
		}
		return strings.Join(out, "\n"), true
	}
	return "", false
}

// Dedent strips the common leading space indentation across a
// multi-line capture and trims blank boundary lines, preserving
// internal line breaks and relative indentation. Embedded article text
// is itself indentation-sensitive, so only the shared margin goes.
func Dedent(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}

	pad := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		indent := len(l) - len(strings.TrimLeft(l, " "))
		if pad < 0 || indent < pad {
			pad = indent
		}
	}
	if pad <= 0 {
		return strings.Join(lines, "\n")
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		if len(l) >= pad {
			out[i] = l[pad:]
		} else {
			out[i] = l
		}
	}
	return strings.Join(out, "\n")
}
