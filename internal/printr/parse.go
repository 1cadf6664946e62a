package printr

import (
	"regexp"
	"strings"
)

var (
	keyLine   = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*=>\s*(.*)$`)
	openLine  = regexp.MustCompile(`^\s*\(\s*$`)
	closeLine = regexp.MustCompile(`^\s*\)\s*$`)
	arrayLine = regexp.MustCompile(`^\s*Array\s*$`)
)

// NormalizeEntities unescapes the HTML entities that hide the
// "[key] => value" shape inside embedded page markup.
func NormalizeEntities(text string) string {
	r := strings.NewReplacer("&gt;", ">", "&lt;", "<", "&amp;", "&")
	return r.Replace(text)
}

// Parse deserializes a print_r dump into a Value tree. It never fails:
// malformed input yields an empty or partially populated tree, and
// callers must treat absent keys as "not found". Mappings whose keys are
// the dense integers 0..n-1 are canonicalized to sequences, recursively.
func Parse(text string) *Value {
	lines := splitLines(NormalizeEntities(text))
	if len(lines) == 0 {
		return NewMapping()
	}

	i := 0
	if arrayLine.MatchString(lines[i]) {
		i++
		if i < len(lines) && openLine.MatchString(lines[i]) {
			i++
		}
	}

	root := NewMapping()
	// Explicit frame stack instead of recursion: legal dumps can nest
	// deeply enough to threaten the call stack.
	stack := []*Value{root}

	for i < len(lines) {
		line := lines[i]

		if closeLine.MatchString(line) {
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
				i++
				continue
			}
			// Root closed; anything after it is ignored.
			break
		}

		m := keyLine.FindStringSubmatch(line)
		if m == nil {
			// Stray line at mapping level, skip.
			i++
			continue
		}
		key := strings.TrimSpace(m[1])
		rest := strings.TrimSpace(m[2])
		cur := stack[len(stack)-1]
		i++

		switch {
		case rest == "":
			// Value starts on the next line: either a nested Array or a
			// scalar accumulated until the next key or closing line.
			if i < len(lines) && arrayLine.MatchString(lines[i]) {
				i++
				if i < len(lines) && openLine.MatchString(lines[i]) {
					i++
				}
				child := NewMapping()
				cur.Set(key, child)
				stack = append(stack, child)
			} else {
				var scalar string
				scalar, i = scanScalar(lines, i, "")
				cur.Set(key, NewScalar(scalar))
			}
		case arrayLine.MatchString(rest):
			// "[k] => Array" forces mapping parsing even when the opening
			// parenthesis is missing.
			if i < len(lines) && openLine.MatchString(lines[i]) {
				i++
			}
			child := NewMapping()
			cur.Set(key, child)
			stack = append(stack, child)
		default:
			var scalar string
			scalar, i = scanScalar(lines, i, rest)
			cur.Set(key, NewScalar(scalar))
		}
	}

	return canonicalize(root)
}

// scanScalar accumulates continuation lines of a scalar value starting
// at index i, stopping before the next key or closing line. first is the
// text already captured on the key line itself (may be empty).
func scanScalar(lines []string, i int, first string) (string, int) {
	vals := make([]string, 0, 1)
	if first != "" {
		vals = append(vals, first)
	}
	for i < len(lines) && !keyLine.MatchString(lines[i]) && !closeLine.MatchString(lines[i]) {
		vals = append(vals, lines[i])
		i++
	}
	return strings.TrimSpace(strings.Join(vals, "\n")), i
}

// splitLines breaks text into right-trimmed, non-blank lines.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, " \t\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
