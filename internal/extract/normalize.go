package extract

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRe = regexp.MustCompile(`[ \t]+`)

	// A line that carries a label but no value, e.g. "Acquisition Protocol:"
	// or "DLP =". PDF text extraction strands these at a column boundary
	// with the value on the following line.
	danglingLabelRe = regexp.MustCompile(`(?m)^[A-Za-z][A-Za-z0-9 '()/\-]*[:=]$`)
)

// Normalize collapses the irregular whitespace produced by linearizing a
// multi-column PDF layout. Runs of spaces and tabs inside a line become a
// single space, trailing space is dropped, and a label stranded at the end
// of a column is rejoined with the value that follows it on the next line.
// Normalization is best-effort: malformed input passes through with only
// whitespace collapsing, and the function never fails.
func Normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(innerSpaceRe.ReplaceAllString(line, " "), " ")
	}

	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if danglingLabelRe.MatchString(line) {
			// Rejoin with the next non-empty line, if any.
			j := i + 1
			for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
				j++
			}
			if j < len(lines) {
				out = append(out, line+" "+strings.TrimSpace(lines[j]))
				i = j
				continue
			}
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
