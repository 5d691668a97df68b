package format

import (
	"regexp"
	"strings"
)

// Heading-like marker patterns, in precedence order. A markdown heading wins
// over everything else so that numbered steps nested under a test case are
// not mistaken for new top-level sections.
var (
	headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*$`)

	// Bolded numbered titles like "3. **Expected Results**", optionally with
	// a trailing colon. The closing ** must end the line, otherwise this is
	// ordinary emphasis inside a sentence.
	numberedBoldRe = regexp.MustCompile(`^(\d+)\.\s*\*\*(.+?)\*\*\s*:?\s*$`)

	// "Test Case 1: Login", "Scenario 2", "**Test Case 3** - Timeout", ...
	testCaseRe = regexp.MustCompile(`(?i)^(?:\*\*)?\s*((?:test\s+case|scenario)\s+\d+\b.*?)\s*$`)

	// Short label line ending in a colon, e.g. "Edge Cases:". Only counts at
	// the start of a paragraph; enforced by the caller via prevBlank.
	labelColonRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 \t/&()'._-]{0,78}):\s*$`)

	fenceRe = regexp.MustCompile("^(```|~~~)")
)

// markerTitle reports whether line is a segmentation point and, if so, the
// section title it carries. prevBlank tells whether the line starts a new
// paragraph, which gates the label-colon pattern.
func markerTitle(line string, prevBlank bool) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}

	if m := headingRe.FindStringSubmatch(trimmed); m != nil {
		return cleanTitle(m[2]), true
	}
	if m := numberedBoldRe.FindStringSubmatch(trimmed); m != nil {
		return m[1] + ". " + cleanTitle(m[2]), true
	}
	if m := testCaseRe.FindStringSubmatch(trimmed); m != nil {
		return cleanTitle(m[1]), true
	}
	if prevBlank {
		if m := labelColonRe.FindStringSubmatch(trimmed); m != nil {
			return cleanTitle(m[1]), true
		}
	}
	return "", false
}

// cleanTitle strips residual markdown emphasis and trailing punctuation from
// a marker line so the title reads cleanly.
func cleanTitle(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "**")
	s = strings.TrimSuffix(s, "**")
	s = strings.ReplaceAll(s, "**", "")
	s = strings.TrimSuffix(s, ":")
	return strings.TrimSpace(s)
}

// segment splits raw text into sections at heading-like markers. Fenced code
// blocks (``` or ~~~) are atomic: marker patterns are ignored inside them,
// and an unclosed fence is treated as closed at end of input.
func segment(raw string) []Section {
	lines := strings.Split(raw, "\n")

	var sections []Section
	current := Section{}
	var body []string

	flush := func() {
		current.Body = strings.Join(body, "\n")
		sections = append(sections, current)
		current = Section{}
		body = body[:0]
	}

	inFence := false
	fenceDelim := ""
	prevBlank := true

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if inFence {
			body = append(body, line)
			if strings.HasPrefix(trimmed, fenceDelim) {
				inFence = false
			}
			prevBlank = false
			continue
		}

		if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
			inFence = true
			fenceDelim = m[1]
			body = append(body, line)
			prevBlank = false
			continue
		}

		if title, ok := markerTitle(line, prevBlank); ok {
			flush()
			current.Title = title
		} else {
			body = append(body, line)
		}
		prevBlank = trimmed == ""
	}
	flush()

	return sections
}
