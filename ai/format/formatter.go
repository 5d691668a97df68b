// Package format turns free-form AI response text into an ordered set of
// titled sections ready for display. The AI output has no guaranteed
// structure, so segmentation is pattern-based and total: any input string,
// including the empty string, produces at least one section.
package format

import "strings"

// Kind identifies which prompt family produced the raw text. It only
// affects the default section title used for unstructured input and which
// display decorations are applied.
type Kind string

const (
	KindTestCases Kind = "test_cases"
	KindAnalysis  Kind = "analysis"
)

// Section is a titled span of a formatted document. The body may contain
// fenced code blocks, which are kept verbatim.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Document is an ordered sequence of sections ready for display.
type Document struct {
	Kind     Kind      `json:"kind"`
	Sections []Section `json:"sections"`
}

// DefaultTitle returns the section title used when the raw text has no
// recognizable structure.
func (k Kind) DefaultTitle() string {
	if k == KindAnalysis {
		return "Complexity Analysis"
	}
	return "Generated Test Cases"
}

// FormatText converts raw AI output into a Document. It never fails:
// unparsable input degrades to a single section carrying the whole text.
//
// Segmentation points are heading-like lines (markdown headings, bolded
// numbered titles, "Test Case N" / "Scenario N" markers, and label lines
// ending in a colon at the start of a paragraph). Fenced code blocks are
// atomic: nothing inside a fence starts a new section, and an unclosed
// fence runs to the end of the input.
func FormatText(raw string, kind Kind) *Document {
	sections := segment(raw)

	// Keep only sections that still carry content after trimming.
	kept := make([]Section, 0, len(sections))
	for _, s := range sections {
		s.Title = strings.TrimSpace(s.Title)
		s.Body = strings.TrimSpace(s.Body)
		if s.Title == "" && s.Body == "" {
			continue
		}
		kept = append(kept, s)
	}

	if len(kept) == 0 {
		kept = []Section{{Title: kind.DefaultTitle(), Body: strings.TrimSpace(raw)}}
	} else if len(kept) == 1 && kept[0].Title == "" {
		// No segmentation points found: single-section fallback.
		kept[0].Title = kind.DefaultTitle()
	}

	for i := range kept {
		kept[i].Body = decorateBody(kept[i].Body, kind)
	}

	return &Document{Kind: kind, Sections: kept}
}
