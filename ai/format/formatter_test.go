package format

import (
	"strings"
	"testing"
)

func TestFormatText_NeverEmpty(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"\n\n\n",
		"plain text",
		"# Heading only",
		"```\nunclosed fence",
	}
	for _, in := range inputs {
		for _, kind := range []Kind{KindTestCases, KindAnalysis} {
			doc := FormatText(in, kind)
			if len(doc.Sections) == 0 {
				t.Errorf("FormatText(%q, %v) produced an empty document", in, kind)
			}
		}
	}
}

func TestFormatText_PlainParagraphFallback(t *testing.T) {
	doc := FormatText("Just a plain paragraph of analysis text.", KindAnalysis)
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
	s := doc.Sections[0]
	if s.Title != KindAnalysis.DefaultTitle() {
		t.Errorf("title = %q, want default %q", s.Title, KindAnalysis.DefaultTitle())
	}
	if s.Body != "Just a plain paragraph of analysis text." {
		t.Errorf("body = %q", s.Body)
	}
}

func TestFormatText_EmptyInput(t *testing.T) {
	doc := FormatText("", KindTestCases)
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
	if doc.Sections[0].Title != KindTestCases.DefaultTitle() {
		t.Errorf("title = %q, want default", doc.Sections[0].Title)
	}
	if doc.Sections[0].Body != "" {
		t.Errorf("body = %q, want empty", doc.Sections[0].Body)
	}
}

func TestFormatText_TestCaseMarkers(t *testing.T) {
	raw := "Test Case 1: Login\nSteps for login...\n\nTest Case 2: Logout\nSteps for logout..."
	doc := FormatText(raw, KindTestCases)

	if len(doc.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(doc.Sections), doc.Sections)
	}
	if doc.Sections[0].Title != "Test Case 1: Login" {
		t.Errorf("section 0 title = %q", doc.Sections[0].Title)
	}
	if !strings.Contains(doc.Sections[0].Body, "Steps for login") {
		t.Errorf("section 0 body = %q", doc.Sections[0].Body)
	}
	if doc.Sections[1].Title != "Test Case 2: Logout" {
		t.Errorf("section 1 title = %q", doc.Sections[1].Title)
	}
	if !strings.Contains(doc.Sections[1].Body, "Steps for logout") {
		t.Errorf("section 1 body = %q", doc.Sections[1].Body)
	}
}

func TestFormatText_FenceIsAtomic(t *testing.T) {
	raw := "# Overview\nsome intro\n```\ndef f(): pass\n# not a heading\n```\n# Details\nmore text"
	doc := FormatText(raw, KindTestCases)

	if len(doc.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(doc.Sections), doc.Sections)
	}
	if doc.Sections[0].Title != "Overview" || doc.Sections[1].Title != "Details" {
		t.Errorf("titles = %q, %q", doc.Sections[0].Title, doc.Sections[1].Title)
	}
	if !strings.Contains(doc.Sections[0].Body, "# not a heading") {
		t.Errorf("fence content split out of section body: %q", doc.Sections[0].Body)
	}
}

func TestFormatText_UnclosedFence(t *testing.T) {
	raw := "# Setup\nbefore\n```xml\n<pd:ProcessDefinition>\n# still inside\nno closing marker"
	doc := FormatText(raw, KindTestCases)

	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d: %+v", len(doc.Sections), doc.Sections)
	}
	body := doc.Sections[0].Body
	for _, want := range []string{"<pd:ProcessDefinition>", "# still inside", "no closing marker"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q: %q", want, body)
		}
	}
}

func TestFormatText_HeadingBeatsNumberedList(t *testing.T) {
	// Plain numbered steps inside a test case must not become sections;
	// only bolded numbered titles and headings segment.
	raw := "## Test Steps\n1. Open the process\n2. Send the payload\n3. Assert the reply"
	doc := FormatText(raw, KindTestCases)

	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d: %+v", len(doc.Sections), doc.Sections)
	}
	if doc.Sections[0].Title != "Test Steps" {
		t.Errorf("title = %q", doc.Sections[0].Title)
	}
	for _, step := range []string{"1. Open", "2. Send", "3. Assert"} {
		if !strings.Contains(doc.Sections[0].Body, step) {
			t.Errorf("body missing %q", step)
		}
	}
}

func TestFormatText_NumberedBoldTitles(t *testing.T) {
	raw := "1. **Test Case Overview**\nA summary.\n\n2. **Input Data Sets:**\nValues here."
	doc := FormatText(raw, KindTestCases)

	if len(doc.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(doc.Sections), doc.Sections)
	}
	if doc.Sections[0].Title != "1. Test Case Overview" {
		t.Errorf("section 0 title = %q", doc.Sections[0].Title)
	}
	if doc.Sections[1].Title != "2. Input Data Sets" {
		t.Errorf("section 1 title = %q", doc.Sections[1].Title)
	}
}

func TestFormatText_LabelColonParagraphStart(t *testing.T) {
	raw := "Edge Cases:\n- empty payload\n- oversized payload\n\nNot a label: because this line sits mid-paragraph\ncontinues here"
	doc := FormatText(raw, KindTestCases)

	if len(doc.Sections) < 1 {
		t.Fatal("no sections")
	}
	if doc.Sections[0].Title != "Edge Cases" {
		t.Errorf("section 0 title = %q", doc.Sections[0].Title)
	}
	// "Not a label: ..." has trailing text after the colon, so it stays body.
	joined := ""
	for _, s := range doc.Sections {
		joined += s.Title + "\n" + s.Body + "\n"
	}
	if !strings.Contains(joined, "because this line sits mid-paragraph") {
		t.Errorf("label-colon false positive swallowed content: %q", joined)
	}
}

func TestFormatText_PreambleKept(t *testing.T) {
	raw := "Here is what I found.\n\n# Findings\ndetail"
	doc := FormatText(raw, KindAnalysis)

	if len(doc.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(doc.Sections), doc.Sections)
	}
	if doc.Sections[0].Title != "" {
		t.Errorf("preamble title = %q, want empty", doc.Sections[0].Title)
	}
	if !strings.Contains(doc.Sections[0].Body, "Here is what I found.") {
		t.Errorf("preamble body = %q", doc.Sections[0].Body)
	}
}

// alnum projects a string onto its letters and digits, which is what the
// losslessness contract guarantees survives formatting (marker syntax and
// whitespace may be rearranged, content may not disappear).
func alnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestFormatText_Lossless(t *testing.T) {
	inputs := []string{
		"Test Case 1: Login\nSteps...\nTest Case 2: Logout\nSteps...",
		"# Overview\n```\ndef f(): pass\n# not a heading\n```\n# Details\ntail",
		"no structure at all, just prose with numbers 1 2 3",
		"1. **Bold Title**\nbody\n\n\n\n\nlots of blank lines above",
		"```xml\n<unclosed>\n",
		"Edge Cases:\n- a\n- b",
		"prefix\n## mid\nsuffix",
	}
	for _, in := range inputs {
		for _, kind := range []Kind{KindTestCases, KindAnalysis} {
			doc := FormatText(in, kind)
			var out strings.Builder
			for _, s := range doc.Sections {
				out.WriteString(s.Title)
				out.WriteString("\n")
				out.WriteString(s.Body)
				out.WriteString("\n")
			}
			got, want := alnum(out.String()), alnum(in)
			if got != want {
				// Unstructured input picks up the default title; that is the
				// only text the formatter may add.
				stripped := strings.Replace(got, alnum(kind.DefaultTitle()), "", 1)
				if stripped != want {
					t.Errorf("content changed for %q (%v): got %q, want %q", in, kind, got, want)
				}
			}
		}
	}
}
