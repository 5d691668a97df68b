package format

import (
	"strings"
	"testing"
)

func TestDecorateBody_AnalysisHighlights(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "maintainability score",
			in:   "Maintainability score: 7/10 overall",
			want: "`Maintainability score: 7/10` overall",
		},
		{
			name: "complexity rating",
			in:   "Overall complexity: High due to nesting",
			want: "Overall `complexity: High` due to nesting",
		},
		{
			name: "risk level",
			in:   "Priority: HIGH for the router group",
			want: "Priority: **HIGH** for the router group",
		},
		{
			name: "lowercase risk words untouched",
			in:   "a high number of activities",
			want: "a high number of activities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decorateBody(tt.in, KindAnalysis)
			if got != tt.want {
				t.Errorf("decorateBody() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecorateBody_TestCasesNotHighlighted(t *testing.T) {
	in := "Maintainability score: 7/10 and risk HIGH"
	got := decorateBody(in, KindTestCases)
	if got != in {
		t.Errorf("test case bodies must not be decorated: %q", got)
	}
}

func TestDecorateBody_CollapsesBlankRuns(t *testing.T) {
	in := "first\n\n\n\n\nsecond"
	got := decorateBody(in, KindTestCases)
	if got != "first\n\nsecond" {
		t.Errorf("decorateBody() = %q", got)
	}
}

func TestDecorateBody_FenceUntouched(t *testing.T) {
	in := "Rating complexity: high\n```\ncomplexity: high\n\n\n\nHIGH\n```"
	got := decorateBody(in, KindAnalysis)

	if !strings.Contains(got, "`complexity: high`\n") {
		t.Errorf("prose line not highlighted: %q", got)
	}
	if !strings.Contains(got, "```\ncomplexity: high\n\n\n\nHIGH\n```") {
		t.Errorf("fence content altered: %q", got)
	}
}
