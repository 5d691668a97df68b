package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bwassist/bwassist/ai/llm"
)

func TestExporterRecordsGenerations(t *testing.T) {
	e := NewExporter(Config{Registry: prometheus.NewRegistry()})

	e.GenerationStarted()
	e.GenerationFinished("testcases", "ok", 1200*time.Millisecond, &llm.CallStats{
		PromptTokens:     100,
		CompletionTokens: 50,
		TotalTokens:      150,
	})
	e.GenerationStarted()
	e.GenerationFinished("analysis", "error", 30*time.Millisecond, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	e.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	for _, want := range []string{
		`bwassist_ai_generation_requests_total{status="ok",tool="testcases"} 1`,
		`bwassist_ai_generation_requests_total{status="error",tool="analysis"} 1`,
		`bwassist_ai_llm_tokens_total{tool="testcases",type="prompt"} 100`,
		`bwassist_ai_llm_tokens_total{tool="testcases",type="completion"} 50`,
		`bwassist_ai_generations_active 0`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
