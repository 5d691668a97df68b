// Package assistant builds the TIBCO BusinessWorks prompts and drives the
// LLM for the two tools the UI offers: test case generation and code
// complexity analysis.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/bwassist/bwassist/ai/llm"
	"github.com/bwassist/bwassist/internal/util"
)

// ErrEmptyInput is returned when no code was submitted. It is rejected
// before any network call is made.
var ErrEmptyInput = errors.New("no TIBCO code provided")

// Defaults mirroring the UI selector options.
var (
	DefaultTestTypes     = []string{"Happy Path", "Edge Cases", "Error Handling"}
	DefaultAnalysisAreas = []string{"Cyclomatic Complexity", "Dependency Analysis", "Anti-pattern Detection"}
)

const (
	defaultComplexityLevel = "Intermediate"
	defaultDetailLevel     = "Detailed"

	testCaseTemperature = 0.3
	analysisTemperature = 0.2
	fullMaxTokens       = 4000
	chunkMaxTokens      = 3000

	// Cap on concurrent per-chunk LLM calls for one request.
	maxChunkConcurrency = 2
)

// TestCaseRequest carries the user input for test case generation.
type TestCaseRequest struct {
	Code            string
	Model           string // optional, falls back to the configured default
	TestTypes       []string
	ComplexityLevel string
}

// AnalysisRequest carries the user input for complexity analysis.
type AnalysisRequest struct {
	Code          string
	Model         string
	AnalysisAreas []string
	DetailLevel   string
}

// Result is the raw LLM output for one user-initiated action.
type Result struct {
	GenerationID string
	Text         string
	Stats        *llm.CallStats
	Chunked      bool
}

// Assistant drives the LLM for both tools. It is constructed once at
// startup and handed to the API layer explicitly.
type Assistant struct {
	llm llm.Service
}

func New(svc llm.Service) *Assistant {
	return &Assistant{llm: svc}
}

// GenerateTestCases produces test case text for the submitted code. Large
// inputs are split into chunks, prompted separately, and recombined.
func (a *Assistant) GenerateTestCases(ctx context.Context, req *TestCaseRequest) (*Result, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, ErrEmptyInput
	}

	testTypes := req.TestTypes
	if len(testTypes) == 0 {
		testTypes = DefaultTestTypes
	}
	complexityLevel := req.ComplexityLevel
	if complexityLevel == "" {
		complexityLevel = defaultComplexityLevel
	}

	prompts := promptSet{
		system: testCaseSystemPrompt,
		full: func(c string) string {
			return testCasePrompt(c, testTypes, complexityLevel)
		},
		chunk: func(part, total int, c string) string {
			return testCaseChunkPrompt(part, total, c, testTypes, complexityLevel)
		},
		temperature: testCaseTemperature,
	}

	return a.run(ctx, "testcases", code, req.Model, prompts)
}

// AnalyzeCode produces a complexity analysis for the submitted code.
func (a *Assistant) AnalyzeCode(ctx context.Context, req *AnalysisRequest) (*Result, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, ErrEmptyInput
	}

	areas := req.AnalysisAreas
	if len(areas) == 0 {
		areas = DefaultAnalysisAreas
	}
	detailLevel := req.DetailLevel
	if detailLevel == "" {
		detailLevel = defaultDetailLevel
	}

	prompts := promptSet{
		system: analysisSystemPrompt,
		full: func(c string) string {
			return analysisPrompt(c, areas, detailLevel)
		},
		chunk: func(part, total int, c string) string {
			return analysisChunkPrompt(part, total, c, areas, detailLevel)
		},
		temperature: analysisTemperature,
	}

	return a.run(ctx, "analysis", code, req.Model, prompts)
}

// promptSet bundles the full and per-chunk prompt builders for one tool.
type promptSet struct {
	system      string
	full        func(code string) string
	chunk       func(part, total int, code string) string
	temperature float32
}

func (a *Assistant) run(ctx context.Context, tool, code, model string, prompts promptSet) (*Result, error) {
	generationID := shortuuid.New()
	startTime := time.Now()

	slog.Info("assistant: request started",
		"tool", tool,
		"generation_id", generationID,
		"model", model,
		"code_length", len(code),
	)
	slog.Debug("assistant: input preview", "code", util.TruncateString(code, 200))

	if len(code) <= chunkThreshold {
		messages := []llm.Message{
			llm.SystemPrompt(prompts.system),
			llm.UserMessage(prompts.full(code)),
		}
		text, stats, err := a.llm.Chat(ctx, messages, llm.Options{
			Model:       model,
			MaxTokens:   fullMaxTokens,
			Temperature: prompts.temperature,
		})
		if err != nil {
			slog.Error("assistant: request failed", "tool", tool, "generation_id", generationID, "error", err)
			return nil, errors.Wrapf(err, "%s generation failed", tool)
		}

		slog.Info("assistant: request completed",
			"tool", tool,
			"generation_id", generationID,
			"duration_ms", time.Since(startTime).Milliseconds(),
		)
		return &Result{GenerationID: generationID, Text: text, Stats: stats}, nil
	}

	chunks := splitChunks(code, chunkSize)
	slog.Info("assistant: input exceeds chunk threshold, splitting",
		"tool", tool,
		"generation_id", generationID,
		"chunks", len(chunks),
	)

	texts := make([]string, len(chunks))
	statsList := make([]*llm.CallStats, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxChunkConcurrency)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			messages := []llm.Message{
				llm.SystemPrompt(prompts.system),
				llm.UserMessage(prompts.chunk(i+1, len(chunks), chunk)),
			}
			text, stats, err := a.llm.Chat(gctx, messages, llm.Options{
				Model:       model,
				MaxTokens:   chunkMaxTokens,
				Temperature: prompts.temperature,
			})
			if err != nil {
				return errors.Wrapf(err, "chunk %d/%d failed", i+1, len(chunks))
			}
			texts[i] = text
			statsList[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("assistant: chunked request failed", "tool", tool, "generation_id", generationID, "error", err)
		return nil, errors.Wrapf(err, "%s generation failed", tool)
	}

	combined := combineChunkResults(texts)
	total := &llm.CallStats{}
	for _, s := range statsList {
		if s == nil {
			continue
		}
		total.PromptTokens += s.PromptTokens
		total.CompletionTokens += s.CompletionTokens
		total.TotalTokens += s.TotalTokens
	}
	total.TotalDurationMs = time.Since(startTime).Milliseconds()

	slog.Info("assistant: chunked request completed",
		"tool", tool,
		"generation_id", generationID,
		"chunks", len(chunks),
		"duration_ms", total.TotalDurationMs,
	)
	return &Result{GenerationID: generationID, Text: combined, Stats: total, Chunked: true}, nil
}

// combineChunkResults stitches per-chunk responses back into one document,
// keeping input order.
func combineChunkResults(texts []string) string {
	var b strings.Builder
	for i, text := range texts {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "# Part %d of %d\n\n", i+1, len(texts))
		b.WriteString(strings.TrimSpace(text))
	}
	return b.String()
}
