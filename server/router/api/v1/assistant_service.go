package v1

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bwassist/bwassist/ai/assistant"
	"github.com/bwassist/bwassist/ai/format"
	"github.com/bwassist/bwassist/ai/llm"
)

// InstanceResponse describes the running service to the frontend.
type InstanceResponse struct {
	Version   string `json:"version"`
	Mode      string `json:"mode"`
	Provider  string `json:"provider"`
	AIEnabled bool   `json:"aiEnabled"`
}

// ModelsResponse lists the selectable models for the configured provider.
type ModelsResponse struct {
	Models  []string `json:"models"`
	Default string   `json:"default"`
}

// GenerateRequest is the shared request shape of both tools. Unused
// selector fields are simply ignored by the other tool.
type GenerateRequest struct {
	Code            string   `json:"code"`
	Model           string   `json:"model"`
	TestTypes       []string `json:"testTypes"`
	ComplexityLevel string   `json:"complexityLevel"`
	AnalysisAreas   []string `json:"analysisAreas"`
	DetailLevel     string   `json:"detailLevel"`
}

// SectionPayload is one display section. Body is the markdown source, HTML
// the pre-rendered display form.
type SectionPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	HTML  string `json:"html"`
}

// GenerateResponse carries the formatted document for one generation.
type GenerateResponse struct {
	GenerationID string           `json:"generationId"`
	Model        string           `json:"model"`
	Chunked      bool             `json:"chunked"`
	Sections     []SectionPayload `json:"sections"`
	Stats        *llm.CallStats   `json:"stats,omitempty"`
}

func (s *APIV1Service) GetInstance(c echo.Context) error {
	return c.JSON(http.StatusOK, &InstanceResponse{
		Version:   s.Profile.Version,
		Mode:      s.Profile.Mode,
		Provider:  s.Profile.LLMProvider,
		AIEnabled: s.Profile.IsAIEnabled(),
	})
}

func (s *APIV1Service) ListModels(c echo.Context) error {
	return c.JSON(http.StatusOK, &ModelsResponse{
		Models:  s.Profile.Models(),
		Default: s.Profile.LLMModel,
	})
}

// GenerateTestCases handles POST /api/v1/testcases.
func (s *APIV1Service) GenerateTestCases(c echo.Context) error {
	req, err := s.bindGenerateRequest(c)
	if err != nil {
		return err
	}

	startTime := time.Now()
	s.Metrics.GenerationStarted()

	result, err := s.Assistant.GenerateTestCases(c.Request().Context(), &assistant.TestCaseRequest{
		Code:            req.Code,
		Model:           req.Model,
		TestTypes:       req.TestTypes,
		ComplexityLevel: req.ComplexityLevel,
	})
	if err != nil {
		s.Metrics.GenerationFinished("testcases", "error", time.Since(startTime), nil)
		return mapAssistantError(err)
	}
	s.Metrics.GenerationFinished("testcases", "ok", time.Since(startTime), result.Stats)

	return c.JSON(http.StatusOK, buildGenerateResponse(result, req.Model, format.KindTestCases))
}

// AnalyzeCode handles POST /api/v1/analysis.
func (s *APIV1Service) AnalyzeCode(c echo.Context) error {
	req, err := s.bindGenerateRequest(c)
	if err != nil {
		return err
	}

	startTime := time.Now()
	s.Metrics.GenerationStarted()

	result, err := s.Assistant.AnalyzeCode(c.Request().Context(), &assistant.AnalysisRequest{
		Code:          req.Code,
		Model:         req.Model,
		AnalysisAreas: req.AnalysisAreas,
		DetailLevel:   req.DetailLevel,
	})
	if err != nil {
		s.Metrics.GenerationFinished("analysis", "error", time.Since(startTime), nil)
		return mapAssistantError(err)
	}
	s.Metrics.GenerationFinished("analysis", "ok", time.Since(startTime), result.Stats)

	return c.JSON(http.StatusOK, buildGenerateResponse(result, req.Model, format.KindAnalysis))
}

func (s *APIV1Service) bindGenerateRequest(c echo.Context) (*GenerateRequest, error) {
	if !s.Profile.IsAIEnabled() {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "AI is not configured: set BWASSIST_AI_LLM_API_KEY")
	}

	req := &GenerateRequest{}
	if err := c.Bind(req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	if req.Model == "" {
		req.Model = s.Profile.LLMModel
	} else if !s.isKnownModel(req.Model) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unknown model: "+req.Model)
	}
	return req, nil
}

func (s *APIV1Service) isKnownModel(model string) bool {
	for _, m := range s.Profile.Models() {
		if m == model {
			return true
		}
	}
	return false
}

// mapAssistantError translates assistant failures into HTTP errors. Input
// errors are the caller's fault; everything else is the upstream AI
// service failing and is surfaced verbatim without retry.
func mapAssistantError(err error) error {
	if errors.Is(err, assistant.ErrEmptyInput) {
		return echo.NewHTTPError(http.StatusBadRequest, "please provide TIBCO code/XML to process")
	}
	slog.Error("api: generation failed", "error", err)
	return echo.NewHTTPError(http.StatusBadGateway, "AI service error: "+err.Error())
}

func buildGenerateResponse(result *assistant.Result, model string, kind format.Kind) *GenerateResponse {
	doc := format.FormatText(result.Text, kind)

	sections := make([]SectionPayload, 0, len(doc.Sections))
	for _, sec := range doc.Sections {
		sections = append(sections, SectionPayload{
			Title: sec.Title,
			Body:  sec.Body,
			HTML:  renderHTML(sec.Body),
		})
	}

	return &GenerateResponse{
		GenerationID: result.GenerationID,
		Model:        model,
		Chunked:      result.Chunked,
		Sections:     sections,
		Stats:        result.Stats,
	}
}
