// Package v1 exposes the JSON API consumed by the embedded frontend.
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/bwassist/bwassist/ai/assistant"
	"github.com/bwassist/bwassist/internal/metrics"
	"github.com/bwassist/bwassist/internal/profile"
)

type APIV1Service struct {
	Profile   *profile.Profile
	Assistant *assistant.Assistant
	Metrics   *metrics.Exporter
}

func NewAPIV1Service(prof *profile.Profile, asst *assistant.Assistant, exporter *metrics.Exporter) *APIV1Service {
	return &APIV1Service{
		Profile:   prof,
		Assistant: asst,
		Metrics:   exporter,
	}
}

// RegisterRoutes mounts the v1 API on the given echo group.
func (s *APIV1Service) RegisterRoutes(g *echo.Group) {
	g.GET("/instance", s.GetInstance)
	g.GET("/models", s.ListModels)
	g.POST("/testcases", s.GenerateTestCases)
	g.POST("/analysis", s.AnalyzeCode)
}
