// Package server wires the HTTP surface: the embedded frontend, the JSON
// API, health and metrics endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/bwassist/bwassist/ai/assistant"
	"github.com/bwassist/bwassist/ai/llm"
	"github.com/bwassist/bwassist/internal/metrics"
	"github.com/bwassist/bwassist/internal/profile"
	apiv1 "github.com/bwassist/bwassist/server/router/api/v1"
	"github.com/bwassist/bwassist/server/router/frontend"
)

type Server struct {
	Profile *profile.Profile

	echoServer *echo.Echo
}

func NewServer(ctx context.Context, instanceProfile *profile.Profile) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("http request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			)
			return nil
		},
	}))

	var llmService llm.Service
	if instanceProfile.IsAIEnabled() {
		svc, err := llm.NewService(&llm.Config{
			Provider:    instanceProfile.LLMProvider,
			Model:       instanceProfile.LLMModel,
			APIKey:      instanceProfile.LLMAPIKey,
			BaseURL:     instanceProfile.LLMBaseURL,
			MaxTokens:   instanceProfile.LLMMaxTokens,
			Temperature: instanceProfile.LLMTemperature,
			Timeout:     instanceProfile.LLMTimeout,
		})
		if err != nil {
			return nil, err
		}
		llmService = svc
		slog.Info("LLM service initialized",
			"provider", instanceProfile.LLMProvider,
			"model", instanceProfile.LLMModel,
		)

		// Warmup reduces first-request latency; best-effort only.
		go func() {
			warmupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			svc.Warmup(warmupCtx)
		}()
	} else {
		slog.Warn("no LLM API key configured, generation endpoints are disabled")
	}

	exporter := metrics.NewExporter(metrics.DefaultConfig())

	s := &Server{
		Profile:    instanceProfile,
		echoServer: e,
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "Service ready.")
	})
	e.GET("/metrics", echo.WrapHandler(exporter.Handler()))

	// One user action maps to one upstream LLM call; the per-client rate
	// limit keeps a single browser from hammering the paid API.
	rateLimiter := middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(2),
			Burst:     10,
			ExpiresIn: 3 * time.Minute,
		}),
	})

	apiService := apiv1.NewAPIV1Service(instanceProfile, assistant.New(llmService), exporter)
	apiService.RegisterRoutes(e.Group("/api/v1", rateLimiter))

	frontendService := frontend.NewFrontendService(instanceProfile)
	frontendService.Serve(ctx, e)

	return s, nil
}

// Start launches the HTTP listener in the background. Listen failures are
// logged rather than returned since binding happens asynchronously.
func (s *Server) Start(_ context.Context) error {
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	go func() {
		if err := s.echoServer.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start echo server", "error", err)
		}
	}()
	return nil
}

func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}

	slog.Info("server stopped")
}
