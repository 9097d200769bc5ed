package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Annapoorna04/HiperAI/internal/api"
	"github.com/Annapoorna04/HiperAI/internal/api/middleware"
	"github.com/Annapoorna04/HiperAI/internal/setup"
	"github.com/Annapoorna04/HiperAI/internal/setup/logger"
)

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "HiperAI Job Description API",
			Description: "AI-generated job descriptions behind a guardrail pipeline",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "generate", Description: "Job description generation"}},
	}
}

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx := context.Background()

	cfg := setup.LoadConfig()
	appLogger := logger.New(cfg.LogLevel)

	deps, err := setup.Wire(ctx, cfg, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	// Evict idle rate-limit windows in the background
	if deps.RateLimiter != nil {
		interval := time.Duration(cfg.SweepIntervalSecs) * time.Second
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for range ticker.C {
				removed := deps.RateLimiter.Sweep()
				if removed > 0 {
					appLogger.Debug().Int("removed", removed).Msg("swept idle rate-limit clients")
				}
			}
		}()
	}

	// API
	handler := api.NewHandler(deps.Pipeline, &appLogger)
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	// OpenAPI doc service
	openAPIConfig := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/api/v1/openapi.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(openAPIConfig))

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: splitOrigins(cfg.CORSOrigins),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	// Server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("address", addr).Str("provider", cfg.Provider).Msg("Starting Job Description API")

	server := http.Server{
		Addr:    addr,
		Handler: corsHandler.Handler(container),
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
