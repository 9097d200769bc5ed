package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Annapoorna04/HiperAI/internal/config"
	"github.com/Annapoorna04/HiperAI/internal/generator"
	"github.com/Annapoorna04/HiperAI/internal/guardrails"
	"github.com/Annapoorna04/HiperAI/internal/llm"
	"github.com/Annapoorna04/HiperAI/internal/llm/bedrock"
	"github.com/Annapoorna04/HiperAI/internal/llm/ollama"
	"github.com/Annapoorna04/HiperAI/internal/pipeline"
	"github.com/rs/zerolog"
)

type Config struct {
	Port                 string
	RateLimitMaxRequests int
	RateLimitWindowSecs  int
	SweepIntervalSecs    int
	InputMinLength       int
	InputMaxLength       int
	OutputMinLength      int
	OutputMaxLength      int

	EnableRateLimiting     bool
	EnableInputValidation  bool
	EnableContentFiltering bool
	EnableOutputValidation bool

	ModelName        string
	ModelTemperature float64
	ModelTimeoutSecs int
	ModelMaxTokens   int
	OllamaBaseURL    string
	Provider         string
	AWSRegion        string
	BedrockModelID   string

	CORSOrigins string
	LogLevel    string
}

type Dependencies struct {
	Pipeline    *pipeline.Pipeline
	RateLimiter *guardrails.RateLimiter
	Logger      *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Port:                 getEnv("JD_API_PORT", "18080"),
		RateLimitMaxRequests: getEnvInt("RATE_LIMIT_MAX_REQUESTS", 10),
		RateLimitWindowSecs:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		SweepIntervalSecs:    getEnvInt("RATE_LIMIT_SWEEP_INTERVAL_SECONDS", 300),
		InputMinLength:       getEnvInt("INPUT_MIN_LENGTH", 10),
		InputMaxLength:       getEnvInt("INPUT_MAX_LENGTH", 2000),
		OutputMinLength:      getEnvInt("OUTPUT_MIN_LENGTH", 100),
		OutputMaxLength:      getEnvInt("OUTPUT_MAX_LENGTH", 5000),

		EnableRateLimiting:     getEnvBool("ENABLE_RATE_LIMITING", true),
		EnableInputValidation:  getEnvBool("ENABLE_INPUT_VALIDATION", true),
		EnableContentFiltering: getEnvBool("ENABLE_CONTENT_FILTERING", true),
		EnableOutputValidation: getEnvBool("ENABLE_OUTPUT_VALIDATION", true),

		ModelName:        getEnv("AI_MODEL_NAME", "mistral"),
		ModelTemperature: getEnvFloat("AI_MODEL_TEMPERATURE", 0.3),
		ModelTimeoutSecs: getEnvInt("AI_MODEL_TIMEOUT", 60),
		ModelMaxTokens:   getEnvInt("AI_MODEL_MAX_TOKENS", 1500),
		OllamaBaseURL:    getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		Provider:         getEnv("LLM_PROVIDER", "ollama"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		BedrockModelID:   getEnv("BEDROCK_MODEL_ID", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// Wire builds the guardrail pipeline from configuration. The ENABLE_*
// toggles control which pre-generation stages are registered; the stage
// order itself is fixed: rate limit, input validation, content filter,
// sanitize.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	policy, err := config.LoadPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to load guardrail policy: %w", err)
	}

	var stages []guardrails.Stage
	var limiter *guardrails.RateLimiter

	if cfg.EnableRateLimiting {
		limiter = guardrails.NewRateLimiter(
			cfg.RateLimitMaxRequests,
			time.Duration(cfg.RateLimitWindowSecs)*time.Second,
		)
		stages = append(stages, limiter)
	} else {
		logger.Info().Msg("rate limiting disabled")
	}

	if cfg.EnableInputValidation {
		stages = append(stages, guardrails.NewInputValidator(cfg.InputMinLength, cfg.InputMaxLength))
	} else {
		logger.Info().Msg("input validation disabled")
	}

	if cfg.EnableContentFiltering {
		filter, err := guardrails.NewContentFilter(policy.ContentFilter)
		if err != nil {
			return nil, fmt.Errorf("failed to build content filter: %w", err)
		}
		stages = append(stages, filter)
	} else {
		logger.Info().Msg("content filtering disabled")
	}

	stages = append(stages, guardrails.NewSanitizer(policy.Sanitizer.UnsafeCharacters))

	llmClient, err := createLLMClient(ctx, cfg.Provider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	gen, err := generator.New(llmClient, generator.Config{
		Temperature: cfg.ModelTemperature,
		MaxTokens:   cfg.ModelMaxTokens,
		Timeout:     time.Duration(cfg.ModelTimeoutSecs) * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	scorer := guardrails.NewOutputValidator(cfg.OutputMinLength, cfg.OutputMaxLength, policy.Output)

	if !cfg.EnableOutputValidation {
		logger.Info().Msg("output validation disabled, metrics still computed")
	}

	pipe := pipeline.New(stages, gen, scorer, cfg.EnableOutputValidation, logger)

	return &Dependencies{
		Pipeline:    pipe,
		RateLimiter: limiter,
		Logger:      logger,
	}, nil
}

func createLLMClient(ctx context.Context, provider string, cfg *Config) (llm.LLMClient, error) {
	switch provider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.BedrockModelID)
	case "ollama":
		return ollama.NewClient(cfg.OllamaBaseURL, cfg.ModelName)
	default:
		return ollama.NewClient(cfg.OllamaBaseURL, cfg.ModelName)
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
