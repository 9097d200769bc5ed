package generator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Annapoorna04/HiperAI/internal/llm"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// stubLLMClient records the request and returns a canned response.
type stubLLMClient struct {
	lastRequest llm.LLMRequest
	response    string
	err         error
	delay       time.Duration
}

func (s *stubLLMClient) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	s.lastRequest = request

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if s.err != nil {
		return nil, s.err
	}
	return &llm.LLMResponse{Content: s.response}, nil
}

func testConfig() Config {
	return Config{
		Temperature: 0.3,
		MaxTokens:   1500,
		Timeout:     60 * time.Second,
	}
}

func TestGenerator_Generate(t *testing.T) {
	client := &stubLLMClient{response: "Job Title: Senior Backend Engineer"}

	gen, err := New(client, testConfig(), newTestLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, err := gen.Generate(context.Background(), "Senior Backend Engineer, Python")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "Job Title: Senior Backend Engineer" {
		t.Errorf("content: %q", got)
	}

	if !strings.Contains(client.lastRequest.Prompt, "Senior Backend Engineer, Python") {
		t.Error("prompt does not contain the role details")
	}
	if !strings.Contains(client.lastRequest.Prompt, "Job Title") {
		t.Error("prompt does not instruct the expected sections")
	}
	if client.lastRequest.MaxTokens != 1500 {
		t.Errorf("MaxTokens: %d, want 1500", client.lastRequest.MaxTokens)
	}
	if client.lastRequest.Temperature != 0.3 {
		t.Errorf("Temperature: %f, want 0.3", client.lastRequest.Temperature)
	}
}

func TestGenerator_Generate_Timeout(t *testing.T) {
	client := &stubLLMClient{
		response: "never returned",
		delay:    time.Second,
	}

	cfg := testConfig()
	cfg.Timeout = 10 * time.Millisecond

	gen, err := New(client, cfg, newTestLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = gen.Generate(context.Background(), "Senior Backend Engineer, Python")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded, got %v", err)
	}
}

func TestGenerator_Generate_ModelError(t *testing.T) {
	client := &stubLLMClient{err: errors.New("connection refused")}

	gen, err := New(client, testConfig(), newTestLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = gen.Generate(context.Background(), "Senior Backend Engineer, Python")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		t.Error("model error must not look like a timeout")
	}
}

func TestGenerator_Generate_StripsCodeFence(t *testing.T) {
	client := &stubLLMClient{response: "```markdown\nJob Title: Engineer\n```"}

	gen, err := New(client, testConfig(), newTestLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, err := gen.Generate(context.Background(), "Senior Backend Engineer, Python")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "Job Title: Engineer" {
		t.Errorf("content: %q, want fences stripped", got)
	}
}
