// Package generator renders the job-description prompt and invokes the
// model client. It enforces the hard timeout and the generation token cap;
// callers see context.DeadlineExceeded when the model outruns the deadline.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Annapoorna04/HiperAI/internal/llm"
	"github.com/rs/zerolog"
)

const promptText = `You are an HR expert at Hiperbrains, a technology recruitment company.
Write a complete, professional job description for the role described below.

Role details: {{.RoleDetails}}

The job description must include the following sections:
1. Job Title
2. Job Summary - a short overview of the role
3. Key Responsibilities - as a bullet list
4. Required Skills - as a bullet list
5. Nice-to-Have Skills - as a bullet list
6. Qualifications and Experience
7. Location and Work Arrangement

Use clear section headings and bullet points. Do not add commentary before
or after the job description.`

// Config carries the model invocation parameters. Timeout bounds the whole
// model call; MaxTokens caps generation length.
type Config struct {
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type Generator struct {
	promptTemplate *template.Template
	llmClient      llm.LLMClient
	config         Config
	logger         *zerolog.Logger
}

type promptData struct {
	RoleDetails string
}

func New(llmClient llm.LLMClient, config Config, logger *zerolog.Logger) (*Generator, error) {
	tmpl, err := template.New("job-description").Parse(promptText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}

	return &Generator{
		promptTemplate: tmpl,
		llmClient:      llmClient,
		config:         config,
		logger:         logger,
	}, nil
}

func (g *Generator) Generate(ctx context.Context, roleDetails string) (string, error) {
	prompt, err := g.buildPrompt(roleDetails)
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	now := time.Now()
	resp, err := g.llmClient.InvokeModel(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return "", fmt.Errorf("model invocation failed: %w", err)
	}

	content := stripMarkdownCodeBlock(resp.Content)

	g.logger.Debug().
		Dur("duration", time.Since(now)).
		Int("length", len(content)).
		Msg("model call complete")

	return content, nil
}

func (g *Generator) buildPrompt(roleDetails string) (string, error) {
	var buf bytes.Buffer
	if err := g.promptTemplate.Execute(&buf, promptData{RoleDetails: roleDetails}); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}

// stripMarkdownCodeBlock removes markdown code block formatting if present
func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		firstNewline := strings.Index(content, "\n")
		if firstNewline == -1 {
			return content
		}

		closingBackticks := strings.LastIndex(content, "```")
		if closingBackticks == -1 || closingBackticks <= firstNewline {
			return content
		}

		content = content[firstNewline+1 : closingBackticks]
		content = strings.TrimSpace(content)
	}

	return content
}
