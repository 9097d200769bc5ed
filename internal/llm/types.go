package llm

// LLMRequest carries the rendered prompt plus the generation cap and
// temperature for one model invocation.
type LLMRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// LLMResponse holds the raw generated text. StopReason is only populated by
// providers that report one (Bedrock); Ollama leaves it empty.
type LLMResponse struct {
	Content    string
	StopReason string
}
