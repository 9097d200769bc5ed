package mcpadapter

import (
	"context"

	"github.com/Annapoorna04/HiperAI/internal/models"
	"github.com/Annapoorna04/HiperAI/internal/pipeline"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GenerateInput is the MCP tool input schema (matches HTTP API field names).
type GenerateInput struct {
	RoleDetails string `json:"role_details" jsonschema:"free-text description of the role to generate a job description for"`
	ClientID    string `json:"client_id,omitempty" jsonschema:"optional rate-limit key, defaults to mcp-local"`
}

// NewGenerateHandler returns a tool handler that runs the guardrail
// pipeline. Pass the returned function to mcp.AddTool.
func NewGenerateHandler(pipe *pipeline.Pipeline) func(context.Context, *mcp.CallToolRequest, GenerateInput) (*mcp.CallToolResult, models.GenerateResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, models.GenerateResponse, error) {
		return GenerateJobDescription(ctx, pipe, req, input)
	}
}

// GenerateJobDescription runs the full guardrail pipeline and returns the
// generated job description with its quality metrics.
func GenerateJobDescription(
	ctx context.Context,
	pipe *pipeline.Pipeline,
	req *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, models.GenerateResponse, error) {
	clientID := input.ClientID
	if clientID == "" {
		clientID = "mcp-local"
	}

	result, err := pipe.Execute(ctx, clientID, input.RoleDetails)
	if err != nil {
		return nil, models.GenerateResponse{}, err
	}

	return nil, models.GenerateResponse{
		JobDescription: result.JobDescription,
		QualityMetrics: result.Metrics,
		Message:        "Job description generated successfully",
	}, nil
}
