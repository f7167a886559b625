package langchaingo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/callbacks"
	"github.com/tmc/langchaingo/tools"

	"github.com/clawcustos/custos-sdk/pkg/custos"
)

// InscribeTool is a langchaingo compatible Tool that lets an agent inscribe
// proof-of-work on CustosNetwork after completing a unit of work.
type InscribeTool struct {
	client    *custos.Client
	Callbacks callbacks.Handler
}

// Ensure InscribeTool implements tools.Tool
var _ tools.Tool = &InscribeTool{}

// NewInscribeTool creates a new langchaingo tool bound to the given Custos
// client. The client carries the agent identity; the tool never sees the key.
func NewInscribeTool(client *custos.Client) *InscribeTool {
	return &InscribeTool{
		client: client,
	}
}

// Name returns the name of the tool.
func (t *InscribeTool) Name() string {
	return "Custos_Proof_Of_Work_Inscriber"
}

// Description returns a description of the tool to help the language model
// decide when to use it.
func (t *InscribeTool) Description() string {
	return `Inscribes tamper-evident proof of completed work on CustosNetwork (Base mainnet).
Use this tool after finishing a unit of work. Input must be a JSON object:
{"category": "build|research|market|system|governance", "summary": "<=140 chars", "content": "full work output"}.
Returns the transaction hash and proof hash as JSON.`
}

type inscribeToolInput struct {
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
}

// Call executes the tool by inscribing the described work.
// Input should be the JSON object described by Description.
func (t *InscribeTool) Call(ctx context.Context, input string) (string, error) {
	if t.Callbacks != nil {
		t.Callbacks.HandleToolStart(ctx, input)
	}

	var parsedInput inscribeToolInput
	if err := json.Unmarshal([]byte(strings.TrimSpace(input)), &parsedInput); err != nil {
		return fmt.Sprintf("Invalid input, expected JSON with category/summary/content: %v", err), nil
	}

	result, err := t.client.Inscribe(
		ctx,
		custos.Category(parsedInput.Category),
		parsedInput.Summary,
		parsedInput.Content,
	)
	if err != nil {
		if t.Callbacks != nil {
			t.Callbacks.HandleToolError(ctx, err)
		}
		return fmt.Sprintf("Failed to inscribe proof-of-work: %v", err), nil
	}

	// Format result as pretty JSON to feed back to the LLM agent
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result to JSON: %w", err)
	}

	output := string(jsonData)

	if t.Callbacks != nil {
		t.Callbacks.HandleToolEnd(ctx, output)
	}

	return output, nil
}
