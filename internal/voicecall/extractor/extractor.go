package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"callagent-server/internal/observability"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

const extractionPrompt = `You extract lead details from a sales call transcript.
Return a JSON object with exactly these keys, using an empty string when the
transcript does not state a value:
{"name": "", "email": "", "phone": "", "businessType": "", "notes": ""}
Do not invent values. Respond with the JSON object only.`

// Known lead field keys; anything else in the model output is dropped.
var leadFieldKeys = []string{"name", "email", "phone", "businessType", "notes"}

// TranscriptExtractor pulls structured lead fields out of a finished call
// transcript with a chat completion.
type TranscriptExtractor struct {
	client openai.Client
	logger *observability.Logger
}

func New(apiKey string, logger *observability.Logger) (*TranscriptExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return &TranscriptExtractor{
		client: openai.NewClient(openaiOption.WithAPIKey(apiKey)),
		logger: logger,
	}, nil
}

// ExtractLead asks the model for the lead fields present in the transcript.
func (e *TranscriptExtractor) ExtractLead(ctx context.Context, transcript string) (map[string]string, error) {
	completion, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(extractionPrompt),
			openai.UserMessage(transcript),
		},
		Model: openai.ChatModelGPT4oMini,
	})
	if err != nil {
		e.logger.Error(ctx, "Lead extraction completion failed", err)
		return nil, fmt.Errorf("failed to run lead extraction: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("lead extraction returned no choices")
	}

	fields, err := parseLeadJSON(completion.Choices[0].Message.Content)
	if err != nil {
		e.logger.Error(ctx, "Failed to parse lead extraction output", err)
		return nil, err
	}
	return fields, nil
}

// parseLeadJSON decodes the model output, tolerating markdown code fences,
// and keeps only the known lead field keys.
func parseLeadJSON(content string) (map[string]string, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var raw map[string]string
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse lead fields: %w", err)
	}

	fields := make(map[string]string, len(leadFieldKeys))
	for _, key := range leadFieldKeys {
		if v := strings.TrimSpace(raw[key]); v != "" {
			fields[key] = v
		}
	}
	return fields, nil
}
