package genaiadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"poemclub/contexts/publishing/poem-generator/domain/entities"
	"poemclub/contexts/publishing/poem-generator/domain/services"
)

const DefaultModel = "gemini-2.5-flash"

const systemPrompt = `You are a master poet with expertise in all forms of poetry. Create beautiful, meaningful poems based on the user's specifications.

Instructions:
- Create a poem based on the title and any specified requirements
- Pay attention to style, tone, emotion, theme, and length preferences
- If no specific style is mentioned, choose the most appropriate one
- Ensure the poem is well-crafted with proper rhythm, imagery, and meaning

Return a JSON object with this exact structure:
{
  "content": "The complete poem text with proper line breaks",
  "theme": "The main theme (nature, love, technology, etc.)",
  "style": "The poetry style used (Haiku, Free Verse, Sonnet, etc.)"
}

Do not include any additional text outside the JSON object.`

// Generator calls the Gemini API. The client is shared and safe for
// concurrent use.
type Generator struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

func NewGenerator(ctx context.Context, apiKey string, model string, logger *slog.Logger) (*Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("genai api key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Generator{client: client, model: model, logger: logger}, nil
}

func (g *Generator) Generate(ctx context.Context, request entities.Request) (entities.GeneratedPoem, error) {
	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		[]*genai.Content{genai.NewContentFromText(UserPrompt(request), genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0.8),
			MaxOutputTokens:   300,
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		return entities.GeneratedPoem{}, fmt.Errorf("genai generate content: %w", err)
	}
	return ParseResponse(resp.Text(), g.logger), nil
}

// UserPrompt renders the title and any parsed options.
func UserPrompt(request entities.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a poem titled: %q", request.Title)
	options := request.Options
	if options.Style != "" {
		fmt.Fprintf(&b, "\nStyle: %s", options.Style)
	}
	if options.Tone != "" {
		fmt.Fprintf(&b, "\nTone: %s", options.Tone)
	}
	if options.Emotion != "" {
		fmt.Fprintf(&b, "\nEmotion: %s", options.Emotion)
	}
	if options.Theme != "" {
		fmt.Fprintf(&b, "\nTheme: %s", options.Theme)
	}
	if options.Length != "" {
		fmt.Fprintf(&b, "\nLength: %s", services.LengthHint(options.Length))
	}
	if options.Additional != "" {
		fmt.Fprintf(&b, "\nAdditional instructions: %s", options.Additional)
	}
	return b.String()
}

type modelOutput struct {
	Content any `json:"content"`
	Theme   any `json:"theme"`
	Style   any `json:"style"`
}

// ParseResponse decodes the model's JSON object. Text that is not JSON is
// kept as the poem body; theme and style are then left for the caller.
func ParseResponse(text string, logger *slog.Logger) entities.GeneratedPoem {
	var out modelOutput
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &out); err != nil {
		if logger != nil {
			logger.Warn("genai response was not json",
				"event", "poem_generator_unparsable_response",
				"module", "publishing/poem-generator",
				"layer", "adapter",
				"error", err.Error(),
			)
		}
		return entities.GeneratedPoem{Content: strings.TrimSpace(text)}
	}
	return entities.GeneratedPoem{
		Content: stringify(out.Content),
		Theme:   stringify(out.Theme),
		Style:   stringify(out.Style),
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
