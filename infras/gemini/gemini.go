package gemini

//go:generate go run go.uber.org/mock/mockgen -source=./gemini.go -destination=./mocks/gemini_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mykuliah/config"
	"mykuliah/infras/otel"
	"mykuliah/shared/constant"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

var (
	ErrNotConfigured = errors.New("gemini client is not configured")
	ErrEmptyResponse = errors.New("gemini returned no text")
)

// Request is a single-turn generation request.
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float32
}

type Gemini interface {
	Generate(ctx context.Context, req Request) (string, error)
}

type geminiImpl struct {
	client    *genai.Client
	modelName string
	otel      otel.Otel
}

// New connects to the Gemini API. A missing key or a failed handshake leaves the
// client unset so Generate fails fast instead of the process refusing to start.
func New(cfg *config.Config, otel otel.Otel) Gemini {
	impl := &geminiImpl{
		modelName: cfg.External.Gemini.Model,
		otel:      otel,
	}

	if cfg.External.Gemini.APIKey == "" {
		log.Warn().Msg("EXTERNAL_GEMINI_API_KEY is empty, assistant will answer with the fallback message")

		return impl
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.External.Gemini.APIKey))
	if err != nil {
		log.Error().Err(err).Msg("failed to create gemini client")

		return impl
	}

	impl.client = client

	log.Info().Str("model", impl.modelName).Msg("Gemini client initialized")

	return impl
}

func (g *geminiImpl) Generate(ctx context.Context, req Request) (text string, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelGeminiScopeName+".Generate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"gemini.model":       g.modelName,
		"gemini.prompt_size": len(req.Prompt),
	})

	if g.client == nil {
		return "", ErrNotConfigured
	}

	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(req.Temperature)

	if req.SystemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemInstruction)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text = extractText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder

	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}

	return strings.TrimSpace(sb.String())
}
