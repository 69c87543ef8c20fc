package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/config"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/utils"
)

// Generation parameters sent with every request.
const (
	generationTemperature     = 0.7
	generationMaxOutputTokens = 1000
)

const fallbackResponse = "🤖 **Dante Propiedades**\n\n" +
	"¡Hola! La aplicación está funcionando pero hay un problema temporal con el servicio de IA.\n\n" +
	"**Sistema disponible:**\n" +
	"✅ Búsqueda de propiedades\n" +
	"✅ Filtros por barrio, precio, tipo\n" +
	"✅ Base de datos cargada\n\n" +
	"⚠️ **El modo conversacional IA está temporalmente desactivado.**\n\n" +
	"**Cómo usar:**\n" +
	"1. Escribí tu búsqueda (ej: \"departamento en palermo\")\n" +
	"2. La app encontrará propiedades relevantes\n" +
	"3. Usá los filtros para refinar resultados\n\n" +
	"🏠 **¡La búsqueda de propiedades funciona perfectamente!**"

// FallbackResponse returns the canned reply served when the generative
// backend cannot be reached with any configured key.
func FallbackResponse() string {
	return fallbackResponse
}

// geminiClient is the REST implementation of [AssistantClient]. It calls the
// generateContent endpoint and rotates through the configured API keys: a key
// that is rate limited, unauthorized or failing is skipped and the next one
// is tried in order.
type geminiClient struct {
	client *utils.HTTPClient
	keys   []string
	model  string
	logger *logger.Logger
}

// NewGeminiClient constructs an [AssistantClient] from the assistant
// configuration. The client is usable with zero keys; GenerateReply then
// returns [ErrNoAssistantKeys] on every call.
func NewGeminiClient(cfg config.Assistant, log *logger.Logger) AssistantClient {
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	keys := cfg.Keys()
	log.Info().Str("model", cfg.Model).Int("keys", len(keys)).Msg("assistant client configured")

	return &geminiClient{
		client: client,
		keys:   keys,
		model:  cfg.Model,
		logger: log,
	}
}

type generateRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateReply implements [AssistantClient]. Keys are tried in configuration
// order; the first one returning a non-empty candidate wins.
func (g *geminiClient) GenerateReply(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	if len(g.keys) == 0 {
		log.Warn().Str("func", "*geminiClient.GenerateReply").Msg("no api keys configured")
		return "", ErrNoAssistantKeys
	}

	body := generateRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     generationTemperature,
			MaxOutputTokens: generationMaxOutputTokens,
		},
	}

	path := fmt.Sprintf("/v1beta/models/%s:generateContent", g.model)

	for i, key := range g.keys {
		var result generateResponse

		resp, err := g.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetQueryParam("key", key).
			SetBody(body).
			SetResult(&result).
			Post(path)
		if err != nil {
			// context cancellation should not burn through the remaining keys
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			log.Err(err).Str("func", "*geminiClient.GenerateReply").
				Int("key_index", i+1).Msg("request failed, trying next key")
			continue
		}

		if resp.StatusCode() != http.StatusOK {
			logKeyFailure(log, i+1, resp.StatusCode())
			continue
		}

		reply := extractReply(result)
		if reply == "" {
			log.Warn().Str("func", "*geminiClient.GenerateReply").
				Int("key_index", i+1).Msg("empty candidate, trying next key")
			continue
		}

		log.Debug().Str("func", "*geminiClient.GenerateReply").
			Int("key_index", i+1).Int("reply_len", len(reply)).Msg("reply generated")
		return reply, nil
	}

	log.Error().Str("func", "*geminiClient.GenerateReply").Msg("all api keys failed")
	return "", ErrAssistantUnavailable
}

func logKeyFailure(log *logger.Logger, keyIndex, status int) {
	event := log.Warn().Str("func", "*geminiClient.GenerateReply").
		Int("key_index", keyIndex).Int("status", status)

	switch status {
	case http.StatusTooManyRequests:
		event.Msg("key rate limited, trying next key")
	case http.StatusUnauthorized, http.StatusForbidden:
		event.Msg("key rejected, trying next key")
	case http.StatusInternalServerError, http.StatusServiceUnavailable:
		event.Msg("backend error, trying next key")
	default:
		event.Msg("unexpected status, trying next key")
	}
}

func extractReply(result generateResponse) string {
	if len(result.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	return strings.TrimSpace(sb.String())
}
