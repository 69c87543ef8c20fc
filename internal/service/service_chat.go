package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/adapter"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/filters"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/internal/store"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// historyLimit is how many past exchanges are fed back into the prompt.
const historyLimit = 5

const welcomeMessage = "¡Hola! 👋 Soy tu asistente de Dante Propiedades.\n\n" +
	"Te ayudo a encontrar la propiedad ideal. Podés:\n" +
	"• Usar los filtros a la izquierda para búsquedas específicas\n" +
	"• Contarme directamente qué estás buscando\n" +
	"• Preguntarme sobre propiedades que veas\n\n" +
	"¿En qué tipo de propiedad estás interesado hoy?"

// Property emojis the assistant is told not to use; lines carrying them are
// stripped from replies when listings are shown as cards.
var propertyEmojis = []string{"🏠", "📍", "💰", "📋", "💬"}

// chatService is the concrete implementation of [ChatService].
//
// A chat exchange runs through a fixed pipeline: detect filters in the user
// text, merge them over the front-end filters (detected values win), search
// the catalog when any criterion is set, build the prompt with per-channel
// tone and recent history, call the assistant, and log the exchange.
type chatService struct {
	properties    store.PropertyRepository
	conversations store.ConversationRepository
	assistant     adapter.AssistantClient
	metrics       *Metrics

	logger *logger.Logger
}

// NewChatService constructs a [ChatService]. conversations may be nil; the
// assistant then works without per-channel memory and exchanges are not
// logged.
func NewChatService(properties store.PropertyRepository, conversations store.ConversationRepository, assistant adapter.AssistantClient, metrics *Metrics, logger *logger.Logger) ChatService {
	return &chatService{
		properties:    properties,
		conversations: conversations,
		assistant:     assistant,
		metrics:       metrics,
		logger:        logger,
	}
}

// Chat implements [ChatService].
func (s *chatService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return models.ChatResponse{}, ErrEmptyMessage
	}

	channel := strings.TrimSpace(req.Channel)
	if channel == "" {
		channel = "web"
	}

	detected := filters.Detect(message)

	var fromFrontend models.SearchFilter
	if req.Filters != nil {
		fromFrontend = *req.Filters
	}
	merged := fromFrontend.Merge(detected)

	log.Debug().Str("func", "*chatService.Chat").
		Str("channel", channel).
		Any("detected", detected).
		Any("merged", merged).
		Msg("filters resolved")

	var results []models.Property
	searchPerformed := false

	if !merged.IsEmpty() {
		searchPerformed = true
		s.metrics.CountSearch()

		var err error
		results, err = s.properties.Search(ctx, merged)
		if err != nil {
			s.metrics.CountFailure()
			log.Err(err).Str("func", "*chatService.Chat").Msg("catalog search failed")
			return models.ChatResponse{}, fmt.Errorf("catalog search failed: %w", err)
		}
	}

	var answer string
	if filters.IsGreeting(message) && len(req.PreviousContext) == 0 {
		// first contact: canned welcome instead of burning an API call
		answer = welcomeMessage
	} else {
		answer = s.generateAnswer(ctx, message, results, searchPerformed, merged, channel)
	}

	s.logExchange(ctx, models.ConversationEntry{
		Channel:         channel,
		UserMessage:     message,
		BotResponse:     answer,
		ResponseTime:    time.Since(start),
		SearchPerformed: searchPerformed,
		ResultsCount:    len(results),
	})

	response := models.ChatResponse{
		Response:        answer,
		SearchPerformed: searchPerformed,
		Properties:      results,
	}
	if response.Properties == nil {
		response.Properties = []models.Property{}
	}
	if searchPerformed {
		count := len(results)
		response.ResultsCount = &count
	}

	s.metrics.CountSuccess()

	return response, nil
}

func (s *chatService) generateAnswer(ctx context.Context, message string, results []models.Property, searchPerformed bool, filter models.SearchFilter, channel string) string {
	log := logger.FromContext(ctx)

	prompt := adapter.BuildPrompt(message, results, searchPerformed, filter, channel, s.styleHint(ctx, channel))

	s.metrics.CountAssistantCall()
	answer, err := s.assistant.GenerateReply(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("func", "*chatService.generateAnswer").Msg("assistant unavailable, serving fallback")
		return adapter.FallbackResponse()
	}

	if len(results) > 0 {
		answer = cleanListingEcho(answer, len(results))
	}

	return answer
}

// styleHint composes the tone instruction, the catalog vocabulary and the
// recent per-channel history into the free-form hint appended to
// conversational prompts.
func (s *chatService) styleHint(ctx context.Context, channel string) string {
	tone := "Respondé de forma explicativa, profesional y cálida como si fuera una consulta web."
	if channel == "whatsapp" {
		tone = "Respondé de forma breve, directa y cálida como si fuera un mensaje de WhatsApp."
	}

	catalog := fmt.Sprintf(
		"Barrios disponibles: %s.\nTipos de propiedad: %s.\nOperaciones disponibles: %s.",
		strings.Join(filters.Neighborhoods, ", "),
		strings.Join(filters.Types, ", "),
		strings.Join(filters.Operations, ", "),
	)

	return tone + "\n" + catalog + s.historyContext(ctx, channel)
}

func (s *chatService) historyContext(ctx context.Context, channel string) string {
	if s.conversations == nil {
		return ""
	}

	history, err := s.conversations.History(ctx, channel, historyLimit)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*chatService.historyContext").Msg("history lookup failed, continuing without it")
		return ""
	}
	if len(history) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\nHistorial reciente:\n")
	for i, line := range history {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- " + line)
	}

	return sb.String()
}

// logExchange appends the exchange to the conversation log, best effort.
func (s *chatService) logExchange(ctx context.Context, entry models.ConversationEntry) {
	if s.conversations == nil {
		return
	}

	if err := s.conversations.Log(ctx, entry); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*chatService.logExchange").Msg("conversation logging failed")
	}
}

// cleanListingEcho strips listing enumerations from the reply text. The UI
// renders matched listings as visual cards, so a reply that repeats them as
// numbered lines or emoji bullets would duplicate the information.
func cleanListingEcho(answer string, resultsCount int) string {
	lines := strings.Split(answer, "\n")
	clean := make([]string, 0, len(lines))
	skipping := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed != "" && startsNumberedListing(trimmed) {
			skipping = true
			continue
		}

		if containsPropertyEmoji(line) {
			continue
		}

		if skipping {
			if trimmed == "" || i == len(lines)-1 {
				skipping = false
			}
			continue
		}

		clean = append(clean, line)
	}

	cleaned := strings.TrimSpace(strings.Join(clean, "\n"))

	if len([]rune(cleaned)) < 20 {
		return fmt.Sprintf("✅ Encontré %d propiedades que coinciden con tu búsqueda. Te las muestro abajo:", resultsCount)
	}

	lower := strings.ToLower(cleaned)
	if !strings.Contains(lower, "propiedad") && !strings.Contains(lower, "encontré") {
		cleaned += fmt.Sprintf("\n\n📊 **Encontré %d propiedades** - Te las muestro en detalle abajo 👇", resultsCount)
	}

	return cleaned
}

func startsNumberedListing(trimmed string) bool {
	first := rune(trimmed[0])
	if first < '0' || first > '9' {
		return false
	}

	return strings.ContainsAny(trimmed, ".)") ||
		strings.Contains(trimmed, "🏠") || strings.Contains(trimmed, "📍")
}

func containsPropertyEmoji(line string) bool {
	for _, emoji := range propertyEmojis {
		if strings.Contains(line, emoji) {
			return true
		}
	}
	return false
}
