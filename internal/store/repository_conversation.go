package store

import (
	"context"
	"fmt"

	"github.com/artarona/WORK-PAGINAWEB-IA/internal/logger"
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// conversationRepository is the PostgreSQL-backed implementation of
// [ConversationRepository]. It appends chat exchanges to the
// "conversation_logs" table and reads them back per channel.
type conversationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewConversationRepository constructs a [ConversationRepository] backed by
// the provided database connection and logger.
func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	logger.Debug().Msg("creating conversation repository")
	return &conversationRepository{
		db:     db,
		logger: logger,
	}
}

// Log appends one exchange to the conversation log.
func (r *conversationRepository) Log(ctx context.Context, entry models.ConversationEntry) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertConversation,
		entry.Channel, entry.UserMessage, entry.BotResponse,
		entry.ResponseTime.Seconds(), entry.SearchPerformed, entry.ResultsCount,
	)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.Log").Msg("error: inserting conversation entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// History returns the last exchanges for a channel, formatted as alternating
// "Usuario: ..." / "Bot: ..." lines with the oldest pair first. The query
// reads newest first, so the pairs are reversed before formatting.
func (r *conversationRepository) History(ctx context.Context, channel string, limit int) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectConversationHistory, channel, limit)
	if err != nil {
		log.Err(err).Str("func", "*conversationRepository.History").Msg("error: selecting conversation history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	type exchange struct {
		user string
		bot  string
	}

	exchanges := make([]exchange, 0, limit)
	for rows.Next() {
		var e exchange
		if err := rows.Scan(&e.user, &e.bot); err != nil {
			log.Err(err).Str("func", "*conversationRepository.History").Msg("error: scanning history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		exchanges = append(exchanges, e)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*conversationRepository.History").Msg("error: iterating history rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	lines := make([]string, 0, len(exchanges)*2)
	for i := len(exchanges) - 1; i >= 0; i-- {
		lines = append(lines,
			"Usuario: "+exchanges[i].user,
			"Bot: "+exchanges[i].bot,
		)
	}

	return lines, nil
}
