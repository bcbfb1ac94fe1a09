package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/tradebothq/tradebot-hq/internal/logger"
	"github.com/tradebothq/tradebot-hq/internal/models"
)

// BotConfigWriter defines write operations for bot configurations.
type BotConfigWriter interface {
	Save(ctx context.Context, cfg models.BotConfigDB) (*models.BotConfigDB, error)
}

// BotConfigReader defines read operations for bot configurations.
type BotConfigReader interface {
	GetByUserID(ctx context.Context, userID string) ([]models.BotConfigDB, error)
}

// BotService manages user-created bot configurations.
type BotService struct {
	accounts    AccountReader
	reader      BotConfigReader
	writer      BotConfigWriter
	kafkaWriter KafkaWriter
}

// NewBotService creates a new BotService instance.
func NewBotService(
	accounts AccountReader,
	reader BotConfigReader,
	writer BotConfigWriter,
	kafkaWriter KafkaWriter,
) *BotService {
	return &BotService{
		accounts:    accounts,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Create persists a bot configuration for an existing account and
// publishes a bot.created event.
func (svc *BotService) Create(ctx context.Context, cfg models.BotConfigDB) (*models.BotConfigDB, error) {
	account, err := svc.accounts.GetByUserID(ctx, cfg.UserID)
	if err != nil {
		logger.Log.Errorw("failed to look up account", "userID", cfg.UserID, "err", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	saved, err := svc.writer.Save(ctx, cfg)
	if err != nil {
		logger.Log.Errorw("failed to save bot configuration", "userID", cfg.UserID, "err", err)
		return nil, err
	}

	if svc.kafkaWriter != nil {
		event := models.Event{
			EventID:   uuid.NewString(),
			Type:      models.EventBotCreated,
			Timestamp: time.Now().Unix(),
			UserID:    cfg.UserID,
		}
		if data, err := json.Marshal(event); err == nil {
			msg := kafka.Message{Key: []byte(event.EventID), Value: data}
			if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
				logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
			}
		}
	}

	return saved, nil
}

// List returns all bot configurations owned by the account.
func (svc *BotService) List(ctx context.Context, userID string) ([]models.BotConfigDB, error) {
	account, err := svc.accounts.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up account", "userID", userID, "err", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	configs, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list bot configurations", "userID", userID, "err", err)
		return nil, err
	}
	return configs, nil
}
