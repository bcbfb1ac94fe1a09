package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/tradebothq/tradebot-hq/internal/identifier"
	"github.com/tradebothq/tradebot-hq/internal/logger"
	"github.com/tradebothq/tradebot-hq/internal/models"
)

// Error variables
var (
	ErrAccountAlreadyExists = errors.New("this ID is already in use")
	ErrAccountNotFound      = errors.New("user not found")
	ErrInvalidIdentifier    = errors.New("user ID must be exactly 16 characters")
)

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByUserID(ctx context.Context, userID string) (*models.AccountDB, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Save(ctx context.Context, userID string) error
}

// SnapshotWriter stores generated dashboard snapshots.
type SnapshotWriter interface {
	SaveIfAbsent(ctx context.Context, userID string, snapshot *models.DashboardSnapshot) (bool, error)
}

// SnapshotGenerator produces dashboard snapshots.
type SnapshotGenerator interface {
	GenerateSnapshot(userID string) *models.DashboardSnapshot
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// IdentityService issues and verifies opaque account identifiers.
type IdentityService struct {
	reader      AccountReader
	writer      AccountWriter
	snapshots   SnapshotWriter
	generator   SnapshotGenerator
	kafkaWriter KafkaWriter
}

// NewIdentityService creates a new IdentityService instance.
func NewIdentityService(
	reader AccountReader,
	writer AccountWriter,
	snapshots SnapshotWriter,
	generator SnapshotGenerator,
	kafkaWriter KafkaWriter,
) *IdentityService {
	return &IdentityService{
		reader:      reader,
		writer:      writer,
		snapshots:   snapshots,
		generator:   generator,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a domain event to Kafka.
func (svc *IdentityService) publishEvent(ctx context.Context, event models.Event) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}

// Issue creates a new account. When candidate is empty a fresh
// identifier is generated; otherwise the caller-supplied identifier is
// validated and used, with ErrAccountAlreadyExists returned if taken.
// The account's dashboard snapshot is generated and stored once here.
func (svc *IdentityService) Issue(ctx context.Context, candidate string) (string, error) {
	userID := candidate
	if userID == "" {
		userID = identifier.New()
	} else if !identifier.Valid(userID) {
		logger.Log.Errorw("invalid caller-supplied identifier", "userID", userID)
		return "", ErrInvalidIdentifier
	}

	existing, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check account exists", "err", err)
		return "", err
	}
	if existing != nil {
		logger.Log.Errorw("account already exists", "userID", userID)
		return "", ErrAccountAlreadyExists
	}

	if err := svc.writer.Save(ctx, userID); err != nil {
		// The insert races with a concurrent Issue for the same
		// identifier; the constraint serializes them and the loser
		// surfaces as a conflict.
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrAccountAlreadyExists
		}
		logger.Log.Errorw("failed to save account", "err", err)
		return "", err
	}

	snapshot := svc.generator.GenerateSnapshot(userID)
	if _, err := svc.snapshots.SaveIfAbsent(ctx, userID, snapshot); err != nil {
		logger.Log.Errorw("failed to store dashboard snapshot", "userID", userID, "err", err)
		return "", err
	}

	svc.publishEvent(ctx, models.Event{
		EventID:   uuid.NewString(),
		Type:      models.EventAccountCreated,
		Timestamp: time.Now().Unix(),
		UserID:    userID,
	})

	return userID, nil
}

// Verify reports whether an account exists for exactly this identifier.
func (svc *IdentityService) Verify(ctx context.Context, userID string) (bool, error) {
	account, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up account", "userID", userID, "err", err)
		return false, err
	}
	return account != nil, nil
}
