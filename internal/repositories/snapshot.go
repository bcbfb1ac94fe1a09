package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/tradebothq/tradebot-hq/internal/logger"
	"github.com/tradebothq/tradebot-hq/internal/models"
)

const snapshotKeyPrefix = "dashboard:"

// SnapshotRepository stores generated dashboard snapshots in Redis,
// one JSON blob per identifier. Snapshots never expire.
type SnapshotRepository struct {
	rdb *redis.Client
}

func NewSnapshotRepository(rdb *redis.Client) *SnapshotRepository {
	return &SnapshotRepository{rdb: rdb}
}

// GetByUserID returns the stored snapshot for the identifier, or nil
// when none has been generated yet.
func (r *SnapshotRepository) GetByUserID(ctx context.Context, userID string) (*models.DashboardSnapshot, error) {
	key := snapshotKeyPrefix + userID

	data, err := r.rdb.Get(ctx, key).Bytes()

	logger.Log.Infow(
		"op", "GET",
		"key", key,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snapshot models.DashboardSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// SaveIfAbsent stores the snapshot only when no snapshot exists for the
// identifier yet. It reports whether the write happened; when two
// concurrent generations race, the first writer wins.
func (r *SnapshotRepository) SaveIfAbsent(ctx context.Context, userID string, snapshot *models.DashboardSnapshot) (bool, error) {
	key := snapshotKeyPrefix + userID

	data, err := json.Marshal(snapshot)
	if err != nil {
		return false, err
	}

	stored, err := r.rdb.SetNX(ctx, key, data, 0).Result()

	logger.Log.Infow(
		"op", "SETNX",
		"key", key,
		"result", stored,
		"error", err,
	)

	return stored, err
}
