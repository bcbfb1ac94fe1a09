package services

import (
	"context"

	"github.com/tradebothq/tradebot-hq/internal/logger"
	"github.com/tradebothq/tradebot-hq/internal/models"
)

// SnapshotReader reads stored dashboard snapshots.
type SnapshotReader interface {
	GetByUserID(ctx context.Context, userID string) (*models.DashboardSnapshot, error)
}

// SnapshotStore combines snapshot reads and writes.
type SnapshotStore interface {
	SnapshotReader
	SnapshotWriter
}

// DashboardService serves per-account dashboard snapshots.
type DashboardService struct {
	accounts  AccountReader
	snapshots SnapshotStore
	generator SnapshotGenerator
}

// NewDashboardService creates a new DashboardService instance.
func NewDashboardService(accounts AccountReader, snapshots SnapshotStore, generator SnapshotGenerator) *DashboardService {
	return &DashboardService{
		accounts:  accounts,
		snapshots: snapshots,
		generator: generator,
	}
}

// GetByUserID returns the account's dashboard snapshot, generating and
// persisting one when absent. Normal reads never regenerate; only a
// missing snapshot triggers generation.
func (svc *DashboardService) GetByUserID(ctx context.Context, userID string) (*models.DashboardSnapshot, error) {
	account, err := svc.accounts.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up account", "userID", userID, "err", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	snapshot, err := svc.snapshots.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to read dashboard snapshot", "userID", userID, "err", err)
		return nil, err
	}
	if snapshot != nil {
		return snapshot, nil
	}

	// Lazy fallback: generate once, first writer wins on a race.
	snapshot = svc.generator.GenerateSnapshot(userID)
	stored, err := svc.snapshots.SaveIfAbsent(ctx, userID, snapshot)
	if err != nil {
		logger.Log.Errorw("failed to store dashboard snapshot", "userID", userID, "err", err)
		return nil, err
	}
	if !stored {
		existing, err := svc.snapshots.GetByUserID(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to re-read dashboard snapshot", "userID", userID, "err", err)
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	return snapshot, nil
}
