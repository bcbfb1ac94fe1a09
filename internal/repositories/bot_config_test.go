package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tradebothq/tradebot-hq/internal/models"
)

func TestBotConfigWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	accounts := NewAccountWriteRepository(db, nil)
	assert.NoError(t, accounts.Save(ctx, "a1b2c3d4e5f6a7b8"))

	repo := NewBotConfigWriteRepository(db, nil)

	saved, err := repo.Save(ctx, models.BotConfigDB{
		UserID:       "a1b2c3d4e5f6a7b8",
		Name:         "My Sniper",
		TokenAddress: "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D",
		Quantity:     0.5,
		Slippage:     10,
		PriorityFee:  5,
		GasLimit:     300000,
		MaxGas:       100,
		StopLoss:     10,
		TakeProfit:   25,
		CustomRPC:    "https://rpc.example.com",
	})
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.NotEqual(t, uuid.Nil, saved.BotID)
	assert.Equal(t, "a1b2c3d4e5f6a7b8", saved.UserID)
	assert.Equal(t, "My Sniper", saved.Name)
	assert.Equal(t, 0.5, saved.Quantity)
	assert.Equal(t, int64(300000), saved.GasLimit)
	assert.Equal(t, "https://rpc.example.com", saved.CustomRPC)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestBotConfigReadRepository_GetByUserID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	accounts := NewAccountWriteRepository(db, nil)
	assert.NoError(t, accounts.Save(ctx, "a1b2c3d4e5f6a7b8"))
	assert.NoError(t, accounts.Save(ctx, "ffffffffffffffff"))

	writeRepo := NewBotConfigWriteRepository(db, nil)
	readRepo := NewBotConfigReadRepository(db)

	first, err := writeRepo.Save(ctx, models.BotConfigDB{UserID: "a1b2c3d4e5f6a7b8", Name: "Alpha", TokenAddress: "0xaaa"})
	assert.NoError(t, err)
	second, err := writeRepo.Save(ctx, models.BotConfigDB{UserID: "a1b2c3d4e5f6a7b8", Name: "Beta", TokenAddress: "0xbbb"})
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, models.BotConfigDB{UserID: "ffffffffffffffff", Name: "Other", TokenAddress: "0xccc"})
	assert.NoError(t, err)

	t.Run("OwnedOnly", func(t *testing.T) {
		configs, err := readRepo.GetByUserID(ctx, "a1b2c3d4e5f6a7b8")
		assert.NoError(t, err)
		assert.Len(t, configs, 2)
		assert.Equal(t, first.BotID, configs[0].BotID)
		assert.Equal(t, second.BotID, configs[1].BotID)
	})

	t.Run("NoConfigs", func(t *testing.T) {
		configs, err := readRepo.GetByUserID(ctx, "0000000000000000")
		assert.NoError(t, err)
		assert.Empty(t, configs)
	})
}
