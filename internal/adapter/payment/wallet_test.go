package payment_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/ticket_marketplace/internal/adapter/payment"
	"github.com/srgjo27/ticket_marketplace/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallet_CollectAndPayout(t *testing.T) {
	w := payment.NewWallet()
	ctx := context.Background()
	buyer, seller := uuid.New(), uuid.New()

	require.NoError(t, w.Deposit(ctx, buyer, decimal.NewFromInt(50)))
	require.NoError(t, w.Collect(ctx, buyer, decimal.NewFromInt(20)))

	assert.True(t, decimal.NewFromInt(30).Equal(w.Balance(ctx, buyer)))
	assert.True(t, decimal.NewFromInt(20).Equal(w.Escrow()))

	require.NoError(t, w.Payout(ctx, seller, decimal.NewFromInt(20)))

	assert.True(t, decimal.NewFromInt(20).Equal(w.Balance(ctx, seller)))
	assert.True(t, w.Escrow().IsZero())
}

func TestWallet_Rejects(t *testing.T) {
	w := payment.NewWallet()
	ctx := context.Background()
	buyer := uuid.New()

	err := w.Deposit(ctx, buyer, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = w.Collect(ctx, buyer, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	err = w.Payout(ctx, buyer, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	assert.True(t, w.Balance(ctx, buyer).IsZero())
}
