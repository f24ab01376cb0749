package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	mcore "github.com/projXchange/Backend-v1-sub000/mocks/port/core"
)

func fixedClock(t time.Time) *mcore.MockTimeProvider {
	clock := new(mcore.MockTimeProvider)
	clock.On("Now").Return(t).Maybe()
	return clock
}

func TestNewTransaction(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	clock := fixedClock(now)

	amount := decimal.RequireFromString("499.00")
	commission := decimal.RequireFromString("49.90")
	seller := decimal.RequireFromString("449.10")

	t.Run("Valid purchase transaction", func(t *testing.T) {
		txn, err := NewTransaction("gw-1", "buyer-1", "proj-1", "seller-1",
			TypePurchase, amount, commission, seller, CurrencyINR, clock)

		require.NoError(t, err)
		assert.Equal(t, StatusPending, txn.Status)
		assert.Equal(t, now, txn.CreatedAt)
		assert.Nil(t, txn.ProcessedAt)
		assert.Nil(t, txn.RefundedAt)
		assert.NotEmpty(t, txn.ID)
	})

	t.Run("Split must sum exactly to the amount", func(t *testing.T) {
		badSeller := decimal.RequireFromString("449.11")
		txn, err := NewTransaction("gw-1", "buyer-1", "proj-1", "seller-1",
			TypePurchase, amount, commission, badSeller, CurrencyINR, clock)

		assert.Nil(t, txn)
		assert.True(t, errors.Is(err, errs.ErrInvalidAmount))
	})

	t.Run("Non-positive amounts are rejected", func(t *testing.T) {
		txn, err := NewTransaction("gw-1", "buyer-1", "proj-1", "seller-1",
			TypePurchase, decimal.Zero, decimal.Zero, decimal.Zero, CurrencyINR, clock)

		assert.Nil(t, txn)
		assert.True(t, errors.Is(err, errs.ErrInvalidAmount))
	})

	t.Run("Missing external ID is rejected", func(t *testing.T) {
		txn, err := NewTransaction("", "buyer-1", "proj-1", "seller-1",
			TypePurchase, amount, commission, seller, CurrencyINR, clock)

		assert.Nil(t, txn)
		assert.True(t, errors.Is(err, errs.ErrInvalidRequest))
	})

	t.Run("Unsupported currency is rejected", func(t *testing.T) {
		txn, err := NewTransaction("gw-1", "buyer-1", "proj-1", "seller-1",
			TypePurchase, amount, commission, seller, Currency("EUR"), clock)

		assert.Nil(t, txn)
		assert.True(t, errors.Is(err, errs.ErrInvalidCurrency))
	})
}

func TestTransactionLifecycle(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	clock := fixedClock(now)

	newPending := func() *Transaction {
		txn, err := NewTransaction("gw-1", "buyer-1", "proj-1", "seller-1",
			TypePurchase,
			decimal.RequireFromString("100.00"),
			decimal.RequireFromString("10.00"),
			decimal.RequireFromString("90.00"),
			CurrencyUSD, clock)
		require.NoError(t, err)
		return txn
	}

	t.Run("Forward flow pending -> processing -> completed -> refunded", func(t *testing.T) {
		txn := newPending()

		require.NoError(t, txn.MarkProcessing())
		assert.Equal(t, StatusProcessing, txn.Status)

		require.NoError(t, txn.MarkCompleted(clock))
		assert.Equal(t, StatusCompleted, txn.Status)
		require.NotNil(t, txn.ProcessedAt)
		assert.Equal(t, now, *txn.ProcessedAt)
		assert.False(t, txn.IsTerminal())

		require.NoError(t, txn.MarkRefunded(clock))
		assert.Equal(t, StatusRefunded, txn.Status)
		require.NotNil(t, txn.RefundedAt)
		assert.True(t, txn.IsTerminal())
	})

	t.Run("Pending can complete directly", func(t *testing.T) {
		txn := newPending()
		require.NoError(t, txn.MarkCompleted(clock))
		assert.Equal(t, StatusCompleted, txn.Status)
	})

	t.Run("Refunded only from completed", func(t *testing.T) {
		txn := newPending()
		err := txn.MarkRefunded(clock)
		assert.True(t, errors.Is(err, errs.ErrInvalidStatusTransition))

		txn = newPending()
		require.NoError(t, txn.MarkFailed(clock))
		err = txn.MarkRefunded(clock)
		assert.True(t, errors.Is(err, errs.ErrInvalidStatusTransition))
	})

	t.Run("Terminal states accept no transitions", func(t *testing.T) {
		txn := newPending()
		require.NoError(t, txn.MarkCancelled(clock))

		for _, target := range []TransactionStatus{StatusProcessing, StatusCompleted, StatusFailed, StatusRefunded} {
			assert.False(t, txn.CanTransitionTo(target), "cancelled -> %s", target)
		}
	})

	t.Run("No backward transitions", func(t *testing.T) {
		txn := newPending()
		require.NoError(t, txn.MarkProcessing())
		assert.False(t, txn.CanTransitionTo(StatusPending))

		require.NoError(t, txn.MarkCompleted(clock))
		assert.False(t, txn.CanTransitionTo(StatusProcessing))
		assert.False(t, txn.CanTransitionTo(StatusPending))
	})
}

func TestTransactionTimestampsSetOnce(t *testing.T) {
	first := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	clock := new(mcore.MockTimeProvider)
	clock.On("Now").Return(first).Once()
	clock.On("Now").Return(first).Once() // constructor + MarkCompleted
	clock.On("Now").Return(second)

	txn, err := NewTransaction("gw-1", "buyer-1", "proj-1", "seller-1",
		TypePurchase,
		decimal.RequireFromString("100.00"),
		decimal.RequireFromString("10.00"),
		decimal.RequireFromString("90.00"),
		CurrencyUSD, clock)
	require.NoError(t, err)

	require.NoError(t, txn.MarkCompleted(clock))
	processedAt := *txn.ProcessedAt

	// A second completion attempt is rejected and cannot move the timestamp
	err = txn.MarkCompleted(clock)
	assert.True(t, errors.Is(err, errs.ErrInvalidStatusTransition))
	assert.Equal(t, processedAt, *txn.ProcessedAt)

	require.NoError(t, txn.MarkRefunded(clock))
	refundedAt := *txn.RefundedAt

	err = txn.MarkRefunded(clock)
	assert.True(t, errors.Is(err, errs.ErrInvalidStatusTransition))
	assert.Equal(t, refundedAt, *txn.RefundedAt)
}
