package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func tx(txType CreditTransactionType, amount, before, after int) *CreditTransaction {
	return &CreditTransaction{
		Id:            uuid.New(),
		Type:          txType,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
	}
}

func TestVerifyLedgerChain(t *testing.T) {
	t.Run("valid chain", func(t *testing.T) {
		txs := []*CreditTransaction{
			tx(CreditTxPlanAllocation, 100, 0, 100),
			tx(CreditTxBooking, -2, 100, 98),
			tx(CreditTxWaiver, -2, 98, 96),
			tx(CreditTxPurchase, 50, 96, 146),
		}
		assert.NoError(t, VerifyLedgerChain(txs))
	})

	t.Run("empty chain", func(t *testing.T) {
		assert.NoError(t, VerifyLedgerChain(nil))
	})

	t.Run("arithmetic broken within a row", func(t *testing.T) {
		txs := []*CreditTransaction{
			tx(CreditTxPlanAllocation, 100, 0, 99),
		}
		err := VerifyLedgerChain(txs)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "balance_after")
	})

	t.Run("gap between rows", func(t *testing.T) {
		txs := []*CreditTransaction{
			tx(CreditTxPlanAllocation, 100, 0, 100),
			tx(CreditTxBooking, -2, 90, 88),
		}
		err := VerifyLedgerChain(txs)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "previous balance_after")
	})
}

func TestReplayBalance(t *testing.T) {
	txs := []*CreditTransaction{
		tx(CreditTxPlanAllocation, 100, 0, 100),
		tx(CreditTxBooking, -2, 100, 98),
		tx(CreditTxAdjustment, -10, 98, 88),
	}
	assert.Equal(t, 88, ReplayBalance(0, txs))
	assert.Equal(t, 138, ReplayBalance(50, txs))
	assert.Equal(t, 25, ReplayBalance(25, nil))
}

func TestUsedThisMonth(t *testing.T) {
	b := &CreditBalance{
		BookingsUsed:        3,
		WaiversUsed:         2,
		AiConversationsUsed: 1,
	}
	assert.Equal(t, 6*CreditCostPerAction, b.UsedThisMonth())

	assert.Equal(t, 0, (&CreditBalance{}).UsedThisMonth())
}

func TestCanDebit(t *testing.T) {
	b := &CreditBalance{Balance: CreditCostPerAction}

	assert.True(t, b.CanDebit(CreditCostPerAction)) // down to exactly zero is fine
	assert.False(t, b.CanDebit(CreditCostPerAction+1))
	assert.False(t, b.CanDebit(0))
	assert.False(t, b.CanDebit(-5))

	empty := &CreditBalance{}
	assert.False(t, empty.CanDebit(CreditCostPerAction))
}
