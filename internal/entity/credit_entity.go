package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CreditTransactionType string

const (
	CreditTxPlanAllocation CreditTransactionType = "plan_allocation"
	CreditTxPurchase       CreditTransactionType = "purchase"
	CreditTxBooking        CreditTransactionType = "booking"
	CreditTxWaiver         CreditTransactionType = "waiver"
	CreditTxAiConversation CreditTransactionType = "ai_conversation"
	CreditTxRefund         CreditTransactionType = "refund"
	CreditTxAdjustment     CreditTransactionType = "adjustment"
	CreditTxExpiry         CreditTransactionType = "expiry"
)

// CreditCostPerAction is the fixed debit for each metered action
// (booking, waiver, AI conversation). Not configurable per plan.
const CreditCostPerAction = 2

type CreditBalance struct {
	Id                  uuid.UUID
	TenantId            uuid.UUID
	Balance             int
	PlanCredits         int
	PurchasedCredits    int
	BookingsUsed        int
	WaiversUsed         int
	AiConversationsUsed int
	LastResetAt         time.Time
	NextResetAt         time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// UsedThisMonth is the metered spend since the last reset at the fixed
// per-action cost.
func (b *CreditBalance) UsedThisMonth() int {
	return (b.BookingsUsed + b.WaiversUsed + b.AiConversationsUsed) * CreditCostPerAction
}

// CanDebit reports whether the balance covers a debit of the given
// magnitude. The same rule guards the conditional UPDATE in the store,
// so a debit never drives the balance negative.
func (b *CreditBalance) CanDebit(amount int) bool {
	return amount > 0 && b.Balance >= amount
}

type CreditTransaction struct {
	Id            uuid.UUID
	TenantId      uuid.UUID
	Type          CreditTransactionType
	Amount        int // signed: debits negative, credits positive
	BalanceBefore int
	BalanceAfter  int
	BookingId     *uuid.UUID
	Notes         *string
	CreatedAt     time.Time
}

// VerifyLedgerChain checks the append-only ledger invariant over
// transactions ordered oldest first: each row's after equals its before
// plus amount, and each row's before equals the previous row's after.
func VerifyLedgerChain(txs []*CreditTransaction) error {
	for i, tx := range txs {
		if tx.BalanceBefore+tx.Amount != tx.BalanceAfter {
			return fmt.Errorf("transaction %s: balance_after %d != balance_before %d + amount %d",
				tx.Id, tx.BalanceAfter, tx.BalanceBefore, tx.Amount)
		}
		if i > 0 && txs[i-1].BalanceAfter != tx.BalanceBefore {
			return fmt.Errorf("transaction %s: balance_before %d != previous balance_after %d",
				tx.Id, tx.BalanceBefore, txs[i-1].BalanceAfter)
		}
	}
	return nil
}

// ReplayBalance recomputes the closing balance from an opening balance and
// a chain of transactions ordered oldest first.
func ReplayBalance(opening int, txs []*CreditTransaction) int {
	balance := opening
	for _, tx := range txs {
		balance += tx.Amount
	}
	return balance
}

type CreditPackage struct {
	Id        uuid.UUID
	Name      string
	Credits   int
	Price     float64
	IsActive  bool
	SortOrder int
}
