package service

import (
	"context"
	"time"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/pkg/apperrors"
	"escapedesk-be/internal/repository/contract"
	"escapedesk-be/internal/repository/specification"
	"escapedesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICreditService interface {
	GetBalance(ctx context.Context, tenantId uuid.UUID) (*dto.CreditBalanceResponse, error)
	ListTransactions(ctx context.Context, tenantId uuid.UUID, page, limit int) (*dto.CreditTransactionListResponse, error)
	ListPackages(ctx context.Context) ([]*dto.CreditPackageResponse, error)
	Adjust(ctx context.Context, tenantId uuid.UUID, req *dto.AdjustCreditsRequest) (*dto.CreditBalanceResponse, error)
	VerifyLedger(ctx context.Context, tenantId uuid.UUID) (*dto.LedgerVerificationResponse, error)

	// DebitAction charges one metered action inside the caller's unit of
	// work so the debit commits or rolls back with the business write.
	DebitAction(ctx context.Context, uow unitofwork.UnitOfWork, tenantId uuid.UUID, txType entity.CreditTransactionType, counter contract.UsageCounter, bookingId *uuid.UUID) error

	// Credit adds credits (purchase, plan allocation, refund) inside the
	// caller's unit of work.
	Credit(ctx context.Context, uow unitofwork.UnitOfWork, tenantId uuid.UUID, amount int, txType entity.CreditTransactionType, notes string) error
}

type creditService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCreditService(uowFactory unitofwork.RepositoryFactory) ICreditService {
	return &creditService{
		uowFactory: uowFactory,
	}
}

func (s *creditService) GetBalance(ctx context.Context, tenantId uuid.UUID) (*dto.CreditBalanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	balance, err := uow.CreditRepository().GetBalance(ctx, tenantId)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		// A tenant without a balance row reads as zero everywhere.
		return &dto.CreditBalanceResponse{}, nil
	}
	return toBalanceResponse(balance), nil
}

func (s *creditService) ListTransactions(ctx context.Context, tenantId uuid.UUID, page, limit int) (*dto.CreditTransactionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	txs, err := uow.CreditRepository().FindTransactions(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.CreditTransactionListResponse{
		Transactions: make([]dto.CreditTransactionResponse, len(txs)),
		Page:         page,
		Limit:        limit,
	}
	for i, tx := range txs {
		res.Transactions[i] = dto.CreditTransactionResponse{
			Id:            tx.Id,
			Type:          string(tx.Type),
			Amount:        tx.Amount,
			BalanceBefore: tx.BalanceBefore,
			BalanceAfter:  tx.BalanceAfter,
			BookingId:     tx.BookingId,
			Notes:         tx.Notes,
			CreatedAt:     tx.CreatedAt,
		}
	}
	return res, nil
}

func (s *creditService) ListPackages(ctx context.Context) ([]*dto.CreditPackageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	packages, err := uow.CreditRepository().FindAllPackages(ctx,
		specification.Filter("is_active", true),
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CreditPackageResponse, len(packages))
	for i, p := range packages {
		res[i] = &dto.CreditPackageResponse{
			Id:      p.Id,
			Name:    p.Name,
			Credits: p.Credits,
			Price:   p.Price,
		}
	}
	return res, nil
}

func (s *creditService) DebitAction(ctx context.Context, uow unitofwork.UnitOfWork, tenantId uuid.UUID, txType entity.CreditTransactionType, counter contract.UsageCounter, bookingId *uuid.UUID) error {
	before, after, applied, err := uow.CreditRepository().ApplyDelta(ctx, tenantId, -entity.CreditCostPerAction)
	if err != nil {
		return err
	}
	if !applied {
		return apperrors.Conflict("insufficient credits")
	}

	tx := &entity.CreditTransaction{
		Id:            uuid.New(),
		TenantId:      tenantId,
		Type:          txType,
		Amount:        -entity.CreditCostPerAction,
		BalanceBefore: before,
		BalanceAfter:  after,
		BookingId:     bookingId,
		CreatedAt:     time.Now(),
	}
	if err := uow.CreditRepository().AppendTransaction(ctx, tx); err != nil {
		return err
	}

	return uow.CreditRepository().IncrementUsage(ctx, tenantId, counter)
}

func (s *creditService) Credit(ctx context.Context, uow unitofwork.UnitOfWork, tenantId uuid.UUID, amount int, txType entity.CreditTransactionType, notes string) error {
	if amount <= 0 {
		return apperrors.Validation("credit amount must be positive")
	}

	before, after, applied, err := uow.CreditRepository().ApplyDelta(ctx, tenantId, amount)
	if err != nil {
		return err
	}
	if !applied {
		return apperrors.NotFound("credit balance not found")
	}

	tx := &entity.CreditTransaction{
		Id:            uuid.New(),
		TenantId:      tenantId,
		Type:          txType,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		CreatedAt:     time.Now(),
	}
	if notes != "" {
		tx.Notes = &notes
	}
	if err := uow.CreditRepository().AppendTransaction(ctx, tx); err != nil {
		return err
	}

	// Keep the informational breakdown in step with the balance.
	switch txType {
	case entity.CreditTxPlanAllocation:
		return uow.CreditRepository().AddToBucket(ctx, tenantId, contract.BucketPlan, amount)
	case entity.CreditTxPurchase:
		return uow.CreditRepository().AddToBucket(ctx, tenantId, contract.BucketPurchased, amount)
	}
	return nil
}

// Adjust applies a signed manual correction (support/admin path). Debits
// still cannot push the balance negative.
func (s *creditService) Adjust(ctx context.Context, tenantId uuid.UUID, req *dto.AdjustCreditsRequest) (*dto.CreditBalanceResponse, error) {
	if req.Amount == 0 {
		return nil, apperrors.Validation("adjustment amount must be non-zero")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	before, after, applied, err := uow.CreditRepository().ApplyDelta(ctx, tenantId, req.Amount)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, apperrors.Conflict("adjustment would overdraw the balance")
	}

	tx := &entity.CreditTransaction{
		Id:            uuid.New(),
		TenantId:      tenantId,
		Type:          entity.CreditTxAdjustment,
		Amount:        req.Amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		CreatedAt:     time.Now(),
	}
	if req.Notes != "" {
		notes := req.Notes
		tx.Notes = &notes
	}
	if err := uow.CreditRepository().AppendTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	balance, err := uow.CreditRepository().GetBalance(ctx, tenantId)
	if err != nil {
		return nil, err
	}
	return toBalanceResponse(balance), nil
}

// VerifyLedger replays the tenant's full transaction history oldest first
// and checks the chain invariant.
func (s *creditService) VerifyLedger(ctx context.Context, tenantId uuid.UUID) (*dto.LedgerVerificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	txs, err := uow.CreditRepository().FindTransactions(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	if err := entity.VerifyLedgerChain(txs); err != nil {
		return &dto.LedgerVerificationResponse{Valid: false, Detail: err.Error()}, nil
	}
	return &dto.LedgerVerificationResponse{Valid: true}, nil
}

func toBalanceResponse(b *entity.CreditBalance) *dto.CreditBalanceResponse {
	if b == nil {
		return &dto.CreditBalanceResponse{}
	}
	return &dto.CreditBalanceResponse{
		Balance:             b.Balance,
		PlanCredits:         b.PlanCredits,
		PurchasedCredits:    b.PurchasedCredits,
		UsedThisMonth:       b.UsedThisMonth(),
		BookingsUsed:        b.BookingsUsed,
		WaiversUsed:         b.WaiversUsed,
		AiConversationsUsed: b.AiConversationsUsed,
		CanAffordAction:     b.CanDebit(entity.CreditCostPerAction),
		NextResetAt:         b.NextResetAt,
	}
}
