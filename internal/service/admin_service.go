package service

import (
	"context"
	"fmt"
	"time"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/pkg/apperrors"
	"escapedesk-be/internal/repository/specification"
	"escapedesk-be/internal/repository/unitofwork"

	"escapedesk-be/pkg/events"
	pktNats "escapedesk-be/pkg/nats"

	"github.com/google/uuid"
)

type IAdminService interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetTransactions(ctx context.Context, status string, page, limit int) ([]*dto.TransactionResponse, error)
	ListUsage(ctx context.Context, page, limit int) ([]*dto.TenantUsageResponse, error)

	ListRefunds(ctx context.Context, status string) ([]*dto.RefundResponse, error)
	ProcessRefund(ctx context.Context, refundId uuid.UUID, req *dto.ProcessRefundRequest) (*dto.RefundResponse, error)
	ProcessCancellation(ctx context.Context, cancellationId uuid.UUID, req *dto.ProcessCancellationRequest) error
}

type adminService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IAdminService {
	return &adminService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalTenants, err := uow.TenantRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	activeSubscribers, err := uow.SubscriptionRepository().CountActiveSubscribers(ctx)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := uow.SubscriptionRepository().GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	totalBookings, err := uow.BookingRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalTenants:      totalTenants,
		ActiveSubscribers: activeSubscribers,
		TotalRevenue:      totalRevenue,
		TotalBookings:     totalBookings,
	}, nil
}

func (s *adminService) GetTransactions(ctx context.Context, status string, page, limit int) ([]*dto.TransactionResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	transactions, err := uow.SubscriptionRepository().GetTransactions(ctx, status, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	var res []*dto.TransactionResponse
	for _, t := range transactions {
		res = append(res, &dto.TransactionResponse{
			Id:              t.Id,
			TenantId:        t.TenantId,
			TenantName:      t.TenantName,
			PlanName:        t.PlanName,
			Amount:          t.Amount,
			Status:          string(t.Status),
			PaymentStatus:   string(t.PaymentStatus),
			CreatedAt:       t.CreatedAt,
			ProviderOrderId: t.ProviderOrderId,
		})
	}
	return res, nil
}

// ListUsage reports each tenant's metered credit usage, heaviest
// spenders first.
func (s *adminService) ListUsage(ctx context.Context, page, limit int) ([]*dto.TenantUsageResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	balances, err := uow.CreditRepository().FindAllBalances(ctx,
		specification.OrderBy{Field: "bookings_used + waivers_used + ai_conversations_used", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TenantUsageResponse, 0, len(balances))
	for _, b := range balances {
		row := &dto.TenantUsageResponse{
			TenantId:            b.TenantId,
			Balance:             b.Balance,
			BookingsUsed:        b.BookingsUsed,
			WaiversUsed:         b.WaiversUsed,
			AiConversationsUsed: b.AiConversationsUsed,
			UsedThisMonth:       b.UsedThisMonth(),
			NextResetAt:         b.NextResetAt,
		}
		if tenant, err := uow.TenantRepository().FindOne(ctx, specification.ByID{ID: b.TenantId}); err == nil && tenant != nil {
			row.TenantName = tenant.Name
		}
		res = append(res, row)
	}
	return res, nil
}

func (s *adminService) ListRefunds(ctx context.Context, status string) ([]*dto.RefundResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if status != "" {
		specs = append(specs, specification.Filter("status", status))
	}

	refunds, err := uow.RefundRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	var res []*dto.RefundResponse
	for _, r := range refunds {
		res = append(res, toRefundResponse(r))
	}
	return res, nil
}

// ProcessRefund resolves a pending refund. Approval also flips the
// booking's payment status to refunded.
func (s *adminService) ProcessRefund(ctx context.Context, refundId uuid.UUID, req *dto.ProcessRefundRequest) (*dto.RefundResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	refund, err := uow.RefundRepository().FindOne(ctx, specification.ByID{ID: refundId})
	if err != nil {
		return nil, err
	}
	if refund == nil {
		return nil, apperrors.NotFound("refund not found")
	}
	if refund.Status != entity.RefundStatusPending {
		return nil, apperrors.Conflict("refund already processed")
	}

	now := time.Now()
	refund.AdminNotes = req.AdminNotes
	refund.ProcessedAt = &now
	if req.Action == "approve" {
		refund.Status = entity.RefundStatusApproved
	} else {
		refund.Status = entity.RefundStatusRejected
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.RefundRepository().Update(ctx, refund); err != nil {
		return nil, err
	}

	if refund.Status == entity.RefundStatusApproved {
		booking, err := uow.BookingRepository().FindOne(ctx, specification.ByID{ID: refund.BookingID})
		if err != nil {
			return nil, err
		}
		if booking != nil {
			booking.PaymentStatus = entity.BookingPaymentRefunded
			if refund.Amount < booking.TotalAmount {
				booking.PaymentStatus = entity.BookingPaymentPartiallyRefunded
			}
			if err := uow.BookingRepository().Update(ctx, booking); err != nil {
				return nil, err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "REFUND_PROCESSED",
			Data: map[string]interface{}{
				"refund_id":  refund.ID,
				"booking_id": refund.BookingID,
				"tenant_id":  refund.TenantID,
				"amount":     refund.Amount,
				"status":     string(refund.Status),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish REFUND_PROCESSED event: %v\n", err)
		}
	}

	return toRefundResponse(refund), nil
}

// ProcessCancellation resolves a pending subscription cancellation
// request. Approval cancels the subscription at period end; rejection
// clears the cancel flag.
func (s *adminService) ProcessCancellation(ctx context.Context, cancellationId uuid.UUID, req *dto.ProcessCancellationRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cancellation, err := uow.CancellationRepository().FindOne(ctx, specification.ByID{ID: cancellationId})
	if err != nil {
		return err
	}
	if cancellation == nil {
		return apperrors.NotFound("cancellation request not found")
	}
	if cancellation.Status != entity.CancellationStatusPending {
		return apperrors.Conflict("cancellation request already processed")
	}

	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx, specification.ByID{ID: cancellation.SubscriptionID})
	if err != nil {
		return err
	}
	if sub == nil {
		return apperrors.NotFound("subscription not found")
	}

	now := time.Now()
	cancellation.AdminNotes = req.AdminNotes
	cancellation.ProcessedAt = &now

	if req.Action == "approve" {
		cancellation.Status = entity.CancellationStatusApproved
	} else {
		cancellation.Status = entity.CancellationStatusRejected
		sub.CancelAtPeriodEnd = false
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.CancellationRepository().Update(ctx, cancellation); err != nil {
		return err
	}
	if err := uow.SubscriptionRepository().UpdateSubscription(ctx, sub); err != nil {
		return err
	}
	return uow.Commit()
}

func toRefundResponse(r *entity.Refund) *dto.RefundResponse {
	return &dto.RefundResponse{
		Id:          r.ID,
		BookingId:   r.BookingID,
		TenantId:    r.TenantID,
		Amount:      r.Amount,
		Reason:      r.Reason,
		Status:      string(r.Status),
		AdminNotes:  r.AdminNotes,
		ProcessedAt: r.ProcessedAt,
		CreatedAt:   r.CreatedAt,
	}
}
