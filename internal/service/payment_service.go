package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/pkg/apperrors"
	"escapedesk-be/internal/repository/redisstore"
	"escapedesk-be/internal/repository/specification"
	"escapedesk-be/internal/repository/unitofwork"

	"escapedesk-be/pkg/events"
	pktNats "escapedesk-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type IPaymentService interface {
	GetPlans(ctx context.Context) ([]*dto.PlanResponse, error)
	GetOrderSummary(ctx context.Context, planId uuid.UUID) (*dto.OrderSummaryResponse, error)
	CreateCheckoutSession(ctx context.Context, tenantId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	BuyCredits(ctx context.Context, tenantId uuid.UUID, req *dto.BuyCreditsRequest) (*dto.BuyCreditsResponse, error)
	HandleNotification(ctx context.Context, req *dto.PaymentWebhookRequest) error
	SyncPaymentStatus(ctx context.Context, tenantId uuid.UUID) (*dto.SubscriptionResponse, error)
	GetSubscription(ctx context.Context, tenantId uuid.UUID) (*dto.SubscriptionResponse, error)
	RequestCancellation(ctx context.Context, tenantId uuid.UUID, req *dto.RequestCancellationRequest) (*dto.CancellationResponse, error)
	CreatePortalSession(ctx context.Context, tenantId uuid.UUID, req *dto.BillingPortalRequest) (*dto.BillingPortalResponse, error)
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	creditService  ICreditService
	orderStore     redisstore.CreditOrderStore
	eventPublisher *pktNats.Publisher
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	creditService ICreditService,
	orderStore redisstore.CreditOrderStore,
	eventPublisher *pktNats.Publisher,
) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		creditService:  creditService,
		orderStore:     orderStore,
		eventPublisher: eventPublisher,
	}
}

func midtransEnv() midtrans.EnvironmentType {
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		return midtrans.Production
	}
	return midtrans.Sandbox
}

func newSnapClient() snap.Client {
	var c snap.Client
	c.New(os.Getenv("MIDTRANS_SERVER_KEY"), midtransEnv())
	return c
}

func (s *paymentService) GetPlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := uow.SubscriptionRepository().FindAllPlans(ctx,
		specification.Filter("is_active", true),
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}

	var res []*dto.PlanResponse
	for _, p := range plans {
		res = append(res, &dto.PlanResponse{
			Id:              p.Id,
			Name:            p.Name,
			Slug:            p.Slug,
			Tagline:         p.Tagline,
			Description:     p.Description,
			Price:           p.Price,
			BillingPeriod:   string(p.BillingPeriod),
			IncludedCredits: p.IncludedCredits,
			BookingQuota:    p.BookingQuota,
			WaiverQuota:     p.WaiverQuota,
			AiQuota:         p.AiQuota,
			IsMostPopular:   p.IsMostPopular,
		})
	}
	return res, nil
}

func (s *paymentService) GetOrderSummary(ctx context.Context, planId uuid.UUID) (*dto.OrderSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperrors.NotFound("plan not found")
	}

	subtotal := plan.Price
	tax := subtotal * plan.TaxRate
	total := subtotal + tax

	billingPeriod := "month"
	if plan.BillingPeriod == entity.BillingPeriodYearly {
		billingPeriod = "year"
	}

	return &dto.OrderSummaryResponse{
		PlanName:      plan.Name,
		BillingPeriod: billingPeriod,
		PricePerUnit:  fmt.Sprintf("$%.2f/%s", plan.Price, billingPeriod),
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		Currency:      "USD",
	}, nil
}

func (s *paymentService) CreateCheckoutSession(ctx context.Context, tenantId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperrors.NotFound("plan not found")
	}

	tenant, err := uow.TenantRepository().FindOne(ctx, specification.ByID{ID: tenantId})
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperrors.NotFound("tenant not found")
	}

	subId := uuid.New()
	now := time.Now()
	sub := &entity.TenantSubscription{
		Id:                 subId,
		TenantId:           tenantId,
		PlanId:             plan.Id,
		Status:             entity.SubscriptionStatusIncomplete,
		BillingCycle:       plan.BillingPeriod,
		PaymentStatus:      entity.PaymentStatusPending,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   now.AddDate(0, 1, 0),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if plan.BillingPeriod == entity.BillingPeriodYearly {
		sub.CurrentPeriodEnd = now.AddDate(1, 0, 0)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SubscriptionRepository().CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// External call stays outside the DB transaction.
	sClient := newSnapClient()

	clientURL := os.Getenv("CLIENT_URL")
	finishRedirectURL := fmt.Sprintf("%s/settings/billing?payment=success", clientURL)

	finalAmount := int64(plan.Price + (plan.Price * plan.TaxRate))

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  subId.String(),
			GrossAmt: finalAmount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: finishRedirectURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.FirstName,
			LName: req.LastName,
			Email: req.Email,
			Phone: req.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    plan.Id.String(),
				Price: finalAmount,
				Qty:   1,
				Name:  plan.Name,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, apperrors.Upstream("payment gateway rejected the checkout", fmt.Errorf("%v", midErr.GetMessage()))
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "SUBSCRIPTION_CREATED",
			Data: map[string]interface{}{
				"subscription_id": subId,
				"tenant_id":       tenantId,
				"tenant_name":     tenant.Name,
				"plan_id":         plan.Id,
				"plan_name":       plan.Name,
				"amount":          plan.Price,
				"currency":        "USD",
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SUBSCRIPTION_CREATED event: %v\n", err)
		}
	}

	return &dto.CheckoutResponse{
		SubscriptionId:  subId,
		SnapToken:       snapResp.Token,
		SnapRedirectUrl: snapResp.RedirectURL,
	}, nil
}

func (s *paymentService) BuyCredits(ctx context.Context, tenantId uuid.UUID, req *dto.BuyCreditsRequest) (*dto.BuyCreditsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pkg, err := uow.CreditRepository().FindOnePackage(ctx, specification.ByID{ID: req.PackageId})
	if err != nil {
		return nil, err
	}
	if pkg == nil || !pkg.IsActive {
		return nil, apperrors.NotFound("credit package not found")
	}

	// Credit orders live in the order store until the webhook settles
	// them; the "CR-" prefix routes the webhook to the credit path.
	orderId := "CR-" + uuid.New().String()
	order := &redisstore.PendingCreditOrder{
		OrderId:   orderId,
		TenantId:  tenantId,
		PackageId: pkg.Id,
		Credits:   pkg.Credits,
		Amount:    pkg.Price,
		CreatedAt: time.Now(),
	}
	if err := s.orderStore.Save(ctx, order); err != nil {
		return nil, err
	}

	sClient := newSnapClient()

	clientURL := os.Getenv("CLIENT_URL")
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: int64(pkg.Price),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/settings/credits?payment=success", clientURL),
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    pkg.Id.String(),
				Price: int64(pkg.Price),
				Qty:   1,
				Name:  pkg.Name,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, apperrors.Upstream("payment gateway rejected the checkout", fmt.Errorf("%v", midErr.GetMessage()))
	}

	return &dto.BuyCreditsResponse{
		OrderId:         orderId,
		SnapToken:       snapResp.Token,
		SnapRedirectUrl: snapResp.RedirectURL,
	}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, req *dto.PaymentWebhookRequest) error {
	fmt.Printf("\n[WEBHOOK] ========== Processing Notification ==========\n")
	fmt.Printf("[WEBHOOK] OrderId: %s | Status: %s\n", req.OrderId, req.TransactionStatus)

	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		fmt.Println("[WEBHOOK ERROR] MIDTRANS_SERVER_KEY not configured")
		return fmt.Errorf("server configuration error")
	}

	if !validWebhookSignature(req, serverKey) {
		fmt.Printf("[WEBHOOK ERROR] Signature mismatch for OrderId=%s\n", req.OrderId)
		return fmt.Errorf("invalid signature")
	}
	fmt.Printf("[WEBHOOK] Signature validated successfully\n")

	if strings.HasPrefix(req.OrderId, "CR-") {
		return s.handleCreditNotification(ctx, req)
	}
	return s.handleSubscriptionNotification(ctx, req)
}

// mapGatewayStatus translates a gateway transaction status into the
// subscription state pair. Pending and unknown statuses are not
// actionable; replaying an actionable status maps to the same pair, so
// duplicate notifications converge to a no-op.
func mapGatewayStatus(transactionStatus string) (entity.SubscriptionStatus, entity.PaymentStatus, bool) {
	switch transactionStatus {
	case "capture", "settlement":
		return entity.SubscriptionStatusActive, entity.PaymentStatusPaid, true
	case "deny", "cancel", "expire":
		return entity.SubscriptionStatusUnpaid, entity.PaymentStatusFailed, true
	default:
		return "", "", false
	}
}

// validWebhookSignature checks the gateway signature:
// SHA512(order_id + status_code + gross_amount + server_key).
func validWebhookSignature(req *dto.PaymentWebhookRequest, serverKey string) bool {
	input := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expected := fmt.Sprintf("%x", sha512.Sum512([]byte(input)))
	return req.SignatureKey == expected
}

func (s *paymentService) handleSubscriptionNotification(ctx context.Context, req *dto.PaymentWebhookRequest) error {
	subId, err := uuid.Parse(req.OrderId)
	if err != nil {
		fmt.Printf("[WEBHOOK ERROR] Invalid order_id format: %s\n", req.OrderId)
		return fmt.Errorf("invalid order id format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	sub, err := uow.SubscriptionRepository().FindOneSubscription(ctx, specification.ByID{ID: subId})
	if err != nil {
		return err
	}
	if sub == nil {
		fmt.Printf("[WEBHOOK ERROR] Subscription not found: %s\n", req.OrderId)
		return fmt.Errorf("subscription not found")
	}

	changed, err := s.transitionSubscription(ctx, uow, sub, req.TransactionStatus)
	if err != nil {
		return err
	}
	if !changed {
		// Unknown statuses and replayed notifications are a no-op.
		fmt.Printf("[WEBHOOK] Status '%s' requires no change\n", req.TransactionStatus)
		return nil
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	fmt.Printf("[WEBHOOK] Successfully updated subscription %s\n", subId)
	fmt.Printf("[WEBHOOK] ===========================================\n\n")
	return nil
}

func (s *paymentService) handleCreditNotification(ctx context.Context, req *dto.PaymentWebhookRequest) error {
	order, err := s.orderStore.Get(ctx, req.OrderId)
	if err != nil {
		return err
	}
	if order == nil {
		// Unknown or already-settled order; webhook replays land here.
		fmt.Printf("[WEBHOOK] No pending credit order for %s, skipping\n", req.OrderId)
		return nil
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
	case "deny", "cancel", "expire":
		fmt.Printf("[WEBHOOK] Credit order %s failed, dropping\n", req.OrderId)
		return s.orderStore.Delete(ctx, req.OrderId)
	default:
		fmt.Printf("[WEBHOOK] Credit order %s status '%s' - no action\n", req.OrderId, req.TransactionStatus)
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	note := fmt.Sprintf("credit purchase, order %s", req.OrderId)
	if err := s.creditService.Credit(ctx, uow, order.TenantId, order.Credits, entity.CreditTxPurchase, note); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	// Once the mapping is gone, webhook replays find no pending order.
	if err := s.orderStore.Delete(ctx, req.OrderId); err != nil {
		fmt.Printf("[WEBHOOK WARN] Failed to delete credit order %s: %v\n", req.OrderId, err)
	}

	fmt.Printf("[WEBHOOK] Credited %d credits to tenant %s\n", order.Credits, order.TenantId)
	return nil
}

// SyncPaymentStatus asks the gateway for the latest transaction state and
// reconciles the stored subscription. Best effort: gateway errors leave
// the stored state untouched.
func (s *paymentService) SyncPaymentStatus(ctx context.Context, tenantId uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.latestSubscription(ctx, uow, tenantId)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperrors.NotFound("no subscription found")
	}

	var cClient coreapi.Client
	cClient.New(os.Getenv("MIDTRANS_SERVER_KEY"), midtransEnv())

	status, midErr := cClient.CheckTransaction(sub.Id.String())
	if midErr != nil {
		fmt.Printf("[SYNC WARN] Gateway status check failed for %s: %v\n", sub.Id, midErr.GetMessage())
		return s.toSubscriptionResponse(ctx, uow, sub), nil
	}

	if status != nil {
		// Same transition rules as the webhook, minus the signature check
		// since this came from a direct API call.
		if err := s.applySubscriptionTransition(ctx, sub, status.TransactionStatus); err != nil {
			return nil, err
		}
	}

	return s.toSubscriptionResponse(ctx, uow, sub), nil
}

func (s *paymentService) applySubscriptionTransition(ctx context.Context, sub *entity.TenantSubscription, transactionStatus string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	changed, err := s.transitionSubscription(ctx, uow, sub, transactionStatus)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return uow.Commit()
}

// transitionSubscription applies a gateway transaction status to the
// subscription inside the caller's transaction. Webhook notifications and
// manual syncs both funnel through here, so a settlement discovered either
// way allocates the plan's included credits on first activation. Returns
// false when the status maps to no state change.
func (s *paymentService) transitionSubscription(ctx context.Context, uow unitofwork.UnitOfWork, sub *entity.TenantSubscription, transactionStatus string) (bool, error) {
	newStatus, newPaymentStatus, actionable := mapGatewayStatus(transactionStatus)
	if !actionable {
		return false, nil
	}
	if sub.Status == newStatus && sub.PaymentStatus == newPaymentStatus {
		return false, nil
	}

	firstActivation := sub.ActivationPending(newStatus)

	sub.Status = newStatus
	sub.PaymentStatus = newPaymentStatus

	if err := uow.SubscriptionRepository().UpdateSubscription(ctx, sub); err != nil {
		return false, err
	}

	if firstActivation {
		plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: sub.PlanId})
		if err != nil {
			return false, err
		}
		if plan != nil && plan.IncludedCredits > 0 {
			note := fmt.Sprintf("plan allocation: %s", plan.Name)
			if err := s.creditService.Credit(ctx, uow, sub.TenantId, plan.IncludedCredits, entity.CreditTxPlanAllocation, note); err != nil {
				return false, err
			}
		}
	}

	return true, nil
}

func (s *paymentService) GetSubscription(ctx context.Context, tenantId uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sub, err := s.latestSubscription(ctx, uow, tenantId)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperrors.NotFound("no subscription found")
	}
	return s.toSubscriptionResponse(ctx, uow, sub), nil
}

func (s *paymentService) RequestCancellation(ctx context.Context, tenantId uuid.UUID, req *dto.RequestCancellationRequest) (*dto.CancellationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.latestSubscription(ctx, uow, tenantId)
	if err != nil {
		return nil, err
	}
	if sub == nil || !sub.Entitled(time.Now()) {
		return nil, apperrors.NotFound("no active subscription to cancel")
	}
	if sub.CancelAtPeriodEnd {
		return nil, apperrors.Conflict("cancellation already requested")
	}

	now := time.Now()
	cancellation := &entity.CancellationRequest{
		ID:             uuid.New(),
		SubscriptionID: sub.Id,
		TenantID:       tenantId,
		Reason:         req.Reason,
		Status:         entity.CancellationStatusPending,
		EffectiveDate:  sub.CurrentPeriodEnd,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	sub.CancelAtPeriodEnd = true

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CancellationRepository().Create(ctx, cancellation); err != nil {
		return nil, err
	}
	if err := uow.SubscriptionRepository().UpdateSubscription(ctx, sub); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CancellationResponse{
		Id:            cancellation.ID,
		Status:        string(cancellation.Status),
		EffectiveDate: cancellation.EffectiveDate,
	}, nil
}

// CreatePortalSession points the tenant at the billing management page.
// Midtrans has no hosted customer portal, so the session resolves to the
// app's own billing settings with an optional return_url carried through.
func (s *paymentService) CreatePortalSession(ctx context.Context, tenantId uuid.UUID, req *dto.BillingPortalRequest) (*dto.BillingPortalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.latestSubscription(ctx, uow, tenantId)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperrors.NotFound("no subscription found")
	}

	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:5173"
	}
	redirect := strings.TrimRight(clientURL, "/") + "/settings/billing"
	if req.ReturnUrl != "" {
		q := url.Values{}
		q.Set("return_url", req.ReturnUrl)
		redirect += "?" + q.Encode()
	}

	return &dto.BillingPortalResponse{RedirectUrl: redirect}, nil
}

func (s *paymentService) latestSubscription(ctx context.Context, uow unitofwork.UnitOfWork, tenantId uuid.UUID) (*entity.TenantSubscription, error) {
	subs, err := uow.SubscriptionRepository().FindAllSubscriptions(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 1, Offset: 0},
	)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, nil
	}
	return subs[0], nil
}

func (s *paymentService) toSubscriptionResponse(ctx context.Context, uow unitofwork.UnitOfWork, sub *entity.TenantSubscription) *dto.SubscriptionResponse {
	res := &dto.SubscriptionResponse{
		Id:                 sub.Id,
		PlanId:             sub.PlanId,
		Status:             string(sub.Status),
		BillingCycle:       string(sub.BillingCycle),
		CurrentPeriodStart: sub.CurrentPeriodStart,
		CurrentPeriodEnd:   sub.CurrentPeriodEnd,
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
		PaymentStatus:      string(sub.PaymentStatus),
	}
	if plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: sub.PlanId}); err == nil && plan != nil {
		res.PlanName = plan.Name
	}
	return res
}
