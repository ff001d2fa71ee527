package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"testing"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidWebhookSignature(t *testing.T) {
	serverKey := "SB-Mid-server-testkey"
	req := &dto.PaymentWebhookRequest{
		OrderId:     "CR-11111111-2222-3333-4444-555555555555",
		StatusCode:  "200",
		GrossAmount: "250000.00",
	}
	req.SignatureKey = fmt.Sprintf("%x", sha512.Sum512([]byte(req.OrderId+req.StatusCode+req.GrossAmount+serverKey)))

	assert.True(t, validWebhookSignature(req, serverKey))

	t.Run("wrong server key", func(t *testing.T) {
		assert.False(t, validWebhookSignature(req, "some-other-key"))
	})

	t.Run("tampered amount", func(t *testing.T) {
		tampered := *req
		tampered.GrossAmount = "1.00"
		assert.False(t, validWebhookSignature(&tampered, serverKey))
	})

	t.Run("missing signature", func(t *testing.T) {
		unsigned := *req
		unsigned.SignatureKey = ""
		assert.False(t, validWebhookSignature(&unsigned, serverKey))
	})
}

func TestMapGatewayStatus(t *testing.T) {
	tests := []struct {
		status         string
		wantSub        entity.SubscriptionStatus
		wantPayment    entity.PaymentStatus
		wantActionable bool
	}{
		{"capture", entity.SubscriptionStatusActive, entity.PaymentStatusPaid, true},
		{"settlement", entity.SubscriptionStatusActive, entity.PaymentStatusPaid, true},
		{"deny", entity.SubscriptionStatusUnpaid, entity.PaymentStatusFailed, true},
		{"cancel", entity.SubscriptionStatusUnpaid, entity.PaymentStatusFailed, true},
		{"expire", entity.SubscriptionStatusUnpaid, entity.PaymentStatusFailed, true},
		{"pending", "", "", false},
		{"refund", "", "", false},
		{"", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.status, func(t *testing.T) {
			sub, payment, actionable := mapGatewayStatus(tc.status)
			assert.Equal(t, tc.wantSub, sub)
			assert.Equal(t, tc.wantPayment, payment)
			assert.Equal(t, tc.wantActionable, actionable)

			// A replayed status maps to the same pair every time.
			sub2, payment2, actionable2 := mapGatewayStatus(tc.status)
			assert.Equal(t, sub, sub2)
			assert.Equal(t, payment, payment2)
			assert.Equal(t, actionable, actionable2)
		})
	}
}

func TestApplySubscriptionTransition(t *testing.T) {
	newService := func(plan *entity.SubscriptionPlan) (*paymentService, *fakeSubscriptionRepo, *fakeCreditService, *fakeUnitOfWork) {
		repo := &fakeSubscriptionRepo{plan: plan}
		uow := &fakeUnitOfWork{subscriptions: repo}
		credits := &fakeCreditService{}
		s := &paymentService{
			uowFactory:    &fakeUowFactory{uow: uow},
			creditService: credits,
		}
		return s, repo, credits, uow
	}

	t.Run("settlement found by sync allocates plan credits", func(t *testing.T) {
		plan := &entity.SubscriptionPlan{Id: uuid.New(), Name: "Pro", IncludedCredits: 100}
		sub := &entity.TenantSubscription{
			Id:            uuid.New(),
			TenantId:      uuid.New(),
			PlanId:        plan.Id,
			Status:        entity.SubscriptionStatusIncomplete,
			PaymentStatus: entity.PaymentStatusPending,
		}
		s, repo, credits, uow := newService(plan)

		err := s.applySubscriptionTransition(context.Background(), sub, "settlement")

		assert.NoError(t, err)
		assert.Equal(t, entity.SubscriptionStatusActive, sub.Status)
		assert.Equal(t, entity.PaymentStatusPaid, sub.PaymentStatus)
		assert.Len(t, repo.updated, 1)
		assert.Equal(t, []int{100}, credits.credited)
		assert.True(t, uow.committed)
	})

	t.Run("replayed settlement allocates nothing", func(t *testing.T) {
		plan := &entity.SubscriptionPlan{Id: uuid.New(), Name: "Pro", IncludedCredits: 100}
		sub := &entity.TenantSubscription{
			Id:            uuid.New(),
			TenantId:      uuid.New(),
			PlanId:        plan.Id,
			Status:        entity.SubscriptionStatusActive,
			PaymentStatus: entity.PaymentStatusPaid,
		}
		s, repo, credits, _ := newService(plan)

		err := s.applySubscriptionTransition(context.Background(), sub, "settlement")

		assert.NoError(t, err)
		assert.Empty(t, repo.updated)
		assert.Empty(t, credits.credited)
	})

	t.Run("pending status is a no-op", func(t *testing.T) {
		sub := &entity.TenantSubscription{
			Id:            uuid.New(),
			Status:        entity.SubscriptionStatusIncomplete,
			PaymentStatus: entity.PaymentStatusPending,
		}
		s, repo, credits, _ := newService(nil)

		err := s.applySubscriptionTransition(context.Background(), sub, "pending")

		assert.NoError(t, err)
		assert.Empty(t, repo.updated)
		assert.Empty(t, credits.credited)
		assert.Equal(t, entity.SubscriptionStatusIncomplete, sub.Status)
	})
}
