package service

import (
	"context"

	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/repository/contract"
	"escapedesk-be/internal/repository/specification"
	"escapedesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeUnitOfWork embeds the interface so tests only override what the code
// under test touches; anything unexpected panics on the nil embed.
type fakeUnitOfWork struct {
	unitofwork.UnitOfWork
	subscriptions *fakeSubscriptionRepo
	waivers       *fakeWaiverRepo
	committed     bool
	rolledBack    bool
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { f.committed = true; return nil }
func (f *fakeUnitOfWork) Rollback() error                 { f.rolledBack = true; return nil }

func (f *fakeUnitOfWork) SubscriptionRepository() contract.SubscriptionRepository {
	return f.subscriptions
}

func (f *fakeUnitOfWork) WaiverRepository() contract.WaiverRepository {
	return f.waivers
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeSubscriptionRepo struct {
	contract.SubscriptionRepository
	plan    *entity.SubscriptionPlan
	updated []*entity.TenantSubscription
}

func (f *fakeSubscriptionRepo) UpdateSubscription(ctx context.Context, sub *entity.TenantSubscription) error {
	f.updated = append(f.updated, sub)
	return nil
}

func (f *fakeSubscriptionRepo) FindOnePlan(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error) {
	return f.plan, nil
}

type fakeWaiverRepo struct {
	contract.WaiverRepository
	template       *entity.WaiverTemplate
	record         *entity.WaiverRecord
	created        []*entity.WaiverRecord
	updatedRecords []*entity.WaiverRecord
	usageBumps     map[uuid.UUID]int
}

func (f *fakeWaiverRepo) FindOneTemplate(ctx context.Context, specs ...specification.Specification) (*entity.WaiverTemplate, error) {
	return f.template, nil
}

func (f *fakeWaiverRepo) FindOneRecord(ctx context.Context, specs ...specification.Specification) (*entity.WaiverRecord, error) {
	return f.record, nil
}

func (f *fakeWaiverRepo) CreateRecord(ctx context.Context, record *entity.WaiverRecord) error {
	f.created = append(f.created, record)
	return nil
}

func (f *fakeWaiverRepo) UpdateRecord(ctx context.Context, record *entity.WaiverRecord) error {
	f.updatedRecords = append(f.updatedRecords, record)
	return nil
}

func (f *fakeWaiverRepo) IncrementTemplateUsage(ctx context.Context, templateId uuid.UUID) error {
	if f.usageBumps == nil {
		f.usageBumps = map[uuid.UUID]int{}
	}
	f.usageBumps[templateId]++
	return nil
}

type fakeCreditService struct {
	ICreditService
	credited []int
	debits   int
}

func (f *fakeCreditService) Credit(ctx context.Context, uow unitofwork.UnitOfWork, tenantId uuid.UUID, amount int, txType entity.CreditTransactionType, notes string) error {
	f.credited = append(f.credited, amount)
	return nil
}

func (f *fakeCreditService) DebitAction(ctx context.Context, uow unitofwork.UnitOfWork, tenantId uuid.UUID, txType entity.CreditTransactionType, counter contract.UsageCounter, bookingId *uuid.UUID) error {
	f.debits++
	return nil
}
