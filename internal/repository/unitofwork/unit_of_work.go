package unitofwork

import (
	"context"

	"escapedesk-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TenantRepository() contract.TenantRepository
	StaffRepository() contract.StaffRepository
	CatalogRepository() contract.CatalogRepository
	BookingRepository() contract.BookingRepository
	CreditRepository() contract.CreditRepository
	SubscriptionRepository() contract.SubscriptionRepository
	CancellationRepository() contract.CancellationRepository
	RefundRepository() contract.RefundRepository
	WaiverRepository() contract.WaiverRepository
	MediaRepository() contract.MediaRepository
}
