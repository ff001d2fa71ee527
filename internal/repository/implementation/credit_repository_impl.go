package implementation

import (
	"context"
	"errors"
	"fmt"

	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/mapper"
	"escapedesk-be/internal/model"
	"escapedesk-be/internal/repository/contract"
	"escapedesk-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreditRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CreditMapper
}

func NewCreditRepository(db *gorm.DB) contract.CreditRepository {
	return &CreditRepositoryImpl{
		db:     db,
		mapper: mapper.NewCreditMapper(),
	}
}

func (r *CreditRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CreditRepositoryImpl) CreateBalance(ctx context.Context, balance *entity.CreditBalance) error {
	m := r.mapper.BalanceToModel(balance)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*balance = *r.mapper.BalanceToEntity(m)
	return nil
}

func (r *CreditRepositoryImpl) GetBalance(ctx context.Context, tenantId uuid.UUID) (*entity.CreditBalance, error) {
	var m model.CreditBalance
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BalanceToEntity(&m), nil
}

func (r *CreditRepositoryImpl) FindAllBalances(ctx context.Context, specs ...specification.Specification) ([]*entity.CreditBalance, error) {
	var models []model.CreditBalance
	db := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	balances := make([]*entity.CreditBalance, len(models))
	for i := range models {
		balances[i] = r.mapper.BalanceToEntity(&models[i])
	}
	return balances, nil
}

// balanceDelta carries the RETURNING row from ApplyDelta's update.
type balanceDelta struct {
	Balance int
}

func (r *CreditRepositoryImpl) ApplyDelta(ctx context.Context, tenantId uuid.UUID, delta int) (int, int, bool, error) {
	// Single conditional UPDATE: the WHERE clause rejects any debit that
	// would push the balance negative, so concurrent debits cannot
	// interleave into an overdraft.
	var row balanceDelta
	result := r.db.WithContext(ctx).Raw(`
		UPDATE credit_balances
		SET balance = balance + ?, updated_at = now()
		WHERE tenant_id = ? AND balance + ? >= 0
		RETURNING balance
	`, delta, tenantId, delta).Scan(&row)
	if result.Error != nil {
		return 0, 0, false, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, 0, false, nil
	}
	after := row.Balance
	return after - delta, after, true, nil
}

func (r *CreditRepositoryImpl) IncrementUsage(ctx context.Context, tenantId uuid.UUID, counter contract.UsageCounter) error {
	switch counter {
	case contract.UsageBookings, contract.UsageWaivers, contract.UsageAiConversations:
	default:
		return fmt.Errorf("unknown usage counter: %s", counter)
	}
	return r.db.WithContext(ctx).Model(&model.CreditBalance{}).
		Where("tenant_id = ?", tenantId).
		Update(string(counter), gorm.Expr(string(counter)+" + 1")).Error
}

func (r *CreditRepositoryImpl) AddToBucket(ctx context.Context, tenantId uuid.UUID, bucket contract.CreditBucket, amount int) error {
	switch bucket {
	case contract.BucketPlan, contract.BucketPurchased:
	default:
		return fmt.Errorf("unknown credit bucket: %s", bucket)
	}
	return r.db.WithContext(ctx).Model(&model.CreditBalance{}).
		Where("tenant_id = ?", tenantId).
		Update(string(bucket), gorm.Expr(string(bucket)+" + ?", amount)).Error
}

func (r *CreditRepositoryImpl) AppendTransaction(ctx context.Context, tx *entity.CreditTransaction) error {
	m := r.mapper.TransactionToModel(tx)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tx = *r.mapper.TransactionToEntity(m)
	return nil
}

func (r *CreditRepositoryImpl) FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.CreditTransaction, error) {
	var models []*model.CreditTransaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CreditTransaction, len(models))
	for i, m := range models {
		entities[i] = r.mapper.TransactionToEntity(m)
	}
	return entities, nil
}

func (r *CreditRepositoryImpl) FindOnePackage(ctx context.Context, specs ...specification.Specification) (*entity.CreditPackage, error) {
	var m model.CreditPackage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PackageToEntity(&m), nil
}

func (r *CreditRepositoryImpl) FindAllPackages(ctx context.Context, specs ...specification.Specification) ([]*entity.CreditPackage, error) {
	var models []*model.CreditPackage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CreditPackage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PackageToEntity(m)
	}
	return entities, nil
}
