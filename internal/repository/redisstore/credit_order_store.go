package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// PendingCreditOrder links a payment gateway order id back to the tenant
// and package it pays for, until the webhook settles or fails it.
type PendingCreditOrder struct {
	OrderId   string    `json:"order_id"`
	TenantId  uuid.UUID `json:"tenant_id"`
	PackageId uuid.UUID `json:"package_id"`
	Credits   int       `json:"credits"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type CreditOrderStore interface {
	Save(ctx context.Context, order *PendingCreditOrder) error
	Get(ctx context.Context, orderId string) (*PendingCreditOrder, error)
	Delete(ctx context.Context, orderId string) error
}

type creditOrderStore struct {
	rdb *redis.Client
}

func NewCreditOrderStore(rdb *redis.Client) CreditOrderStore {
	return &creditOrderStore{rdb: rdb}
}

func orderKey(orderId string) string {
	return fmt.Sprintf("payment:credit_order:%s", orderId)
}

func (s *creditOrderStore) Save(ctx context.Context, order *PendingCreditOrder) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	// Gateway sessions expire within 24h; keep the mapping a bit longer
	// so late webhooks still resolve.
	return s.rdb.Set(ctx, orderKey(order.OrderId), data, 48*time.Hour).Err()
}

func (s *creditOrderStore) Get(ctx context.Context, orderId string) (*PendingCreditOrder, error) {
	data, err := s.rdb.Get(ctx, orderKey(orderId)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var order PendingCreditOrder
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *creditOrderStore) Delete(ctx context.Context, orderId string) error {
	return s.rdb.Del(ctx, orderKey(orderId)).Err()
}
