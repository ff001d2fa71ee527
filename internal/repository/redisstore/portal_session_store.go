package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"escapedesk-be/internal/entity"

	"github.com/redis/go-redis/v9"
)

// PortalSessionStore keeps customer portal sessions in Redis so any
// instance behind the load balancer can validate a portal token.
type PortalSessionStore interface {
	Save(ctx context.Context, session *entity.PortalSession) error
	Get(ctx context.Context, sessionId string) (*entity.PortalSession, error)
	Revoke(ctx context.Context, sessionId string) error
}

type portalSessionStore struct {
	rdb *redis.Client
}

func NewPortalSessionStore(rdb *redis.Client) PortalSessionStore {
	return &portalSessionStore{rdb: rdb}
}

func sessionKey(id string) string {
	return fmt.Sprintf("portal:session:%s", id)
}

func (s *portalSessionStore) Save(ctx context.Context, session *entity.PortalSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("portal session already expired")
	}
	return s.rdb.Set(ctx, sessionKey(session.ID), data, ttl).Err()
}

func (s *portalSessionStore) Get(ctx context.Context, sessionId string) (*entity.PortalSession, error) {
	data, err := s.rdb.Get(ctx, sessionKey(sessionId)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var session entity.PortalSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *portalSessionStore) Revoke(ctx context.Context, sessionId string) error {
	return s.rdb.Del(ctx, sessionKey(sessionId)).Err()
}
