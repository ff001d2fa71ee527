package service

import (
	"context"
	"os"
	"time"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/pkg/apperrors"
	"escapedesk-be/internal/repository/redisstore"
	"escapedesk-be/internal/repository/specification"
	"escapedesk-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type IPortalService interface {
	Lookup(ctx context.Context, tenantId uuid.UUID, req *dto.PortalLookupRequest) (*dto.PortalSessionResponse, error)
	ResolveSession(ctx context.Context, token string) (*entity.PortalSession, error)
	MyBookings(ctx context.Context, session *entity.PortalSession) (*dto.PortalBookingsResponse, error)
	MyWaivers(ctx context.Context, session *entity.PortalSession) ([]dto.WaiverRecordResponse, error)
}

type portalService struct {
	uowFactory   unitofwork.RepositoryFactory
	sessionStore redisstore.PortalSessionStore
}

func NewPortalService(uowFactory unitofwork.RepositoryFactory, sessionStore redisstore.PortalSessionStore) IPortalService {
	return &portalService{
		uowFactory:   uowFactory,
		sessionStore: sessionStore,
	}
}

// Lookup matches a customer by exactly one identifier and, on a hit,
// issues a short-lived portal session. Misses return not-found without
// revealing which identifier failed.
func (s *portalService) Lookup(ctx context.Context, tenantId uuid.UUID, req *dto.PortalLookupRequest) (*dto.PortalSessionResponse, error) {
	var method entity.PortalLookupMethod
	var key string

	switch {
	case req.Email != "":
		method = entity.PortalLookupEmail
		key = entity.NormalizeEmail(req.Email)
	case req.Reference != "":
		method = entity.PortalLookupReference
		key = entity.NormalizeReference(req.Reference)
	case req.Phone != "":
		method = entity.PortalLookupPhone
		key = entity.NormalizePhone(req.Phone)
	default:
		return nil, apperrors.Validation("one of email, reference or phone is required")
	}
	if key == "" {
		return nil, apperrors.Validation("lookup value is empty")
	}

	found, err := s.hasRecords(ctx, tenantId, method, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NotFound("no bookings or waivers found")
	}

	now := time.Now()
	session := &entity.PortalSession{
		ID:        uuid.New().String(),
		TenantId:  tenantId.String(),
		Method:    method,
		LookupKey: key,
		IssuedAt:  now,
		ExpiresAt: now.Add(entity.PortalSessionTTL),
	}
	if err := s.sessionStore.Save(ctx, session); err != nil {
		return nil, err
	}

	token, err := signPortalToken(session)
	if err != nil {
		return nil, err
	}

	return &dto.PortalSessionResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// ResolveSession validates a portal JWT and loads the backing session
// from Redis; revoked or expired sessions come back as unauthorized.
func (s *portalService) ResolveSession(ctx context.Context, tokenStr string) (*entity.PortalSession, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.Unauthorized("unexpected signing method")
		}
		return []byte(jwtSecret()), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("invalid portal token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.Unauthorized("invalid portal token")
	}
	if scope, _ := claims["scope"].(string); scope != "portal" {
		return nil, apperrors.Unauthorized("invalid portal token")
	}
	sessionId, _ := claims["session_id"].(string)
	if sessionId == "" {
		return nil, apperrors.Unauthorized("invalid portal token")
	}

	session, err := s.sessionStore.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil || time.Now().After(session.ExpiresAt) {
		return nil, apperrors.Unauthorized("portal session expired")
	}
	return session, nil
}

func (s *portalService) MyBookings(ctx context.Context, session *entity.PortalSession) (*dto.PortalBookingsResponse, error) {
	tenantId, err := uuid.Parse(session.TenantId)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid portal session")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	bookings, err := uow.BookingRepository().FindAll(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		s.lookupSpec(session, "booking"),
		specification.OrderBy{Field: "date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.PortalBookingsResponse{
		Bookings: make([]dto.BookingResponse, 0, len(bookings)),
		Waivers:  []dto.WaiverRecordResponse{},
	}

	for _, b := range bookings {
		perms := b.Permissions(time.Now(), time.UTC)
		res.Bookings = append(res.Bookings, dto.BookingResponse{
			Id:            b.Id,
			Reference:     b.Reference,
			ActivityId:    b.ActivityId,
			VenueId:       b.VenueId,
			CustomerName:  b.CustomerName,
			CustomerEmail: b.CustomerEmail,
			CustomerPhone: b.CustomerPhone,
			Date:          b.Date.Format("2006-01-02"),
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			PartySize:     b.PartySize,
			TotalAmount:   b.TotalAmount,
			PaymentStatus: string(b.PaymentStatus),
			Status:        string(b.Status),
			CanCancel:     perms.CanCancel,
			CanReschedule: perms.CanReschedule,
			CreatedAt:     b.CreatedAt,
		})
	}

	waivers, err := s.waiversFor(ctx, uow, tenantId, session)
	if err != nil {
		return nil, err
	}
	res.Waivers = waivers

	return res, nil
}

func (s *portalService) MyWaivers(ctx context.Context, session *entity.PortalSession) ([]dto.WaiverRecordResponse, error) {
	tenantId, err := uuid.Parse(session.TenantId)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid portal session")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.waiversFor(ctx, uow, tenantId, session)
}

// waiversFor resolves the session's waiver records. Phone lookups come
// back empty: phone isn't collected on every waiver.
func (s *portalService) waiversFor(ctx context.Context, uow unitofwork.UnitOfWork, tenantId uuid.UUID, session *entity.PortalSession) ([]dto.WaiverRecordResponse, error) {
	res := []dto.WaiverRecordResponse{}
	if session.Method == entity.PortalLookupPhone {
		return res, nil
	}

	waivers, err := uow.WaiverRepository().FindAllRecords(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		s.lookupSpec(session, "waiver"),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	for _, w := range waivers {
		res = append(res, *toWaiverRecordResponse(w))
	}
	return res, nil
}

func (s *portalService) hasRecords(ctx context.Context, tenantId uuid.UUID, method entity.PortalLookupMethod, key string) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := &entity.PortalSession{Method: method, LookupKey: key}

	count, err := uow.BookingRepository().Count(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		s.lookupSpec(session, "booking"),
	)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	if method == entity.PortalLookupPhone {
		return false, nil
	}

	waivers, err := uow.WaiverRepository().FindAllRecords(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		s.lookupSpec(session, "waiver"),
		specification.Pagination{Limit: 1, Offset: 0},
	)
	if err != nil {
		return false, err
	}
	return len(waivers) > 0, nil
}

// lookupSpec maps the session lookup method onto the right column for
// each record kind.
func (s *portalService) lookupSpec(session *entity.PortalSession, kind string) specification.Specification {
	switch session.Method {
	case entity.PortalLookupReference:
		if kind == "waiver" {
			return specification.Filter("waiver_code", session.LookupKey)
		}
		return specification.Filter("reference", session.LookupKey)
	case entity.PortalLookupPhone:
		return specification.Filter("customer_phone", session.LookupKey)
	default:
		if kind == "waiver" {
			return specification.Filter("participant_email", session.LookupKey)
		}
		return specification.Filter("customer_email", session.LookupKey)
	}
}

func jwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return secret
}

func signPortalToken(session *entity.PortalSession) (string, error) {
	claims := jwt.MapClaims{
		"session_id": session.ID,
		"tenant_id":  session.TenantId,
		"scope":      "portal",
		"exp":        session.ExpiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret()))
}
