package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/pkg/apperrors"
	"escapedesk-be/internal/repository/specification"
	"escapedesk-be/internal/repository/unitofwork"

	"escapedesk-be/pkg/events"
	pktNats "escapedesk-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

func hashRefreshToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return hex.EncodeToString(hasher.Sum(nil))
}

func signAccessToken(user *entity.StaffUser) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.Id.String(),
		"tenant_id": user.TenantId.String(),
		"role":      user.Role,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret()))
}

// Register creates the tenant, its owner account and a zeroed credit
// balance in one transaction.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.StaffRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, apperrors.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tenant := &entity.Tenant{
		Id:           uuid.New(),
		Name:         req.TenantName,
		Slug:         slugify(req.TenantName),
		ContactEmail: req.Email,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	owner := &entity.StaffUser{
		Id:           uuid.New(),
		TenantId:     tenant.Id,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         "owner",
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// New tenants start with an empty balance; credits arrive via plan
	// allocation or purchase.
	balance := &entity.CreditBalance{
		Id:          uuid.New(),
		TenantId:    tenant.Id,
		Balance:     0,
		LastResetAt: now,
		NextResetAt: now.AddDate(0, 1, 0),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.TenantRepository().Create(ctx, tenant); err != nil {
		return nil, err
	}
	if err := uow.StaffRepository().Create(ctx, owner); err != nil {
		return nil, err
	}
	if err := uow.CreditRepository().CreateBalance(ctx, balance); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "TENANT_REGISTERED",
			Data: map[string]interface{}{
				"tenant_id":   tenant.Id,
				"tenant_name": tenant.Name,
				"email":       owner.Email,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish TENANT_REGISTERED event: %v\n", err)
		}
	}

	return &dto.RegisterResponse{Id: owner.Id, TenantId: tenant.Id, Email: owner.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.StaffRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperrors.Validation("invalid credentials")
	}
	if user == nil {
		return nil, apperrors.Validation("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Validation("invalid credentials")
	}

	if user.Status != "active" {
		return nil, apperrors.Validation("account is not active")
	}

	signedToken, err := signAccessToken(user)
	if err != nil {
		return nil, err
	}

	var rawRefreshToken string
	if req.RememberMe {
		rawRefreshToken = uuid.New().String()

		refreshTokenEntity := &entity.StaffRefreshToken{
			Id:        uuid.New(),
			UserId:    user.Id,
			TokenHash: hashRefreshToken(rawRefreshToken),
			ExpiresAt: time.Now().Add(time.Hour * 24 * 30),
			Revoked:   false,
			CreatedAt: time.Now(),
			IpAddress: ipAddress,
			UserAgent: userAgent,
		}

		if err := uow.StaffRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
			return nil, fmt.Errorf("failed to create session: %v", err)
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "STAFF_LOGIN",
			Data: map[string]interface{}{
				"user_id":   user.Id,
				"tenant_id": user.TenantId,
				"device":    userAgent,
				"time":      time.Now().Format(time.RFC822),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish STAFF_LOGIN event: %v\n", err)
		}
	}

	return &dto.LoginResponse{
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
		User: dto.StaffDTO{
			Id:       user.Id,
			TenantId: user.TenantId,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     user.Role,
		},
	}, nil
}

// Refresh rotates the refresh token: the presented token is revoked and a
// fresh pair is issued.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stored, err := uow.StaffRepository().FindRefreshToken(ctx, specification.ByTokenHash{Hash: hashRefreshToken(refreshToken)})
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.Revoked || time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.Validation("invalid or expired refresh token")
	}

	user, err := uow.StaffRepository().FindOne(ctx, specification.ByID{ID: stored.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != "active" {
		return nil, apperrors.Validation("account is not active")
	}

	signedToken, err := signAccessToken(user)
	if err != nil {
		return nil, err
	}

	newRawToken := uuid.New().String()
	newToken := &entity.StaffRefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashRefreshToken(newRawToken),
		ExpiresAt: time.Now().Add(time.Hour * 24 * 30),
		Revoked:   false,
		CreatedAt: time.Now(),
		IpAddress: stored.IpAddress,
		UserAgent: stored.UserAgent,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.StaffRepository().RevokeRefreshToken(ctx, stored.Id); err != nil {
		return nil, err
	}
	if err := uow.StaffRepository().CreateRefreshToken(ctx, newToken); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  signedToken,
		RefreshToken: newRawToken,
		User: dto.StaffDTO{
			Id:       user.Id,
			TenantId: user.TenantId,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     user.Role,
		},
	}, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stored, err := uow.StaffRepository().FindRefreshToken(ctx, specification.ByTokenHash{Hash: hashRefreshToken(refreshToken)})
	if err != nil {
		return err
	}
	if stored == nil {
		return nil
	}
	return uow.StaffRepository().RevokeRefreshToken(ctx, stored.Id)
}
