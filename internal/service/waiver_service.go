package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/pkg/apperrors"
	"escapedesk-be/internal/pkg/refcode"
	"escapedesk-be/internal/repository/contract"
	"escapedesk-be/internal/repository/specification"
	"escapedesk-be/internal/repository/unitofwork"

	"escapedesk-be/pkg/events"
	pktNats "escapedesk-be/pkg/nats"

	"github.com/google/uuid"
)

const defaultSignatureExpiryHours = 72

type IWaiverService interface {
	CreateTemplate(ctx context.Context, tenantId uuid.UUID, req *dto.CreateWaiverTemplateRequest) (*dto.WaiverTemplateResponse, error)
	UpdateTemplate(ctx context.Context, tenantId, templateId uuid.UUID, req *dto.UpdateWaiverTemplateRequest) (*dto.WaiverTemplateResponse, error)
	DeleteTemplate(ctx context.Context, tenantId, templateId uuid.UUID) error
	GetTemplate(ctx context.Context, tenantId, templateId uuid.UUID) (*dto.WaiverTemplateResponse, error)
	ListTemplates(ctx context.Context, tenantId uuid.UUID) ([]*dto.WaiverTemplateResponse, error)
	DuplicateTemplate(ctx context.Context, tenantId, templateId uuid.UUID) (*dto.WaiverTemplateResponse, error)

	SubmitWaiver(ctx context.Context, tenantId uuid.UUID, req *dto.SubmitWaiverRequest) (*dto.WaiverRecordResponse, error)
	RequestSignature(ctx context.Context, tenantId uuid.UUID, req *dto.RequestSignatureRequest) (*dto.WaiverRecordResponse, error)
	SignWaiver(ctx context.Context, code string, req *dto.SignWaiverRequest) (*dto.WaiverRecordResponse, error)
	ExpirePending(ctx context.Context, now time.Time) (int64, error)

	CheckIn(ctx context.Context, tenantId uuid.UUID, code string, staffId *uuid.UUID) (*dto.WaiverRecordResponse, error)
	FindByCode(ctx context.Context, code string) (*dto.WaiverRecordResponse, error)
	ListRecords(ctx context.Context, tenantId uuid.UUID, req *dto.ListWaiverRecordsRequest) ([]*dto.WaiverRecordResponse, error)
	ListCheckIns(ctx context.Context, tenantId, recordId uuid.UUID) ([]*dto.WaiverCheckInResponse, error)
}

type waiverService struct {
	uowFactory     unitofwork.RepositoryFactory
	creditService  ICreditService
	eventPublisher *pktNats.Publisher
}

func NewWaiverService(
	uowFactory unitofwork.RepositoryFactory,
	creditService ICreditService,
	eventPublisher *pktNats.Publisher,
) IWaiverService {
	return &waiverService{
		uowFactory:     uowFactory,
		creditService:  creditService,
		eventPublisher: eventPublisher,
	}
}

// --- Templates ---

func (s *waiverService) CreateTemplate(ctx context.Context, tenantId uuid.UUID, req *dto.CreateWaiverTemplateRequest) (*dto.WaiverTemplateResponse, error) {
	template := &entity.WaiverTemplate{
		Id:             uuid.New(),
		TenantId:       tenantId,
		Name:           strings.TrimSpace(req.Name),
		Type:           req.Type,
		Content:        req.Content,
		RequiredFields: req.RequiredFields,
		Status:         entity.WaiverTemplateDraft,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WaiverRepository().CreateTemplate(ctx, template); err != nil {
		return nil, err
	}
	return toWaiverTemplateResponse(template), nil
}

func (s *waiverService) UpdateTemplate(ctx context.Context, tenantId, templateId uuid.UUID, req *dto.UpdateWaiverTemplateRequest) (*dto.WaiverTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := s.templateOwnedBy(ctx, uow, tenantId, templateId)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		template.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		template.Type = *req.Type
	}
	if req.Content != nil {
		template.Content = *req.Content
	}
	if req.RequiredFields != nil {
		template.RequiredFields = req.RequiredFields
	}
	if req.Status != nil {
		template.Status = entity.WaiverTemplateStatus(*req.Status)
	}

	if err := uow.WaiverRepository().UpdateTemplate(ctx, template); err != nil {
		return nil, err
	}
	return toWaiverTemplateResponse(template), nil
}

func (s *waiverService) DeleteTemplate(ctx context.Context, tenantId, templateId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := s.templateOwnedBy(ctx, uow, tenantId, templateId)
	if err != nil {
		return err
	}
	return uow.WaiverRepository().DeleteTemplate(ctx, template.Id)
}

func (s *waiverService) GetTemplate(ctx context.Context, tenantId, templateId uuid.UUID) (*dto.WaiverTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := s.templateOwnedBy(ctx, uow, tenantId, templateId)
	if err != nil {
		return nil, err
	}
	return toWaiverTemplateResponse(template), nil
}

func (s *waiverService) ListTemplates(ctx context.Context, tenantId uuid.UUID) ([]*dto.WaiverTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	templates, err := uow.WaiverRepository().FindAllTemplates(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	var res []*dto.WaiverTemplateResponse
	for _, t := range templates {
		res = append(res, toWaiverTemplateResponse(t))
	}
	return res, nil
}

func (s *waiverService) DuplicateTemplate(ctx context.Context, tenantId, templateId uuid.UUID) (*dto.WaiverTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := s.templateOwnedBy(ctx, uow, tenantId, templateId)
	if err != nil {
		return nil, err
	}

	dup := template.Duplicate()
	if err := uow.WaiverRepository().CreateTemplate(ctx, dup); err != nil {
		return nil, err
	}
	return toWaiverTemplateResponse(dup), nil
}

// --- Records ---

func (s *waiverService) SubmitWaiver(ctx context.Context, tenantId uuid.UUID, req *dto.SubmitWaiverRequest) (*dto.WaiverRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := s.templateOwnedBy(ctx, uow, tenantId, req.TemplateId)
	if err != nil {
		return nil, err
	}
	if template.Status != entity.WaiverTemplateActive {
		return nil, apperrors.Validation("waiver template is not active")
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := &entity.WaiverRecord{
		Id:               uuid.New(),
		TenantId:         tenantId,
		TemplateId:       template.Id,
		BookingId:        req.BookingId,
		WaiverCode:       refcode.New("WV"),
		ParticipantName:  strings.TrimSpace(req.ParticipantName),
		ParticipantEmail: strings.ToLower(strings.TrimSpace(req.ParticipantEmail)),
		ParticipantPhone: strings.TrimSpace(req.ParticipantPhone),
		DateOfBirth:      dob,
		Signature:        req.Signature,
		Status:           entity.WaiverRecordSigned,
		SignedAt:         &now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.WaiverRepository().CreateRecord(ctx, record); err != nil {
		return nil, err
	}
	if err := uow.WaiverRepository().IncrementTemplateUsage(ctx, template.Id); err != nil {
		return nil, err
	}
	if err := s.creditService.DebitAction(ctx, uow, tenantId, entity.CreditTxWaiver, contract.UsageWaivers, req.BookingId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishWaiverEvent(ctx, "WAIVER_SIGNED", record, template.Name)

	res := toWaiverRecordResponse(record)
	res.TemplateName = template.Name
	return res, nil
}

func (s *waiverService) RequestSignature(ctx context.Context, tenantId uuid.UUID, req *dto.RequestSignatureRequest) (*dto.WaiverRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := s.templateOwnedBy(ctx, uow, tenantId, req.TemplateId)
	if err != nil {
		return nil, err
	}
	if template.Status != entity.WaiverTemplateActive {
		return nil, apperrors.Validation("waiver template is not active")
	}

	expiryHours := req.ExpiresInHours
	if expiryHours <= 0 {
		expiryHours = defaultSignatureExpiryHours
	}
	expiresAt := time.Now().Add(time.Duration(expiryHours) * time.Hour)

	record := &entity.WaiverRecord{
		Id:               uuid.New(),
		TenantId:         tenantId,
		TemplateId:       template.Id,
		BookingId:        req.BookingId,
		WaiverCode:       refcode.New("WV"),
		ParticipantName:  strings.TrimSpace(req.ParticipantName),
		ParticipantEmail: strings.ToLower(strings.TrimSpace(req.ParticipantEmail)),
		Status:           entity.WaiverRecordPending,
		ExpiresAt:        &expiresAt,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.WaiverRepository().CreateRecord(ctx, record); err != nil {
		return nil, err
	}
	// The template's usage counter tracks records created against it, so a
	// pending signature request counts immediately, not at signing time.
	if err := uow.WaiverRepository().IncrementTemplateUsage(ctx, template.Id); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishWaiverEvent(ctx, "WAIVER_SIGNATURE_REQUESTED", record, template.Name)

	res := toWaiverRecordResponse(record)
	res.TemplateName = template.Name
	return res, nil
}

func (s *waiverService) SignWaiver(ctx context.Context, code string, req *dto.SignWaiverRequest) (*dto.WaiverRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.WaiverRepository().FindOneRecord(ctx, specification.Filter("waiver_code", normalizeWaiverCode(code)))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.NotFound("waiver not found")
	}
	if record.Status == entity.WaiverRecordSigned {
		return nil, apperrors.Conflict("waiver already signed")
	}
	if record.Status == entity.WaiverRecordExpired {
		return nil, apperrors.Conflict("signing link has expired")
	}
	if record.ExpiresAt != nil && time.Now().After(*record.ExpiresAt) {
		record.Status = entity.WaiverRecordExpired
		if err := uow.WaiverRepository().UpdateRecord(ctx, record); err != nil {
			return nil, err
		}
		return nil, apperrors.Conflict("signing link has expired")
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record.Signature = req.Signature
	record.Status = entity.WaiverRecordSigned
	record.SignedAt = &now
	if dob != nil {
		record.DateOfBirth = dob
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.WaiverRepository().UpdateRecord(ctx, record); err != nil {
		return nil, err
	}
	// Usage was already counted when the signature request created the
	// record; incrementing again here would double-count it.
	if err := s.creditService.DebitAction(ctx, uow, record.TenantId, entity.CreditTxWaiver, contract.UsageWaivers, record.BookingId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishWaiverEvent(ctx, "WAIVER_SIGNED", record, "")

	return toWaiverRecordResponse(record), nil
}

func (s *waiverService) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.WaiverRepository().ExpirePendingRecords(ctx, now)
}

// --- Check-ins ---

func (s *waiverService) CheckIn(ctx context.Context, tenantId uuid.UUID, code string, staffId *uuid.UUID) (*dto.WaiverRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.WaiverRepository().FindOneRecord(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.Filter("waiver_code", normalizeWaiverCode(code)),
	)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.NotFound("waiver not found")
	}
	if record.Status != entity.WaiverRecordSigned {
		return nil, apperrors.Conflict("only signed waivers can check in")
	}

	checkIn := &entity.WaiverCheckIn{
		Id:          uuid.New(),
		RecordId:    record.Id,
		CheckedInAt: time.Now(),
		CheckedInBy: staffId,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.WaiverRepository().AppendCheckIn(ctx, checkIn); err != nil {
		return nil, err
	}
	if err := uow.WaiverRepository().IncrementCheckInCount(ctx, record.Id); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	record.CheckInCount++
	return toWaiverRecordResponse(record), nil
}

func (s *waiverService) FindByCode(ctx context.Context, code string) (*dto.WaiverRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.WaiverRepository().FindOneRecord(ctx, specification.Filter("waiver_code", normalizeWaiverCode(code)))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.NotFound("waiver not found")
	}
	return toWaiverRecordResponse(record), nil
}

func (s *waiverService) ListRecords(ctx context.Context, tenantId uuid.UUID, req *dto.ListWaiverRecordsRequest) ([]*dto.WaiverRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if req.Status != "" {
		specs = append(specs, specification.Filter("status", req.Status))
	}
	if req.TemplateId != "" {
		templateId, err := uuid.Parse(req.TemplateId)
		if err != nil {
			return nil, apperrors.Validation("invalid template_id")
		}
		specs = append(specs, specification.Filter("template_id", templateId))
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	specs = append(specs, specification.Pagination{Limit: limit, Offset: (page - 1) * limit})

	records, err := uow.WaiverRepository().FindAllRecords(ctx, specs...)
	if err != nil {
		return nil, err
	}

	var res []*dto.WaiverRecordResponse
	for _, r := range records {
		res = append(res, toWaiverRecordResponse(r))
	}
	return res, nil
}

func (s *waiverService) ListCheckIns(ctx context.Context, tenantId, recordId uuid.UUID) ([]*dto.WaiverCheckInResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.WaiverRepository().FindOneRecord(ctx,
		specification.ByID{ID: recordId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperrors.NotFound("waiver not found")
	}

	checkIns, err := uow.WaiverRepository().FindCheckIns(ctx, record.Id)
	if err != nil {
		return nil, err
	}

	var res []*dto.WaiverCheckInResponse
	for _, c := range checkIns {
		res = append(res, &dto.WaiverCheckInResponse{
			Id:          c.Id,
			RecordId:    c.RecordId,
			CheckedInAt: c.CheckedInAt,
			CheckedInBy: c.CheckedInBy,
		})
	}
	return res, nil
}

// --- helpers ---

func (s *waiverService) templateOwnedBy(ctx context.Context, uow unitofwork.UnitOfWork, tenantId, templateId uuid.UUID) (*entity.WaiverTemplate, error) {
	template, err := uow.WaiverRepository().FindOneTemplate(ctx,
		specification.ByID{ID: templateId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperrors.NotFound("waiver template not found")
	}
	return template, nil
}

func (s *waiverService) publishWaiverEvent(ctx context.Context, eventType string, record *entity.WaiverRecord, templateName string) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"record_id":         record.Id,
			"tenant_id":         record.TenantId,
			"template_id":       record.TemplateId,
			"template_name":     templateName,
			"waiver_code":       record.WaiverCode,
			"participant_name":  record.ParticipantName,
			"participant_email": record.ParticipantEmail,
		},
		OccurredAt: time.Now(),
	}
	if record.ExpiresAt != nil {
		evt.Data["expires_at"] = record.ExpiresAt
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func toWaiverTemplateResponse(t *entity.WaiverTemplate) *dto.WaiverTemplateResponse {
	return &dto.WaiverTemplateResponse{
		Id:             t.Id,
		Name:           t.Name,
		Type:           t.Type,
		Content:        t.Content,
		RequiredFields: t.RequiredFields,
		Status:         string(t.Status),
		UsageCount:     t.UsageCount,
		CreatedAt:      t.CreatedAt,
	}
}

func toWaiverRecordResponse(r *entity.WaiverRecord) *dto.WaiverRecordResponse {
	return &dto.WaiverRecordResponse{
		Id:               r.Id,
		TemplateId:       r.TemplateId,
		BookingId:        r.BookingId,
		WaiverCode:       r.WaiverCode,
		ParticipantName:  r.ParticipantName,
		ParticipantEmail: r.ParticipantEmail,
		Status:           string(r.Status),
		SignedAt:         r.SignedAt,
		ExpiresAt:        r.ExpiresAt,
		CheckInCount:     r.CheckInCount,
		CreatedAt:        r.CreatedAt,
	}
}

func normalizeWaiverCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", *value))
	}
	return &t, nil
}
