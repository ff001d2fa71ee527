package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/model"
)

type WaiverMapper struct{}

func NewWaiverMapper() *WaiverMapper {
	return &WaiverMapper{}
}

func (m *WaiverMapper) TemplateToEntity(t *model.WaiverTemplate) *entity.WaiverTemplate {
	if t == nil {
		return nil
	}
	var fields []string
	if len(t.RequiredFields) > 0 {
		_ = json.Unmarshal(t.RequiredFields, &fields)
	}
	return &entity.WaiverTemplate{
		Id:             t.Id,
		TenantId:       t.TenantId,
		Name:           t.Name,
		Type:           t.Type,
		Content:        t.Content,
		RequiredFields: fields,
		Status:         entity.WaiverTemplateStatus(t.Status),
		UsageCount:     t.UsageCount,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (m *WaiverMapper) TemplateToModel(t *entity.WaiverTemplate) *model.WaiverTemplate {
	if t == nil {
		return nil
	}
	fields := t.RequiredFields
	if fields == nil {
		fields = []string{}
	}
	raw, _ := json.Marshal(fields)
	return &model.WaiverTemplate{
		Id:             t.Id,
		TenantId:       t.TenantId,
		Name:           t.Name,
		Type:           t.Type,
		Content:        t.Content,
		RequiredFields: datatypes.JSON(raw),
		Status:         string(t.Status),
		UsageCount:     t.UsageCount,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (m *WaiverMapper) RecordToEntity(r *model.WaiverRecord) *entity.WaiverRecord {
	if r == nil {
		return nil
	}
	var signature map[string]interface{}
	if len(r.Signature) > 0 {
		_ = json.Unmarshal(r.Signature, &signature)
	}
	return &entity.WaiverRecord{
		Id:               r.Id,
		TenantId:         r.TenantId,
		TemplateId:       r.TemplateId,
		BookingId:        r.BookingId,
		WaiverCode:       r.WaiverCode,
		ParticipantName:  r.ParticipantName,
		ParticipantEmail: r.ParticipantEmail,
		ParticipantPhone: r.ParticipantPhone,
		DateOfBirth:      r.DateOfBirth,
		Signature:        signature,
		Status:           entity.WaiverRecordStatus(r.Status),
		SignedAt:         r.SignedAt,
		ExpiresAt:        r.ExpiresAt,
		CheckInCount:     r.CheckInCount,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (m *WaiverMapper) RecordToModel(r *entity.WaiverRecord) *model.WaiverRecord {
	if r == nil {
		return nil
	}
	var signature datatypes.JSON
	if r.Signature != nil {
		raw, _ := json.Marshal(r.Signature)
		signature = datatypes.JSON(raw)
	}
	return &model.WaiverRecord{
		Id:               r.Id,
		TenantId:         r.TenantId,
		TemplateId:       r.TemplateId,
		BookingId:        r.BookingId,
		WaiverCode:       r.WaiverCode,
		ParticipantName:  r.ParticipantName,
		ParticipantEmail: r.ParticipantEmail,
		ParticipantPhone: r.ParticipantPhone,
		DateOfBirth:      r.DateOfBirth,
		Signature:        signature,
		Status:           string(r.Status),
		SignedAt:         r.SignedAt,
		ExpiresAt:        r.ExpiresAt,
		CheckInCount:     r.CheckInCount,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (m *WaiverMapper) CheckInToEntity(c *model.WaiverCheckIn) *entity.WaiverCheckIn {
	if c == nil {
		return nil
	}
	return &entity.WaiverCheckIn{
		Id:          c.Id,
		RecordId:    c.RecordId,
		CheckedInAt: c.CheckedInAt,
		CheckedInBy: c.CheckedInBy,
	}
}

func (m *WaiverMapper) CheckInToModel(c *entity.WaiverCheckIn) *model.WaiverCheckIn {
	if c == nil {
		return nil
	}
	return &model.WaiverCheckIn{
		Id:          c.Id,
		RecordId:    c.RecordId,
		CheckedInAt: c.CheckedInAt,
		CheckedInBy: c.CheckedInBy,
	}
}
