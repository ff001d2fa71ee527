package mapper

import (
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) VenueToEntity(v *model.Venue) *entity.Venue {
	if v == nil {
		return nil
	}
	return &entity.Venue{
		Id:           v.Id,
		TenantId:     v.TenantId,
		Name:         v.Name,
		AddressLine1: v.AddressLine1,
		AddressLine2: v.AddressLine2,
		City:         v.City,
		State:        v.State,
		PostalCode:   v.PostalCode,
		Country:      v.Country,
		Timezone:     v.Timezone,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func (m *CatalogMapper) VenueToModel(v *entity.Venue) *model.Venue {
	if v == nil {
		return nil
	}
	return &model.Venue{
		Id:           v.Id,
		TenantId:     v.TenantId,
		Name:         v.Name,
		AddressLine1: v.AddressLine1,
		AddressLine2: v.AddressLine2,
		City:         v.City,
		State:        v.State,
		PostalCode:   v.PostalCode,
		Country:      v.Country,
		Timezone:     v.Timezone,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func (m *CatalogMapper) ActivityToEntity(a *model.Activity) *entity.Activity {
	if a == nil {
		return nil
	}
	return &entity.Activity{
		Id:              a.Id,
		TenantId:        a.TenantId,
		VenueId:         a.VenueId,
		Name:            a.Name,
		Slug:            a.Slug,
		Description:     a.Description,
		DurationMinutes: a.DurationMinutes,
		MinPartySize:    a.MinPartySize,
		MaxPartySize:    a.MaxPartySize,
		Price:           a.Price,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (m *CatalogMapper) ActivityToModel(a *entity.Activity) *model.Activity {
	if a == nil {
		return nil
	}
	return &model.Activity{
		Id:              a.Id,
		TenantId:        a.TenantId,
		VenueId:         a.VenueId,
		Name:            a.Name,
		Slug:            a.Slug,
		Description:     a.Description,
		DurationMinutes: a.DurationMinutes,
		MinPartySize:    a.MinPartySize,
		MaxPartySize:    a.MaxPartySize,
		Price:           a.Price,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (m *CatalogMapper) SlotToEntity(s *model.ScheduleSlot) *entity.ScheduleSlot {
	if s == nil {
		return nil
	}
	return &entity.ScheduleSlot{
		Id:         s.Id,
		TenantId:   s.TenantId,
		ActivityId: s.ActivityId,
		Date:       s.Date,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Capacity:   s.Capacity,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (m *CatalogMapper) SlotToModel(s *entity.ScheduleSlot) *model.ScheduleSlot {
	if s == nil {
		return nil
	}
	return &model.ScheduleSlot{
		Id:         s.Id,
		TenantId:   s.TenantId,
		ActivityId: s.ActivityId,
		Date:       s.Date,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Capacity:   s.Capacity,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
