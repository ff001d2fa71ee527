package service

import (
	"context"
	"strings"
	"time"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/pkg/apperrors"
	"escapedesk-be/internal/repository/memory"
	"escapedesk-be/internal/repository/specification"
	"escapedesk-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICatalogService interface {
	CreateVenue(ctx context.Context, tenantId uuid.UUID, req *dto.CreateVenueRequest) (*dto.VenueResponse, error)
	UpdateVenue(ctx context.Context, tenantId, venueId uuid.UUID, req *dto.UpdateVenueRequest) (*dto.VenueResponse, error)
	DeleteVenue(ctx context.Context, tenantId, venueId uuid.UUID) error
	GetVenue(ctx context.Context, tenantId, venueId uuid.UUID) (*dto.VenueResponse, error)
	ListVenues(ctx context.Context, tenantId uuid.UUID) ([]*dto.VenueResponse, error)

	CreateActivity(ctx context.Context, tenantId uuid.UUID, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	UpdateActivity(ctx context.Context, tenantId, activityId uuid.UUID, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error)
	DeleteActivity(ctx context.Context, tenantId, activityId uuid.UUID) error
	GetActivity(ctx context.Context, tenantId, activityId uuid.UUID) (*dto.ActivityResponse, error)
	ListActivities(ctx context.Context, tenantId uuid.UUID) ([]*dto.ActivityResponse, error)

	CreateSlot(ctx context.Context, tenantId uuid.UUID, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
	UpdateSlot(ctx context.Context, tenantId, slotId uuid.UUID, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error)
	DeleteSlot(ctx context.Context, tenantId, slotId uuid.UUID) error
	ListSlots(ctx context.Context, tenantId, activityId uuid.UUID, from, to string) ([]*dto.SlotResponse, error)
}

type catalogService struct {
	uowFactory        unitofwork.RepositoryFactory
	availabilityCache *memory.AvailabilityCache
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, availabilityCache *memory.AvailabilityCache) ICatalogService {
	return &catalogService{
		uowFactory:        uowFactory,
		availabilityCache: availabilityCache,
	}
}

// --- Venues ---

func (s *catalogService) CreateVenue(ctx context.Context, tenantId uuid.UUID, req *dto.CreateVenueRequest) (*dto.VenueResponse, error) {
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return nil, apperrors.Validation("unknown timezone " + req.Timezone)
	}

	venue := &entity.Venue{
		Id:           uuid.New(),
		TenantId:     tenantId,
		Name:         strings.TrimSpace(req.Name),
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		Timezone:     req.Timezone,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CatalogRepository().CreateVenue(ctx, venue); err != nil {
		return nil, err
	}
	return toVenueResponse(venue), nil
}

func (s *catalogService) UpdateVenue(ctx context.Context, tenantId, venueId uuid.UUID, req *dto.UpdateVenueRequest) (*dto.VenueResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	venue, err := s.venueOwnedBy(ctx, uow, tenantId, venueId)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		venue.Name = strings.TrimSpace(*req.Name)
	}
	if req.AddressLine1 != nil {
		venue.AddressLine1 = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		venue.AddressLine2 = *req.AddressLine2
	}
	if req.City != nil {
		venue.City = *req.City
	}
	if req.State != nil {
		venue.State = *req.State
	}
	if req.PostalCode != nil {
		venue.PostalCode = *req.PostalCode
	}
	if req.Country != nil {
		venue.Country = *req.Country
	}
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, apperrors.Validation("unknown timezone " + *req.Timezone)
		}
		venue.Timezone = *req.Timezone
	}

	if err := uow.CatalogRepository().UpdateVenue(ctx, venue); err != nil {
		return nil, err
	}
	return toVenueResponse(venue), nil
}

func (s *catalogService) DeleteVenue(ctx context.Context, tenantId, venueId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	venue, err := s.venueOwnedBy(ctx, uow, tenantId, venueId)
	if err != nil {
		return err
	}

	// Venues with activities cannot be removed; delete the activities first.
	activities, err := uow.CatalogRepository().FindAllActivities(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.Filter("venue_id", venue.Id),
		specification.Pagination{Limit: 1, Offset: 0},
	)
	if err != nil {
		return err
	}
	if len(activities) > 0 {
		return apperrors.Conflict("venue still has activities")
	}

	return uow.CatalogRepository().DeleteVenue(ctx, venue.Id)
}

func (s *catalogService) GetVenue(ctx context.Context, tenantId, venueId uuid.UUID) (*dto.VenueResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	venue, err := s.venueOwnedBy(ctx, uow, tenantId, venueId)
	if err != nil {
		return nil, err
	}
	return toVenueResponse(venue), nil
}

func (s *catalogService) ListVenues(ctx context.Context, tenantId uuid.UUID) ([]*dto.VenueResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	venues, err := uow.CatalogRepository().FindAllVenues(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	var res []*dto.VenueResponse
	for _, v := range venues {
		res = append(res, toVenueResponse(v))
	}
	return res, nil
}

// --- Activities ---

func (s *catalogService) CreateActivity(ctx context.Context, tenantId uuid.UUID, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	if req.MinPartySize > req.MaxPartySize {
		return nil, apperrors.Validation("min_party_size must not exceed max_party_size")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.venueOwnedBy(ctx, uow, tenantId, req.VenueId); err != nil {
		return nil, err
	}

	existing, err := uow.CatalogRepository().FindOneActivity(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.Filter("slug", req.Slug),
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("activity slug already in use")
	}

	minParty := req.MinPartySize
	if minParty < 1 {
		minParty = 1
	}

	activity := &entity.Activity{
		Id:              uuid.New(),
		TenantId:        tenantId,
		VenueId:         req.VenueId,
		Name:            strings.TrimSpace(req.Name),
		Slug:            req.Slug,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		MinPartySize:    minParty,
		MaxPartySize:    req.MaxPartySize,
		Price:           req.Price,
		IsActive:        true,
	}

	if err := uow.CatalogRepository().CreateActivity(ctx, activity); err != nil {
		return nil, err
	}
	return toActivityResponse(activity), nil
}

func (s *catalogService) UpdateActivity(ctx context.Context, tenantId, activityId uuid.UUID, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity, err := s.activityOwnedBy(ctx, uow, tenantId, activityId)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		activity.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		activity.DurationMinutes = *req.DurationMinutes
	}
	if req.MinPartySize != nil {
		activity.MinPartySize = *req.MinPartySize
	}
	if req.MaxPartySize != nil {
		activity.MaxPartySize = *req.MaxPartySize
	}
	if activity.MinPartySize > activity.MaxPartySize {
		return nil, apperrors.Validation("min_party_size must not exceed max_party_size")
	}
	if req.Price != nil {
		activity.Price = *req.Price
	}
	if req.IsActive != nil {
		activity.IsActive = *req.IsActive
	}

	if err := uow.CatalogRepository().UpdateActivity(ctx, activity); err != nil {
		return nil, err
	}

	s.availabilityCache.InvalidateActivity(activity.Id)
	return toActivityResponse(activity), nil
}

func (s *catalogService) DeleteActivity(ctx context.Context, tenantId, activityId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity, err := s.activityOwnedBy(ctx, uow, tenantId, activityId)
	if err != nil {
		return err
	}

	upcoming, err := uow.BookingRepository().Count(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.Filter("activity_id", activity.Id),
		specification.DateFrom{Date: time.Now()},
	)
	if err != nil {
		return err
	}
	if upcoming > 0 {
		return apperrors.Conflict("activity has upcoming bookings")
	}

	if err := uow.CatalogRepository().DeleteActivity(ctx, activity.Id); err != nil {
		return err
	}
	s.availabilityCache.InvalidateActivity(activity.Id)
	return nil
}

func (s *catalogService) GetActivity(ctx context.Context, tenantId, activityId uuid.UUID) (*dto.ActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity, err := s.activityOwnedBy(ctx, uow, tenantId, activityId)
	if err != nil {
		return nil, err
	}
	return toActivityResponse(activity), nil
}

func (s *catalogService) ListActivities(ctx context.Context, tenantId uuid.UUID) ([]*dto.ActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activities, err := uow.CatalogRepository().FindAllActivities(ctx,
		specification.TenantOwnedBy{TenantID: tenantId},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	var res []*dto.ActivityResponse
	for _, a := range activities {
		res = append(res, toActivityResponse(a))
	}
	return res, nil
}

// --- Schedule slots ---

func (s *catalogService) CreateSlot(ctx context.Context, tenantId uuid.UUID, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity, err := s.activityOwnedBy(ctx, uow, tenantId, req.ActivityId)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := validateSlotTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	existing, err := uow.CatalogRepository().FindOneSlot(ctx,
		specification.Filter("activity_id", activity.Id),
		specification.Filter("date", date),
		specification.Filter("start_time", req.StartTime),
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("slot already exists for that time")
	}

	slot := &entity.ScheduleSlot{
		Id:         uuid.New(),
		TenantId:   tenantId,
		ActivityId: activity.Id,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Capacity:   req.Capacity,
	}

	if err := uow.CatalogRepository().CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	s.availabilityCache.InvalidateActivity(activity.Id)
	return toSlotResponse(slot), nil
}

func (s *catalogService) UpdateSlot(ctx context.Context, tenantId, slotId uuid.UUID, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slot, err := s.slotOwnedBy(ctx, uow, tenantId, slotId)
	if err != nil {
		return nil, err
	}

	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if err := validateSlotTimes(slot.StartTime, slot.EndTime); err != nil {
		return nil, err
	}
	if req.Capacity != nil {
		slot.Capacity = *req.Capacity
	}

	if err := uow.CatalogRepository().UpdateSlot(ctx, slot); err != nil {
		return nil, err
	}

	s.availabilityCache.InvalidateActivity(slot.ActivityId)
	return toSlotResponse(slot), nil
}

func (s *catalogService) DeleteSlot(ctx context.Context, tenantId, slotId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slot, err := s.slotOwnedBy(ctx, uow, tenantId, slotId)
	if err != nil {
		return err
	}

	if err := uow.CatalogRepository().DeleteSlot(ctx, slot.Id); err != nil {
		return err
	}
	s.availabilityCache.InvalidateActivity(slot.ActivityId)
	return nil
}

func (s *catalogService) ListSlots(ctx context.Context, tenantId, activityId uuid.UUID, from, to string) ([]*dto.SlotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.activityOwnedBy(ctx, uow, tenantId, activityId); err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.Filter("activity_id", activityId),
		specification.OrderBy{Field: "date"},
	}
	if from != "" {
		fromDate, err := parseDate(from)
		if err != nil {
			return nil, err
		}
		specs = append(specs, specification.DateFrom{Date: fromDate})
	}
	if to != "" {
		toDate, err := parseDate(to)
		if err != nil {
			return nil, err
		}
		specs = append(specs, specification.DateTo{Date: toDate})
	}

	slots, err := uow.CatalogRepository().FindAllSlots(ctx, specs...)
	if err != nil {
		return nil, err
	}

	var res []*dto.SlotResponse
	for _, slot := range slots {
		res = append(res, toSlotResponse(slot))
	}
	return res, nil
}

// --- helpers ---

func (s *catalogService) venueOwnedBy(ctx context.Context, uow unitofwork.UnitOfWork, tenantId, venueId uuid.UUID) (*entity.Venue, error) {
	venue, err := uow.CatalogRepository().FindOneVenue(ctx,
		specification.ByID{ID: venueId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, apperrors.NotFound("venue not found")
	}
	return venue, nil
}

func (s *catalogService) activityOwnedBy(ctx context.Context, uow unitofwork.UnitOfWork, tenantId, activityId uuid.UUID) (*entity.Activity, error) {
	activity, err := uow.CatalogRepository().FindOneActivity(ctx,
		specification.ByID{ID: activityId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, apperrors.NotFound("activity not found")
	}
	return activity, nil
}

func (s *catalogService) slotOwnedBy(ctx context.Context, uow unitofwork.UnitOfWork, tenantId, slotId uuid.UUID) (*entity.ScheduleSlot, error) {
	slot, err := uow.CatalogRepository().FindOneSlot(ctx,
		specification.ByID{ID: slotId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, apperrors.NotFound("slot not found")
	}
	return slot, nil
}

func validateSlotTimes(start, end string) error {
	startT, err := time.Parse("15:04", start)
	if err != nil {
		return apperrors.Validation("invalid start_time, expected HH:MM")
	}
	endT, err := time.Parse("15:04", end)
	if err != nil {
		return apperrors.Validation("invalid end_time, expected HH:MM")
	}
	if !endT.After(startT) {
		return apperrors.Validation("end_time must be after start_time")
	}
	return nil
}

func toVenueResponse(v *entity.Venue) *dto.VenueResponse {
	return &dto.VenueResponse{
		Id:           v.Id,
		Name:         v.Name,
		AddressLine1: v.AddressLine1,
		AddressLine2: v.AddressLine2,
		City:         v.City,
		State:        v.State,
		PostalCode:   v.PostalCode,
		Country:      v.Country,
		Timezone:     v.Timezone,
		CreatedAt:    v.CreatedAt,
	}
}

func toActivityResponse(a *entity.Activity) *dto.ActivityResponse {
	return &dto.ActivityResponse{
		Id:              a.Id,
		VenueId:         a.VenueId,
		Name:            a.Name,
		Slug:            a.Slug,
		Description:     a.Description,
		DurationMinutes: a.DurationMinutes,
		MinPartySize:    a.MinPartySize,
		MaxPartySize:    a.MaxPartySize,
		Price:           a.Price,
		IsActive:        a.IsActive,
	}
}

func toSlotResponse(slot *entity.ScheduleSlot) *dto.SlotResponse {
	return &dto.SlotResponse{
		Id:         slot.Id,
		ActivityId: slot.ActivityId,
		Date:       slot.Date.Format("2006-01-02"),
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		Capacity:   slot.Capacity,
	}
}
