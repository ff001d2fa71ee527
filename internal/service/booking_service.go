package service

import (
	"context"
	"fmt"
	"time"

	"escapedesk-be/internal/dto"
	"escapedesk-be/internal/entity"
	"escapedesk-be/internal/pkg/apperrors"
	"escapedesk-be/internal/pkg/refcode"
	"escapedesk-be/internal/repository/contract"
	"escapedesk-be/internal/repository/memory"
	"escapedesk-be/internal/repository/specification"
	"escapedesk-be/internal/repository/unitofwork"

	"escapedesk-be/pkg/events"
	pktNats "escapedesk-be/pkg/nats"

	"github.com/google/uuid"
)

type IBookingService interface {
	ListAvailableSlots(ctx context.Context, req *dto.AvailabilityRequest) ([]*dto.AvailableSlotResponse, error)
	CreateBooking(ctx context.Context, tenantId uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetBooking(ctx context.Context, tenantId, bookingId uuid.UUID) (*dto.BookingResponse, error)
	ListBookings(ctx context.Context, tenantId uuid.UUID, req *dto.ListBookingsRequest) (*dto.BookingListResponse, error)
	CancelBooking(ctx context.Context, tenantId, bookingId uuid.UUID, req *dto.CancelBookingRequest) (*dto.CancelBookingResponse, error)
	RescheduleBooking(ctx context.Context, tenantId, bookingId uuid.UUID, req *dto.RescheduleBookingRequest) (*dto.BookingResponse, error)
	CheckInBooking(ctx context.Context, tenantId, bookingId uuid.UUID) (*dto.BookingResponse, error)
	CompleteBooking(ctx context.Context, tenantId, bookingId uuid.UUID) (*dto.BookingResponse, error)
	MarkNoShow(ctx context.Context, tenantId, bookingId uuid.UUID) (*dto.BookingResponse, error)
}

type bookingService struct {
	uowFactory        unitofwork.RepositoryFactory
	creditService     ICreditService
	availabilityCache *memory.AvailabilityCache
	eventPublisher    *pktNats.Publisher
}

func NewBookingService(
	uowFactory unitofwork.RepositoryFactory,
	creditService ICreditService,
	availabilityCache *memory.AvailabilityCache,
	eventPublisher *pktNats.Publisher,
) IBookingService {
	return &bookingService{
		uowFactory:        uowFactory,
		creditService:     creditService,
		availabilityCache: availabilityCache,
		eventPublisher:    eventPublisher,
	}
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperrors.Validation(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return t, nil
}

func (s *bookingService) ListAvailableSlots(ctx context.Context, req *dto.AvailabilityRequest) ([]*dto.AvailableSlotResponse, error) {
	from, err := parseDate(req.DateFrom)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(req.DateTo)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, apperrors.Validation("date_to must not be before date_from")
	}

	partySize := req.PartySize
	if partySize < 1 {
		partySize = 1
	}

	slots, cached := s.availabilityCache.Get(req.ActivityId, from, to)
	if !cached {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		slots, err = uow.BookingRepository().SlotAvailability(ctx, req.ActivityId, from, to)
		if err != nil {
			return nil, err
		}
		s.availabilityCache.Save(req.ActivityId, from, to, slots)
	}

	filtered := entity.FilterSlots(slots, partySize)
	res := make([]*dto.AvailableSlotResponse, len(filtered))
	for i, slot := range filtered {
		res[i] = &dto.AvailableSlotResponse{
			SlotId:    slot.SlotId,
			Date:      slot.Date.Format("2006-01-02"),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Capacity:  slot.Capacity,
			Booked:    slot.Booked,
			Remaining: slot.Remaining(),
		}
	}
	return res, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, tenantId uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity, err := uow.CatalogRepository().FindOneActivity(ctx,
		specification.ByID{ID: req.ActivityId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, err
	}
	if activity == nil || !activity.IsActive {
		return nil, apperrors.NotFound("activity not found")
	}

	if req.PartySize < activity.MinPartySize || req.PartySize > activity.MaxPartySize {
		return nil, apperrors.Validation(fmt.Sprintf("party size must be between %d and %d", activity.MinPartySize, activity.MaxPartySize))
	}

	slot, err := uow.CatalogRepository().FindOneSlot(ctx,
		specification.ByID{ID: req.SlotId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, err
	}
	if slot == nil || slot.ActivityId != activity.Id {
		return nil, apperrors.NotFound("schedule slot not found")
	}

	// Capacity check against live bookings for the same slot
	availability, err := uow.BookingRepository().SlotAvailability(ctx, activity.Id, slot.Date, slot.Date)
	if err != nil {
		return nil, err
	}
	for _, a := range availability {
		if a.SlotId == slot.Id && a.Remaining() < req.PartySize {
			return nil, apperrors.Conflict("slot does not have enough remaining capacity")
		}
	}

	now := time.Now()
	booking := &entity.Booking{
		Id:            uuid.New(),
		Reference:     refcode.New("BK"),
		TenantId:      tenantId,
		ActivityId:    activity.Id,
		VenueId:       activity.VenueId,
		CustomerName:  req.CustomerName,
		CustomerEmail: entity.NormalizeEmail(req.CustomerEmail),
		CustomerPhone: entity.NormalizePhone(req.CustomerPhone),
		Date:          slot.Date,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		PartySize:     req.PartySize,
		TotalAmount:   activity.Price * float64(req.PartySize),
		PaymentStatus: entity.BookingPaymentPending,
		Status:        entity.BookingStatusConfirmed,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.BookingRepository().Create(ctx, booking); err != nil {
		return nil, err
	}

	// Metered action: debit inside the same transaction so a failed debit
	// rolls the booking back.
	if err := s.creditService.DebitAction(ctx, uow, tenantId, entity.CreditTxBooking, contract.UsageBookings, &booking.Id); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.availabilityCache.InvalidateActivity(activity.Id)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "BOOKING_CREATED",
			Data: map[string]interface{}{
				"booking_id":     booking.Id,
				"tenant_id":      tenantId,
				"reference":      booking.Reference,
				"activity_name":  activity.Name,
				"customer_email": booking.CustomerEmail,
				"slot":           booking.SlotLabel(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish BOOKING_CREATED event: %v\n", err)
		}
	}

	res := s.toBookingResponse(booking, nil)
	res.ActivityName = activity.Name
	return res, nil
}

func (s *bookingService) GetBooking(ctx context.Context, tenantId, bookingId uuid.UUID) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := uow.BookingRepository().FindOne(ctx,
		specification.ByID{ID: bookingId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.NotFound("booking not found")
	}

	loc := s.venueLocation(ctx, uow, booking.VenueId)
	return s.toBookingResponse(booking, loc), nil
}

func (s *bookingService) ListBookings(ctx context.Context, tenantId uuid.UUID, req *dto.ListBookingsRequest) (*dto.BookingListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	specs := []specification.Specification{
		specification.TenantOwnedBy{TenantID: tenantId},
	}
	countSpecs := []specification.Specification{
		specification.TenantOwnedBy{TenantID: tenantId},
	}

	if req.Status != "" {
		statusSpec := specification.Filter("status", req.Status)
		specs = append(specs, statusSpec)
		countSpecs = append(countSpecs, statusSpec)
	}
	if req.DateFrom != "" && req.DateTo != "" {
		from, err := parseDate(req.DateFrom)
		if err != nil {
			return nil, err
		}
		to, err := parseDate(req.DateTo)
		if err != nil {
			return nil, err
		}
		dateSpec := specification.DateBetween{From: from, To: to}
		specs = append(specs, dateSpec)
		countSpecs = append(countSpecs, dateSpec)
	}

	specs = append(specs,
		specification.OrderBy{Field: "date", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	bookings, err := uow.BookingRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	total, err := uow.BookingRepository().Count(ctx, countSpecs...)
	if err != nil {
		return nil, err
	}

	res := &dto.BookingListResponse{
		Bookings: make([]dto.BookingResponse, len(bookings)),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
	for i, b := range bookings {
		res.Bookings[i] = *s.toBookingResponse(b, nil)
	}
	return res, nil
}

// CancelBooking cancels inside the 24h window, guarded by the booking's
// version so two concurrent cancels cannot both succeed. The refund is
// advisory: a paid booking produces a pending refund record for staff to
// process, nothing is charged back here.
func (s *bookingService) CancelBooking(ctx context.Context, tenantId, bookingId uuid.UUID, req *dto.CancelBookingRequest) (*dto.CancelBookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := uow.BookingRepository().FindOne(ctx,
		specification.ByID{ID: bookingId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.NotFound("booking not found")
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, apperrors.Conflict("booking is already cancelled")
	}

	loc := s.venueLocation(ctx, uow, booking.VenueId)
	perms := booking.Permissions(time.Now(), loc)
	if !perms.CanCancel {
		switch booking.Status {
		case entity.BookingStatusCompleted, entity.BookingStatusNoShow:
			return nil, apperrors.Conflict("booking can no longer be cancelled")
		}
		return nil, apperrors.WindowExpired("cancellation window has closed")
	}

	refundAmount, refundStatus := booking.RefundForCancellation()

	expectedVersion := booking.Version
	now := time.Now()
	booking.Status = entity.BookingStatusCancelled
	booking.CancelledAt = &now
	booking.CancellationReason = req.Reason

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	applied, err := uow.BookingRepository().UpdateVersioned(ctx, booking, expectedVersion)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, apperrors.Conflict("booking was modified concurrently, please retry")
	}

	if refundAmount != nil {
		refund := &entity.Refund{
			ID:        uuid.New(),
			BookingID: booking.Id,
			TenantID:  tenantId,
			Amount:    *refundAmount,
			Reason:    req.Reason,
			Status:    entity.RefundStatusPending,
			CreatedAt: now,
		}
		if err := uow.RefundRepository().Create(ctx, refund); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.availabilityCache.InvalidateActivity(booking.ActivityId)

	if s.eventPublisher != nil {
		refundNote := "no refund due"
		if refundAmount != nil {
			refundNote = fmt.Sprintf("a refund of %.2f is pending review", *refundAmount)
		}
		evt := events.BaseEvent{
			Type: "BOOKING_CANCELLED",
			Data: map[string]interface{}{
				"booking_id":     booking.Id,
				"tenant_id":      tenantId,
				"reference":      booking.Reference,
				"customer_email": booking.CustomerEmail,
				"refund_note":    refundNote,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish BOOKING_CANCELLED event: %v\n", err)
		}
	}

	return &dto.CancelBookingResponse{
		Booking:      *s.toBookingResponse(booking, loc),
		RefundAmount: refundAmount,
		RefundStatus: refundStatus,
	}, nil
}

// RescheduleBooking moves a booking to another slot of the same activity.
// The window check applies to the CURRENT slot: once inside 24h of the
// original start the booking is locked, even onto later slots.
func (s *bookingService) RescheduleBooking(ctx context.Context, tenantId, bookingId uuid.UUID, req *dto.RescheduleBookingRequest) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := uow.BookingRepository().FindOne(ctx,
		specification.ByID{ID: bookingId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.NotFound("booking not found")
	}

	loc := s.venueLocation(ctx, uow, booking.VenueId)
	perms := booking.Permissions(time.Now(), loc)
	if !perms.CanReschedule {
		switch booking.Status {
		case entity.BookingStatusCancelled, entity.BookingStatusCompleted, entity.BookingStatusNoShow:
			return nil, apperrors.Conflict("booking can no longer be rescheduled")
		}
		return nil, apperrors.WindowExpired("reschedule window has closed")
	}

	slot, err := uow.CatalogRepository().FindOneSlot(ctx,
		specification.ByID{ID: req.SlotId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, err
	}
	if slot == nil || slot.ActivityId != booking.ActivityId {
		return nil, apperrors.NotFound("target slot not found for this activity")
	}

	availability, err := uow.BookingRepository().SlotAvailability(ctx, booking.ActivityId, slot.Date, slot.Date)
	if err != nil {
		return nil, err
	}
	for _, a := range availability {
		if a.SlotId == slot.Id && a.Remaining() < booking.PartySize {
			return nil, apperrors.Conflict("target slot does not have enough remaining capacity")
		}
	}

	expectedVersion := booking.Version
	booking.MoveToSlot(slot)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	applied, err := uow.BookingRepository().UpdateVersioned(ctx, booking, expectedVersion)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, apperrors.Conflict("booking was modified concurrently, please retry")
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.availabilityCache.InvalidateActivity(booking.ActivityId)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "BOOKING_RESCHEDULED",
			Data: map[string]interface{}{
				"booking_id":     booking.Id,
				"tenant_id":      tenantId,
				"reference":      booking.Reference,
				"customer_email": booking.CustomerEmail,
				"previous_slot":  booking.PreviousSlot,
				"slot":           booking.SlotLabel(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish BOOKING_RESCHEDULED event: %v\n", err)
		}
	}

	return s.toBookingResponse(booking, loc), nil
}

func (s *bookingService) CheckInBooking(ctx context.Context, tenantId, bookingId uuid.UUID) (*dto.BookingResponse, error) {
	return s.transition(ctx, tenantId, bookingId, entity.BookingStatusConfirmed, entity.BookingStatusCheckedIn)
}

func (s *bookingService) CompleteBooking(ctx context.Context, tenantId, bookingId uuid.UUID) (*dto.BookingResponse, error) {
	return s.transition(ctx, tenantId, bookingId, entity.BookingStatusCheckedIn, entity.BookingStatusCompleted)
}

func (s *bookingService) MarkNoShow(ctx context.Context, tenantId, bookingId uuid.UUID) (*dto.BookingResponse, error) {
	return s.transition(ctx, tenantId, bookingId, entity.BookingStatusConfirmed, entity.BookingStatusNoShow)
}

func (s *bookingService) transition(ctx context.Context, tenantId, bookingId uuid.UUID, from, to entity.BookingStatus) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := uow.BookingRepository().FindOne(ctx,
		specification.ByID{ID: bookingId},
		specification.TenantOwnedBy{TenantID: tenantId},
	)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.NotFound("booking not found")
	}
	if booking.Status != from {
		return nil, apperrors.Conflict(fmt.Sprintf("booking is %s, expected %s", booking.Status, from))
	}

	expectedVersion := booking.Version
	booking.Status = to

	applied, err := uow.BookingRepository().UpdateVersioned(ctx, booking, expectedVersion)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, apperrors.Conflict("booking was modified concurrently, please retry")
	}

	if to == entity.BookingStatusNoShow || to == entity.BookingStatusCompleted {
		s.availabilityCache.InvalidateActivity(booking.ActivityId)
	}

	return s.toBookingResponse(booking, nil), nil
}

func (s *bookingService) venueLocation(ctx context.Context, uow unitofwork.UnitOfWork, venueId uuid.UUID) *time.Location {
	venue, err := uow.CatalogRepository().FindOneVenue(ctx, specification.ByID{ID: venueId})
	if err != nil || venue == nil {
		return time.UTC
	}
	return venue.Location()
}

func (s *bookingService) toBookingResponse(b *entity.Booking, loc *time.Location) *dto.BookingResponse {
	if loc == nil {
		loc = time.UTC
	}
	perms := b.Permissions(time.Now(), loc)
	return &dto.BookingResponse{
		Id:                 b.Id,
		Reference:          b.Reference,
		ActivityId:         b.ActivityId,
		VenueId:            b.VenueId,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		Date:               b.Date.Format("2006-01-02"),
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		PartySize:          b.PartySize,
		TotalAmount:        b.TotalAmount,
		PaymentStatus:      string(b.PaymentStatus),
		Status:             string(b.Status),
		CancelledAt:        b.CancelledAt,
		CancellationReason: b.CancellationReason,
		PreviousSlot:       b.PreviousSlot,
		CanCancel:          perms.CanCancel,
		CanReschedule:      perms.CanReschedule,
		CreatedAt:          b.CreatedAt,
	}
}
