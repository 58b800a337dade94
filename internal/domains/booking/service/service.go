package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"hms/config"
	"hms/infras/otel"
	"hms/infras/postgres"
	auditModel "hms/internal/domains/audit/model"
	auditDto "hms/internal/domains/audit/model/dto"
	auditService "hms/internal/domains/audit/service"
	"hms/internal/domains/booking/model"
	"hms/internal/domains/booking/model/dto"
	"hms/internal/domains/booking/repository"
	folioModel "hms/internal/domains/folio/model"
	folioRepo "hms/internal/domains/folio/repository"
	guestModel "hms/internal/domains/guest/model"
	guestRepo "hms/internal/domains/guest/repository"
	paymentRepo "hms/internal/domains/payment/repository"
	roomModel "hms/internal/domains/room/model"
	roomRepo "hms/internal/domains/room/repository"
	roomtypeModel "hms/internal/domains/roomtype/model"
	roomtypeRepo "hms/internal/domains/roomtype/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	gModel "hms/shared/model"
	"hms/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	cacheRoomPrefix         = "room"
	cacheAvailabilityPrefix = "availability"

	// actorPublic stamps records created through the unauthenticated
	// booking site, where no staff user is in the context.
	actorPublic = "public"
)

type Booking interface {
	CreateStay(ctx context.Context, req dto.CreateStayRequest) (dto.BookingResponse, error)
	CreatePublic(ctx context.Context, req dto.CreatePublicBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByCode(ctx context.Context, code string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	CheckIn(ctx context.Context, req dto.CheckInRequest, id string) error
	CheckOut(ctx context.Context, req dto.CheckOutRequest, id string) error
	Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) error
	MarkNoShow(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	guests    guestRepo.Guest
	rooms     roomRepo.Room
	roomTypes roomtypeRepo.RoomType
	folios    folioRepo.Folio
	payments  paymentRepo.Payment
	audit     auditService.Audit
	db        *postgres.Connection
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	guests guestRepo.Guest,
	rooms roomRepo.Room,
	roomTypes roomtypeRepo.RoomType,
	folios folioRepo.Folio,
	payments paymentRepo.Payment,
	audit auditService.Audit,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		guests:    guests,
		rooms:     rooms,
		roomTypes: roomTypes,
		folios:    folios,
		payments:  payments,
		audit:     audit,
		db:        db,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// CreateStay is the staff walk-in/reservation wizard path: the guest, the
// booking, and the seeded folio are committed in one transaction.
func (s *serviceImpl) CreateStay(ctx context.Context, req dto.CreateStayRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateStay")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check-out must be after check-in") // nolint:wrapcheck
	}

	room, err := s.rooms.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	code, err := s.nextCode(ctx)
	if err != nil {
		return res, err
	}

	guest := req.Guest.ToModel(user)
	booking := req.ToModel(guest.ID, code, checkIn, checkOut, user)

	booking, err = s.persistStay(ctx, guest, booking)
	if err != nil {
		return res, err
	}

	err = s.audit.Record(ctx, auditDto.Entry{
		Action:      auditModel.ActionBookingCreated,
		EntityType:  auditModel.EntityTypeBooking,
		EntityID:    booking.ID,
		Description: fmt.Sprintf("Booking %s created for %s (%s to %s)", booking.BookingCode, guest.Name, req.CheckIn, req.CheckOut),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record booking creation")
	}

	s.invalidate(ctx, booking.ID)

	res.FromModel(booking)
	res.GuestName = guest.Name
	res.GuestPhone = guest.Phone
	res.RoomNumber = room.Number

	return res, nil
}

// CreatePublic serves the public booking site: the caller picks a room type
// and the service assigns the first free room of that type.
func (s *serviceImpl) CreatePublic(ctx context.Context, req dto.CreatePublicBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePublic")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check-out must be after check-in") // nolint:wrapcheck
	}

	roomType, err := s.roomTypes.Get(ctx, shared.FilterByID(req.RoomTypeID, roomtypeModel.FieldID, roomtypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	if roomType.Capacity < req.GuestsCount {
		return res, failure.BadRequestFromString("party size exceeds room capacity") // nolint:wrapcheck
	}

	room, err := s.findFreeRoom(ctx, req.RoomTypeID, checkIn, checkOut)
	if err != nil {
		return res, err
	}

	code, err := s.nextCode(ctx)
	if err != nil {
		return res, err
	}

	nights := model.Nights(checkIn, checkOut)
	guest := req.Guest.ToModel(actorPublic)

	booking := model.Booking{
		ID:            uuid.NewString(),
		BookingCode:   code,
		GuestID:       guest.ID,
		RoomID:        room.ID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		GuestsCount:   req.GuestsCount,
		DailyRate:     roomType.BasePrice,
		TotalAmount:   float64(nights) * roomType.BasePrice,
		Status:        model.StatusReserved,
		PaymentStatus: model.PaymentStatusPayAtHotel,
		BookingType:   model.TypeReservation,
		Notes:         req.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actorPublic,
			ModifiedBy: actorPublic,
		},
	}

	booking, err = s.persistStay(ctx, guest, booking)
	if err != nil {
		return res, err
	}

	err = s.audit.Record(ctx, auditDto.Entry{
		Action:      auditModel.ActionBookingCreated,
		EntityType:  auditModel.EntityTypeBooking,
		EntityID:    booking.ID,
		Description: fmt.Sprintf("Online booking %s created for %s (%s to %s)", booking.BookingCode, guest.Name, req.CheckIn, req.CheckOut),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record booking creation")
	}

	s.invalidate(ctx, booking.ID)

	res.FromModel(booking)
	res.GuestName = guest.Name
	res.GuestPhone = guest.Phone
	res.RoomNumber = room.Number

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// GetByCode looks a booking up by its guest-shareable code, serving the
// public "my booking" page.
func (s *serviceImpl) GetByCode(ctx context.Context, code string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingCode,
				Value:    code,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)

	newCheckIn := booking.CheckIn
	newCheckOut := booking.CheckOut

	if req.CheckIn != "" {
		checkIn, parseErr := timezone.Parse(constant.DateOnlyFormat, req.CheckIn)
		if parseErr != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", parseErr)) // nolint:wrapcheck
		}

		updatedFields[model.FieldCheckIn] = checkIn
		newCheckIn = checkIn
	}

	if req.CheckOut != "" {
		checkOut, parseErr := timezone.Parse(constant.DateOnlyFormat, req.CheckOut)
		if parseErr != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", parseErr)) // nolint:wrapcheck
		}

		updatedFields[model.FieldCheckOut] = checkOut
		newCheckOut = checkOut
	}

	if (req.CheckIn != "" || req.CheckOut != "") && !newCheckOut.After(newCheckIn) {
		return failure.BadRequestFromString("check-out must be after check-in") // nolint:wrapcheck
	}

	roomChanged := req.RoomID != "" && req.RoomID != booking.RoomID
	if roomChanged {
		exist, existErr := s.rooms.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
		if existErr != nil {
			log.Error().Err(existErr).Msg("failed to check if room exists")

			return fmt.Errorf("failed to check if room exists: %w", existErr)
		}

		if !exist {
			return failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
		}
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	// A room change for an in-house stay moves the occupancy with it: the
	// vacated room goes to housekeeping and the new one becomes occupied.
	if roomChanged && booking.Status == model.StatusInHouse {
		if err = s.setRoomStatus(ctx, booking.RoomID, roomModel.StatusCleaning, user); err != nil {
			return err
		}

		if err = s.setRoomStatus(ctx, req.RoomID, roomModel.StatusOccupied, user); err != nil {
			return err
		}
	}

	entry := auditDto.Entry{
		Action:      auditModel.ActionBookingUpdated,
		EntityType:  auditModel.EntityTypeBooking,
		EntityID:    id,
		Description: fmt.Sprintf("Booking %s updated", booking.BookingCode),
		Reason:      req.Reason,
	}

	if roomChanged {
		entry.Action = auditModel.ActionRoomChanged
		entry.Description = fmt.Sprintf("Booking %s moved to a different room", booking.BookingCode)
		entry.PreviousValue = booking.RoomID
		entry.NewValue = req.RoomID
	}

	if err = s.audit.Record(ctx, entry); err != nil {
		log.Error().Err(err).Msg("failed to record booking update")
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.Backdated && req.Reason == constant.Empty {
		return failure.BadRequestFromString("reason is required for a backdated check-in") // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusReserved && booking.Status != model.StatusConfirmed {
		return failure.InvalidState("only a reserved or confirmed booking can be checked in") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusInHouse,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to check in booking")

		return fmt.Errorf("failed to check in booking: %w", err)
	}

	if err = s.setRoomStatus(ctx, booking.RoomID, roomModel.StatusOccupied, user); err != nil {
		return err
	}

	action := auditModel.ActionCheckIn
	if req.Backdated {
		action = auditModel.ActionBackdatedCheckIn
	}

	err = s.audit.Record(ctx, auditDto.Entry{
		Action:      action,
		EntityType:  auditModel.EntityTypeBooking,
		EntityID:    id,
		Description: fmt.Sprintf("Booking %s checked in", booking.BookingCode),
		Reason:      req.Reason,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record check-in")
	}

	s.invalidate(ctx, id)

	return nil
}

// CheckOut closes the stay: the booking moves to CHECKED_OUT, the room goes
// to housekeeping, and the payment status flips to PAID when the recorded
// payments cover the folio grand total.
func (s *serviceImpl) CheckOut(ctx context.Context, req dto.CheckOutRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.Backdated && req.Reason == constant.Empty {
		return failure.BadRequestFromString("reason is required for a backdated check-out") // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusInHouse {
		return failure.InvalidState("only an in-house booking can be checked out") // nolint:wrapcheck
	}

	totalBilled, err := s.totalBilled(ctx, booking)
	if err != nil {
		return err
	}

	totalPaid, err := s.payments.SumByBooking(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum payments")

		return fmt.Errorf("failed to sum payments: %w", err)
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCheckedOut,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if totalPaid >= totalBilled {
		updatedFields[model.FieldPaymentStatus] = model.PaymentStatusPaid
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to check out booking")

		return fmt.Errorf("failed to check out booking: %w", err)
	}

	if err = s.setRoomStatus(ctx, booking.RoomID, roomModel.StatusCleaning, user); err != nil {
		return err
	}

	action := auditModel.ActionCheckOut
	if req.Backdated {
		action = auditModel.ActionBackdatedCheckOut
	}

	err = s.audit.Record(ctx, auditDto.Entry{
		Action:      action,
		EntityType:  auditModel.EntityTypeBooking,
		EntityID:    id,
		Description: fmt.Sprintf("Booking %s checked out", booking.BookingCode),
		Reason:      req.Reason,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record check-out")
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status == model.StatusInHouse {
		return failure.InvalidState("cannot cancel a checked-in booking; check out first") // nolint:wrapcheck
	}

	for _, status := range model.TerminalStatuses {
		if booking.Status == status {
			return failure.InvalidState("booking is already closed") // nolint:wrapcheck
		}
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	err = s.audit.Record(ctx, auditDto.Entry{
		Action:      auditModel.ActionBookingCancelled,
		EntityType:  auditModel.EntityTypeBooking,
		EntityID:    id,
		Description: fmt.Sprintf("Booking %s cancelled", booking.BookingCode),
		Reason:      req.Reason,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record cancellation")
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) MarkNoShow(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkNoShow")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusReserved && booking.Status != model.StatusConfirmed {
		return failure.InvalidState("only a reserved or confirmed booking can be marked as a no-show") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusNoShow,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark booking as no-show")

		return fmt.Errorf("failed to mark booking as no-show: %w", err)
	}

	err = s.audit.Record(ctx, auditDto.Entry{
		Action:      auditModel.ActionNoShowMarked,
		EntityType:  auditModel.EntityTypeBooking,
		EntityID:    id,
		Description: fmt.Sprintf("Booking %s marked as a no-show", booking.BookingCode),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record no-show")
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) nextCode(ctx context.Context) (string, error) {
	seq, err := s.repo.NextSequence(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to advance booking sequence")

		return "", fmt.Errorf("failed to advance booking sequence: %w", err)
	}

	return model.BuildCode(s.cfg.Hotel.BookingCodePrefix, timezone.Now().Year(), seq), nil
}

// persistStay commits the guest, the booking, and the seeded folio with its
// ROOM_CHARGE line as one transaction. The returned booking carries the
// grand total propagated from the folio.
func (s *serviceImpl) persistStay(ctx context.Context, guest guestModel.Guest, booking model.Booking) (model.Booking, error) {
	nights := model.Nights(booking.CheckIn, booking.CheckOut)

	folio := folioModel.Folio{
		ID:         uuid.NewString(),
		BookingID:  booking.ID,
		TaxPercent: s.cfg.Hotel.DefaultTaxPercent,
		Metadata:   booking.Metadata,
	}

	roomCharge := folioModel.LineItem{
		ID:          uuid.NewString(),
		FolioID:     folio.ID,
		Type:        folioModel.LineItemTypeRoomCharge,
		Description: fmt.Sprintf("Room charge (%d nights)", nights),
		Quantity:    nights,
		UnitPrice:   booking.DailyRate,
		Total:       float64(nights) * booking.DailyRate,
		Date:        booking.CheckIn,
		Metadata:    booking.Metadata,
	}

	folio.Recalculate([]folioModel.LineItem{roomCharge})
	booking.TotalAmount = folio.GrandTotal

	tx, err := s.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return booking, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.guests.InsertTx(ctx, tx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return booking, fmt.Errorf("failed to create guest: %w", err)
	}

	if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return booking, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = s.folios.InsertTx(ctx, tx, folio); err != nil {
		log.Error().Err(err).Msg("failed to create folio")

		return booking, fmt.Errorf("failed to create folio: %w", err)
	}

	if err = s.folios.InsertLineItemsTx(ctx, tx, []folioModel.LineItem{roomCharge}); err != nil {
		log.Error().Err(err).Msg("failed to create room charge")

		return booking, fmt.Errorf("failed to create room charge: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return booking, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return booking, nil
}

func (s *serviceImpl) findFreeRoom(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (roomModel.Room, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldTypeID,
				Value:    roomTypeID,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
			gDto.Filter{
				Field:    roomModel.FieldStatus,
				Value:    roomModel.StatusAvailable,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
		},
	}

	rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{SortBy: roomModel.FieldNumber, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return roomModel.Room{}, fmt.Errorf("failed to get rooms: %w", err)
	}

	overlapping, err := s.repo.FindOverlapping(ctx, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to find overlapping bookings")

		return roomModel.Room{}, fmt.Errorf("failed to find overlapping bookings: %w", err)
	}

	busy := map[string]bool{}
	for _, existing := range overlapping {
		busy[existing.RoomID] = true
	}

	for _, room := range rooms {
		if !busy[room.ID] {
			return room, nil
		}
	}

	return roomModel.Room{}, failure.Conflict("no rooms of this type are available for the selected dates") // nolint:wrapcheck
}

// totalBilled prefers the folio grand total and falls back to the amount
// captured on the booking when no folio row exists.
func (s *serviceImpl) totalBilled(ctx context.Context, booking model.Booking) (float64, error) {
	folio, err := s.folios.Get(ctx, shared.FilterByID(booking.ID, folioModel.FieldBookingID, folioModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get folio")

		return 0, fmt.Errorf("failed to get folio: %w", err)
	}

	if folio.ID == constant.Empty {
		return booking.TotalAmount, nil
	}

	return folio.GrandTotal, nil
}

func (s *serviceImpl) setRoomStatus(ctx context.Context, roomID, status, user string) error {
	updatedFields := map[string]any{
		roomModel.FieldStatus:    status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.rooms.Update(ctx, updatedFields, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}

// invalidate clears the booking caches plus the room and availability caches,
// since lifecycle transitions change room status and free-room sets.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
		shared.InvalidateCaches(c, s.cache, cacheAvailabilityPrefix)
	}()
}
