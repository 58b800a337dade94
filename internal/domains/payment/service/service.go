package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Payment=MockPaymentService

import (
	"context"
	"encoding/json"
	"fmt"
	"hms/config"
	"hms/infras/otel"
	auditModel "hms/internal/domains/audit/model"
	auditDto "hms/internal/domains/audit/model/dto"
	auditService "hms/internal/domains/audit/service"
	bookingModel "hms/internal/domains/booking/model"
	bookingRepo "hms/internal/domains/booking/repository"
	folioModel "hms/internal/domains/folio/model"
	folioRepo "hms/internal/domains/folio/repository"
	"hms/internal/domains/payment/model"
	"hms/internal/domains/payment/model/dto"
	"hms/internal/domains/payment/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllPayment = "payment:gets"

	cacheFolioPrefix   = "folio"
	cacheBookingPrefix = "booking"

	// statusAfterDelete is the payment status a booking falls back to when a
	// payment is deleted; the money trail has to be rebuilt from scratch.
	statusAfterDelete = bookingModel.PaymentStatusPayAtHotel
)

type Payment interface {
	Add(ctx context.Context, req dto.AddPaymentRequest) (dto.PaymentResponse, error)
	Update(ctx context.Context, req dto.UpdatePaymentRequest, id string) error
	Delete(ctx context.Context, req dto.DeletePaymentRequest, id string) error
	ListByBooking(ctx context.Context, bookingID string, params gDto.QueryParams) (dto.GetPaymentsResponse, error)
}

type serviceImpl struct {
	repo     repository.Payment
	bookings bookingRepo.Booking
	folios   folioRepo.Folio
	audit    auditService.Audit
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Payment,
	bookings bookingRepo.Booking,
	folios folioRepo.Folio,
	audit auditService.Audit,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		folios:   folios,
		audit:    audit,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.AddPaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	if booking.Status == bookingModel.StatusCancelled || booking.Status == bookingModel.StatusNoShow {
		return res, failure.InvalidState("cannot record a payment for a cancelled or no-show booking") // nolint:wrapcheck
	}

	folio, err := s.folios.Get(ctx, shared.FilterByID(req.BookingID, folioModel.FieldBookingID, folioModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get folio")

		return res, fmt.Errorf("failed to get folio: %w", err)
	}

	payment := req.ToModel(folio.ID, user)

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to add payment")

		return res, fmt.Errorf("failed to add payment: %w", err)
	}

	if err = s.settlePaymentStatus(ctx, booking, folio, user); err != nil {
		return res, err
	}

	err = s.audit.Record(ctx, auditDto.Entry{
		Action:      auditModel.ActionPaymentAdded,
		EntityType:  auditModel.EntityTypePayment,
		EntityID:    payment.ID,
		Description: fmt.Sprintf("Payment of %.2f (%s) recorded for booking %s", payment.Amount, payment.Method, booking.BookingCode),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record payment addition")
	}

	s.invalidate(ctx, req.BookingID)

	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	payment, err := s.getPayment(ctx, id)
	if err != nil {
		return err
	}

	previous := snapshot(payment)

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update payment")

		return fmt.Errorf("failed to update payment: %w", err)
	}

	updated, err := s.getPayment(ctx, id)
	if err != nil {
		return err
	}

	booking, err := s.getBooking(ctx, payment.BookingID)
	if err != nil {
		return err
	}

	folio, err := s.folios.Get(ctx, shared.FilterByID(payment.BookingID, folioModel.FieldBookingID, folioModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get folio")

		return fmt.Errorf("failed to get folio: %w", err)
	}

	if err = s.settlePaymentStatus(ctx, booking, folio, user); err != nil {
		return err
	}

	err = s.audit.Record(ctx, auditDto.Entry{
		Action:        auditModel.ActionPaymentEdited,
		EntityType:    auditModel.EntityTypePayment,
		EntityID:      id,
		Description:   fmt.Sprintf("Payment for booking %s edited", booking.BookingCode),
		Reason:        req.Reason,
		PreviousValue: previous,
		NewValue:      snapshot(updated),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record payment edit")
	}

	s.invalidate(ctx, payment.BookingID)

	return nil
}

// Delete removes a payment record and hard-resets the booking payment status;
// the trail is recorded before the row disappears.
func (s *serviceImpl) Delete(ctx context.Context, req dto.DeletePaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	payment, err := s.getPayment(ctx, id)
	if err != nil {
		return err
	}

	booking, err := s.getBooking(ctx, payment.BookingID)
	if err != nil {
		return err
	}

	err = s.audit.Record(ctx, auditDto.Entry{
		Action:        auditModel.ActionPaymentDeleted,
		EntityType:    auditModel.EntityTypePayment,
		EntityID:      id,
		Description:   fmt.Sprintf("Payment of %.2f (%s) deleted from booking %s", payment.Amount, payment.Method, booking.BookingCode),
		Reason:        req.Reason,
		PreviousValue: snapshot(payment),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record payment deletion")
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete payment")

		return fmt.Errorf("failed to delete payment: %w", err)
	}

	updatedFields := map[string]any{
		bookingModel.FieldPaymentStatus: statusAfterDelete,
		constant.FieldModifiedAt:        timezone.Now(),
		constant.FieldModifiedBy:        user,
	}

	filter := shared.FilterByID(payment.BookingID, bookingModel.FieldID, bookingModel.TableName)
	if err = s.bookings.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to reset booking payment status")

		return fmt.Errorf("failed to reset booking payment status: %w", err)
	}

	s.invalidate(ctx, payment.BookingID)

	return nil
}

func (s *serviceImpl) ListByBooking(ctx context.Context, bookingID string, params gDto.QueryParams) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllPayment, bookingID), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getPayment(ctx context.Context, id string) (model.Payment, error) {
	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return payment, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return payment, failure.NotFound("payment not found") // nolint:wrapcheck
	}

	return payment, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (bookingModel.Booking, error) {
	booking, err := s.bookings.Get(ctx, shared.FilterByID(id, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// settlePaymentStatus marks the booking PAID once the recorded payments cover
// the billed total, and reverts a stale PAID flag when they no longer do.
func (s *serviceImpl) settlePaymentStatus(ctx context.Context, booking bookingModel.Booking, folio folioModel.Folio, user string) error {
	totalBilled := booking.TotalAmount
	if folio.ID != constant.Empty {
		totalBilled = folio.GrandTotal
	}

	totalPaid, err := s.repo.SumByBooking(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum payments")

		return fmt.Errorf("failed to sum payments: %w", err)
	}

	status := booking.PaymentStatus

	switch {
	case totalPaid >= totalBilled:
		status = bookingModel.PaymentStatusPaid
	case booking.PaymentStatus == bookingModel.PaymentStatusPaid:
		status = bookingModel.PaymentStatusPayAtHotel
	}

	if status == booking.PaymentStatus {
		return nil
	}

	updatedFields := map[string]any{
		bookingModel.FieldPaymentStatus: status,
		constant.FieldModifiedAt:        timezone.Now(),
		constant.FieldModifiedBy:        user,
	}

	filter := shared.FilterByID(booking.ID, bookingModel.FieldID, bookingModel.TableName)
	if err = s.bookings.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking payment status")

		return fmt.Errorf("failed to update booking payment status: %w", err)
	}

	return nil
}

func snapshot(payment model.Payment) string {
	encoded, err := json.Marshal(map[string]any{
		"amount":    payment.Amount,
		"method":    payment.Method,
		"reference": payment.Reference,
		"notes":     payment.Notes,
	})
	if err != nil {
		return constant.Empty
	}

	return string(encoded)
}

func (s *serviceImpl) invalidate(ctx context.Context, bookingID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetAllPayment, bookingID))
		shared.InvalidateCaches(c, s.cache, cacheFolioPrefix)
		shared.InvalidateCaches(c, s.cache, cacheBookingPrefix)
	}()
}
