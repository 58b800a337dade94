package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Folio=MockFolioService

import (
	"context"
	"fmt"
	"hms/config"
	"hms/infras/otel"
	auditModel "hms/internal/domains/audit/model"
	auditDto "hms/internal/domains/audit/model/dto"
	auditService "hms/internal/domains/audit/service"
	bookingModel "hms/internal/domains/booking/model"
	bookingRepo "hms/internal/domains/booking/repository"
	"hms/internal/domains/folio/model"
	"hms/internal/domains/folio/model/dto"
	"hms/internal/domains/folio/repository"
	paymentRepo "hms/internal/domains/payment/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFolio   = "folio:get"
	cacheGetBalance = "folio:balance"

	cacheBookingPrefix = "booking"
)

// Folio manages the running bill of a booking. All mutations recalculate the
// folio totals from the full line item set and push the grand total back onto
// the booking, so the two never drift apart.
type Folio interface {
	GetByBooking(ctx context.Context, bookingID string) (dto.FolioResponse, error)
	AddLineItem(ctx context.Context, req dto.AddLineItemRequest, bookingID string) (dto.FolioResponse, error)
	RemoveLineItem(ctx context.Context, req dto.RemoveLineItemRequest, bookingID, itemID string) (dto.FolioResponse, error)
	ApplyDiscount(ctx context.Context, req dto.ApplyDiscountRequest, bookingID string) (dto.FolioResponse, error)
	BalanceSummary(ctx context.Context, bookingID string) (dto.BalanceSummaryResponse, error)
}

type serviceImpl struct {
	repo     repository.Folio
	bookings bookingRepo.Booking
	payments paymentRepo.Payment
	audit    auditService.Audit
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Folio,
	bookings bookingRepo.Booking,
	payments paymentRepo.Payment,
	audit auditService.Audit,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Folio {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		payments: payments,
		audit:    audit,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string) (res dto.FolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFolio, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for folio")

		return res, nil
	}

	folio, items, err := s.getFolio(ctx, bookingID)
	if err != nil {
		return res, err
	}

	res.FromModel(folio, items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save folio to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) AddLineItem(ctx context.Context, req dto.AddLineItemRequest, bookingID string) (res dto.FolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddLineItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	folio, _, err := s.getFolio(ctx, bookingID)
	if err != nil {
		return res, err
	}

	item := req.ToModel(folio.ID, user)

	if err = s.repo.InsertLineItem(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to add line item")

		return res, fmt.Errorf("failed to add line item: %w", err)
	}

	folio, items, err := s.recalculate(ctx, folio, user)
	if err != nil {
		return res, err
	}

	err = s.audit.Record(ctx, auditDto.Entry{
		Action:      auditModel.ActionFolioUpdated,
		EntityType:  auditModel.EntityTypeFolio,
		EntityID:    folio.ID,
		Description: fmt.Sprintf("Line item %s (%s) added to the folio", item.Description, item.Type),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record folio update")
	}

	s.invalidate(ctx, bookingID)

	res.FromModel(folio, items)

	return res, nil
}

func (s *serviceImpl) RemoveLineItem(ctx context.Context, req dto.RemoveLineItemRequest, bookingID, itemID string) (res dto.FolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveLineItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	folio, _, err := s.getFolio(ctx, bookingID)
	if err != nil {
		return res, err
	}

	itemFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.LineItemFieldID,
				Value:    itemID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.LineItemTableName,
			},
			gDto.Filter{
				ArgName:  "item_folio_id",
				Field:    model.LineItemFieldFolioID,
				Value:    folio.ID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.LineItemTableName,
			},
		},
	}

	item, err := s.repo.GetLineItem(ctx, itemFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get line item")

		return res, fmt.Errorf("failed to get line item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("line item not found") // nolint:wrapcheck
	}

	if item.Type == model.LineItemTypeRoomCharge && !req.Force {
		return res, failure.InvalidState("the room charge can only be removed with force") // nolint:wrapcheck
	}

	if err = s.repo.DeleteLineItem(ctx, itemFilter); err != nil {
		log.Error().Err(err).Msg("failed to remove line item")

		return res, fmt.Errorf("failed to remove line item: %w", err)
	}

	folio, items, err := s.recalculate(ctx, folio, user)
	if err != nil {
		return res, err
	}

	err = s.audit.Record(ctx, auditDto.Entry{
		Action:      auditModel.ActionFolioUpdated,
		EntityType:  auditModel.EntityTypeFolio,
		EntityID:    folio.ID,
		Description: fmt.Sprintf("Line item %s (%s) removed from the folio", item.Description, item.Type),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record folio update")
	}

	s.invalidate(ctx, bookingID)

	res.FromModel(folio, items)

	return res, nil
}

// ApplyDiscount replaces both discount fields at once; the flat amount and
// the percentage stack during recalculation.
func (s *serviceImpl) ApplyDiscount(ctx context.Context, req dto.ApplyDiscountRequest, bookingID string) (res dto.FolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyDiscount")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	folio, _, err := s.getFolio(ctx, bookingID)
	if err != nil {
		return res, err
	}

	folio.DiscountAmount = req.Amount
	folio.DiscountPercent = req.Percent

	folio, items, err := s.recalculate(ctx, folio, user)
	if err != nil {
		return res, err
	}

	err = s.audit.Record(ctx, auditDto.Entry{
		Action:      auditModel.ActionFolioUpdated,
		EntityType:  auditModel.EntityTypeFolio,
		EntityID:    folio.ID,
		Description: fmt.Sprintf("Discount set to %.2f flat and %.2f%%", req.Amount, req.Percent),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record folio update")
	}

	s.invalidate(ctx, bookingID)

	res.FromModel(folio, items)

	return res, nil
}

func (s *serviceImpl) BalanceSummary(ctx context.Context, bookingID string) (res dto.BalanceSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BalanceSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBalance, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for balance summary")

		return res, nil
	}

	booking, err := s.bookings.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	folio, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get folio")

		return res, fmt.Errorf("failed to get folio: %w", err)
	}

	totalBilled := booking.TotalAmount
	if folio.ID != constant.Empty {
		totalBilled = folio.GrandTotal
	}

	totalPaid, err := s.payments.SumByBooking(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum payments")

		return res, fmt.Errorf("failed to sum payments: %w", err)
	}

	res.BookingID = bookingID
	res.TotalBilled = totalBilled
	res.TotalPaid = totalPaid
	res.BalanceDue = totalBilled - totalPaid

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save balance summary to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getFolio(ctx context.Context, bookingID string) (model.Folio, []model.LineItem, error) {
	folio, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get folio")

		return folio, nil, fmt.Errorf("failed to get folio: %w", err)
	}

	if folio.ID == constant.Empty {
		return folio, nil, failure.NotFound("folio not found") // nolint:wrapcheck
	}

	items, err := s.repo.GetLineItems(ctx, folio.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get line items")

		return folio, nil, fmt.Errorf("failed to get line items: %w", err)
	}

	return folio, items, nil
}

// recalculate rederives the folio totals from the stored line items, persists
// them, and pushes the grand total onto the booking row.
func (s *serviceImpl) recalculate(ctx context.Context, folio model.Folio, user string) (model.Folio, []model.LineItem, error) {
	items, err := s.repo.GetLineItems(ctx, folio.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get line items")

		return folio, nil, fmt.Errorf("failed to get line items: %w", err)
	}

	folio.Recalculate(items)

	updatedFields := map[string]any{
		model.FieldSubtotal:        folio.Subtotal,
		model.FieldDiscountAmount:  folio.DiscountAmount,
		model.FieldDiscountPercent: folio.DiscountPercent,
		model.FieldTaxAmount:       folio.TaxAmount,
		model.FieldGrandTotal:      folio.GrandTotal,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(folio.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update folio")

		return folio, nil, fmt.Errorf("failed to update folio: %w", err)
	}

	bookingFields := map[string]any{
		bookingModel.FieldTotalAmount: folio.GrandTotal,
		constant.FieldModifiedAt:      timezone.Now(),
		constant.FieldModifiedBy:      user,
	}

	filter := shared.FilterByID(folio.BookingID, bookingModel.FieldID, bookingModel.TableName)
	if err = s.bookings.Update(ctx, bookingFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking total")

		return folio, nil, fmt.Errorf("failed to update booking total: %w", err)
	}

	return folio, items, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, bookingID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFolio, bookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete folio from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBalance, bookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete balance summary from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheBookingPrefix)
	}()
}
