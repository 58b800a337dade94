package booking

import (
	"hms/infras/otel"
	"hms/internal/domains/booking/model"
	"hms/internal/domains/booking/model/dto"
	"hms/internal/domains/booking/service"
	folioService "hms/internal/domains/folio/service"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/validator"
	"hms/transport/http/middleware"
	"hms/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const requestParamCode = "code"

type Handler struct {
	service  service.Booking
	folios   folioService.Folio
	authRole middleware.AuthRole
	otel     otel.Otel
}

func New(service service.Booking, folios folioService.Folio, authRole middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		folios:   folios,
		authRole: authRole,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authRole.Auth)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Post("/{id}/check-in", handler.CheckIn)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/no-show", handler.MarkNoShow)
	})

	router.Route("/public/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePublicBooking)
		routerGroup.Get("/{code}", handler.GetBookingByCode)
	})
}

// CreateBooking creates a staff reservation or walk-in stay.
// @Summary Create a booking
// @Description Create a reservation or walk-in for a concrete room, opening the guest folio with the room charge.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateStayRequest true "Create Stay Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateStayRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateStay(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// CreatePublicBooking creates a reservation from the public booking site.
// @Summary Create a public booking
// @Description Reserve a room of the requested type for the given dates. No account needed; the response carries the booking code.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreatePublicBookingRequest true "Create Public Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/public/bookings [post]
func (handler *Handler) CreatePublicBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePublicBooking")
	defer scope.End()

	req := dto.CreatePublicBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreatePublic(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create public booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Public booking created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings retrieves all bookings with optional filtering and pagination.
// @Summary Get all bookings
// @Description Retrieve bookings with optional filtering by status, payment status, room or guest.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param payment_status query string false "Filter by payment status"
// @Param room_id query string false "Filter by room"
// @Param guest_id query string false "Filter by guest"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	status := request.URL.Query().Get(model.FieldStatus)
	paymentStatus := request.URL.Query().Get(model.FieldPaymentStatus)
	roomID := request.URL.Query().Get(model.FieldRoomID)
	guestID := request.URL.Query().Get(model.FieldGuestID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if paymentStatus != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPaymentStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    paymentStatus,
			Table:    model.TableName,
		})
	}

	if roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	if guestID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGuestID,
			Operator: gDto.FilterOperatorEq,
			Value:    guestID,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetBookingByID retrieves a single booking.
// @Summary Get booking by ID
// @Description Retrieve one booking with guest and room details.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// GetBookingByCode retrieves a booking by its guest-facing code.
// @Summary Get booking by code
// @Description Look up a booking by the code handed to the guest, e.g. HMS-2026-000042.
// @Tags Booking
// @Produce json
// @Param code path string true "Booking Code"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/bookings/{code} [get]
func (handler *Handler) GetBookingByCode(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByCode")
	defer scope.End()

	code := chi.URLParam(request, requestParamCode)

	booking, err := handler.service.GetByCode(ctx, code)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by code")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// UpdateBooking modifies a booking before or during the stay.
// @Summary Update booking
// @Description Change dates, room, party size or notes. Room moves while in-house flip the room statuses.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithMessage(writer, http.StatusOK, "Booking updated successfully")
}

// CheckIn moves a reserved booking in-house.
// @Summary Check in
// @Description Check a reserved or confirmed booking in. Backdated check-ins need a reason.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CheckInRequest true "Check In Request"
// @Success 200 {object} response.Message "Checked in successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.CheckInRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CheckIn(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking checked in successfully")

	response.WithMessage(writer, http.StatusOK, "Checked in successfully")
}

// CheckOut closes an in-house stay.
// @Summary Check out
// @Description Check an in-house booking out, settling the payment status from the folio balance.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CheckOutRequest true "Check Out Request"
// @Success 200 {object} response.Message "Checked out successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.CheckOutRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	// Front-desk policy: the stay must be settled before it closes. The
	// service transitions unconditionally once called.
	summary, err := handler.folios.BalanceSummary(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get balance summary")

		response.WithError(writer, err)

		return
	}

	if summary.BalanceDue > 0 {
		err = failure.InvalidState("cannot check out with an outstanding balance; settle the folio first")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CheckOut(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking checked out successfully")

	response.WithMessage(writer, http.StatusOK, "Checked out successfully")
}

// CancelBooking cancels a booking that has not checked in.
// @Summary Cancel booking
// @Description Cancel a reserved or confirmed booking with a reason. In-house stays must check out instead.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CancelBookingRequest true "Cancel Booking Request"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.CancelBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Cancel(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully")

	response.WithMessage(writer, http.StatusOK, "Booking cancelled successfully")
}

// MarkNoShow flags a reservation whose guest never arrived.
// @Summary Mark no-show
// @Description Mark a reserved or confirmed booking as a no-show.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking marked as no-show"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/no-show [post]
// @Security BearerAuth
func (handler *Handler) MarkNoShow(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkNoShow")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.MarkNoShow(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark booking as no-show")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking marked as no-show")

	response.WithMessage(writer, http.StatusOK, "Booking marked as no-show")
}
