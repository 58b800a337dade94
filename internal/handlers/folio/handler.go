package folio

import (
	"hms/infras/otel"
	"hms/internal/domains/folio/model/dto"
	"hms/internal/domains/folio/service"
	"hms/shared/constant"
	"hms/shared/validator"
	"hms/transport/http/middleware"
	"hms/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const requestParamItemID = "itemID"

type Handler struct {
	service  service.Folio
	authRole middleware.AuthRole
	otel     otel.Otel
}

func New(service service.Folio, authRole middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		authRole: authRole,
		otel:     otel,
	}
}

// Folios hang off their booking, so every route here keys on the booking ID.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/folios/{id}", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authRole.Auth)
		routerGroup.Get("/", handler.GetFolio)
		routerGroup.Get("/balance", handler.GetBalance)
		routerGroup.Post("/items", handler.AddLineItem)
		routerGroup.Delete("/items/{itemID}", handler.RemoveLineItem)
		routerGroup.Post("/discount", handler.ApplyDiscount)
	})
}

// GetFolio retrieves the folio of a booking.
// @Summary Get folio
// @Description Retrieve the folio of a booking with its line items and totals.
// @Tags Folio
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.FolioResponse] "Folio details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/folios/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetFolio(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFolio")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)

	folio, err := handler.service.GetByBooking(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get folio")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, folio)
}

// GetBalance retrieves the billed/paid/due summary of a booking.
// @Summary Get balance summary
// @Description Retrieve total billed, total paid and balance due for a booking.
// @Tags Folio
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BalanceSummaryResponse] "Balance summary"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/folios/{id}/balance [get]
// @Security BearerAuth
func (handler *Handler) GetBalance(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBalance")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)

	balance, err := handler.service.BalanceSummary(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get balance summary")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, balance)
}

// AddLineItem posts a charge to the folio.
// @Summary Add line item
// @Description Add a charge (extra bed, food, laundry, transport, misc) to the folio and recalculate totals.
// @Tags Folio
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.AddLineItemRequest true "Add Line Item Request"
// @Success 201 {object} response.Data[dto.FolioResponse] "Updated folio"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/folios/{id}/items [post]
// @Security BearerAuth
func (handler *Handler) AddLineItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddLineItem")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)

	req := dto.AddLineItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	folio, err := handler.service.AddLineItem(ctx, req, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add line item")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Line item added successfully")

	response.WithJSON(writer, http.StatusCreated, folio)
}

// RemoveLineItem removes a charge from the folio.
// @Summary Remove line item
// @Description Remove a line item and recalculate totals. The room charge needs force=true.
// @Tags Folio
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param itemID path string true "Line Item ID"
// @Param request body dto.RemoveLineItemRequest false "Remove Line Item Request"
// @Success 200 {object} response.Data[dto.FolioResponse] "Updated folio"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/folios/{id}/items/{itemID} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveLineItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveLineItem")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)
	itemID := chi.URLParam(request, requestParamItemID)

	// The body is optional; force defaults to false on an empty read.
	req := dto.RemoveLineItemRequest{}
	if request.Body != nil && request.ContentLength > 0 {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(writer, err)

			return
		}
	}

	folio, err := handler.service.RemoveLineItem(ctx, req, bookingID, itemID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove line item")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Line item removed successfully")

	response.WithJSON(writer, http.StatusOK, folio)
}

// ApplyDiscount sets the folio discount.
// @Summary Apply discount
// @Description Set the flat and/or percentage discount on the folio and recalculate totals.
// @Tags Folio
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ApplyDiscountRequest true "Apply Discount Request"
// @Success 200 {object} response.Data[dto.FolioResponse] "Updated folio"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/folios/{id}/discount [post]
// @Security BearerAuth
func (handler *Handler) ApplyDiscount(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApplyDiscount")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)

	req := dto.ApplyDiscountRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	folio, err := handler.service.ApplyDiscount(ctx, req, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to apply discount")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Discount applied successfully")

	response.WithJSON(writer, http.StatusOK, folio)
}
