package payment

import (
	"hms/infras/otel"
	"hms/internal/domains/payment/model/dto"
	"hms/internal/domains/payment/service"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/validator"
	"hms/transport/http/middleware"
	"hms/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Payment
	authRole middleware.AuthRole
	otel     otel.Otel
}

func New(service service.Payment, authRole middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		authRole: authRole,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authRole.Auth)
		routerGroup.Post("/", handler.AddPayment)
		routerGroup.Get("/booking/{id}", handler.GetPaymentsByBooking)
		routerGroup.Patch("/{id}", handler.UpdatePayment)

		// Deleting a payment erases part of the money trail, so it stays
		// with admins.
		routerGroup.With(handler.authRole.RequireRoles(constant.RoleAdmin)).
			Delete("/{id}", handler.DeletePayment)
	})
}

// AddPayment records a payment against a booking.
// @Summary Record payment
// @Description Record a payment for a booking and settle its payment status from the folio balance.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.AddPaymentRequest true "Add Payment Request"
// @Success 201 {object} response.Data[dto.PaymentResponse] "Payment recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/payments [post]
// @Security BearerAuth
func (handler *Handler) AddPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddPayment")
	defer scope.End()

	req := dto.AddPaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Add(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment recorded successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetPaymentsByBooking lists the payments of a booking.
// @Summary Get payments by booking
// @Description Retrieve the payments recorded against one booking, newest first.
// @Tags Payment
// @Produce json
// @Param id path string true "Booking ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse] "List of payments"
// @Failure 500 {object} response.Error
// @Router /v1/payments/booking/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentsByBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentsByBooking")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	payments, err := handler.service.ListByBooking(ctx, bookingID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, payments)
}

// UpdatePayment corrects a recorded payment.
// @Summary Update payment
// @Description Correct a payment's amount, method, reference or notes. A reason is required and lands in the audit log.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body dto.UpdatePaymentRequest true "Update Payment Request"
// @Success 200 {object} response.Message "Payment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/payments/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePayment")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdatePaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment updated successfully")

	response.WithMessage(writer, http.StatusOK, "Payment updated successfully")
}

// DeletePayment removes a recorded payment. Admin only.
// @Summary Delete payment
// @Description Delete a payment with a reason. The booking's payment status resets and must be rebuilt by new payments.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body dto.DeletePaymentRequest true "Delete Payment Request"
// @Success 200 {object} response.Message "Payment deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/payments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePayment")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.DeletePaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete payment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Payment deleted successfully")
}
