package report

import (
	"hms/infras/otel"
	"hms/internal/domains/report/model/dto"
	"hms/internal/domains/report/service"
	"hms/shared/constant"
	"hms/shared/validator"
	"hms/transport/http/middleware"
	"hms/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const requestParamDate = "date"

type Handler struct {
	service  service.Report
	authRole middleware.AuthRole
	otel     otel.Otel
}

func New(service service.Report, authRole middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		authRole: authRole,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authRole.Auth)
		routerGroup.Get("/dashboard", handler.GetDashboard)
		routerGroup.Get("/arrivals", handler.GetArrivals)
		routerGroup.Get("/departures", handler.GetDepartures)
		routerGroup.Get("/revenue", handler.GetRevenue)
		routerGroup.Get("/outstanding", handler.GetOutstanding)
		routerGroup.Get("/occupancy", handler.GetOccupancy)
	})
}

// GetDashboard retrieves today's operational snapshot.
// @Summary Get dashboard stats
// @Description Retrieve today's check-ins, check-outs, in-house count, unpaid totals, revenue by method, occupancy and recent bookings.
// @Tags Report
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardStatsResponse] "Dashboard stats"
// @Failure 500 {object} response.Error
// @Router /v1/reports/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	stats, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, stats)
}

// GetArrivals lists the bookings arriving on a date.
// @Summary Get arrivals
// @Description List bookings checking in on the given date.
// @Tags Report
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse] "Arrivals"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/arrivals [get]
// @Security BearerAuth
func (handler *Handler) GetArrivals(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArrivals")
	defer scope.End()

	date := request.URL.Query().Get(requestParamDate)

	arrivals, err := handler.service.Arrivals(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get arrivals")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, arrivals)
}

// GetDepartures lists the bookings departing on a date.
// @Summary Get departures
// @Description List bookings checking out on the given date.
// @Tags Report
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse] "Departures"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/departures [get]
// @Security BearerAuth
func (handler *Handler) GetDepartures(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDepartures")
	defer scope.End()

	date := request.URL.Query().Get(requestParamDate)

	departures, err := handler.service.Departures(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get departures")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, departures)
}

// GetRevenue reports collected revenue for a date range.
// @Summary Get revenue report
// @Description Total payments collected per method over an inclusive date range.
// @Tags Report
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.RevenueReportResponse] "Revenue report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetRevenue(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	req := dto.RangeRequest{
		From: request.URL.Query().Get("from"),
		To:   request.URL.Query().Get("to"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	revenue, err := handler.service.Revenue(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue report")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, revenue)
}

// GetOutstanding lists bookings with money still owed.
// @Summary Get outstanding balances
// @Description List active or departed stays whose payments fall short of the billed total.
// @Tags Report
// @Produce json
// @Success 200 {object} response.Data[dto.OutstandingResponse] "Outstanding balances"
// @Failure 500 {object} response.Error
// @Router /v1/reports/outstanding [get]
// @Security BearerAuth
func (handler *Handler) GetOutstanding(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOutstanding")
	defer scope.End()

	outstanding, err := handler.service.Outstanding(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get outstanding balances")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, outstanding)
}

// GetOccupancy reports the current room status breakdown.
// @Summary Get occupancy
// @Description Current room counts per status and the occupancy percentage.
// @Tags Report
// @Produce json
// @Success 200 {object} response.Data[dto.OccupancyResponse] "Occupancy snapshot"
// @Failure 500 {object} response.Error
// @Router /v1/reports/occupancy [get]
// @Security BearerAuth
func (handler *Handler) GetOccupancy(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancy")
	defer scope.End()

	occupancy, err := handler.service.Occupancy(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupancy")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, occupancy)
}
