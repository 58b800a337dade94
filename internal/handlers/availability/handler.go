package availability

import (
	"hms/infras/otel"
	"hms/internal/domains/availability/model/dto"
	"hms/internal/domains/availability/service"
	"hms/shared/constant"
	"hms/shared/validator"
	"hms/transport/http/middleware"
	"hms/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Availability
	authRole middleware.AuthRole
	otel     otel.Otel
}

func New(service service.Availability, authRole middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		authRole: authRole,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/public/availability", handler.Search)

	router.With(handler.authRole.Auth).
		Get("/availability/rooms", handler.StaffRooms)
}

// Search lists room types bookable for a date range and party size.
// @Summary Search availability
// @Description List room types with at least one free room for the requested dates, honoring capacity.
// @Tags Availability
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param guests_count query int true "Party size"
// @Success 200 {object} response.Data[dto.SearchResponse] "Available room types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/availability [get]
func (handler *Handler) Search(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	guestsCount, _ := strconv.Atoi(request.URL.Query().Get("guests_count"))

	req := dto.SearchRequest{
		CheckIn:     request.URL.Query().Get("check_in"),
		CheckOut:    request.URL.Query().Get("check_out"),
		GuestsCount: guestsCount,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// StaffRooms lists every room with its availability for a date range.
// @Summary Room-level availability
// @Description List all rooms free for the requested dates, across room types. Front-desk view.
// @Tags Availability
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.StaffRoomsResponse] "Free rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/rooms [get]
// @Security BearerAuth
func (handler *Handler) StaffRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StaffRooms")
	defer scope.End()

	req := dto.StaffRoomsRequest{
		CheckIn:  request.URL.Query().Get("check_in"),
		CheckOut: request.URL.Query().Get("check_out"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.StaffRooms(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
