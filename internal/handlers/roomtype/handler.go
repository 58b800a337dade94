package roomtype

import (
	"hms/infras/otel"
	"hms/internal/domains/roomtype/service"
	"hms/shared/constant"
	"hms/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomType
	otel    otel.Otel
}

func New(service service.RoomType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Room types are part of the public booking site, so no auth here.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-types", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRoomTypes)
		routerGroup.Get("/{id}", handler.GetRoomTypeByID)
	})
}

// GetRoomTypes retrieves the room type catalog.
// @Summary Get room types
// @Description Retrieve every room type with pricing, capacity and amenities.
// @Tags RoomType
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomTypesResponse] "List of room types"
// @Failure 500 {object} response.Error
// @Router /v1/room-types [get]
func (handler *Handler) GetRoomTypes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	roomTypes, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, roomTypes)
}

// GetRoomTypeByID retrieves a single room type.
// @Summary Get room type by ID
// @Description Retrieve one room type by its identifier.
// @Tags RoomType
// @Produce json
// @Param id path string true "Room Type ID"
// @Success 200 {object} response.Data[dto.RoomTypeResponse] "Room type details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [get]
func (handler *Handler) GetRoomTypeByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypeByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	roomType, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room type")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, roomType)
}
