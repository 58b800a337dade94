package guest

import (
	"hms/infras/otel"
	"hms/internal/domains/guest/model"
	"hms/internal/domains/guest/model/dto"
	"hms/internal/domains/guest/service"
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

type Handler struct {
	service  service.Guest
	authRole middleware.AuthRole
	otel     otel.Otel
}

func New(service service.Guest, authRole middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		authRole: authRole,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authRole.Auth)
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/{id}", handler.GetGuestByID)
		routerGroup.Patch("/{id}", handler.UpdateGuest)
		routerGroup.Post("/{id}/id-proof", handler.UploadIDProof)
	})
}

// GetGuests retrieves guest profiles.
// @Summary Get guests
// @Description Retrieve guests with optional search by name or phone.
// @Tags Guest
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Search by name (partial match)"
// @Param phone query string false "Filter by phone"
// @Success 200 {object} response.Data[dto.GetGuestsResponse] "List of guests"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests [get]
// @Security BearerAuth
func (handler *Handler) GetGuests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	name := request.URL.Query().Get(model.FieldName)
	phone := request.URL.Query().Get(model.FieldPhone)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if phone != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPhone,
			Operator: gDto.FilterOperatorEq,
			Value:    phone,
			Table:    model.TableName,
		})
	}

	guests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, guests)
}

// GetGuestByID retrieves a single guest profile.
// @Summary Get guest by ID
// @Description Retrieve one guest by their identifier.
// @Tags Guest
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestResponse] "Guest details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGuestByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	guest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, guest)
}

// UpdateGuest modifies a guest profile.
// @Summary Update guest
// @Description Update a guest's name, phone, email or city.
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Update Guest Request"
// @Success 200 {object} response.Message "Guest updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateGuestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guest updated successfully")

	response.WithMessage(writer, http.StatusOK, "Guest updated successfully")
}

// UploadIDProof stores an identity document for a guest.
// @Summary Upload ID proof
// @Description Upload a JPEG, PNG or PDF identity document for a guest. Max 5 MB.
// @Tags Guest
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Guest ID"
// @Param file formData file true "ID document"
// @Success 200 {object} response.Data[dto.GuestResponse] "Guest with ID proof URL"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id}/id-proof [post]
// @Security BearerAuth
func (handler *Handler) UploadIDProof(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadIDProof")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	req := dto.UploadIDProofRequest{}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err == nil {
		req.File = file
		req.FileHeader = fileHeader

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	guest, err := handler.service.UploadIDProof(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload ID proof")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("ID proof uploaded successfully")

	response.WithJSON(writer, http.StatusOK, guest)
}
