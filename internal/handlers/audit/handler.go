package audit

import (
	"hms/infras/otel"
	"hms/internal/domains/audit/model"
	"hms/internal/domains/audit/service"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/transport/http/middleware"
	"hms/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Audit
	authRole middleware.AuthRole
	otel     otel.Otel
}

func New(service service.Audit, authRole middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		authRole: authRole,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/audit-logs", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authRole.Auth)
		routerGroup.Get("/", handler.GetAuditLogs)
	})
}

// GetAuditLogs retrieves the audit trail.
// @Summary Get audit logs
// @Description Retrieve audit entries, newest first, with optional filtering by action or entity.
// @Tags Audit
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param action query string false "Filter by action"
// @Param entity_type query string false "Filter by entity type (booking, payment, folio, guest, room)"
// @Param entity_id query string false "Filter by entity ID"
// @Success 200 {object} response.Data[dto.GetAuditLogsResponse] "List of audit entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/audit-logs [get]
// @Security BearerAuth
func (handler *Handler) GetAuditLogs(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAuditLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	action := request.URL.Query().Get(model.FieldAction)
	entityType := request.URL.Query().Get(model.FieldEntityType)
	entityID := request.URL.Query().Get(model.FieldEntityID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if action != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAction,
			Operator: gDto.FilterOperatorEq,
			Value:    action,
			Table:    model.TableName,
		})
	}

	if entityType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEntityType,
			Operator: gDto.FilterOperatorEq,
			Value:    entityType,
			Table:    model.TableName,
		})
	}

	if entityID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEntityID,
			Operator: gDto.FilterOperatorEq,
			Value:    entityID,
			Table:    model.TableName,
		})
	}

	logs, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit logs")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, logs)
}
