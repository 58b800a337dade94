package dto

import (
	"hms/internal/domains/audit/model"
	"hms/shared"
	"hms/shared/constant"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

// Entry describes one loggable state transition. The recorder assigns the
// id, timestamp, and actor.
type Entry struct {
	Action        model.Action
	EntityType    string
	EntityID      string
	Description   string
	Reason        string
	PreviousValue string
	NewValue      string
}

func (e *Entry) ToModel(user string) model.AuditLog {
	return model.AuditLog{
		ID:            uuid.NewString(),
		Action:        e.Action,
		EntityType:    e.EntityType,
		EntityID:      e.EntityID,
		Description:   e.Description,
		Reason:        e.Reason,
		PreviousValue: e.PreviousValue,
		NewValue:      e.NewValue,
		CreatedAt:     timezone.Now(),
		CreatedBy:     user,
	}
}

type AuditLogResponse struct {
	ID            string `json:"id"`
	Action        string `json:"action"`
	EntityType    string `json:"entity_type"`
	EntityID      string `json:"entity_id"`
	Description   string `json:"description"`
	Reason        string `json:"reason,omitempty"`
	PreviousValue string `json:"previous_value,omitempty"`
	NewValue      string `json:"new_value,omitempty"`
	CreatedAt     string `json:"created_at"`
	CreatedBy     string `json:"created_by"`
}

func (r *AuditLogResponse) FromModel(mod model.AuditLog) {
	r.ID = mod.ID
	r.Action = string(mod.Action)
	r.EntityType = mod.EntityType
	r.EntityID = mod.EntityID
	r.Description = mod.Description
	r.Reason = mod.Reason
	r.PreviousValue = mod.PreviousValue
	r.NewValue = mod.NewValue
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
	r.CreatedBy = mod.CreatedBy
}

type GetAuditLogsResponse struct {
	AuditLogs []AuditLogResponse `json:"audit_logs"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetAuditLogsResponse) FromModels(models []model.AuditLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.AuditLogs = make([]AuditLogResponse, len(models))
	for i, mod := range models {
		r.AuditLogs[i].FromModel(mod)
	}
}
