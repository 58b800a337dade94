package model

import (
	"time"
)

const (
	TableName  = "audit_logs"
	EntityName = "audit_log"

	FieldID         = "id"
	FieldAction     = "action"
	FieldEntityType = "entity_type"
	FieldEntityID   = "entity_id"
	FieldCreatedAt  = "created_at"
)

// Action is the closed taxonomy of loggable events. Consumers key off these
// values, so the set must not be extended casually.
type Action string

const (
	ActionBookingCreated    Action = "BOOKING_CREATED"
	ActionBookingUpdated    Action = "BOOKING_UPDATED"
	ActionBookingCancelled  Action = "BOOKING_CANCELLED"
	ActionCheckIn           Action = "CHECK_IN"
	ActionCheckOut          Action = "CHECK_OUT"
	ActionBackdatedCheckIn  Action = "BACKDATED_CHECK_IN"
	ActionBackdatedCheckOut Action = "BACKDATED_CHECK_OUT"
	ActionRoomChanged       Action = "ROOM_CHANGED"
	ActionPaymentAdded      Action = "PAYMENT_ADDED"
	ActionPaymentEdited     Action = "PAYMENT_EDITED"
	ActionPaymentDeleted    Action = "PAYMENT_DELETED"
	ActionFolioUpdated      Action = "FOLIO_UPDATED"
	ActionNoShowMarked      Action = "NO_SHOW_MARKED"
)

const (
	EntityTypeBooking = "booking"
	EntityTypeFolio   = "folio"
	EntityTypePayment = "payment"
	EntityTypeRoom    = "room"
)

type AuditLog struct {
	ID            string    `db:"id"`
	Action        Action    `db:"action"`
	EntityType    string    `db:"entity_type"`
	EntityID      string    `db:"entity_id"`
	Description   string    `db:"description"`
	Reason        string    `db:"reason"`
	PreviousValue string    `db:"previous_value"`
	NewValue      string    `db:"new_value"`
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
}
