package model

import (
	"hms/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldFolioID   = "folio_id"
	FieldBookingID = "booking_id"
	FieldAmount    = "amount"
	FieldMethod    = "method"
)

const (
	MethodCash   = "CASH"
	MethodUPI    = "UPI"
	MethodCard   = "CARD"
	MethodOnline = "ONLINE"
)

type Payment struct {
	ID        string  `db:"id"`
	FolioID   string  `db:"folio_id"`
	BookingID string  `db:"booking_id"`
	Amount    float64 `db:"amount"`
	Method    string  `db:"method"`
	Reference string  `db:"reference"`
	Notes     string  `db:"notes"`
	model.Metadata
}
