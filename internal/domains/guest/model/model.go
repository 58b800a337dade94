package model

import (
	"hms/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID      = "id"
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldIDProof = "id_proof"
)

type Guest struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Phone   string `db:"phone"`
	Email   string `db:"email"`
	City    string `db:"city"`
	IDProof string `db:"id_proof"`
	model.Metadata
}
