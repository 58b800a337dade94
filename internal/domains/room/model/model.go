package model

import (
	"hms/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID     = "id"
	FieldNumber = "number"
	FieldTypeID = "type_id"
	FieldStatus = "status"
)

const (
	StatusAvailable   = "AVAILABLE"
	StatusOccupied    = "OCCUPIED"
	StatusCleaning    = "CLEANING"
	StatusMaintenance = "MAINTENANCE"
)

type Room struct {
	ID     string `db:"id"`
	Number string `db:"number"`
	TypeID string `db:"type_id"`
	Status string `db:"status"`

	TypeName  string  `db:"type_name"  table:"room_types" column:"name"`
	BasePrice float64 `db:"base_price" table:"room_types"`
	Capacity  int     `db:"capacity"   table:"room_types"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return "LEFT JOIN room_types ON room_types.id = rooms.type_id"
}
