package model

import (
	"hms/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID        = "id"
	FieldName      = "name"
	FieldBasePrice = "base_price"
	FieldCapacity  = "capacity"
)

// RoomType is static reference data, immutable at runtime; rows are seeded by
// migrations.
type RoomType struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	BasePrice   float64        `db:"base_price"`
	Capacity    int            `db:"capacity"`
	Amenities   pq.StringArray `db:"amenities"`
	Images      pq.StringArray `db:"images"`
	model.Metadata
}
