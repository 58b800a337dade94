package dto

import (
	"hms/internal/domains/room/model"
	"hms/shared"
)

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE OCCUPIED CLEANING MAINTENANCE"`
}

type RoomResponse struct {
	ID        string  `json:"id"`
	Number    string  `json:"number"`
	TypeID    string  `json:"type_id"`
	TypeName  string  `json:"type_name"`
	BasePrice float64 `json:"base_price"`
	Capacity  int     `json:"capacity"`
	Status    string  `json:"status"`
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.Number = mod.Number
	r.TypeID = mod.TypeID
	r.TypeName = mod.TypeName
	r.BasePrice = mod.BasePrice
	r.Capacity = mod.Capacity
	r.Status = mod.Status
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
