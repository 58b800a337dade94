package dto

import (
	"hms/internal/domains/roomtype/model"
)

type RoomTypeResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BasePrice   float64  `json:"base_price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

func (r *RoomTypeResponse) FromModel(mod model.RoomType) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Description = mod.Description
	r.BasePrice = mod.BasePrice
	r.Capacity = mod.Capacity
	r.Amenities = mod.Amenities
	r.Images = mod.Images
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType) {
	r.TotalData = len(models)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
