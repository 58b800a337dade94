package dto

import (
	roomModel "hms/internal/domains/room/model"
	roomtypeModel "hms/internal/domains/roomtype/model"
	"hms/shared/constant"
	"hms/shared/timezone"
	"time"
)

type SearchRequest struct {
	CheckIn     string `json:"check_in"     validate:"required"`
	CheckOut    string `json:"check_out"    validate:"required"`
	GuestsCount int    `json:"guests_count" validate:"required,gte=1"`
}

func (c *SearchRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)

	return checkIn, checkOut, err
}

type StaffRoomsRequest struct {
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

func (c *StaffRoomsRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)

	return checkIn, checkOut, err
}

type AvailableRoom struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Status string `json:"status"`
}

func (r *AvailableRoom) FromModel(mod roomModel.Room) {
	r.ID = mod.ID
	r.Number = mod.Number
	r.Status = mod.Status
}

// RoomTypeAvailability is one bookable room type for the requested range,
// carrying the rooms that survived the overlap check and the stay price.
type RoomTypeAvailability struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	BasePrice      float64         `json:"base_price"`
	Capacity       int             `json:"capacity"`
	Amenities      []string        `json:"amenities"`
	Images         []string        `json:"images"`
	AvailableRooms []AvailableRoom `json:"available_rooms"`
	TotalPrice     float64         `json:"total_price"`
}

func (r *RoomTypeAvailability) FromModel(mod roomtypeModel.RoomType, rooms []roomModel.Room, nights int) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Description = mod.Description
	r.BasePrice = mod.BasePrice
	r.Capacity = mod.Capacity
	r.Amenities = mod.Amenities
	r.Images = mod.Images
	r.TotalPrice = mod.BasePrice * float64(nights)

	r.AvailableRooms = make([]AvailableRoom, len(rooms))
	for i, room := range rooms {
		r.AvailableRooms[i].FromModel(room)
	}
}

type SearchResponse struct {
	Nights    int                    `json:"nights"`
	RoomTypes []RoomTypeAvailability `json:"room_types"`
}

type StaffRoomsResponse struct {
	Nights int         `json:"nights"`
	Rooms  []StaffRoom `json:"rooms"`
}

type StaffRoom struct {
	ID        string  `json:"id"`
	Number    string  `json:"number"`
	TypeID    string  `json:"type_id"`
	TypeName  string  `json:"type_name"`
	BasePrice float64 `json:"base_price"`
	Capacity  int     `json:"capacity"`
	Status    string  `json:"status"`
}

func (r *StaffRoom) FromModel(mod roomModel.Room) {
	r.ID = mod.ID
	r.Number = mod.Number
	r.TypeID = mod.TypeID
	r.TypeName = mod.TypeName
	r.BasePrice = mod.BasePrice
	r.Capacity = mod.Capacity
	r.Status = mod.Status
}
