package dto

import (
	"hms/internal/domains/booking/model"
	guestDto "hms/internal/domains/guest/model/dto"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateStayRequest struct {
	Guest       guestDto.CreateGuestRequest `json:"guest"        validate:"required"`
	RoomID      string                      `json:"room_id"      validate:"required"`
	CheckIn     string                      `json:"check_in"     validate:"required"`
	CheckOut    string                      `json:"check_out"    validate:"required"`
	GuestsCount int                         `json:"guests_count" validate:"required,gte=1"`
	DailyRate   float64                     `json:"daily_rate"   validate:"required,gt=0"`
	BookingType string                      `json:"booking_type" validate:"required,oneof=RESERVATION WALK_IN"`
	Notes       string                      `json:"notes"        validate:"omitempty"`
}

func (c *CreateStayRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateStayRequest) ToModel(guestID, code string, checkIn, checkOut time.Time, user string) model.Booking {
	nights := model.Nights(checkIn, checkOut)

	status := model.StatusReserved
	if c.BookingType == model.TypeWalkIn {
		status = model.StatusConfirmed
	}

	return model.Booking{
		ID:            uuid.NewString(),
		BookingCode:   code,
		GuestID:       guestID,
		RoomID:        c.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		GuestsCount:   c.GuestsCount,
		DailyRate:     c.DailyRate,
		TotalAmount:   float64(nights) * c.DailyRate,
		Status:        status,
		PaymentStatus: model.PaymentStatusPayAtHotel,
		BookingType:   c.BookingType,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreatePublicBookingRequest struct {
	Guest       guestDto.CreateGuestRequest `json:"guest"         validate:"required"`
	RoomTypeID  string                      `json:"room_type_id"  validate:"required"`
	CheckIn     string                      `json:"check_in"      validate:"required"`
	CheckOut    string                      `json:"check_out"     validate:"required"`
	GuestsCount int                         `json:"guests_count"  validate:"required,gte=1"`
	Notes       string                      `json:"notes"         validate:"omitempty"`
}

func (c *CreatePublicBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)

	return checkIn, checkOut, err
}

type UpdateBookingRequest struct {
	RoomID      string `db:"room_id"      json:"room_id"      validate:"omitempty"`
	CheckIn     string `json:"check_in"                       validate:"omitempty"`
	CheckOut    string `json:"check_out"                      validate:"omitempty"`
	GuestsCount int    `db:"guests_count" json:"guests_count" validate:"omitempty,gte=1"`
	Notes       string `db:"notes"        json:"notes"        validate:"omitempty"`
	Reason      string `json:"reason"                         validate:"omitempty"`
}

type CheckInRequest struct {
	Backdated bool   `json:"backdated"`
	Reason    string `json:"reason" validate:"omitempty"`
}

type CheckOutRequest struct {
	Backdated bool   `json:"backdated"`
	Reason    string `json:"reason" validate:"omitempty"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	BookingCode   string  `json:"booking_code"`
	GuestID       string  `json:"guest_id"`
	GuestName     string  `json:"guest_name"`
	GuestPhone    string  `json:"guest_phone"`
	RoomID        string  `json:"room_id"`
	RoomNumber    string  `json:"room_number"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Nights        int     `json:"nights"`
	GuestsCount   int     `json:"guests_count"`
	DailyRate     float64 `json:"daily_rate"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	BookingType   string  `json:"booking_type"`
	Notes         string  `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.BookingCode = mod.BookingCode
	r.GuestID = mod.GuestID
	r.GuestName = mod.GuestName
	r.GuestPhone = mod.GuestPhone
	r.RoomID = mod.RoomID
	r.RoomNumber = mod.RoomNumber
	r.CheckIn = timezone.Format(mod.CheckIn, constant.DateOnlyFormat)
	r.CheckOut = timezone.Format(mod.CheckOut, constant.DateOnlyFormat)
	r.Nights = model.Nights(mod.CheckIn, mod.CheckOut)
	r.GuestsCount = mod.GuestsCount
	r.DailyRate = mod.DailyRate
	r.TotalAmount = mod.TotalAmount
	r.Status = mod.Status
	r.PaymentStatus = mod.PaymentStatus
	r.BookingType = mod.BookingType
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
