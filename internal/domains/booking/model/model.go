package model

import (
	"fmt"
	"hms/shared/model"
	"math"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldBookingCode   = "booking_code"
	FieldGuestID       = "guest_id"
	FieldRoomID        = "room_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldGuestsCount   = "guests_count"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldTotalAmount   = "total_amount"
)

const (
	StatusReserved   = "RESERVED"
	StatusConfirmed  = "CONFIRMED"
	StatusInHouse    = "IN_HOUSE"
	StatusCheckedOut = "CHECKED_OUT"
	StatusCancelled  = "CANCELLED"
	StatusNoShow     = "NO_SHOW"
)

const (
	PaymentStatusPending    = "PENDING"
	PaymentStatusPayAtHotel = "PAY_AT_HOTEL"
	PaymentStatusPaid       = "PAID"
	PaymentStatusFailed     = "FAILED"
)

const (
	TypeReservation = "RESERVATION"
	TypeWalkIn      = "WALK_IN"
)

// TerminalStatuses are booking states that no longer hold a claim on the
// room; bookings in these states never count against availability.
var TerminalStatuses = []string{StatusCancelled, StatusCheckedOut, StatusNoShow}

type Booking struct {
	ID            string    `db:"id"`
	BookingCode   string    `db:"booking_code"`
	GuestID       string    `db:"guest_id"`
	RoomID        string    `db:"room_id"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	GuestsCount   int       `db:"guests_count"`
	DailyRate     float64   `db:"daily_rate"`
	TotalAmount   float64   `db:"total_amount"`
	Status        string    `db:"status"`
	PaymentStatus string    `db:"payment_status"`
	BookingType   string    `db:"booking_type"`
	Notes         string    `db:"notes"`

	GuestName  string `db:"guest_name"  table:"guests" column:"name"`
	GuestPhone string `db:"guest_phone" table:"guests" column:"phone"`
	RoomNumber string `db:"room_number" table:"rooms"  column:"number"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN guests ON guests.id = bookings.guest_id LEFT JOIN rooms ON rooms.id = bookings.room_id"
}

// Nights counts billable nights between two dates, rounding partial days up.
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)

	return int(math.Ceil(diff.Hours() / 24))
}

// BuildCode formats a guest-shareable booking code from the persisted
// monotonic sequence, e.g. HMS-2026-000005.
func BuildCode(prefix string, year, sequence int) string {
	return fmt.Sprintf("%s-%d-%06d", prefix, year, sequence)
}

// Overlaps reports whether an existing stay shares at least one night with a
// requested range. Both ranges are half-open, so back-to-back stays where one
// checks out the day the other checks in do not collide.
func Overlaps(existingIn, existingOut, newIn, newOut time.Time) bool {
	return existingIn.Before(newOut) && existingOut.After(newIn)
}
