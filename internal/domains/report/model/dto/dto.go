package dto

import (
	bookingDto "hms/internal/domains/booking/model/dto"
	"hms/internal/domains/report/model"
	roomModel "hms/internal/domains/room/model"
	"hms/shared/constant"
	"hms/shared/timezone"
	"time"
)

type RangeRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to"   validate:"required"`
}

func (c *RangeRequest) ParseDates() (from, to time.Time, err error) {
	from, err = timezone.Parse(constant.DateOnlyFormat, c.From)
	if err != nil {
		return from, to, err
	}

	to, err = timezone.Parse(constant.DateOnlyFormat, c.To)

	return from, to, err
}

type MethodRevenue struct {
	Method string  `json:"method"`
	Total  float64 `json:"total"`
}

type DashboardStatsResponse struct {
	TodayCheckIns    int                          `json:"today_check_ins"`
	TodayCheckOuts   int                          `json:"today_check_outs"`
	InHouse          int                          `json:"in_house"`
	PendingArrivals  int                          `json:"pending_arrivals"`
	OverdueCheckouts int                          `json:"overdue_checkouts"`
	UnpaidCount      int                          `json:"unpaid_count"`
	UnpaidAmount     float64                      `json:"unpaid_amount"`
	RevenueByMethod  []MethodRevenue              `json:"revenue_by_method"`
	Occupancy        OccupancyResponse            `json:"occupancy"`
	RecentBookings   []bookingDto.BookingResponse `json:"recent_bookings"`
}

type RevenueReportResponse struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	Total   float64         `json:"total"`
	Methods []MethodRevenue `json:"methods"`
}

type OccupancyResponse struct {
	TotalRooms       int     `json:"total_rooms"`
	Occupied         int     `json:"occupied"`
	Available        int     `json:"available"`
	Cleaning         int     `json:"cleaning"`
	Maintenance      int     `json:"maintenance"`
	OccupancyPercent float64 `json:"occupancy_percent"`
}

// FromCounts folds the rooms-by-status aggregate into the snapshot; the
// occupancy percentage is over all rooms, whatever their status.
func (r *OccupancyResponse) FromCounts(counts []model.StatusCount) {
	for _, row := range counts {
		r.TotalRooms += row.Count

		switch row.Status {
		case roomModel.StatusOccupied:
			r.Occupied = row.Count
		case roomModel.StatusAvailable:
			r.Available = row.Count
		case roomModel.StatusCleaning:
			r.Cleaning = row.Count
		case roomModel.StatusMaintenance:
			r.Maintenance = row.Count
		}
	}

	if r.TotalRooms > 0 {
		r.OccupancyPercent = float64(r.Occupied) / float64(r.TotalRooms) * 100
	}
}

type OutstandingBalance struct {
	BookingID   string  `json:"booking_id"`
	BookingCode string  `json:"booking_code"`
	GuestName   string  `json:"guest_name"`
	TotalBilled float64 `json:"total_billed"`
	TotalPaid   float64 `json:"total_paid"`
	BalanceDue  float64 `json:"balance_due"`
}

func (r *OutstandingBalance) FromModel(mod model.OutstandingRow) {
	r.BookingID = mod.BookingID
	r.BookingCode = mod.BookingCode
	r.GuestName = mod.GuestName
	r.TotalBilled = mod.TotalBilled
	r.TotalPaid = mod.TotalPaid
	r.BalanceDue = mod.TotalBilled - mod.TotalPaid
}

type OutstandingResponse struct {
	Balances []OutstandingBalance `json:"balances"`
	Total    float64              `json:"total"`
}

func (r *OutstandingResponse) FromModels(models []model.OutstandingRow) {
	r.Balances = make([]OutstandingBalance, len(models))
	for i, mod := range models {
		r.Balances[i].FromModel(mod)
		r.Total += r.Balances[i].BalanceDue
	}
}
