package model

// MethodRevenue is one row of the revenue-by-method aggregate.
type MethodRevenue struct {
	Method string  `db:"method"`
	Total  float64 `db:"total"`
}

// StatusCount is one row of the rooms-by-status aggregate.
type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

// UnpaidTotals aggregates stays whose recorded payments do not cover the
// billed amount yet.
type UnpaidTotals struct {
	Count  int     `db:"count"`
	Amount float64 `db:"amount"`
}

// OutstandingRow is one booking with money still owed.
type OutstandingRow struct {
	BookingID   string  `db:"booking_id"`
	BookingCode string  `db:"booking_code"`
	GuestName   string  `db:"guest_name"`
	TotalBilled float64 `db:"total_billed"`
	TotalPaid   float64 `db:"total_paid"`
}
