package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hms/infras/otel"
	"hms/infras/postgres"
	bookingModel "hms/internal/domains/booking/model"
	"hms/internal/domains/report/model"
	"hms/shared/constant"
	"hms/shared/logger"
	"time"
)

// Report serves the aggregate queries behind the dashboard and the reports
// pages. Everything here is read-only and hits the read replica.
type Report interface {
	CountArrivals(ctx context.Context, day time.Time) (int, error)
	CountDepartures(ctx context.Context, day time.Time) (int, error)
	CountInHouse(ctx context.Context) (int, error)
	CountPendingArrivals(ctx context.Context, day time.Time) (int, error)
	CountOverdue(ctx context.Context, day time.Time) (int, error)
	UnpaidTotals(ctx context.Context) (model.UnpaidTotals, error)
	RevenueByMethod(ctx context.Context, from, to time.Time) ([]model.MethodRevenue, error)
	RoomStatusCounts(ctx context.Context) ([]model.StatusCount, error)
	Outstanding(ctx context.Context) ([]model.OutstandingRow, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) CountArrivals(ctx context.Context, day time.Time) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.CountArrivals")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT COUNT(*) FROM bookings
		WHERE check_in::date = $1::date AND status IN ($2, $3, $4)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.QueryRowxContext(ctx, query, day,
		bookingModel.StatusReserved, bookingModel.StatusConfirmed, bookingModel.StatusInHouse,
	).Scan(&count)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count arrivals: %w", err)
	}

	return count, nil
}

func (repo *repositoryImpl) CountDepartures(ctx context.Context, day time.Time) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.CountDepartures")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT COUNT(*) FROM bookings
		WHERE check_out::date = $1::date AND status IN ($2, $3)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.QueryRowxContext(ctx, query, day,
		bookingModel.StatusInHouse, bookingModel.StatusCheckedOut,
	).Scan(&count)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count departures: %w", err)
	}

	return count, nil
}

func (repo *repositoryImpl) CountInHouse(ctx context.Context) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.CountInHouse")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := "SELECT COUNT(*) FROM bookings WHERE status = $1"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.QueryRowxContext(ctx, query, bookingModel.StatusInHouse).Scan(&count)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count in-house bookings: %w", err)
	}

	return count, nil
}

func (repo *repositoryImpl) CountPendingArrivals(ctx context.Context, day time.Time) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.CountPendingArrivals")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT COUNT(*) FROM bookings
		WHERE check_in::date = $1::date AND status IN ($2, $3)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.QueryRowxContext(ctx, query, day,
		bookingModel.StatusReserved, bookingModel.StatusConfirmed,
	).Scan(&count)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count pending arrivals: %w", err)
	}

	return count, nil
}

// CountOverdue counts stays still in-house past their check-out date.
func (repo *repositoryImpl) CountOverdue(ctx context.Context, day time.Time) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.CountOverdue")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT COUNT(*) FROM bookings
		WHERE check_out::date < $1::date AND status = $2`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.QueryRowxContext(ctx, query, day, bookingModel.StatusInHouse).Scan(&count)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count overdue checkouts: %w", err)
	}

	return count, nil
}

func (repo *repositoryImpl) UnpaidTotals(ctx context.Context) (totals model.UnpaidTotals, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.UnpaidTotals")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT COUNT(*) AS count,
			COALESCE(SUM(b.total_amount - COALESCE(p.paid, 0)), 0) AS amount
		FROM bookings b
		LEFT JOIN (
			SELECT booking_id, SUM(amount) AS paid FROM payments GROUP BY booking_id
		) p ON p.booking_id = b.id
		WHERE b.status IN ($1, $2) AND b.payment_status != $3`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &totals, query,
		bookingModel.StatusInHouse, bookingModel.StatusCheckedOut, bookingModel.PaymentStatusPaid,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return totals, fmt.Errorf("failed to get unpaid totals: %w", err)
	}

	return totals, nil
}

// RevenueByMethod totals recorded payments per method in [from, to).
func (repo *repositoryImpl) RevenueByMethod(ctx context.Context, from, to time.Time) (rows []model.MethodRevenue, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.RevenueByMethod")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT method, COALESCE(SUM(amount), 0) AS total
		FROM payments
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY method
		ORDER BY method`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &rows, query, from, to)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get revenue by method: %w", err)
	}

	return rows, nil
}

func (repo *repositoryImpl) RoomStatusCounts(ctx context.Context) (rows []model.StatusCount, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.RoomStatusCounts")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := "SELECT status, COUNT(*) AS count FROM rooms GROUP BY status"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &rows, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get room status counts: %w", err)
	}

	return rows, nil
}

// Outstanding lists active or departed stays whose payments fall short of the
// billed total. The folio grand total wins over the booking amount when a
// folio row exists.
func (repo *repositoryImpl) Outstanding(ctx context.Context) (rows []model.OutstandingRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Outstanding")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT b.id AS booking_id, b.booking_code,
			g.name AS guest_name,
			COALESCE(f.grand_total, b.total_amount) AS total_billed,
			COALESCE(p.paid, 0) AS total_paid
		FROM bookings b
		LEFT JOIN guests g ON g.id = b.guest_id
		LEFT JOIN folios f ON f.booking_id = b.id
		LEFT JOIN (
			SELECT booking_id, SUM(amount) AS paid FROM payments GROUP BY booking_id
		) p ON p.booking_id = b.id
		WHERE b.status IN ($1, $2)
		AND COALESCE(f.grand_total, b.total_amount) > COALESCE(p.paid, 0)
		ORDER BY b.check_out ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &rows, query,
		bookingModel.StatusInHouse, bookingModel.StatusCheckedOut,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get outstanding balances: %w", err)
	}

	return rows, nil
}
