package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Report=MockReportService

import (
	"context"
	"fmt"
	"hms/config"
	"hms/infras/otel"
	bookingModel "hms/internal/domains/booking/model"
	bookingDto "hms/internal/domains/booking/model/dto"
	bookingRepo "hms/internal/domains/booking/repository"
	"hms/internal/domains/report/model"
	"hms/internal/domains/report/model/dto"
	"hms/internal/domains/report/repository"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheDashboard = "report:dashboard"

	recentBookingsLimit = 10
)

type Report interface {
	Dashboard(ctx context.Context) (dto.DashboardStatsResponse, error)
	Arrivals(ctx context.Context, date string) (bookingDto.GetBookingsResponse, error)
	Departures(ctx context.Context, date string) (bookingDto.GetBookingsResponse, error)
	Revenue(ctx context.Context, req dto.RangeRequest) (dto.RevenueReportResponse, error)
	Outstanding(ctx context.Context) (dto.OutstandingResponse, error)
	Occupancy(ctx context.Context) (dto.OccupancyResponse, error)
}

type serviceImpl struct {
	repo     repository.Report
	bookings bookingRepo.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Report, bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDashboard, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheDashboard).Msg("cache hit for dashboard stats")

		return res, nil
	}

	today := timezone.StartOfDay(timezone.Now())

	if res.TodayCheckIns, err = s.repo.CountArrivals(ctx, today); err != nil {
		return res, fmt.Errorf("failed to count arrivals: %w", err)
	}

	if res.TodayCheckOuts, err = s.repo.CountDepartures(ctx, today); err != nil {
		return res, fmt.Errorf("failed to count departures: %w", err)
	}

	if res.InHouse, err = s.repo.CountInHouse(ctx); err != nil {
		return res, fmt.Errorf("failed to count in-house bookings: %w", err)
	}

	if res.PendingArrivals, err = s.repo.CountPendingArrivals(ctx, today); err != nil {
		return res, fmt.Errorf("failed to count pending arrivals: %w", err)
	}

	if res.OverdueCheckouts, err = s.repo.CountOverdue(ctx, today); err != nil {
		return res, fmt.Errorf("failed to count overdue checkouts: %w", err)
	}

	unpaid, err := s.repo.UnpaidTotals(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get unpaid totals: %w", err)
	}

	res.UnpaidCount = unpaid.Count
	res.UnpaidAmount = unpaid.Amount

	revenue, err := s.repo.RevenueByMethod(ctx, today, today.AddDate(0, 0, 1))
	if err != nil {
		return res, fmt.Errorf("failed to get revenue by method: %w", err)
	}

	res.RevenueByMethod = methodRevenues(revenue)

	counts, err := s.repo.RoomStatusCounts(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get room status counts: %w", err)
	}

	res.Occupancy.FromCounts(counts)

	recent, err := s.bookings.GetAll(ctx,
		gDto.QueryParams{Page: 1, Limit: recentBookingsLimit, SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc},
		gDto.FilterGroup{},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res.RecentBookings = make([]bookingDto.BookingResponse, len(recent))
	for i, mod := range recent {
		res.RecentBookings[i].FromModel(mod)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDashboard, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Arrivals(ctx context.Context, date string) (res bookingDto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Arrivals")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.bookingsOnDay(ctx, date, bookingModel.FieldCheckIn)
}

func (s *serviceImpl) Departures(ctx context.Context, date string) (res bookingDto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Departures")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.bookingsOnDay(ctx, date, bookingModel.FieldCheckOut)
}

func (s *serviceImpl) Revenue(ctx context.Context, req dto.RangeRequest) (res dto.RevenueReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to, err := req.ParseDates()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if to.Before(from) {
		return res, failure.BadRequestFromString("the range end must not be before its start") // nolint:wrapcheck
	}

	// The range is inclusive of the end date, so the query upper bound is
	// the following midnight.
	rows, err := s.repo.RevenueByMethod(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return res, fmt.Errorf("failed to get revenue by method: %w", err)
	}

	res.From = req.From
	res.To = req.To
	res.Methods = methodRevenues(rows)

	for _, row := range rows {
		res.Total += row.Total
	}

	return res, nil
}

func (s *serviceImpl) Outstanding(ctx context.Context) (res dto.OutstandingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Outstanding")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := s.repo.Outstanding(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get outstanding balances: %w", err)
	}

	res.FromModels(rows)

	return res, nil
}

func (s *serviceImpl) Occupancy(ctx context.Context) (res dto.OccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Occupancy")
	defer scope.End()
	defer scope.TraceIfError(err)

	counts, err := s.repo.RoomStatusCounts(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get room status counts: %w", err)
	}

	res.FromCounts(counts)

	return res, nil
}

func (s *serviceImpl) bookingsOnDay(ctx context.Context, date, field string) (res bookingDto.GetBookingsResponse, err error) {
	day, err := timezone.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "day_start",
				Field:    field,
				Value:    day,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "day_end",
				Field:    field,
				Value:    day.Add(24*time.Hour - time.Second),
				Operator: gDto.FilterOperatorLessEq,
				Table:    bookingModel.TableName,
			},
		},
	}

	total, err := s.bookings.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.bookings.GetAll(ctx,
		gDto.QueryParams{SortBy: field, SortDir: gDto.SortDirAsc},
		filter,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, total)

	return res, nil
}

func methodRevenues(rows []model.MethodRevenue) []dto.MethodRevenue {
	out := make([]dto.MethodRevenue, len(rows))
	for i, row := range rows {
		out[i] = dto.MethodRevenue{Method: row.Method, Total: row.Total}
	}

	return out
}
