package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	bookingMocks "hms/internal/domains/booking/mocks"
	bookingModel "hms/internal/domains/booking/model"
	reportMocks "hms/internal/domains/report/mocks"
	"hms/internal/domains/report/model"
	"hms/internal/domains/report/model/dto"
	"hms/internal/domains/report/service"
	cacheMocks "hms/shared/cache/mocks"
)

func newReportService(ctrl *gomock.Controller) (service.Report, *reportMocks.MockReport, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	repo := reportMocks.NewMockReport(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(repo, bookings, cfg, redisCache, mocks.NewOtel())

	return svc, repo, bookings, redisCache
}

func TestReportRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		req       dto.RangeRequest
		setupMock func(repo *reportMocks.MockReport)
		wantErr   bool
		wantTotal float64
	}{
		{
			name: "totals across methods",
			req:  dto.RangeRequest{From: "2026-09-01", To: "2026-09-07"},
			setupMock: func(repo *reportMocks.MockReport) {
				repo.EXPECT().RevenueByMethod(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.MethodRevenue{
						{Method: "CASH", Total: 5000},
						{Method: "UPI", Total: 3200},
					}, nil)
			},
			wantErr:   false,
			wantTotal: 8200,
		},
		{
			name:      "end before start",
			req:       dto.RangeRequest{From: "2026-09-07", To: "2026-09-01"},
			setupMock: func(repo *reportMocks.MockReport) {},
			wantErr:   true,
		},
		{
			name:      "unparseable range",
			req:       dto.RangeRequest{From: "last week", To: "2026-09-07"},
			setupMock: func(repo *reportMocks.MockReport) {},
			wantErr:   true,
		},
		{
			name: "single-day range is inclusive",
			req:  dto.RangeRequest{From: "2026-09-01", To: "2026-09-01"},
			setupMock: func(repo *reportMocks.MockReport) {
				repo.EXPECT().RevenueByMethod(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.MethodRevenue{{Method: "CARD", Total: 1200}}, nil)
			},
			wantErr:   false,
			wantTotal: 1200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newReportService(ctrl)
			tt.setupMock(repo)

			res, err := svc.Revenue(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.InDelta(t, tt.wantTotal, res.Total, 0.001)
			}
		})
	}
}

func TestReportArrivals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	svc, _, bookings, _ := newReportService(ctrl)

	arrivals := []bookingModel.Booking{
		{ID: "booking-1", BookingCode: "HMS-2026-000001"},
		{ID: "booking-2", BookingCode: "HMS-2026-000002"},
	}

	bookings.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(arrivals, nil)

	res, err := svc.Arrivals(ctx, "2026-09-01")

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 2)

	_, err = svc.Arrivals(ctx, "not-a-date")

	assert.Error(t, err)
}

func TestReportOccupancy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	svc, repo, _, _ := newReportService(ctrl)

	repo.EXPECT().RoomStatusCounts(gomock.Any()).
		Return([]model.StatusCount{
			{Status: "AVAILABLE", Count: 3},
			{Status: "OCCUPIED", Count: 2},
			{Status: "CLEANING", Count: 1},
		}, nil)

	res, err := svc.Occupancy(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 6, res.TotalRooms)
	assert.Equal(t, 2, res.Occupied)
}
