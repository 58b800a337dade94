package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	auditMocks "hms/internal/domains/audit/mocks"
	bookingRepoMocks "hms/internal/domains/booking/mocks"
	"hms/internal/domains/booking/model"
	"hms/internal/domains/booking/model/dto"
	"hms/internal/domains/booking/service"
	folioMocks "hms/internal/domains/folio/mocks"
	folioModel "hms/internal/domains/folio/model"
	guestMocks "hms/internal/domains/guest/mocks"
	paymentMocks "hms/internal/domains/payment/mocks"
	roomMocks "hms/internal/domains/room/mocks"
	roomtypeMocks "hms/internal/domains/roomtype/mocks"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
)

type bookingMocks struct {
	repo      *bookingRepoMocks.MockBooking
	guests    *guestMocks.MockGuest
	rooms     *roomMocks.MockRoom
	roomTypes *roomtypeMocks.MockRoomType
	folios    *folioMocks.MockFolio
	payments  *paymentMocks.MockPayment
	audit     *auditMocks.MockAuditService
	cache     *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMocks) {
	m := bookingMocks{
		repo:      bookingRepoMocks.NewMockBooking(ctrl),
		guests:    guestMocks.NewMockGuest(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		roomTypes: roomtypeMocks.NewMockRoomType(ctrl),
		folios:    folioMocks.NewMockFolio(ctrl),
		payments:  paymentMocks.NewMockPayment(ctrl),
		audit:     auditMocks.NewMockAuditService(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hotel.BookingCodePrefix = "HMS"

	svc := service.New(m.repo, m.guests, m.rooms, m.roomTypes, m.folios, m.payments, m.audit, nil, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

// allowInvalidation tolerates the detached cache invalidation goroutine, which
// may or may not run before the test finishes.
func allowInvalidation(m bookingMocks) {
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestBookingCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	reserved := model.Booking{ID: "booking-id", BookingCode: "HMS-2026-000001", RoomID: "room-id", Status: model.StatusReserved}

	tests := []struct {
		name      string
		req       dto.CheckInRequest
		setupMock func(m bookingMocks)
		wantErr   bool
	}{
		{
			name: "success",
			req:  dto.CheckInRequest{},
			setupMock: func(m bookingMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reserved, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusInHouse, fields[model.FieldStatus])

						return nil
					})
				m.rooms.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				allowInvalidation(m)
			},
			wantErr: false,
		},
		{
			name:      "backdated without reason",
			req:       dto.CheckInRequest{Backdated: true},
			setupMock: func(m bookingMocks) {},
			wantErr:   true,
		},
		{
			name: "already in house",
			req:  dto.CheckInRequest{},
			setupMock: func(m bookingMocks) {
				inHouse := reserved
				inHouse.Status = model.StatusInHouse
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inHouse, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			req:  dto.CheckInRequest{},
			setupMock: func(m bookingMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(ctrl)
			tt.setupMock(m)

			err := svc.CheckIn(ctx, tt.req, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingCheckOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	inHouse := model.Booking{ID: "booking-id", BookingCode: "HMS-2026-000001", RoomID: "room-id", Status: model.StatusInHouse}
	folio := folioModel.Folio{ID: "folio-id", BookingID: "booking-id", GrandTotal: 2610}

	tests := []struct {
		name      string
		setupMock func(m bookingMocks)
		wantErr   bool
	}{
		{
			name: "settled folio marks the booking paid",
			setupMock: func(m bookingMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inHouse, nil)
				m.folios.EXPECT().Get(gomock.Any(), gomock.Any()).Return(folio, nil)
				m.payments.EXPECT().SumByBooking(gomock.Any(), "booking-id").Return(2610.0, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusCheckedOut, fields[model.FieldStatus])
						assert.Equal(t, model.PaymentStatusPaid, fields[model.FieldPaymentStatus])

						return nil
					})
				m.rooms.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				allowInvalidation(m)
			},
			wantErr: false,
		},
		{
			name: "outstanding balance keeps the payment status",
			setupMock: func(m bookingMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inHouse, nil)
				m.folios.EXPECT().Get(gomock.Any(), gomock.Any()).Return(folio, nil)
				m.payments.EXPECT().SumByBooking(gomock.Any(), "booking-id").Return(1000.0, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						_, hasPaymentStatus := fields[model.FieldPaymentStatus]
						assert.False(t, hasPaymentStatus)

						return nil
					})
				m.rooms.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				allowInvalidation(m)
			},
			wantErr: false,
		},
		{
			name: "not in house",
			setupMock: func(m bookingMocks) {
				reserved := inHouse
				reserved.Status = model.StatusReserved
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reserved, nil)
			},
			wantErr: true,
		},
		{
			name: "payment sum failure",
			setupMock: func(m bookingMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inHouse, nil)
				m.folios.EXPECT().Get(gomock.Any(), gomock.Any()).Return(folio, nil)
				m.payments.EXPECT().SumByBooking(gomock.Any(), "booking-id").Return(0.0, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(ctrl)
			tt.setupMock(m)

			err := svc.CheckOut(ctx, dto.CheckOutRequest{}, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingUpdateValidatesDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	confirmed := model.Booking{
		ID:          "booking-id",
		BookingCode: "HMS-2026-000001",
		RoomID:      "room-id",
		Status:      model.StatusConfirmed,
		CheckIn:     time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func(m bookingMocks)
		wantErr   bool
	}{
		{
			name: "moving check-out before check-in is rejected",
			req:  dto.UpdateBookingRequest{CheckOut: "2026-09-09"},
			setupMock: func(m bookingMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)
			},
			wantErr: true,
		},
		{
			name: "moving check-in past check-out is rejected",
			req:  dto.UpdateBookingRequest{CheckIn: "2026-09-13"},
			setupMock: func(m bookingMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)
			},
			wantErr: true,
		},
		{
			name: "inverted range in a combined patch is rejected",
			req:  dto.UpdateBookingRequest{CheckIn: "2026-09-15", CheckOut: "2026-09-14"},
			setupMock: func(m bookingMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)
			},
			wantErr: true,
		},
		{
			name: "shifting the whole stay keeps the order",
			req:  dto.UpdateBookingRequest{CheckIn: "2026-09-11", CheckOut: "2026-09-14"},
			setupMock: func(m bookingMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				allowInvalidation(m)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(ctrl)
			tt.setupMock(m)

			err := svc.Update(ctx, tt.req, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	reserved := model.Booking{ID: "booking-id", BookingCode: "HMS-2026-000001", RoomID: "room-id", Status: model.StatusReserved}

	tests := []struct {
		name      string
		setupMock func(m bookingMocks)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(m bookingMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reserved, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

						return nil
					})
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				allowInvalidation(m)
			},
			wantErr: false,
		},
		{
			name: "in-house booking must check out first",
			setupMock: func(m bookingMocks) {
				inHouse := reserved
				inHouse.Status = model.StatusInHouse
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inHouse, nil)
			},
			wantErr: true,
		},
		{
			name: "already cancelled",
			setupMock: func(m bookingMocks) {
				cancelled := reserved
				cancelled.Status = model.StatusCancelled
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "already checked out",
			setupMock: func(m bookingMocks) {
				closed := reserved
				closed.Status = model.StatusCheckedOut
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(closed, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(ctrl)
			tt.setupMock(m)

			err := svc.Cancel(ctx, dto.CancelBookingRequest{Reason: "guest request"}, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingMarkNoShow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	reserved := model.Booking{ID: "booking-id", BookingCode: "HMS-2026-000001", RoomID: "room-id", Status: model.StatusReserved}

	tests := []struct {
		name      string
		setupMock func(m bookingMocks)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(m bookingMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reserved, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusNoShow, fields[model.FieldStatus])

						return nil
					})
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				allowInvalidation(m)
			},
			wantErr: false,
		},
		{
			name: "in-house booking cannot be a no-show",
			setupMock: func(m bookingMocks) {
				inHouse := reserved
				inHouse.Status = model.StatusInHouse
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inHouse, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(ctrl)
			tt.setupMock(m)

			err := svc.MarkNoShow(ctx, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		setupMock func(m bookingMocks)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(m bookingMocks) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-id", BookingCode: "HMS-2026-000001"}, nil)
				m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func(m bookingMocks) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(ctrl)
			tt.setupMock(m)

			res, err := svc.Get(ctx, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "HMS-2026-000001", res.BookingCode)
			}
		})
	}
}

func TestBookingGetByCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		setupMock func(m bookingMocks)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(m bookingMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-id", BookingCode: "HMS-2026-000001"}, nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func(m bookingMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(ctrl)
			tt.setupMock(m)

			res, err := svc.GetByCode(ctx, "HMS-2026-000001")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "booking-id", res.ID)
			}
		})
	}
}
