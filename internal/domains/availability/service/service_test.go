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
	"hms/internal/domains/availability/model/dto"
	"hms/internal/domains/availability/service"
	bookingMocks "hms/internal/domains/booking/mocks"
	bookingModel "hms/internal/domains/booking/model"
	roomMocks "hms/internal/domains/room/mocks"
	roomModel "hms/internal/domains/room/model"
	roomtypeMocks "hms/internal/domains/roomtype/mocks"
	roomtypeModel "hms/internal/domains/roomtype/model"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/timezone"
)

type availabilityMocks struct {
	roomTypes *roomtypeMocks.MockRoomType
	rooms     *roomMocks.MockRoom
	bookings  *bookingMocks.MockBooking
	cache     *cacheMocks.MockRedisCache
}

func newAvailabilityService(ctrl *gomock.Controller) (service.Availability, availabilityMocks) {
	m := availabilityMocks{
		roomTypes: roomtypeMocks.NewMockRoomType(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		bookings:  bookingMocks.NewMockBooking(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.roomTypes, m.rooms, m.bookings, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func stay(day, nights int) (time.Time, time.Time) {
	checkIn := time.Date(2026, time.September, day, 0, 0, 0, 0, timezone.GetLocation())
	checkOut := checkIn.AddDate(0, 0, nights)

	return checkIn, checkOut
}

func TestAvailabilitySearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	roomTypes := []roomtypeModel.RoomType{
		{ID: "standard-id", Name: "Standard", BasePrice: 1200, Capacity: 2},
		{ID: "suite-id", Name: "Suite", BasePrice: 3500, Capacity: 4},
	}

	rooms := []roomModel.Room{
		{ID: "room-101", Number: "101", TypeID: "standard-id", Status: roomModel.StatusAvailable},
		{ID: "room-102", Number: "102", TypeID: "standard-id", Status: roomModel.StatusAvailable},
		{ID: "room-301", Number: "301", TypeID: "suite-id", Status: roomModel.StatusAvailable},
		{ID: "room-302", Number: "302", TypeID: "suite-id", Status: roomModel.StatusMaintenance},
	}

	tests := []struct {
		name        string
		req         dto.SearchRequest
		overlapping []bookingModel.Booking
		wantTypes   map[string]int
		wantNights  int
		wantErr     bool
	}{
		{
			name:        "all rooms free",
			req:         dto.SearchRequest{CheckIn: "2026-09-10", CheckOut: "2026-09-12", GuestsCount: 2},
			overlapping: nil,
			wantTypes:   map[string]int{"standard-id": 2, "suite-id": 1},
			wantNights:  2,
		},
		{
			name: "overlapping booking hides its room",
			req:  dto.SearchRequest{CheckIn: "2026-09-10", CheckOut: "2026-09-12", GuestsCount: 2},
			overlapping: func() []bookingModel.Booking {
				in, out := stay(11, 2)

				return []bookingModel.Booking{{ID: "booking-id", RoomID: "room-101", CheckIn: in, CheckOut: out}}
			}(),
			wantTypes:  map[string]int{"standard-id": 1, "suite-id": 1},
			wantNights: 2,
		},
		{
			name: "back-to-back stay does not block",
			req:  dto.SearchRequest{CheckIn: "2026-09-10", CheckOut: "2026-09-12", GuestsCount: 2},
			overlapping: func() []bookingModel.Booking {
				in, out := stay(12, 3)

				return []bookingModel.Booking{{ID: "booking-id", RoomID: "room-101", CheckIn: in, CheckOut: out}}
			}(),
			wantTypes:  map[string]int{"standard-id": 2, "suite-id": 1},
			wantNights: 2,
		},
		{
			name:        "large party only fits the suite",
			req:         dto.SearchRequest{CheckIn: "2026-09-10", CheckOut: "2026-09-12", GuestsCount: 4},
			overlapping: nil,
			wantTypes:   map[string]int{"suite-id": 1},
			wantNights:  2,
		},
		{
			name:    "check-out before check-in",
			req:     dto.SearchRequest{CheckIn: "2026-09-12", CheckOut: "2026-09-10", GuestsCount: 2},
			wantErr: true,
		},
		{
			name:    "unparseable date",
			req:     dto.SearchRequest{CheckIn: "next tuesday", CheckOut: "2026-09-12", GuestsCount: 2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAvailabilityService(ctrl)

			if !tt.wantErr {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.roomTypes.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomTypes, nil)
				m.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms, nil)
				m.bookings.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.overlapping, nil)
				m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			}

			res, err := svc.Search(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantNights, res.Nights)
			assert.Len(t, res.RoomTypes, len(tt.wantTypes))

			for _, roomType := range res.RoomTypes {
				assert.Len(t, roomType.AvailableRooms, tt.wantTypes[roomType.ID])
			}
		})
	}
}

func TestAvailabilitySearchPricesTheStay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAvailabilityService(ctrl)

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	m.roomTypes.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomtypeModel.RoomType{{ID: "standard-id", Name: "Standard", BasePrice: 1200, Capacity: 2}}, nil)
	m.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{{ID: "room-101", Number: "101", TypeID: "standard-id", Status: roomModel.StatusAvailable}}, nil)
	m.bookings.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.Search(context.Background(), dto.SearchRequest{CheckIn: "2026-09-10", CheckOut: "2026-09-13", GuestsCount: 2})

	assert.NoError(t, err)
	assert.Len(t, res.RoomTypes, 1)
	assert.InDelta(t, 3600.0, res.RoomTypes[0].TotalPrice, 0.001)
}

func TestAvailabilityStaffRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rooms := []roomModel.Room{
		{ID: "room-101", Number: "101", TypeID: "standard-id", Status: roomModel.StatusAvailable},
		{ID: "room-102", Number: "102", TypeID: "standard-id", Status: roomModel.StatusCleaning},
		{ID: "room-103", Number: "103", TypeID: "standard-id", Status: roomModel.StatusMaintenance},
	}

	svc, m := newAvailabilityService(ctrl)

	m.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms, nil)
	m.bookings.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := svc.StaffRooms(context.Background(), dto.StaffRoomsRequest{CheckIn: "2026-09-10", CheckOut: "2026-09-11"})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Nights)
	assert.Len(t, res.Rooms, 2)

	for _, room := range res.Rooms {
		assert.NotEqual(t, roomModel.StatusMaintenance, room.Status)
	}
}
