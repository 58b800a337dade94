package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Availability=MockAvailabilityService

import (
	"context"
	"fmt"
	"hms/config"
	"hms/infras/otel"
	"hms/internal/domains/availability/model/dto"
	bookingModel "hms/internal/domains/booking/model"
	bookingRepo "hms/internal/domains/booking/repository"
	roomModel "hms/internal/domains/room/model"
	roomRepo "hms/internal/domains/room/repository"
	roomtypeModel "hms/internal/domains/roomtype/model"
	roomtypeRepo "hms/internal/domains/roomtype/repository"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheSearch = "availability:search"
)

// Availability resolves which rooms can host a stay. The two methods encode
// two deliberately different policies: Search is the guest-facing path and
// only offers rooms currently AVAILABLE; StaffRooms backs the walk-in wizard
// and treats CLEANING rooms as bookable, excluding only MAINTENANCE.
type Availability interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
	StaffRooms(ctx context.Context, req dto.StaffRoomsRequest) (dto.StaffRoomsResponse, error)
}

type serviceImpl struct {
	roomTypes roomtypeRepo.RoomType
	rooms     roomRepo.Room
	bookings  bookingRepo.Booking
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(roomTypes roomtypeRepo.RoomType, rooms roomRepo.Room, bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		roomTypes: roomTypes,
		rooms:     rooms,
		bookings:  bookings,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check-out must be after check-in") // nolint:wrapcheck
	}

	cacheKey := fmt.Sprintf("%s:%s:%s:%d", cacheSearch, req.CheckIn, req.CheckOut, req.GuestsCount)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability search")

		return res, nil
	}

	nights := bookingModel.Nights(checkIn, checkOut)

	roomTypes, err := s.roomTypes.GetAll(ctx, gDto.QueryParams{SortBy: roomtypeModel.FieldBasePrice, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	freeRooms, err := s.freeRoomsByType(ctx, checkIn, checkOut, func(room roomModel.Room) bool {
		return room.Status == roomModel.StatusAvailable
	})
	if err != nil {
		return res, err
	}

	res.Nights = nights
	res.RoomTypes = []dto.RoomTypeAvailability{}

	for _, roomType := range roomTypes {
		if roomType.Capacity < req.GuestsCount {
			continue
		}

		rooms := freeRooms[roomType.ID]
		if len(rooms) == 0 {
			continue
		}

		var availability dto.RoomTypeAvailability
		availability.FromModel(roomType, rooms, nights)

		res.RoomTypes = append(res.RoomTypes, availability)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability search to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) StaffRooms(ctx context.Context, req dto.StaffRoomsRequest) (res dto.StaffRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StaffRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check-out must be after check-in") // nolint:wrapcheck
	}

	freeRooms, err := s.freeRoomsByType(ctx, checkIn, checkOut, func(room roomModel.Room) bool {
		return room.Status != roomModel.StatusMaintenance
	})
	if err != nil {
		return res, err
	}

	res.Nights = bookingModel.Nights(checkIn, checkOut)
	res.Rooms = []dto.StaffRoom{}

	for _, rooms := range freeRooms {
		for _, room := range rooms {
			var staffRoom dto.StaffRoom
			staffRoom.FromModel(room)

			res.Rooms = append(res.Rooms, staffRoom)
		}
	}

	return res, nil
}

// freeRoomsByType returns the rooms passing the given status policy that have
// no overlapping claim in [checkIn, checkOut), grouped by room type.
func (s *serviceImpl) freeRoomsByType(ctx context.Context, checkIn, checkOut time.Time, statusOK func(roomModel.Room) bool) (map[string][]roomModel.Room, error) {
	rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{SortBy: roomModel.FieldNumber, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	overlapping, err := s.bookings.FindOverlapping(ctx, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to find overlapping bookings")

		return nil, fmt.Errorf("failed to find overlapping bookings: %w", err)
	}

	busy := map[string]bool{}
	for _, booking := range overlapping {
		if bookingModel.Overlaps(booking.CheckIn, booking.CheckOut, checkIn, checkOut) {
			busy[booking.RoomID] = true
		}
	}

	free := map[string][]roomModel.Room{}
	for _, room := range rooms {
		if !statusOK(room) || busy[room.ID] {
			continue
		}

		free[room.TypeID] = append(free[room.TypeID], room)
	}

	return free, nil
}
