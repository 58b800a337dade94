package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	roomtypeRepoMocks "hms/internal/domains/roomtype/mocks"
	"hms/internal/domains/roomtype/model"
	"hms/internal/domains/roomtype/service"
	cacheMocks "hms/shared/cache/mocks"
)

type roomtypeMocks struct {
	repo  *roomtypeRepoMocks.MockRoomType
	cache *cacheMocks.MockRedisCache
}

func newRoomTypeService(ctrl *gomock.Controller) (service.RoomType, roomtypeMocks) {
	m := roomtypeMocks{
		repo:  roomtypeRepoMocks.NewMockRoomType(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func TestRoomTypeGetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	svc, m := newRoomTypeService(ctrl)

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	m.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomType{
		{ID: "standard-id", Name: "Standard", BasePrice: 1200, Capacity: 2},
		{ID: "suite-id", Name: "Suite", BasePrice: 2400, Capacity: 4},
	}, nil)
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, res.RoomTypes, 2)
	assert.Equal(t, "Standard", res.RoomTypes[0].Name)
}

func TestRoomTypeGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		setupMock func(m roomtypeMocks)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(m roomtypeMocks) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.RoomType{ID: "suite-id", Name: "Suite", BasePrice: 2400, Capacity: 4}, nil)
				m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room type not found",
			setupMock: func(m roomtypeMocks) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository failure",
			setupMock: func(m roomtypeMocks) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRoomTypeService(ctrl)
			tt.setupMock(m)

			res, err := svc.Get(ctx, "suite-id")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Suite", res.Name)
			assert.Equal(t, 4, res.Capacity)
		})
	}
}
