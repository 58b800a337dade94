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
	roomRepoMocks "hms/internal/domains/room/mocks"
	"hms/internal/domains/room/model"
	"hms/internal/domains/room/model/dto"
	"hms/internal/domains/room/service"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
	gDto "hms/shared/dto"
)

type roomMocks struct {
	repo  *roomRepoMocks.MockRoom
	cache *cacheMocks.MockRedisCache
}

func newRoomService(ctrl *gomock.Controller) (service.Room, roomMocks) {
	m := roomMocks{
		repo:  roomRepoMocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func allowInvalidation(m roomMocks) {
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestRoomUpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	tests := []struct {
		name      string
		status    string
		setupMock func(m roomMocks)
		wantErr   bool
	}{
		{
			name:   "marks a room for maintenance",
			status: model.StatusMaintenance,
			setupMock: func(m roomMocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusMaintenance, fields[model.FieldStatus])
						assert.Equal(t, "test-user-id", fields[constant.FieldModifiedBy])

						return nil
					})
				allowInvalidation(m)
			},
			wantErr: false,
		},
		{
			name:   "returns cleaned room to service",
			status: model.StatusAvailable,
			setupMock: func(m roomMocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusAvailable, fields[model.FieldStatus])

						return nil
					})
				allowInvalidation(m)
			},
			wantErr: false,
		},
		{
			name:   "room not found",
			status: model.StatusCleaning,
			setupMock: func(m roomMocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
		{
			name:   "existence check fails",
			status: model.StatusCleaning,
			setupMock: func(m roomMocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRoomService(ctrl)
			tt.setupMock(m)

			err := svc.UpdateStatus(ctx, dto.UpdateRoomStatusRequest{Status: tt.status}, "room-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomUpdateStatusInvalidatesAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	svc, m := newRoomService(ctrl)

	m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cleared := make(chan string, 8)
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prefix string) error {
			cleared <- prefix

			return nil
		}).AnyTimes()

	err := svc.UpdateStatus(ctx, dto.UpdateRoomStatusRequest{Status: model.StatusMaintenance}, "room-id")
	assert.NoError(t, err)

	deadline := time.After(time.Second)
	for {
		select {
		case prefix := <-cleared:
			if prefix == "availability*" {
				return
			}
		case <-deadline:
			t.Fatal("expected the availability cache prefix to be cleared")
		}
	}
}

func TestRoomGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	room := model.Room{
		ID:        "room-id",
		Number:    "101",
		TypeID:    "standard-id",
		TypeName:  "Standard",
		BasePrice: 1200,
		Capacity:  2,
		Status:    model.StatusAvailable,
	}

	tests := []struct {
		name      string
		setupMock func(m roomMocks)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(m roomMocks) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				allowInvalidation(m)
			},
			wantErr: false,
		},
		{
			name: "room not found",
			setupMock: func(m roomMocks) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRoomService(ctrl)
			tt.setupMock(m)

			res, err := svc.Get(ctx, "room-id")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "101", res.Number)
			assert.Equal(t, "Standard", res.TypeName)
		})
	}
}

func TestRoomGetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	svc, m := newRoomService(ctrl)

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	m.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Room{
		{ID: "room-1", Number: "101", Status: model.StatusAvailable},
		{ID: "room-2", Number: "102", Status: model.StatusCleaning},
	}, nil)
	allowInvalidation(m)

	res, err := svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}
