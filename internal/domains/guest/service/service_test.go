package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	s3Mocks "hms/infras/s3/mocks"
	guestRepoMocks "hms/internal/domains/guest/mocks"
	"hms/internal/domains/guest/model"
	"hms/internal/domains/guest/model/dto"
	"hms/internal/domains/guest/service"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
)

type guestMocks struct {
	repo  *guestRepoMocks.MockGuest
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
}

func newGuestService(ctrl *gomock.Controller) (service.Guest, guestMocks) {
	m := guestMocks{
		repo:  guestRepoMocks.NewMockGuest(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "hms-test"

	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel(), m.s3)

	return svc, m
}

func allowInvalidation(m guestMocks) {
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestGuestUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	tests := []struct {
		name      string
		req       dto.UpdateGuestRequest
		setupMock func(m guestMocks)
		wantErr   bool
	}{
		{
			name: "success",
			req:  dto.UpdateGuestRequest{Name: "Asha Rao", City: "Pune"},
			setupMock: func(m guestMocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, "Asha Rao", fields["name"])
						assert.Equal(t, "Pune", fields["city"])
						assert.Equal(t, "test-user-id", fields[constant.FieldModifiedBy])

						_, hasPhone := fields["phone"]
						assert.False(t, hasPhone)

						return nil
					})
				allowInvalidation(m)
			},
			wantErr: false,
		},
		{
			name:      "empty request",
			req:       dto.UpdateGuestRequest{},
			setupMock: func(_ guestMocks) {},
			wantErr:   true,
		},
		{
			name: "guest not found",
			req:  dto.UpdateGuestRequest{Name: "Asha Rao"},
			setupMock: func(m guestMocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newGuestService(ctrl)
			tt.setupMock(m)

			err := svc.Update(ctx, tt.req, "guest-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuestUploadIDProof(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	guest := model.Guest{ID: "guest-id", Name: "Asha Rao", Phone: "9876500000"}
	req := dto.UploadIDProofRequest{
		FileHeader: &multipart.FileHeader{Filename: "passport.jpg"},
	}

	tests := []struct {
		name      string
		setupMock func(m guestMocks)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(m guestMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)
				m.s3.EXPECT().
					UploadFile(gomock.Any(), "hms-test", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/guest/passport.jpg", nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, "https://cdn.example.com/guest/passport.jpg", fields[model.FieldIDProof])

						return nil
					})
				allowInvalidation(m)
			},
			wantErr: false,
		},
		{
			name: "guest not found",
			setupMock: func(m guestMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)
			},
			wantErr: true,
		},
		{
			name: "upload fails",
			setupMock: func(m guestMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)
				m.s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newGuestService(ctrl)
			tt.setupMock(m)

			res, err := svc.UploadIDProof(ctx, req, "guest-id")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "https://cdn.example.com/guest/passport.jpg", res.IDProof)
		})
	}
}

func TestGuestGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	tests := []struct {
		name      string
		setupMock func(m guestMocks)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(m guestMocks) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{ID: "guest-id", Name: "Asha Rao"}, nil)
				allowInvalidation(m)
			},
			wantErr: false,
		},
		{
			name: "guest not found",
			setupMock: func(m guestMocks) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newGuestService(ctrl)
			tt.setupMock(m)

			res, err := svc.Get(ctx, "guest-id")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Asha Rao", res.Name)
		})
	}
}
