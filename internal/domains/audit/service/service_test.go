package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	kafkaMocks "hms/infras/kafka/mocks"
	"hms/infras/otel/mocks"
	auditRepoMocks "hms/internal/domains/audit/mocks"
	"hms/internal/domains/audit/model"
	"hms/internal/domains/audit/model/dto"
	"hms/internal/domains/audit/service"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
	gDto "hms/shared/dto"
)

type auditMocks struct {
	repo  *auditRepoMocks.MockAudit
	cache *cacheMocks.MockRedisCache
	kafka *kafkaMocks.MockClient
}

func newAuditService(ctrl *gomock.Controller, publishEnable bool) (service.Audit, auditMocks) {
	m := auditMocks{
		repo:  auditRepoMocks.NewMockAudit(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Audit.RetentionLimit = 500
	cfg.Audit.Topic = "hms.audit"
	cfg.Audit.PublishEnable = publishEnable

	svc := service.New(m.repo, cfg, m.cache, m.kafka, mocks.NewOtel())

	return svc, m
}

func TestAuditRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	entry := dto.Entry{
		Action:      model.ActionCheckIn,
		EntityType:  model.EntityTypeBooking,
		EntityID:    "booking-id",
		Description: "Booking HMS-2026-000001 checked in",
	}

	tests := []struct {
		name      string
		setupMock func(m auditMocks)
		wantErr   bool
	}{
		{
			name: "insert then prune to the retention limit",
			setupMock: func(m auditMocks) {
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mod model.AuditLog) error {
						assert.Equal(t, model.ActionCheckIn, mod.Action)
						assert.Equal(t, "test-user-id", mod.CreatedBy)

						return nil
					})
				m.repo.EXPECT().Prune(gomock.Any(), 500).Return(nil)
				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "insert failure",
			setupMock: func(m auditMocks) {
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "prune failure",
			setupMock: func(m auditMocks) {
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().Prune(gomock.Any(), 500).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuditService(ctrl, false)
			tt.setupMock(m)

			err := svc.Record(ctx, entry)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuditRecordPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	svc, m := newAuditService(ctrl, true)

	m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	m.repo.EXPECT().Prune(gomock.Any(), 500).Return(nil)
	m.kafka.EXPECT().SendMessages(gomock.Any(), "hms.audit", gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	err := svc.Record(ctx, dto.Entry{
		Action:      model.ActionPaymentAdded,
		EntityType:  model.EntityTypePayment,
		EntityID:    "payment-id",
		Description: "Payment recorded",
	})

	assert.NoError(t, err)
}

func TestAuditGetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	logs := []model.AuditLog{
		{ID: "log-1", Action: model.ActionCheckIn, EntityType: model.EntityTypeBooking, EntityID: "booking-id"},
		{ID: "log-2", Action: model.ActionCheckOut, EntityType: model.EntityTypeBooking, EntityID: "booking-id"},
	}

	svc, m := newAuditService(ctrl, false)

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	m.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(logs, nil)
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetAll(ctx, gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.AuditLogs, 2)
	assert.Equal(t, 2, res.TotalData)
}
