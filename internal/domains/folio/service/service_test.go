package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	auditMocks "hms/internal/domains/audit/mocks"
	bookingMocks "hms/internal/domains/booking/mocks"
	bookingModel "hms/internal/domains/booking/model"
	folioRepoMocks "hms/internal/domains/folio/mocks"
	"hms/internal/domains/folio/model"
	"hms/internal/domains/folio/model/dto"
	"hms/internal/domains/folio/service"
	paymentMocks "hms/internal/domains/payment/mocks"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
)

type folioMocks struct {
	repo     *folioRepoMocks.MockFolio
	bookings *bookingMocks.MockBooking
	payments *paymentMocks.MockPayment
	audit    *auditMocks.MockAuditService
	cache    *cacheMocks.MockRedisCache
}

func newFolioService(ctrl *gomock.Controller) (service.Folio, folioMocks) {
	m := folioMocks{
		repo:     folioRepoMocks.NewMockFolio(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		payments: paymentMocks.NewMockPayment(ctrl),
		audit:    auditMocks.NewMockAuditService(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.bookings, m.payments, m.audit, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func allowInvalidation(m folioMocks) {
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestFolioAddLineItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	folio := model.Folio{ID: "folio-id", BookingID: "booking-id", TaxPercent: 12}
	roomCharge := model.LineItem{ID: "room-charge-id", FolioID: "folio-id", Type: model.LineItemTypeRoomCharge, Total: 2400}

	req := dto.AddLineItemRequest{
		Type:        model.LineItemTypeFood,
		Description: "Dinner",
		Quantity:    1,
		UnitPrice:   500,
	}

	tests := []struct {
		name           string
		setupMock      func(m folioMocks)
		wantErr        bool
		wantGrandTotal float64
	}{
		{
			name: "adding an item rebuilds the totals",
			setupMock: func(m folioMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(folio, nil)
				m.repo.EXPECT().GetLineItems(gomock.Any(), "folio-id").Return([]model.LineItem{roomCharge}, nil)
				m.repo.EXPECT().InsertLineItem(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().GetLineItems(gomock.Any(), "folio-id").Return([]model.LineItem{
					roomCharge,
					{ID: "food-id", FolioID: "folio-id", Type: model.LineItemTypeFood, Quantity: 1, UnitPrice: 500, Total: 500},
				}, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.InDelta(t, 2900.0, fields[model.FieldSubtotal], 0.001)
						assert.InDelta(t, 3248.0, fields[model.FieldGrandTotal], 0.001)

						return nil
					})
				m.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.InDelta(t, 3248.0, fields[bookingModel.FieldTotalAmount], 0.001)

						return nil
					})
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				allowInvalidation(m)
			},
			wantErr:        false,
			wantGrandTotal: 3248,
		},
		{
			name: "folio not found",
			setupMock: func(m folioMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Folio{}, nil)
			},
			wantErr: true,
		},
		{
			name: "insert failure",
			setupMock: func(m folioMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(folio, nil)
				m.repo.EXPECT().GetLineItems(gomock.Any(), "folio-id").Return([]model.LineItem{roomCharge}, nil)
				m.repo.EXPECT().InsertLineItem(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newFolioService(ctrl)
			tt.setupMock(m)

			res, err := svc.AddLineItem(ctx, req, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.InDelta(t, tt.wantGrandTotal, res.GrandTotal, 0.001)
			}
		})
	}
}

func TestFolioRemoveLineItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	folio := model.Folio{ID: "folio-id", BookingID: "booking-id"}
	roomCharge := model.LineItem{ID: "room-charge-id", FolioID: "folio-id", Type: model.LineItemTypeRoomCharge, Total: 2400}
	food := model.LineItem{ID: "food-id", FolioID: "folio-id", Type: model.LineItemTypeFood, Total: 500}

	tests := []struct {
		name      string
		req       dto.RemoveLineItemRequest
		itemID    string
		setupMock func(m folioMocks)
		wantErr   bool
	}{
		{
			name:   "removes a regular item",
			req:    dto.RemoveLineItemRequest{},
			itemID: "food-id",
			setupMock: func(m folioMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(folio, nil)
				m.repo.EXPECT().GetLineItems(gomock.Any(), "folio-id").Return([]model.LineItem{roomCharge, food}, nil)
				m.repo.EXPECT().GetLineItem(gomock.Any(), gomock.Any()).Return(food, nil)
				m.repo.EXPECT().DeleteLineItem(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().GetLineItems(gomock.Any(), "folio-id").Return([]model.LineItem{roomCharge}, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				allowInvalidation(m)
			},
			wantErr: false,
		},
		{
			name:   "room charge is protected",
			req:    dto.RemoveLineItemRequest{},
			itemID: "room-charge-id",
			setupMock: func(m folioMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(folio, nil)
				m.repo.EXPECT().GetLineItems(gomock.Any(), "folio-id").Return([]model.LineItem{roomCharge, food}, nil)
				m.repo.EXPECT().GetLineItem(gomock.Any(), gomock.Any()).Return(roomCharge, nil)
			},
			wantErr: true,
		},
		{
			name:   "room charge yields to force",
			req:    dto.RemoveLineItemRequest{Force: true},
			itemID: "room-charge-id",
			setupMock: func(m folioMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(folio, nil)
				m.repo.EXPECT().GetLineItems(gomock.Any(), "folio-id").Return([]model.LineItem{roomCharge, food}, nil)
				m.repo.EXPECT().GetLineItem(gomock.Any(), gomock.Any()).Return(roomCharge, nil)
				m.repo.EXPECT().DeleteLineItem(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().GetLineItems(gomock.Any(), "folio-id").Return([]model.LineItem{food}, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				allowInvalidation(m)
			},
			wantErr: false,
		},
		{
			name:   "line item not found",
			req:    dto.RemoveLineItemRequest{},
			itemID: "missing-id",
			setupMock: func(m folioMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(folio, nil)
				m.repo.EXPECT().GetLineItems(gomock.Any(), "folio-id").Return([]model.LineItem{roomCharge, food}, nil)
				m.repo.EXPECT().GetLineItem(gomock.Any(), gomock.Any()).Return(model.LineItem{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newFolioService(ctrl)
			tt.setupMock(m)

			_, err := svc.RemoveLineItem(ctx, tt.req, "booking-id", tt.itemID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFolioApplyDiscount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	folio := model.Folio{ID: "folio-id", BookingID: "booking-id"}
	items := []model.LineItem{
		{ID: "room-charge-id", Type: model.LineItemTypeRoomCharge, Total: 2400},
		{ID: "food-id", Type: model.LineItemTypeFood, Total: 500},
	}

	svc, m := newFolioService(ctrl)

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(folio, nil)
	m.repo.EXPECT().GetLineItems(gomock.Any(), "folio-id").Return(items, nil).Times(2)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.InDelta(t, 2610.0, fields[model.FieldGrandTotal], 0.001)

			return nil
		})
	m.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
	allowInvalidation(m)

	res, err := svc.ApplyDiscount(ctx, dto.ApplyDiscountRequest{Percent: 10}, "booking-id")

	assert.NoError(t, err)
	assert.InDelta(t, 2610.0, res.GrandTotal, 0.001)
}

func TestFolioBalanceSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	booking := bookingModel.Booking{ID: "booking-id", TotalAmount: 2400}

	tests := []struct {
		name            string
		setupMock       func(m folioMocks)
		wantErr         bool
		wantTotalBilled float64
		wantBalanceDue  float64
	}{
		{
			name: "folio grand total wins",
			setupMock: func(m folioMocks) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Folio{ID: "folio-id", BookingID: "booking-id", GrandTotal: 2610}, nil)
				m.payments.EXPECT().SumByBooking(gomock.Any(), "booking-id").Return(1000.0, nil)
				m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr:         false,
			wantTotalBilled: 2610,
			wantBalanceDue:  1610,
		},
		{
			name: "missing folio falls back to the booking amount",
			setupMock: func(m folioMocks) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Folio{}, nil)
				m.payments.EXPECT().SumByBooking(gomock.Any(), "booking-id").Return(2400.0, nil)
				m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr:         false,
			wantTotalBilled: 2400,
			wantBalanceDue:  0,
		},
		{
			name: "booking not found",
			setupMock: func(m folioMocks) {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newFolioService(ctrl)
			tt.setupMock(m)

			res, err := svc.BalanceSummary(ctx, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.InDelta(t, tt.wantTotalBilled, res.TotalBilled, 0.001)
				assert.InDelta(t, tt.wantBalanceDue, res.BalanceDue, 0.001)
			}
		})
	}
}
