package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/infras/otel/mocks"
	bookingMocks "hms/internal/domains/booking/mocks"
	folioMocks "hms/internal/domains/folio/mocks"
	folioDto "hms/internal/domains/folio/model/dto"
	"hms/internal/handlers/booking"
	"hms/shared/constant"
)

func checkOutRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/"+id+"/check-out", strings.NewReader("{}"))

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(constant.RequestParamID, id)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestCheckOutSettlementGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		setupMock  func(service *bookingMocks.MockBookingService, folios *folioMocks.MockFolioService)
		wantStatus int
	}{
		{
			name: "outstanding balance blocks the checkout",
			setupMock: func(_ *bookingMocks.MockBookingService, folios *folioMocks.MockFolioService) {
				folios.EXPECT().BalanceSummary(gomock.Any(), "booking-id").
					Return(folioDto.BalanceSummaryResponse{BookingID: "booking-id", TotalBilled: 2610, TotalPaid: 1000, BalanceDue: 1610}, nil)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "settled stay checks out",
			setupMock: func(service *bookingMocks.MockBookingService, folios *folioMocks.MockFolioService) {
				folios.EXPECT().BalanceSummary(gomock.Any(), "booking-id").
					Return(folioDto.BalanceSummaryResponse{BookingID: "booking-id", TotalBilled: 2610, TotalPaid: 2610}, nil)
				service.EXPECT().CheckOut(gomock.Any(), gomock.Any(), "booking-id").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "overpaid stay checks out",
			setupMock: func(service *bookingMocks.MockBookingService, folios *folioMocks.MockFolioService) {
				folios.EXPECT().BalanceSummary(gomock.Any(), "booking-id").
					Return(folioDto.BalanceSummaryResponse{BookingID: "booking-id", TotalBilled: 2610, TotalPaid: 3000, BalanceDue: -390}, nil)
				service.EXPECT().CheckOut(gomock.Any(), gomock.Any(), "booking-id").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := bookingMocks.NewMockBookingService(ctrl)
			folios := folioMocks.NewMockFolioService(ctrl)
			tt.setupMock(service, folios)

			handler := booking.New(service, folios, nil, mocks.NewOtel())

			recorder := httptest.NewRecorder()
			handler.CheckOut(recorder, checkOutRequest("booking-id"))

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
