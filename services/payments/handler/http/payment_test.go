package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/middleware"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/payments/mocks"
	"github.com/stretchr/testify/assert"
)

func newTestServer(mockUC *mocks.MockPaymentUC, caller models.Caller) *echo.Echo {
	e := echo.New()
	api := e.Group("/v1", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			middleware.SetCaller(c, caller)
			return next(c)
		}
	})
	NewPaymentHandler(mockUC).RegisterRoutes(api, e.Group("/v1/public"))
	return e
}

func TestPaymentHandler(t *testing.T) {
	orgID, bookingID := uuid.New(), uuid.New()
	admin := models.Caller{UserID: "u1", OrgID: orgID, Role: models.RoleAdmin}
	dispatcher := models.Caller{UserID: "u2", OrgID: orgID, Role: models.RoleDispatcher}
	base := "/v1/bookings/" + bookingID.String()

	tests := []struct {
		name           string
		caller         models.Caller
		method         string
		target         string
		body           string
		setupMock      func(m *mocks.MockPaymentUC)
		expectedStatus int
	}{
		{
			name:   "Widget checkout",
			method: http.MethodPost,
			target: "/v1/public/orgs/" + orgID.String() + "/checkout",
			body:   `{"customer_name":"Alex","customer_email":"alex@example.com","client_price":11950,"distance":20}`,
			setupMock: func(m *mocks.MockPaymentUC) {
				m.EXPECT().CreateCheckout(gomock.Any(), orgID, gomock.Any()).
					Return(&models.CheckoutResponse{BookingID: bookingID, SessionID: "cs_1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "Widget checkout with stale price",
			method: http.MethodPost,
			target: "/v1/public/orgs/" + orgID.String() + "/checkout",
			body:   `{"client_price":100}`,
			setupMock: func(m *mocks.MockPaymentUC) {
				m.EXPECT().CreateCheckout(gomock.Any(), orgID, gomock.Any()).
					Return(nil, apperror.ErrPriceMismatch)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "Widget checkout with bad org",
			method:         http.MethodPost,
			target:         "/v1/public/orgs/not-a-uuid/checkout",
			body:           `{}`,
			setupMock:      func(m *mocks.MockPaymentUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Retry checkout on paid booking",
			caller: dispatcher,
			method: http.MethodPost,
			target: base + "/checkout",
			setupMock: func(m *mocks.MockPaymentUC) {
				m.EXPECT().RetryCheckout(gomock.Any(), orgID, bookingID).Return(nil, apperror.ErrAlreadyPaid)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "Get payment",
			caller: dispatcher,
			method: http.MethodGet,
			target: base + "/payment",
			setupMock: func(m *mocks.MockPaymentUC) {
				m.EXPECT().GetPayment(gomock.Any(), orgID, bookingID).
					Return(&models.Payment{BookingID: bookingID, Status: models.PaymentSucceeded}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Admin refund",
			caller: admin,
			method: http.MethodPost,
			target: base + "/refunds",
			body:   `{"amount":4000,"reason":"late pickup"}`,
			setupMock: func(m *mocks.MockPaymentUC) {
				m.EXPECT().IssueRefund(gomock.Any(), orgID, bookingID, gomock.Any(), "late pickup").
					Return(&models.RefundResult{RefundID: "re_1", Amount: 4000, Currency: "GBP"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Dispatcher cannot refund",
			caller:         dispatcher,
			method:         http.MethodPost,
			target:         base + "/refunds",
			body:           `{}`,
			setupMock:      func(m *mocks.MockPaymentUC) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "Refund without payment",
			caller: admin,
			method: http.MethodPost,
			target: base + "/refunds",
			body:   `{}`,
			setupMock: func(m *mocks.MockPaymentUC) {
				m.EXPECT().IssueRefund(gomock.Any(), orgID, bookingID, nil, "").Return(nil, apperror.ErrNothingToRefund)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockPaymentUC(ctrl)
			tt.setupMock(mockUC)
			e := newTestServer(mockUC, tt.caller)

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
