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
	"github.com/piresc/chauffeur/services/drivers/mocks"
	"github.com/stretchr/testify/assert"
)

func newTestServer(mockUC *mocks.MockDriverUC, caller models.Caller) *echo.Echo {
	e := echo.New()
	api := e.Group("/v1", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			middleware.SetCaller(c, caller)
			return next(c)
		}
	})
	NewDriverHandler(mockUC).RegisterRoutes(api)
	return e
}

func TestDriverHandler(t *testing.T) {
	orgID, driverID := uuid.New(), uuid.New()
	dispatcher := models.Caller{UserID: "u1", OrgID: orgID, Role: models.RoleDispatcher}
	viewer := models.Caller{UserID: "u2", OrgID: orgID, Role: models.RoleViewer}

	tests := []struct {
		name           string
		caller         models.Caller
		method         string
		target         string
		body           string
		setupMock      func(m *mocks.MockDriverUC)
		expectedStatus int
	}{
		{
			name:   "Create driver",
			caller: dispatcher,
			method: http.MethodPost,
			target: "/v1/drivers",
			body:   `{"name":"Sam","phone":"07700900123"}`,
			setupMock: func(m *mocks.MockDriverUC) {
				m.EXPECT().CreateDriver(gomock.Any(), orgID, &models.DriverRequest{Name: "Sam", Phone: "07700900123"}).
					Return(&models.Driver{ID: driverID}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Viewer cannot create",
			caller:         viewer,
			method:         http.MethodPost,
			target:         "/v1/drivers",
			body:           `{"name":"Sam","phone":"07700900123"}`,
			setupMock:      func(m *mocks.MockDriverUC) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "Viewer can list",
			caller: viewer,
			method: http.MethodGet,
			target: "/v1/drivers?status=AVAILABLE",
			setupMock: func(m *mocks.MockDriverUC) {
				m.EXPECT().ListDrivers(gomock.Any(), orgID, "AVAILABLE").Return([]*models.Driver{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Driver of another organization",
			caller: viewer,
			method: http.MethodGet,
			target: "/v1/drivers/" + driverID.String(),
			setupMock: func(m *mocks.MockDriverUC) {
				m.EXPECT().GetDriver(gomock.Any(), orgID, driverID).Return(nil, apperror.ErrDriverNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Malformed id",
			caller:         viewer,
			method:         http.MethodGet,
			target:         "/v1/drivers/nope",
			setupMock:      func(m *mocks.MockDriverUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Set status on busy driver",
			caller: dispatcher,
			method: http.MethodPut,
			target: "/v1/drivers/" + driverID.String() + "/status",
			body:   `{"status":"OFF_DUTY"}`,
			setupMock: func(m *mocks.MockDriverUC) {
				m.EXPECT().SetStatus(gomock.Any(), orgID, driverID, models.DriverStatusOffDuty).
					Return(nil, apperror.ErrDriverBusy)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "Delete driver",
			caller: dispatcher,
			method: http.MethodDelete,
			target: "/v1/drivers/" + driverID.String(),
			setupMock: func(m *mocks.MockDriverUC) {
				m.EXPECT().DeleteDriver(gomock.Any(), orgID, driverID).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockDriverUC(ctrl)
			tt.setupMock(mockUC)

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			}
			rec := httptest.NewRecorder()
			newTestServer(mockUC, tt.caller).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
