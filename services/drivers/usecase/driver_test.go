package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/drivers/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{Dispatch: models.DispatchConfig{DefaultCountryCode: "44"}}
}

func TestCreateDriver(t *testing.T) {
	orgID := uuid.New()

	tests := []struct {
		name      string
		req       *models.DriverRequest
		setupMock func(m *mocks.MockDriverRepo)
		wantPhone string
		wantErr   error
	}{
		{
			name: "National number takes default country code",
			req:  &models.DriverRequest{Name: " Sam  Carter ", Phone: "07700 900123", VehiclePlate: "ab12 cde"},
			setupMock: func(m *mocks.MockDriverRepo) {
				m.EXPECT().CreateDriver(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantPhone: "+447700900123",
		},
		{
			name: "WhatsApp address is stripped",
			req:  &models.DriverRequest{Name: "Sam", Phone: "whatsapp:+447700900123"},
			setupMock: func(m *mocks.MockDriverRepo) {
				m.EXPECT().CreateDriver(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantPhone: "+447700900123",
		},
		{
			name:      "Missing name",
			req:       &models.DriverRequest{Phone: "+447700900123"},
			setupMock: func(m *mocks.MockDriverRepo) {},
			wantErr:   apperror.ErrValidation,
		},
		{
			name:      "Invalid phone",
			req:       &models.DriverRequest{Name: "Sam", Phone: "12"},
			setupMock: func(m *mocks.MockDriverRepo) {},
			wantErr:   apperror.ErrValidation,
		},
		{
			name: "Phone already registered",
			req:  &models.DriverRequest{Name: "Sam", Phone: "+447700900123"},
			setupMock: func(m *mocks.MockDriverRepo) {
				m.EXPECT().CreateDriver(gomock.Any(), gomock.Any()).Return(apperror.ErrDuplicatePhone)
			},
			wantErr: apperror.ErrDuplicatePhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockDriverRepo(ctrl)
			tt.setupMock(mockRepo)

			driver, err := NewDriverUC(testConfig(), mockRepo).CreateDriver(context.Background(), orgID, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPhone, driver.Phone)
			assert.Equal(t, orgID, driver.OrgID)
			assert.Equal(t, models.DriverStatusAvailable, driver.Status)
			assert.NotEqual(t, uuid.Nil, driver.ID)
		})
	}

	t.Run("Fields are tidied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockDriverRepo(ctrl)
		mockRepo.EXPECT().CreateDriver(gomock.Any(), gomock.Any()).Return(nil)

		driver, err := NewDriverUC(testConfig(), mockRepo).CreateDriver(context.Background(), orgID,
			&models.DriverRequest{Name: " Sam  Carter ", Phone: "07700 900123", VehiclePlate: "ab12 cde"})

		require.NoError(t, err)
		assert.Equal(t, "Sam Carter", driver.Name)
		assert.Equal(t, "AB12 CDE", driver.VehiclePlate)
	})
}

func TestListDrivers(t *testing.T) {
	orgID := uuid.New()

	t.Run("All drivers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockDriverRepo(ctrl)
		mockRepo.EXPECT().ListDrivers(gomock.Any(), orgID, nil).Return([]*models.Driver{{Name: "Sam"}}, nil)

		list, err := NewDriverUC(testConfig(), mockRepo).ListDrivers(context.Background(), orgID, "")

		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("Status filter is case-insensitive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockDriverRepo(ctrl)
		mockRepo.EXPECT().ListDrivers(gomock.Any(), orgID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, status *models.DriverStatus) ([]*models.Driver, error) {
				require.NotNil(t, status)
				assert.Equal(t, models.DriverStatusAvailable, *status)
				return nil, nil
			})

		_, err := NewDriverUC(testConfig(), mockRepo).ListDrivers(context.Background(), orgID, "available")
		assert.NoError(t, err)
	})

	t.Run("Unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockDriverRepo(ctrl)

		_, err := NewDriverUC(testConfig(), mockRepo).ListDrivers(context.Background(), orgID, "sleeping")
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})
}

func TestUpdateDriver(t *testing.T) {
	orgID, driverID := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockDriverRepo(ctrl)
	existing := &models.Driver{ID: driverID, OrgID: orgID, Name: "Old", Phone: "+447700900123", Status: models.DriverStatusAvailable}
	mockRepo.EXPECT().GetDriver(gomock.Any(), orgID, driverID).Return(existing, nil)
	mockRepo.EXPECT().UpdateDriver(gomock.Any(), existing).Return(nil)

	driver, err := NewDriverUC(testConfig(), mockRepo).UpdateDriver(context.Background(), orgID, driverID,
		&models.DriverRequest{Name: "New", Phone: "+447700900999", VehicleClass: "Van"})

	require.NoError(t, err)
	assert.Equal(t, "New", driver.Name)
	assert.Equal(t, "+447700900999", driver.Phone)
	assert.Equal(t, models.DriverStatusAvailable, driver.Status, "update never touches status")
}

func TestUpdateDriver_Busy(t *testing.T) {
	orgID, driverID := uuid.New(), uuid.New()

	t.Run("Same phone is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockDriverRepo(ctrl)
		existing := &models.Driver{ID: driverID, OrgID: orgID, Name: "Old", Phone: "+447700900001", Status: models.DriverStatusBusy}
		mockRepo.EXPECT().GetDriver(gomock.Any(), orgID, driverID).Return(existing, nil)
		mockRepo.EXPECT().UpdateDriver(gomock.Any(), existing).Return(nil)

		driver, err := NewDriverUC(testConfig(), mockRepo).UpdateDriver(context.Background(), orgID, driverID,
			&models.DriverRequest{Name: "New", Phone: "07700 900001", VehicleClass: "Van"})

		require.NoError(t, err)
		assert.Equal(t, "New", driver.Name)
		assert.Equal(t, models.DriverStatusBusy, driver.Status)
	})

	t.Run("Phone change is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockDriverRepo(ctrl)
		existing := &models.Driver{ID: driverID, OrgID: orgID, Name: "Old", Phone: "+447700900001", Status: models.DriverStatusBusy}
		mockRepo.EXPECT().GetDriver(gomock.Any(), orgID, driverID).Return(existing, nil)

		_, err := NewDriverUC(testConfig(), mockRepo).UpdateDriver(context.Background(), orgID, driverID,
			&models.DriverRequest{Name: "Old", Phone: "+447700900999", VehicleClass: "Van"})

		assert.ErrorIs(t, err, apperror.ErrDriverBusy)
		assert.Equal(t, "+447700900001", existing.Phone)
	})
}

func TestDeleteDriver(t *testing.T) {
	orgID, driverID := uuid.New(), uuid.New()

	t.Run("Deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockDriverRepo(ctrl)
		mockRepo.EXPECT().SoftDeleteDriver(gomock.Any(), orgID, driverID).Return(true, nil)

		assert.NoError(t, NewDriverUC(testConfig(), mockRepo).DeleteDriver(context.Background(), orgID, driverID))
	})

	t.Run("Refused while busy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockDriverRepo(ctrl)
		mockRepo.EXPECT().SoftDeleteDriver(gomock.Any(), orgID, driverID).Return(false, nil)

		err := NewDriverUC(testConfig(), mockRepo).DeleteDriver(context.Background(), orgID, driverID)
		assert.ErrorIs(t, err, apperror.ErrDriverBusy)
		assert.ErrorIs(t, err, apperror.ErrInvalidTransition)
	})
}

func TestSetStatus(t *testing.T) {
	orgID, driverID := uuid.New(), uuid.New()

	tests := []struct {
		name      string
		status    models.DriverStatus
		setupMock func(m *mocks.MockDriverRepo)
		wantErr   error
	}{
		{
			name:   "Go off duty",
			status: models.DriverStatusOffDuty,
			setupMock: func(m *mocks.MockDriverRepo) {
				m.EXPECT().SetIdleStatus(gomock.Any(), orgID, driverID, models.DriverStatusOffDuty).Return(true, nil)
				m.EXPECT().GetDriver(gomock.Any(), orgID, driverID).
					Return(&models.Driver{ID: driverID, Status: models.DriverStatusOffDuty}, nil)
			},
		},
		{
			name:   "Lowercase is accepted",
			status: "available",
			setupMock: func(m *mocks.MockDriverRepo) {
				m.EXPECT().SetIdleStatus(gomock.Any(), orgID, driverID, models.DriverStatusAvailable).Return(true, nil)
				m.EXPECT().GetDriver(gomock.Any(), orgID, driverID).
					Return(&models.Driver{ID: driverID, Status: models.DriverStatusAvailable}, nil)
			},
		},
		{
			name:      "BUSY cannot be set manually",
			status:    models.DriverStatusBusy,
			setupMock: func(m *mocks.MockDriverRepo) {},
			wantErr:   apperror.ErrValidation,
		},
		{
			name:   "Busy driver cannot go off duty",
			status: models.DriverStatusOffDuty,
			setupMock: func(m *mocks.MockDriverRepo) {
				m.EXPECT().SetIdleStatus(gomock.Any(), orgID, driverID, models.DriverStatusOffDuty).Return(false, nil)
			},
			wantErr: apperror.ErrDriverBusy,
		},
		{
			name:   "Unknown driver",
			status: models.DriverStatusOffDuty,
			setupMock: func(m *mocks.MockDriverRepo) {
				m.EXPECT().SetIdleStatus(gomock.Any(), orgID, driverID, models.DriverStatusOffDuty).
					Return(false, apperror.ErrDriverNotFound)
			},
			wantErr: apperror.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockDriverRepo(ctrl)
			tt.setupMock(mockRepo)

			driver, err := NewDriverUC(testConfig(), mockRepo).SetStatus(context.Background(), orgID, driverID, tt.status)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, driverID, driver.ID)
		})
	}
}
