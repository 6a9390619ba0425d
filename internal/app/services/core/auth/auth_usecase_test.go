package auth

import (
	"context"
	"testing"

	"hms-service/internal/app/config"
	"hms-service/internal/app/models"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/exceptions"
	"hms-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) DeleteByID(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAvailable(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) DeleteByID(ctx context.Context, doctorID string) error {
	args := m.Called(ctx, doctorID)
	return args.Error(0)
}

type MockReceptionistRepository struct {
	mock.Mock
}

func (m *MockReceptionistRepository) CreateReceptionist(ctx context.Context, receptionist *models.Receptionist) (string, error) {
	args := m.Called(ctx, receptionist)
	return args.String(0), args.Error(1)
}

func (m *MockReceptionistRepository) FindByID(ctx context.Context, receptionistID string) (*models.Receptionist, error) {
	args := m.Called(ctx, receptionistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receptionist), args.Error(1)
}

func (m *MockReceptionistRepository) FindByUserID(ctx context.Context, userID string) (*models.Receptionist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receptionist), args.Error(1)
}

func (m *MockReceptionistRepository) FindAll(ctx context.Context) ([]models.Receptionist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Receptionist), args.Error(1)
}

func (m *MockReceptionistRepository) UpdateReceptionist(ctx context.Context, receptionist *models.Receptionist) error {
	args := m.Called(ctx, receptionist)
	return args.Error(0)
}

func (m *MockReceptionistRepository) DeleteByID(ctx context.Context, receptionistID string) error {
	args := m.Called(ctx, receptionistID)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newTestAuthUsecase() (AuthUsecase, *MockUserRepository, *MockPatientRepository, *MockSessionService) {
	userRepo := new(MockUserRepository)
	patientRepo := new(MockPatientRepository)
	sessionService := new(MockSessionService)
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInDays: 1},
	}
	usecase := NewAuthUsecase(userRepo, patientRepo, new(MockDoctorRepository), new(MockReceptionistRepository), sessionService, internalConfig)
	return usecase, userRepo, patientRepo, sessionService
}

func TestSignup(t *testing.T) {
	signupRequest := func() *requests.SignupRequest {
		return &requests.SignupRequest{
			Name:     "Aarav Sharma",
			Email:    "aarav@example.com",
			Password: "secret123",
			Phone:    "+91-9000000001",
		}
	}

	t.Run("existing email is rejected", func(t *testing.T) {
		usecase, userRepo, _, _ := newTestAuthUsecase()

		userRepo.On("FindByEmail", mock.Anything, "aarav@example.com").Return(&models.User{ID: "user1"}, nil)

		_, err := usecase.Signup(context.Background(), signupRequest())
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientUserAlreadyExists, customErr.ClientMessage)
		userRepo.AssertNotCalled(t, "CreateUser")
	})

	t.Run("lost insert race surfaces the conflict", func(t *testing.T) {
		usecase, userRepo, patientRepo, _ := newTestAuthUsecase()

		userRepo.On("FindByEmail", mock.Anything, "aarav@example.com").Return(nil, nil)
		userRepo.On("CreateUser", mock.Anything, mock.Anything).
			Return("", exceptions.ErrMongoDBDuplicateKey(nil, constvars.ErrClientUserAlreadyExists))

		_, err := usecase.Signup(context.Background(), signupRequest())
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientUserAlreadyExists, customErr.ClientMessage)
		patientRepo.AssertNotCalled(t, "CreatePatient")
	})

	t.Run("signup stores an uppercase patient role and logs in", func(t *testing.T) {
		usecase, userRepo, patientRepo, sessionService := newTestAuthUsecase()

		userRepo.On("FindByEmail", mock.Anything, "aarav@example.com").Return(nil, nil)
		userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Role == "PATIENT" && utils.CheckPasswordHash("secret123", u.Password)
		})).Return("user1", nil)
		patientRepo.On("CreatePatient", mock.Anything, mock.MatchedBy(func(p *models.Patient) bool {
			return p.UserID == "user1"
		})).Return("pat1", nil)
		sessionService.On("CreateSession", mock.Anything, mock.MatchedBy(func(s *models.Session) bool {
			return s.Role == "PATIENT" && s.ProfileID == "pat1"
		})).Return(nil)

		response, err := usecase.Signup(context.Background(), signupRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, response.Token)
		assert.Equal(t, constvars.RolePatient, response.User.Role)
		assert.Equal(t, "pat1", response.User.ProfileID)
		userRepo.AssertExpectations(t)
		patientRepo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		usecase, userRepo, _, _ := newTestAuthUsecase()

		userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		_, err := usecase.Login(context.Background(), &requests.LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever",
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("wrong password", func(t *testing.T) {
		usecase, userRepo, _, _ := newTestAuthUsecase()

		hashed, err := utils.HashPassword("rightpassword")
		require.NoError(t, err)
		userRepo.On("FindByEmail", mock.Anything, "aarav@example.com").Return(&models.User{
			ID:       "user1",
			Email:    "aarav@example.com",
			Password: hashed,
			Role:     constvars.RolePatient,
		}, nil)

		_, err = usecase.Login(context.Background(), &requests.LoginRequest{
			Email:    "aarav@example.com",
			Password: "wrongpassword",
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}
