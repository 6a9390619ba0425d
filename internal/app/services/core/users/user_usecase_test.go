package users

import (
	"context"
	"testing"

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

func TestChangePassword(t *testing.T) {
	session := &models.Session{UserID: "user1", Role: constvars.RolePatient}

	currentHash, err := utils.HashPassword("oldsecret")
	require.NoError(t, err)

	storedUser := func() *models.User {
		return &models.User{ID: "user1", Email: "aarav@example.com", Password: currentHash}
	}

	t.Run("wrong current password is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewUserUsecase(userRepo)

		userRepo.On("FindByID", mock.Anything, "user1").Return(storedUser(), nil)

		err := usecase.ChangePassword(context.Background(), session, &requests.ChangePasswordRequest{
			CurrentPassword: "not-the-password",
			NewPassword:     "newsecret",
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientCurrentPasswordIncorrect, customErr.ClientMessage)
		userRepo.AssertNotCalled(t, "UpdateUser")
	})

	t.Run("short new password is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewUserUsecase(userRepo)

		userRepo.On("FindByID", mock.Anything, "user1").Return(storedUser(), nil)

		err := usecase.ChangePassword(context.Background(), session, &requests.ChangePasswordRequest{
			CurrentPassword: "oldsecret",
			NewPassword:     "short",
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientPasswordTooShort, customErr.ClientMessage)
		userRepo.AssertNotCalled(t, "UpdateUser")
	})

	t.Run("valid change rehashes and persists", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewUserUsecase(userRepo)

		userRepo.On("FindByID", mock.Anything, "user1").Return(storedUser(), nil)
		userRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.ID == "user1" &&
				u.Password != currentHash &&
				utils.CheckPasswordHash("newsecret", u.Password)
		})).Return(nil)

		err := usecase.ChangePassword(context.Background(), session, &requests.ChangePasswordRequest{
			CurrentPassword: "oldsecret",
			NewPassword:     "newsecret",
		})
		require.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown user yields not found", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewUserUsecase(userRepo)

		userRepo.On("FindByID", mock.Anything, "user1").Return(nil, nil)

		err := usecase.ChangePassword(context.Background(), session, &requests.ChangePasswordRequest{
			CurrentPassword: "oldsecret",
			NewPassword:     "newsecret",
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
