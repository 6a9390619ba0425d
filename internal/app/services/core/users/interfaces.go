package users

import (
	"context"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, userID string) error
}

type UserUsecase interface {
	GetMe(ctx context.Context, session *models.Session) (*responses.UserDetail, error)
	UpdateMe(ctx context.Context, session *models.Session, request *requests.UpdateMeRequest) (*responses.UserDetail, error)
	ChangePassword(ctx context.Context, session *models.Session, request *requests.ChangePasswordRequest) error
	ListUsers(ctx context.Context) ([]responses.UserDetail, error)
	GetUserByID(ctx context.Context, userID string) (*responses.UserDetail, error)
	DeleteUser(ctx context.Context, userID string) error
}
