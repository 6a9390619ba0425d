package auth

import (
	"context"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Signup(ctx context.Context, request *requests.SignupRequest) (*responses.LoginResponse, error)
	Login(ctx context.Context, request *requests.LoginRequest) (*responses.LoginResponse, error)
	Logout(ctx context.Context, session *models.Session) error
	RegisterUser(ctx context.Context, request *requests.RegisterUserRequest) (*responses.UserDetail, error)
}
