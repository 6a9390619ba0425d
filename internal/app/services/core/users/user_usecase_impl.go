package users

import (
	"context"
	"time"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/dto/responses"
	"hms-service/internal/pkg/exceptions"
	"hms-service/internal/pkg/utils"
)

type userUsecase struct {
	UserRepository UserRepository
}

func NewUserUsecase(userRepository UserRepository) UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
	}
}

func (uc *userUsecase) GetMe(ctx context.Context, session *models.Session) (*responses.UserDetail, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientUserNotFound)
	}
	return buildUserDetail(user), nil
}

func (uc *userUsecase) UpdateMe(ctx context.Context, session *models.Session, request *requests.UpdateMeRequest) (*responses.UserDetail, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientUserNotFound)
	}

	if request.Name != nil {
		user.Name = *request.Name
	}
	if request.Phone != nil {
		user.Phone = *request.Phone
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return buildUserDetail(user), nil
}

func (uc *userUsecase) ChangePassword(ctx context.Context, session *models.Session, request *requests.ChangePasswordRequest) error {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrResourceNotFound(constvars.ErrClientUserNotFound)
	}
	if !utils.CheckPasswordHash(request.CurrentPassword, user.Password) {
		return exceptions.ErrDomainRule(constvars.ErrClientCurrentPasswordIncorrect)
	}
	if len(request.NewPassword) < 6 {
		return exceptions.ErrDomainRule(constvars.ErrClientPasswordTooShort)
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	user.Password = hashed
	user.UpdatedAt = time.Now().UTC()
	return uc.UserRepository.UpdateUser(ctx, user)
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]responses.UserDetail, error) {
	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]responses.UserDetail, 0, len(users))
	for i := range users {
		details = append(details, *buildUserDetail(&users[i]))
	}
	return details, nil
}

func (uc *userUsecase) GetUserByID(ctx context.Context, userID string) (*responses.UserDetail, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientUserNotFound)
	}
	return buildUserDetail(user), nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, userID string) error {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrResourceNotFound(constvars.ErrClientUserNotFound)
	}
	return uc.UserRepository.DeleteByID(ctx, userID)
}

func buildUserDetail(user *models.User) *responses.UserDetail {
	return &responses.UserDetail{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// BuildUserSummary is shared by the role-profile usecases when populating
// linked accounts into their detail views.
func BuildUserSummary(user *models.User) *responses.UserSummary {
	if user == nil {
		return nil
	}
	return &responses.UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Phone: user.Phone,
	}
}
