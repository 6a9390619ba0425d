package receptionists

import (
	"context"
	"time"

	"hms-service/internal/app/models"
	"hms-service/internal/app/services/core/users"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/dto/responses"
	"hms-service/internal/pkg/exceptions"
	"hms-service/internal/pkg/utils"
)

type receptionistUsecase struct {
	ReceptionistRepository ReceptionistRepository
	UserRepository         users.UserRepository
}

func NewReceptionistUsecase(receptionistRepository ReceptionistRepository, userRepository users.UserRepository) ReceptionistUsecase {
	return &receptionistUsecase{
		ReceptionistRepository: receptionistRepository,
		UserRepository:         userRepository,
	}
}

func (uc *receptionistUsecase) CreateReceptionist(ctx context.Context, request *requests.CreateReceptionistRequest) (*responses.ReceptionistDetail, error) {
	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDomainRule(constvars.ErrClientUserAlreadyExists)
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashed,
		Role:     constvars.RoleReceptionist,
		Phone:    request.Phone,
	}
	user.Touch(now)

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	receptionist := &models.Receptionist{
		UserID:          userID,
		Shift:           request.Shift,
		ShiftTimings:    models.ShiftTimingsFor(request.Shift),
		Department:      request.Department,
		Qualification:   request.Qualification,
		ExperienceYears: request.ExperienceYears,
	}
	receptionist.Touch(now)

	receptionistID, err := uc.ReceptionistRepository.CreateReceptionist(ctx, receptionist)
	if err != nil {
		uc.UserRepository.DeleteByID(ctx, userID)
		return nil, err
	}
	receptionist.ID = receptionistID

	return buildReceptionistDetail(receptionist, user), nil
}

func (uc *receptionistUsecase) ListReceptionists(ctx context.Context) ([]responses.ReceptionistDetail, error) {
	receptionistModels, err := uc.ReceptionistRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]responses.ReceptionistDetail, 0, len(receptionistModels))
	for i := range receptionistModels {
		user, err := uc.UserRepository.FindByID(ctx, receptionistModels[i].UserID)
		if err != nil {
			return nil, err
		}
		details = append(details, *buildReceptionistDetail(&receptionistModels[i], user))
	}
	return details, nil
}

func (uc *receptionistUsecase) GetReceptionistByID(ctx context.Context, receptionistID string) (*responses.ReceptionistDetail, error) {
	receptionist, err := uc.ReceptionistRepository.FindByID(ctx, receptionistID)
	if err != nil {
		return nil, err
	}
	if receptionist == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientReceptionistNotFound)
	}
	user, err := uc.UserRepository.FindByID(ctx, receptionist.UserID)
	if err != nil {
		return nil, err
	}
	return buildReceptionistDetail(receptionist, user), nil
}

func (uc *receptionistUsecase) UpdateReceptionist(ctx context.Context, receptionistID string, request *requests.UpdateReceptionistRequest) (*responses.ReceptionistDetail, error) {
	receptionist, err := uc.ReceptionistRepository.FindByID(ctx, receptionistID)
	if err != nil {
		return nil, err
	}
	if receptionist == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientReceptionistNotFound)
	}
	return uc.applyUpdate(ctx, receptionist, request)
}

func (uc *receptionistUsecase) DeleteReceptionist(ctx context.Context, receptionistID string) error {
	receptionist, err := uc.ReceptionistRepository.FindByID(ctx, receptionistID)
	if err != nil {
		return err
	}
	if receptionist == nil {
		return exceptions.ErrResourceNotFound(constvars.ErrClientReceptionistNotFound)
	}
	if err := uc.ReceptionistRepository.DeleteByID(ctx, receptionistID); err != nil {
		return err
	}
	return uc.UserRepository.DeleteByID(ctx, receptionist.UserID)
}

func (uc *receptionistUsecase) GetMyProfile(ctx context.Context, session *models.Session) (*responses.ReceptionistDetail, error) {
	receptionist, err := uc.ReceptionistRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if receptionist == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientReceptionistNotFound)
	}
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return buildReceptionistDetail(receptionist, user), nil
}

func (uc *receptionistUsecase) UpdateMyProfile(ctx context.Context, session *models.Session, request *requests.UpdateReceptionistRequest) (*responses.ReceptionistDetail, error) {
	receptionist, err := uc.ReceptionistRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if receptionist == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientReceptionistNotFound)
	}
	return uc.applyUpdate(ctx, receptionist, request)
}

// applyUpdate is shared by the admin and self-service paths. shiftTimings is
// rederived whenever shift changes.
func (uc *receptionistUsecase) applyUpdate(ctx context.Context, receptionist *models.Receptionist, request *requests.UpdateReceptionistRequest) (*responses.ReceptionistDetail, error) {
	now := time.Now().UTC()

	user, err := uc.UserRepository.FindByID(ctx, receptionist.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil && (request.Name != nil || request.Phone != nil) {
		if request.Name != nil {
			user.Name = *request.Name
		}
		if request.Phone != nil {
			user.Phone = *request.Phone
		}
		user.UpdatedAt = now
		if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
			return nil, err
		}
	}

	if request.Shift != nil {
		receptionist.Shift = *request.Shift
		receptionist.ShiftTimings = models.ShiftTimingsFor(*request.Shift)
	}
	if request.Department != nil {
		receptionist.Department = *request.Department
	}
	if request.Qualification != nil {
		receptionist.Qualification = *request.Qualification
	}
	if request.ExperienceYears != nil {
		receptionist.ExperienceYears = *request.ExperienceYears
	}
	receptionist.UpdatedAt = now

	if err := uc.ReceptionistRepository.UpdateReceptionist(ctx, receptionist); err != nil {
		return nil, err
	}
	return buildReceptionistDetail(receptionist, user), nil
}

func buildReceptionistDetail(receptionist *models.Receptionist, user *models.User) *responses.ReceptionistDetail {
	return &responses.ReceptionistDetail{
		ID:              receptionist.ID,
		User:            users.BuildUserSummary(user),
		Shift:           receptionist.Shift,
		ShiftTimings:    receptionist.ShiftTimings,
		Department:      receptionist.Department,
		Qualification:   receptionist.Qualification,
		ExperienceYears: receptionist.ExperienceYears,
	}
}
