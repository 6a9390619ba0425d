package doctors

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

type doctorUsecase struct {
	DoctorRepository DoctorRepository
	UserRepository   users.UserRepository
}

func NewDoctorUsecase(doctorRepository DoctorRepository, userRepository users.UserRepository) DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		UserRepository:   userRepository,
	}
}

// CreateDoctor provisions the account and the profile in order. The user
// insert wins the email uniqueness race; a dangling user without a profile can
// only occur if the second insert fails and is cleaned up by deletion.
func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctorRequest) (*responses.DoctorDetail, error) {
	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDomainRule(constvars.ErrClientUserAlreadyExists)
	}

	availability, err := BuildAvailability(request.Availability)
	if err != nil {
		return nil, err
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
		Role:     constvars.RoleDoctor,
		Phone:    request.Phone,
	}
	user.Touch(now)

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	doctor := &models.Doctor{
		UserID:          userID,
		Specialization:  request.Specialization,
		Qualification:   request.Qualification,
		ExperienceYears: request.ExperienceYears,
		ContactNumber:   request.ContactNumber,
		ConsultationFee: request.ConsultationFee,
		Department:      request.Department,
		Availability:    availability,
	}
	doctor.Touch(now)

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.UserRepository.DeleteByID(ctx, userID)
		return nil, err
	}
	doctor.ID = doctorID

	return buildDoctorDetail(doctor, user), nil
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context) ([]responses.DoctorDetail, error) {
	doctorModels, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.populateDoctors(ctx, doctorModels)
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, session *models.Session, doctorID string) (*responses.DoctorDetail, error) {
	if session.Role == constvars.RoleDoctor && session.ProfileID != doctorID {
		return nil, exceptions.ErrForbiddenAccess(constvars.ErrClientForeignDoctorAccess)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientDoctorNotFound)
	}

	user, err := uc.UserRepository.FindByID(ctx, doctor.UserID)
	if err != nil {
		return nil, err
	}
	return buildDoctorDetail(doctor, user), nil
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctorRequest) (*responses.DoctorDetail, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientDoctorNotFound)
	}

	now := time.Now().UTC()

	user, err := uc.UserRepository.FindByID(ctx, doctor.UserID)
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

	if request.Specialization != nil {
		doctor.Specialization = *request.Specialization
	}
	if request.Qualification != nil {
		doctor.Qualification = *request.Qualification
	}
	if request.ExperienceYears != nil {
		doctor.ExperienceYears = *request.ExperienceYears
	}
	if request.ContactNumber != nil {
		doctor.ContactNumber = *request.ContactNumber
	}
	if request.ConsultationFee != nil {
		doctor.ConsultationFee = *request.ConsultationFee
	}
	if request.Department != nil {
		doctor.Department = *request.Department
	}
	if request.Availability != nil {
		availability, err := BuildAvailability(*request.Availability)
		if err != nil {
			return nil, err
		}
		doctor.Availability = availability
	}
	doctor.UpdatedAt = now

	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}
	return buildDoctorDetail(doctor, user), nil
}

// DeleteDoctor cascades to the linked account so the email can be reused.
func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrResourceNotFound(constvars.ErrClientDoctorNotFound)
	}
	if err := uc.DoctorRepository.DeleteByID(ctx, doctorID); err != nil {
		return err
	}
	return uc.UserRepository.DeleteByID(ctx, doctor.UserID)
}

func (uc *doctorUsecase) GetMyProfile(ctx context.Context, session *models.Session) (*responses.DoctorDetail, error) {
	doctor, err := uc.DoctorRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientDoctorProfileNotFound)
	}
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return buildDoctorDetail(doctor, user), nil
}

func (uc *doctorUsecase) UpdateMyProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfileRequest) (*responses.DoctorDetail, error) {
	doctor, err := uc.DoctorRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientDoctorProfileNotFound)
	}

	if request.ContactNumber != nil {
		doctor.ContactNumber = *request.ContactNumber
	}
	if request.ConsultationFee != nil {
		doctor.ConsultationFee = *request.ConsultationFee
	}
	if request.Availability != nil {
		availability, err := BuildAvailability(*request.Availability)
		if err != nil {
			return nil, err
		}
		doctor.Availability = availability
	}
	doctor.UpdatedAt = time.Now().UTC()

	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return buildDoctorDetail(doctor, user), nil
}

func (uc *doctorUsecase) ListAvailableDoctors(ctx context.Context) ([]responses.DoctorDetail, error) {
	doctorModels, err := uc.DoctorRepository.FindAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return uc.populateDoctors(ctx, doctorModels)
}

func (uc *doctorUsecase) populateDoctors(ctx context.Context, doctorModels []models.Doctor) ([]responses.DoctorDetail, error) {
	details := make([]responses.DoctorDetail, 0, len(doctorModels))
	for i := range doctorModels {
		user, err := uc.UserRepository.FindByID(ctx, doctorModels[i].UserID)
		if err != nil {
			return nil, err
		}
		details = append(details, *buildDoctorDetail(&doctorModels[i], user))
	}
	return details, nil
}

func buildDoctorDetail(doctor *models.Doctor, user *models.User) *responses.DoctorDetail {
	availability := doctor.Availability
	if availability == nil {
		availability = []models.AvailabilityWindow{}
	}
	return &responses.DoctorDetail{
		ID:              doctor.ID,
		User:            users.BuildUserSummary(user),
		Specialization:  doctor.Specialization,
		Qualification:   doctor.Qualification,
		ExperienceYears: doctor.ExperienceYears,
		ContactNumber:   doctor.ContactNumber,
		ConsultationFee: doctor.ConsultationFee,
		Department:      doctor.Department,
		Availability:    availability,
	}
}
