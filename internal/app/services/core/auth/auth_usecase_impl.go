package auth

import (
	"context"
	"time"

	"hms-service/internal/app/config"
	"hms-service/internal/app/models"
	"hms-service/internal/app/services/core/doctors"
	"hms-service/internal/app/services/core/patients"
	"hms-service/internal/app/services/core/receptionists"
	"hms-service/internal/app/services/core/session"
	"hms-service/internal/app/services/core/users"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/dto/responses"
	"hms-service/internal/pkg/exceptions"
	"hms-service/internal/pkg/utils"
)

type authUsecase struct {
	UserRepository         users.UserRepository
	PatientRepository      patients.PatientRepository
	DoctorRepository       doctors.DoctorRepository
	ReceptionistRepository receptionists.ReceptionistRepository
	SessionService         session.SessionService
	InternalConfig         *config.InternalConfig
}

func NewAuthUsecase(
	userRepository users.UserRepository,
	patientRepository patients.PatientRepository,
	doctorRepository doctors.DoctorRepository,
	receptionistRepository receptionists.ReceptionistRepository,
	sessionService session.SessionService,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		UserRepository:         userRepository,
		PatientRepository:      patientRepository,
		DoctorRepository:       doctorRepository,
		ReceptionistRepository: receptionistRepository,
		SessionService:         sessionService,
		InternalConfig:         internalConfig,
	}
}

// Signup registers a patient account and logs it straight in.
func (uc *authUsecase) Signup(ctx context.Context, request *requests.SignupRequest) (*responses.LoginResponse, error) {
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
		Role:     constvars.RolePatient,
		Phone:    request.Phone,
	}
	user.Touch(now)

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	patient := &models.Patient{
		UserID:         userID,
		MedicalHistory: []string{},
	}
	patient.Touch(now)

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		uc.UserRepository.DeleteByID(ctx, userID)
		return nil, err
	}

	return uc.issueSession(ctx, user, patientID)
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginRequest) (*responses.LoginResponse, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	profileID, err := uc.resolveProfileID(ctx, user)
	if err != nil {
		return nil, err
	}
	return uc.issueSession(ctx, user, profileID)
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUserRequest) (*responses.UserDetail, error) {
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

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashed,
		Role:     request.Role,
		Phone:    request.Phone,
	}
	user.Touch(time.Now().UTC())

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	return &responses.UserDetail{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// resolveProfileID looks up the role profile linked to the account. Tagged
// dispatch on the stored role, never field probing.
func (uc *authUsecase) resolveProfileID(ctx context.Context, user *models.User) (string, error) {
	switch user.Role {
	case constvars.RoleDoctor:
		doctor, err := uc.DoctorRepository.FindByUserID(ctx, user.ID)
		if err != nil {
			return "", err
		}
		if doctor == nil {
			return "", nil
		}
		return doctor.ID, nil
	case constvars.RolePatient:
		patient, err := uc.PatientRepository.FindByUserID(ctx, user.ID)
		if err != nil {
			return "", err
		}
		if patient == nil {
			return "", nil
		}
		return patient.ID, nil
	case constvars.RoleReceptionist:
		receptionist, err := uc.ReceptionistRepository.FindByUserID(ctx, user.ID)
		if err != nil {
			return "", err
		}
		if receptionist == nil {
			return "", nil
		}
		return receptionist.ID, nil
	}
	return "", nil
}

func (uc *authUsecase) issueSession(ctx context.Context, user *models.User, profileID string) (*responses.LoginResponse, error) {
	sessionModel := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		ProfileID: profileID,
	}
	if err := uc.SessionService.CreateSession(ctx, sessionModel); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionModel.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInDays)
	if err != nil {
		return nil, err
	}

	return &responses.LoginResponse{
		Token: token,
		User: responses.AuthUser{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			ProfileID: profileID,
		},
	}, nil
}
