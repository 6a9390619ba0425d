package patients

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

type patientUsecase struct {
	PatientRepository PatientRepository
	UserRepository    users.UserRepository
}

func NewPatientUsecase(patientRepository PatientRepository, userRepository users.UserRepository) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		UserRepository:    userRepository,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatientRequest) (*responses.PatientDetail, error) {
	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDomainRule(constvars.ErrClientUserAlreadyExists)
	}

	var dateOfBirth *time.Time
	if request.DateOfBirth != "" {
		parsed, err := utils.ParseCalendarDate(request.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		dateOfBirth = &parsed
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
		Gender:         request.Gender,
		DateOfBirth:    dateOfBirth,
		ContactNumber:  request.ContactNumber,
		MedicalHistory: request.MedicalHistory,
		BloodGroup:     request.BloodGroup,
	}
	if request.Address != nil {
		patient.Address = models.Address(*request.Address)
	}
	if request.EmergencyContact != nil {
		patient.EmergencyContact = models.EmergencyContact(*request.EmergencyContact)
	}
	if patient.MedicalHistory == nil {
		patient.MedicalHistory = []string{}
	}
	patient.Touch(now)

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		uc.UserRepository.DeleteByID(ctx, userID)
		return nil, err
	}
	patient.ID = patientID

	return buildPatientDetail(patient, user), nil
}

func (uc *patientUsecase) ListPatients(ctx context.Context) ([]responses.PatientDetail, error) {
	patientModels, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]responses.PatientDetail, 0, len(patientModels))
	for i := range patientModels {
		user, err := uc.UserRepository.FindByID(ctx, patientModels[i].UserID)
		if err != nil {
			return nil, err
		}
		details = append(details, *buildPatientDetail(&patientModels[i], user))
	}
	return details, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.PatientDetail, error) {
	if session.Role == constvars.RolePatient && session.ProfileID != patientID {
		return nil, exceptions.ErrForbiddenAccess(constvars.ErrClientForeignPatientAccess)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientPatientNotFound)
	}
	user, err := uc.UserRepository.FindByID(ctx, patient.UserID)
	if err != nil {
		return nil, err
	}
	return buildPatientDetail(patient, user), nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatientRequest) (*responses.PatientDetail, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientPatientNotFound)
	}

	now := time.Now().UTC()

	user, err := uc.UserRepository.FindByID(ctx, patient.UserID)
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

	if request.Gender != nil {
		patient.Gender = *request.Gender
	}
	if request.DateOfBirth != nil {
		parsed, err := utils.ParseCalendarDate(*request.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		patient.DateOfBirth = &parsed
	}
	if request.ContactNumber != nil {
		patient.ContactNumber = *request.ContactNumber
	}
	if request.Address != nil {
		patient.Address = models.Address(*request.Address)
	}
	if request.EmergencyContact != nil {
		patient.EmergencyContact = models.EmergencyContact(*request.EmergencyContact)
	}
	if request.MedicalHistory != nil {
		patient.MedicalHistory = *request.MedicalHistory
	}
	if request.BloodGroup != nil {
		patient.BloodGroup = *request.BloodGroup
	}
	patient.UpdatedAt = now

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}
	return buildPatientDetail(patient, user), nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrResourceNotFound(constvars.ErrClientPatientNotFound)
	}
	if err := uc.PatientRepository.DeleteByID(ctx, patientID); err != nil {
		return err
	}
	return uc.UserRepository.DeleteByID(ctx, patient.UserID)
}

func (uc *patientUsecase) GetMyProfile(ctx context.Context, session *models.Session) (*responses.PatientDetail, error) {
	patient, err := uc.PatientRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientPatientProfileNotFound)
	}
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return buildPatientDetail(patient, user), nil
}

func (uc *patientUsecase) UpdateMyProfile(ctx context.Context, session *models.Session, request *requests.UpdatePatientProfileRequest) (*responses.PatientDetail, error) {
	patient, err := uc.PatientRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientPatientProfileNotFound)
	}

	if request.ContactNumber != nil {
		patient.ContactNumber = *request.ContactNumber
	}
	if request.Address != nil {
		patient.Address = models.Address(*request.Address)
	}
	if request.EmergencyContact != nil {
		patient.EmergencyContact = models.EmergencyContact(*request.EmergencyContact)
	}
	if request.BloodGroup != nil {
		patient.BloodGroup = *request.BloodGroup
	}
	patient.UpdatedAt = time.Now().UTC()

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return buildPatientDetail(patient, user), nil
}

func buildPatientDetail(patient *models.Patient, user *models.User) *responses.PatientDetail {
	history := patient.MedicalHistory
	if history == nil {
		history = []string{}
	}
	return &responses.PatientDetail{
		ID:               patient.ID,
		User:             users.BuildUserSummary(user),
		Gender:           patient.Gender,
		DateOfBirth:      patient.DateOfBirth,
		ContactNumber:    patient.ContactNumber,
		Address:          patient.Address,
		EmergencyContact: patient.EmergencyContact,
		MedicalHistory:   history,
		BloodGroup:       patient.BloodGroup,
	}
}
