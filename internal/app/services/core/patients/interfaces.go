package patients

import (
	"context"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByUserID(ctx context.Context, userID string) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeleteByID(ctx context.Context, patientID string) error
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatientRequest) (*responses.PatientDetail, error)
	ListPatients(ctx context.Context) ([]responses.PatientDetail, error)
	GetPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.PatientDetail, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatientRequest) (*responses.PatientDetail, error)
	DeletePatient(ctx context.Context, patientID string) error
	GetMyProfile(ctx context.Context, session *models.Session) (*responses.PatientDetail, error)
	UpdateMyProfile(ctx context.Context, session *models.Session, request *requests.UpdatePatientProfileRequest) (*responses.PatientDetail, error)
}
