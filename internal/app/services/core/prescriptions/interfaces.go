package prescriptions

import (
	"context"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/dto/responses"
)

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error)
	FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	FindAll(ctx context.Context) ([]models.Prescription, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Prescription, error)
	UpdatePrescription(ctx context.Context, prescription *models.Prescription) error
	DeleteByID(ctx context.Context, prescriptionID string) error
}

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescriptionRequest) (*responses.PrescriptionDetail, error)
	ListPrescriptions(ctx context.Context) ([]responses.PrescriptionDetail, error)
	GetPrescriptionByID(ctx context.Context, session *models.Session, prescriptionID string) (*responses.PrescriptionDetail, error)
	UpdatePrescription(ctx context.Context, session *models.Session, prescriptionID string, request *requests.UpdatePrescriptionRequest) (*responses.PrescriptionDetail, error)
	DeletePrescription(ctx context.Context, prescriptionID string) error
	ListMyPrescriptions(ctx context.Context, session *models.Session) ([]responses.PrescriptionDetail, error)
}
