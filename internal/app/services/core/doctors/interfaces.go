package doctors

import (
	"context"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindAvailable(ctx context.Context) ([]models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	DeleteByID(ctx context.Context, doctorID string) error
}

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.CreateDoctorRequest) (*responses.DoctorDetail, error)
	ListDoctors(ctx context.Context) ([]responses.DoctorDetail, error)
	GetDoctorByID(ctx context.Context, session *models.Session, doctorID string) (*responses.DoctorDetail, error)
	UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctorRequest) (*responses.DoctorDetail, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
	GetMyProfile(ctx context.Context, session *models.Session) (*responses.DoctorDetail, error)
	UpdateMyProfile(ctx context.Context, session *models.Session, request *requests.UpdateDoctorProfileRequest) (*responses.DoctorDetail, error)
	ListAvailableDoctors(ctx context.Context) ([]responses.DoctorDetail, error)
}
