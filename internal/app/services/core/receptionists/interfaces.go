package receptionists

import (
	"context"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/dto/responses"
)

type ReceptionistRepository interface {
	CreateReceptionist(ctx context.Context, receptionist *models.Receptionist) (string, error)
	FindByID(ctx context.Context, receptionistID string) (*models.Receptionist, error)
	FindByUserID(ctx context.Context, userID string) (*models.Receptionist, error)
	FindAll(ctx context.Context) ([]models.Receptionist, error)
	UpdateReceptionist(ctx context.Context, receptionist *models.Receptionist) error
	DeleteByID(ctx context.Context, receptionistID string) error
}

type ReceptionistUsecase interface {
	CreateReceptionist(ctx context.Context, request *requests.CreateReceptionistRequest) (*responses.ReceptionistDetail, error)
	ListReceptionists(ctx context.Context) ([]responses.ReceptionistDetail, error)
	GetReceptionistByID(ctx context.Context, receptionistID string) (*responses.ReceptionistDetail, error)
	UpdateReceptionist(ctx context.Context, receptionistID string, request *requests.UpdateReceptionistRequest) (*responses.ReceptionistDetail, error)
	DeleteReceptionist(ctx context.Context, receptionistID string) error
	GetMyProfile(ctx context.Context, session *models.Session) (*responses.ReceptionistDetail, error)
	UpdateMyProfile(ctx context.Context, session *models.Session, request *requests.UpdateReceptionistRequest) (*responses.ReceptionistDetail, error)
}
