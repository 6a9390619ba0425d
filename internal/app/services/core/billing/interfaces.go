package billing

import (
	"context"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/dto/responses"
)

type BillRepository interface {
	CreateBill(ctx context.Context, bill *models.Bill) (string, error)
	FindByID(ctx context.Context, billID string) (*models.Bill, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Bill, error)
	FindAll(ctx context.Context) ([]models.Bill, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Bill, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Bill, error)
	UpdateBill(ctx context.Context, bill *models.Bill) error
	DeleteByID(ctx context.Context, billID string) error
}

type BillUsecase interface {
	CreateBill(ctx context.Context, request *requests.CreateBillRequest) (*responses.BillDetail, error)
	CreateAppointmentBill(ctx context.Context, session *models.Session, request *requests.CreateAppointmentBillRequest) (*responses.BillDetail, error)
	ListBills(ctx context.Context) ([]responses.BillDetail, error)
	GetBillByID(ctx context.Context, session *models.Session, billID string) (*responses.BillDetail, error)
	UpdateBill(ctx context.Context, billID string, request *requests.UpdateBillRequest) (*responses.BillDetail, error)
	DeleteBill(ctx context.Context, billID string) error
	PayBill(ctx context.Context, session *models.Session, billID string, request *requests.PayBillRequest) (*responses.BillDetail, error)
	ListMyBills(ctx context.Context, session *models.Session) ([]responses.BillDetail, error)
	ListDoctorBills(ctx context.Context, session *models.Session) ([]responses.BillDetail, error)
}
