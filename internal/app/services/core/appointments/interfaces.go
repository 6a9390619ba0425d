package appointments

import (
	"context"
	"time"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindBookedByDoctorAndDay(ctx context.Context, doctorID string, dayStart, dayEnd time.Time) ([]models.Appointment, error)
	ExistsBookedSlot(ctx context.Context, doctorID string, dayStart, dayEnd time.Time, slot string) (bool, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	DeleteByID(ctx context.Context, appointmentID string) error
}

type AppointmentUsecase interface {
	GetAvailability(ctx context.Context, doctorID, date string) (*responses.AvailabilityResponse, error)
	BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointmentRequest) (*responses.AppointmentDetail, error)
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointmentRequest) (*responses.AppointmentDetail, error)
	ListAppointments(ctx context.Context) ([]responses.AppointmentDetail, error)
	GetAppointmentByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.AppointmentDetail, error)
	UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentRequest) (*responses.AppointmentDetail, error)
	CancelAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.CancelAppointmentRequest) (*responses.AppointmentDetail, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
	ListMyAppointments(ctx context.Context, session *models.Session) ([]responses.AppointmentDetail, error)
	ListDoctorAppointments(ctx context.Context, session *models.Session) ([]responses.AppointmentDetail, error)
	UpdateStatusByDoctor(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatusRequest) (*responses.AppointmentDetail, error)
}
