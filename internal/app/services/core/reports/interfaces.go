package reports

import (
	"context"
	"time"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/dto/responses"
)

// ReportRepository holds the read-only aggregations behind the dashboards.
type ReportRepository interface {
	CountDoctors(ctx context.Context) (int64, error)
	CountPatients(ctx context.Context) (int64, error)
	CountReceptionists(ctx context.Context) (int64, error)
	CountAppointments(ctx context.Context) (int64, error)
	CountAppointmentsBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountUpcomingAppointments(ctx context.Context, from time.Time) (int64, error)
	AppointmentStatusBreakdown(ctx context.Context) (map[string]int64, error)
	RevenueStats(ctx context.Context) (*responses.RevenueStats, error)
	RecentAppointments(ctx context.Context, since time.Time, limit int64) ([]models.Appointment, error)

	CountAppointmentsByDoctor(ctx context.Context, doctorID string) (int64, error)
	CountAppointmentsByDoctorBetween(ctx context.Context, doctorID string, start, end time.Time) (int64, error)
	CountCompletedAppointmentsByDoctor(ctx context.Context, doctorID string) (int64, error)
	CountDistinctPatientsByDoctor(ctx context.Context, doctorID string) (int64, error)
	CountPrescriptionsByDoctor(ctx context.Context, doctorID string) (int64, error)

	CountAppointmentsByPatient(ctx context.Context, patientID string) (int64, error)
	CountUpcomingAppointmentsByPatient(ctx context.Context, patientID string, from time.Time) (int64, error)
	CountPrescriptionsByPatient(ctx context.Context, patientID string) (int64, error)
	PendingBillsByPatient(ctx context.Context, patientID string) (int64, float64, error)
}

type ReportUsecase interface {
	GetAdminDashboard(ctx context.Context) (*responses.AdminDashboardStats, error)
	GetDoctorDashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboardStats, error)
	GetPatientDashboard(ctx context.Context, session *models.Session) (*responses.PatientDashboardStats, error)
	ListUsersWithProfiles(ctx context.Context) ([]responses.AdminUserView, error)
}
