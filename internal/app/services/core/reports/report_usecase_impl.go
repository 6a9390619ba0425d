package reports

import (
	"context"
	"time"

	"hms-service/internal/app/models"
	"hms-service/internal/app/services/core/doctors"
	"hms-service/internal/app/services/core/patients"
	"hms-service/internal/app/services/core/receptionists"
	"hms-service/internal/app/services/core/users"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/dto/responses"
	"hms-service/internal/pkg/exceptions"
	"hms-service/internal/pkg/utils"
)

const (
	recentAppointmentsWindow = 7 * 24 * time.Hour
	recentAppointmentsLimit  = 5

	// Each completed appointment occupies one half-hour slot.
	consultationHoursPerAppointment = 0.5
)

type reportUsecase struct {
	ReportRepository       ReportRepository
	UserRepository         users.UserRepository
	DoctorRepository       doctors.DoctorRepository
	PatientRepository      patients.PatientRepository
	ReceptionistRepository receptionists.ReceptionistRepository
}

func NewReportUsecase(
	reportRepository ReportRepository,
	userRepository users.UserRepository,
	doctorRepository doctors.DoctorRepository,
	patientRepository patients.PatientRepository,
	receptionistRepository receptionists.ReceptionistRepository,
) ReportUsecase {
	return &reportUsecase{
		ReportRepository:       reportRepository,
		UserRepository:         userRepository,
		DoctorRepository:       doctorRepository,
		PatientRepository:      patientRepository,
		ReceptionistRepository: receptionistRepository,
	}
}

func (uc *reportUsecase) GetAdminDashboard(ctx context.Context) (*responses.AdminDashboardStats, error) {
	stats := &responses.AdminDashboardStats{}

	var err error
	if stats.Totals.Doctors, err = uc.ReportRepository.CountDoctors(ctx); err != nil {
		return nil, err
	}
	if stats.Totals.Patients, err = uc.ReportRepository.CountPatients(ctx); err != nil {
		return nil, err
	}
	if stats.Totals.Receptionists, err = uc.ReportRepository.CountReceptionists(ctx); err != nil {
		return nil, err
	}
	if stats.Totals.Appointments, err = uc.ReportRepository.CountAppointments(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dayStart, dayEnd := utils.DayRange(now)
	if stats.TodayAppointments, err = uc.ReportRepository.CountAppointmentsBetween(ctx, dayStart, dayEnd); err != nil {
		return nil, err
	}
	if stats.UpcomingAppointments, err = uc.ReportRepository.CountUpcomingAppointments(ctx, dayStart); err != nil {
		return nil, err
	}
	if stats.StatusBreakdown, err = uc.ReportRepository.AppointmentStatusBreakdown(ctx); err != nil {
		return nil, err
	}

	revenue, err := uc.ReportRepository.RevenueStats(ctx)
	if err != nil {
		return nil, err
	}
	stats.Revenue = *revenue

	recent, err := uc.ReportRepository.RecentAppointments(ctx, now.Add(-recentAppointmentsWindow), recentAppointmentsLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentAppointments = make([]responses.RecentAppointment, 0, len(recent))
	for _, appointment := range recent {
		stats.RecentAppointments = append(stats.RecentAppointments, responses.RecentAppointment{
			ID:     appointment.ID,
			Date:   appointment.Date,
			Time:   appointment.Time,
			Status: appointment.Status,
		})
	}

	return stats, nil
}

func (uc *reportUsecase) GetDoctorDashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboardStats, error) {
	doctor, err := uc.DoctorRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientDoctorProfileNotFound)
	}

	stats := &responses.DoctorDashboardStats{}
	dayStart, dayEnd := utils.DayRange(time.Now().UTC())
	if stats.TodayAppointments, err = uc.ReportRepository.CountAppointmentsByDoctorBetween(ctx, doctor.ID, dayStart, dayEnd); err != nil {
		return nil, err
	}
	if stats.TotalAppointments, err = uc.ReportRepository.CountAppointmentsByDoctor(ctx, doctor.ID); err != nil {
		return nil, err
	}
	if stats.UniquePatients, err = uc.ReportRepository.CountDistinctPatientsByDoctor(ctx, doctor.ID); err != nil {
		return nil, err
	}
	if stats.PrescriptionsWritten, err = uc.ReportRepository.CountPrescriptionsByDoctor(ctx, doctor.ID); err != nil {
		return nil, err
	}

	completed, err := uc.ReportRepository.CountCompletedAppointmentsByDoctor(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}
	stats.ConsultationHours = float64(completed) * consultationHoursPerAppointment

	return stats, nil
}

func (uc *reportUsecase) GetPatientDashboard(ctx context.Context, session *models.Session) (*responses.PatientDashboardStats, error) {
	patient, err := uc.PatientRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientPatientProfileNotFound)
	}

	stats := &responses.PatientDashboardStats{}
	dayStart, _ := utils.DayRange(time.Now().UTC())
	if stats.UpcomingAppointments, err = uc.ReportRepository.CountUpcomingAppointmentsByPatient(ctx, patient.ID, dayStart); err != nil {
		return nil, err
	}
	if stats.TotalAppointments, err = uc.ReportRepository.CountAppointmentsByPatient(ctx, patient.ID); err != nil {
		return nil, err
	}
	if stats.Prescriptions, err = uc.ReportRepository.CountPrescriptionsByPatient(ctx, patient.ID); err != nil {
		return nil, err
	}
	if stats.PendingBills, stats.PendingAmount, err = uc.ReportRepository.PendingBillsByPatient(ctx, patient.ID); err != nil {
		return nil, err
	}

	return stats, nil
}

// ListUsersWithProfiles joins every account with its role profile. Accounts
// whose profile document is missing still show up, just without a profile.
func (uc *reportUsecase) ListUsersWithProfiles(ctx context.Context) ([]responses.AdminUserView, error) {
	userModels, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]responses.AdminUserView, 0, len(userModels))
	for i := range userModels {
		user := &userModels[i]
		view := responses.AdminUserView{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			Phone:     user.Phone,
			CreatedAt: user.CreatedAt,
		}

		switch user.Role {
		case constvars.RoleDoctor:
			profile, err := uc.DoctorRepository.FindByUserID(ctx, user.ID)
			if err != nil {
				return nil, err
			}
			if profile != nil {
				view.Profile = profile
			}
		case constvars.RolePatient:
			profile, err := uc.PatientRepository.FindByUserID(ctx, user.ID)
			if err != nil {
				return nil, err
			}
			if profile != nil {
				view.Profile = profile
			}
		case constvars.RoleReceptionist:
			profile, err := uc.ReceptionistRepository.FindByUserID(ctx, user.ID)
			if err != nil {
				return nil, err
			}
			if profile != nil {
				view.Profile = profile
			}
		}

		views = append(views, view)
	}

	return views, nil
}
