package appointments

import (
	"context"
	"fmt"
	"time"

	"hms-service/internal/app/models"
	"hms-service/internal/app/services/core/doctors"
	"hms-service/internal/app/services/core/patients"
	"hms-service/internal/app/services/core/users"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/dto/responses"
	"hms-service/internal/pkg/exceptions"
	"hms-service/internal/pkg/utils"
)

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	DoctorRepository      doctors.DoctorRepository
	PatientRepository     patients.PatientRepository
	UserRepository        users.UserRepository
}

func NewAppointmentUsecase(
	appointmentRepository AppointmentRepository,
	doctorRepository doctors.DoctorRepository,
	patientRepository patients.PatientRepository,
	userRepository users.UserRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		DoctorRepository:      doctorRepository,
		PatientRepository:     patientRepository,
		UserRepository:        userRepository,
	}
}

func (uc *appointmentUsecase) GetAvailability(ctx context.Context, doctorID, date string) (*responses.AvailabilityResponse, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientDoctorNotFound)
	}

	doctorUser, err := uc.UserRepository.FindByID(ctx, doctor.UserID)
	if err != nil {
		return nil, err
	}
	doctorSummary := responses.AvailabilityDoctor{ConsultationFee: doctor.ConsultationFee}
	if doctorUser != nil {
		doctorSummary.Name = doctorUser.Name
	}

	day, err := utils.ParseCalendarDate(date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	weekday := utils.WeekdayShort(day)
	window, ok := doctor.WindowFor(weekday)
	if !ok {
		return &responses.AvailabilityResponse{
			Available:   false,
			Message:     fmt.Sprintf("Doctor is not available on %s", weekday),
			TimeSlots:   []string{},
			BookedSlots: []string{},
			AllSlots:    []string{},
			Doctor:      doctorSummary,
		}, nil
	}

	allSlots, err := GenerateSlots(window.From, window.To)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	dayStart, dayEnd := utils.DayRange(day)
	booked, err := uc.AppointmentRepository.FindBookedByDoctorAndDay(ctx, doctorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	bookedSet := make(map[string]bool, len(booked))
	bookedSlots := make([]string, 0, len(booked))
	for _, appointment := range booked {
		if !bookedSet[appointment.Time] {
			bookedSet[appointment.Time] = true
			bookedSlots = append(bookedSlots, appointment.Time)
		}
	}

	timeSlots := make([]string, 0, len(allSlots))
	for _, slot := range allSlots {
		if !bookedSet[slot] {
			timeSlots = append(timeSlots, slot)
		}
	}

	// Available tracks the free slots, not the window: a fully booked day
	// reports false.
	return &responses.AvailabilityResponse{
		Available:   len(timeSlots) > 0,
		TimeSlots:   timeSlots,
		BookedSlots: bookedSlots,
		AllSlots:    allSlots,
		Doctor:      doctorSummary,
	}, nil
}

// BookAppointment is the patient self-service path. The pre-insert conflict
// check gives the friendly 400; the unique slot index turns a lost race into a
// 409 instead of a double booking.
func (uc *appointmentUsecase) BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointmentRequest) (*responses.AppointmentDetail, error) {
	if request.DoctorID == "" || request.Date == "" || request.Time == "" {
		return nil, exceptions.ErrDomainRule(constvars.ErrClientBookingFieldsRequired)
	}

	patient, err := uc.PatientRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientPatientProfileNotFound)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientDoctorNotFound)
	}

	day, err := utils.ParseCalendarDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	dayStart, dayEnd := utils.DayRange(day)
	taken, err := uc.AppointmentRepository.ExistsBookedSlot(ctx, request.DoctorID, dayStart, dayEnd, request.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, exceptions.ErrDomainRule(constvars.ErrClientSlotNoLongerAvailable)
	}

	appointment := &models.Appointment{
		PatientID: patient.ID,
		DoctorID:  request.DoctorID,
		Date:      day,
		Time:      request.Time,
		Status:    constvars.AppointmentStatusBooked,
		Reason:    request.Reason,
	}
	appointment.Touch(time.Now().UTC())

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	return uc.populateAppointment(ctx, appointment)
}

// CreateAppointment is the staff path. It deliberately performs no pre-insert
// conflict check; the slot index still rejects true duplicates.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointmentRequest) (*responses.AppointmentDetail, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientPatientNotFound)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientDoctorNotFound)
	}

	day, err := utils.ParseCalendarDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	status := request.Status
	if status == "" {
		status = constvars.AppointmentStatusBooked
	}

	appointment := &models.Appointment{
		PatientID: request.PatientID,
		DoctorID:  request.DoctorID,
		Date:      day,
		Time:      request.Time,
		Status:    status,
		Reason:    request.Reason,
	}
	if session.Role == constvars.RoleReceptionist {
		appointment.ReceptionistID = session.ProfileID
	}
	appointment.Touch(time.Now().UTC())

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	return uc.populateAppointment(ctx, appointment)
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context) ([]responses.AppointmentDetail, error) {
	appointmentModels, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.populateAppointments(ctx, appointmentModels)
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.AppointmentDetail, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientAppointmentNotFound)
	}
	if session.Role == constvars.RolePatient && appointment.PatientID != session.ProfileID {
		return nil, exceptions.ErrForbiddenAccess(constvars.ErrClientForeignAppointmentAccess)
	}
	return uc.populateAppointment(ctx, appointment)
}

// UpdateAppointment is the staff override path; no transition legality check.
func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentRequest) (*responses.AppointmentDetail, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientAppointmentNotFound)
	}

	if request.PatientID != nil {
		appointment.PatientID = *request.PatientID
	}
	if request.DoctorID != nil {
		appointment.DoctorID = *request.DoctorID
	}
	if request.ReceptionistID != nil {
		appointment.ReceptionistID = *request.ReceptionistID
	}
	if request.Date != nil {
		day, err := utils.ParseCalendarDate(*request.Date)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		appointment.Date = day
	}
	if request.Time != nil {
		appointment.Time = *request.Time
	}
	if request.Reason != nil {
		appointment.Reason = *request.Reason
	}
	if request.Status != nil {
		appointment.Status = *request.Status
	}
	if request.Notes != nil {
		appointment.Notes = *request.Notes
	}
	appointment.UpdatedAt = time.Now().UTC()

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}
	return uc.populateAppointment(ctx, appointment)
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.CancelAppointmentRequest) (*responses.AppointmentDetail, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientAppointmentNotFound)
	}
	if session.Role == constvars.RolePatient && appointment.PatientID != session.ProfileID {
		return nil, exceptions.ErrForbiddenAccess(constvars.ErrClientForeignAppointmentCancel)
	}
	if !appointment.Cancellable() {
		return nil, exceptions.ErrDomainRule(constvars.ErrClientAppointmentNotCancellable)
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	appointment.CancellationReason = request.Reason
	appointment.UpdatedAt = time.Now().UTC()

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}
	return uc.populateAppointment(ctx, appointment)
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrResourceNotFound(constvars.ErrClientAppointmentNotFound)
	}
	return uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
}

func (uc *appointmentUsecase) ListMyAppointments(ctx context.Context, session *models.Session) ([]responses.AppointmentDetail, error) {
	patient, err := uc.PatientRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientPatientProfileNotFound)
	}
	appointmentModels, err := uc.AppointmentRepository.FindByPatientID(ctx, patient.ID)
	if err != nil {
		return nil, err
	}
	return uc.populateAppointments(ctx, appointmentModels)
}

func (uc *appointmentUsecase) ListDoctorAppointments(ctx context.Context, session *models.Session) ([]responses.AppointmentDetail, error) {
	doctor, err := uc.DoctorRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientDoctorProfileNotFound)
	}
	appointmentModels, err := uc.AppointmentRepository.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}
	return uc.populateAppointments(ctx, appointmentModels)
}

// UpdateStatusByDoctor lets the treating doctor close out an appointment; only
// the two terminal statuses are reachable and only on own appointments.
func (uc *appointmentUsecase) UpdateStatusByDoctor(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatusRequest) (*responses.AppointmentDetail, error) {
	if request.Status != constvars.AppointmentStatusCompleted && request.Status != constvars.AppointmentStatusCancelled {
		return nil, exceptions.ErrDomainRule(constvars.ErrClientInvalidAppointmentStatus)
	}

	doctor, err := uc.DoctorRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientDoctorProfileNotFound)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientAppointmentNotFound)
	}
	if appointment.DoctorID != doctor.ID {
		return nil, exceptions.ErrForbiddenAccess(constvars.ErrClientForeignAppointmentUpdate)
	}

	appointment.Status = request.Status
	if request.Notes != "" {
		appointment.Notes = request.Notes
	}
	appointment.UpdatedAt = time.Now().UTC()

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}
	return uc.populateAppointment(ctx, appointment)
}

func (uc *appointmentUsecase) populateAppointments(ctx context.Context, appointmentModels []models.Appointment) ([]responses.AppointmentDetail, error) {
	details := make([]responses.AppointmentDetail, 0, len(appointmentModels))
	for i := range appointmentModels {
		detail, err := uc.populateAppointment(ctx, &appointmentModels[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (uc *appointmentUsecase) populateAppointment(ctx context.Context, appointment *models.Appointment) (*responses.AppointmentDetail, error) {
	detail := &responses.AppointmentDetail{
		ID:                 appointment.ID,
		Date:               appointment.Date,
		Time:               appointment.Time,
		Status:             appointment.Status,
		Reason:             appointment.Reason,
		Notes:              appointment.Notes,
		CancellationReason: appointment.CancellationReason,
		CreatedAt:          appointment.CreatedAt,
	}

	patient, err := uc.PatientRepository.FindByID(ctx, appointment.PatientID)
	if err != nil {
		return nil, err
	}
	if patient != nil {
		patientUser, err := uc.UserRepository.FindByID(ctx, patient.UserID)
		if err != nil {
			return nil, err
		}
		detail.Patient = &responses.AppointmentParty{
			ID:            patient.ID,
			User:          users.BuildUserSummary(patientUser),
			ContactNumber: patient.ContactNumber,
		}
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor != nil {
		doctorUser, err := uc.UserRepository.FindByID(ctx, doctor.UserID)
		if err != nil {
			return nil, err
		}
		detail.Doctor = &responses.AppointmentParty{
			ID:              doctor.ID,
			User:            users.BuildUserSummary(doctorUser),
			Specialization:  doctor.Specialization,
			ConsultationFee: doctor.ConsultationFee,
		}
	}

	return detail, nil
}
