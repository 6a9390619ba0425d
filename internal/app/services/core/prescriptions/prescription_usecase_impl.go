package prescriptions

import (
	"context"
	"time"

	"hms-service/internal/app/models"
	"hms-service/internal/app/services/core/appointments"
	"hms-service/internal/app/services/core/doctors"
	"hms-service/internal/app/services/core/patients"
	"hms-service/internal/app/services/core/users"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/dto/responses"
	"hms-service/internal/pkg/exceptions"
)

type prescriptionUsecase struct {
	PrescriptionRepository PrescriptionRepository
	AppointmentRepository  appointments.AppointmentRepository
	DoctorRepository       doctors.DoctorRepository
	PatientRepository      patients.PatientRepository
	UserRepository         users.UserRepository
}

func NewPrescriptionUsecase(
	prescriptionRepository PrescriptionRepository,
	appointmentRepository appointments.AppointmentRepository,
	doctorRepository doctors.DoctorRepository,
	patientRepository patients.PatientRepository,
	userRepository users.UserRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepository,
		AppointmentRepository:  appointmentRepository,
		DoctorRepository:       doctorRepository,
		PatientRepository:      patientRepository,
		UserRepository:         userRepository,
	}
}

// CreatePrescription derives doctor and patient from the appointment rather
// than trusting the payload. A doctor may only prescribe on own appointments.
func (uc *prescriptionUsecase) CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescriptionRequest) (*responses.PrescriptionDetail, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientAppointmentNotFound)
	}
	if session.Role == constvars.RoleDoctor && appointment.DoctorID != session.ProfileID {
		return nil, exceptions.ErrForbiddenAccess(constvars.ErrClientForeignAppointmentUpdate)
	}

	prescription := &models.Prescription{
		AppointmentID: appointment.ID,
		DoctorID:      appointment.DoctorID,
		PatientID:     appointment.PatientID,
		Medications:   buildMedications(request.Medications),
		Notes:         request.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	prescriptionID, err := uc.PrescriptionRepository.CreatePrescription(ctx, prescription)
	if err != nil {
		return nil, err
	}
	prescription.ID = prescriptionID

	return uc.populatePrescription(ctx, prescription)
}

func (uc *prescriptionUsecase) ListPrescriptions(ctx context.Context) ([]responses.PrescriptionDetail, error) {
	prescriptionModels, err := uc.PrescriptionRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.populatePrescriptions(ctx, prescriptionModels)
}

func (uc *prescriptionUsecase) GetPrescriptionByID(ctx context.Context, session *models.Session, prescriptionID string) (*responses.PrescriptionDetail, error) {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientPrescriptionNotFound)
	}
	if session.Role == constvars.RolePatient && prescription.PatientID != session.ProfileID {
		return nil, exceptions.ErrForbiddenAccess(constvars.ErrClientForeignPrescriptionAccess)
	}
	return uc.populatePrescription(ctx, prescription)
}

func (uc *prescriptionUsecase) UpdatePrescription(ctx context.Context, session *models.Session, prescriptionID string, request *requests.UpdatePrescriptionRequest) (*responses.PrescriptionDetail, error) {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientPrescriptionNotFound)
	}
	if session.Role == constvars.RoleDoctor && prescription.DoctorID != session.ProfileID {
		return nil, exceptions.ErrForbiddenAccess(constvars.ErrClientForeignAppointmentUpdate)
	}

	if request.Medications != nil {
		prescription.Medications = buildMedications(*request.Medications)
	}
	if request.Notes != nil {
		prescription.Notes = *request.Notes
	}

	if err := uc.PrescriptionRepository.UpdatePrescription(ctx, prescription); err != nil {
		return nil, err
	}
	return uc.populatePrescription(ctx, prescription)
}

func (uc *prescriptionUsecase) DeletePrescription(ctx context.Context, prescriptionID string) error {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return err
	}
	if prescription == nil {
		return exceptions.ErrResourceNotFound(constvars.ErrClientPrescriptionNotFound)
	}
	return uc.PrescriptionRepository.DeleteByID(ctx, prescriptionID)
}

func (uc *prescriptionUsecase) ListMyPrescriptions(ctx context.Context, session *models.Session) ([]responses.PrescriptionDetail, error) {
	patient, err := uc.PatientRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientPatientProfileNotFound)
	}
	prescriptionModels, err := uc.PrescriptionRepository.FindByPatientID(ctx, patient.ID)
	if err != nil {
		return nil, err
	}
	return uc.populatePrescriptions(ctx, prescriptionModels)
}

func buildMedications(medications []requests.MedicationRequest) []models.Medication {
	result := make([]models.Medication, 0, len(medications))
	for _, m := range medications {
		result = append(result, models.Medication{
			Name:         m.Name,
			Dosage:       m.Dosage,
			Duration:     m.Duration,
			Instructions: m.Instructions,
		})
	}
	return result
}

func (uc *prescriptionUsecase) populatePrescriptions(ctx context.Context, prescriptionModels []models.Prescription) ([]responses.PrescriptionDetail, error) {
	details := make([]responses.PrescriptionDetail, 0, len(prescriptionModels))
	for i := range prescriptionModels {
		detail, err := uc.populatePrescription(ctx, &prescriptionModels[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (uc *prescriptionUsecase) populatePrescription(ctx context.Context, prescription *models.Prescription) (*responses.PrescriptionDetail, error) {
	medications := prescription.Medications
	if medications == nil {
		medications = []models.Medication{}
	}
	detail := &responses.PrescriptionDetail{
		ID:          prescription.ID,
		Medications: medications,
		Notes:       prescription.Notes,
		CreatedAt:   prescription.CreatedAt,
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, prescription.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment != nil {
		detail.Appointment = &responses.PrescriptionAppointment{
			ID:     appointment.ID,
			Date:   appointment.Date,
			Time:   appointment.Time,
			Reason: appointment.Reason,
		}
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, prescription.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor != nil {
		doctorUser, err := uc.UserRepository.FindByID(ctx, doctor.UserID)
		if err != nil {
			return nil, err
		}
		detail.Doctor = &responses.AppointmentParty{
			ID:             doctor.ID,
			User:           users.BuildUserSummary(doctorUser),
			Specialization: doctor.Specialization,
		}
	}

	patient, err := uc.PatientRepository.FindByID(ctx, prescription.PatientID)
	if err != nil {
		return nil, err
	}
	if patient != nil {
		patientUser, err := uc.UserRepository.FindByID(ctx, patient.UserID)
		if err != nil {
			return nil, err
		}
		detail.Patient = &responses.AppointmentParty{
			ID:   patient.ID,
			User: users.BuildUserSummary(patientUser),
		}
	}

	return detail, nil
}
