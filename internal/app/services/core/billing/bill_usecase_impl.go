package billing

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
	"hms-service/internal/pkg/utils"
)

type billUsecase struct {
	BillRepository        BillRepository
	AppointmentRepository appointments.AppointmentRepository
	PatientRepository     patients.PatientRepository
	DoctorRepository      doctors.DoctorRepository
	UserRepository        users.UserRepository
}

func NewBillUsecase(
	billRepository BillRepository,
	appointmentRepository appointments.AppointmentRepository,
	patientRepository patients.PatientRepository,
	doctorRepository doctors.DoctorRepository,
	userRepository users.UserRepository,
) BillUsecase {
	return &billUsecase{
		BillRepository:        billRepository,
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
		DoctorRepository:      doctorRepository,
		UserRepository:        userRepository,
	}
}

// CreateBill opens a pending bill for an appointment. The existence check
// gives the friendly 400; the unique index closes the race with a 409.
func (uc *billUsecase) CreateBill(ctx context.Context, request *requests.CreateBillRequest) (*responses.BillDetail, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientAppointmentNotFound)
	}

	existing, err := uc.BillRepository.FindByAppointmentID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDomainRule(constvars.ErrClientBillAlreadyExists)
	}

	bill := &models.Bill{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		Amount:        request.Amount,
		PaymentStatus: constvars.PaymentStatusPending,
	}
	bill.Touch(time.Now().UTC())

	billID, err := uc.BillRepository.CreateBill(ctx, bill)
	if err != nil {
		return nil, err
	}
	bill.ID = billID

	return uc.populateBill(ctx, bill)
}

// CreateAppointmentBill is the self-checkout path: the bill lands already paid
// with a synthetic payment reference.
func (uc *billUsecase) CreateAppointmentBill(ctx context.Context, session *models.Session, request *requests.CreateAppointmentBillRequest) (*responses.BillDetail, error) {
	if request.AppointmentID == "" || request.DoctorID == "" || request.Amount <= 0 {
		return nil, exceptions.ErrDomainRule(constvars.ErrClientBillFieldsRequired)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientAppointmentNotFound)
	}
	if session.Role == constvars.RolePatient && appointment.PatientID != session.ProfileID {
		return nil, exceptions.ErrForbiddenAccess(constvars.ErrClientForeignBillPay)
	}

	existing, err := uc.BillRepository.FindByAppointmentID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDomainRule(constvars.ErrClientBillAlreadyExists)
	}

	method := request.PaymentMethod
	if method == "" {
		method = constvars.PaymentMethodCard
	}
	now := time.Now().UTC()
	bill := &models.Bill{
		AppointmentID:    appointment.ID,
		PatientID:        appointment.PatientID,
		DoctorID:         request.DoctorID,
		Amount:           request.Amount,
		PaymentStatus:    constvars.PaymentStatusPaid,
		PaymentMethod:    method,
		PaidAt:           &now,
		PaymentReference: utils.GeneratePaymentReference(),
	}
	bill.Touch(now)

	billID, err := uc.BillRepository.CreateBill(ctx, bill)
	if err != nil {
		return nil, err
	}
	bill.ID = billID

	return uc.populateBill(ctx, bill)
}

func (uc *billUsecase) ListBills(ctx context.Context) ([]responses.BillDetail, error) {
	billModels, err := uc.BillRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.populateBills(ctx, billModels)
}

func (uc *billUsecase) GetBillByID(ctx context.Context, session *models.Session, billID string) (*responses.BillDetail, error) {
	bill, err := uc.BillRepository.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientBillNotFound)
	}
	if session.Role == constvars.RolePatient && bill.PatientID != session.ProfileID {
		return nil, exceptions.ErrForbiddenAccess(constvars.ErrClientForeignBillAccess)
	}
	return uc.populateBill(ctx, bill)
}

func (uc *billUsecase) UpdateBill(ctx context.Context, billID string, request *requests.UpdateBillRequest) (*responses.BillDetail, error) {
	bill, err := uc.BillRepository.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientBillNotFound)
	}

	if request.Amount != nil {
		bill.Amount = *request.Amount
	}
	if request.PaymentStatus != nil {
		bill.PaymentStatus = *request.PaymentStatus
	}
	bill.UpdatedAt = time.Now().UTC()

	if err := uc.BillRepository.UpdateBill(ctx, bill); err != nil {
		return nil, err
	}
	return uc.populateBill(ctx, bill)
}

func (uc *billUsecase) DeleteBill(ctx context.Context, billID string) error {
	bill, err := uc.BillRepository.FindByID(ctx, billID)
	if err != nil {
		return err
	}
	if bill == nil {
		return exceptions.ErrResourceNotFound(constvars.ErrClientBillNotFound)
	}
	return uc.BillRepository.DeleteByID(ctx, billID)
}

// PayBill settles a pending bill for its owning patient. Paid and failed
// bills are terminal.
func (uc *billUsecase) PayBill(ctx context.Context, session *models.Session, billID string, request *requests.PayBillRequest) (*responses.BillDetail, error) {
	bill, err := uc.BillRepository.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientBillNotFound)
	}
	if session.Role == constvars.RolePatient && bill.PatientID != session.ProfileID {
		return nil, exceptions.ErrForbiddenAccess(constvars.ErrClientForeignBillPay)
	}
	if bill.PaymentStatus != constvars.PaymentStatusPending {
		return nil, exceptions.ErrDomainRule(constvars.ErrClientOnlyPendingBillsPayable)
	}

	method := request.PaymentMethod
	if method == "" {
		method = constvars.PaymentMethodCard
	}
	now := time.Now().UTC()
	bill.PaymentStatus = constvars.PaymentStatusPaid
	bill.PaymentMethod = method
	bill.PaidAt = &now
	bill.PaymentReference = utils.GeneratePaymentReference()
	bill.RazorpayOrderID = request.RazorpayOrderID
	bill.RazorpayPaymentID = request.RazorpayPaymentID
	bill.RazorpaySignature = request.RazorpaySignature
	bill.UpdatedAt = now

	if err := uc.BillRepository.UpdateBill(ctx, bill); err != nil {
		return nil, err
	}
	return uc.populateBill(ctx, bill)
}

func (uc *billUsecase) ListMyBills(ctx context.Context, session *models.Session) ([]responses.BillDetail, error) {
	patient, err := uc.PatientRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientPatientProfileNotFound)
	}
	billModels, err := uc.BillRepository.FindByPatientID(ctx, patient.ID)
	if err != nil {
		return nil, err
	}
	return uc.populateBills(ctx, billModels)
}

func (uc *billUsecase) ListDoctorBills(ctx context.Context, session *models.Session) ([]responses.BillDetail, error) {
	doctor, err := uc.DoctorRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrResourceNotFound(constvars.ErrClientDoctorProfileNotFound)
	}
	billModels, err := uc.BillRepository.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}
	return uc.populateBills(ctx, billModels)
}

func (uc *billUsecase) populateBills(ctx context.Context, billModels []models.Bill) ([]responses.BillDetail, error) {
	details := make([]responses.BillDetail, 0, len(billModels))
	for i := range billModels {
		detail, err := uc.populateBill(ctx, &billModels[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (uc *billUsecase) populateBill(ctx context.Context, bill *models.Bill) (*responses.BillDetail, error) {
	detail := &responses.BillDetail{
		ID:               bill.ID,
		Amount:           bill.Amount,
		PaymentStatus:    bill.PaymentStatus,
		PaymentMethod:    bill.PaymentMethod,
		PaidAt:           bill.PaidAt,
		PaymentReference: bill.PaymentReference,
		CreatedAt:        bill.CreatedAt,
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, bill.AppointmentID)
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

	patient, err := uc.PatientRepository.FindByID(ctx, bill.PatientID)
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

	if bill.DoctorID != "" {
		doctor, err := uc.DoctorRepository.FindByID(ctx, bill.DoctorID)
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
	}

	return detail, nil
}
