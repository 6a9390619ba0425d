package billing

import (
	"context"
	"testing"
	"time"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/dto/requests"
	"hms-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) CreateBill(ctx context.Context, bill *models.Bill) (string, error) {
	args := m.Called(ctx, bill)
	return args.String(0), args.Error(1)
}

func (m *MockBillRepository) FindByID(ctx context.Context, billID string) (*models.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Bill, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindAll(ctx context.Context) ([]models.Bill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Bill, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Bill, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillRepository) UpdateBill(ctx context.Context, bill *models.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) DeleteByID(ctx context.Context, billID string) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindBookedByDoctorAndDay(ctx context.Context, doctorID string, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ExistsBookedSlot(ctx context.Context, doctorID string, dayStart, dayEnd time.Time, slot string) (bool, error) {
	args := m.Called(ctx, doctorID, dayStart, dayEnd, slot)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) DeleteByID(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAvailable(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) DeleteByID(ctx context.Context, doctorID string) error {
	args := m.Called(ctx, doctorID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newTestBillUsecase() (BillUsecase, *MockBillRepository, *MockAppointmentRepository, *MockPatientRepository, *MockDoctorRepository, *MockUserRepository) {
	billRepo := new(MockBillRepository)
	appointmentRepo := new(MockAppointmentRepository)
	patientRepo := new(MockPatientRepository)
	doctorRepo := new(MockDoctorRepository)
	userRepo := new(MockUserRepository)
	usecase := NewBillUsecase(billRepo, appointmentRepo, patientRepo, doctorRepo, userRepo)
	return usecase, billRepo, appointmentRepo, patientRepo, doctorRepo, userRepo
}

func expectPopulate(appointmentRepo *MockAppointmentRepository, patientRepo *MockPatientRepository, doctorRepo *MockDoctorRepository, userRepo *MockUserRepository) {
	appointmentRepo.On("FindByID", mock.Anything, "appt1").Return(&models.Appointment{
		ID:        "appt1",
		PatientID: "pat1",
		DoctorID:  "doc1",
		Time:      "10:00",
	}, nil)
	patientRepo.On("FindByID", mock.Anything, "pat1").Return(&models.Patient{ID: "pat1", UserID: "user-pat1"}, nil)
	doctorRepo.On("FindByID", mock.Anything, "doc1").Return(&models.Doctor{ID: "doc1", UserID: "user-doc1", Specialization: "Cardiology"}, nil)
	userRepo.On("FindByID", mock.Anything, "user-pat1").Return(&models.User{ID: "user-pat1", Name: "Aarav Sharma"}, nil)
	userRepo.On("FindByID", mock.Anything, "user-doc1").Return(&models.User{ID: "user-doc1", Name: "Dr. Asha Mehta"}, nil)
}

func TestCreateBill(t *testing.T) {
	t.Run("second bill for the same appointment is rejected", func(t *testing.T) {
		usecase, billRepo, appointmentRepo, _, _, _ := newTestBillUsecase()

		appointmentRepo.On("FindByID", mock.Anything, "appt1").Return(&models.Appointment{
			ID: "appt1", PatientID: "pat1", DoctorID: "doc1",
		}, nil)
		billRepo.On("FindByAppointmentID", mock.Anything, "appt1").Return(&models.Bill{ID: "bill1", AppointmentID: "appt1"}, nil)

		_, err := usecase.CreateBill(context.Background(), &requests.CreateBillRequest{
			AppointmentID: "appt1",
			Amount:        8000,
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientBillAlreadyExists, customErr.ClientMessage)
		billRepo.AssertNotCalled(t, "CreateBill")
	})

	t.Run("bill opens pending with parties derived from the appointment", func(t *testing.T) {
		usecase, billRepo, appointmentRepo, patientRepo, doctorRepo, userRepo := newTestBillUsecase()

		expectPopulate(appointmentRepo, patientRepo, doctorRepo, userRepo)
		billRepo.On("FindByAppointmentID", mock.Anything, "appt1").Return(nil, nil)
		billRepo.On("CreateBill", mock.Anything, mock.MatchedBy(func(b *models.Bill) bool {
			return b.PaymentStatus == constvars.PaymentStatusPending && b.PatientID == "pat1" && b.DoctorID == "doc1"
		})).Return("bill1", nil)

		detail, err := usecase.CreateBill(context.Background(), &requests.CreateBillRequest{
			AppointmentID: "appt1",
			Amount:        8000,
		})
		require.NoError(t, err)

		assert.Equal(t, "bill1", detail.ID)
		assert.Equal(t, constvars.PaymentStatusPending, detail.PaymentStatus)
		assert.Nil(t, detail.PaidAt)
		billRepo.AssertExpectations(t)
	})
}

func TestPayBill(t *testing.T) {
	patientSession := &models.Session{UserID: "user-pat1", Role: constvars.RolePatient, ProfileID: "pat1"}

	t.Run("patient cannot pay a foreign bill", func(t *testing.T) {
		usecase, billRepo, _, _, _, _ := newTestBillUsecase()

		billRepo.On("FindByID", mock.Anything, "bill1").Return(&models.Bill{
			ID:            "bill1",
			PatientID:     "someone-else",
			PaymentStatus: constvars.PaymentStatusPending,
		}, nil)

		_, err := usecase.PayBill(context.Background(), patientSession, "bill1", &requests.PayBillRequest{})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientForeignBillPay, customErr.ClientMessage)
		billRepo.AssertNotCalled(t, "UpdateBill")
	})

	t.Run("paid bills cannot be paid again", func(t *testing.T) {
		usecase, billRepo, _, _, _, _ := newTestBillUsecase()

		paidAt := time.Now().UTC()
		billRepo.On("FindByID", mock.Anything, "bill1").Return(&models.Bill{
			ID:            "bill1",
			PatientID:     "pat1",
			PaymentStatus: constvars.PaymentStatusPaid,
			PaidAt:        &paidAt,
		}, nil)

		_, err := usecase.PayBill(context.Background(), patientSession, "bill1", &requests.PayBillRequest{})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientOnlyPendingBillsPayable, customErr.ClientMessage)
		billRepo.AssertNotCalled(t, "UpdateBill")
	})

	t.Run("failed bills are terminal too", func(t *testing.T) {
		usecase, billRepo, _, _, _, _ := newTestBillUsecase()

		billRepo.On("FindByID", mock.Anything, "bill1").Return(&models.Bill{
			ID:            "bill1",
			PatientID:     "pat1",
			PaymentStatus: "failed",
		}, nil)

		_, err := usecase.PayBill(context.Background(), patientSession, "bill1", &requests.PayBillRequest{})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientOnlyPendingBillsPayable, customErr.ClientMessage)
		billRepo.AssertNotCalled(t, "UpdateBill")
	})

	t.Run("pending bill settles with method defaulting to card", func(t *testing.T) {
		usecase, billRepo, appointmentRepo, patientRepo, doctorRepo, userRepo := newTestBillUsecase()

		expectPopulate(appointmentRepo, patientRepo, doctorRepo, userRepo)
		billRepo.On("FindByID", mock.Anything, "bill1").Return(&models.Bill{
			ID:            "bill1",
			AppointmentID: "appt1",
			PatientID:     "pat1",
			DoctorID:      "doc1",
			Amount:        8000,
			PaymentStatus: constvars.PaymentStatusPending,
		}, nil)
		billRepo.On("UpdateBill", mock.Anything, mock.MatchedBy(func(b *models.Bill) bool {
			return b.PaymentStatus == constvars.PaymentStatusPaid &&
				b.PaymentMethod == constvars.PaymentMethodCard &&
				b.PaidAt != nil &&
				b.PaymentReference != ""
		})).Return(nil)

		detail, err := usecase.PayBill(context.Background(), patientSession, "bill1", &requests.PayBillRequest{})
		require.NoError(t, err)

		assert.Equal(t, constvars.PaymentStatusPaid, detail.PaymentStatus)
		assert.NotNil(t, detail.PaidAt)
		assert.NotEmpty(t, detail.PaymentReference)
		billRepo.AssertExpectations(t)
	})
}
