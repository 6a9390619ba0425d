package appointments

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

func newTestUsecase() (AppointmentUsecase, *MockAppointmentRepository, *MockDoctorRepository, *MockPatientRepository, *MockUserRepository) {
	appointmentRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorRepository)
	patientRepo := new(MockPatientRepository)
	userRepo := new(MockUserRepository)
	usecase := NewAppointmentUsecase(appointmentRepo, doctorRepo, patientRepo, userRepo)
	return usecase, appointmentRepo, doctorRepo, patientRepo, userRepo
}

func mondayDoctor() *models.Doctor {
	return &models.Doctor{
		ID:              "doc1",
		UserID:          "user-doc1",
		Specialization:  "Cardiology",
		ConsultationFee: 8000,
		Availability: []models.AvailabilityWindow{
			{Day: "Mon", From: "09:00", To: "17:00"},
		},
	}
}

// 2026-01-05 is a Monday, 2026-01-04 a Sunday.
const (
	testMonday = "2026-01-05"
	testSunday = "2026-01-04"
)

func TestGetAvailability(t *testing.T) {
	t.Run("booked slots are carved out of the grid", func(t *testing.T) {
		usecase, appointmentRepo, doctorRepo, _, userRepo := newTestUsecase()

		doctorRepo.On("FindByID", mock.Anything, "doc1").Return(mondayDoctor(), nil)
		userRepo.On("FindByID", mock.Anything, "user-doc1").Return(&models.User{ID: "user-doc1", Name: "Dr. Asha Mehta"}, nil)
		appointmentRepo.On("FindBookedByDoctorAndDay", mock.Anything, "doc1", mock.Anything, mock.Anything).Return([]models.Appointment{
			{DoctorID: "doc1", Time: "09:30", Status: constvars.AppointmentStatusBooked},
			{DoctorID: "doc1", Time: "09:30", Status: constvars.AppointmentStatusBooked},
			{DoctorID: "doc1", Time: "14:00", Status: constvars.AppointmentStatusBooked},
		}, nil)

		response, err := usecase.GetAvailability(context.Background(), "doc1", testMonday)
		require.NoError(t, err)

		assert.True(t, response.Available)
		assert.Len(t, response.AllSlots, 16)
		assert.Equal(t, []string{"09:30", "14:00"}, response.BookedSlots, "duplicates collapse to one entry")
		assert.Len(t, response.TimeSlots, 14)
		assert.NotContains(t, response.TimeSlots, "09:30")
		assert.NotContains(t, response.TimeSlots, "14:00")
		assert.Equal(t, "Dr. Asha Mehta", response.Doctor.Name)
		assert.Equal(t, float64(8000), response.Doctor.ConsultationFee)
	})

	t.Run("fully booked day reports unavailable", func(t *testing.T) {
		usecase, appointmentRepo, doctorRepo, _, userRepo := newTestUsecase()

		allSlots, err := GenerateSlots("09:00", "17:00")
		require.NoError(t, err)
		booked := make([]models.Appointment, 0, len(allSlots))
		for _, slot := range allSlots {
			booked = append(booked, models.Appointment{DoctorID: "doc1", Time: slot, Status: constvars.AppointmentStatusBooked})
		}

		doctorRepo.On("FindByID", mock.Anything, "doc1").Return(mondayDoctor(), nil)
		userRepo.On("FindByID", mock.Anything, "user-doc1").Return(&models.User{ID: "user-doc1", Name: "Dr. Asha Mehta"}, nil)
		appointmentRepo.On("FindBookedByDoctorAndDay", mock.Anything, "doc1", mock.Anything, mock.Anything).Return(booked, nil)

		response, err := usecase.GetAvailability(context.Background(), "doc1", testMonday)
		require.NoError(t, err)

		assert.False(t, response.Available, "a window with no free slots is not available")
		assert.Empty(t, response.TimeSlots)
		assert.Len(t, response.BookedSlots, 16)
		assert.Len(t, response.AllSlots, 16)
	})

	t.Run("day without a window reports unavailability with empty slices", func(t *testing.T) {
		usecase, _, doctorRepo, _, userRepo := newTestUsecase()

		doctorRepo.On("FindByID", mock.Anything, "doc1").Return(mondayDoctor(), nil)
		userRepo.On("FindByID", mock.Anything, "user-doc1").Return(&models.User{ID: "user-doc1", Name: "Dr. Asha Mehta"}, nil)

		response, err := usecase.GetAvailability(context.Background(), "doc1", testSunday)
		require.NoError(t, err)

		assert.False(t, response.Available)
		assert.Equal(t, "Doctor is not available on Sun", response.Message)
		assert.NotNil(t, response.TimeSlots)
		assert.Empty(t, response.TimeSlots)
		assert.NotNil(t, response.AllSlots)
		assert.Empty(t, response.AllSlots)
	})

	t.Run("unknown doctor is a 404", func(t *testing.T) {
		usecase, _, doctorRepo, _, _ := newTestUsecase()

		doctorRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		_, err := usecase.GetAvailability(context.Background(), "missing", testMonday)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestBookAppointment(t *testing.T) {
	patientSession := &models.Session{UserID: "user-pat1", Role: constvars.RolePatient, ProfileID: "pat1"}

	t.Run("missing fields are rejected before any lookup", func(t *testing.T) {
		usecase, appointmentRepo, _, _, _ := newTestUsecase()

		_, err := usecase.BookAppointment(context.Background(), patientSession, &requests.BookAppointmentRequest{
			DoctorID: "doc1",
			Date:     testMonday,
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientBookingFieldsRequired, customErr.ClientMessage)
		appointmentRepo.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("pre-check rejects an already booked slot with a 400", func(t *testing.T) {
		usecase, appointmentRepo, doctorRepo, patientRepo, _ := newTestUsecase()

		patientRepo.On("FindByUserID", mock.Anything, "user-pat1").Return(&models.Patient{ID: "pat1", UserID: "user-pat1"}, nil)
		doctorRepo.On("FindByID", mock.Anything, "doc1").Return(mondayDoctor(), nil)
		appointmentRepo.On("ExistsBookedSlot", mock.Anything, "doc1", mock.Anything, mock.Anything, "09:30").Return(true, nil)

		_, err := usecase.BookAppointment(context.Background(), patientSession, &requests.BookAppointmentRequest{
			DoctorID: "doc1",
			Date:     testMonday,
			Time:     "09:30",
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientSlotNoLongerAvailable, customErr.ClientMessage)
		appointmentRepo.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("lost insert race surfaces the duplicate-key conflict", func(t *testing.T) {
		usecase, appointmentRepo, doctorRepo, patientRepo, _ := newTestUsecase()

		patientRepo.On("FindByUserID", mock.Anything, "user-pat1").Return(&models.Patient{ID: "pat1", UserID: "user-pat1"}, nil)
		doctorRepo.On("FindByID", mock.Anything, "doc1").Return(mondayDoctor(), nil)
		appointmentRepo.On("ExistsBookedSlot", mock.Anything, "doc1", mock.Anything, mock.Anything, "09:30").Return(false, nil)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).
			Return("", exceptions.ErrMongoDBDuplicateKey(nil, constvars.ErrClientSlotNoLongerAvailable))

		_, err := usecase.BookAppointment(context.Background(), patientSession, &requests.BookAppointmentRequest{
			DoctorID: "doc1",
			Date:     testMonday,
			Time:     "09:30",
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientSlotNoLongerAvailable, customErr.ClientMessage)
	})

	t.Run("missing patient profile is a 404", func(t *testing.T) {
		usecase, _, _, patientRepo, _ := newTestUsecase()

		patientRepo.On("FindByUserID", mock.Anything, "user-pat1").Return(nil, nil)

		_, err := usecase.BookAppointment(context.Background(), patientSession, &requests.BookAppointmentRequest{
			DoctorID: "doc1",
			Date:     testMonday,
			Time:     "09:30",
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientPatientProfileNotFound, customErr.ClientMessage)
	})

	t.Run("free slot books with status booked", func(t *testing.T) {
		usecase, appointmentRepo, doctorRepo, patientRepo, userRepo := newTestUsecase()

		patient := &models.Patient{ID: "pat1", UserID: "user-pat1"}
		patientRepo.On("FindByUserID", mock.Anything, "user-pat1").Return(patient, nil)
		patientRepo.On("FindByID", mock.Anything, "pat1").Return(patient, nil)
		doctorRepo.On("FindByID", mock.Anything, "doc1").Return(mondayDoctor(), nil)
		userRepo.On("FindByID", mock.Anything, "user-pat1").Return(&models.User{ID: "user-pat1", Name: "Aarav Sharma"}, nil)
		userRepo.On("FindByID", mock.Anything, "user-doc1").Return(&models.User{ID: "user-doc1", Name: "Dr. Asha Mehta"}, nil)
		appointmentRepo.On("ExistsBookedSlot", mock.Anything, "doc1", mock.Anything, mock.Anything, "10:00").Return(false, nil)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.Status == constvars.AppointmentStatusBooked && a.PatientID == "pat1" && a.Time == "10:00"
		})).Return("appt1", nil)

		detail, err := usecase.BookAppointment(context.Background(), patientSession, &requests.BookAppointmentRequest{
			DoctorID: "doc1",
			Date:     testMonday,
			Time:     "10:00",
			Reason:   "Routine checkup",
		})
		require.NoError(t, err)

		assert.Equal(t, "appt1", detail.ID)
		assert.Equal(t, constvars.AppointmentStatusBooked, detail.Status)
		require.NotNil(t, detail.Doctor)
		assert.Equal(t, "Dr. Asha Mehta", detail.Doctor.User.Name)
		appointmentRepo.AssertExpectations(t)
	})
}

func TestCancelAppointment(t *testing.T) {
	patientSession := &models.Session{UserID: "user-pat1", Role: constvars.RolePatient, ProfileID: "pat1"}

	t.Run("patient cannot cancel a foreign appointment", func(t *testing.T) {
		usecase, appointmentRepo, _, _, _ := newTestUsecase()

		appointmentRepo.On("FindByID", mock.Anything, "appt1").Return(&models.Appointment{
			ID:        "appt1",
			PatientID: "someone-else",
			Status:    constvars.AppointmentStatusBooked,
		}, nil)

		_, err := usecase.CancelAppointment(context.Background(), patientSession, "appt1", &requests.CancelAppointmentRequest{})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientForeignAppointmentCancel, customErr.ClientMessage)
		appointmentRepo.AssertNotCalled(t, "UpdateAppointment")
	})

	t.Run("completed appointments are terminal", func(t *testing.T) {
		usecase, appointmentRepo, _, _, _ := newTestUsecase()

		appointmentRepo.On("FindByID", mock.Anything, "appt1").Return(&models.Appointment{
			ID:        "appt1",
			PatientID: "pat1",
			Status:    constvars.AppointmentStatusCompleted,
		}, nil)

		_, err := usecase.CancelAppointment(context.Background(), patientSession, "appt1", &requests.CancelAppointmentRequest{})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientAppointmentNotCancellable, customErr.ClientMessage)
	})

	t.Run("receptionist may cancel any booked appointment", func(t *testing.T) {
		usecase, appointmentRepo, doctorRepo, patientRepo, userRepo := newTestUsecase()
		receptionistSession := &models.Session{UserID: "user-rec1", Role: constvars.RoleReceptionist, ProfileID: "rec1"}

		appointmentRepo.On("FindByID", mock.Anything, "appt1").Return(&models.Appointment{
			ID:        "appt1",
			PatientID: "pat1",
			DoctorID:  "doc1",
			Status:    constvars.AppointmentStatusBooked,
		}, nil)
		appointmentRepo.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.Status == constvars.AppointmentStatusCancelled && a.CancellationReason == "Patient requested"
		})).Return(nil)
		patientRepo.On("FindByID", mock.Anything, "pat1").Return(&models.Patient{ID: "pat1", UserID: "user-pat1"}, nil)
		doctorRepo.On("FindByID", mock.Anything, "doc1").Return(mondayDoctor(), nil)
		userRepo.On("FindByID", mock.Anything, "user-pat1").Return(&models.User{ID: "user-pat1", Name: "Aarav Sharma"}, nil)
		userRepo.On("FindByID", mock.Anything, "user-doc1").Return(&models.User{ID: "user-doc1", Name: "Dr. Asha Mehta"}, nil)

		detail, err := usecase.CancelAppointment(context.Background(), receptionistSession, "appt1", &requests.CancelAppointmentRequest{
			Reason: "Patient requested",
		})
		require.NoError(t, err)

		assert.Equal(t, constvars.AppointmentStatusCancelled, detail.Status)
		assert.Equal(t, "Patient requested", detail.CancellationReason)
		appointmentRepo.AssertExpectations(t)
	})
}

func TestUpdateStatusByDoctor(t *testing.T) {
	doctorSession := &models.Session{UserID: "user-doc1", Role: constvars.RoleDoctor, ProfileID: "doc1"}

	t.Run("only terminal statuses are accepted", func(t *testing.T) {
		usecase, _, _, _, _ := newTestUsecase()

		_, err := usecase.UpdateStatusByDoctor(context.Background(), doctorSession, "appt1", &requests.UpdateAppointmentStatusRequest{
			Status: constvars.AppointmentStatusBooked,
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidAppointmentStatus, customErr.ClientMessage)
	})

	t.Run("doctor cannot close out another doctor's appointment", func(t *testing.T) {
		usecase, appointmentRepo, doctorRepo, _, _ := newTestUsecase()

		doctorRepo.On("FindByUserID", mock.Anything, "user-doc1").Return(mondayDoctor(), nil)
		appointmentRepo.On("FindByID", mock.Anything, "appt1").Return(&models.Appointment{
			ID:       "appt1",
			DoctorID: "other-doctor",
			Status:   constvars.AppointmentStatusBooked,
		}, nil)

		_, err := usecase.UpdateStatusByDoctor(context.Background(), doctorSession, "appt1", &requests.UpdateAppointmentStatusRequest{
			Status: constvars.AppointmentStatusCompleted,
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientForeignAppointmentUpdate, customErr.ClientMessage)
	})
}

func TestUpdateAppointment(t *testing.T) {
	t.Run("staff override can reassign the doctor", func(t *testing.T) {
		usecase, appointmentRepo, doctorRepo, patientRepo, userRepo := newTestUsecase()

		appointmentRepo.On("FindByID", mock.Anything, "appt1").Return(&models.Appointment{
			ID:        "appt1",
			PatientID: "pat1",
			DoctorID:  "doc1",
			Time:      "10:00",
			Status:    constvars.AppointmentStatusBooked,
		}, nil)
		appointmentRepo.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.DoctorID == "doc2" && a.PatientID == "pat1"
		})).Return(nil)
		patientRepo.On("FindByID", mock.Anything, "pat1").Return(&models.Patient{ID: "pat1", UserID: "user-pat1"}, nil)
		doctorRepo.On("FindByID", mock.Anything, "doc2").Return(&models.Doctor{ID: "doc2", UserID: "user-doc2", Specialization: "Neurology"}, nil)
		userRepo.On("FindByID", mock.Anything, "user-pat1").Return(&models.User{ID: "user-pat1", Name: "Aarav Sharma"}, nil)
		userRepo.On("FindByID", mock.Anything, "user-doc2").Return(&models.User{ID: "user-doc2", Name: "Dr. Rohan Iyer"}, nil)

		newDoctor := "doc2"
		detail, err := usecase.UpdateAppointment(context.Background(), "appt1", &requests.UpdateAppointmentRequest{
			DoctorID: &newDoctor,
		})
		require.NoError(t, err)

		assert.Equal(t, "doc2", detail.Doctor.ID)
		assert.Equal(t, "Dr. Rohan Iyer", detail.Doctor.User.Name)
		appointmentRepo.AssertExpectations(t)
	})

	t.Run("unknown appointment is a 404", func(t *testing.T) {
		usecase, appointmentRepo, _, _, _ := newTestUsecase()

		appointmentRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		_, err := usecase.UpdateAppointment(context.Background(), "missing", &requests.UpdateAppointmentRequest{})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
