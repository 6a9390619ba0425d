package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"hms-service/internal/app/config"
	"hms-service/internal/app/drivers/database"
	"hms-service/internal/app/models"
	"hms-service/internal/app/services/core/appointments"
	"hms-service/internal/app/services/core/billing"
	"hms-service/internal/app/services/core/doctors"
	"hms-service/internal/app/services/core/patients"
	"hms-service/internal/app/services/core/prescriptions"
	"hms-service/internal/app/services/core/receptionists"
	"hms-service/internal/app/services/core/users"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/utils"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// Deterministic demo dataset: one admin, two receptionists, four doctors with
// five patients each, and a mix of booked, completed and cancelled
// appointments. Every account logs in with the same demo password.
const seedPassword = "password123"

var seedCollections = []string{
	constvars.MongoCollectionUsers,
	constvars.MongoCollectionDoctors,
	constvars.MongoCollectionPatients,
	constvars.MongoCollectionReceptionists,
	constvars.MongoCollectionAppointments,
	constvars.MongoCollectionPrescriptions,
	constvars.MongoCollectionBills,
}

type seedDoctor struct {
	name           string
	specialization string
	department     string
	qualification  string
	experience     int
	fee            float64
}

var seedDoctors = []seedDoctor{
	{"Dr. Asha Mehta", "Cardiology", "Cardiology", "MD, DM Cardiology", 14, 8000},
	{"Dr. Rohan Iyer", "Neurology", "Neurology", "MD, DM Neurology", 9, 1000},
	{"Dr. Kavita Rao", "Orthopedics", "Orthopedics", "MS Orthopedics", 11, 6000},
	{"Dr. Sameer Khan", "Pediatrics", "Pediatrics", "MD Pediatrics", 7, 7000},
}

var patientNames = []string{
	"Aarav Sharma", "Diya Patel", "Vihaan Gupta", "Ananya Singh", "Arjun Kumar",
	"Ishita Verma", "Reyansh Joshi", "Myra Nair", "Aditya Menon", "Saanvi Desai",
	"Kabir Malhotra", "Aadhya Reddy", "Vivaan Choudhury", "Kiara Bose", "Ayaan Shah",
	"Navya Kapoor", "Dhruv Saxena", "Anika Pillai", "Yuvraj Sinha", "Pari Bhatt",
}

var bloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

var visitReasons = []string{
	"Routine checkup",
	"Persistent headache",
	"Chest discomfort",
	"Joint pain follow-up",
	"Fever and fatigue",
	"Annual physical",
}

var seedMedications = []models.Medication{
	{Name: "Paracetamol", Dosage: "500mg", Duration: "5 days", Instructions: "After meals"},
	{Name: "Amoxicillin", Dosage: "250mg", Duration: "7 days", Instructions: "Twice daily"},
	{Name: "Ibuprofen", Dosage: "400mg", Duration: "3 days", Instructions: "With food"},
	{Name: "Cetirizine", Dosage: "10mg", Duration: "10 days", Instructions: "At bedtime"},
}

var weekdayAvailability = []models.AvailabilityWindow{
	{Day: "Mon", From: "09:00", To: "17:00"},
	{Day: "Tue", From: "09:00", To: "17:00"},
	{Day: "Wed", From: "09:00", To: "17:00"},
	{Day: "Thu", From: "09:00", To: "17:00"},
	{Day: "Fri", From: "09:00", To: "17:00"},
	{Day: "Sat", From: "10:00", To: "14:00"},
}

func main() {
	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)
	defer mongoDB.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	wipeCollections(ctx, mongoDB, driverConfig.MongoDB.DbName)

	dbName := driverConfig.MongoDB.DbName
	userRepo := users.NewUserMongoRepository(mongoDB, dbName)
	doctorRepo := doctors.NewDoctorMongoRepository(mongoDB, dbName)
	patientRepo := patients.NewPatientMongoRepository(mongoDB, dbName)
	receptionistRepo := receptionists.NewReceptionistMongoRepository(mongoDB, dbName)
	appointmentRepo := appointments.NewAppointmentMongoRepository(mongoDB, dbName)
	prescriptionRepo := prescriptions.NewPrescriptionMongoRepository(mongoDB, dbName)
	billRepo := billing.NewBillMongoRepository(mongoDB, dbName)

	rng := rand.New(rand.NewSource(42))
	now := time.Now().UTC()

	hashed, err := utils.HashPassword(seedPassword)
	if err != nil {
		logrus.Fatalf("Failed to hash seed password: %v", err)
	}

	createUser := func(name, email, role, phone string) string {
		user := &models.User{
			Name:     name,
			Email:    email,
			Password: hashed,
			Role:     role,
			Phone:    phone,
		}
		user.Touch(now)
		id, err := userRepo.CreateUser(ctx, user)
		if err != nil {
			logrus.Fatalf("Failed to seed user %s: %v", email, err)
		}
		return id
	}

	// Admin
	createUser("Admin", "admin@hospital.com", constvars.RoleAdmin, phone(rng))
	logrus.Println("Seeded admin account")

	// Receptionists
	for i, shift := range []string{constvars.ShiftMorning, constvars.ShiftNight} {
		name := fmt.Sprintf("Receptionist %d", i+1)
		userID := createUser(name, emailFor(name), constvars.RoleReceptionist, phone(rng))
		receptionist := &models.Receptionist{
			UserID:          userID,
			Shift:           shift,
			ShiftTimings:    models.ShiftTimingsFor(shift),
			Department:      "Front Desk",
			Qualification:   "B.Com",
			ExperienceYears: 2 + i,
		}
		receptionist.Touch(now)
		if _, err := receptionistRepo.CreateReceptionist(ctx, receptionist); err != nil {
			logrus.Fatalf("Failed to seed receptionist: %v", err)
		}
	}
	logrus.Println("Seeded 2 receptionists")

	// Doctors
	doctorIDs := make([]string, 0, len(seedDoctors))
	for _, d := range seedDoctors {
		userID := createUser(d.name, emailFor(d.name), constvars.RoleDoctor, phone(rng))
		doctor := &models.Doctor{
			UserID:          userID,
			Specialization:  d.specialization,
			Qualification:   d.qualification,
			ExperienceYears: d.experience,
			ContactNumber:   phone(rng),
			ConsultationFee: d.fee,
			Department:      d.department,
			Availability:    weekdayAvailability,
		}
		doctor.Touch(now)
		doctorID, err := doctorRepo.CreateDoctor(ctx, doctor)
		if err != nil {
			logrus.Fatalf("Failed to seed doctor %s: %v", d.name, err)
		}
		doctorIDs = append(doctorIDs, doctorID)
	}
	logrus.Printf("Seeded %d doctors", len(doctorIDs))

	// Patients, five per doctor
	patientIDs := make([]string, 0, len(patientNames))
	for i, name := range patientNames {
		userID := createUser(name, emailFor(name), constvars.RolePatient, phone(rng))
		dob := time.Date(1970+rng.Intn(40), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
		gender := "female"
		if i%2 == 0 {
			gender = "male"
		}
		patient := &models.Patient{
			UserID:        userID,
			Gender:        gender,
			DateOfBirth:   &dob,
			ContactNumber: phone(rng),
			Address: models.Address{
				Street:  fmt.Sprintf("%d MG Road", 10+i),
				City:    "Mumbai",
				State:   "Maharashtra",
				Pincode: "400001",
			},
			EmergencyContact: models.EmergencyContact{
				Name:     "Family Contact",
				Phone:    phone(rng),
				Relation: "spouse",
			},
			MedicalHistory: []string{},
			BloodGroup:     bloodGroups[rng.Intn(len(bloodGroups))],
		}
		patient.Touch(now)
		patientID, err := patientRepo.CreatePatient(ctx, patient)
		if err != nil {
			logrus.Fatalf("Failed to seed patient %s: %v", name, err)
		}
		patientIDs = append(patientIDs, patientID)
	}
	logrus.Printf("Seeded %d patients", len(patientIDs))

	slots, err := appointments.GenerateSlots("09:00", "17:00")
	if err != nil {
		logrus.Fatalf("Failed to generate slot grid: %v", err)
	}

	appointmentCount := 0
	for di, doctorID := range doctorIDs {
		assigned := patientIDs[di*5 : di*5+5]
		fee := seedDoctors[di].fee

		// Upcoming booked appointments
		for i, patientID := range assigned {
			date := upcomingWorkday(now, i+1)
			appointment := &models.Appointment{
				PatientID: patientID,
				DoctorID:  doctorID,
				Date:      date,
				Time:      slots[i],
				Status:    constvars.AppointmentStatusBooked,
				Reason:    visitReasons[rng.Intn(len(visitReasons))],
			}
			appointment.Touch(now)
			if _, err := appointmentRepo.CreateAppointment(ctx, appointment); err != nil {
				logrus.Fatalf("Failed to seed booked appointment: %v", err)
			}
			appointmentCount++
		}

		// Completed past appointments with a prescription and a paid bill each
		for i := 0; i < 8; i++ {
			patientID := assigned[i%len(assigned)]
			date := midnight(now.AddDate(0, 0, -(i + 1)))
			appointment := &models.Appointment{
				PatientID: patientID,
				DoctorID:  doctorID,
				Date:      date,
				Time:      slots[i%len(slots)],
				Status:    constvars.AppointmentStatusCompleted,
				Reason:    visitReasons[rng.Intn(len(visitReasons))],
				Notes:     "Patient responded well to treatment",
			}
			appointment.Touch(now)
			appointmentID, err := appointmentRepo.CreateAppointment(ctx, appointment)
			if err != nil {
				logrus.Fatalf("Failed to seed completed appointment: %v", err)
			}
			appointmentCount++

			prescription := &models.Prescription{
				AppointmentID: appointmentID,
				DoctorID:      doctorID,
				PatientID:     patientID,
				Medications:   []models.Medication{seedMedications[rng.Intn(len(seedMedications))]},
				Notes:         "Review after course completion",
				CreatedAt:     date,
			}
			if _, err := prescriptionRepo.CreatePrescription(ctx, prescription); err != nil {
				logrus.Fatalf("Failed to seed prescription: %v", err)
			}

			paidAt := date.Add(10 * time.Hour)
			bill := &models.Bill{
				AppointmentID:    appointmentID,
				PatientID:        patientID,
				DoctorID:         doctorID,
				Amount:           fee,
				PaymentStatus:    constvars.PaymentStatusPaid,
				PaymentMethod:    constvars.PaymentMethodCard,
				PaidAt:           &paidAt,
				PaymentReference: fmt.Sprintf("pay_seed_%d_%d", di, i),
			}
			bill.Touch(date)
			if _, err := billRepo.CreateBill(ctx, bill); err != nil {
				logrus.Fatalf("Failed to seed bill: %v", err)
			}
		}

		// Cancelled appointments
		for i := 0; i < 2; i++ {
			patientID := assigned[(i+2)%len(assigned)]
			appointment := &models.Appointment{
				PatientID:          patientID,
				DoctorID:           doctorID,
				Date:               midnight(now.AddDate(0, 0, -(10 + i))),
				Time:               slots[(i+10)%len(slots)],
				Status:             constvars.AppointmentStatusCancelled,
				Reason:             visitReasons[rng.Intn(len(visitReasons))],
				CancellationReason: "Patient could not attend",
			}
			appointment.Touch(now)
			if _, err := appointmentRepo.CreateAppointment(ctx, appointment); err != nil {
				logrus.Fatalf("Failed to seed cancelled appointment: %v", err)
			}
			appointmentCount++
		}
	}
	logrus.Printf("Seeded %d appointments with prescriptions and bills", appointmentCount)
	logrus.Printf("All accounts use password %q", seedPassword)
}

func wipeCollections(ctx context.Context, client *mongo.Client, dbName string) {
	for _, name := range seedCollections {
		if err := client.Database(dbName).Collection(name).Drop(ctx); err != nil {
			logrus.Fatalf("Failed to drop collection %s: %v", name, err)
		}
	}
	logrus.Println("Dropped existing collections")
}

func emailFor(name string) string {
	local := strings.ToLower(name)
	local = strings.TrimPrefix(local, "dr. ")
	local = strings.ReplaceAll(local, " ", ".")
	return local + "@hospital.com"
}

func phone(rng *rand.Rand) string {
	return fmt.Sprintf("+91-9%09d", rng.Intn(1000000000))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// upcomingWorkday returns UTC midnight of the n-th day after t, skipping
// Sundays so seeded bookings land inside the doctors' availability.
func upcomingWorkday(t time.Time, n int) time.Time {
	date := midnight(t.AddDate(0, 0, n))
	if date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, 1)
	}
	return date
}
