package responses

import "time"

// AdminDashboardStats is the admin overview aggregate.
type AdminDashboardStats struct {
	Totals             EntityTotals        `json:"totals"`
	TodayAppointments  int64               `json:"todayAppointments"`
	UpcomingAppointments int64             `json:"upcomingAppointments"`
	StatusBreakdown    map[string]int64    `json:"statusBreakdown"`
	Revenue            RevenueStats        `json:"revenue"`
	RecentAppointments []RecentAppointment `json:"recentAppointments"`
}

type EntityTotals struct {
	Doctors       int64 `json:"doctors"`
	Patients      int64 `json:"patients"`
	Receptionists int64 `json:"receptionists"`
	Appointments  int64 `json:"appointments"`
}

type RevenueStats struct {
	TotalBilled    float64 `json:"totalBilled"`
	TotalCollected float64 `json:"totalCollected"`
	PendingAmount  float64 `json:"pendingAmount"`
	PaidBills      int64   `json:"paidBills"`
	PendingBills   int64   `json:"pendingBills"`
}

type RecentAppointment struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Time   string    `json:"time"`
	Status string    `json:"status"`
}

// DoctorDashboardStats backs the doctor home screen. ConsultationHours counts
// 30 minutes per completed appointment.
type DoctorDashboardStats struct {
	TodayAppointments    int64   `json:"todayAppointments"`
	TotalAppointments    int64   `json:"totalAppointments"`
	UniquePatients       int64   `json:"uniquePatients"`
	PrescriptionsWritten int64   `json:"prescriptionsWritten"`
	ConsultationHours    float64 `json:"consultationHours"`
}

type PatientDashboardStats struct {
	UpcomingAppointments int64   `json:"upcomingAppointments"`
	TotalAppointments    int64   `json:"totalAppointments"`
	Prescriptions        int64   `json:"prescriptions"`
	PendingBills         int64   `json:"pendingBills"`
	PendingAmount        float64 `json:"pendingAmount"`
}

// AdminUserView is a user joined with its role profile through the role-keyed
// dispatch; Profile is nil for admins and profileless accounts.
type AdminUserView struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      string      `json:"role"`
	Phone     string      `json:"phone,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	Profile   interface{} `json:"profile,omitempty"`
}
