package reports

import (
	"context"
	"time"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/dto/responses"
	"hms-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportMongoRepository reads across collections; it owns no writes and no
// indexes of its own.
type ReportMongoRepository struct {
	Doctors       *mongo.Collection
	Patients      *mongo.Collection
	Receptionists *mongo.Collection
	Appointments  *mongo.Collection
	Prescriptions *mongo.Collection
	Bills         *mongo.Collection
}

func NewReportMongoRepository(db *mongo.Client, dbName string) ReportRepository {
	database := db.Database(dbName)
	return &ReportMongoRepository{
		Doctors:       database.Collection(constvars.MongoCollectionDoctors),
		Patients:      database.Collection(constvars.MongoCollectionPatients),
		Receptionists: database.Collection(constvars.MongoCollectionReceptionists),
		Appointments:  database.Collection(constvars.MongoCollectionAppointments),
		Prescriptions: database.Collection(constvars.MongoCollectionPrescriptions),
		Bills:         database.Collection(constvars.MongoCollectionBills),
	}
}

func (repo *ReportMongoRepository) CountDoctors(ctx context.Context) (int64, error) {
	return repo.count(ctx, repo.Doctors, bson.M{})
}

func (repo *ReportMongoRepository) CountPatients(ctx context.Context) (int64, error) {
	return repo.count(ctx, repo.Patients, bson.M{})
}

func (repo *ReportMongoRepository) CountReceptionists(ctx context.Context) (int64, error) {
	return repo.count(ctx, repo.Receptionists, bson.M{})
}

func (repo *ReportMongoRepository) CountAppointments(ctx context.Context) (int64, error) {
	return repo.count(ctx, repo.Appointments, bson.M{})
}

func (repo *ReportMongoRepository) CountAppointmentsBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return repo.count(ctx, repo.Appointments, bson.M{
		"date": bson.M{"$gte": start, "$lt": end},
	})
}

// CountUpcomingAppointments counts appointments on or after the given day that
// are still live, cancelled and completed ones do not count.
func (repo *ReportMongoRepository) CountUpcomingAppointments(ctx context.Context, from time.Time) (int64, error) {
	return repo.count(ctx, repo.Appointments, bson.M{
		"date": bson.M{"$gte": from},
		"status": bson.M{"$in": []string{
			constvars.AppointmentStatusPending,
			constvars.AppointmentStatusBooked,
			constvars.AppointmentStatusConfirmed,
		}},
	})
}

func (repo *ReportMongoRepository) AppointmentStatusBreakdown(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := repo.Appointments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	breakdown := make(map[string]int64, len(rows))
	for _, row := range rows {
		breakdown[row.Status] = row.Count
	}
	return breakdown, nil
}

func (repo *ReportMongoRepository) RevenueStats(ctx context.Context) (*responses.RevenueStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":    "$paymentStatus",
			"amount": bson.M{"$sum": "$amount"},
			"count":  bson.M{"$sum": 1},
		}}},
	}
	cursor, err := repo.Bills.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string  `bson:"_id"`
		Amount float64 `bson:"amount"`
		Count  int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	stats := &responses.RevenueStats{}
	for _, row := range rows {
		stats.TotalBilled += row.Amount
		switch row.Status {
		case constvars.PaymentStatusPaid:
			stats.TotalCollected += row.Amount
			stats.PaidBills += row.Count
		case constvars.PaymentStatusPending:
			stats.PendingAmount += row.Amount
			stats.PendingBills += row.Count
		}
	}
	return stats, nil
}

func (repo *ReportMongoRepository) RecentAppointments(ctx context.Context, since time.Time, limit int64) ([]models.Appointment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := repo.Appointments.Find(ctx, bson.M{"createdAt": bson.M{"$gte": since}}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *ReportMongoRepository) CountAppointmentsByDoctor(ctx context.Context, doctorID string) (int64, error) {
	return repo.count(ctx, repo.Appointments, bson.M{"doctorId": doctorID})
}

func (repo *ReportMongoRepository) CountAppointmentsByDoctorBetween(ctx context.Context, doctorID string, start, end time.Time) (int64, error) {
	return repo.count(ctx, repo.Appointments, bson.M{
		"doctorId": doctorID,
		"date":     bson.M{"$gte": start, "$lt": end},
	})
}

func (repo *ReportMongoRepository) CountCompletedAppointmentsByDoctor(ctx context.Context, doctorID string) (int64, error) {
	return repo.count(ctx, repo.Appointments, bson.M{
		"doctorId": doctorID,
		"status":   constvars.AppointmentStatusCompleted,
	})
}

func (repo *ReportMongoRepository) CountDistinctPatientsByDoctor(ctx context.Context, doctorID string) (int64, error) {
	patientIDs, err := repo.Appointments.Distinct(ctx, "patientId", bson.M{"doctorId": doctorID})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return int64(len(patientIDs)), nil
}

func (repo *ReportMongoRepository) CountPrescriptionsByDoctor(ctx context.Context, doctorID string) (int64, error) {
	return repo.count(ctx, repo.Prescriptions, bson.M{"doctorId": doctorID})
}

func (repo *ReportMongoRepository) CountAppointmentsByPatient(ctx context.Context, patientID string) (int64, error) {
	return repo.count(ctx, repo.Appointments, bson.M{"patientId": patientID})
}

func (repo *ReportMongoRepository) CountUpcomingAppointmentsByPatient(ctx context.Context, patientID string, from time.Time) (int64, error) {
	return repo.count(ctx, repo.Appointments, bson.M{
		"patientId": patientID,
		"date":      bson.M{"$gte": from},
		"status": bson.M{"$in": []string{
			constvars.AppointmentStatusPending,
			constvars.AppointmentStatusBooked,
			constvars.AppointmentStatusConfirmed,
		}},
	})
}

func (repo *ReportMongoRepository) CountPrescriptionsByPatient(ctx context.Context, patientID string) (int64, error) {
	return repo.count(ctx, repo.Prescriptions, bson.M{"patientId": patientID})
}

func (repo *ReportMongoRepository) PendingBillsByPatient(ctx context.Context, patientID string) (int64, float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"patientId":     patientID,
			"paymentStatus": constvars.PaymentStatusPending,
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":    nil,
			"amount": bson.M{"$sum": "$amount"},
			"count":  bson.M{"$sum": 1},
		}}},
	}
	cursor, err := repo.Bills.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Amount float64 `bson:"amount"`
		Count  int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].Count, rows[0].Amount, nil
}

func (repo *ReportMongoRepository) count(ctx context.Context, collection *mongo.Collection, filter bson.M) (int64, error) {
	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return total, nil
}
