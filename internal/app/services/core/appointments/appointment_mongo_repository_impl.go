package appointments

import (
	"context"
	"log"
	"time"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

// NewAppointmentMongoRepository also installs the unique partial index that
// closes the check-then-insert booking race: two concurrent inserts for the
// same doctor, day and slot cannot both land while status is "booked".
func NewAppointmentMongoRepository(db *mongo.Client, dbName string) AppointmentRepository {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionAppointments)
	_, err := collection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctorId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "time", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": constvars.AppointmentStatusBooked}),
	})
	if err != nil {
		log.Fatalf("Failed to create appointment slot index: %s", err.Error())
	}
	return &AppointmentMongoRepository{Collection: collection}
}

func (repo *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrMongoDBDuplicateKey(err, constvars.ErrClientSlotNoLongerAvailable)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var appointment models.Appointment
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return repo.findByFilter(ctx, bson.M{})
}

func (repo *AppointmentMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return repo.findByFilter(ctx, bson.M{"patientId": patientID})
}

func (repo *AppointmentMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return repo.findByFilter(ctx, bson.M{"doctorId": doctorID})
}

func (repo *AppointmentMongoRepository) FindBookedByDoctorAndDay(ctx context.Context, doctorID string, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"status":   constvars.AppointmentStatusBooked,
		"date":     bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	return repo.findByFilter(ctx, filter)
}

func (repo *AppointmentMongoRepository) ExistsBookedSlot(ctx context.Context, doctorID string, dayStart, dayEnd time.Time, slot string) (bool, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"time":     slot,
		"status":   constvars.AppointmentStatusBooked,
		"date":     bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	count, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count > 0, nil
}

func (repo *AppointmentMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, filter, opts)
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

func (repo *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	objectID, err := primitive.ObjectIDFromHex(appointment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"patientId":          appointment.PatientID,
			"doctorId":           appointment.DoctorID,
			"receptionistId":     appointment.ReceptionistID,
			"date":               appointment.Date,
			"time":               appointment.Time,
			"status":             appointment.Status,
			"reason":             appointment.Reason,
			"notes":              appointment.Notes,
			"cancellationReason": appointment.CancellationReason,
			"updatedAt":          appointment.UpdatedAt,
		},
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrMongoDBDuplicateKey(err, constvars.ErrClientSlotNoLongerAvailable)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
