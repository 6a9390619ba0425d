package prescriptions

import (
	"context"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) PrescriptionRepository {
	return &PrescriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptions),
	}
}

func (repo *PrescriptionMongoRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, prescription)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *PrescriptionMongoRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var prescription models.Prescription
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (repo *PrescriptionMongoRepository) FindAll(ctx context.Context) ([]models.Prescription, error) {
	return repo.findByFilter(ctx, bson.M{})
}

func (repo *PrescriptionMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error) {
	return repo.findByFilter(ctx, bson.M{"patientId": patientID})
}

func (repo *PrescriptionMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	return repo.findByFilter(ctx, bson.M{"doctorId": doctorID})
}

func (repo *PrescriptionMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Prescription, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	prescriptions := make([]models.Prescription, 0)
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return prescriptions, nil
}

func (repo *PrescriptionMongoRepository) UpdatePrescription(ctx context.Context, prescription *models.Prescription) error {
	objectID, err := primitive.ObjectIDFromHex(prescription.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"medications": prescription.Medications,
			"notes":       prescription.Notes,
		},
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *PrescriptionMongoRepository) DeleteByID(ctx context.Context, prescriptionID string) error {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
