package patients

import (
	"context"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (repo *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var patient models.Patient
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (repo *PatientMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	var patient models.Patient
	err := repo.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (repo *PatientMongoRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := make([]models.Patient, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

func (repo *PatientMongoRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	objectID, err := primitive.ObjectIDFromHex(patient.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"gender":           patient.Gender,
			"dateOfBirth":      patient.DateOfBirth,
			"contactNumber":    patient.ContactNumber,
			"address":          patient.Address,
			"emergencyContact": patient.EmergencyContact,
			"medicalHistory":   patient.MedicalHistory,
			"bloodGroup":       patient.BloodGroup,
			"updatedAt":        patient.UpdatedAt,
		},
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *PatientMongoRepository) DeleteByID(ctx context.Context, patientID string) error {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
