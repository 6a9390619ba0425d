package doctors

import (
	"context"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (repo *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var doctor models.Doctor
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (repo *DoctorMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := repo.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (repo *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return repo.findByFilter(ctx, bson.M{})
}

// FindAvailable returns doctors a patient can actually book: at least one
// weekly window and a positive consultation fee.
func (repo *DoctorMongoRepository) FindAvailable(ctx context.Context) ([]models.Doctor, error) {
	filter := bson.M{
		"availability":    bson.M{"$exists": true, "$ne": bson.A{}},
		"consultationFee": bson.M{"$gt": 0},
	}
	return repo.findByFilter(ctx, filter)
}

func (repo *DoctorMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Doctor, error) {
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}

func (repo *DoctorMongoRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	objectID, err := primitive.ObjectIDFromHex(doctor.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"specialization":  doctor.Specialization,
			"qualification":   doctor.Qualification,
			"experienceYears": doctor.ExperienceYears,
			"contactNumber":   doctor.ContactNumber,
			"consultationFee": doctor.ConsultationFee,
			"department":      doctor.Department,
			"availability":    doctor.Availability,
			"updatedAt":       doctor.UpdatedAt,
		},
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *DoctorMongoRepository) DeleteByID(ctx context.Context, doctorID string) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
