package receptionists

import (
	"context"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReceptionistMongoRepository struct {
	Collection *mongo.Collection
}

func NewReceptionistMongoRepository(db *mongo.Client, dbName string) ReceptionistRepository {
	return &ReceptionistMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReceptionists),
	}
}

func (repo *ReceptionistMongoRepository) CreateReceptionist(ctx context.Context, receptionist *models.Receptionist) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, receptionist)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *ReceptionistMongoRepository) FindByID(ctx context.Context, receptionistID string) (*models.Receptionist, error) {
	objectID, err := primitive.ObjectIDFromHex(receptionistID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var receptionist models.Receptionist
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&receptionist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &receptionist, nil
}

func (repo *ReceptionistMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Receptionist, error) {
	var receptionist models.Receptionist
	err := repo.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&receptionist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &receptionist, nil
}

func (repo *ReceptionistMongoRepository) FindAll(ctx context.Context) ([]models.Receptionist, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	receptionists := make([]models.Receptionist, 0)
	if err := cursor.All(ctx, &receptionists); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return receptionists, nil
}

func (repo *ReceptionistMongoRepository) UpdateReceptionist(ctx context.Context, receptionist *models.Receptionist) error {
	objectID, err := primitive.ObjectIDFromHex(receptionist.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"shift":           receptionist.Shift,
			"shiftTimings":    receptionist.ShiftTimings,
			"department":      receptionist.Department,
			"qualification":   receptionist.Qualification,
			"experienceYears": receptionist.ExperienceYears,
			"updatedAt":       receptionist.UpdatedAt,
		},
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *ReceptionistMongoRepository) DeleteByID(ctx context.Context, receptionistID string) error {
	objectID, err := primitive.ObjectIDFromHex(receptionistID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
