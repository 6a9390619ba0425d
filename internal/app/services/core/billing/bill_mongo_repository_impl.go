package billing

import (
	"context"
	"log"

	"hms-service/internal/app/models"
	"hms-service/internal/pkg/constvars"
	"hms-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BillMongoRepository struct {
	Collection *mongo.Collection
}

// NewBillMongoRepository installs the unique appointmentId index so that at
// most one bill per appointment survives concurrent creation.
func NewBillMongoRepository(db *mongo.Client, dbName string) BillRepository {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionBills)
	_, err := collection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "appointmentId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Failed to create bill appointment index: %s", err.Error())
	}
	return &BillMongoRepository{Collection: collection}
}

func (repo *BillMongoRepository) CreateBill(ctx context.Context, bill *models.Bill) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, bill)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrMongoDBDuplicateKey(err, constvars.ErrClientBillAlreadyExists)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *BillMongoRepository) FindByID(ctx context.Context, billID string) (*models.Bill, error) {
	objectID, err := primitive.ObjectIDFromHex(billID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var bill models.Bill
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&bill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &bill, nil
}

func (repo *BillMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Bill, error) {
	var bill models.Bill
	err := repo.Collection.FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&bill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &bill, nil
}

func (repo *BillMongoRepository) FindAll(ctx context.Context) ([]models.Bill, error) {
	return repo.findByFilter(ctx, bson.M{})
}

func (repo *BillMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Bill, error) {
	return repo.findByFilter(ctx, bson.M{"patientId": patientID})
}

func (repo *BillMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Bill, error) {
	return repo.findByFilter(ctx, bson.M{"doctorId": doctorID})
}

func (repo *BillMongoRepository) findByFilter(ctx context.Context, filter bson.M) ([]models.Bill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bills := make([]models.Bill, 0)
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bills, nil
}

func (repo *BillMongoRepository) UpdateBill(ctx context.Context, bill *models.Bill) error {
	objectID, err := primitive.ObjectIDFromHex(bill.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"amount":            bill.Amount,
			"paymentStatus":     bill.PaymentStatus,
			"paymentMethod":     bill.PaymentMethod,
			"paidAt":            bill.PaidAt,
			"paymentReference":  bill.PaymentReference,
			"razorpayOrderId":   bill.RazorpayOrderID,
			"razorpayPaymentId": bill.RazorpayPaymentID,
			"razorpaySignature": bill.RazorpaySignature,
			"updatedAt":         bill.UpdatedAt,
		},
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *BillMongoRepository) DeleteByID(ctx context.Context, billID string) error {
	objectID, err := primitive.ObjectIDFromHex(billID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
