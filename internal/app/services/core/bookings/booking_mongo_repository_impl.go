package bookings

import (
	"context"

	"doctorportal-service/internal/app/contracts"
	"doctorportal-service/internal/app/models"
	"doctorportal-service/internal/pkg/constvars"
	"doctorportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (r *BookingMongoRepository) FindByAppointmentDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"appointmentDate": date})
}

func (r *BookingMongoRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *BookingMongoRepository) FindByOwnerAndTreatmentOnDate(ctx context.Context, date, email, treatment string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{
		"appointmentDate": date,
		"email":           email,
		"treatment":       treatment,
	})
}

func (r *BookingMongoRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	result, err := r.Collection.InsertOne(ctx, booking)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BookingMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}
