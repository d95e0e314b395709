package appointments

import (
	"context"

	"doctorportal-service/internal/app/contracts"
	"doctorportal-service/internal/app/models"
	"doctorportal-service/internal/pkg/constvars"
	"doctorportal-service/internal/pkg/dto/responses"
	"doctorportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentOptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentOptionMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentOptionRepository {
	return &AppointmentOptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointmentOptions),
	}
}

func (r *AppointmentOptionMongoRepository) FindAll(ctx context.Context) ([]models.AppointmentOption, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointmentOptions := []models.AppointmentOption{}
	if err := cursor.All(ctx, &appointmentOptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointmentOptions, nil
}

func (r *AppointmentOptionMongoRepository) FindAllNames(ctx context.Context) ([]responses.Specialty, error) {
	findOptions := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	specialties := []responses.Specialty{}
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return specialties, nil
}
