package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/doctors-portal-api/internal/database"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) (models.InsertResult, error)
	List(ctx context.Context) ([]models.Doctor, error)
}

type doctorMongoRepository struct {
	collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Database) DoctorRepository {
	return &doctorMongoRepository{collection: db.Collection(database.DoctorsCollection)}
}

func (r *doctorMongoRepository) Create(ctx context.Context, doctor *models.Doctor) (models.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, doctor)
	if err != nil {
		return models.InsertResult{}, err
	}
	return toInsertResult(res), nil
}

func (r *doctorMongoRepository) List(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}
