package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/doctors-portal-api/internal/database"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

// AppointmentRepository defines the store operations behind the appointment routes.
type AppointmentRepository interface {
	// Create inserts the appointment as given.
	Create(ctx context.Context, apt *models.Appointment) (models.InsertResult, error)

	// FindByEmailAndDate returns every appointment matching both fields exactly.
	FindByEmailAndDate(ctx context.Context, email, date string) ([]models.Appointment, error)

	// FindByID returns nil, nil when no appointment has the id.
	FindByID(ctx context.Context, id string) (*models.Appointment, error)

	// SetPayment sets the payment field without checking that the appointment exists.
	SetPayment(ctx context.Context, id string, payment models.Payment) (models.UpdateResult, error)
}

type appointmentMongoRepository struct {
	collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Database) AppointmentRepository {
	return &appointmentMongoRepository{collection: db.Collection(database.AppointmentsCollection)}
}

func (r *appointmentMongoRepository) Create(ctx context.Context, apt *models.Appointment) (models.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, apt)
	if err != nil {
		return models.InsertResult{}, err
	}
	return toInsertResult(res), nil
}

func (r *appointmentMongoRepository) FindByEmailAndDate(
	ctx context.Context,
	email, date string,
) ([]models.Appointment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email, "date": date})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentMongoRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var apt models.Appointment
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&apt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &apt, nil
}

func (r *appointmentMongoRepository) SetPayment(
	ctx context.Context,
	id string,
	payment models.Payment,
) (models.UpdateResult, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"payment": payment}})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return toUpdateResult(res), nil
}
