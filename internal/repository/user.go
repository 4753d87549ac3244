package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/doctors-portal-api/internal/database"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
)

// UserRepository defines the store operations behind the user routes.
// Email acts as the key only on the upsert path; Create never checks for duplicates.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (models.InsertResult, error)
	UpsertByEmail(ctx context.Context, user *models.User) (models.UpdateResult, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetRole(ctx context.Context, email, role string) (models.UpdateResult, error)
}

type userMongoRepository struct {
	collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Database) UserRepository {
	return &userMongoRepository{collection: db.Collection(database.UsersCollection)}
}

func (r *userMongoRepository) Create(ctx context.Context, user *models.User) (models.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return models.InsertResult{}, err
	}
	return toInsertResult(res), nil
}

func (r *userMongoRepository) UpsertByEmail(ctx context.Context, user *models.User) (models.UpdateResult, error) {
	doc := *user
	doc.ID = primitive.NilObjectID

	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"email": user.Email},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return toUpdateResult(res), nil
}

// FindByEmail returns nil, nil when no user has the email.
func (r *userMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userMongoRepository) SetRole(ctx context.Context, email, role string) (models.UpdateResult, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return toUpdateResult(res), nil
}
