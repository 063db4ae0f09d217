package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"filestore/internal/model"
	"filestore/internal/repository"
)

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

// UserMongo is a MongoDB implementation of repository.UserRepository.
type UserMongo struct {
	col *mongo.Collection
}

// NewUserMongo creates a UserMongo over the "users" collection of db.
func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{col: db.Collection(colUsers)}
}

var _ repository.UserRepository = (*UserMongo)(nil)

func (r *UserMongo) FindByCredentials(ctx context.Context, email, passwordHash string) (*model.User, error) {
	return r.findOne(ctx, bson.D{
		{Key: "email", Value: email},
		{Key: "password", Value: passwordHash},
	})
}

func (r *UserMongo) FindByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *UserMongo) Count(ctx context.Context) (int64, error) {
	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserMongo) findOne(ctx context.Context, filter bson.D) (*model.User, error) {
	var doc userDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &model.User{ID: doc.ID.Hex(), Email: doc.Email, Password: doc.Password}, nil
}
