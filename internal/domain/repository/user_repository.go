package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/common"
	"backoffice/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	IncreasePasswordAttempt(ctx context.Context, id string) error
	ResetPasswordAttempt(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, hash string, created, expired time.Time) error
	UpdatePhoto(ctx context.Context, id string, photo *model.Photo) error
	SoftDelete(ctx context.Context, id string) error
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection("users")}
}

// notDeleted excludes soft-deleted documents from every read.
func notDeleted(filter bson.M) bson.M {
	filter["deletedAt"] = nil
	return filter
}

func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user with given username or email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("userRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, notDeleted(bson.M{"_id": id}), "FindByID")
}

func (r *mongoUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, notDeleted(bson.M{"username": username}), "FindByUsername")
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M, op string) (*model.User, error) {
	user := &model.User{}
	err := r.coll.FindOne(ctx, filter).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("userRepository.%s: %w", op, err)
	}
	return user, nil
}

func (r *mongoUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, notDeleted(bson.M{"email": email}))
	if err != nil {
		return false, fmt.Errorf("userRepository.ExistsByEmail: %w", err)
	}
	return count > 0, nil
}

func (r *mongoUserRepository) IncreasePasswordAttempt(ctx context.Context, id string) error {
	return r.updateOne(ctx, id, bson.M{
		"$inc": bson.M{"passwordAttempt": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}, "IncreasePasswordAttempt")
}

func (r *mongoUserRepository) ResetPasswordAttempt(ctx context.Context, id string) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{"passwordAttempt": 0, "updatedAt": time.Now()},
	}, "ResetPasswordAttempt")
}

func (r *mongoUserRepository) UpdatePassword(ctx context.Context, id, hash string, created, expired time.Time) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{
			"password":        hash,
			"passwordCreated": created,
			"passwordExpired": expired,
			"updatedAt":       time.Now(),
		},
	}, "UpdatePassword")
}

func (r *mongoUserRepository) UpdatePhoto(ctx context.Context, id string, photo *model.Photo) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{"photo": photo, "updatedAt": time.Now()},
	}, "UpdatePhoto")
}

func (r *mongoUserRepository) SoftDelete(ctx context.Context, id string) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{"deletedAt": time.Now(), "updatedAt": time.Now()},
	}, "SoftDelete")
}

func (r *mongoUserRepository) updateOne(ctx context.Context, id string, update bson.M, op string) error {
	res, err := r.coll.UpdateOne(ctx, notDeleted(bson.M{"_id": id}), update)
	if err != nil {
		return fmt.Errorf("userRepository.%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}
