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

type APIKeyRepository interface {
	Create(ctx context.Context, apiKey *model.APIKey) error
	FindByKey(ctx context.Context, key string) (*model.APIKey, error)
}

type mongoAPIKeyRepository struct {
	coll *mongo.Collection
}

func NewMongoAPIKeyRepository(db *mongo.Database) APIKeyRepository {
	return &mongoAPIKeyRepository{coll: db.Collection("apikeys")}
}

func (r *mongoAPIKeyRepository) Create(ctx context.Context, apiKey *model.APIKey) error {
	apiKey.Name = model.NormalizeAPIKeyName(apiKey.Name)
	now := time.Now()
	apiKey.CreatedAt = now
	apiKey.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, apiKey); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("api key already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("apiKeyRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoAPIKeyRepository) FindByKey(ctx context.Context, key string) (*model.APIKey, error) {
	apiKey := &model.APIKey{}
	err := r.coll.FindOne(ctx, bson.M{"key": key}).Decode(apiKey)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("apiKeyRepository.FindByKey: %w", err)
	}
	return apiKey, nil
}
