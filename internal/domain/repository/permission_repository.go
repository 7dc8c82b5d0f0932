package repository

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PermissionRepository interface {
	Create(ctx context.Context, permission *model.Permission) error
	FindAllByIDs(ctx context.Context, ids []string) ([]model.Permission, error)
}

type mongoPermissionRepository struct {
	coll *mongo.Collection
}

func NewMongoPermissionRepository(db *mongo.Database) PermissionRepository {
	return &mongoPermissionRepository{coll: db.Collection("permissions")}
}

func (r *mongoPermissionRepository) Create(ctx context.Context, permission *model.Permission) error {
	now := time.Now()
	permission.CreatedAt = now
	permission.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, permission); err != nil {
		return fmt.Errorf("permissionRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoPermissionRepository) FindAllByIDs(ctx context.Context, ids []string) ([]model.Permission, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("permissionRepository.FindAllByIDs: %w", err)
	}
	defer cursor.Close(ctx)

	var permissions []model.Permission
	if err := cursor.All(ctx, &permissions); err != nil {
		return nil, fmt.Errorf("permissionRepository.FindAllByIDs: %w", err)
	}
	return permissions, nil
}
