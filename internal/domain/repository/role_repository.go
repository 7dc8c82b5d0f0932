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

type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	FindByID(ctx context.Context, id string) (*model.Role, error)
}

type mongoRoleRepository struct {
	coll *mongo.Collection
}

func NewMongoRoleRepository(db *mongo.Database) RoleRepository {
	return &mongoRoleRepository{coll: db.Collection("roles")}
}

func (r *mongoRoleRepository) Create(ctx context.Context, role *model.Role) error {
	role.Name = model.NormalizeRoleName(role.Name)
	now := time.Now()
	role.CreatedAt = now
	role.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, role); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("role with given name already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("roleRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoRoleRepository) FindByID(ctx context.Context, id string) (*model.Role, error) {
	role := &model.Role{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("roleRepository.FindByID: %w", err)
	}
	return role, nil
}
