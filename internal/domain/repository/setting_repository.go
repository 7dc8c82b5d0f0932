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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingRepository interface {
	FindByName(ctx context.Context, name string) (*model.Setting, error)
	Upsert(ctx context.Context, setting *model.Setting) error
}

type mongoSettingRepository struct {
	coll *mongo.Collection
}

func NewMongoSettingRepository(db *mongo.Database) SettingRepository {
	return &mongoSettingRepository{coll: db.Collection("settings")}
}

func (r *mongoSettingRepository) FindByName(ctx context.Context, name string) (*model.Setting, error) {
	setting := &model.Setting{}
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(setting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("settingRepository.FindByName: %w", err)
	}
	return setting, nil
}

func (r *mongoSettingRepository) Upsert(ctx context.Context, setting *model.Setting) error {
	now := time.Now()
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"name": setting.Name},
		bson.M{
			"$set": bson.M{
				"description": setting.Description,
				"type":        setting.Type,
				"value":       setting.Value,
				"updatedAt":   now,
			},
			"$setOnInsert": bson.M{"_id": setting.ID, "createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("settingRepository.Upsert: %w", err)
	}
	return nil
}
