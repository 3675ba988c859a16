package repository

import (
	"context"
	"fmt"

	reelserrors "dreamshoots/internal/reels/errors"
	"dreamshoots/pkg/config"
	mongodb "dreamshoots/pkg/db/mongo"
	"dreamshoots/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Reels"
)

// ReelRepository stores the reel catalog. FindAll returns reels newest first.
type ReelRepository interface {
	Create(ctx context.Context, reel *model.Reel) error
	FindAll(ctx context.Context) ([]*model.Reel, error)
	Delete(ctx context.Context, id string) error
}

type mongoReelRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoReelRepository(cfg *config.Config) ReelRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoReelRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoReelRepository) Create(ctx context.Context, reel *model.Reel) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, reel); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return reelserrors.ErrDuplicateID
		}
		return fmt.Errorf("failed to create reel: %w", err)
	}
	return nil
}

func (r *mongoReelRepository) FindAll(ctx context.Context) ([]*model.Reel, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reels: %w", err)
	}
	defer cursor.Close(ctx)

	reels := make([]*model.Reel, 0)
	if err = cursor.All(ctx, &reels); err != nil {
		return nil, fmt.Errorf("failed to decode reels: %w", err)
	}

	return reels, nil
}

func (r *mongoReelRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reel: %w", err)
	}

	if result.DeletedCount == 0 {
		return reelserrors.ErrNotFound
	}

	return nil
}

