package repository

import (
	"context"
	"errors"
	"fmt"

	bookingserrors "dreamshoots/internal/bookings/errors"
	"dreamshoots/pkg/config"
	mongodb "dreamshoots/pkg/db/mongo"
	"dreamshoots/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Bookings"
)

// BookingRepository is the durable booking store. FindAll returns bookings in
// insertion order (created_at, then id) so listings are stable across calls.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	FindAll(ctx context.Context) ([]*model.Booking, error)
	// UpdateStatus sets the status only while it still equals from. A booking
	// that moved on in the meantime yields ErrStatusChanged.
	UpdateStatus(ctx context.Context, id string, from, to model.BookingStatus) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type mongoBookingRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoBookingRepository(cfg *config.Config) BookingRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return bookingserrors.ErrDuplicateID
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var booking model.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	return &booking, nil
}

func (r *mongoBookingRepository) FindAll(ctx context.Context) ([]*model.Booking, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := make([]*model.Booking, 0)
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *mongoBookingRepository) UpdateStatus(ctx context.Context, id string, from, to model.BookingStatus) (*model.Booking, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.M{"_id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to}}

	var booking model.Booking
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.missedUpdate(ctx, id)
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	return &booking, nil
}

func (r *mongoBookingRepository) missedUpdate(ctx context.Context, id string) error {
	n, err := r.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("failed to check booking: %w", err)
	}
	if n == 0 {
		return bookingserrors.ErrNotFound
	}
	return bookingserrors.ErrStatusChanged
}

func (r *mongoBookingRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if result.DeletedCount == 0 {
		return bookingserrors.ErrNotFound
	}

	return nil
}
