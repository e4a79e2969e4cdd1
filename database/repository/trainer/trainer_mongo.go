package trainerRepo

import (
	"context"
	"fmt"
	"time"

	"fittribe/database"
	"fittribe/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTrainerRepo implements TrainerRepository using MongoDB.
type MongoTrainerRepo struct {
	coll *mongo.Collection
}

// NewMongoTrainerRepo creates a new instance of TrainerRepository using MongoDB.
func NewMongoTrainerRepo() TrainerRepository {
	coll := database.MongoClient.Database("fittribe").Collection("trainers")
	repo := &MongoTrainerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoTrainerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specialties", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new trainer document.
func (r *MongoTrainerRepo) Create(trainer *models.Trainer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	trainer.CreatedAt = now
	trainer.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, trainer)
	if err != nil {
		return fmt.Errorf("failed to create trainer: %w", err)
	}
	return nil
}

// Update modifies an existing trainer document.
func (r *MongoTrainerRepo) Update(trainer *models.Trainer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	trainer.UpdatedAt = time.Now()
	filter := bson.M{"id": trainer.ID}
	update := bson.M{"$set": trainer}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update trainer with id %s: %w", trainer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trainer with id %s not found", trainer.ID)
	}
	return nil
}

// UpdateFields applies a partial update to a trainer document.
func (r *MongoTrainerRepo) UpdateFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update trainer with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trainer with id %s not found", id)
	}
	return nil
}

// Delete removes a trainer document by its ID.
func (r *MongoTrainerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete trainer with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("trainer with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a trainer by its unique ID.
func (r *MongoTrainerRepo) GetByID(id string) (*models.Trainer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var trainer models.Trainer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&trainer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch trainer with id %s: %w", id, err)
	}
	return &trainer, nil
}

// GetAll retrieves the full trainer roster in insertion order.
func (r *MongoTrainerRepo) GetAll() ([]models.Trainer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve trainers: %w", err)
	}
	defer cursor.Close(ctx)

	var trainers []models.Trainer
	for cursor.Next(ctx) {
		var t models.Trainer
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode trainer: %w", err)
		}
		trainers = append(trainers, t)
	}
	return trainers, nil
}

// GetFeatured retrieves up to limit featured trainers, highest rated first.
func (r *MongoTrainerRepo) GetFeatured(limit int) ([]models.Trainer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"featured": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve featured trainers: %w", err)
	}
	defer cursor.Close(ctx)

	var trainers []models.Trainer
	for cursor.Next(ctx) {
		var t models.Trainer
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode trainer: %w", err)
		}
		trainers = append(trainers, t)
	}
	return trainers, nil
}
