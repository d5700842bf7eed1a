package traceRepo

import (
	"context"
	"fmt"
	"time"

	"concierge/database"
	"concierge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTraceRepo implements TraceRepository using MongoDB.
type MongoTraceRepo struct {
	coll *mongo.Collection
}

// NewMongoTraceRepo creates a new TraceRepository backed by the "traces"
// collection.
func NewMongoTraceRepo() TraceRepository {
	coll := database.Collection("traces")
	repo := &MongoTraceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create trace indexes: %v\n", err)
	}
	return repo
}

func (r *MongoTraceRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "trace_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Save persists a decision trace.
func (r *MongoTraceRepo) Save(ctx context.Context, trace *models.DecisionTrace) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, trace); err != nil {
		return fmt.Errorf("failed to save trace %s: %w", trace.TraceID, err)
	}
	return nil
}

// GetByID retrieves a trace by its trace ID.
func (r *MongoTraceRepo) GetByID(ctx context.Context, traceID string) (*models.DecisionTrace, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var trace models.DecisionTrace
	if err := r.coll.FindOne(ctx, bson.M{"trace_id": traceID}).Decode(&trace); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch trace %s: %w", traceID, err)
	}
	return &trace, nil
}

// List retrieves the most recent traces, newest first.
func (r *MongoTraceRepo) List(ctx context.Context, limit int64) ([]models.DecisionTrace, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve traces: %w", err)
	}
	defer cursor.Close(ctx)

	var traces []models.DecisionTrace
	for cursor.Next(ctx) {
		var t models.DecisionTrace
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode trace: %w", err)
		}
		traces = append(traces, t)
	}
	return traces, nil
}
