package mongo

import (
	"context"
	"fmt"
	"log"
	"time"

	"charting-dashboard-server/internal/db"
	"charting-dashboard-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecordRepository reads clinic visit records from MongoDB
type RecordRepository struct {
	coll *mongo.Collection
}

// NewRecordRepository creates a new MongoDB reader for visit records
func NewRecordRepository(db *db.MongoDB, collection string) *RecordRepository {
	return &RecordRepository{
		coll: db.Collection(collection),
	}
}

// recordIndexes serve the per-clinic record query.
func recordIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "hospitalId", Value: 1}}},
		{Keys: bson.D{{Key: "hospitalId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
}

// EnsureIndexes creates the record indexes. The collection belongs to the
// charting app, so this only runs when the operator enables it.
func (r *RecordRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	names, err := r.coll.Indexes().CreateMany(ctx, recordIndexes())
	if err != nil {
		return fmt.Errorf("failed to create record indexes: %w", err)
	}
	log.Printf("Ensured record indexes %v", names)
	return nil
}

// FindByHospital returns every record of the clinic, newest first.
func (r *RecordRepository) FindByHospital(ctx context.Context, hospitalID string) ([]models.VisitRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"hospitalId": hospitalID})
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []recordDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	records := make([]models.VisitRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.toModel())
	}
	models.SortNewestFirst(records)

	return records, nil
}
