package mongo

import (
	"context"
	"errors"
	"fmt"

	"charting-dashboard-server/internal/db"
	"charting-dashboard-server/internal/models"
	"charting-dashboard-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PatientRepository reads clinic patient documents from MongoDB
type PatientRepository struct {
	coll *mongo.Collection
}

// NewPatientRepository creates a new MongoDB reader for patients
func NewPatientRepository(db *db.MongoDB, collection string) *PatientRepository {
	return &PatientRepository{
		coll: db.Collection(collection),
	}
}

// FindPatient looks up one patient of the clinic by its id.
func (r *PatientRepository) FindPatient(ctx context.Context, hospitalID, patientID string) (*models.Patient, error) {
	var doc patientDocument
	err := r.coll.FindOne(ctx, patientFilter(hospitalID, patientID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("patient %s: %w", patientID, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find patient %s: %w", patientID, err)
	}

	patient := doc.toModel()
	return &patient, nil
}

// patientFilter matches the id stored either as a string or as an ObjectID.
func patientFilter(hospitalID, patientID string) bson.M {
	ids := bson.A{patientID}
	if oid, err := primitive.ObjectIDFromHex(patientID); err == nil {
		ids = append(ids, oid)
	}
	return bson.M{
		"_id":        bson.M{"$in": ids},
		"hospitalId": hospitalID,
	}
}
