package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopdesk/store-admin/internal/core/domain"
)

const (
	auditCollection = "panel_audit"
	auditRetention  = 90 * 24 * time.Hour
)

// AuditRepository persists panel audit records to MongoDB.
type AuditRepository struct {
	db *mongo.Database
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

// Insert appends one record to the panel_audit collection.
func (r *AuditRepository) Insert(ctx context.Context, rec domain.AuditRecord) error {
	doc := bson.M{
		"action":   rec.Action,
		"resource": rec.Resource,
		"outcome":  rec.Outcome,
		"at":       rec.At.UTC(),
	}
	if rec.ResourceID != "" {
		doc["resource_id"] = rec.ResourceID
	}
	if rec.Detail != "" {
		doc["detail"] = rec.Detail
	}

	if _, err := r.db.Collection(auditCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup index by resource and the TTL index that
// expires records after the retention period. Existing indexes are kept.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "resource", Value: 1}, {Key: "at", Value: -1}}},
		{
			Keys:    bson.D{{Key: "at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(auditRetention.Seconds())),
		},
	}
	if _, err := r.db.Collection(auditCollection).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create audit indexes: %w", err)
	}
	return nil
}
