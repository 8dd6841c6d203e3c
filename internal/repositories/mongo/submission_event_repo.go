package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nexlify/careers/internal/models"
)

// SubmissionEventRepository is the durable operator audit trail. A swallowed
// persistence failure still leaves a record here.
type SubmissionEventRepository interface {
	Insert(ctx context.Context, e *models.SubmissionEvent) error
	ListByDraft(ctx context.Context, draftID string) ([]models.SubmissionEvent, error)
	Recent(ctx context.Context, limit int64) ([]models.SubmissionEvent, error)
}

type submissionEventRepo struct {
	col *mongo.Collection
}

func NewSubmissionEventRepo(db *mongo.Database) SubmissionEventRepository {
	return &submissionEventRepo{col: db.Collection("submission_events")}
}

func (r *submissionEventRepo) Insert(ctx context.Context, e *models.SubmissionEvent) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, e)
	return err
}

func (r *submissionEventRepo) ListByDraft(ctx context.Context, draftID string) ([]models.SubmissionEvent, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"draft_id": draftID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	var out []models.SubmissionEvent
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *submissionEventRepo) Recent(ctx context.Context, limit int64) ([]models.SubmissionEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	cur, err := r.col.Find(ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	var out []models.SubmissionEvent
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
