package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OutcomeAccepted      = "accepted"
	OutcomePersistFailed = "persist_failed"
)

// SubmissionEvent is the operator-visible record of a submit attempt.
// Persistence failures land here even when the candidate is shown success.
type SubmissionEvent struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID string             `bson:"event_id" json:"event_id"` // uuid v4
	DraftID string             `bson:"draft_id,omitempty" json:"draft_id,omitempty"`

	Email       string `bson:"email" json:"email"`
	AppliedRole string `bson:"applied_role" json:"applied_role"`

	Outcome string `bson:"outcome" json:"outcome"` // accepted|persist_failed
	Error   string `bson:"error,omitempty" json:"error,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
