package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/nexlify/careers/internal/models"
)

// ApplicantRepository issues the single best-effort insert per submission.
// No retry, no idempotency key, no transaction: each call stands alone.
type ApplicantRepository interface {
	Insert(ctx context.Context, a *models.Applicant) error
}

type applicantRepo struct {
	db *gorm.DB
}

func NewApplicantRepo(db *gorm.DB) ApplicantRepository {
	return &applicantRepo{db: db}
}

func (r *applicantRepo) Insert(ctx context.Context, a *models.Applicant) error {
	return r.db.WithContext(ctx).Create(a).Error
}
