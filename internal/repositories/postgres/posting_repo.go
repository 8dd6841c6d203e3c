package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nexlify/careers/internal/models"
	"github.com/nexlify/careers/internal/utils"
)

type PostingRepository interface {
	Upsert(ctx context.Context, p *models.JobPosting) error
	GetByRole(ctx context.Context, role string) (*models.JobPosting, error)
	List(ctx context.Context) ([]models.JobPosting, error)
}

type postingRepo struct {
	db *gorm.DB
}

func NewPostingRepo(db *gorm.DB) PostingRepository {
	return &postingRepo{db: db}
}

func (r *postingRepo) Upsert(ctx context.Context, p *models.JobPosting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "role"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description", "requirements", "equity_terms", "updated_at"}),
		}).
		Create(p).Error
}

func (r *postingRepo) GetByRole(ctx context.Context, role string) (*models.JobPosting, error) {
	var p models.JobPosting
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *postingRepo) List(ctx context.Context) ([]models.JobPosting, error) {
	var out []models.JobPosting
	err := r.db.WithContext(ctx).Order("role").Find(&out).Error
	return out, err
}
