package services

import (
	"context"
	"errors"
	"time"

	"github.com/nexlify/careers/internal/catalog"
	"github.com/nexlify/careers/internal/models"
	pgrepo "github.com/nexlify/careers/internal/repositories/postgres"
	"github.com/nexlify/careers/internal/utils"
)

type PostingService interface {
	// SeedDefaults upserts the built-in postings at process start.
	SeedDefaults(ctx context.Context) error
	Get(ctx context.Context, role string) (*models.JobPosting, error)
	List(ctx context.Context) ([]models.JobPosting, error)
}

type postingService struct {
	postings pgrepo.PostingRepository
}

func NewPostingService(postings pgrepo.PostingRepository) PostingService {
	return &postingService{postings: postings}
}

// defaultPostings is the full set of open roles. Currently exactly one.
var defaultPostings = []models.JobPosting{
	{
		Role:        string(catalog.RoleSoftwareDeveloper),
		Title:       "Senior Software Architect",
		Description: "Lead the technical vision for Nexlify. Build high-traffic, distributed systems from the ground up.",
		Requirements: []string{
			"Full-stack expertise (React/Node.js/Python)",
			"Experience with AWS/GCP and microservices",
			"Proven track record with high-performance databases",
			"Comfortable with equity-based compensation models",
		},
		EquityTerms: "Significant early-stage equity package (Employee Agreement basis).",
	},
}

func (s *postingService) SeedDefaults(ctx context.Context) error {
	const op = "PostingService.SeedDefaults"

	for i := range defaultPostings {
		p := defaultPostings[i]
		p.UpdatedAt = time.Now().UTC()
		if err := s.postings.Upsert(ctx, &p); err != nil {
			return utils.E(utils.CodeInternal, op, "failed to seed posting "+p.Role, err)
		}
	}
	return nil
}

func (s *postingService) Get(ctx context.Context, role string) (*models.JobPosting, error) {
	const op = "PostingService.Get"

	if role == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "role is required", nil)
	}
	p, err := s.postings.GetByRole(ctx, role)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "posting not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get posting", err)
	}
	return p, nil
}

func (s *postingService) List(ctx context.Context) ([]models.JobPosting, error) {
	const op = "PostingService.List"

	out, err := s.postings.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list postings", err)
	}
	return out, nil
}
