package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nexlify/careers/internal/models"
	mongorepo "github.com/nexlify/careers/internal/repositories/mongo"
	pgrepo "github.com/nexlify/careers/internal/repositories/postgres"
	"github.com/nexlify/careers/internal/utils"
)

// SubmitResult reports what actually happened to a submission. Under the
// fire-and-forget policy Persisted can be false while the caller still
// advances to success.
type SubmitResult struct {
	ApplicantID string `json:"applicant_id,omitempty"`
	Persisted   bool   `json:"persisted"`
}

type ApplicationService interface {
	// Submit runs the pipeline for a standalone form (no draft session).
	Submit(ctx context.Context, f *models.ApplicationForm) (*SubmitResult, error)
	// SubmitDraft runs the pipeline for a form session and drives its
	// view-state transition.
	SubmitDraft(ctx context.Context, draftID string) (*models.FormDraft, *SubmitResult, error)
	// ListSubmissionEvents reads the operator audit trail, scoped to one
	// draft when draftID is set and most-recent-first otherwise.
	ListSubmissionEvents(ctx context.Context, draftID string, limit int64) ([]models.SubmissionEvent, error)
}

type applicationService struct {
	applicants pgrepo.ApplicantRepository
	drafts     DraftService
	audit      mongorepo.SubmissionEventRepository // nil: log-only operator records
	log        *logrus.Logger

	// confirmOnly flips the persistence-failure policy: when false the
	// candidate still reaches success on a failed insert and only the
	// operator record carries the truth; when true the failure propagates.
	confirmOnly bool
}

func NewApplicationService(
	applicants pgrepo.ApplicantRepository,
	drafts DraftService,
	audit mongorepo.SubmissionEventRepository,
	log *logrus.Logger,
	confirmOnly bool,
) ApplicationService {
	return &applicationService{
		applicants:  applicants,
		drafts:      drafts,
		audit:       audit,
		log:         log,
		confirmOnly: confirmOnly,
	}
}

func (s *applicationService) Submit(ctx context.Context, f *models.ApplicationForm) (*SubmitResult, error) {
	return s.submit(ctx, f, "")
}

func (s *applicationService) SubmitDraft(ctx context.Context, draftID string) (*models.FormDraft, *SubmitResult, error) {
	d, err := s.drafts.BeginSubmit(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}

	res, err := s.submit(ctx, &d.Form, draftID)
	if err != nil {
		// Validation or policy failure: the draft stays on the form.
		if _, finishErr := s.drafts.FinishSubmit(ctx, draftID, false); finishErr != nil {
			s.log.WithError(finishErr).WithField("draft_id", draftID).Warn("failed to clear submitting flag")
		}
		return nil, nil, err
	}

	d, err = s.drafts.FinishSubmit(ctx, draftID, true)
	if err != nil {
		return nil, nil, err
	}
	return d, res, nil
}

func (s *applicationService) submit(ctx context.Context, f *models.ApplicationForm, draftID string) (*SubmitResult, error) {
	const op = "ApplicationService.Submit"

	if fail := ValidateApplication(f); fail != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, fail.Reason, fail)
	}

	row, err := BuildApplicantRow(f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to build applicant row", err)
	}

	if err := s.applicants.Insert(ctx, row); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"draft_id": draftID,
			"email":    f.Email,
			"role":     f.AppliedRole,
		}).Error("applicant insert failed")
		s.recordOutcome(ctx, draftID, f, models.OutcomePersistFailed, err.Error())

		if s.confirmOnly {
			return nil, utils.E(utils.CodeUnavailable, op, "failed to save application", err)
		}
		// Fire-and-forget policy: the candidate still sees success.
		return &SubmitResult{Persisted: false}, nil
	}

	s.recordOutcome(ctx, draftID, f, models.OutcomeAccepted, "")
	return &SubmitResult{ApplicantID: row.ID, Persisted: true}, nil
}

func (s *applicationService) ListSubmissionEvents(ctx context.Context, draftID string, limit int64) ([]models.SubmissionEvent, error) {
	const op = "ApplicationService.ListSubmissionEvents"

	if s.audit == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "submission audit trail is not configured", nil)
	}

	var (
		events []models.SubmissionEvent
		err    error
	)
	if draftID != "" {
		events, err = s.audit.ListByDraft(ctx, draftID)
	} else {
		events, err = s.audit.Recent(ctx, limit)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list submission events", err)
	}
	return events, nil
}

// recordOutcome writes the operator-visible record. Audit failures never
// surface to the candidate.
func (s *applicationService) recordOutcome(ctx context.Context, draftID string, f *models.ApplicationForm, outcome, errText string) {
	if s.audit == nil {
		return
	}
	ev := &models.SubmissionEvent{
		EventID:     uuid.NewString(),
		DraftID:     draftID,
		Email:       f.Email,
		AppliedRole: f.AppliedRole,
		Outcome:     outcome,
		Error:       errText,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.audit.Insert(ctx, ev); err != nil {
		s.log.WithError(err).WithField("outcome", outcome).Warn("failed to record submission event")
	}
}
