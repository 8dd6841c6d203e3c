package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nexlify/careers/internal/cache"
	"github.com/nexlify/careers/internal/models"
	"github.com/nexlify/careers/internal/utils"
)

const draftTTL = 24 * time.Hour

// submitLease bounds the per-draft submit lock so a crashed submit
// cannot wedge the draft until the draft itself expires.
const submitLease = 5 * time.Minute

// DraftService is the form state store: one ApplicationForm per session,
// mutated field-by-field, with the form/success view state and the
// submitting flag that gates re-entrant submits.
type DraftService interface {
	Create(ctx context.Context) (*models.FormDraft, error)
	Get(ctx context.Context, draftID string) (*models.FormDraft, error)
	SetField(ctx context.Context, draftID, name, value string, checked *bool) (*models.FormDraft, error)
	Reset(ctx context.Context, draftID string, confirm bool) (*models.FormDraft, error)
	Back(ctx context.Context, draftID string) (*models.FormDraft, error)

	BeginSubmit(ctx context.Context, draftID string) (*models.FormDraft, error)
	FinishSubmit(ctx context.Context, draftID string, success bool) (*models.FormDraft, error)
}

type draftService struct {
	store cache.Cache
}

func NewDraftService(store cache.Cache) DraftService {
	return &draftService{store: store}
}

func draftKey(id string) string { return "draft:" + id }

func submitLockKey(id string) string { return "draft:" + id + ":submit" }

func (s *draftService) Create(ctx context.Context) (*models.FormDraft, error) {
	const op = "DraftService.Create"

	now := time.Now().UTC()
	d := &models.FormDraft{
		DraftID:   uuid.NewString(),
		Form:      models.NewApplicationForm(),
		State:     models.DraftStateForm,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.save(ctx, d); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create draft", err)
	}
	return d, nil
}

func (s *draftService) Get(ctx context.Context, draftID string) (*models.FormDraft, error) {
	const op = "DraftService.Get"
	return s.load(ctx, op, draftID)
}

func (s *draftService) SetField(ctx context.Context, draftID, name, value string, checked *bool) (*models.FormDraft, error) {
	const op = "DraftService.SetField"

	d, err := s.load(ctx, op, draftID)
	if err != nil {
		return nil, err
	}

	if name == "techStack" {
		if checked == nil {
			return nil, utils.E(utils.CodeInvalidArgument, op, "techStack updates need a checked flag", nil)
		}
		d.Form.TechStack = toggleTech(d.Form.TechStack, value, *checked)
	} else if !setScalarField(&d.Form, name, value) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "unknown field: "+name, nil)
	}

	if err := s.save(ctx, d); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save draft", err)
	}
	return d, nil
}

func (s *draftService) Reset(ctx context.Context, draftID string, confirm bool) (*models.FormDraft, error) {
	const op = "DraftService.Reset"

	d, err := s.load(ctx, op, draftID)
	if err != nil {
		return nil, err
	}

	// Resetting an already-empty record is a no-op; no confirmation needed.
	if d.Form.IsEmpty() {
		return d, nil
	}
	if !confirm {
		return nil, utils.E(utils.CodeFailedPrecondition, op, "clearing a non-empty form requires confirmation", nil)
	}

	d.Form = models.NewApplicationForm()
	d.State = models.DraftStateForm
	d.Submitting = false
	if err := s.save(ctx, d); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save draft", err)
	}
	return d, nil
}

func (s *draftService) Back(ctx context.Context, draftID string) (*models.FormDraft, error) {
	const op = "DraftService.Back"

	d, err := s.load(ctx, op, draftID)
	if err != nil {
		return nil, err
	}
	if d.State != models.DraftStateSuccess {
		return d, nil
	}

	// Returning to the form starts a fresh record.
	d.Form = models.NewApplicationForm()
	d.State = models.DraftStateForm
	d.Submitting = false
	if err := s.save(ctx, d); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save draft", err)
	}
	return d, nil
}

func (s *draftService) BeginSubmit(ctx context.Context, draftID string) (*models.FormDraft, error) {
	const op = "DraftService.BeginSubmit"

	d, err := s.load(ctx, op, draftID)
	if err != nil {
		return nil, err
	}
	if d.State != models.DraftStateForm {
		return nil, utils.E(utils.CodeFailedPrecondition, op, "draft is not in the form state", nil)
	}

	// The lease is the re-entrancy guard: set-if-absent is atomic in the
	// store, so concurrent submits see exactly one winner. The Submitting
	// flag on the draft is derived state for readers.
	won, err := s.store.SetNX(ctx, submitLockKey(draftID), true, submitLease)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "draft store unavailable", err)
	}
	if !won {
		return nil, utils.E(utils.CodeConflict, op, "a submission is already in flight", nil)
	}

	d.Submitting = true
	if err := s.save(ctx, d); err != nil {
		_ = s.store.Del(ctx, submitLockKey(draftID))
		return nil, utils.E(utils.CodeInternal, op, "failed to save draft", err)
	}
	return d, nil
}

func (s *draftService) FinishSubmit(ctx context.Context, draftID string, success bool) (*models.FormDraft, error) {
	const op = "DraftService.FinishSubmit"

	// Release the submit lease no matter how the submit ended, so a failed
	// attempt can be retried immediately.
	defer func() { _ = s.store.Del(ctx, submitLockKey(draftID)) }()

	d, err := s.load(ctx, op, draftID)
	if err != nil {
		return nil, err
	}

	d.Submitting = false
	if success {
		d.State = models.DraftStateSuccess
	}
	if err := s.save(ctx, d); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save draft", err)
	}
	return d, nil
}

func (s *draftService) load(ctx context.Context, op, draftID string) (*models.FormDraft, error) {
	if draftID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "draft_id is required", nil)
	}
	var d models.FormDraft
	hit, err := s.store.GetJSON(ctx, draftKey(draftID), &d)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "draft store unavailable", err)
	}
	if !hit {
		return nil, utils.E(utils.CodeNotFound, op, "draft not found", nil)
	}
	return &d, nil
}

func (s *draftService) save(ctx context.Context, d *models.FormDraft) error {
	d.UpdatedAt = time.Now().UTC()
	return s.store.SetJSON(ctx, draftKey(d.DraftID), d, draftTTL)
}

// toggleTech applies checkbox semantics keyed by value equality: checked
// adds the value if absent, unchecked removes every occurrence.
func toggleTech(stack []string, value string, checked bool) []string {
	if checked {
		for _, v := range stack {
			if v == value {
				return stack
			}
		}
		return append(stack, value)
	}
	out := stack[:0]
	for _, v := range stack {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

// setScalarField writes one plain field by its form name. Returns false
// for names the form does not have.
func setScalarField(f *models.ApplicationForm, name, value string) bool {
	switch name {
	case "firstName":
		f.FirstName = value
	case "lastName":
		f.LastName = value
	case "birthMonth":
		f.BirthMonth = value
	case "birthDay":
		f.BirthDay = value
	case "birthYear":
		f.BirthYear = value
	case "gender":
		f.Gender = value
	case "yearsOfExperience":
		f.YearsOfExperience = value
	case "personalSites":
		f.PersonalSites = value
	case "isWorkingNow":
		f.IsWorkingNow = value
	case "isImmediatelyAvailable":
		f.IsImmediatelyAvailable = value
	case "compensationPreference":
		f.CompensationPreference = value
	case "salaryExpectation":
		f.SalaryExpectation = value
	case "currency":
		f.Currency = value
	case "portfolioSamples":
		f.PortfolioSamples = value
	case "location":
		f.Location = value
	case "lastFinishedProject":
		f.LastFinishedProject = value
	case "currentProject":
		f.CurrentProject = value
	case "email":
		f.Email = value
	case "phoneAreaCode":
		f.PhoneAreaCode = value
	case "phoneNumber":
		f.PhoneNumber = value
	case "cvData":
		f.CVData = value
	case "cvName":
		f.CVName = value
	default:
		return false
	}
	return true
}
