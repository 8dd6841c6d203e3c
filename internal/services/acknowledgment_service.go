package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nexlify/careers/internal/models"
	"github.com/nexlify/careers/internal/providers/llm"
)

// Fallbacks shown when the text-generation call fails or comes back empty.
// Summarize never surfaces the failure itself.
const (
	fallbackAcknowledgment   = "Application submitted successfully! Our team will review your profile and reach out via email."
	emptyReplyAcknowledgment = "Thank you for applying! Our team will be in touch shortly."
)

// AcknowledgmentService produces the short thank-you note shown after a
// submission. It is a side channel: nothing in the submit pipeline waits
// on it or fails because of it.
type AcknowledgmentService interface {
	Summarize(ctx context.Context, f *models.ApplicationForm) string
}

type acknowledgmentService struct {
	provider llm.Provider // nil: always fall back
	log      *logrus.Logger
}

func NewAcknowledgmentService(provider llm.Provider, log *logrus.Logger) AcknowledgmentService {
	return &acknowledgmentService{provider: provider, log: log}
}

func (s *acknowledgmentService) Summarize(ctx context.Context, f *models.ApplicationForm) string {
	if s.provider == nil {
		return fallbackAcknowledgment
	}

	reply, err := s.provider.GenerateText(ctx, buildRecruiterPrompt(f))
	if err != nil {
		s.log.WithError(err).Warn("acknowledgment generation failed, using fallback")
		return fallbackAcknowledgment
	}
	if strings.TrimSpace(reply) == "" {
		return emptyReplyAcknowledgment
	}
	return reply
}

func buildRecruiterPrompt(f *models.ApplicationForm) string {
	compPref := "Prefers Salary/Direct payment"
	if f.CompensationPreference == "equity" {
		compPref = "Enthusiastic about Equity/Long-term growth"
	}

	return fmt.Sprintf(`You are the AI Recruiter for Nexlify. A candidate has just applied for the %s position.

Candidate Name: %s %s
Years of Experience: %s
Compensation Preference: %s
Tech Stack: %s
Personal Sites: %s
Portfolio Samples/Cover Letter: %s
Current Project: %s

The role is primarily equity-based, which Nexlify uses to align long-term interests.

Please provide a very short, professional, and encouraging summary (2-3 sentences) acknowledging their background (especially their %s of experience) and their compensation choice in a positive light.
Mention that a human recruiter will review their portfolio shortly.
Be inspiring.`,
		f.AppliedRole,
		f.FirstName, f.LastName,
		f.YearsOfExperience,
		compPref,
		strings.Join(f.TechStack, ", "),
		f.PersonalSites,
		f.PortfolioSamples,
		f.CurrentProject,
		f.YearsOfExperience,
	)
}
