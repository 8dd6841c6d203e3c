package models

import (
	"encoding/json"
	"testing"
)

func TestNewApplicationForm_Defaults(t *testing.T) {
	f := NewApplicationForm()
	if f.Currency != "USD" {
		t.Errorf("currency = %q, want USD", f.Currency)
	}
	if f.AppliedRole != "Software Developer" {
		t.Errorf("appliedRole = %q, want the active posting", f.AppliedRole)
	}
	if f.TechStack == nil || len(f.TechStack) != 0 {
		t.Errorf("techStack = %v, want empty non-nil slice", f.TechStack)
	}
	if !f.IsEmpty() {
		t.Error("fresh form reports non-empty")
	}
}

func TestApplicationForm_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		edit func(*ApplicationForm)
	}{
		{"first name", func(f *ApplicationForm) { f.FirstName = "Ada" }},
		{"tech stack", func(f *ApplicationForm) { f.TechStack = []string{"React"} }},
		{"salary", func(f *ApplicationForm) { f.SalaryExpectation = "1" }},
		{"cv data", func(f *ApplicationForm) { f.CVData = "x" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewApplicationForm()
			tt.edit(&f)
			if f.IsEmpty() {
				t.Error("edited form reports empty")
			}
		})
	}
}

func TestFormDraft_JSONRoundTrip(t *testing.T) {
	// Drafts live as JSON in the session store; the shape must survive.
	d := FormDraft{
		DraftID:    "d-1",
		Form:       NewApplicationForm(),
		State:      DraftStateForm,
		Submitting: true,
	}
	d.Form.FirstName = "Ada"
	d.Form.TechStack = []string{"React", "AWS"}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back FormDraft
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if back.DraftID != "d-1" || back.State != DraftStateForm || !back.Submitting {
		t.Errorf("round trip = %+v", back)
	}
	if back.Form.FirstName != "Ada" {
		t.Errorf("firstName = %q, want Ada", back.Form.FirstName)
	}
	if len(back.Form.TechStack) != 2 || back.Form.TechStack[0] != "React" || back.Form.TechStack[1] != "AWS" {
		t.Errorf("techStack = %v, want ordered [React AWS]", back.Form.TechStack)
	}
}
