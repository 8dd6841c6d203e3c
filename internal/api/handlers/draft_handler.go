package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexlify/careers/internal/models"
	"github.com/nexlify/careers/internal/services"
	"github.com/nexlify/careers/internal/utils"
)

// DraftHandler exposes the form session lifecycle: create, edit
// field-by-field, reset, submit, and the success->form return.
type DraftHandler struct {
	drafts       services.DraftService
	applications services.ApplicationService
	ack          services.AcknowledgmentService
}

func NewDraftHandler(drafts services.DraftService, applications services.ApplicationService, ack services.AcknowledgmentService) *DraftHandler {
	return &DraftHandler{drafts: drafts, applications: applications, ack: ack}
}

func (h *DraftHandler) Create(c *gin.Context) {
	d, err := h.drafts.Create(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *DraftHandler) Get(c *gin.Context) {
	d, err := h.drafts.Get(c.Request.Context(), c.Param("draft_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

type SetFieldRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
	// Checked drives the techStack checkbox toggle; ignored elsewhere.
	Checked *bool `json:"checked,omitempty"`
}

func (h *DraftHandler) SetField(c *gin.Context) {
	var req SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "DraftHandler.SetField", "invalid request body", err))
		return
	}

	d, err := h.drafts.SetField(c.Request.Context(), c.Param("draft_id"), req.Name, req.Value, req.Checked)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

func (h *DraftHandler) Reset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "DraftHandler.Reset", "invalid request body", err))
		return
	}

	d, err := h.drafts.Reset(c.Request.Context(), c.Param("draft_id"), req.Confirm)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

type SubmitDraftResponse struct {
	Draft          *models.FormDraft `json:"draft"`
	Persisted      bool              `json:"persisted"`
	ApplicantID    string            `json:"applicant_id,omitempty"`
	Acknowledgment string            `json:"acknowledgment"`
}

func (h *DraftHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	d, res, err := h.applications.SubmitDraft(ctx, c.Param("draft_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	// The acknowledgment is enrichment only; it cannot fail the submit.
	note := h.ack.Summarize(ctx, &d.Form)

	c.JSON(http.StatusOK, SubmitDraftResponse{
		Draft:          d,
		Persisted:      res.Persisted,
		ApplicantID:    res.ApplicantID,
		Acknowledgment: note,
	})
}

func (h *DraftHandler) Back(c *gin.Context) {
	d, err := h.drafts.Back(c.Request.Context(), c.Param("draft_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
