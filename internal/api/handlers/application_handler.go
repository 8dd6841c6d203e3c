package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nexlify/careers/internal/catalog"
	"github.com/nexlify/careers/internal/models"
	"github.com/nexlify/careers/internal/services"
	"github.com/nexlify/careers/internal/utils"
)

// ApplicationHandler handles one-shot submissions that skip the draft
// session, plus the acknowledgment side channel.
type ApplicationHandler struct {
	applications services.ApplicationService
	ack          services.AcknowledgmentService
}

func NewApplicationHandler(applications services.ApplicationService, ack services.AcknowledgmentService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, ack: ack}
}

type SubmitResponse struct {
	Persisted      bool   `json:"persisted"`
	ApplicantID    string `json:"applicant_id,omitempty"`
	Acknowledgment string `json:"acknowledgment"`
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	var form models.ApplicationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Submit", "invalid request body", err))
		return
	}
	if form.AppliedRole == "" {
		form.AppliedRole = string(catalog.RoleSoftwareDeveloper)
	}

	ctx := c.Request.Context()
	res, err := h.applications.Submit(ctx, &form)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SubmitResponse{
		Persisted:      res.Persisted,
		ApplicantID:    res.ApplicantID,
		Acknowledgment: h.ack.Summarize(ctx, &form),
	})
}

type SubmissionEventsResponse struct {
	Events []models.SubmissionEvent `json:"events"`
}

// Events exposes the operator audit trail. With a draft_id query it lists
// that draft's attempts in order; without one it lists recent events.
func (h *ApplicationHandler) Events(c *gin.Context) {
	const op = "ApplicationHandler.Events"

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "limit must be a non-negative integer", err))
			return
		}
		limit = n
	}

	events, err := h.applications.ListSubmissionEvents(c.Request.Context(), c.Query("draft_id"), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	if events == nil {
		events = []models.SubmissionEvent{}
	}
	c.JSON(http.StatusOK, SubmissionEventsResponse{Events: events})
}

type AcknowledgmentResponse struct {
	Acknowledgment string `json:"acknowledgment"`
}

func (h *ApplicationHandler) Acknowledge(c *gin.Context) {
	var form models.ApplicationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Acknowledge", "invalid request body", err))
		return
	}
	if form.AppliedRole == "" {
		form.AppliedRole = string(catalog.RoleSoftwareDeveloper)
	}

	c.JSON(http.StatusOK, AcknowledgmentResponse{
		Acknowledgment: h.ack.Summarize(c.Request.Context(), &form),
	})
}
