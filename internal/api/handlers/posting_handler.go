package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexlify/careers/internal/catalog"
	"github.com/nexlify/careers/internal/services"
)

type PostingHandler struct {
	svc services.PostingService
}

func NewPostingHandler(svc services.PostingService) *PostingHandler {
	return &PostingHandler{svc: svc}
}

func (h *PostingHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *PostingHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("role"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Catalog serves the static option lists the form renderer needs.
func (h *PostingHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tech_options":         catalog.TechOptions,
		"experience_options":   catalog.ExperienceOptions,
		"currency_options":     catalog.CurrencyOptions,
		"months":               catalog.Months,
		"days":                 catalog.Days(),
		"years":                catalog.Years(),
		"gender_options":       catalog.GenderOptions,
		"yes_no_options":       catalog.YesNoOptions,
		"compensation_options": catalog.CompensationOptions,
	})
}
