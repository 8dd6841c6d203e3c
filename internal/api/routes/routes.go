package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nexlify/careers/internal/api/handlers"
)

type Deps struct {
	Draft       *handlers.DraftHandler
	Application *handlers.ApplicationHandler
	Posting     *handlers.PostingHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.GET("/catalog", d.Posting.Catalog)
	api.GET("/postings", d.Posting.List)
	api.GET("/postings/:role", d.Posting.Get)

	api.POST("/drafts", d.Draft.Create)
	api.GET("/drafts/:draft_id", d.Draft.Get)
	api.PATCH("/drafts/:draft_id/fields", d.Draft.SetField)
	api.POST("/drafts/:draft_id/reset", d.Draft.Reset)
	api.POST("/drafts/:draft_id/submit", d.Draft.Submit)
	api.POST("/drafts/:draft_id/back", d.Draft.Back)

	api.POST("/applications", d.Application.Submit)
	api.POST("/applications/acknowledgment", d.Application.Acknowledge)
	api.GET("/submissions", d.Application.Events)
}
