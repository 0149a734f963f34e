package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ytinsight/models"
	"ytinsight/prompt"
)

// TopComments handles POST /api/top-comments.
func (h *Handler) TopComments(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return err
	}

	logger := h.requestLogger(c, req)
	start := time.Now()

	_, text, err := h.fetchTranscript(c, req)
	if err != nil {
		return err
	}

	result, err := h.gateway.Generate(c.Context(), prompt.RoleTopComments, prompt.TopComments(text), true)
	if err != nil {
		return err
	}

	logger.WithField("duration", time.Since(start)).Info("Comment analysis generated")

	return c.JSON(models.TopCommentsResponse{
		Result: result,
		Metadata: models.TopCommentsMetadata{
			VideoID:     req.VideoID,
			Language:    req.TargetLang,
			GeneratedAt: time.Now().Format(time.RFC3339),
		},
	})
}
