package handlers

import (
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"ytinsight/models"
	"ytinsight/prompt"
)

// EnhancedTranscript handles POST /api/enhanced-transcript.
func (h *Handler) EnhancedTranscript(c *fiber.Ctx) error {
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

	result, err := h.gateway.Generate(c.Context(), prompt.RoleEnhancedTranscript, prompt.EnhancedTranscript(text), true)
	if err != nil {
		return err
	}

	logger.WithField("duration", time.Since(start)).Info("Enhanced transcript generated")

	return c.JSON(models.EnhancedTranscriptResponse{
		Result: result,
		Metadata: models.EnhancedTranscriptMetadata{
			VideoID:        req.VideoID,
			Language:       req.TargetLang,
			OriginalLength: utf8.RuneCountInString(text),
		},
	})
}
