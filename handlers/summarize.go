package handlers

import (
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"ytinsight/models"
	"ytinsight/prompt"
)

// Summarize handles POST /api/summarize.
func (h *Handler) Summarize(c *fiber.Ctx) error {
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

	summary, err := h.gateway.Generate(c.Context(), prompt.RoleSummary, prompt.Summary(text), true)
	if err != nil {
		return err
	}

	logger.WithField("duration", time.Since(start)).Info("Summary generated")

	return c.JSON(models.SummaryResponse{
		Summary: summary,
		Metadata: models.SummaryMetadata{
			VideoID:   req.VideoID,
			Language:  req.TargetLang,
			CharCount: utf8.RuneCountInString(text),
		},
	})
}
