package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"ytinsight/models"
	"ytinsight/prompt"
)

// TimestampedSummary handles POST /api/timestamped-summary. Alongside the
// model's key-moments analysis it echoes the full timed segment list so the
// client can seek the video.
func (h *Handler) TimestampedSummary(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return err
	}

	logger := h.requestLogger(c, req)
	start := time.Now()

	segments, text, err := h.fetchTranscript(c, req)
	if err != nil {
		return err
	}

	analysis, err := h.gateway.Generate(c.Context(), prompt.RoleKeyMoments, prompt.KeyMoments(text), true)
	if err != nil {
		return err
	}

	timestamps := make([]models.Timestamp, len(segments))
	for i, segment := range segments {
		timestamps[i] = models.Timestamp{
			Time:     segment.Start,
			Text:     segment.Text,
			Duration: segment.Duration,
		}
	}

	logger.WithFields(logrus.Fields{
		"duration": time.Since(start),
		"moments":  len(timestamps),
	}).Info("Timestamped summary generated")

	return c.JSON(models.TimestampedSummaryResponse{
		Analysis:   analysis,
		Timestamps: timestamps,
		Metadata: models.TimestampedSummaryMetadata{
			VideoID:      req.VideoID,
			Language:     req.TargetLang,
			MomentsCount: len(timestamps),
		},
	})
}
