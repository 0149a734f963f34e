package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"ytinsight/errors"
	"ytinsight/llm"
	"ytinsight/models"
	"ytinsight/prompt"
	"ytinsight/transcript"
	"ytinsight/validation"
)

// Handler holds the dependencies shared by the four generation endpoints.
// Every endpoint walks the same path: validate → fetch transcript → build
// prompt → call model → envelope.
type Handler struct {
	transcripts transcript.Service
	gateway     llm.Gateway
	validator   *validation.Validator
	logger      *logrus.Logger
}

func New(transcripts transcript.Service, gateway llm.Gateway, validator *validation.Validator) *Handler {
	return &Handler{
		transcripts: transcripts,
		gateway:     gateway,
		validator:   validator,
		logger:      logrus.StandardLogger(),
	}
}

// parseRequest validates the shared request body. TargetLang comes back
// normalized and is always a supported language.
func (h *Handler) parseRequest(c *fiber.Ctx) (*models.GenerateRequest, error) {
	const op = "Handler.parseRequest"

	var req models.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.InvalidInput(op, err, "Corps de requête JSON requis")
	}

	if req.VideoID == "" {
		return nil, errors.InvalidInput(op, nil, "videoId est requis")
	}
	if err := h.validator.ValidateVideoID(req.VideoID); err != nil {
		return nil, err
	}

	req.TargetLang = h.validator.NormalizeLanguage(req.TargetLang)
	return &req, nil
}

// fetchTranscript retrieves the ordered segment list plus the joined,
// truncated text embedded in prompts.
func (h *Handler) fetchTranscript(c *fiber.Ctx, req *models.GenerateRequest) ([]models.TranscriptSegment, string, error) {
	segments, err := h.transcripts.Fetch(c.Context(), req.VideoID, req.TargetLang)
	if err != nil {
		return nil, "", err
	}

	text := prompt.Truncate(prompt.JoinSegments(segments))
	return segments, text, nil
}

func (h *Handler) requestLogger(c *fiber.Ctx, req *models.GenerateRequest) *logrus.Entry {
	fields := logrus.Fields{
		"path":     c.Path(),
		"video_id": req.VideoID,
		"language": req.TargetLang,
	}
	if requestID, ok := c.Locals("requestid").(string); ok {
		fields["request_id"] = requestID
	}
	return h.logger.WithFields(fields)
}
