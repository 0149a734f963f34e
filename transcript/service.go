package transcript

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"ytinsight/errors"
	"ytinsight/models"
)

// Service retrieves the full ordered caption track for a video, with
// language fallback and memoization of successful results.
type Service interface {
	Fetch(ctx context.Context, videoID, lang string) ([]models.TranscriptSegment, error)
}

// Fetcher abstracts the caption source so the service can be tested against
// a fake provider.
type Fetcher interface {
	FetchCaptions(ctx context.Context, videoID, langCode string) ([]models.TranscriptSegment, error)
}

type Config struct {
	// CacheSize bounds the number of (video, language) results kept in memory.
	CacheSize int
}

type service struct {
	client Fetcher
	cache  *lru.Cache[string, []models.TranscriptSegment]
	logger *logrus.Logger
}

func NewService(client Fetcher, cfg Config) (Service, error) {
	cache, err := lru.New[string, []models.TranscriptSegment](cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return &service{
		client: client,
		cache:  cache,
		logger: logrus.StandardLogger(),
	}, nil
}

// Fetch tries English first, then lang. English auto-captions are by far the
// most commonly available track on YouTube, so leading with them keeps the
// failure rate down; the caller's language is honored as the fallback.
// Only successful results are memoized: a failed retrieval is recomputed on
// every request so a transient provider error never sticks.
func (s *service) Fetch(ctx context.Context, videoID, lang string) ([]models.TranscriptSegment, error) {
	const op = "TranscriptService.Fetch"

	key := cacheKey(videoID, lang)
	if segments, ok := s.cache.Get(key); ok {
		s.logger.WithFields(logrus.Fields{
			"video_id": videoID,
			"language": lang,
		}).Debug("Transcript cache hit")
		return segments, nil
	}

	segments, err := s.client.FetchCaptions(ctx, videoID, "en")
	if err == nil {
		s.cache.Add(key, segments)
		return segments, nil
	}
	if terminal := s.classify(op, videoID, lang, err); terminal != nil {
		return nil, terminal
	}

	if lang != "en" {
		segments, err = s.client.FetchCaptions(ctx, videoID, lang)
		if err == nil {
			s.cache.Add(key, segments)
			return segments, nil
		}
		if terminal := s.classify(op, videoID, lang, err); terminal != nil {
			return nil, terminal
		}
	}

	s.logger.WithFields(logrus.Fields{
		"video_id": videoID,
		"language": lang,
	}).Info("No transcript found in any candidate language")
	return nil, errors.NotFound(op, err,
		fmt.Sprintf("Aucun sous-titre disponible dans les langues spécifiées (%s)", lang))
}

// classify maps terminal provider outcomes to their HTTP classification.
// ErrNoTranscript is not terminal (the caller may still have a fallback
// language to try), so it maps to nil.
func (s *service) classify(op, videoID, lang string, err error) error {
	switch {
	case errors.Is(err, ErrDisabled):
		s.logger.WithField("video_id", videoID).Warn("Transcripts disabled for video")
		return errors.Forbidden(op, err, "Transcription désactivée pour cette vidéo")
	case errors.Is(err, ErrNoTranscript):
		return nil
	default:
		s.logger.WithFields(logrus.Fields{
			"video_id": videoID,
			"language": lang,
		}).WithError(err).Error("Transcript provider failure")
		return errors.Internal(op, err, err.Error())
	}
}

func cacheKey(videoID, lang string) string {
	return videoID + "|" + lang
}
