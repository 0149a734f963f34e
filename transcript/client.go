package transcript

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"ytinsight/config"
	"ytinsight/models"
)

// Classified provider outcomes. Anything else coming out of FetchCaptions is
// an unclassified provider failure.
var (
	ErrNoTranscript = errors.New("no transcript available")
	ErrDisabled     = errors.New("transcripts are disabled for this video")
)

// Client fetches caption tracks from YouTube's timedtext API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

func NewClient(cfg config.TranscriptConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 2),
	}
}

// timedtextResponse is the json3 payload returned by the timedtext endpoint.
type timedtextResponse struct {
	Events []timedtextEvent `json:"events"`
}

type timedtextEvent struct {
	StartMs    int64              `json:"tStartMs"`
	DurationMs int64              `json:"dDurationMs"`
	Segs       []timedtextSegment `json:"segs,omitempty"`
}

type timedtextSegment struct {
	UTF8 string `json:"utf8"`
}

// FetchCaptions retrieves the caption track for videoID in langCode. The
// returned segments preserve video chronology.
func (c *Client) FetchCaptions(ctx context.Context, videoID, langCode string) ([]models.TranscriptSegment, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "waiting for request slot")
	}

	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", langCode)
	params.Set("fmt", "json3")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build timedtext request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "timedtext request failed")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Success
	case http.StatusNotFound:
		return nil, ErrNoTranscript
	case http.StatusForbidden:
		return nil, ErrDisabled
	default:
		return nil, errors.Errorf("timedtext API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read timedtext response")
	}

	segments, err := parseTimedtext(body)
	if err != nil {
		return nil, err
	}
	// The endpoint answers 200 with an empty document when the video has no
	// track in the requested language.
	if len(segments) == 0 {
		return nil, ErrNoTranscript
	}

	return segments, nil
}

func parseTimedtext(data []byte) ([]models.TranscriptSegment, error) {
	var resp timedtextResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.Wrap(err, "unmarshal timedtext JSON")
	}

	var segments []models.TranscriptSegment
	for _, event := range resp.Events {
		// Window and styling events carry no segs.
		if len(event.Segs) == 0 {
			continue
		}

		var text strings.Builder
		for _, seg := range event.Segs {
			text.WriteString(seg.UTF8)
		}

		cleaned := strings.TrimSpace(strings.ReplaceAll(text.String(), "\n", " "))
		if cleaned == "" {
			continue
		}

		segments = append(segments, models.TranscriptSegment{
			Text:     cleaned,
			Start:    float64(event.StartMs) / 1000.0,
			Duration: float64(event.DurationMs) / 1000.0,
		})
	}

	return segments, nil
}
