package models

// GenerateRequest is the body shared by every generation endpoint.
type GenerateRequest struct {
	VideoID    string `json:"videoId"`
	TargetLang string `json:"targetLang,omitempty"`
}

// TranscriptSegment is one timed caption entry from a video's subtitle track.
// Segments are ordered by Start ascending and never consumed partially.
type TranscriptSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Timestamp mirrors a caption segment in the timestamped-summary response.
type Timestamp struct {
	Time     float64 `json:"time"`
	Text     string  `json:"text"`
	Duration float64 `json:"duration"`
}

type SummaryResponse struct {
	Summary  string          `json:"summary"`
	Metadata SummaryMetadata `json:"metadata"`
}

type SummaryMetadata struct {
	VideoID   string `json:"videoId"`
	Language  string `json:"language"`
	CharCount int    `json:"charCount"`
}

type TimestampedSummaryResponse struct {
	Analysis   string                     `json:"analysis"`
	Timestamps []Timestamp                `json:"timestamps"`
	Metadata   TimestampedSummaryMetadata `json:"metadata"`
}

type TimestampedSummaryMetadata struct {
	VideoID      string `json:"videoId"`
	Language     string `json:"language"`
	MomentsCount int    `json:"momentsCount"`
}

type EnhancedTranscriptResponse struct {
	Result   string                     `json:"result"`
	Metadata EnhancedTranscriptMetadata `json:"metadata"`
}

type EnhancedTranscriptMetadata struct {
	VideoID        string `json:"videoId"`
	Language       string `json:"language"`
	OriginalLength int    `json:"originalLength"`
}

type TopCommentsResponse struct {
	Result   string              `json:"result"`
	Metadata TopCommentsMetadata `json:"metadata"`
}

type TopCommentsMetadata struct {
	VideoID     string `json:"videoId"`
	Language    string `json:"language"`
	GeneratedAt string `json:"generatedAt"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the uniform envelope for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}
