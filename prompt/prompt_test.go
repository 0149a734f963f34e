package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"ytinsight/models"
)

func TestJoinSegments(t *testing.T) {
	segments := []models.TranscriptSegment{
		{Text: "premier", Start: 0, Duration: 2},
		{Text: "deuxième", Start: 2, Duration: 2},
		{Text: "troisième", Start: 4, Duration: 2},
	}

	if got := JoinSegments(segments); got != "premier deuxième troisième" {
		t.Errorf("JoinSegments = %q", got)
	}

	if got := JoinSegments(nil); got != "" {
		t.Errorf("JoinSegments(nil) = %q, want empty", got)
	}
}

func TestTruncate(t *testing.T) {
	t.Run("Under limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", MaxChars-1)
		if got := Truncate(text); got != text {
			t.Error("text under the limit must pass through unchanged")
		}
	})

	t.Run("At limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", MaxChars)
		if got := Truncate(text); got != text {
			t.Error("text at the limit must pass through unchanged")
		}
	})

	t.Run("Over limit cut with marker", func(t *testing.T) {
		text := strings.Repeat("a", MaxChars+500)
		got := Truncate(text)

		if !strings.HasSuffix(got, truncationMarker) {
			t.Fatal("expected truncation marker suffix")
		}
		kept := strings.TrimSuffix(got, truncationMarker)
		if utf8.RuneCountInString(kept) != MaxChars {
			t.Errorf("expected exactly %d chars kept, got %d", MaxChars, utf8.RuneCountInString(kept))
		}
	})

	t.Run("Multibyte text cut on rune boundary", func(t *testing.T) {
		text := strings.Repeat("é", MaxChars+1)
		got := Truncate(text)

		kept := strings.TrimSuffix(got, truncationMarker)
		if !utf8.ValidString(kept) {
			t.Error("truncation split a rune")
		}
		if utf8.RuneCountInString(kept) != MaxChars {
			t.Errorf("expected %d chars, got %d", MaxChars, utf8.RuneCountInString(kept))
		}
	})
}

func TestBuildersEmbedTranscript(t *testing.T) {
	const transcript = "ceci est la transcription de test"

	tests := []struct {
		name    string
		build   func(string) string
		mention string
	}{
		{"Summary", Summary, "bullet points"},
		{"KeyMoments", KeyMoments, `"keyMoments"`},
		{"EnhancedTranscript", EnhancedTranscript, `"enhancedTranscript"`},
		{"TopComments", TopComments, `"analysisInsights"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.build(transcript)
			if !strings.Contains(got, transcript) {
				t.Error("prompt must embed the transcript text")
			}
			if !strings.Contains(got, tt.mention) {
				t.Errorf("prompt missing expected instruction %q", tt.mention)
			}
		})
	}
}
