package transcript

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"testing"

	"ytinsight/errors"
	"ytinsight/models"
)

// fakeFetcher serves canned per-language results and counts calls.
type fakeFetcher struct {
	tracks map[string][]models.TranscriptSegment
	err    map[string]error
	calls  int
}

func (f *fakeFetcher) FetchCaptions(_ context.Context, _, langCode string) ([]models.TranscriptSegment, error) {
	f.calls++
	if err, ok := f.err[langCode]; ok {
		return nil, err
	}
	if segs, ok := f.tracks[langCode]; ok {
		return segs, nil
	}
	return nil, ErrNoTranscript
}

func segs(texts ...string) []models.TranscriptSegment {
	out := make([]models.TranscriptSegment, len(texts))
	for i, text := range texts {
		out[i] = models.TranscriptSegment{Text: text, Start: float64(i), Duration: 1}
	}
	return out
}

func newTestService(t *testing.T, fetcher *fakeFetcher) Service {
	t.Helper()
	svc, err := NewService(fetcher, Config{CacheSize: 10})
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return svc
}

func TestFetchPrefersEnglish(t *testing.T) {
	fetcher := &fakeFetcher{tracks: map[string][]models.TranscriptSegment{
		"en": segs("hello", "world"),
		"fr": segs("bonjour"),
	}}
	svc := newTestService(t, fetcher)

	got, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ", "fr")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(got) != 2 || got[0].Text != "hello" {
		t.Errorf("expected English track, got %+v", got)
	}
	if fetcher.calls != 1 {
		t.Errorf("expected a single provider call, got %d", fetcher.calls)
	}
}

func TestFetchFallsBackToRequestedLanguage(t *testing.T) {
	fetcher := &fakeFetcher{tracks: map[string][]models.TranscriptSegment{
		"fr": segs("bonjour", "le", "monde"),
	}}
	svc := newTestService(t, fetcher)

	got, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ", "fr")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(got) != 3 || got[0].Text != "bonjour" {
		t.Errorf("expected French track, got %+v", got)
	}
	if fetcher.calls != 2 {
		t.Errorf("expected two provider calls (en then fr), got %d", fetcher.calls)
	}
}

func TestFetchNotFoundNamesRequestedLanguage(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := newTestService(t, fetcher)

	_, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ", "fr")
	if errors.Code(err) != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (%v)", errors.Code(err), err)
	}
	if !strings.Contains(err.Error(), "fr") {
		t.Errorf("expected message to name the requested language, got %q", err.Error())
	}
}

func TestFetchEnglishRequestedSkipsSecondAttempt(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := newTestService(t, fetcher)

	_, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ", "en")
	if errors.Code(err) != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", errors.Code(err))
	}
	if fetcher.calls != 1 {
		t.Errorf("expected one provider call when en is also the target, got %d", fetcher.calls)
	}
}

func TestFetchDisabledShortCircuits(t *testing.T) {
	fetcher := &fakeFetcher{err: map[string]error{"en": ErrDisabled, "fr": ErrDisabled}}
	svc := newTestService(t, fetcher)

	_, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ", "fr")
	if errors.Code(err) != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (%v)", errors.Code(err), err)
	}
	if fetcher.calls != 1 {
		t.Errorf("disabled must short-circuit further attempts, got %d calls", fetcher.calls)
	}
}

func TestFetchDisabledOnFallbackAttempt(t *testing.T) {
	fetcher := &fakeFetcher{err: map[string]error{
		"en": ErrNoTranscript,
		"fr": ErrDisabled,
	}}
	svc := newTestService(t, fetcher)

	_, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ", "fr")
	if errors.Code(err) != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (%v)", errors.Code(err), err)
	}
}

func TestFetchProviderErrorIsInternal(t *testing.T) {
	fetcher := &fakeFetcher{err: map[string]error{"en": stderrors.New("connection reset")}}
	svc := newTestService(t, fetcher)

	_, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ", "fr")
	if errors.Code(err) != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d (%v)", errors.Code(err), err)
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("expected underlying message to surface, got %q", err.Error())
	}
}

func TestFetchCachesSuccessfulResults(t *testing.T) {
	fetcher := &fakeFetcher{tracks: map[string][]models.TranscriptSegment{
		"en": segs("cached"),
	}}
	svc := newTestService(t, fetcher)

	for i := 0; i < 3; i++ {
		if _, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ", "fr"); err != nil {
			t.Fatalf("Fetch returned error: %v", err)
		}
	}
	if fetcher.calls != 1 {
		t.Errorf("expected repeated fetches to hit the cache, got %d provider calls", fetcher.calls)
	}

	// A different (video, language) key is a distinct entry.
	if _, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ", "en"); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if fetcher.calls != 2 {
		t.Errorf("expected a new provider call for a new key, got %d", fetcher.calls)
	}
}

func TestFetchDoesNotCacheErrors(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := newTestService(t, fetcher)

	for i := 0; i < 2; i++ {
		if _, err := svc.Fetch(context.Background(), "dQw4w9WgXcQ", "fr"); errors.Code(err) != http.StatusNotFound {
			t.Fatalf("expected 404, got %v", err)
		}
	}
	if fetcher.calls != 4 {
		t.Errorf("failed lookups must be recomputed on every request, got %d calls", fetcher.calls)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	fetcher := &fakeFetcher{tracks: map[string][]models.TranscriptSegment{
		"en": segs("a"),
	}}
	svc, err := NewService(fetcher, Config{CacheSize: 2})
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}

	ids := []string{"aaaaaaaaaaa", "bbbbbbbbbbb", "ccccccccccc"}
	for _, id := range ids {
		if _, err := svc.Fetch(context.Background(), id, "fr"); err != nil {
			t.Fatalf("Fetch returned error: %v", err)
		}
	}
	if fetcher.calls != 3 {
		t.Fatalf("expected 3 provider calls, got %d", fetcher.calls)
	}

	// First key was evicted by the third insert, so it refetches.
	if _, err := svc.Fetch(context.Background(), ids[0], "fr"); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if fetcher.calls != 4 {
		t.Errorf("expected eviction to force a refetch, got %d calls", fetcher.calls)
	}

	// Third key is still resident.
	if _, err := svc.Fetch(context.Background(), ids[2], "fr"); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if fetcher.calls != 4 {
		t.Errorf("expected cache hit for resident key, got %d calls", fetcher.calls)
	}
}
