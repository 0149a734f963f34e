package validation

import (
	"regexp"
	"strings"

	"ytinsight/config"
	"ytinsight/errors"
)

// YouTube video IDs are exactly 11 characters from the id charset.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

type Validator struct {
	config *config.Config
}

func NewValidator(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// ValidateVideoID checks the shape of a YouTube video identifier.
func (v *Validator) ValidateVideoID(id string) error {
	const op = "Validator.ValidateVideoID"

	if id == "" {
		return errors.InvalidInput(op, nil, "videoId est requis")
	}

	if !videoIDPattern.MatchString(id) {
		return errors.InvalidInput(op, nil, "Format d'ID vidéo YouTube invalide")
	}

	return nil
}

// NormalizeLanguage lowercases lang and returns it when it is in the
// supported set, otherwise the configured default. It never fails.
func (v *Validator) NormalizeLanguage(lang string) string {
	lang = strings.ToLower(lang)
	for _, supported := range v.config.Transcript.SupportedLanguages {
		if lang == supported {
			return lang
		}
	}
	return v.config.Transcript.DefaultLanguage
}
