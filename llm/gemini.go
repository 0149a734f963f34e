package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"ytinsight/config"
	"ytinsight/errors"
)

// Gemini implements Gateway against the Google generative-model API.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *logrus.Logger
}

func NewGemini(ctx context.Context, cfg config.LLMConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "create genai client")
	}
	return &Gemini{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logrus.StandardLogger(),
	}, nil
}

func (g *Gemini) Generate(ctx context.Context, systemRole, prompt string, jsonMode bool) (string, error) {
	const op = "Gemini.Generate"

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemRole)},
	}
	if jsonMode {
		model.ResponseMIMEType = "application/json"
	}

	start := time.Now()
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.WithFields(logrus.Fields{
			"model":    g.model,
			"duration": time.Since(start),
		}).WithError(err).Error("Model call failed")
		return "", errors.Internal(op, err, fmt.Sprintf("Erreur lors du traitement: %v", err))
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.Internal(op, nil, "Réponse vide du modèle")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}

	g.logger.WithFields(logrus.Fields{
		"model":       g.model,
		"duration":    time.Since(start),
		"output_size": out.Len(),
	}).Debug("Model call completed")

	return out.String(), nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}
