package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// TranscriptProvider defines the transcript-fetch operation handlers expect.
// This allows for decoupling and easier testing; the concrete implementation
// lives in internal/youtube.
type TranscriptProvider interface {
	FetchTranscript(ctx context.Context, videoID string) ([]string, error)
}

// CompletionProvider defines the one-shot text completion operation. The
// concrete implementation lives in internal/claude.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ApplicationHandler holds shared dependencies for handlers. Provider
// clients are injected at construction time rather than read from package
// globals so tests can substitute fakes.
type ApplicationHandler struct {
	Transcripts TranscriptProvider
	Completions CompletionProvider
	Logger      *logrus.Logger
	validate    *validator.Validate
}

// NewApplicationHandler creates an ApplicationHandler with the given
// dependencies.
func NewApplicationHandler(transcripts TranscriptProvider, completions CompletionProvider, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Transcripts: transcripts,
		Completions: completions,
		Logger:      logger,
		validate:    validator.New(),
	}
}
