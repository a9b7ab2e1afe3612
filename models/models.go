package models

// TranscriptResponse carries the fetched transcript as a flat list of
// segment texts in chronological order. Timing metadata is not retained.
type TranscriptResponse struct {
	Transcript []string `json:"transcript"`
}

// AnalyzeLyricsRequest is the body of POST /analyze_lyrics. Lyrics are
// capped at 10,000 characters; oversized or missing lyrics are rejected
// before any model call is made.
type AnalyzeLyricsRequest struct {
	Lyrics string `json:"lyrics" validate:"required,max=10000"`
}

// Paragraph is one entry of a successfully parsed analysis: the paragraph
// text and the model's explanation of its meaning.
type Paragraph struct {
	Text    string `json:"text"`
	Meaning string `json:"meaning"`
}

// AnalyzeLyricsResponse wraps the analysis result. Format is "json" when the
// model output parsed into paragraphs, "raw" when the sanitized text is
// returned as-is after a parse failure.
type AnalyzeLyricsResponse struct {
	Analysis interface{} `json:"analysis"`
	Format   string      `json:"format"`
}

// Format markers for AnalyzeLyricsResponse.
const (
	FormatJSON = "json"
	FormatRaw  = "raw"
)

// ErrorResponse is the common error envelope for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
