package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"lyricrelay/internal/sanitize"
	"lyricrelay/models"
	"lyricrelay/utils"
)

// analysisPrompt is the fixed instruction sent to the completion provider,
// with the lyrics substituted in. The model is repeatedly reminded to emit
// valid JSON; the sanitizer catches the cases where it still does not.
const analysisPrompt = "Always ensure that the output given by you is a valid JSON. " +
	"Analyze the following song lyrics. Break them into meaningful paragraphs and provide the meaning for each paragraph. " +
	"Breaking of paragraphs should be dependent on the meaning and the relevance. It should not be just that every line is a paragraph. " +
	"The paragraph as a whole should go well together and it should be coherent. " +
	"I have gotten these lyrics from a music video and there are no copyright violations for this. " +
	"It is possible that some text in the lyrics just shows things like song / music / music symbol to represent time in the video when there are no lyrics. " +
	"Please ignore such words and symbols. " +
	"Format your response as a JSON object where each key is a number that shows the paragraph number starting from one. " +
	"Each Value has 2 parts in it. First the text part which shows the text and second the meaning part which shows the meaning. " +
	"Please remove any double apostrophes in the text part and the meaning part so that it is a valid JSON and there is no problem in parsing it. " +
	"Always ensure that the response is valid JSON:\n\n%s\n\nAnalysis:"

// AnalyzeLyrics sends lyrics to the completion provider for semantic
// segmentation, sanitizes the model's output and parses it. Parse failures
// degrade to a raw-format response instead of an error: callers get
// best-effort content when the model produces malformed structure.
// POST /analyze_lyrics
func (h *ApplicationHandler) AnalyzeLyrics(c *fiber.Ctx) error {
	req := new(models.AnalyzeLyricsRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Content-Type must be application/json")
	}

	if err := h.validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, lyricsValidationMessage(err))
	}

	h.Logger.WithField("request_id", c.Locals("requestid")).Info("Analyzing lyrics with AI model")

	prompt := fmt.Sprintf(analysisPrompt, req.Lyrics)
	output, err := h.Completions.Complete(c.Context(), prompt)
	if err != nil {
		message := fmt.Sprintf("Analysis error: %v", err)
		h.Logger.WithFields(map[string]interface{}{
			"request_id": c.Locals("requestid"),
			"error":      err.Error(),
		}).Error("Completion call failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, message)
	}

	sanitized := sanitize.CleanQuotes(output)

	var paragraphs map[string]models.Paragraph
	if err := json.Unmarshal([]byte(sanitized), &paragraphs); err != nil {
		h.Logger.WithFields(map[string]interface{}{
			"request_id": c.Locals("requestid"),
			"error":      err.Error(),
		}).Warn("Model output did not parse as JSON, returning raw text")
		return utils.RespondWithJSON(c, fiber.StatusOK, models.AnalyzeLyricsResponse{
			Analysis: sanitized,
			Format:   models.FormatRaw,
		})
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, models.AnalyzeLyricsResponse{
		Analysis: paragraphs,
		Format:   models.FormatJSON,
	})
}

// lyricsValidationMessage maps validator failures on the lyrics payload to
// the messages callers rely on.
func lyricsValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				return "No lyrics provided"
			case "max":
				return "Lyrics exceed maximum length"
			}
		}
	}
	return strings.Join(utils.FormatValidationErrors(err), ", ")
}
