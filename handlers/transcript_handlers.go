package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"lyricrelay/models"
	"lyricrelay/utils"
)

// GetTranscript fetches the transcript for a video and returns it as a flat
// list of segment texts in chronological order.
// GET /get_transcript?video_id=<id>
func (h *ApplicationHandler) GetTranscript(c *fiber.Ctx) error {
	videoID := c.Query("video_id")
	if videoID == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "No video ID provided")
	}

	h.Logger.WithFields(map[string]interface{}{
		"request_id": c.Locals("requestid"),
		"video_id":   videoID,
	}).Info("Attempting to fetch transcript")

	segments, err := h.Transcripts.FetchTranscript(c.Context(), videoID)
	if err != nil {
		message := fmt.Sprintf("Transcript fetch error: %v", err)
		h.Logger.WithFields(map[string]interface{}{
			"request_id": c.Locals("requestid"),
			"video_id":   videoID,
			"error":      err.Error(),
		}).Error("Transcript fetch failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, message)
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, models.TranscriptResponse{
		Transcript: segments,
	})
}
