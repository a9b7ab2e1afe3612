// Package youtube fetches video transcripts. It scrapes the caption track
// list from the watch page's embedded player response, picks a track by
// language preference, and parses the track's timedtext XML.
package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultWatchBaseURL = "https://www.youtube.com"

// LanguagePreference is the ordered list of transcript languages to try.
// The first language with an available caption track wins.
var LanguagePreference = []string{"hi-Latn", "hi", "es", "en-IN", "en", "en-GB"}

// Client fetches transcripts over plain HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a transcript client with a sane request timeout.
func NewClient() *Client {
	return &Client{
		baseURL:    defaultWatchBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBaseURL targets a custom host. Used by tests.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

// FetchTranscript returns the transcript of videoID as a flat list of
// segment texts in chronological order. Timing metadata is dropped.
func (c *Client) FetchTranscript(ctx context.Context, videoID string) ([]string, error) {
	page, err := c.fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}

	tracks, err := extractCaptionTracks(page)
	if err != nil {
		return nil, fmt.Errorf("youtube: video %s: %w", videoID, err)
	}

	track := selectTrack(tracks, LanguagePreference)

	body, err := c.get(ctx, track.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("youtube: fetch timedtext for %s: %w", videoID, err)
	}

	segments, err := parseTimedText(body)
	if err != nil {
		return nil, fmt.Errorf("youtube: parse timedtext for %s: %w", videoID, err)
	}
	return segments, nil
}

func (c *Client) fetchWatchPage(ctx context.Context, videoID string) ([]byte, error) {
	url := c.baseURL + "/watch?v=" + videoID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: build watch request: %w", err)
	}
	// The consent wall and some experiments hide the player response from
	// clients without a browser-ish Accept-Language.
	req.Header.Set("Accept-Language", "en-US,en")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube: fetch watch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube: watch page returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

const captionTracksMarker = `"captionTracks":`

// extractCaptionTracks pulls the caption track array out of the player
// response JSON embedded in the watch page.
func extractCaptionTracks(page []byte) ([]captionTrack, error) {
	idx := strings.Index(string(page), captionTracksMarker)
	if idx < 0 {
		return nil, fmt.Errorf("no captions available")
	}

	var tracks []captionTrack
	dec := json.NewDecoder(strings.NewReader(string(page[idx+len(captionTracksMarker):])))
	if err := dec.Decode(&tracks); err != nil {
		return nil, fmt.Errorf("decode caption tracks: %w", err)
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("no captions available")
	}
	return tracks, nil
}

// selectTrack returns the first track matching the earliest possible
// preferred language. When nothing matches, the first track is used so the
// caller still gets a transcript rather than an error.
func selectTrack(tracks []captionTrack, preferences []string) captionTrack {
	for _, lang := range preferences {
		for _, track := range tracks {
			if track.LanguageCode == lang {
				return track
			}
		}
	}
	return tracks[0]
}

type timedText struct {
	Texts []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Body  string `xml:",chardata"`
	} `xml:"text"`
}

// parseTimedText extracts segment texts from a timedtext XML document,
// preserving document order. Entities are double-encoded in the feed, so
// one more unescape pass runs after the XML decoder's own.
func parseTimedText(data []byte) ([]string, error) {
	var doc timedText
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	segments := make([]string, 0, len(doc.Texts))
	for _, entry := range doc.Texts {
		text := html.UnescapeString(entry.Body)
		if strings.TrimSpace(text) == "" {
			continue
		}
		segments = append(segments, text)
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("transcript is empty")
	}
	return segments, nil
}
