package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timedTextXML = `<?xml version="1.0" encoding="utf-8" ?>
<transcript>
  <text start="0.0" dur="2.5">First line</text>
  <text start="2.5" dur="3.0">She said &amp;#39;hello&amp;#39;</text>
  <text start="5.5" dur="1.0">   </text>
  <text start="6.5" dur="2.0">Last line</text>
</transcript>`

func TestFetchTranscript(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "abc123", r.URL.Query().Get("v"))
		page := fmt.Sprintf(
			`<html><script>var ytInitialPlayerResponse = {"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[`+
				`{"baseUrl":"%s/api/timedtext?lang=en-GB","languageCode":"en-GB"},`+
				`{"baseUrl":"%s/api/timedtext?lang=hi","languageCode":"hi"}`+
				`]}}};</script></html>`,
			server.URL, server.URL)
		w.Write([]byte(page))
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		// hi outranks en-GB in the preference list.
		require.Equal(t, "hi", r.URL.Query().Get("lang"))
		w.Write([]byte(timedTextXML))
	})

	client := NewClientWithBaseURL(server.URL)
	segments, err := client.FetchTranscript(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, []string{"First line", "She said 'hello'", "Last line"}, segments)
}

func TestFetchTranscript_NoCaptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>nothing here</body></html>`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.FetchTranscript(context.Background(), "abc123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no captions available")
}

func TestSelectTrack_PreferenceOrder(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "u1", LanguageCode: "en"},
		{BaseURL: "u2", LanguageCode: "es"},
		{BaseURL: "u3", LanguageCode: "hi"},
	}

	// hi comes before es and en in the preference list.
	got := selectTrack(tracks, LanguagePreference)
	assert.Equal(t, "hi", got.LanguageCode)
}

func TestSelectTrack_FallbackToFirst(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "u1", LanguageCode: "fr"},
		{BaseURL: "u2", LanguageCode: "de"},
	}

	got := selectTrack(tracks, LanguagePreference)
	assert.Equal(t, "fr", got.LanguageCode)
}

func TestParseTimedText_OrderAndUnescaping(t *testing.T) {
	segments, err := parseTimedText([]byte(timedTextXML))

	require.NoError(t, err)
	require.Len(t, segments, 3)
	assert.Equal(t, "First line", segments[0])
	assert.Equal(t, "She said 'hello'", segments[1])
	assert.Equal(t, "Last line", segments[2])
}

func TestParseTimedText_Empty(t *testing.T) {
	_, err := parseTimedText([]byte(`<transcript></transcript>`))
	require.Error(t, err)
}
