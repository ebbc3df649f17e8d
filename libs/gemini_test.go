package libs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContentRequiresKey(t *testing.T) {
	client := NewGeminiClient("", "gemini-3-flash-preview", time.Second)

	assert.False(t, client.Configured())

	_, err := client.GenerateContent(context.Background(), "hello")
	assert.Error(t, err)
}

func TestGenerateContentConcatenatesParts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-3-flash-preview:generateContent", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hello "},{"text":"there."}]}}]}`))
	}))
	defer server.Close()

	client := NewGeminiClient("key", "gemini-3-flash-preview", time.Second)
	client.SetBaseURL(server.URL)

	text, err := client.GenerateContent(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello there.", text)
}

func TestGenerateContentSurfacesHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGeminiClient("key", "gemini-3-flash-preview", time.Second)
	client.SetBaseURL(server.URL)

	_, err := client.GenerateContent(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
