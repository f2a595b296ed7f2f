package textgen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samer-Gassouma/aeon-generator/internal/clients/textgen"
	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
)

func TestComplete(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"object": "text_completion",
			"choices": [{"text": " glows with molten light.", "index": 0}]
		}`))
	}))
	defer srv.Close()

	client, err := textgen.New(&textgen.Config{
		BaseURL: srv.URL,
		Model:   "distilgpt2",
	})
	require.NoError(t, err)

	output, err := client.Complete(context.Background(), &textgen.CompleteInput{
		Prompt:           "This legendary weapon",
		MaxTokens:        60,
		Temperature:      0.8,
		FrequencyPenalty: 1.2,
	})
	require.NoError(t, err)
	assert.Equal(t, " glows with molten light.", output.Text)

	assert.Equal(t, "distilgpt2", gotBody["model"])
	assert.Equal(t, "This legendary weapon", gotBody["prompt"])
	assert.Equal(t, float64(60), gotBody["max_tokens"])
}

func TestComplete_BackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := textgen.New(&textgen.Config{BaseURL: srv.URL, Model: "distilgpt2"})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), &textgen.CompleteInput{Prompt: "a sword"})
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestComplete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object": "text_completion", "choices": []}`))
	}))
	defer srv.Close()

	client, err := textgen.New(&textgen.Config{BaseURL: srv.URL, Model: "distilgpt2"})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), &textgen.CompleteInput{Prompt: "a sword"})
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
}

func TestComplete_EmptyPrompt(t *testing.T) {
	client, err := textgen.New(&textgen.Config{Model: "distilgpt2"})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), &textgen.CompleteInput{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNew_MissingModel(t *testing.T) {
	_, err := textgen.New(&textgen.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model is required")
}
