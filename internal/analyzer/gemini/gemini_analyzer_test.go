package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gemini "github.com/adamamaa/worship/internal/analyzer/gemini"
	"github.com/adamamaa/worship/internal/config"
	"github.com/adamamaa/worship/internal/port"
)

func newTestAnalyzer(uploadURL, generateURL string) *gemini.Analyzer {
	cfg := &config.ParserConfig{
		DefaultModel: "gemini-3-flash-preview",
		TimeoutSecs:  30,
	}
	return gemini.NewAnalyzerWithEndpoints(cfg, uploadURL, generateURL)
}

func uploadSuccessResponse() map[string]interface{} {
	return map[string]interface{}{
		"file": map[string]interface{}{
			"name": "files/abc123",
			"uri":  "https://generativelanguage.googleapis.com/v1beta/files/abc123",
		},
	}
}

func generateSuccessResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestAnalyze_Success(t *testing.T) {
	imageBytes := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}

	uploadServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "raw", r.Header.Get("X-Goog-Upload-Protocol"))
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, imageBytes, body)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(uploadSuccessResponse())
	}))
	defer uploadServer.Close()

	llmJSON := `{"sermon_title":"은혜의 강단","preacher":"김철수 목사","prayer_person":"이영희 집사","bible_ref":"요한복음 3:16","bible_text":"하나님이 세상을 이처럼 사랑하사","hymn_list":["찬송가 301장","은혜"]}`

	generateServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)

		contents := reqBody["contents"].([]interface{})
		assert.Len(t, contents, 1)
		msg := contents[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])

		parts := msg["parts"].([]interface{})
		assert.Len(t, parts, 2)

		// First part: uploaded file reference
		filePart := parts[0].(map[string]interface{})
		fileData := filePart["file_data"].(map[string]interface{})
		assert.Equal(t, "image/jpeg", fileData["mime_type"])
		assert.Contains(t, fileData["file_uri"], "files/abc123")

		// Second part: extraction prompt
		textPart := parts[1].(map[string]interface{})
		assert.Contains(t, textPart["text"], "sermon_title")
		assert.Contains(t, textPart["text"], "개역개정")

		genConfig := reqBody["generationConfig"].(map[string]interface{})
		assert.Equal(t, "application/json", genConfig["responseMimeType"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(generateSuccessResponse(llmJSON))
	}))
	defer generateServer.Close()

	a := newTestAnalyzer(uploadServer.URL, generateServer.URL)

	out, err := a.Analyze(context.Background(), port.AnalyzeInput{
		ImageBytes:  imageBytes,
		ContentType: "image/jpeg",
		Credential:  "test-key",
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "gemini-3-flash-preview", out.ModelUsed)
	assert.NotEmpty(t, out.PromptUsed)

	rec := out.Record
	require.NotNil(t, rec)
	assert.Equal(t, "은혜의 강단", rec.SermonTitle)
	assert.Equal(t, "김철수 목사", rec.Preacher)
	assert.Equal(t, []string{"찬송가 301장", "은혜"}, rec.Hymns)
}

func TestAnalyze_FencedReplyStripped(t *testing.T) {
	uploadServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(uploadSuccessResponse())
	}))
	defer uploadServer.Close()

	fenced := "```json\n{\"sermon_title\":\"Easter\",\"hymn_list\":[]}\n```"
	generateServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(generateSuccessResponse(fenced))
	}))
	defer generateServer.Close()

	a := newTestAnalyzer(uploadServer.URL, generateServer.URL)

	out, err := a.Analyze(context.Background(), port.AnalyzeInput{
		ImageBytes:  []byte{0x89, 0x50, 0x4E, 0x47},
		ContentType: "image/png",
		Credential:  "test-key",
	})

	require.NoError(t, err)
	assert.Equal(t, "Easter", out.Record.SermonTitle)
}

func TestAnalyze_NonJSONReply(t *testing.T) {
	uploadServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(uploadSuccessResponse())
	}))
	defer uploadServer.Close()

	generateServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(generateSuccessResponse("주보가 흐릿해서 읽을 수 없습니다."))
	}))
	defer generateServer.Close()

	a := newTestAnalyzer(uploadServer.URL, generateServer.URL)

	_, err := a.Analyze(context.Background(), port.AnalyzeInput{
		ImageBytes:  []byte{0xFF, 0xD8},
		ContentType: "image/jpeg",
		Credential:  "test-key",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing LLM JSON output")
}

func TestAnalyze_UploadError(t *testing.T) {
	uploadServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer uploadServer.Close()

	a := newTestAnalyzer(uploadServer.URL, "http://unused.invalid")

	_, err := a.Analyze(context.Background(), port.AnalyzeInput{
		ImageBytes:  []byte{0xFF, 0xD8},
		ContentType: "image/jpeg",
		Credential:  "bad-key",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestAnalyze_GenerateError(t *testing.T) {
	uploadServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(uploadSuccessResponse())
	}))
	defer uploadServer.Close()

	generateServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"internal"}}`))
	}))
	defer generateServer.Close()

	a := newTestAnalyzer(uploadServer.URL, generateServer.URL)

	_, err := a.Analyze(context.Background(), port.AnalyzeInput{
		ImageBytes:  []byte{0xFF, 0xD8},
		ContentType: "image/jpeg",
		Credential:  "test-key",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestAnalyze_EmptyCandidates(t *testing.T) {
	uploadServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(uploadSuccessResponse())
	}))
	defer uploadServer.Close()

	generateServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer generateServer.Close()

	a := newTestAnalyzer(uploadServer.URL, generateServer.URL)

	_, err := a.Analyze(context.Background(), port.AnalyzeInput{
		ImageBytes:  []byte{0xFF, 0xD8},
		ContentType: "image/jpeg",
		Credential:  "test-key",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestAnalyze_UnsupportedContentType(t *testing.T) {
	a := newTestAnalyzer("http://unused.invalid", "http://unused.invalid")

	_, err := a.Analyze(context.Background(), port.AnalyzeInput{
		ImageBytes:  []byte("%PDF-1.4"),
		ContentType: "application/pdf",
		Credential:  "test-key",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}
