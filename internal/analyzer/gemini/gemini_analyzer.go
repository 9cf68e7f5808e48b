package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/adamamaa/worship/internal/analyzer"
	"github.com/adamamaa/worship/internal/config"
	"github.com/adamamaa/worship/internal/port"
)

const (
	apiBaseURL    = "https://generativelanguage.googleapis.com/v1beta/models"
	uploadBaseURL = "https://generativelanguage.googleapis.com/upload/v1beta/files"
)

// Analyzer implements port.BulletinAnalyzer against the Google Gemini API.
// The bulletin image goes through the Files API first (which takes a file on
// disk), then one generateContent call combines the uploaded file reference
// with the extraction prompt.
type Analyzer struct {
	model            string
	uploadEndpoint   string
	generateEndpoint string
	client           *http.Client
}

// NewAnalyzer creates a Gemini-based bulletin analyzer.
func NewAnalyzer(cfg *config.ParserConfig) *Analyzer {
	return newAnalyzer(cfg, "", "")
}

// NewAnalyzerWithEndpoints creates an analyzer pointing at custom upload and
// generate endpoints (for testing).
func NewAnalyzerWithEndpoints(cfg *config.ParserConfig, uploadEndpoint, generateEndpoint string) *Analyzer {
	return newAnalyzer(cfg, uploadEndpoint, generateEndpoint)
}

func newAnalyzer(cfg *config.ParserConfig, uploadEndpoint, generateEndpoint string) *Analyzer {
	model := cfg.DefaultModel
	if model == "" {
		model = "gemini-3-flash-preview"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	if uploadEndpoint == "" {
		uploadEndpoint = uploadBaseURL
	}
	if generateEndpoint == "" {
		generateEndpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Analyzer{
		model:            model,
		uploadEndpoint:   uploadEndpoint,
		generateEndpoint: generateEndpoint,
		client:           &http.Client{Timeout: timeout},
	}
}

// Analyze uploads the bulletin image and extracts the six bulletin fields.
// Single attempt, no retries; the credential comes from the caller so the
// operator can change keys without restarting.
func (a *Analyzer) Analyze(ctx context.Context, input port.AnalyzeInput) (*port.AnalyzeOutput, error) {
	mimeType, err := toGeminiMimeType(input.ContentType)
	if err != nil {
		return nil, err
	}

	// The Files API client works from a path, so the upload bytes are staged
	// in a temp file scoped to this call. Removal runs on every exit path.
	tmp, err := os.CreateTemp("", "bulletin-*.img")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(input.ImageBytes); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing temp file: %w", err)
	}

	fileURI, err := a.uploadFile(ctx, tmpPath, mimeType, input.Credential)
	if err != nil {
		return nil, err
	}

	prompt := analyzer.BuildBulletinPrompt()

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{
						"file_data": map[string]interface{}{
							"mime_type": mimeType,
							"file_uri":  fileURI,
						},
					},
					{
						"text": prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"maxOutputTokens":  8192,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.generateEndpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", input.Credential)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseResponse(respBody, a.model, prompt)
}

// uploadFile pushes the staged image to the Files API with the raw upload
// protocol and returns the file URI to reference in generateContent.
func (a *Analyzer) uploadFile(ctx context.Context, path, mimeType, credential string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening temp file: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat temp file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.uploadEndpoint, f)
	if err != nil {
		return "", fmt.Errorf("creating upload request: %w", err)
	}
	req.ContentLength = info.Size()
	req.Header.Set("Content-Type", mimeType)
	req.Header.Set("X-Goog-Upload-Protocol", "raw")
	req.Header.Set("x-goog-api-key", credential)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading file to gemini: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading upload response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini upload error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var uploaded struct {
		File struct {
			Name string `json:"name"`
			URI  string `json:"uri"`
		} `json:"file"`
	}
	if err := json.Unmarshal(respBody, &uploaded); err != nil {
		return "", fmt.Errorf("unmarshaling upload response: %w", err)
	}
	if uploaded.File.URI == "" {
		return "", fmt.Errorf("upload response missing file uri")
	}

	return uploaded.File.URI, nil
}

func toGeminiMimeType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg":
		return "image/jpeg", nil
	case "image/png":
		return "image/png", nil
	default:
		return "", fmt.Errorf("unsupported content type for analysis: %s", contentType)
	}
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func parseResponse(body []byte, model, prompt string) (*port.AnalyzeOutput, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from API: no candidates")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from API: no parts")
	}

	text := resp.Candidates[0].Content.Parts[0].Text

	rec, err := analyzer.DecodeRecord(text)
	if err != nil {
		return nil, err
	}

	return &port.AnalyzeOutput{
		Record:     rec,
		ModelUsed:  model,
		PromptUsed: prompt,
	}, nil
}
