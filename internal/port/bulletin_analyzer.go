package port

import (
	"context"

	"github.com/adamamaa/worship/internal/domain"
)

// AnalyzeInput carries the data needed for one bulletin analysis.
type AnalyzeInput struct {
	ImageBytes  []byte
	ContentType string
	Credential  string
}

// AnalyzeOutput pairs the extracted record with call metadata.
type AnalyzeOutput struct {
	Record     *domain.BulletinRecord
	ModelUsed  string
	PromptUsed string
}

// BulletinAnalyzer abstracts LLM-based bulletin field extraction.
type BulletinAnalyzer interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeOutput, error)
}
