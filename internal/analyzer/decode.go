package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adamamaa/worship/internal/domain"
)

// StripFences removes markdown code-fence markers from a model reply. Models
// occasionally wrap their JSON in ```json fences despite being asked not to.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// DecodeRecord parses a model reply into a fully defaulted BulletinRecord.
// Omitted fields stay empty strings; the hymn list is never nil.
func DecodeRecord(reply string) (*domain.BulletinRecord, error) {
	var rec domain.BulletinRecord
	if err := json.Unmarshal([]byte(StripFences(reply)), &rec); err != nil {
		return nil, fmt.Errorf("parsing LLM JSON output: %w (raw: %s)", err, truncate(reply, 500))
	}
	rec.Normalize()
	return &rec, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
