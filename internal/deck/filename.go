package deck

import (
	"fmt"
	"regexp"
	"strings"
)

// invalidFilename matches characters unsafe in a download filename. Unicode
// letters stay: sermon titles are usually Korean.
var invalidFilename = regexp.MustCompile(`[^\p{L}\p{N} _-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// BuildDownloadFilename returns the Content-Disposition filename for a filled
// presentation: {sanitized_sermon_title}_예배.pptx.
func BuildDownloadFilename(sermonTitle string) string {
	s := invalidFilename.ReplaceAllString(sermonTitle, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_ ")
	if r := []rune(s); len(r) > 100 {
		s = string(r[:100])
	}
	if s == "" {
		s = "주보"
	}
	return fmt.Sprintf("%s_예배.pptx", s)
}
