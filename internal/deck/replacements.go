package deck

import (
	"fmt"

	"github.com/adamamaa/worship/internal/domain"
)

// Replacements builds the placeholder-to-value table for one record. Hymn
// tokens are 1-based ({{찬송1}}, {{찬송2}}, ...); indices past the end of the
// hymn list get no entry, so those tokens stay literal in the output.
func Replacements(rec *domain.BulletinRecord) map[string]string {
	repl := map[string]string{
		"{{설교제목}}": rec.SermonTitle,
		"{{설교자}}":  rec.Preacher,
		"{{기도자}}":  rec.PrayerPerson,
		"{{성경본문}}": rec.BibleRef,
		"{{말씀내용}}": rec.BibleText,
	}
	for i, hymn := range rec.Hymns {
		repl[fmt.Sprintf("{{찬송%d}}", i+1)] = hymn
	}
	return repl
}
