// Package deck substitutes placeholder tokens into the text runs of a .pptx
// presentation. A .pptx is a zip archive of OOXML parts; every part is copied
// through byte-for-byte except the slide XML, where substitution edits only
// the character data of <a:t> elements (one element per text run). Formatting
// attributes, run boundaries, and part ordering are untouched, so the output
// keeps the template's design exactly.
package deck

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/adamamaa/worship/internal/domain"
)

const slidePrefix = "ppt/slides/"

// Fill loads the template bytes fresh, replaces every whole-run occurrence of
// each placeholder token, and returns the filled presentation serialized to
// bytes. The input slice is never mutated.
func Fill(template []byte, rec *domain.BulletinRecord) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTemplate, err)
	}

	repl := Replacements(rec)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading part %s: %w", f.Name, err)
		}

		if isSlidePart(f.Name) {
			data = replaceRuns(data, repl)
		}

		hdr := f.FileHeader
		w, err := zw.CreateHeader(&hdr)
		if err != nil {
			return nil, fmt.Errorf("writing part %s: %w", f.Name, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("writing part %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing presentation: %w", err)
	}

	return buf.Bytes(), nil
}

// isSlidePart matches ppt/slides/slideN.xml only. Notes, masters, and layouts
// are out of scope: substitution traverses slides the way a slide-deck editor
// iterates prs.slides.
func isSlidePart(name string) bool {
	if !strings.HasPrefix(name, slidePrefix) || !strings.HasSuffix(name, ".xml") {
		return false
	}
	return !strings.Contains(name[len(slidePrefix):], "/")
}

// replaceRuns rewrites the character data of each <a:t> element, leaving all
// other bytes of the slide XML intact. A token split across two runs spans
// two <a:t> elements and is therefore never matched.
func replaceRuns(data []byte, repl map[string]string) []byte {
	s := string(data)
	var b strings.Builder
	b.Grow(len(s))

	for {
		i := strings.Index(s, "<a:t")
		if i < 0 {
			b.WriteString(s)
			break
		}
		rest := s[i+4:]
		// Reject longer element names such as <a:txBody> or <a:tab>.
		if len(rest) == 0 || (rest[0] != '>' && rest[0] != ' ' && rest[0] != '/') {
			b.WriteString(s[:i+4])
			s = rest
			continue
		}
		gt := strings.IndexByte(rest, '>')
		if gt < 0 {
			b.WriteString(s)
			break
		}
		if gt > 0 && rest[gt-1] == '/' {
			// Self-closing <a:t/>: empty run, nothing to substitute.
			b.WriteString(s[:i+5+gt])
			s = rest[gt+1:]
			continue
		}
		end := strings.Index(rest[gt+1:], "</a:t>")
		if end < 0 {
			b.WriteString(s)
			break
		}
		text := rest[gt+1 : gt+1+end]
		b.WriteString(s[:i+5+gt])
		b.WriteString(substitute(text, repl))
		b.WriteString("</a:t>")
		s = rest[gt+1+end+len("</a:t>"):]
	}

	return []byte(b.String())
}

// substitute replaces all occurrences of every token within one run's text.
// Table iteration order is irrelevant: tokens are disjoint literals.
func substitute(text string, repl map[string]string) string {
	for token, value := range repl {
		if strings.Contains(text, token) {
			text = strings.ReplaceAll(text, token, escapeXML(value))
		}
	}
	return text
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
