// Package notes turns user input into plain study-notes text. Input is
// either typed/pasted text or an uploaded file (PDF, PPTX, plain text);
// every study mode downstream consumes the same normalized string.
package notes

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// UnsupportedFileError indicates a file whose format could not be
// recognized as PDF, PPTX, or plain text.
type UnsupportedFileError struct {
	Name string
}

func (e *UnsupportedFileError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Name)
}

// FromString normalizes typed or pasted notes: line endings unified,
// surrounding whitespace trimmed. Inner structure is preserved because
// line breaks carry meaning in notes.
func FromString(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}

// ExtractFile reads the file at path and extracts its text.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read notes file: %w", err)
	}
	return Extract(filepath.Base(path), data)
}

// Extract determines the file format by sniffing magic bytes, then
// extracts the text. The name is only used in error messages; the bytes
// decide the format.
func Extract(name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty file: %s", name)
	}
	switch {
	case isPDF(data):
		return extractPDF(data)
	case isZip(data):
		return extractPPTX(name, data)
	case isProbablyText(data):
		return FromString(string(data)), nil
	default:
		return "", &UnsupportedFileError{Name: name}
	}
}

func isPDF(b []byte) bool {
	return len(b) >= 5 && string(b[:5]) == "%PDF-"
}

func isZip(b []byte) bool {
	return len(b) >= 4 && b[0] == 'P' && b[1] == 'K' && b[2] == 3 && b[3] == 4
}

// isProbablyText accepts data that is overwhelmingly printable and free
// of NUL bytes. UTF-8 multibyte sequences count as printable.
func isProbablyText(b []byte) bool {
	sample := b
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	good := 0
	for _, c := range sample {
		if c == 0x00 {
			return false
		}
		if c == '\n' || c == '\r' || c == '\t' || (c >= 0x20 && c <= 0x7E) || c >= 0x80 {
			good++
		}
	}
	return float64(good)/float64(len(sample)) > 0.9
}

// extractPDF pulls text page by page. A page that cannot be decoded
// contributes nothing instead of failing the whole document; scanned or
// partially corrupt PDFs still yield whatever text is readable.
func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		pages = append(pages, pageText(r, i))
	}
	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

func pageText(r *pdf.Reader, num int) (text string) {
	// The pdf library panics on some malformed content streams.
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	p := r.Page(num)
	if p.V.IsNull() {
		return ""
	}
	s, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return s
}

// extractPPTX gathers the <a:t> text runs from every slide of a PPTX
// archive, one line per slide. A slide that fails to decode contributes
// nothing.
func extractPPTX(name string, data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open archive %s: %w", name, err)
	}

	hasSlides := false
	var out []string
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, "ppt/slides/") || !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		hasSlides = true
		rc, err := f.Open()
		if err != nil {
			continue
		}
		b, _ := io.ReadAll(rc)
		rc.Close()
		if s := slideText(b); s != "" {
			out = append(out, s)
		}
	}
	if !hasSlides {
		// A zip that is not a presentation (docx, plain archive).
		return "", &UnsupportedFileError{Name: name}
	}
	return strings.TrimSpace(strings.Join(out, "\n")), nil
}

func slideText(xmlBytes []byte) string {
	dec := xml.NewDecoder(bytes.NewReader(xmlBytes))
	var runs []string
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "t" {
			continue
		}
		var v string
		if err := dec.DecodeElement(&v, &se); err != nil {
			continue
		}
		if v != "" {
			runs = append(runs, v)
		}
	}
	return strings.Join(runs, " ")
}
