package notes

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims", "  some notes  \n", "some notes"},
		{"unifies line endings", "line one\r\nline two", "line one\nline two"},
		{"preserves inner structure", "a\n\nb", "a\n\nb"},
		{"empty", "   \t\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromString(tt.in); got != tt.want {
				t.Errorf("FromString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractPlainText(t *testing.T) {
	got, err := Extract("notes.md", []byte("# Photosynthesis\n\nPlants make food from light.\n"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != "# Photosynthesis\n\nPlants make food from light." {
		t.Errorf("got %q", got)
	}
}

func TestExtractPPTX(t *testing.T) {
	data := buildPPTX(t,
		zipEntry{"ppt/slides/slide1.xml", `<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"><a:t>Cell biology</a:t><a:t>Mitochondria</a:t></p:sld>`},
		zipEntry{"ppt/slides/slide2.xml", `<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"><a:t>Energy</a:t></p:sld>`},
	)

	got, err := Extract("deck.pptx", data)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := "Cell biology Mitochondria\nEnergy"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractPPTXBadSlideSkipped(t *testing.T) {
	data := buildPPTX(t,
		zipEntry{"ppt/slides/slide1.xml", `<p:sld xmlns:a="x"><a:t>Readable</a:t></p:sld>`},
		zipEntry{"ppt/slides/slide2.xml", `<<<not xml at all`},
	)

	got, err := Extract("deck.pptx", data)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != "Readable" {
		t.Errorf("got %q, want only the readable slide", got)
	}
}

func TestExtractZipWithoutSlides(t *testing.T) {
	data := buildPPTX(t, zipEntry{"word/document.xml", `<w:document/>`})

	_, err := Extract("report.docx", data)
	var uerr *UnsupportedFileError
	if !errors.As(err, &uerr) {
		t.Fatalf("err = %v, want UnsupportedFileError", err)
	}
}

func TestExtractUnsupportedBinary(t *testing.T) {
	_, err := Extract("image.png", []byte{0x89, 'P', 'N', 'G', 0x00, 0x00, 0x01})
	var uerr *UnsupportedFileError
	if !errors.As(err, &uerr) {
		t.Fatalf("err = %v, want UnsupportedFileError", err)
	}
}

func TestExtractEmpty(t *testing.T) {
	if _, err := Extract("empty.txt", nil); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("water cycle\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if got != "water cycle" {
		t.Errorf("got %q", got)
	}

	if _, err := ExtractFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

type zipEntry struct {
	name string
	body string
}

func buildPPTX(t *testing.T, entries ...zipEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(e.body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
