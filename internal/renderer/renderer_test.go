package renderer

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"certify/internal/model"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestFontSizeTiers(t *testing.T) {
	cases := []struct {
		length int
		want   float64
	}{
		{15, 48},
		{20, 48}, // boundary stays in the larger tier
		{21, 40},
		{25, 40},
		{30, 40}, // boundary stays in the middle tier
		{31, 32},
		{35, 32},
	}
	for _, tc := range cases {
		name := strings.Repeat("x", tc.length)
		if got := fontSizeFor(name); got != tc.want {
			t.Errorf("fontSizeFor(len %d) = %v, want %v", tc.length, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2026-02-13"); got != "February 13, 2026" {
		t.Errorf("FormatDate(2026-02-13) = %q, want %q", got, "February 13, 2026")
	}
	if got := FormatDate("not-a-date"); got != "not-a-date" {
		t.Errorf("FormatDate(not-a-date) = %q, want input unchanged", got)
	}
}

func TestWriteTemplateDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets", "template.png")
	if err := WriteTemplate(path); err != nil {
		t.Fatalf("WriteTemplate() failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open generated template: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode generated template: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != TemplateWidth || b.Dy() != TemplateHeight {
		t.Fatalf("template is %dx%d, want %dx%d", b.Dx(), b.Dy(), TemplateWidth, TemplateHeight)
	}
}

func TestRenderProducesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.png")
	if err := WriteTemplate(path); err != nil {
		t.Fatalf("WriteTemplate() failed: %v", err)
	}
	r, err := New(path)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	img, err := r.Render(model.Participant{ID: "aabbccdd", Name: "Jane Doe", Date: "2026-02-13"})
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if !bytes.HasPrefix(img, pngMagic) {
		t.Fatalf("rendered bytes do not start with the PNG magic header")
	}

	decoded, err := png.Decode(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("decode rendered image: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != TemplateWidth || b.Dy() != TemplateHeight {
		t.Fatalf("rendered image is %dx%d, want template dimensions", b.Dx(), b.Dy())
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	r, err := New(filepath.Join(t.TempDir(), "missing.png"))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if _, err := r.Render(model.Participant{Name: "Jane", Date: "2026-02-13"}); err == nil {
		t.Fatal("Render() with missing template succeeded, want error")
	}
}
