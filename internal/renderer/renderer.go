package renderer

import (
	"bytes"
	"fmt"
	"image/png"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"certify/internal/model"
)

// Vertical baselines on the 1200x630 template, in pixels from the top.
const (
	nameBaseline = 340
	dateBaseline = 420
)

const dateFontSize = 20

// Renderer composites participant text onto the certificate template.
type Renderer struct {
	templatePath string
	bold         *truetype.Font
	regular      *truetype.Font
}

// New creates a renderer reading its background from templatePath.
func New(templatePath string) (*Renderer, error) {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	return &Renderer{templatePath: templatePath, bold: bold, regular: regular}, nil
}

// Render draws the participant's name and date over the template and returns
// the composed image as PNG bytes.
func (r *Renderer) Render(p model.Participant) ([]byte, error) {
	background, err := gg.LoadImage(r.templatePath)
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}

	bounds := background.Bounds()
	dc := gg.NewContext(bounds.Dx(), bounds.Dy())
	dc.DrawImage(background, 0, 0)
	cx := float64(bounds.Dx()) / 2

	dc.SetFontFace(truetype.NewFace(r.bold, &truetype.Options{Size: fontSizeFor(p.Name)}))
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(p.Name, cx, nameBaseline, 0.5, 0)

	dc.SetFontFace(truetype.NewFace(r.regular, &truetype.Options{Size: dateFontSize}))
	dc.SetRGBA(1, 1, 1, 0.8)
	dc.DrawStringAnchored(FormatDate(p.Date), cx, dateBaseline, 0.5, 0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// fontSizeFor steps the name font down in three tiers so long names stay
// inside the template.
func fontSizeFor(name string) float64 {
	n := len([]rune(name))
	switch {
	case n <= 20:
		return 48
	case n <= 30:
		return 40
	default:
		return 32
	}
}

// FormatDate turns a stored YYYY-MM-DD string into its long display form,
// e.g. "February 13, 2026", interpreting the date as local midnight. Strings
// that do not parse are returned unchanged.
func FormatDate(date string) string {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}
