package renderer

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Placeholder template dimensions. The renderer itself adapts to whatever
// size the template on disk has; these are the convention the pages and
// Open Graph tags assume.
const (
	TemplateWidth  = 1200
	TemplateHeight = 630
)

// WriteTemplate draws the placeholder certificate background and saves it as
// a PNG at path, creating parent directories as needed. It is a one-time
// asset generator; production deployments replace the file with real artwork
// of the same dimensions.
func WriteTemplate(path string) error {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("parse bold font: %w", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse regular font: %w", err)
	}

	w, h := float64(TemplateWidth), float64(TemplateHeight)
	cx := w / 2
	dc := gg.NewContext(TemplateWidth, TemplateHeight)

	// Background gradient, dark navy.
	gradient := gg.NewLinearGradient(0, 0, w, h)
	gradient.AddColorStop(0, color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff})
	gradient.AddColorStop(1, color.RGBA{R: 0x16, G: 0x21, B: 0x3e, A: 0xff})
	dc.SetFillStyle(gradient)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	// Gold outer border with a faint inner echo.
	dc.SetRGB255(0xe2, 0xb8, 0x57)
	dc.SetLineWidth(4)
	dc.DrawRectangle(30, 30, w-60, h-60)
	dc.Stroke()
	dc.SetRGBA255(0xe2, 0xb8, 0x57, 76)
	dc.SetLineWidth(1)
	dc.DrawRectangle(40, 40, w-80, h-80)
	dc.Stroke()

	// Accent lines top and bottom.
	dc.SetRGB255(0xe2, 0xb8, 0x57)
	dc.DrawRectangle(100, 80, w-200, 2)
	dc.Fill()
	dc.DrawRectangle(100, h-80, w-200, 2)
	dc.Fill()

	dc.SetFontFace(truetype.NewFace(regular, &truetype.Options{Size: 16}))
	dc.SetRGBA255(0xe2, 0xb8, 0x57, 102)
	dc.DrawStringAnchored("CERTIFICATE OF COMPLETION", cx, 120, 0.5, 0)

	dc.SetFontFace(truetype.NewFace(bold, &truetype.Options{Size: 36}))
	dc.SetRGB255(0xe2, 0xb8, 0x57)
	dc.DrawStringAnchored("AI OPENER", cx, 200, 0.5, 0)

	dc.SetFontFace(truetype.NewFace(regular, &truetype.Options{Size: 18}))
	dc.SetRGBA255(255, 255, 255, 128)
	dc.DrawStringAnchored("AWARDED TO", cx, 270, 0.5, 0)

	// Guide line where the name is composited at serve time.
	dc.SetRGBA255(255, 255, 255, 38)
	dc.SetLineWidth(1)
	dc.DrawLine(250, 360, w-250, 360)
	dc.Stroke()

	dc.SetFontFace(truetype.NewFace(regular, &truetype.Options{Size: 14}))
	dc.SetRGBA255(0xe2, 0xb8, 0x57, 102)
	dc.DrawStringAnchored("MILES PARTNERSHIP", cx, h-50, 0.5, 0)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create asset dir: %w", err)
		}
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	return nil
}
