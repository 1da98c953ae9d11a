// Package swatch provides an exporter rendering the ramp and tokens as a PNG.
package swatch

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/ramptone/internal/colour"
	"github.com/jmylchreest/ramptone/internal/theme"
	"github.com/jmylchreest/ramptone/internal/tokens"
)

// FileName is the name of the generated image.
const FileName = "ramp.png"

// Layout limits and spacing, in pixels.
const (
	MinSize     = 32
	MaxSize     = 256
	rowHeight   = 20
	padding     = 6
	textWidth   = 7  // basicfont.Face7x13 advance
	textAscent  = 11 // baseline offset from the top of a line
	lineSpacing = 14
)

var (
	paper = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ink   = color.RGBA{R: 0x1F, G: 0x1F, B: 0x1F, A: 0xFF}
)

// Exporter implements output.Exporter for PNG swatches.
type Exporter struct {
	size   int
	tokens bool
}

// New creates a swatch exporter with default settings.
func New() *Exporter {
	return &Exporter{
		size:   96,
		tokens: true,
	}
}

// Name returns the exporter name.
func (e *Exporter) Name() string {
	return "swatch"
}

// Description returns the exporter description.
func (e *Exporter) Description() string {
	return "PNG swatch strip with labelled stops and token rows"
}

// RegisterFlags registers exporter-specific flags with the cobra command.
func (e *Exporter) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&e.size, "swatch.size", e.size, "Width and height of each stop in pixels")
	cmd.Flags().BoolVar(&e.tokens, "swatch.tokens", e.tokens, "Draw a row per semantic token below the stops")
}

// Validate checks if the exporter configuration is valid.
func (e *Exporter) Validate() error {
	if e.size < MinSize || e.size > MaxSize {
		return fmt.Errorf("invalid size: %d (must be between %d and %d)", e.size, MinSize, MaxSize)
	}
	return nil
}

// Generate renders the swatch image from the theme.
func (e *Exporter) Generate(th *theme.Theme) (map[string][]byte, error) {
	if th == nil {
		return nil, fmt.Errorf("theme cannot be nil")
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	img := e.Render(th)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return map[string][]byte{FileName: buf.Bytes()}, nil
}

// Render draws the swatch. Stops run left to right in ramp order; each token
// row shows a chip of its colour followed by its name and hex value.
func (e *Exporter) Render(th *theme.Theme) *image.RGBA {
	width := max(th.Ramp.Len()*e.size, e.tokenRowWidth(th))
	height := e.size
	if e.tokens {
		height += padding + len(th.Results)*rowHeight + padding
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)

	for i, s := range th.Ramp {
		rect := image.Rect(i*e.size, 0, (i+1)*e.size, e.size)
		draw.Draw(img, rect, image.NewUniform(rgba(s.Hex)), image.Point{}, draw.Src)

		label := rgba(colour.BestContrast(s.Hex).Color)
		drawText(img, rect.Min.X+padding, rect.Min.Y+padding, label, th.Ramp.Label(i))
		if e.size >= len(s.Hex)*textWidth+2*padding {
			drawText(img, rect.Min.X+padding, rect.Max.Y-padding-lineSpacing, label, s.Hex)
		}
	}

	if !e.tokens {
		return img
	}

	y := e.size + padding
	for _, r := range th.Results {
		hex := tokens.ColourAt(th.Ramp, r.Index)
		chip := image.Rect(padding, y+2, padding+rowHeight-4, y+rowHeight-2)
		draw.Draw(img, chip, image.NewUniform(rgba(hex)), image.Point{}, draw.Src)

		text := fmt.Sprintf("%s  %s", r.Name, hex)
		if r.Fallback {
			text += "  (fallback)"
		}
		drawText(img, chip.Max.X+padding, y+(rowHeight-lineSpacing)/2, ink, text)
		y += rowHeight
	}

	return img
}

func (e *Exporter) tokenRowWidth(th *theme.Theme) int {
	if !e.tokens {
		return 0
	}
	longest := 0
	for _, r := range th.Results {
		n := len(r.Name) + len("  #RRGGBB")
		if r.Fallback {
			n += len("  (fallback)")
		}
		longest = max(longest, n)
	}
	return padding + rowHeight - 4 + padding + longest*textWidth + padding
}

// drawText draws s with its top-left corner at (x, y).
func drawText(img draw.Image, x, y int, c color.Color, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+textAscent),
	}
	d.DrawString(s)
}

func rgba(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{A: 0xFF}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
