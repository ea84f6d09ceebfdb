package pdfgen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"catering-service/internal/i18n"

	"github.com/01walid/goarabic"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// registered family name for the dynamically loaded Arabic webfont
const arabicFamily = "ArabicUTF8"

// point-to-millimeter conversion for font sizes
const ptToMM = 0.3528

// textStrategy is one way of getting right-to-left text onto the page.
// Strategies are tried in a fixed order; canDraw is the capability probe
// and draw may still fail, falling through to the next strategy.
type textStrategy interface {
	name() string
	canDraw(text string) bool
	draw(b *builder, text string, x, y float64, st TextStyle) error
}

// shapeRTL converts Arabic letters to their joined presentation forms and
// reverses the result, since the drawing primitives lay glyphs out
// strictly left to right.
func shapeRTL(text string) string {
	return goarabic.Reverse(goarabic.ToGlyph(text))
}

// coreFontStrategy draws with the built-in Latin core fonts. Its probe
// rejects anything outside their single-byte repertoire, so Arabic text
// always falls through to the next strategy.
type coreFontStrategy struct{}

func (coreFontStrategy) name() string { return "core-font" }

func (coreFontStrategy) canDraw(text string) bool {
	for _, r := range text {
		if r > 0xFF {
			return false
		}
	}
	return true
}

func (s coreFontStrategy) draw(b *builder, text string, x, y float64, st TextStyle) error {
	b.setLatinFont(st)
	text = truncateToWidth(text, st.MaxWidth, false, b.pdf.GetStringWidth)
	b.placeText(text, x, y, st.Align)
	return b.takeErr()
}

// embeddedFontStrategy draws with a UTF-8 TTF registered under a private
// family name, shaping the text first. Available only when the configured
// font file loaded cleanly.
type embeddedFontStrategy struct {
	registered bool
}

func newEmbeddedFontStrategy(pdf *gofpdf.Fpdf, fontPath string) *embeddedFontStrategy {
	if fontPath == "" {
		return &embeddedFontStrategy{}
	}
	pdf.AddUTF8Font(arabicFamily, "", fontPath)
	pdf.AddUTF8Font(arabicFamily, "B", fontPath)
	if pdf.Err() {
		pdf.ClearError()
		return &embeddedFontStrategy{}
	}
	return &embeddedFontStrategy{registered: true}
}

func (s *embeddedFontStrategy) name() string { return "embedded-font" }

func (s *embeddedFontStrategy) canDraw(string) bool { return s.registered }

func (s *embeddedFontStrategy) draw(b *builder, text string, x, y float64, st TextStyle) error {
	style := ""
	if st.Bold {
		style = "B"
	}
	b.pdf.SetFont(arabicFamily, style, st.Size)
	b.pdf.SetTextColor(st.Color[0], st.Color[1], st.Color[2])

	text = truncateShapedToWidth(text, st.MaxWidth, func(s string) float64 {
		return b.pdf.GetStringWidth(shapeRTL(s))
	})
	shaped := shapeRTL(text)
	b.placeText(shaped, x, y, mirrorAlign(st.Align))
	return b.takeErr()
}

// rasterStrategy is the guaranteed-success terminal text path short of the
// phrase table: it rasterizes the shaped text to an off-screen bitmap and
// embeds the bitmap as an image at the target position.
type rasterStrategy struct {
	face *opentype.Font
	seq  int
}

func newRasterStrategy(fontBytes []byte) *rasterStrategy {
	if len(fontBytes) == 0 {
		return &rasterStrategy{}
	}
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return &rasterStrategy{}
	}
	return &rasterStrategy{face: f}
}

func (s *rasterStrategy) name() string { return "raster" }

func (s *rasterStrategy) canDraw(string) bool { return s.face != nil }

func (s *rasterStrategy) draw(b *builder, text string, x, y float64, st TextStyle) error {
	// 4x oversampling keeps the bitmap crisp at print resolution
	const dpi = 288.0
	face, err := opentype.NewFace(s.face, &opentype.FaceOptions{
		Size:    st.Size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("raster face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	lineHeightPx := (metrics.Ascent + metrics.Descent).Ceil()
	heightMM := st.Size * ptToMM
	mmPerPx := heightMM / float64(lineHeightPx)

	measure := func(t string) float64 {
		d := font.Drawer{Face: face}
		return float64(d.MeasureString(shapeRTL(t)).Ceil()) * mmPerPx
	}
	text = truncateShapedToWidth(text, st.MaxWidth, measure)
	shaped := shapeRTL(text)

	d := font.Drawer{Face: face}
	widthPx := d.MeasureString(shaped).Ceil()
	if widthPx == 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, widthPx, lineHeightPx))
	d.Dst = img
	d.Src = image.NewUniform(color.RGBA{uint8(st.Color[0]), uint8(st.Color[1]), uint8(st.Color[2]), 255})
	d.Dot = fixed.P(0, metrics.Ascent.Ceil())
	d.DrawString(shaped)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("raster encode: %w", err)
	}

	s.seq++
	name := fmt.Sprintf("rtl-text-%d", s.seq)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	b.pdf.RegisterImageOptionsReader(name, opts, &buf)
	if b.pdf.Err() {
		return b.takeErr()
	}

	widthMM := float64(widthPx) * mmPerPx
	drawX := alignedX(x, widthMM, mirrorAlign(st.Align))
	// y is the text baseline; shift up by the ascent share of the box
	topY := y - heightMM*float64(metrics.Ascent.Ceil())/float64(lineHeightPx)
	b.pdf.ImageOptions(name, drawX, topY, widthMM, heightMM, false, opts, 0, "")
	return b.takeErr()
}

// phraseStrategy is the last resort: translate the Arabic phrase to its
// English equivalent from a small hardcoded table and draw that with the
// core fonts, rather than emitting nothing.
type phraseStrategy struct{}

func (phraseStrategy) name() string { return "phrase-table" }

func (phraseStrategy) canDraw(string) bool { return true }

func (s phraseStrategy) draw(b *builder, text string, x, y float64, st TextStyle) error {
	converted := arabicToEnglish(text)
	if i18n.IsRTL(converted) {
		// untranslatable leftovers get stripped so the core font can cope
		converted = stripNonLatin(converted)
	}
	if converted == "" {
		converted = "---"
	}
	b.setLatinFont(st)
	converted = truncateToWidth(converted, st.MaxWidth, false, b.pdf.GetStringWidth)
	b.placeText(converted, x, y, st.Align)
	return b.takeErr()
}

func stripNonLatin(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r <= 0xFF {
			out = append(out, r)
		}
	}
	return string(out)
}

// mirrorAlign flips horizontal alignment for right-to-left text.
func mirrorAlign(a string) string {
	switch a {
	case "L":
		return "R"
	case "R":
		return "L"
	default:
		return a
	}
}

func alignedX(x, width float64, align string) float64 {
	switch align {
	case "C":
		return x - width/2
	case "R":
		return x - width
	default:
		return x
	}
}
