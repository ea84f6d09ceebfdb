package pdfgen

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"catering-service/internal/i18n"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// Layout constants in millimeters.
const (
	pageMargin   = 15.0
	rowHeight    = 8.0
	headerHeight = 10.0
	lineGap      = 7.0
)

// TextStyle controls how a single piece of text is drawn.
type TextStyle struct {
	Size     float64
	Bold     bool
	Color    [3]int
	Align    string // "L", "C" or "R"
	MaxWidth float64
}

// Generator produces report and receipt PDFs by direct drawing, without a
// browser. It is the degrade path when the rendering pipeline is
// unavailable, so it must produce something useful out of whatever font
// capability the host has.
type Generator struct {
	log       *zap.Logger
	fontPath  string
	fontBytes []byte
}

// NewGenerator loads the optional Arabic-capable TTF at fontPath. A
// missing or unreadable font is not an error; the affected strategies
// simply report themselves unavailable.
func NewGenerator(log *zap.Logger, fontPath string) *Generator {
	g := &Generator{log: log, fontPath: fontPath}
	if fontPath != "" {
		b, err := os.ReadFile(fontPath)
		if err != nil {
			log.Warn("arabic font unavailable, falling back to raster-free strategies",
				zap.String("path", fontPath), zap.Error(err))
			g.fontPath = ""
		} else {
			g.fontBytes = b
		}
	}
	return g
}

// builder carries per-document drawing state: the pdf handle, the probed
// strategy chain and the vertical cursor.
type builder struct {
	pdf        *gofpdf.Fpdf
	gen        *Generator
	strategies []textStrategy
	locale     i18n.Locale
	y          float64
	pageW      float64
	pageH      float64
}

func (g *Generator) newBuilder(orientation string, locale i18n.Locale) *builder {
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()
	w, h := pdf.GetPageSize()
	b := &builder{
		pdf:    pdf,
		gen:    g,
		locale: locale,
		y:      pageMargin,
		pageW:  w,
		pageH:  h,
	}
	b.strategies = []textStrategy{
		coreFontStrategy{},
		newEmbeddedFontStrategy(pdf, g.fontPath),
		newRasterStrategy(g.fontBytes),
		phraseStrategy{},
	}
	return b
}

func (b *builder) setLatinFont(st TextStyle) {
	style := ""
	if st.Bold {
		style = "B"
	}
	b.pdf.SetFont("Helvetica", style, st.Size)
	b.pdf.SetTextColor(st.Color[0], st.Color[1], st.Color[2])
}

func (b *builder) placeText(text string, x, y float64, align string) {
	b.pdf.Text(alignedX(x, b.pdf.GetStringWidth(text), align), y, text)
}

// takeErr harvests and clears gofpdf's sticky error so one bad element
// cannot poison the rest of the document.
func (b *builder) takeErr() error {
	if !b.pdf.Err() {
		return nil
	}
	err := b.pdf.Error()
	b.pdf.ClearError()
	return err
}

// AddText draws text at the baseline position, walking the strategy chain
// for right-to-left content. A strategy failure is logged and the next
// strategy tried; if every strategy fails the element is replaced with a
// placeholder so the document stays structurally intact.
func (b *builder) AddText(text string, x, y float64, st TextStyle) {
	if text == "" {
		return
	}
	if st.Align == "" {
		st.Align = "L"
	}
	if !i18n.IsRTL(text) {
		b.setLatinFont(st)
		text = truncateToWidth(text, st.MaxWidth, false, b.pdf.GetStringWidth)
		b.placeText(text, x, y, st.Align)
		if err := b.takeErr(); err != nil {
			b.gen.log.Warn("text element skipped", zap.Error(err))
		}
		return
	}
	for _, s := range b.strategies {
		if !s.canDraw(text) {
			continue
		}
		if err := s.draw(b, text, x, y, st); err != nil {
			b.pdf.ClearError()
			b.gen.log.Warn("text strategy failed, trying next",
				zap.String("strategy", s.name()), zap.Error(err))
			continue
		}
		return
	}
	b.setLatinFont(st)
	b.placeText("[?]", x, y, st.Align)
	b.pdf.ClearError()
}

// checkPageBreak starts a new page when fewer than need millimeters
// remain, and reports whether it did so.
func (b *builder) checkPageBreak(need float64) bool {
	if b.y+need <= b.pageH-pageMargin {
		return false
	}
	b.pdf.AddPage()
	b.y = pageMargin
	return true
}

func (b *builder) separator() {
	b.pdf.SetDrawColor(180, 180, 180)
	b.pdf.Line(pageMargin, b.y, b.pageW-pageMargin, b.y)
	b.y += 4
}

func (b *builder) heading(text string) {
	b.AddText(text, b.pageW/2, b.y+8, TextStyle{Size: 18, Bold: true, Color: [3]int{44, 62, 80}, Align: "C"})
	b.y += 12
}

func (b *builder) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("pdf output: empty document")
	}
	return buf.Bytes(), nil
}

func (b *builder) tr(key string) string {
	return i18n.Translate(b.locale, key)
}

func (b *builder) generatedLine(now time.Time) {
	label := b.tr("generatedOn") + ": " + i18n.FormatDateTime(now, b.locale)
	b.AddText(label, b.pageW/2, b.y+5, TextStyle{Size: 10, Color: [3]int{120, 120, 120}, Align: "C"})
	b.y += 9
}
