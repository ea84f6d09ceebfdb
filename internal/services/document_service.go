package services

import (
	"context"
	"fmt"
	"time"

	"catering-service/internal/doc"
	"catering-service/internal/domain"
	"catering-service/internal/i18n"
	"catering-service/internal/infra"
	"catering-service/internal/pdfgen"
	"catering-service/internal/render"

	"go.uber.org/zap"
)

// Engine selects how a document is produced.
const (
	// EngineBrowser renders the HTML document to PDF in headless Chrome,
	// degrading to a printable HTML page when Chrome is unavailable.
	EngineBrowser = "browser"
	// EngineFallback draws the PDF directly, no browser involved.
	EngineFallback = "fallback"
)

// GenerationError reports a total pipeline failure: the renderer failed
// and so did the degrade path.
type GenerationError struct {
	RenderErr  error
	DegradeErr error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("document generation failed: render: %v; degrade: %v", e.RenderErr, e.DegradeErr)
}

type ReportParams struct {
	Language    string
	ShowSummary bool
	AutoPrint   bool
	Engine      string
}

type ReceiptParams struct {
	Language string
	// LogoURL is a caller-supplied logo that takes precedence over the
	// configured default.
	LogoURL string
	// UseDefaultLogo gates the configured-logo fetch when no LogoURL is
	// given; false means placeholder box.
	UseDefaultLogo bool
	AutoPrint      bool
	Engine         string
}

// DocumentService turns orders into downloadable documents. The browser
// path builds markup and prints it through headless Chrome; when that
// fails the same markup is reissued as a self-printing HTML page, so the
// receptionist always gets something to hand the customer.
type DocumentService struct {
	renderer render.Renderer
	fallback *pdfgen.Generator
	logos    infra.LogoFetcherInterface
	log      *zap.Logger
	now      func() time.Time
}

func NewDocumentService(r render.Renderer, fb *pdfgen.Generator, logos infra.LogoFetcherInterface, log *zap.Logger) *DocumentService {
	return &DocumentService{
		renderer: r,
		fallback: fb,
		logos:    logos,
		log:      log,
		now:      time.Now,
	}
}

// GenerateReport produces the daily orders report.
func (s *DocumentService) GenerateReport(ctx context.Context, orders []domain.Order, p ReportParams) (*domain.Document, error) {
	locale := i18n.ParseLocale(p.Language)
	now := s.now()

	if p.Engine == EngineFallback {
		pdf, err := s.fallback.ReportPDF(orders, locale, p.ShowSummary, now)
		if err != nil {
			return nil, fmt.Errorf("fallback report: %w", err)
		}
		return &domain.Document{PDF: pdf, Filename: doc.ReportFilename(locale, now, false)}, nil
	}

	build := func(autoPrint bool) (string, error) {
		return doc.BuildReport(orders, doc.ReportOptions{
			Locale:      locale,
			ShowSummary: p.ShowSummary,
			AutoPrint:   autoPrint,
			Now:         now,
		})
	}
	return s.renderOrDegrade(ctx, build, p.AutoPrint,
		doc.ReportFilename(locale, now, false),
		doc.ReportFilename(locale, now, true))
}

// GenerateReceipt produces a single-order receipt. The company logo is
// fetched best-effort; a missing logo renders the placeholder box.
func (s *DocumentService) GenerateReceipt(ctx context.Context, order domain.Order, p ReceiptParams) (*domain.Document, error) {
	locale := i18n.ParseLocale(p.Language)
	now := s.now()
	order.Normalize()

	if p.Engine == EngineFallback {
		pdf, err := s.fallback.ReceiptPDF(order, locale, now)
		if err != nil {
			return nil, fmt.Errorf("fallback receipt: %w", err)
		}
		return &domain.Document{PDF: pdf, Filename: doc.ReceiptFilename(locale, order, now, false)}, nil
	}

	logoURL := p.LogoURL
	if logoURL == "" && p.UseDefaultLogo && s.logos != nil {
		url, err := s.logos.FetchDataURL(ctx)
		if err != nil {
			s.log.Warn("logo unavailable, using placeholder", zap.Error(err))
		} else {
			logoURL = url
		}
	}

	build := func(autoPrint bool) (string, error) {
		return doc.BuildReceipt(order, doc.ReceiptOptions{
			Locale:      locale,
			LogoDataURL: logoURL,
			AutoPrint:   autoPrint,
			Now:         now,
		})
	}
	return s.renderOrDegrade(ctx, build, p.AutoPrint,
		doc.ReceiptFilename(locale, order, now, false),
		doc.ReceiptFilename(locale, order, now, true))
}

// renderOrDegrade is the shared pipeline: build markup, print it through
// the renderer, and on renderer failure rebuild with auto-print forced on
// and hand the HTML back directly.
func (s *DocumentService) renderOrDegrade(ctx context.Context, build func(autoPrint bool) (string, error), autoPrint bool, filename, degradedFilename string) (*domain.Document, error) {
	markup, err := build(autoPrint)
	if err != nil {
		return nil, fmt.Errorf("build document: %w", err)
	}

	pdf, renderErr := s.renderer.RenderPDF(ctx, markup)
	if renderErr == nil {
		return &domain.Document{PDF: pdf, Filename: filename}, nil
	}
	s.log.Warn("renderer failed, degrading to printable html", zap.Error(renderErr))

	degraded, buildErr := build(true)
	if buildErr != nil {
		return nil, &GenerationError{RenderErr: renderErr, DegradeErr: buildErr}
	}
	return &domain.Document{HTML: degraded, Degraded: true, Filename: degradedFilename}, nil
}
