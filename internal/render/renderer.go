// Package render drives a headless Chrome instance to turn a markup
// document into a paginated PDF. One browser per call, released on every
// exit path; the caller owns the degrade-to-markup decision.
package render

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// Renderer rasterizes a markup document to a PDF.
type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

const (
	viewportWidth  = 1200
	viewportHeight = 800

	// default bound on the webfont wait; rendering proceeds without the
	// fonts when it elapses
	defaultFontWait = 10 * time.Second

	// A4 in inches for PrintToPDF
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 0.28
)

type ChromeRenderer struct {
	log      *zap.Logger
	fontWait time.Duration
}

var _ Renderer = (*ChromeRenderer)(nil)

func NewChromeRenderer(log *zap.Logger) *ChromeRenderer {
	return &ChromeRenderer{log: log, fontWait: defaultFontWait}
}

// RenderPDF loads html into a fresh headless browser, waits for the DOM and
// (best effort) webfonts, and prints to an A4 PDF with backgrounds kept.
// The browser is torn down via the deferred cancels even when a later step
// fails. ctx is the request context: a dropped caller cancels the render.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-accelerated-2d-canvas", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-gpu", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		emulation.SetDeviceMetricsOverride(viewportWidth, viewportHeight, 2, false),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("frame tree: %w", err)
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(r.waitForFonts),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				Do(ctx)
			if err != nil {
				return fmt.Errorf("print to pdf: %w", err)
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, errors.New("renderer produced an empty document")
	}
	r.log.Info("rendered pdf", zap.Int("bytes", len(pdf)))
	return pdf, nil
}

// waitForFonts polls document.fonts.status under a bounded deadline. Font
// loading is best effort: on timeout the render continues with whatever
// fonts made it.
func (r *ChromeRenderer) waitForFonts(ctx context.Context) error {
	deadline, cancel := context.WithTimeout(ctx, r.fontWait)
	defer cancel()

	for {
		var loaded bool
		if err := chromedp.Evaluate(`document.fonts.status === "loaded"`, &loaded).Do(deadline); err != nil {
			r.log.Warn("font wait aborted", zap.Error(err))
			return nil
		}
		if loaded {
			return nil
		}
		select {
		case <-deadline.Done():
			r.log.Warn("font wait timed out, rendering anyway")
			return nil
		case <-time.After(100 * time.Millisecond):
		}
	}
}
