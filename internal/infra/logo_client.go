package infra

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// logos above this size are refused rather than inlined into every receipt
const maxLogoBytes = 1 << 20

// data-URI preview length reported by health checks
const logoPreviewLen = 50

// LogoInfo describes the configured logo for health reporting.
type LogoInfo struct {
	Configured bool   `json:"configured"`
	Exists     bool   `json:"exists"`
	Size       int    `json:"size"`
	Preview    string `json:"preview,omitempty"`
	Error      string `json:"error,omitempty"`
}

// LogoClient fetches the company logo and converts it to a data: URI so
// receipts render with no external requests. The result is cached for the
// process lifetime; the logo URL is fixed at startup.
type LogoClient struct {
	url        string
	httpClient *http.Client

	mu         sync.Mutex
	cached     string
	cachedSize int
}

func NewLogoClient(url string, timeout time.Duration) *LogoClient {
	return &LogoClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchDataURL returns the logo as a data: URI, or "" with no error when
// no logo URL is configured.
func (c *LogoClient) FetchDataURL(ctx context.Context) (string, error) {
	if c.url == "" {
		return "", nil
	}

	c.mu.Lock()
	cached := c.cached
	c.mu.Unlock()
	if cached != "" {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("logo fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes+1))
	if err != nil {
		return "", err
	}
	if len(body) > maxLogoBytes {
		return "", fmt.Errorf("logo exceeds %d bytes", maxLogoBytes)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(body)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("logo has non-image content type %q", contentType)
	}

	dataURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(body)

	c.mu.Lock()
	c.cached = dataURL
	c.cachedSize = len(body)
	c.mu.Unlock()
	return dataURL, nil
}

// Info reports the logo's presence and size for health checks. A fetch
// failure is reported, not returned, so health stays answerable.
func (c *LogoClient) Info(ctx context.Context) LogoInfo {
	if c.url == "" {
		return LogoInfo{}
	}
	dataURL, err := c.FetchDataURL(ctx)
	if err != nil {
		return LogoInfo{Configured: true, Error: err.Error()}
	}

	c.mu.Lock()
	size := c.cachedSize
	c.mu.Unlock()

	preview := dataURL
	if len(preview) > logoPreviewLen {
		preview = preview[:logoPreviewLen] + "..."
	}
	return LogoInfo{Configured: true, Exists: true, Size: size, Preview: preview}
}
