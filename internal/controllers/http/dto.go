package http

import (
	"catering-service/internal/domain"
	"catering-service/internal/infra"
)

type GenerateReportRequest struct {
	// Orders is the list the dashboard currently shows. When omitted the
	// service falls back to every stored order.
	Orders      []domain.Order `json:"orders"`
	Language    string         `json:"language"`
	ShowSummary *bool          `json:"showSummary"`
	AutoPrint   bool           `json:"autoPrint"`
	Engine      string         `json:"engine"`
}

type GenerateReceiptRequest struct {
	Order    *domain.Order `json:"order"`
	Language string        `json:"language"`
	// LogoURL overrides the configured company logo for this receipt.
	LogoURL string `json:"logoUrl"`
	// UseDefaultLogo, when explicitly false, suppresses the configured
	// logo and renders the placeholder box. Absent means true.
	UseDefaultLogo *bool  `json:"useDefaultLogo"`
	AutoPrint      bool   `json:"autoPrint"`
	Engine         string `json:"engine"`
}

type UpdateCookStatusRequest struct {
	CookStatus string `json:"cookStatus" binding:"required"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

type EndpointHealthResponse struct {
	Status    string          `json:"status"`
	Message   string          `json:"message"`
	Timestamp string          `json:"timestamp"`
	Logo      *infra.LogoInfo `json:"logo,omitempty"`
}
