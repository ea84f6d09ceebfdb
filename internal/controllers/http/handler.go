package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"catering-service/internal/domain"
	"catering-service/internal/infra"
	"catering-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// documents in Arabic by default; the dashboard's UI language
const defaultLanguage = "ar"

type Handler struct {
	orders *services.OrderService
	docs   *services.DocumentService
	logos  infra.LogoFetcherInterface
	db     *gorm.DB
	rdb    *redis.Client
	log    *zap.Logger
}

func NewHandler(orders *services.OrderService, docs *services.DocumentService, logos infra.LogoFetcherInterface, db *gorm.DB, rdb *redis.Client, log *zap.Logger) *Handler {
	return &Handler{orders: orders, docs: docs, logos: logos, db: db, rdb: rdb, log: log}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/orders", h.CreateOrder)
	api.GET("/orders", h.ListOrders)
	api.GET("/orders/:id", h.GetOrder)
	api.PUT("/orders/:id", h.UpdateOrder)
	api.DELETE("/orders/:id", h.DeleteOrder)
	api.PATCH("/orders/:id/cook-status", h.UpdateCookStatus)
	api.POST("/orders/:id/share", h.ShareToCook)

	api.POST("/generate-pdf", h.GenerateReport)
	api.POST("/generate-receipt", h.GenerateReceipt)

	api.GET("/health", h.Health)
	api.GET("/generate-pdf/health", h.ReportHealth)
	api.GET("/generate-receipt/health", h.ReceiptHealth)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var order domain.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.orders.CreateOrder(c.Request.Context(), &order); err != nil {
		status := http.StatusInternalServerError
		if isValidationError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) ListOrders(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		orders, err := h.orders.ListOrdersByDate(c.Request.Context(), date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
		return
	}

	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	o, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	var order domain.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	order.OrderID = c.Param("id")

	if err := h.orders.UpdateOrder(c.Request.Context(), &order); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.orders.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) UpdateCookStatus(c *gin.Context) {
	var req UpdateCookStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	o, err := h.orders.UpdateCookStatus(c.Request.Context(), c.Param("id"), domain.CookStatus(req.CookStatus))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) ShareToCook(c *gin.Context) {
	o, err := h.orders.ShareToCook(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

// GenerateReport prints the order list the dashboard sent, or every
// stored order when the request carries none.
func (h *Handler) GenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	orders := req.Orders
	if len(orders) == 0 {
		var err error
		orders, err = h.orders.ListOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
	}

	// summary is opt-in; an absent flag means no summary block
	showSummary := req.ShowSummary != nil && *req.ShowSummary

	docResult, err := h.docs.GenerateReport(c.Request.Context(), orders, services.ReportParams{
		Language:    language(req.Language),
		ShowSummary: showSummary,
		AutoPrint:   req.AutoPrint,
		Engine:      req.Engine,
	})
	h.writeDocument(c, docResult, err)
}

func (h *Handler) GenerateReceipt(c *gin.Context) {
	var req GenerateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.Order == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order data"})
		return
	}

	docResult, err := h.docs.GenerateReceipt(c.Request.Context(), *req.Order, services.ReceiptParams{
		Language:       language(req.Language),
		LogoURL:        req.LogoURL,
		UseDefaultLogo: req.UseDefaultLogo == nil || *req.UseDefaultLogo,
		AutoPrint:      req.AutoPrint,
		Engine:         req.Engine,
	})
	h.writeDocument(c, docResult, err)
}

func (h *Handler) writeDocument(c *gin.Context, d *domain.Document, err error) {
	if err != nil {
		h.log.Error("document generation failed", zap.Error(err))
		resp := ErrorResponse{Error: "document generation failed", Details: err.Error()}
		var genErr *services.GenerationError
		if errors.As(err, &genErr) {
			resp.Details = fmt.Sprintf("render: %v; degrade: %v", genErr.RenderErr, genErr.DegradeErr)
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.Header("Content-Disposition", d.Disposition())
	if d.Degraded {
		c.Data(http.StatusOK, d.ContentType(), []byte(d.HTML))
		return
	}
	c.Data(http.StatusOK, d.ContentType(), d.PDF)
}

// Health pings the backing stores concurrently and reports per-component
// state. Degraded components turn the overall status without failing the
// request.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	var mysqlErr, redisErr error
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(gctx)
		}
		mysqlErr = err
		return nil
	})
	g.Go(func() error {
		redisErr = h.rdb.Ping(gctx).Err()
		return nil
	})
	_ = g.Wait()

	components := map[string]string{"mysql": "ok", "redis": "ok"}
	if mysqlErr != nil {
		components["mysql"] = mysqlErr.Error()
	}
	if redisErr != nil {
		components["redis"] = redisErr.Error()
	}

	status := "ok"
	code := http.StatusOK
	for _, v := range components {
		if v != "ok" {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	c.JSON(code, HealthResponse{Status: status, Components: components})
}

// ReportHealth is the report endpoint's own liveness probe.
func (h *Handler) ReportHealth(c *gin.Context) {
	c.JSON(http.StatusOK, EndpointHealthResponse{
		Status:    "healthy",
		Message:   "PDF generation API is working",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ReceiptHealth reports receipt-endpoint liveness plus the state of the
// configured company logo, so a blank logo on printed receipts can be
// diagnosed without generating one.
func (h *Handler) ReceiptHealth(c *gin.Context) {
	resp := EndpointHealthResponse{
		Status:    "healthy",
		Message:   "Receipt API is working",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if h.logos != nil {
		info := h.logos.Info(c.Request.Context())
		resp.Logo = &info
	}
	c.JSON(http.StatusOK, resp)
}

func language(l string) string {
	if l == "" {
		return defaultLanguage
	}
	return l
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrInvalidPaymentType) ||
		errors.Is(err, domain.ErrInvalidPaymentStatus) ||
		errors.Is(err, domain.ErrInvalidCookStatus)
}
