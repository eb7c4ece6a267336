package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/voucherledger/voucher_ledger_app/internal/apperrors"
	"github.com/voucherledger/voucher_ledger_app/internal/core/ports/services"
	"github.com/voucherledger/voucher_ledger_app/internal/dto"
	"github.com/voucherledger/voucher_ledger_app/internal/middleware"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService services.ReportingSvcFacade
}

func newReportingHandler(rs services.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report endpoints.
func registerReportingRoutes(rg *gin.RouterGroup, rs services.ReportingSvcFacade) {
	h := newReportingHandler(rs)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
	}
}

func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	from, to, ok := h.bindReportParams(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("company_id", companyID))
	logger.Info("Received request for trial balance")

	report, err := h.reportingService.TrialBalance(c.Request.Context(), companyID, from, to)
	if err != nil {
		h.respondReportError(c, logger, err, "Failed to generate trial balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	from, to, ok := h.bindReportParams(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("company_id", companyID))
	logger.Info("Received request for profit and loss")

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), companyID, from, to)
	if err != nil {
		h.respondReportError(c, logger, err, "Failed to generate profit and loss")
		return
	}

	c.JSON(http.StatusOK, dto.ToPAndLResponse(report))
}

// bindReportParams parses the optional from/to date bounds. The to bound is
// pushed to end of day so the range stays inclusive on voucher dates.
func (h *reportingHandler) bindReportParams(c *gin.Context, logger *slog.Logger) (from, to *time.Time, ok bool) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid report parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report parameters: " + err.Error()})
		return nil, nil, false
	}

	if params.From != "" {
		t, _ := time.Parse("2006-01-02", params.From)
		from = &t
	}
	if params.To != "" {
		t, _ := time.Parse("2006-01-02", params.To)
		t = t.Add(24*time.Hour - time.Nanosecond)
		to = &t
	}
	if from != nil && to != nil && from.After(*to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from date must not be after to date"})
		return nil, nil, false
	}
	return from, to, true
}

func (h *reportingHandler) respondReportError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	if errors.Is(err, apperrors.ErrReportIntegrity) {
		logger.Error("Report integrity violation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Error(fallback, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
