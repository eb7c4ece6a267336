package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/voucherledger/voucher_ledger_app/internal/apperrors"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	"github.com/voucherledger/voucher_ledger_app/internal/core/ports/services"
	"github.com/voucherledger/voucher_ledger_app/internal/dto"
	"github.com/voucherledger/voucher_ledger_app/internal/middleware"
)

// postRetryAttempts bounds the automatic retry loop for serialization
// conflicts during posting. Contention on a single numbering sequence is
// short-lived, so a small number of retries resolves almost all conflicts.
const postRetryAttempts = 3

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService services.VoucherSvcFacade
	resolver       *voucherAccountResolver
}

// newVoucherHandler creates a new voucherHandler.
func newVoucherHandler(vs services.VoucherSvcFacade, as services.AccountSvcFacade) *voucherHandler {
	return &voucherHandler{
		voucherService: vs,
		resolver:       newVoucherAccountResolver(as),
	}
}

// registerVoucherRoutes registers routes related to vouchers.
func registerVoucherRoutes(rg *gin.RouterGroup, vs services.VoucherSvcFacade, as services.AccountSvcFacade) {
	h := newVoucherHandler(vs, as)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listDraftVouchers)
		vouchers.GET("/:voucherID", h.getVoucher)
		vouchers.PUT("/:voucherID", h.updateVoucher)
		vouchers.DELETE("/:voucherID", h.deleteVoucher)
		vouchers.POST("/:voucherID/post", h.postVoucher)
	}
}

func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("sub_type", req.SubType))
	logger.Info("Received request to create draft voucher")

	input, err := h.resolver.ResolveDraftInput(c.Request.Context(), companyID, req)
	if err != nil {
		h.respondVoucherError(c, logger, err, "Failed to create voucher")
		return
	}

	voucher, err := h.voucherService.CreateDraft(c.Request.Context(), companyID, input)
	if err != nil {
		h.respondVoucherError(c, logger, err, "Failed to create voucher")
		return
	}

	logger.Info("Draft voucher created successfully", slog.String("voucher_id", voucher.VoucherID))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) updateVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	voucherID := c.Param("voucherID")

	var req dto.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("voucher_id", voucherID))
	logger.Info("Received request to update draft voucher")

	input, err := h.resolver.ResolveDraftInput(c.Request.Context(), companyID, req)
	if err != nil {
		h.respondVoucherError(c, logger, err, "Failed to update voucher")
		return
	}

	voucher, err := h.voucherService.UpdateDraft(c.Request.Context(), companyID, voucherID, input)
	if err != nil {
		h.respondVoucherError(c, logger, err, "Failed to update voucher")
		return
	}

	logger.Info("Draft voucher updated successfully")
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	voucherID := c.Param("voucherID")

	logger = logger.With(slog.String("company_id", companyID), slog.String("voucher_id", voucherID))
	logger.Info("Received request to delete draft voucher")

	if err := h.voucherService.DeleteDraft(c.Request.Context(), companyID, voucherID); err != nil {
		h.respondVoucherError(c, logger, err, "Failed to delete voucher")
		return
	}

	logger.Info("Draft voucher deleted successfully")
	c.Status(http.StatusNoContent)
}

// postVoucher runs the draft to posted transition. Serialization conflicts
// from concurrent postings against the same numbering sequence are retried a
// few times before giving up with 409.
func (h *voucherHandler) postVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	voucherID := c.Param("voucherID")

	logger = logger.With(slog.String("company_id", companyID), slog.String("voucher_id", voucherID))
	logger.Info("Received request to post voucher")

	var result *domain.PostingResult
	var err error
	for attempt := 1; attempt <= postRetryAttempts; attempt++ {
		result, err = h.voucherService.PostVoucher(c.Request.Context(), companyID, voucherID)
		if err == nil || !errors.Is(err, apperrors.ErrSerializationConflict) {
			break
		}
		logger.Warn("Posting serialization conflict, retrying", slog.Int("attempt", attempt))
	}
	if err != nil {
		h.respondVoucherError(c, logger, err, "Failed to post voucher")
		return
	}

	logger.Info("Voucher posted successfully", slog.Int64("voucher_number", result.VoucherNumber))
	c.JSON(http.StatusOK, dto.ToPostVoucherResponse(result))
}

func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	voucherID := c.Param("voucherID")

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), companyID, voucherID)
	if err != nil {
		logger = logger.With(slog.String("voucher_id", voucherID))
		h.respondVoucherError(c, logger, err, "Failed to retrieve voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) listDraftVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	vouchers, err := h.voucherService.ListDraftVouchers(c.Request.Context(), companyID, limit)
	if err != nil {
		logger = logger.With(slog.String("company_id", companyID))
		h.respondVoucherError(c, logger, err, "Failed to list draft vouchers")
		return
	}

	responses := make([]dto.VoucherResponse, len(vouchers))
	for i := range vouchers {
		responses[i] = dto.ToVoucherResponse(&vouchers[i])
	}
	c.JSON(http.StatusOK, gin.H{"vouchers": responses})
}

// respondVoucherError maps domain errors onto HTTP statuses shared by all
// voucher endpoints.
func (h *voucherHandler) respondVoucherError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrUnresolvedTemplate),
		errors.Is(err, apperrors.ErrImbalancedTemplate),
		errors.Is(err, apperrors.ErrInvalidAmount):
		logger.Warn("Voucher request rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Voucher not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
	case errors.Is(err, apperrors.ErrInvalidState):
		logger.Warn("Voucher state conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrSerializationConflict):
		logger.Warn("Posting conflict persisted after retries", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "Posting conflicted with a concurrent request, please retry"})
	case errors.Is(err, apperrors.ErrUnbalancedVoucher),
		errors.Is(err, apperrors.ErrIncompleteVoucher):
		logger.Error("Voucher failed posting validation", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
