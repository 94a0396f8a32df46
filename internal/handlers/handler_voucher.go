package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/apperrors"
	portssvc "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/services"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/services"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/dto"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/middleware"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/utils/accounting"
)

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

// newVoucherHandler creates a new voucherHandler.
func newVoucherHandler(voucherService portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{
		voucherService: voucherService,
	}
}

// postVoucher godoc
// @Summary Post a voucher
// @Description Builds the ledger lines for the given kind and persists the balanced voucher
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   voucher body dto.PostVoucherRequest true "Voucher inputs"
// @Success 201 {object} dto.VoucherResponse "The created voucher header"
// @Failure 400 {object} map[string]string "Invalid request or unbalanced inputs"
// @Failure 500 {object} map[string]string "Failed to post voucher"
// @Router /vouchers [post]
func (h *voucherHandler) postVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.PostVoucherRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for postVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID := callerUserID(c)
	voucher, err := h.voucherService.Post(c.Request.Context(), req, userID)
	if err != nil {
		respondVoucherError(c, logger, err, "Failed to post voucher")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// getVoucher godoc
// @Summary Get a voucher with its lines
// @Description Retrieves a voucher header and all of its ledger lines by ID
// @Tags vouchers
// @Produce  json
// @Param   voucherID path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse "The voucher with lines"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 500 {object} map[string]string "Failed to retrieve voucher"
// @Router /vouchers/{voucherID} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Voucher not found", slog.String("voucher_id", voucherID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
			return
		}
		logger.Error("Failed to get voucher from service", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve voucher"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// replaceVoucherLines godoc
// @Summary Edit a voucher
// @Description Rebuilds the voucher's lines from the new inputs and replaces the full line set atomically
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   voucherID path string true "Voucher ID"
// @Param   voucher body dto.PostVoucherRequest true "Replacement inputs (same kind)"
// @Success 200 {object} dto.VoucherResponse "The updated voucher header"
// @Failure 400 {object} map[string]string "Invalid request or unbalanced inputs"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 500 {object} map[string]string "Failed to update voucher"
// @Router /vouchers/{voucherID}/lines [put]
func (h *voucherHandler) replaceVoucherLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	req := dto.PostVoucherRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for replaceVoucherLines", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID := callerUserID(c)
	voucher, err := h.voucherService.ReplaceLines(c.Request.Context(), voucherID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Voucher not found for edit", slog.String("voucher_id", voucherID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
			return
		}
		respondVoucherError(c, logger, err, "Failed to update voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// reverseVoucher godoc
// @Summary Reverse a voucher
// @Description Creates a new posted voucher mirroring the original's lines with sides swapped
// @Tags vouchers
// @Produce  json
// @Param   voucherID path string true "Voucher ID"
// @Success 201 {object} dto.VoucherResponse "The reversing voucher header"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 500 {object} map[string]string "Failed to reverse voucher"
// @Router /vouchers/{voucherID}/reverse [post]
func (h *voucherHandler) reverseVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	userID := callerUserID(c)
	voucher, err := h.voucherService.ReverseVoucher(c.Request.Context(), voucherID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Voucher not found for reversal", slog.String("voucher_id", voucherID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
			return
		}
		logger.Error("Failed to reverse voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reverse voucher"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List vouchers
// @Description Retrieves a page of voucher headers, newest first, with a cursor token for the next page
// @Tags vouchers
// @Produce  json
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListVouchersResponse "Page of vouchers"
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 500 {object} map[string]string "Failed to list vouchers"
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.ListVouchersParams{}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		params.Limit = limit
	}
	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}

	resp, err := h.voucherService.ListVouchers(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list vouchers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vouchers"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// respondVoucherError maps posting errors to HTTP responses. Business rule
// violations are 400s; anything else is a 500.
func respondVoucherError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, accounting.ErrUnbalanced),
		errors.Is(err, accounting.ErrMinLines),
		errors.Is(err, accounting.ErrOneSidedAmount),
		errors.Is(err, accounting.ErrInvalidAmount),
		errors.Is(err, accounting.ErrInvalidRate),
		errors.Is(err, accounting.ErrInvalidCurrencyConfig),
		errors.Is(err, services.ErrSameParty),
		errors.Is(err, services.ErrCashbookRequired),
		errors.Is(err, services.ErrNegativeFlatFee),
		errors.Is(err, services.ErrNoManualLines),
		errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, services.ErrAccountInactive),
		errors.Is(err, services.ErrKindNotRegistered),
		errors.Is(err, services.ErrKindChanged),
		errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error on voucher operation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// callerUserID identifies the acting user for audit columns. Authentication
// lives in front of this service; the gateway forwards the user in a header.
func callerUserID(c *gin.Context) string {
	if userID := c.GetHeader("X-User-ID"); userID != "" {
		return userID
	}
	return "system"
}

// registerVoucherRoutes registers voucher specific routes
func registerVoucherRoutes(group *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	handler := newVoucherHandler(voucherService)

	vouchers := group.Group("/vouchers")
	{
		vouchers.POST("", handler.postVoucher)
		vouchers.GET("", handler.listVouchers)
		vouchers.GET("/:voucherID", handler.getVoucher)
		vouchers.PUT("/:voucherID/lines", handler.replaceVoucherLines)
		vouchers.POST("/:voucherID/reverse", handler.reverseVoucher)
	}
}
