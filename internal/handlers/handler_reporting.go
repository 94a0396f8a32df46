package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/apperrors"
	portssvc "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/services"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/dto"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/middleware"
)

const dateParamFormat = "2006-01-02"

// endOfDay pushes a parsed YYYY-MM-DD value to the last instant of that day
// so upper range bounds include vouchers dated later the same day.
func endOfDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// reportingHandler handles HTTP requests for balances and reports.
type reportingHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(balanceService portssvc.BalanceSvcFacade) *reportingHandler {
	return &reportingHandler{
		balanceService: balanceService,
	}
}

// getCashBookBalance godoc
// @Summary Get an account's cash book balance
// @Description Returns the account's net movement per currency over posted vouchers
// @Tags reports
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {array} dto.CashBookBalanceResponse "Per-currency balances"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /accounts/{accountID}/balance [get]
func (h *reportingHandler) getCashBookBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	balances, err := h.balanceService.CashBookBalance(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		logger.Error("Failed to get cash book balance", slog.String("error", err.Error()), slog.String("account_id", accountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashBookBalanceResponses(balances))
}

// getAccountStatement godoc
// @Summary Get an account statement
// @Description Returns the account's lines over the date range with per-currency running balances
// @Tags reports
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   from query string true "Range start (YYYY-MM-DD)"
// @Param   to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.StatementResponse "The statement"
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Router /accounts/{accountID}/statement [get]
func (h *reportingHandler) getAccountStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	from, err := time.Parse(dateParamFormat, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing 'from' date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(dateParamFormat, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing 'to' date, expected YYYY-MM-DD"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'to' date must not precede 'from' date"})
		return
	}

	statement, err := h.balanceService.AccountStatement(c.Request.Context(), accountID, from, endOfDay(to))
	if err != nil {
		logger.Error("Failed to build account statement", slog.String("error", err.Error()), slog.String("account_id", accountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(statement, from, to))
}

// getTrialBalance godoc
// @Summary Get the trial balance
// @Description Returns each account's net debit or credit position as of a date
// @Tags reports
// @Produce  json
// @Param   asOf query string false "As-of date (YYYY-MM-DD, default today)"
// @Success 200 {object} dto.TrialBalanceResponse "The trial balance"
// @Failure 400 {object} map[string]string "Invalid asOf date"
// @Failure 500 {object} map[string]string "Failed to compute trial balance"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf := time.Now().UTC()
	if asOfStr := c.Query("asOf"); asOfStr != "" {
		parsed, err := time.Parse(dateParamFormat, asOfStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'asOf' date, expected YYYY-MM-DD"})
			return
		}
		asOf = endOfDay(parsed)
	}

	rows, err := h.balanceService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to compute trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute trial balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows, asOf))
}

// registerReportingRoutes registers balance and report routes
func registerReportingRoutes(group *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	handler := newReportingHandler(balanceService)

	accounts := group.Group("/accounts")
	{
		accounts.GET("/:accountID/balance", handler.getCashBookBalance)
		accounts.GET("/:accountID/statement", handler.getAccountStatement)
	}

	reports := group.Group("/reports")
	{
		reports.GET("/trial-balance", handler.getTrialBalance)
	}
}
