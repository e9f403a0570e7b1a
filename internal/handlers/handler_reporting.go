package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jgbarallobre/Contable/internal/core/ports/services"
	"github.com/jgbarallobre/Contable/internal/dto"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes wires the report endpoints into the group
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance/:periodID", h.trialBalance)
		reports.GET("/general-ledger/:accountID", h.generalLedger)
	}
}

// trialBalance godoc
// @Summary Trial balance of a period
// @Description Aggregates the approved entries of one period into per-account debit and credit totals
// @Tags reports
// @Produce  json
// @Param   periodID path string true "Period ID"
// @Success 200 {object} dto.APIResponse{data=dto.TrialBalanceResponse}
// @Failure 404 {object} dto.APIResponse "Period not found"
// @Router /reports/trial-balance/{periodID} [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	periodID := c.Param("periodID")
	rows, err := h.reportingService.TrialBalance(c.Request.Context(), caller, periodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTrialBalanceResponse(periodID, rows)))
}

// generalLedger godoc
// @Summary General ledger of an account
// @Description Lists the approved movements of one account over a date range in chronological order
// @Tags reports
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   dateFrom query string true "Start date (YYYY-MM-DD)"
// @Param   dateTo query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.GeneralLedgerResponse}
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Router /reports/general-ledger/{accountID} [get]
func (h *reportingHandler) generalLedger(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var params dto.GeneralLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	// Binding already enforced the date layout.
	from, _ := time.Parse("2006-01-02", params.DateFrom)
	to, _ := time.Parse("2006-01-02", params.DateTo)

	accountID := c.Param("accountID")
	rows, err := h.reportingService.GeneralLedger(c.Request.Context(), caller, accountID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToGeneralLedgerResponse(accountID, params.DateFrom, params.DateTo, rows)))
}
