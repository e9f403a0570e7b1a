package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jgbarallobre/Contable/internal/core/ports/services"
	"github.com/jgbarallobre/Contable/internal/dto"
	"github.com/jgbarallobre/Contable/internal/middleware"
)

// periodHandler handles HTTP requests for accounting periods.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

// newPeriodHandler creates a new periodHandler.
func newPeriodHandler(periodService portssvc.PeriodSvcFacade) *periodHandler {
	return &periodHandler{periodService: periodService}
}

// registerPeriodRoutes wires the period endpoints into the group
func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := newPeriodHandler(periodService)

	periods := rg.Group("/periods")
	{
		periods.GET("", h.listPeriods)
		periods.POST("", h.createYear)
		periods.GET("/open", h.getOpenPeriod)
		periods.GET("/:periodID", h.getPeriod)
		periods.POST("/:periodID/close", h.closePeriod)
		periods.POST("/:periodID/reopen", h.reopenPeriod)
	}
}

// listPeriods godoc
// @Summary List accounting periods
// @Description Retrieves the company's periods, filterable by year and status
// @Tags periods
// @Produce  json
// @Param   year query int false "Filter by year"
// @Param   status query string false "Filter by status" Enums(OPEN, CLOSED, LOCKED)
// @Success 200 {object} dto.APIResponse{data=[]dto.PeriodResponse}
// @Router /periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var params dto.ListPeriodsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	periods, err := h.periodService.ListPeriods(c.Request.Context(), caller, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListPeriodResponse(periods)))
}

// createYear godoc
// @Summary Create the twelve periods of a fiscal year
// @Description Creates the monthly periods of the given year in OPEN status
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   body body dto.CreateYearRequest true "Fiscal year"
// @Success 201 {object} dto.APIResponse{data=[]dto.PeriodResponse}
// @Failure 409 {object} dto.APIResponse "Year already has periods"
// @Router /periods [post]
func (h *periodHandler) createYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	periods, err := h.periodService.CreateYear(c.Request.Context(), caller, req.Year)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Fiscal year created", slog.Int("year", req.Year))
	c.JSON(http.StatusCreated, dto.OK(dto.ToListPeriodResponse(periods)))
}

// getOpenPeriod godoc
// @Summary Get the earliest open period
// @Description Retrieves the company's chronologically earliest OPEN period
// @Tags periods
// @Produce  json
// @Success 200 {object} dto.APIResponse{data=dto.PeriodResponse}
// @Failure 404 {object} dto.APIResponse "No open period"
// @Router /periods/open [get]
func (h *periodHandler) getOpenPeriod(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	period, err := h.periodService.FindOpenPeriod(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToPeriodResponse(period)))
}

// getPeriod godoc
// @Summary Get a period
// @Tags periods
// @Produce  json
// @Param   periodID path string true "Period ID"
// @Success 200 {object} dto.APIResponse{data=dto.PeriodResponse}
// @Failure 404 {object} dto.APIResponse "Period not found"
// @Router /periods/{periodID} [get]
func (h *periodHandler) getPeriod(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	period, err := h.periodService.GetPeriod(c.Request.Context(), caller, c.Param("periodID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToPeriodResponse(period)))
}

// closePeriod godoc
// @Summary Close a period
// @Description Closes an OPEN period after verifying its approved entries balance exactly
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   periodID path string true "Period ID"
// @Param   body body dto.ClosePeriodRequest false "Closure note"
// @Success 200 {object} dto.APIResponse{data=dto.PeriodResponse}
// @Failure 409 {object} dto.APIResponse "Period not open or unbalanced"
// @Router /periods/{periodID}/close [post]
func (h *periodHandler) closePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	// The note body is optional.
	var req dto.ClosePeriodRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	periodID := c.Param("periodID")
	period, err := h.periodService.ClosePeriod(c.Request.Context(), caller, periodID, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Period closed", slog.String("period_id", periodID))
	c.JSON(http.StatusOK, dto.OK(dto.ToPeriodResponse(period)))
}

// reopenPeriod godoc
// @Summary Reopen a closed period
// @Description Reopens a CLOSED period unless the following month's period is currently open
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   periodID path string true "Period ID"
// @Param   body body dto.ReopenPeriodRequest false "Reopening note"
// @Success 200 {object} dto.APIResponse{data=dto.PeriodResponse}
// @Failure 409 {object} dto.APIResponse "Period not closed or next period open"
// @Router /periods/{periodID}/reopen [post]
func (h *periodHandler) reopenPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	// The note body is optional.
	var req dto.ReopenPeriodRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	periodID := c.Param("periodID")
	period, err := h.periodService.ReopenPeriod(c.Request.Context(), caller, periodID, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Period reopened", slog.String("period_id", periodID))
	c.JSON(http.StatusOK, dto.OK(dto.ToPeriodResponse(period)))
}
