package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jgbarallobre/Contable/internal/core/ports/services"
	"github.com/jgbarallobre/Contable/internal/dto"
	"github.com/jgbarallobre/Contable/internal/middleware"
)

// journalHandler handles HTTP requests for journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// registerJournalRoutes wires the journal entry endpoints into the group
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/approve", h.approveEntry)
		entries.POST("/:entryID/annul", h.annulEntry)
		entries.POST("/:entryID/reverse", h.reverseEntry)
	}
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Creates a balanced journal entry in DRAFT status with an allocated entry number
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.APIResponse{data=dto.JournalEntryResponse}
// @Failure 400 {object} dto.APIResponse "Invalid or unbalanced entry"
// @Failure 409 {object} dto.APIResponse "Period closed"
// @Router /journal-entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_number", entry.EntryNumber),
	)
	c.JSON(http.StatusCreated, dto.OK(dto.ToJournalEntryResponse(entry)))
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry with its lines
// @Tags journal-entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.JournalEntryResponse}
// @Failure 404 {object} dto.APIResponse "Entry not found"
// @Router /journal-entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetEntry(c.Request.Context(), caller, c.Param("entryID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToJournalEntryResponse(entry)))
}

// listEntries godoc
// @Summary List journal entries
// @Description Retrieves one page of journal entries, filterable by period, status, type, date range and text search
// @Tags journal-entries
// @Produce  json
// @Param   page query int false "Page number"
// @Param   pageSize query int false "Page size"
// @Param   periodID query string false "Filter by period"
// @Param   status query string false "Filter by status" Enums(DRAFT, APPROVED, ANNULED)
// @Param   entryType query string false "Filter by type" Enums(DAILY, INCOME, EXPENSE, ADJUSTMENT, CLOSING)
// @Param   dateFrom query string false "Start date (YYYY-MM-DD)"
// @Param   dateTo query string false "End date (YYYY-MM-DD)"
// @Param   search query string false "Text search over number, description and reference"
// @Success 200 {object} dto.APIResponse{data=[]dto.JournalEntryResponse}
// @Router /journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	entries, total, page, err := h.journalService.ListEntries(c.Request.Context(), caller, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKPage(dto.ToListJournalEntryResponse(entries), total, page))
}

// approveEntry godoc
// @Summary Approve a journal entry
// @Description Transitions a DRAFT entry to APPROVED
// @Tags journal-entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.JournalEntryResponse}
// @Failure 404 {object} dto.APIResponse "Entry not found"
// @Failure 409 {object} dto.APIResponse "Entry is not in DRAFT status"
// @Router /journal-entries/{entryID}/approve [post]
func (h *journalHandler) approveEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	entryID := c.Param("entryID")
	entry, err := h.journalService.ApproveEntry(c.Request.Context(), caller, entryID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Journal entry approved", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.OK(dto.ToJournalEntryResponse(entry)))
}

// annulEntry godoc
// @Summary Annul a journal entry
// @Description Transitions an APPROVED entry to ANNULED, recording the mandatory reason
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   body body dto.AnnulJournalEntryRequest true "Annulment reason"
// @Success 200 {object} dto.APIResponse{data=dto.JournalEntryResponse}
// @Failure 400 {object} dto.APIResponse "Missing reason"
// @Failure 409 {object} dto.APIResponse "Entry is not in APPROVED status"
// @Router /journal-entries/{entryID}/annul [post]
func (h *journalHandler) annulEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.AnnulJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	entryID := c.Param("entryID")
	entry, err := h.journalService.AnnulEntry(c.Request.Context(), caller, entryID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Journal entry annulled", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.OK(dto.ToJournalEntryResponse(entry)))
}

// reverseEntry godoc
// @Summary Reverse a journal entry
// @Description Creates an approved adjustment entry that mirrors the original with debits and credits swapped
// @Tags journal-entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 201 {object} dto.APIResponse{data=dto.JournalEntryResponse}
// @Failure 404 {object} dto.APIResponse "Entry not found"
// @Failure 409 {object} dto.APIResponse "Period closed"
// @Router /journal-entries/{entryID}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	entryID := c.Param("entryID")
	reversal, err := h.journalService.ReverseEntry(c.Request.Context(), caller, entryID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Journal entry reversed",
		slog.String("entry_id", entryID),
		slog.String("reversal_id", reversal.EntryID),
	)
	c.JSON(http.StatusCreated, dto.OK(dto.ToJournalEntryResponse(reversal)))
}
