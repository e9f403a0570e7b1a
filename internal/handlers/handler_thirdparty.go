package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jgbarallobre/Contable/internal/core/ports/services"
	"github.com/jgbarallobre/Contable/internal/dto"
	"github.com/jgbarallobre/Contable/internal/middleware"
)

// thirdPartyHandler handles HTTP requests for counterparties.
type thirdPartyHandler struct {
	thirdPartyService portssvc.ThirdPartySvcFacade
}

// newThirdPartyHandler creates a new thirdPartyHandler.
func newThirdPartyHandler(thirdPartyService portssvc.ThirdPartySvcFacade) *thirdPartyHandler {
	return &thirdPartyHandler{thirdPartyService: thirdPartyService}
}

// registerThirdPartyRoutes wires the third party endpoints into the group
func registerThirdPartyRoutes(rg *gin.RouterGroup, thirdPartyService portssvc.ThirdPartySvcFacade) {
	h := newThirdPartyHandler(thirdPartyService)

	parties := rg.Group("/third-parties")
	{
		parties.POST("", h.createThirdParty)
		parties.GET("", h.listThirdParties)
		parties.GET("/:thirdPartyID", h.getThirdParty)
		parties.PUT("/:thirdPartyID", h.updateThirdParty)
		parties.DELETE("/:thirdPartyID", h.deactivateThirdParty)
	}
}

// createThirdParty godoc
// @Summary Register a third party
// @Description Registers a customer, supplier, employee or other counterparty
// @Tags third-parties
// @Accept  json
// @Produce  json
// @Param   thirdParty body dto.CreateThirdPartyRequest true "Third party"
// @Success 201 {object} dto.APIResponse{data=dto.ThirdPartyResponse}
// @Failure 400 {object} dto.APIResponse "Invalid RIF"
// @Failure 409 {object} dto.APIResponse "Duplicate RIF"
// @Router /third-parties [post]
func (h *thirdPartyHandler) createThirdParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateThirdPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	tp, err := h.thirdPartyService.CreateThirdParty(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Third party registered",
		slog.String("third_party_id", tp.ThirdPartyID),
		slog.String("rif", tp.RIF),
	)
	c.JSON(http.StatusCreated, dto.OK(dto.ToThirdPartyResponse(tp)))
}

// listThirdParties godoc
// @Summary List third parties
// @Tags third-parties
// @Produce  json
// @Param   page query int false "Page number"
// @Param   pageSize query int false "Page size"
// @Param   thirdPartyType query string false "Filter by type" Enums(CUSTOMER, SUPPLIER, EMPLOYEE, OTHER)
// @Param   search query string false "Text search over RIF and names"
// @Param   activeOnly query bool false "Only active third parties"
// @Success 200 {object} dto.APIResponse{data=[]dto.ThirdPartyResponse}
// @Router /third-parties [get]
func (h *thirdPartyHandler) listThirdParties(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var params dto.ListThirdPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	parties, total, page, err := h.thirdPartyService.ListThirdParties(c.Request.Context(), caller, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKPage(dto.ToListThirdPartyResponse(parties), total, page))
}

// getThirdParty godoc
// @Summary Get a third party
// @Tags third-parties
// @Produce  json
// @Param   thirdPartyID path string true "Third party ID"
// @Success 200 {object} dto.APIResponse{data=dto.ThirdPartyResponse}
// @Failure 404 {object} dto.APIResponse "Third party not found"
// @Router /third-parties/{thirdPartyID} [get]
func (h *thirdPartyHandler) getThirdParty(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	tp, err := h.thirdPartyService.GetThirdParty(c.Request.Context(), caller, c.Param("thirdPartyID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToThirdPartyResponse(tp)))
}

// updateThirdParty godoc
// @Summary Update a third party
// @Tags third-parties
// @Accept  json
// @Produce  json
// @Param   thirdPartyID path string true "Third party ID"
// @Param   thirdParty body dto.UpdateThirdPartyRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ThirdPartyResponse}
// @Failure 404 {object} dto.APIResponse "Third party not found"
// @Router /third-parties/{thirdPartyID} [put]
func (h *thirdPartyHandler) updateThirdParty(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateThirdPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	tp, err := h.thirdPartyService.UpdateThirdParty(c.Request.Context(), caller, c.Param("thirdPartyID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToThirdPartyResponse(tp)))
}

// deactivateThirdParty godoc
// @Summary Deactivate a third party
// @Tags third-parties
// @Produce  json
// @Param   thirdPartyID path string true "Third party ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Third party not found"
// @Router /third-parties/{thirdPartyID} [delete]
func (h *thirdPartyHandler) deactivateThirdParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	thirdPartyID := c.Param("thirdPartyID")
	if err := h.thirdPartyService.DeactivateThirdParty(c.Request.Context(), caller, thirdPartyID); err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Third party deactivated", slog.String("third_party_id", thirdPartyID))
	c.JSON(http.StatusOK, dto.OKMessage("third party deactivated"))
}
