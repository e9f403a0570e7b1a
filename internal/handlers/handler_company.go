package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jgbarallobre/Contable/internal/core/ports/services"
	"github.com/jgbarallobre/Contable/internal/dto"
	"github.com/jgbarallobre/Contable/internal/middleware"
)

// companyHandler handles HTTP requests for companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

// newCompanyHandler creates a new companyHandler.
func newCompanyHandler(companyService portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: companyService}
}

// registerCompanyRoutes wires the company endpoints into the group
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/:companyID", h.getCompany)
		companies.PUT("/:companyID", h.updateCompany)
	}
}

// createCompany godoc
// @Summary Create a company
// @Description Creates a company, grants the creator the admin role and opens the current fiscal year
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company"
// @Success 201 {object} dto.APIResponse{data=dto.CompanyResponse}
// @Failure 400 {object} dto.APIResponse "Invalid company data"
// @Failure 409 {object} dto.APIResponse "Duplicate RIF or code"
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Company created", slog.String("company_id", company.CompanyID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToCompanyResponse(company)))
}

// listCompanies godoc
// @Summary List the caller's companies
// @Description Retrieves the companies the caller has an active membership in
// @Tags companies
// @Produce  json
// @Success 200 {object} dto.APIResponse{data=[]dto.CompanyResponse}
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	companies, err := h.companyService.ListCompanies(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListCompanyResponse(companies)))
}

// getCompany godoc
// @Summary Get a company
// @Tags companies
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyResponse}
// @Failure 403 {object} dto.APIResponse "Caller is not a member"
// @Failure 404 {object} dto.APIResponse "Company not found"
// @Router /companies/{companyID} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetCompany(c.Request.Context(), caller, c.Param("companyID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCompanyResponse(company)))
}

// updateCompany godoc
// @Summary Update a company
// @Description Patches a company's mutable fields
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   company body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyResponse}
// @Failure 404 {object} dto.APIResponse "Company not found"
// @Router /companies/{companyID} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), caller, c.Param("companyID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCompanyResponse(company)))
}
