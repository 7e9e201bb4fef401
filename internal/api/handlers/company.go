package handlers

import (
	"net/http"
	"strings"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for companies
type CompanyHandler struct {
	service service.CompanyServiceInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(service service.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// CreateCompany handles POST /api/v1/companies
// @Summary Create company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body service.CreateCompanyRequest true "Company data"
// @Success 201 {object} service.CompanyResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Security BearerAuth
// @Router /api/v1/companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}

	var req service.CreateCompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company, err := h.service.Create(orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create company")
		return
	}

	c.JSON(http.StatusCreated, company)
}

// SearchCompanies handles GET /api/v1/companies
// @Summary Search companies
// @Tags companies
// @Produce json
// @Param q query string false "Search term"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.CompanyListResponse
// @Security BearerAuth
// @Router /api/v1/companies [get]
func (h *CompanyHandler) SearchCompanies(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	companies, err := h.service.Search(orgID, strings.TrimSpace(c.Query("q")), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to search companies")
		return
	}

	c.JSON(http.StatusOK, companies)
}

// GetCompany handles GET /api/v1/companies/:id
// @Summary Get company
// @Tags companies
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} service.CompanyResponse
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Security BearerAuth
// @Router /api/v1/companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "company")
	if !ok {
		return
	}

	company, err := h.service.GetByID(orgID, id)
	if err != nil {
		respondError(c, err, "Failed to get company")
		return
	}

	c.JSON(http.StatusOK, company)
}

// UpdateCompany handles PUT /api/v1/companies/:id
// @Summary Update company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param company body service.UpdateCompanyRequest true "Updated company data"
// @Success 200 {object} service.CompanyResponse
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Security BearerAuth
// @Router /api/v1/companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "company")
	if !ok {
		return
	}

	var req service.UpdateCompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company, err := h.service.Update(orgID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update company")
		return
	}

	c.JSON(http.StatusOK, company)
}

// DeleteCompany handles DELETE /api/v1/companies/:id
// @Summary Delete company
// @Tags companies
// @Param id path string true "Company ID (UUID)"
// @Success 204 "Successfully deleted company"
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Security BearerAuth
// @Router /api/v1/companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	orgID, ok := tenantID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "company")
	if !ok {
		return
	}

	if err := h.service.Delete(orgID, id); err != nil {
		respondError(c, err, "Failed to delete company")
		return
	}

	c.Status(http.StatusNoContent)
}
