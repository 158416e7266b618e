package handlers

import (
	"net/http"

	"biztime/internal/services"

	"github.com/labstack/echo/v4"
)

// CompanyHandlers handles company-related HTTP requests
type CompanyHandlers struct {
	companyService services.CompanyService
}

// NewCompanyHandlers creates a new company handlers instance
func NewCompanyHandlers(companyService services.CompanyService) *CompanyHandlers {
	return &CompanyHandlers{companyService: companyService}
}

// ListCompanies handles getting all companies projected to {code, name}
func (h *CompanyHandlers) ListCompanies(c echo.Context) error {
	companies, err := h.companyService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"companies": companies})
}

// GetCompany handles getting one company with its invoice ids and industries
func (h *CompanyHandlers) GetCompany(c echo.Context) error {
	company, err := h.companyService.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"company": company})
}

// CreateCompanyRequest represents the company creation request payload.
// Code is optional; when absent it is derived from Name.
type CreateCompanyRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateCompany handles creating a new company
func (h *CompanyHandlers) CreateCompany(c echo.Context) error {
	var req CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	company, err := h.companyService.Create(c.Request().Context(), req.Code, req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"company": company})
}

// UpdateCompanyRequest represents the company update request payload
type UpdateCompanyRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdateCompany handles updating a company's name and description
func (h *CompanyHandlers) UpdateCompany(c echo.Context) error {
	var req UpdateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	company, err := h.companyService.Update(c.Request().Context(), c.Param("code"), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"company": company})
}

// DeleteCompany handles deleting a company
func (h *CompanyHandlers) DeleteCompany(c echo.Context) error {
	if err := h.companyService.Delete(c.Request().Context(), c.Param("code")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
