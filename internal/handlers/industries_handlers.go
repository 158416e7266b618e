package handlers

import (
	"net/http"

	"biztime/internal/services"

	"github.com/labstack/echo/v4"
)

// IndustryHandlers handles industry-related HTTP requests
type IndustryHandlers struct {
	industryService services.IndustryService
}

// NewIndustryHandlers creates a new industry handlers instance
func NewIndustryHandlers(industryService services.IndustryService) *IndustryHandlers {
	return &IndustryHandlers{industryService: industryService}
}

// ListIndustries handles getting all industries with their company codes.
// The response is a bare array, the one endpoint without an envelope.
func (h *IndustryHandlers) ListIndustries(c echo.Context) error {
	industries, err := h.industryService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, industries)
}

// GetIndustry handles getting one industry with its company codes
func (h *IndustryHandlers) GetIndustry(c echo.Context) error {
	industry, err := h.industryService.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"industry": industry})
}

// CreateIndustryRequest represents the industry creation request payload
type CreateIndustryRequest struct {
	Code         string `json:"code"`
	IndustryName string `json:"industry_name"`
}

// CreateIndustry handles creating a new industry
func (h *IndustryHandlers) CreateIndustry(c echo.Context) error {
	var req CreateIndustryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	industry, err := h.industryService.Create(c.Request().Context(), req.Code, req.IndustryName)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"industry": industry})
}

// AssociateCompanyRequest represents the association request payload
type AssociateCompanyRequest struct {
	CompanyCode string `json:"companyCode"`
}

// AssociateCompany handles linking a company to an industry
func (h *IndustryHandlers) AssociateCompany(c echo.Context) error {
	var req AssociateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	association, err := h.industryService.Associate(c.Request().Context(), c.Param("code"), req.CompanyCode)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"industry": association})
}
