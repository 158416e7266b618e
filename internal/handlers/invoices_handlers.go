package handlers

import (
	"net/http"
	"strconv"

	"biztime/internal/services"

	"github.com/labstack/echo/v4"
)

// InvoiceHandlers handles invoice-related HTTP requests
type InvoiceHandlers struct {
	invoiceService services.InvoiceService
}

// NewInvoiceHandlers creates a new invoice handlers instance
func NewInvoiceHandlers(invoiceService services.InvoiceService) *InvoiceHandlers {
	return &InvoiceHandlers{invoiceService: invoiceService}
}

// ListInvoices handles getting all invoices projected to {id, comp_code}
func (h *InvoiceHandlers) ListInvoices(c echo.Context) error {
	invoices, err := h.invoiceService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"invoices": invoices})
}

// GetInvoice handles getting one invoice with its company nested
func (h *InvoiceHandlers) GetInvoice(c echo.Context) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}

	invoice, err := h.invoiceService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"invoice": invoice})
}

// CreateInvoiceRequest represents the invoice creation request payload
type CreateInvoiceRequest struct {
	CompCode string  `json:"comp_code"`
	Amt      float64 `json:"amt"`
}

// CreateInvoice handles creating a new unpaid invoice
func (h *InvoiceHandlers) CreateInvoice(c echo.Context) error {
	var req CreateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	invoice, err := h.invoiceService.Create(c.Request().Context(), req.CompCode, req.Amt)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"invoice": invoice})
}

// UpdateInvoiceRequest represents the invoice update request payload
type UpdateInvoiceRequest struct {
	Amt  float64 `json:"amt"`
	Paid bool    `json:"paid"`
}

// UpdateInvoice handles updating an invoice's amount and payment status
func (h *InvoiceHandlers) UpdateInvoice(c echo.Context) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}

	var req UpdateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	invoice, err := h.invoiceService.Update(c.Request().Context(), id, req.Amt, req.Paid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"invoice": invoice})
}

// DeleteInvoice handles deleting an invoice
func (h *InvoiceHandlers) DeleteInvoice(c echo.Context) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}

	if err := h.invoiceService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func invoiceID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid invoice id")
	}
	return id, nil
}
