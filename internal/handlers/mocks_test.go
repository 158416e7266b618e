package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"biztime/internal/common"
	"biztime/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

// newTestEcho builds an Echo instance with the central error responder, so
// handler tests exercise the same error envelope as the server.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = common.HTTPErrorHandler
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) List(ctx context.Context) ([]models.CompanySummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CompanySummary), args.Error(1)
}

func (m *MockCompanyService) Get(ctx context.Context, code string) (*models.CompanyDetail, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompanyDetail), args.Error(1)
}

func (m *MockCompanyService) Create(ctx context.Context, code, name string, description *string) (*models.Company, error) {
	args := m.Called(ctx, code, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyService) Update(ctx context.Context, code, name string, description *string) (*models.Company, error) {
	args := m.Called(ctx, code, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyService) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) List(ctx context.Context) ([]models.InvoiceSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.InvoiceSummary), args.Error(1)
}

func (m *MockInvoiceService) Get(ctx context.Context, id int64) (*models.InvoiceDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InvoiceDetail), args.Error(1)
}

func (m *MockInvoiceService) Create(ctx context.Context, compCode string, amt float64) (*models.Invoice, error) {
	args := m.Called(ctx, compCode, amt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Update(ctx context.Context, id int64, amt float64, paid bool) (*models.Invoice, error) {
	args := m.Called(ctx, id, amt, paid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockIndustryService struct {
	mock.Mock
}

func (m *MockIndustryService) List(ctx context.Context) ([]models.IndustrySummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.IndustrySummary), args.Error(1)
}

func (m *MockIndustryService) Get(ctx context.Context, code string) (*models.IndustryDetail, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IndustryDetail), args.Error(1)
}

func (m *MockIndustryService) Create(ctx context.Context, code, industryName string) (*models.Industry, error) {
	args := m.Called(ctx, code, industryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Industry), args.Error(1)
}

func (m *MockIndustryService) Associate(ctx context.Context, industryCode, companyCode string) (*models.CompanyIndustry, error) {
	args := m.Called(ctx, industryCode, companyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompanyIndustry), args.Error(1)
}

func stringPtr(s string) *string {
	return &s
}
