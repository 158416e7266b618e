package services

import (
	"context"
	"time"

	"biztime/internal/models"

	"github.com/stretchr/testify/mock"
)

// Mock repositories shared by the service tests

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) List(ctx context.Context) ([]models.CompanySummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CompanySummary), args.Error(1)
}

func (m *MockCompanyRepository) GetByCode(ctx context.Context, code string) (*models.Company, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *models.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) List(ctx context.Context) ([]models.InvoiceSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.InvoiceSummary), args.Error(1)
}

func (m *MockInvoiceRepository) GetWithCompany(ctx context.Context, id int64) (*models.InvoiceDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InvoiceDetail), args.Error(1)
}

func (m *MockInvoiceRepository) IDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	args := m.Called(ctx, compCode)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockInvoiceRepository) PaymentState(ctx context.Context, id int64) (bool, *time.Time, error) {
	args := m.Called(ctx, id)
	var paidDate *time.Time
	if args.Get(1) != nil {
		paidDate = args.Get(1).(*time.Time)
	}
	return args.Bool(0), paidDate, args.Error(2)
}

func (m *MockInvoiceRepository) Create(ctx context.Context, compCode string, amt float64) (*models.Invoice, error) {
	args := m.Called(ctx, compCode, amt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, id int64, amt float64, paid bool, paidDate *time.Time) (*models.Invoice, error) {
	args := m.Called(ctx, id, amt, paid, paidDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockIndustryRepository struct {
	mock.Mock
}

func (m *MockIndustryRepository) List(ctx context.Context) ([]models.Industry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Industry), args.Error(1)
}

func (m *MockIndustryRepository) GetByCode(ctx context.Context, code string) (*models.Industry, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Industry), args.Error(1)
}

func (m *MockIndustryRepository) Create(ctx context.Context, industry *models.Industry) error {
	args := m.Called(ctx, industry)
	return args.Error(0)
}

func (m *MockIndustryRepository) Associations(ctx context.Context) ([]models.CompanyIndustry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CompanyIndustry), args.Error(1)
}

func (m *MockIndustryRepository) CompanyCodesByIndustry(ctx context.Context, code string) ([]string, error) {
	args := m.Called(ctx, code)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockIndustryRepository) NamesByCompany(ctx context.Context, compCode string) ([]string, error) {
	args := m.Called(ctx, compCode)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockIndustryRepository) Associate(ctx context.Context, compCode, industriesCode string) (*models.CompanyIndustry, error) {
	args := m.Called(ctx, compCode, industriesCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompanyIndustry), args.Error(1)
}

func stringPtr(s string) *string {
	return &s
}
