package services

import (
	"context"
	"errors"

	"biztime/internal/common"
	"biztime/internal/models"
	"biztime/internal/repositories"

	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"
)

type CompanyService interface {
	List(ctx context.Context) ([]models.CompanySummary, error)
	Get(ctx context.Context, code string) (*models.CompanyDetail, error)
	Create(ctx context.Context, code, name string, description *string) (*models.Company, error)
	Update(ctx context.Context, code, name string, description *string) (*models.Company, error)
	Delete(ctx context.Context, code string) error
}

type companyService struct {
	companies  repositories.CompanyRepository
	invoices   repositories.InvoiceRepository
	industries repositories.IndustryRepository
}

func NewCompanyService(
	companies repositories.CompanyRepository,
	invoices repositories.InvoiceRepository,
	industries repositories.IndustryRepository,
) CompanyService {
	return &companyService{
		companies:  companies,
		invoices:   invoices,
		industries: industries,
	}
}

func (s *companyService) List(ctx context.Context) ([]models.CompanySummary, error) {
	return s.companies.List(ctx)
}

func (s *companyService) Get(ctx context.Context, code string) (*models.CompanyDetail, error) {
	company, err := s.companies.GetByCode(ctx, code)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NotFound("Can't find company with code of %s", code)
	}
	if err != nil {
		return nil, err
	}

	invoiceIDs, err := s.invoices.IDsByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	industryNames, err := s.industries.NamesByCompany(ctx, code)
	if err != nil {
		return nil, err
	}

	return &models.CompanyDetail{
		Company:    *company,
		Invoices:   invoiceIDs,
		Industries: industryNames,
	}, nil
}

// Create inserts a company. The client-supplied code wins; when it is empty
// the code is derived by slugifying the name.
func (s *companyService) Create(ctx context.Context, code, name string, description *string) (*models.Company, error) {
	if code == "" {
		code = slug.Make(name)
	}
	company := &models.Company{Code: code, Name: name, Description: description}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) Update(ctx context.Context, code, name string, description *string) (*models.Company, error) {
	company := &models.Company{Code: code, Name: name, Description: description}
	err := s.companies.Update(ctx, company)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NotFound("There isn't a company with code of %s", code)
	}
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) Delete(ctx context.Context, code string) error {
	err := s.companies.Delete(ctx, code)
	if errors.Is(err, pgx.ErrNoRows) {
		return common.NotFound("No such company with code of %s", code)
	}
	return err
}
