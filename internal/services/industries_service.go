package services

import (
	"context"
	"errors"

	"biztime/internal/common"
	"biztime/internal/models"
	"biztime/internal/repositories"

	"github.com/jackc/pgx/v5"
)

type IndustryService interface {
	List(ctx context.Context) ([]models.IndustrySummary, error)
	Get(ctx context.Context, code string) (*models.IndustryDetail, error)
	Create(ctx context.Context, code, industryName string) (*models.Industry, error)
	Associate(ctx context.Context, industryCode, companyCode string) (*models.CompanyIndustry, error)
}

type industryService struct {
	industries repositories.IndustryRepository
	companies  repositories.CompanyRepository
}

func NewIndustryService(
	industries repositories.IndustryRepository,
	companies repositories.CompanyRepository,
) IndustryService {
	return &industryService{
		industries: industries,
		companies:  companies,
	}
}

func (s *industryService) List(ctx context.Context) ([]models.IndustrySummary, error) {
	industries, err := s.industries.List(ctx)
	if err != nil {
		return nil, err
	}
	associations, err := s.industries.Associations(ctx)
	if err != nil {
		return nil, err
	}
	return groupCompanyCodes(industries, associations), nil
}

func (s *industryService) Get(ctx context.Context, code string) (*models.IndustryDetail, error) {
	industry, err := s.industries.GetByCode(ctx, code)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NotFound("Can't find industry with code of %s", code)
	}
	if err != nil {
		return nil, err
	}

	companies, err := s.industries.CompanyCodesByIndustry(ctx, code)
	if err != nil {
		return nil, err
	}

	return &models.IndustryDetail{
		Industry:  *industry,
		Companies: companies,
	}, nil
}

func (s *industryService) Create(ctx context.Context, code, industryName string) (*models.Industry, error) {
	industry := &models.Industry{Code: code, IndustryName: industryName}
	if err := s.industries.Create(ctx, industry); err != nil {
		return nil, err
	}
	return industry, nil
}

// Associate checks both sides exist before inserting so a missing industry or
// company fails 404 instead of surfacing as a foreign-key violation.
func (s *industryService) Associate(ctx context.Context, industryCode, companyCode string) (*models.CompanyIndustry, error) {
	if _, err := s.industries.GetByCode(ctx, industryCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFound("Industry not found")
		}
		return nil, err
	}
	if _, err := s.companies.GetByCode(ctx, companyCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFound("Company not found")
		}
		return nil, err
	}
	return s.industries.Associate(ctx, companyCode, industryCode)
}

// groupCompanyCodes groups association rows by industry code. Industries with
// no associations get an empty slice.
func groupCompanyCodes(industries []models.Industry, associations []models.CompanyIndustry) []models.IndustrySummary {
	byIndustry := make(map[string][]string, len(industries))
	for _, association := range associations {
		byIndustry[association.IndustriesCode] = append(byIndustry[association.IndustriesCode], association.CompCode)
	}

	summaries := make([]models.IndustrySummary, 0, len(industries))
	for _, industry := range industries {
		codes := byIndustry[industry.Code]
		if codes == nil {
			codes = []string{}
		}
		summaries = append(summaries, models.IndustrySummary{
			Code:         industry.Code,
			CompanyCodes: codes,
		})
	}
	return summaries
}
