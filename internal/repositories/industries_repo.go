package repositories

import (
	"context"

	"biztime/internal/models"
)

type IndustryRepository interface {
	List(ctx context.Context) ([]models.Industry, error)
	GetByCode(ctx context.Context, code string) (*models.Industry, error)
	Create(ctx context.Context, industry *models.Industry) error
	Associations(ctx context.Context) ([]models.CompanyIndustry, error)
	CompanyCodesByIndustry(ctx context.Context, code string) ([]string, error)
	NamesByCompany(ctx context.Context, compCode string) ([]string, error)
	Associate(ctx context.Context, compCode, industriesCode string) (*models.CompanyIndustry, error)
}

type industryRepo struct {
	db Database
}

func NewIndustryRepository(db Database) IndustryRepository {
	return &industryRepo{db: db}
}

func (r *industryRepo) List(ctx context.Context) ([]models.Industry, error) {
	query := `SELECT code, industry_name FROM industries`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	industries := []models.Industry{}
	for rows.Next() {
		var industry models.Industry
		if err := rows.Scan(&industry.Code, &industry.IndustryName); err != nil {
			return nil, err
		}
		industries = append(industries, industry)
	}
	return industries, rows.Err()
}

func (r *industryRepo) GetByCode(ctx context.Context, code string) (*models.Industry, error) {
	industry := &models.Industry{}
	query := `SELECT code, industry_name FROM industries WHERE code = $1`
	err := r.db.QueryRow(ctx, query, code).Scan(&industry.Code, &industry.IndustryName)
	if err != nil {
		return nil, err
	}
	return industry, nil
}

func (r *industryRepo) Create(ctx context.Context, industry *models.Industry) error {
	query := `
		INSERT INTO industries (code, industry_name)
		VALUES ($1, $2)
	`
	_, err := r.db.Exec(ctx, query, industry.Code, industry.IndustryName)
	return err
}

func (r *industryRepo) Associations(ctx context.Context) ([]models.CompanyIndustry, error) {
	query := `SELECT comp_code, industries_code FROM companies_industries`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	associations := []models.CompanyIndustry{}
	for rows.Next() {
		var association models.CompanyIndustry
		if err := rows.Scan(&association.CompCode, &association.IndustriesCode); err != nil {
			return nil, err
		}
		associations = append(associations, association)
	}
	return associations, rows.Err()
}

// CompanyCodesByIndustry left-joins through the association table so an
// industry with no companies yields an empty slice rather than no rows.
func (r *industryRepo) CompanyCodesByIndustry(ctx context.Context, code string) ([]string, error) {
	query := `
		SELECT companies.code
		FROM industries
		LEFT JOIN companies_industries ON industries.code = companies_industries.industries_code
		LEFT JOIN companies ON companies_industries.comp_code = companies.code
		WHERE industries.code = $1
	`
	return r.scanCodes(ctx, query, code)
}

func (r *industryRepo) NamesByCompany(ctx context.Context, compCode string) ([]string, error) {
	query := `
		SELECT industries.industry_name
		FROM companies
		LEFT JOIN companies_industries ON companies.code = companies_industries.comp_code
		LEFT JOIN industries ON companies_industries.industries_code = industries.code
		WHERE companies.code = $1
	`
	return r.scanCodes(ctx, query, compCode)
}

// scanCodes collects the non-null values of a single-column query. The left
// joins above produce one all-null row when there are no associations.
func (r *industryRepo) scanCodes(ctx context.Context, query string, arg any) ([]string, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := []string{}
	for rows.Next() {
		var code *string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		if code != nil {
			codes = append(codes, *code)
		}
	}
	return codes, rows.Err()
}

func (r *industryRepo) Associate(ctx context.Context, compCode, industriesCode string) (*models.CompanyIndustry, error) {
	association := &models.CompanyIndustry{}
	query := `
		INSERT INTO companies_industries (comp_code, industries_code)
		VALUES ($1, $2)
		RETURNING comp_code, industries_code
	`
	err := r.db.QueryRow(ctx, query, compCode, industriesCode).Scan(&association.CompCode, &association.IndustriesCode)
	if err != nil {
		return nil, err
	}
	return association, nil
}
