package repositories

import (
	"context"

	"biztime/internal/models"

	"github.com/jackc/pgx/v5"
)

type CompanyRepository interface {
	List(ctx context.Context) ([]models.CompanySummary, error)
	GetByCode(ctx context.Context, code string) (*models.Company, error)
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, code string) error
}

type companyRepo struct {
	db Database
}

func NewCompanyRepository(db Database) CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) List(ctx context.Context) ([]models.CompanySummary, error) {
	query := `SELECT code, name FROM companies`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []models.CompanySummary{}
	for rows.Next() {
		var company models.CompanySummary
		if err := rows.Scan(&company.Code, &company.Name); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func (r *companyRepo) GetByCode(ctx context.Context, code string) (*models.Company, error) {
	company := &models.Company{}
	query := `SELECT code, name, description FROM companies WHERE code = $1`
	err := r.db.QueryRow(ctx, query, code).Scan(&company.Code, &company.Name, &company.Description)
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (r *companyRepo) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, company.Code, company.Name, company.Description)
	return err
}

func (r *companyRepo) Update(ctx context.Context, company *models.Company) error {
	query := `
		UPDATE companies
		SET name = $1, description = $2
		WHERE code = $3
	`
	tag, err := r.db.Exec(ctx, query, company.Name, company.Description, company.Code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, code string) error {
	query := `DELETE FROM companies WHERE code = $1`
	tag, err := r.db.Exec(ctx, query, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
