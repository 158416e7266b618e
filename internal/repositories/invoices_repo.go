package repositories

import (
	"context"
	"time"

	"biztime/internal/models"

	"github.com/jackc/pgx/v5"
)

type InvoiceRepository interface {
	List(ctx context.Context) ([]models.InvoiceSummary, error)
	GetWithCompany(ctx context.Context, id int64) (*models.InvoiceDetail, error)
	IDsByCompany(ctx context.Context, compCode string) ([]int64, error)
	PaymentState(ctx context.Context, id int64) (bool, *time.Time, error)
	Create(ctx context.Context, compCode string, amt float64) (*models.Invoice, error)
	Update(ctx context.Context, id int64, amt float64, paid bool, paidDate *time.Time) (*models.Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type invoiceRepo struct {
	db Database
}

func NewInvoiceRepository(db Database) InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) List(ctx context.Context) ([]models.InvoiceSummary, error) {
	query := `SELECT id, comp_code FROM invoices`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []models.InvoiceSummary{}
	for rows.Next() {
		var invoice models.InvoiceSummary
		if err := rows.Scan(&invoice.ID, &invoice.CompCode); err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepo) GetWithCompany(ctx context.Context, id int64) (*models.InvoiceDetail, error) {
	invoice := &models.InvoiceDetail{}
	query := `
		SELECT invoices.id, invoices.amt, invoices.paid, invoices.add_date, invoices.paid_date,
		       companies.code, companies.name, companies.description
		FROM invoices
		INNER JOIN companies ON invoices.comp_code = companies.code
		WHERE invoices.id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&invoice.ID, &invoice.Amt, &invoice.Paid, &invoice.AddDate, &invoice.PaidDate,
		&invoice.Company.Code, &invoice.Company.Name, &invoice.Company.Description,
	)
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (r *invoiceRepo) IDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	query := `SELECT id FROM invoices WHERE comp_code = $1`
	rows, err := r.db.Query(ctx, query, compCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *invoiceRepo) PaymentState(ctx context.Context, id int64) (bool, *time.Time, error) {
	var paid bool
	var paidDate *time.Time
	query := `SELECT paid, paid_date FROM invoices WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&paid, &paidDate)
	if err != nil {
		return false, nil, err
	}
	return paid, paidDate, nil
}

func (r *invoiceRepo) Create(ctx context.Context, compCode string, amt float64) (*models.Invoice, error) {
	invoice := &models.Invoice{}
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING id, comp_code, amt, paid, add_date, paid_date
	`
	err := r.db.QueryRow(ctx, query, compCode, amt).Scan(
		&invoice.ID, &invoice.CompCode, &invoice.Amt, &invoice.Paid, &invoice.AddDate, &invoice.PaidDate,
	)
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (r *invoiceRepo) Update(ctx context.Context, id int64, amt float64, paid bool, paidDate *time.Time) (*models.Invoice, error) {
	invoice := &models.Invoice{}
	query := `
		UPDATE invoices
		SET amt = $1, paid = $2, paid_date = $3
		WHERE id = $4
		RETURNING id, comp_code, amt, paid, add_date, paid_date
	`
	err := r.db.QueryRow(ctx, query, amt, paid, paidDate, id).Scan(
		&invoice.ID, &invoice.CompCode, &invoice.Amt, &invoice.Paid, &invoice.AddDate, &invoice.PaidDate,
	)
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM invoices WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
