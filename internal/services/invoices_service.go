package services

import (
	"context"
	"errors"
	"time"

	"biztime/internal/common"
	"biztime/internal/models"
	"biztime/internal/repositories"

	"github.com/jackc/pgx/v5"
)

type InvoiceService interface {
	List(ctx context.Context) ([]models.InvoiceSummary, error)
	Get(ctx context.Context, id int64) (*models.InvoiceDetail, error)
	Create(ctx context.Context, compCode string, amt float64) (*models.Invoice, error)
	Update(ctx context.Context, id int64, amt float64, paid bool) (*models.Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type invoiceService struct {
	invoices repositories.InvoiceRepository
	now      func() time.Time
}

func NewInvoiceService(invoices repositories.InvoiceRepository) InvoiceService {
	return &invoiceService{
		invoices: invoices,
		now:      time.Now,
	}
}

func (s *invoiceService) List(ctx context.Context) ([]models.InvoiceSummary, error) {
	return s.invoices.List(ctx)
}

func (s *invoiceService) Get(ctx context.Context, id int64) (*models.InvoiceDetail, error) {
	invoice, err := s.invoices.GetWithCompany(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NotFound("Can't find an invoice with an id of %d", id)
	}
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) Create(ctx context.Context, compCode string, amt float64) (*models.Invoice, error) {
	return s.invoices.Create(ctx, compCode, amt)
}

// Update writes amt and paid, recomputing paid_date from the current state.
// The read and write are separate statements; two concurrent updates to the
// same invoice can both observe the old paid_date.
func (s *invoiceService) Update(ctx context.Context, id int64, amt float64, paid bool) (*models.Invoice, error) {
	_, currPaidDate, err := s.invoices.PaymentState(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.NotFound("No such invoice: %d", id)
	}
	if err != nil {
		return nil, err
	}

	paidDate := nextPaidDate(currPaidDate, paid, s.now())
	return s.invoices.Update(ctx, id, amt, paid, paidDate)
}

func (s *invoiceService) Delete(ctx context.Context, id int64) error {
	err := s.invoices.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return common.NotFound("No such invoice with an id of %d", id)
	}
	return err
}

// nextPaidDate is the payment transition: paying an unpaid invoice stamps
// now, un-paying clears the date, and re-paying a paid invoice keeps the
// original date.
func nextPaidDate(current *time.Time, paid bool, now time.Time) *time.Time {
	switch {
	case current == nil && paid:
		return &now
	case !paid:
		return nil
	default:
		return current
	}
}
