package models

import "time"

// Invoice is a row in the invoices table. PaidDate is non-nil iff Paid was
// true at the last write; the invoice service maintains that invariant.
type Invoice struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// InvoiceSummary is the projection used by invoice list views.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceDetail is an invoice with its company row nested instead of the
// bare comp_code.
type InvoiceDetail struct {
	ID       int64      `json:"id"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
	Company  Company    `json:"company"`
}
