package models

// Company is a row in the companies table. Code is client-chosen and
// immutable after creation.
type Company struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanySummary is the projection used by company list views.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyDetail is a company with its invoice ids and industry names attached.
type CompanyDetail struct {
	Company
	Invoices   []int64  `json:"invoices"`
	Industries []string `json:"industry"`
}
