package models

// Industry is a row in the industries table.
type Industry struct {
	Code         string `json:"code"`
	IndustryName string `json:"industry_name"`
}

// IndustrySummary pairs an industry code with the codes of its associated
// companies, as served by the industry list endpoint.
type IndustrySummary struct {
	Code         string   `json:"code"`
	CompanyCodes []string `json:"companyCodes"`
}

// IndustryDetail is an industry with its associated company codes attached.
type IndustryDetail struct {
	Industry
	Companies []string `json:"companies"`
}

// CompanyIndustry is a row in the companies_industries association table.
type CompanyIndustry struct {
	CompCode       string `json:"comp_code"`
	IndustriesCode string `json:"industries_code"`
}
