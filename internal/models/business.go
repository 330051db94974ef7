package models

// Business represents a row in the businesses table.
type Business struct {
	BusinessID   string `json:"businessID"` // Primary Key (UUID)
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
