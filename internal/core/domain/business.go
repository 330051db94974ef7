package domain

// Business is the tenant boundary. Every core operation takes an explicit
// businessID; there is no ambient "current business" state.
type Business struct {
	BusinessID   string `json:"businessID"` // Primary key (UUID)
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// DefaultAccountSpec describes one account of the default chart seeded at
// business creation.
type DefaultAccountSpec struct {
	Name        string
	AccountType AccountType
}

// DefaultChartOfAccounts is the chart seeded for every new business, all with
// zero balances.
var DefaultChartOfAccounts = []DefaultAccountSpec{
	{Name: "Cash", AccountType: Cash},
	{Name: "Bank", AccountType: Bank},
	{Name: "Accounts Receivable", AccountType: AccountsReceivable},
	{Name: "Accounts Payable", AccountType: AccountsPayable},
	{Name: "Inventory", AccountType: InventoryAsset},
	{Name: "Sales Revenue", AccountType: Revenue},
	{Name: "Operating Expenses", AccountType: Expense},
	{Name: "Cost of Goods Sold", AccountType: Expense},
}
