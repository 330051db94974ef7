package repositories

// RepositoryProvider bundles all repositories for dependency injection.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	LedgerRepo    LedgerRepositoryFacade
	InventoryRepo InventoryRepositoryFacade
	CashbookRepo  CashbookRepositoryFacade
	DocumentRepo  DocumentRepositoryFacade
	BusinessRepo  BusinessRepositoryFacade
	ProductRepo   ProductReader
}
