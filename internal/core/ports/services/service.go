package services

// ServiceContainer bundles all service facades for dependency injection into
// the HTTP layer.
type ServiceContainer struct {
	Business  BusinessSvcFacade
	Ledger    LedgerSvcFacade
	Posting   PostingSvcFacade
	Inventory InventorySvcFacade
	Cashbook  CashbookSvcFacade
}
