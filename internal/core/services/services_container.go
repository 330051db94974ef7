package services

import (
	portsrepo "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/repositories"
	portssvc "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Business = NewBusinessService(repos.BusinessRepo)
	container.Ledger = NewLedgerService(repos.AccountRepo, repos.LedgerRepo)
	container.Inventory = NewInventoryService(repos.InventoryRepo, repos.ProductRepo)
	container.Cashbook = NewCashbookService(repos.CashbookRepo)
	container.Posting = NewPostingService(
		repos.DocumentRepo,
		repos.AccountRepo,
		repos.LedgerRepo,
		repos.InventoryRepo,
		repos.ProductRepo,
	)

	return container
}
