package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, accountRepo)
	inventoryRepo := newPgxInventoryRepository(dbPool)
	cashbookRepo := newPgxCashbookRepository(dbPool)
	documentRepo := newPgxDocumentRepository(dbPool, inventoryRepo, ledgerRepo)
	businessRepo := newPgxBusinessRepository(dbPool, accountRepo)
	productRepo := newPgxProductRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		LedgerRepo:    ledgerRepo,
		InventoryRepo: inventoryRepo,
		CashbookRepo:  cashbookRepo,
		DocumentRepo:  documentRepo,
		BusinessRepo:  businessRepo,
		ProductRepo:   productRepo,
	}
}
