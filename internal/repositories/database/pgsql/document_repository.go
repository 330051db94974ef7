package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/apperrors"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	portsrepo "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/repositories"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/models"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/utils/mapping"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/utils/pagination"
)

const documentColumns = `document_id, business_id, kind, party_id, subtotal, discount_total, tax_total, total_amount, paid_amount, balance_amount, status, created_at, created_by, last_updated_at, last_updated_by`

const documentLineColumns = `line_id, document_id, product_id, quantity, unit_price, tax_rate, discount_rate, line_total`

// PgxDocumentRepository owns the atomic posting units. It composes the
// inventory and ledger repositories' in-transaction helpers so that document
// rows, stock effects and ledger postings commit together or not at all.
type PgxDocumentRepository struct {
	BaseRepository
	inventoryRepo portsrepo.InventoryTransactionSupport
	ledgerRepo    *PgxLedgerRepository
}

// newPgxDocumentRepository creates a new repository for documents.
func newPgxDocumentRepository(pool *pgxpool.Pool, inventoryRepo portsrepo.InventoryTransactionSupport, ledgerRepo *PgxLedgerRepository) *PgxDocumentRepository {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		inventoryRepo:  inventoryRepo,
		ledgerRepo:     ledgerRepo,
	}
}

// Ensure PgxDocumentRepository implements portsrepo.DocumentRepositoryWithTx
var _ portsrepo.DocumentRepositoryWithTx = (*PgxDocumentRepository)(nil)

func scanDocument(row pgx.Row) (models.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID,
		&m.BusinessID,
		&m.Kind,
		&m.PartyID,
		&m.Subtotal,
		&m.DiscountTotal,
		&m.TaxTotal,
		&m.TotalAmount,
		&m.PaidAmount,
		&m.BalanceAmount,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// applyStockEffects locks the touched inventory rows in product order, then
// applies every effect sequentially. Later effects for the same product see
// the result of earlier ones, which is what the line-replacement flow relies on.
func (r *PgxDocumentRepository) applyStockEffects(ctx context.Context, tx pgx.Tx, businessID string, effects []portsrepo.StockEffect, userID string, now models.AuditFields) error {
	if len(effects) == 0 {
		return nil
	}

	productIDs := make([]string, 0, len(effects))
	seen := make(map[string]bool, len(effects))
	for _, effect := range effects {
		if !seen[effect.ProductID] {
			seen[effect.ProductID] = true
			productIDs = append(productIDs, effect.ProductID)
		}
	}
	if _, err := r.inventoryRepo.FindInventoriesForUpdate(ctx, tx, businessID, productIDs); err != nil {
		return err
	}

	for _, effect := range effects {
		if err := r.inventoryRepo.ApplyStockEffectInTx(ctx, tx, businessID, effect, userID, now.LastUpdatedAt); err != nil {
			return err
		}
	}
	return nil
}

// insertLines batch-inserts document lines inside the transaction.
func (r *PgxDocumentRepository) insertLines(ctx context.Context, tx pgx.Tx, lines []domain.DocumentLine) error {
	if len(lines) == 0 {
		return nil
	}
	query := `
		INSERT INTO document_lines (` + documentLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		m := mapping.ToModelDocumentLine(line)
		batch.Queue(query,
			m.LineID,
			m.DocumentID,
			m.ProductID,
			m.Quantity,
			m.UnitPrice,
			m.TaxRate,
			m.DiscountRate,
			m.LineTotal,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert document lines: %w", err)
	}
	return nil
}

// SavePosting inserts the document and its lines, applies the stock effects
// under inventory row locks, and posts the ledger transaction. One atomic unit.
func (r *PgxDocumentRepository) SavePosting(ctx context.Context, doc domain.Document, effects []portsrepo.StockEffect, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDocument(doc)
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, query,
		m.DocumentID,
		m.BusinessID,
		m.Kind,
		m.PartyID,
		m.Subtotal,
		m.DiscountTotal,
		m.TaxTotal,
		m.TotalAmount,
		m.PaidAmount,
		m.BalanceAmount,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert document %s: %w", m.DocumentID, err)
	}

	if err := r.insertLines(ctx, tx, doc.Lines); err != nil {
		return err
	}
	if err := r.applyStockEffects(ctx, tx, doc.BusinessID, effects, doc.CreatedBy, m.AuditFields); err != nil {
		return err
	}
	if err := r.ledgerRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// lockDocumentInTx locks the document row and returns its current header.
// Must be called within a transaction.
func (r *PgxDocumentRepository) lockDocumentInTx(ctx context.Context, tx pgx.Tx, businessID, documentID string) (models.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE document_id = $1 AND business_id = $2
		FOR UPDATE;
	`
	m, err := scanDocument(tx.QueryRow(ctx, query, documentID, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Document{}, apperrors.ErrNotFound
		}
		return models.Document{}, fmt.Errorf("failed to lock document %s: %w", documentID, err)
	}
	return m, nil
}

// guardDocumentState re-validates the locked row against the snapshot the
// caller computed from. The service validates against a pool read; a commit
// that lands in between shows up here as a changed status or paid amount and
// must not be overwritten.
func guardDocumentState(current models.Document, priorPaid decimal.Decimal) error {
	if current.Status != models.DocumentStatus(domain.DocPending) {
		return fmt.Errorf("%w: document %s is %s", apperrors.ErrConflict, current.DocumentID, current.Status)
	}
	if !current.PaidAmount.Equal(priorPaid) {
		return fmt.Errorf("%w: document %s paid amount changed concurrently", apperrors.ErrConflict, current.DocumentID)
	}
	return nil
}

// updateHeaderInTx persists the mutable document header fields.
func (r *PgxDocumentRepository) updateHeaderInTx(ctx context.Context, tx pgx.Tx, doc domain.Document) error {
	m := mapping.ToModelDocument(doc)
	query := `
		UPDATE documents
		SET subtotal = $3, discount_total = $4, tax_total = $5, total_amount = $6,
		    paid_amount = $7, balance_amount = $8, status = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE document_id = $1 AND business_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.DocumentID,
		m.BusinessID,
		m.Subtotal,
		m.DiscountTotal,
		m.TaxTotal,
		m.TotalAmount,
		m.PaidAmount,
		m.BalanceAmount,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update document %s: %w", m.DocumentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyPayment updates the document header and posts the settlement
// transaction in the same unit.
func (r *PgxDocumentRepository) ApplyPayment(ctx context.Context, doc domain.Document, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	current, err := r.lockDocumentInTx(ctx, tx, doc.BusinessID, doc.DocumentID)
	if err != nil {
		return err
	}
	if err := guardDocumentState(current, doc.PaidAmount.Sub(txn.Amount)); err != nil {
		return err
	}

	if err := r.updateHeaderInTx(ctx, tx, doc); err != nil {
		return err
	}
	if err := r.ledgerRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// CancelPosting flips the status, applies the compensating stock effects and
// posts the reversal transaction when one is supplied.
func (r *PgxDocumentRepository) CancelPosting(ctx context.Context, doc domain.Document, effects []portsrepo.StockEffect, txn *domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	current, err := r.lockDocumentInTx(ctx, tx, doc.BusinessID, doc.DocumentID)
	if err != nil {
		return err
	}
	if err := guardDocumentState(current, doc.PaidAmount); err != nil {
		return err
	}

	if err := r.updateHeaderInTx(ctx, tx, doc); err != nil {
		return err
	}
	m := mapping.ToModelDocument(doc)
	if err := r.applyStockEffects(ctx, tx, doc.BusinessID, effects, doc.LastUpdatedBy, m.AuditFields); err != nil {
		return err
	}
	if txn != nil {
		if err := r.ledgerRepo.SaveTransactionInTx(ctx, tx, *txn); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// ReplaceLines rewrites the document's lines and totals, applies the
// sequential stock effects and posts the accompanying transactions, all in one
// atomic unit.
func (r *PgxDocumentRepository) ReplaceLines(ctx context.Context, doc domain.Document, effects []portsrepo.StockEffect, txns []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	current, err := r.lockDocumentInTx(ctx, tx, doc.BusinessID, doc.DocumentID)
	if err != nil {
		return err
	}
	if err := guardDocumentState(current, doc.PaidAmount); err != nil {
		return err
	}

	if err := r.updateHeaderInTx(ctx, tx, doc); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM document_lines WHERE document_id = $1;`, doc.DocumentID); err != nil {
		return fmt.Errorf("failed to delete lines of document %s: %w", doc.DocumentID, err)
	}
	if err := r.insertLines(ctx, tx, doc.Lines); err != nil {
		return err
	}

	m := mapping.ToModelDocument(doc)
	if err := r.applyStockEffects(ctx, tx, doc.BusinessID, effects, doc.LastUpdatedBy, m.AuditFields); err != nil {
		return err
	}
	for _, txn := range txns {
		if err := r.ledgerRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// FindDocumentByID retrieves a document header with its lines.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, businessID, documentID string) (*domain.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE document_id = $1 AND business_id = $2;
	`
	m, err := scanDocument(r.Pool.QueryRow(ctx, query, documentID, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document %s: %w", documentID, err)
	}

	linesQuery := `
		SELECT ` + documentLineColumns + `
		FROM document_lines
		WHERE document_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, linesQuery, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of document %s: %w", documentID, err)
	}
	defer rows.Close()

	modelLines := []models.DocumentLine{}
	for rows.Next() {
		var line models.DocumentLine
		err := rows.Scan(
			&line.LineID,
			&line.DocumentID,
			&line.ProductID,
			&line.Quantity,
			&line.UnitPrice,
			&line.TaxRate,
			&line.DiscountRate,
			&line.LineTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document line row: %w", err)
		}
		modelLines = append(modelLines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document line rows: %w", err)
	}

	doc := mapping.ToDomainDocument(m)
	doc.Lines = mapping.ToDomainDocumentLineSlice(modelLines)
	return &doc, nil
}

// ListDocuments retrieves a paginated list of document headers, newest first.
func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, businessID string, kind *domain.DocumentKind, status *domain.DocumentStatus, limit int, nextToken *string) ([]domain.Document, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE business_id = $1
	`
	args := []interface{}{businessID}

	if kind != nil {
		query += ` AND kind = $` + strconv.Itoa(len(args)+1)
		args = append(args, string(*kind))
	}
	if status != nil {
		query += ` AND status = $` + strconv.Itoa(len(args)+1)
		args = append(args, string(*status))
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, decodeErr := pagination.DecodeDateBasedToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND created_at < $` + strconv.Itoa(len(args)+1)
		args = append(args, lastCreatedAt)
	}

	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query documents for business %s: %w", businessID, err)
	}
	defer rows.Close()

	modelDocs := []models.Document{}
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		modelDocs = append(modelDocs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	var newNextToken *string
	if len(modelDocs) > limit {
		token := pagination.EncodeDateBasedToken(modelDocs[limit-1].CreatedAt)
		newNextToken = &token
		modelDocs = modelDocs[:limit]
	}

	docs := make([]domain.Document, len(modelDocs))
	for i, m := range modelDocs {
		docs[i] = mapping.ToDomainDocument(m)
	}
	return docs, newNextToken, nil
}
