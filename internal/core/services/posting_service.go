package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/apperrors"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	portsrepo "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/repositories"
	portssvc "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/utils/accounting"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrDocumentClosed   = errors.New("document is completed or cancelled")
	ErrAlreadyPaid      = errors.New("document has recorded payments")
	ErrOverPayment      = errors.New("payment exceeds open balance")
	ErrProductNotFound  = errors.New("product not found")
	ErrProductInactive  = errors.New("product is inactive")
	ErrZeroTotal        = errors.New("document total must be positive")
	ErrPostingMissing   = errors.New("document has no ledger posting")
)

// postingService turns business documents into atomic inventory and ledger
// effects, and exactly undoes them on cancellation.
type postingService struct {
	BaseService
	docRepo       portsrepo.DocumentRepositoryFacade
	accountRepo   portsrepo.AccountRepositoryFacade
	ledgerRepo    portsrepo.LedgerRepositoryFacade
	inventoryRepo portsrepo.InventoryRepositoryFacade
	productRepo   portsrepo.ProductReader
}

// NewPostingService creates a new PostingService.
func NewPostingService(
	docRepo portsrepo.DocumentRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	inventoryRepo portsrepo.InventoryRepositoryFacade,
	productRepo portsrepo.ProductReader,
) portssvc.PostingSvcFacade {
	return &postingService{
		docRepo:       docRepo,
		accountRepo:   accountRepo,
		ledgerRepo:    ledgerRepo,
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// kindToTxnType maps a document kind to the transaction type its posting records.
func kindToTxnType(kind domain.DocumentKind) domain.TransactionType {
	switch kind {
	case domain.DocSale:
		return domain.TxnSale
	case domain.DocPurchase:
		return domain.TxnPurchase
	default:
		return domain.TxnExpense
	}
}

// buildLines validates the requested lines and computes their rounded totals.
func (s *postingService) buildLines(documentID string, reqs []dto.DocumentLineRequest) ([]domain.DocumentLine, error) {
	lines := make([]domain.DocumentLine, len(reqs))
	for i, req := range reqs {
		if req.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: line %d quantity must be positive", apperrors.ErrValidation, i)
		}
		if req.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: line %d unit price must not be negative", apperrors.ErrValidation, i)
		}
		if req.TaxRate.IsNegative() || req.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("%w: line %d tax rate out of range", apperrors.ErrValidation, i)
		}
		if req.DiscountRate.IsNegative() || req.DiscountRate.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("%w: line %d discount rate out of range", apperrors.ErrValidation, i)
		}

		line := domain.DocumentLine{
			LineID:       uuid.NewString(),
			DocumentID:   documentID,
			ProductID:    req.ProductID,
			Quantity:     req.Quantity,
			UnitPrice:    req.UnitPrice,
			TaxRate:      req.TaxRate,
			DiscountRate: req.DiscountRate,
		}
		line.LineTotal = accounting.CalculateLineAmounts(line).Total
		lines[i] = line
	}
	return lines, nil
}

// resolveProducts loads and validates every product referenced by the lines.
func (s *postingService) resolveProducts(ctx context.Context, businessID string, lines []domain.DocumentLine) (map[string]domain.Product, error) {
	productIDs := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			productIDs = append(productIDs, line.ProductID)
		}
	}

	products, err := s.productRepo.FindProductsByIDs(ctx, businessID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	for _, productID := range productIDs {
		product, ok := products[productID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		if !product.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrProductInactive, productID)
		}
	}
	return products, nil
}

// resolveAccounts loads and validates both posting accounts.
func (s *postingService) resolveAccounts(ctx context.Context, businessID, debitAccountID, creditAccountID string) error {
	if debitAccountID == creditAccountID {
		return fmt.Errorf("%w: %s", ErrSameAccount, debitAccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, businessID, []string{debitAccountID, creditAccountID})
	if err != nil {
		return fmt.Errorf("failed to load posting accounts: %w", err)
	}
	for _, accountID := range []string{debitAccountID, creditAccountID} {
		account, ok := accounts[accountID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
		}
		if !account.IsActive {
			return fmt.Errorf("%w: %s", ErrAccountInactive, accountID)
		}
	}
	return nil
}

// postingEffects builds the stock effects of posting a document. SALE lines
// consume stock, PURCHASE lines receive it, EXPENSE documents have none.
// Untracked products are skipped entirely.
func postingEffects(doc domain.Document, lines []domain.DocumentLine, products map[string]domain.Product, userID string, now time.Time) []portsrepo.StockEffect {
	if doc.Kind == domain.DocExpense {
		return nil
	}

	effects := make([]portsrepo.StockEffect, 0, len(lines))
	for _, line := range lines {
		product := products[line.ProductID]
		if !product.TrackInventory {
			continue
		}

		effect := portsrepo.StockEffect{
			ProductID: line.ProductID,
			Movement: domain.StockMovement{
				MovementID: uuid.NewString(),
				BusinessID: doc.BusinessID,
				ProductID:  line.ProductID,
				Quantity:   line.Quantity,
				Reference:  doc.DocumentID,
				CreatedAt:  now,
				CreatedBy:  userID,
			},
		}
		if doc.Kind == domain.DocSale {
			effect.QuantityDelta = line.Quantity.Neg()
			effect.RequireStock = !product.AllowNegative
			effect.Movement.Type = domain.MovementOut
		} else {
			effect.QuantityDelta = line.Quantity
			effect.Movement.Type = domain.MovementIn
		}
		effects = append(effects, effect)
	}
	return effects
}

// reversalEffects builds the compensating stock effects for a posted document:
// one movement per original tracked line, opposite direction, referencing the
// document. Original movements stay untouched.
func reversalEffects(doc domain.Document, products map[string]domain.Product, userID string, now time.Time) []portsrepo.StockEffect {
	if doc.Kind == domain.DocExpense {
		return nil
	}

	effects := make([]portsrepo.StockEffect, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		product := products[line.ProductID]
		if !product.TrackInventory {
			continue
		}

		effect := portsrepo.StockEffect{
			ProductID: line.ProductID,
			Movement: domain.StockMovement{
				MovementID: uuid.NewString(),
				BusinessID: doc.BusinessID,
				ProductID:  line.ProductID,
				Quantity:   line.Quantity,
				Reference:  doc.DocumentID,
				Reason:     "document reversal",
				CreatedAt:  now,
				CreatedBy:  userID,
			},
		}
		if doc.Kind == domain.DocSale {
			effect.QuantityDelta = line.Quantity
			effect.Movement.Type = domain.MovementIn
		} else {
			effect.QuantityDelta = line.Quantity.Neg()
			effect.Movement.Type = domain.MovementOut
		}
		effects = append(effects, effect)
	}
	return effects
}

// preCheckStock fast-fails a posting whose stock-requiring effects cannot be
// absorbed by the current snapshot. The authoritative check happens again under
// row locks inside the atomic unit; this read only saves doomed transactions.
func (s *postingService) preCheckStock(ctx context.Context, businessID string, effects []portsrepo.StockEffect) error {
	deltas := make(map[string]decimal.Decimal)
	required := make(map[string]bool)
	productIDs := make([]string, 0, len(effects))
	for _, effect := range effects {
		if _, ok := deltas[effect.ProductID]; !ok {
			productIDs = append(productIDs, effect.ProductID)
		}
		deltas[effect.ProductID] = deltas[effect.ProductID].Add(effect.QuantityDelta)
		if effect.RequireStock {
			required[effect.ProductID] = true
		}
	}
	if len(required) == 0 {
		return nil
	}

	inventories, err := s.inventoryRepo.FindInventoriesByProductIDs(ctx, businessID, productIDs)
	if err != nil {
		return fmt.Errorf("failed to load inventory snapshot: %w", err)
	}
	for productID := range required {
		available := decimal.Zero
		if inv, ok := inventories[productID]; ok {
			available = inv.AvailableQty
		}
		if available.Add(deltas[productID]).IsNegative() {
			return fmt.Errorf("%w: product %s has %s available", apperrors.ErrInsufficientStock, productID, available.String())
		}
	}
	return nil
}

// findPostingTransaction locates the posting transaction that currently backs
// a document. Item updates repost the document, so earlier postings of the same
// type are superseded and the newest one is the reversal target.
func (s *postingService) findPostingTransaction(ctx context.Context, businessID string, doc *domain.Document) (*domain.Transaction, error) {
	txns, err := s.ledgerRepo.FindTransactionsByDocumentID(ctx, businessID, doc.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load document postings: %w", err)
	}
	want := kindToTxnType(doc.Kind)
	var latest *domain.Transaction
	for i := range txns {
		if txns[i].TransactionType != want {
			continue
		}
		if latest == nil || txns[i].CreatedAt.After(latest.CreatedAt) {
			latest = &txns[i]
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("%w: %s", ErrPostingMissing, doc.DocumentID)
	}
	return latest, nil
}

// PostDocument computes totals, validates stock and writes the document, its
// inventory effects and its ledger posting in one atomic unit.
// Implements portssvc.PostingSvcFacade
func (s *postingService) PostDocument(ctx context.Context, businessID string, req dto.PostDocumentRequest, userID string) (*domain.Document, error) {
	now := time.Now().UTC()
	documentID := uuid.NewString()

	lines, err := s.buildLines(documentID, req.Lines)
	if err != nil {
		return nil, err
	}

	if err := s.resolveAccounts(ctx, businessID, req.DebitAccountID, req.CreditAccountID); err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(ctx, businessID, lines)
	if err != nil {
		return nil, err
	}

	totals := accounting.CalculateDocumentTotals(lines)
	if totals.Total.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: got %s", ErrZeroTotal, totals.Total.String())
	}

	doc := domain.Document{
		DocumentID:    documentID,
		BusinessID:    businessID,
		Kind:          domain.DocumentKind(req.Kind),
		PartyID:       req.PartyID,
		Subtotal:      totals.Subtotal,
		DiscountTotal: totals.Discount,
		TaxTotal:      totals.Tax,
		TotalAmount:   totals.Total,
		PaidAmount:    decimal.Zero,
		BalanceAmount: totals.Total,
		Status:        domain.DocPending,
		Lines:         lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	effects := postingEffects(doc, lines, products, userID, now)
	if err := s.preCheckStock(ctx, businessID, effects); err != nil {
		return nil, err
	}

	transactionDate := now
	if req.Date != nil {
		transactionDate = req.Date.UTC()
	}
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("%s %s", doc.Kind, documentID)
	}
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		BusinessID:      businessID,
		Description:     description,
		Amount:          totals.Total,
		TransactionType: kindToTxnType(doc.Kind),
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		DocumentID:      &documentID,
		PartyID:         req.PartyID,
		TransactionDate: transactionDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.docRepo.SavePosting(ctx, doc, effects, txn); err != nil {
		s.LogError(ctx, err, "Failed to post document", slog.String("business_id", businessID), slog.String("kind", string(doc.Kind)))
		return nil, err
	}

	s.LogInfo(ctx, "Document posted",
		slog.String("document_id", documentID),
		slog.String("business_id", businessID),
		slog.String("kind", string(doc.Kind)),
		slog.String("total", totals.Total.String()),
	)
	return &doc, nil
}

// RecordPayment settles part or all of a document's open balance and posts the
// corresponding settlement transaction in the same atomic unit.
func (s *postingService) RecordPayment(ctx context.Context, businessID, documentID string, req dto.RecordPaymentRequest, userID string) (*domain.Document, error) {
	doc, err := s.getDocument(ctx, businessID, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status == domain.DocCancelled {
		return nil, fmt.Errorf("%w: %s is %s", ErrDocumentClosed, documentID, doc.Status)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if req.Amount.GreaterThan(doc.BalanceAmount) {
		return nil, fmt.Errorf("%w: %s exceeds open balance %s", ErrOverPayment, req.Amount.String(), doc.BalanceAmount.String())
	}

	settlementType := domain.Cash
	if domain.PaymentMethod(req.Method) == domain.PayBank {
		settlementType = domain.Bank
	}
	settlementAccount, err := s.accountRepo.FindAccountByType(ctx, businessID, settlementType)
	if err != nil {
		return nil, fmt.Errorf("settlement account: %w", err)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		BusinessID:      businessID,
		Amount:          req.Amount,
		DocumentID:      &doc.DocumentID,
		PartyID:         doc.PartyID,
		TransactionDate: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if doc.Kind == domain.DocSale {
		// Money comes in: cash/bank up, receivable down.
		receivable, err := s.accountRepo.FindAccountByType(ctx, businessID, domain.AccountsReceivable)
		if err != nil {
			return nil, fmt.Errorf("receivable account: %w", err)
		}
		txn.TransactionType = domain.TxnReceipt
		txn.DebitAccountID = settlementAccount.AccountID
		txn.CreditAccountID = receivable.AccountID
		txn.Description = fmt.Sprintf("Receipt against %s", documentID)
	} else {
		// Money goes out: payable down, cash/bank down.
		payable, err := s.accountRepo.FindAccountByType(ctx, businessID, domain.AccountsPayable)
		if err != nil {
			return nil, fmt.Errorf("payable account: %w", err)
		}
		txn.TransactionType = domain.TxnPayment
		txn.DebitAccountID = payable.AccountID
		txn.CreditAccountID = settlementAccount.AccountID
		txn.Description = fmt.Sprintf("Payment against %s", documentID)
	}

	updated := *doc
	updated.PaidAmount = doc.PaidAmount.Add(req.Amount)
	updated.BalanceAmount = doc.BalanceAmount.Sub(req.Amount)
	if accounting.IsSettled(updated.BalanceAmount) {
		updated.Status = domain.DocCompleted
	}
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	if err := s.docRepo.ApplyPayment(ctx, updated, txn); err != nil {
		s.LogError(ctx, err, "Failed to record payment", slog.String("document_id", documentID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("document_id", documentID),
		slog.String("amount", req.Amount.String()),
		slog.String("status", string(updated.Status)),
	)
	return &updated, nil
}

// CancelDocument reverses a pending, unpaid document: compensating stock
// movements restore quantities, a mirrored ledger transaction undoes the
// posting, and the status flips to CANCELLED. All in one atomic unit.
func (s *postingService) CancelDocument(ctx context.Context, businessID, documentID, userID string) (*domain.Document, error) {
	doc, err := s.getDocument(ctx, businessID, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status != domain.DocPending {
		return nil, fmt.Errorf("%w: %s is %s", ErrDocumentClosed, documentID, doc.Status)
	}
	if doc.PaidAmount.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s has paid %s", ErrAlreadyPaid, documentID, doc.PaidAmount.String())
	}

	products, err := s.resolveCancelProducts(ctx, businessID, doc)
	if err != nil {
		return nil, err
	}

	original, err := s.findPostingTransaction(ctx, businessID, doc)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	effects := reversalEffects(*doc, products, userID, now)

	// Mirror the original posting: swapped sides, same amount.
	reversal := domain.Transaction{
		TransactionID:   uuid.NewString(),
		BusinessID:      businessID,
		Description:     fmt.Sprintf("Reversal of %s", original.Description),
		Amount:          original.Amount,
		TransactionType: domain.TxnRefund,
		DebitAccountID:  original.CreditAccountID,
		CreditAccountID: original.DebitAccountID,
		DocumentID:      &doc.DocumentID,
		PartyID:         doc.PartyID,
		TransactionDate: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	updated := *doc
	updated.Status = domain.DocCancelled
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	if err := s.docRepo.CancelPosting(ctx, updated, effects, &reversal); err != nil {
		s.LogError(ctx, err, "Failed to cancel document", slog.String("document_id", documentID))
		return nil, err
	}

	s.LogInfo(ctx, "Document cancelled", slog.String("document_id", documentID), slog.String("business_id", businessID))
	return &updated, nil
}

// resolveCancelProducts loads products for a stored document's lines. Inactive
// products do not block a reversal.
func (s *postingService) resolveCancelProducts(ctx context.Context, businessID string, doc *domain.Document) (map[string]domain.Product, error) {
	productIDs := make([]string, 0, len(doc.Lines))
	seen := make(map[string]bool, len(doc.Lines))
	for _, line := range doc.Lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			productIDs = append(productIDs, line.ProductID)
		}
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, businessID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

// UpdateDocumentItems replaces a pending, unpaid document's lines. The old
// lines' inventory effect is reversed, the new lines are validated against the
// reverted quantities, and the ledger is adjusted with a reversal plus a fresh
// posting, all inside one atomic unit.
func (s *postingService) UpdateDocumentItems(ctx context.Context, businessID, documentID string, req dto.UpdateDocumentItemsRequest, userID string) (*domain.Document, error) {
	doc, err := s.getDocument(ctx, businessID, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status != domain.DocPending {
		return nil, fmt.Errorf("%w: %s is %s", ErrDocumentClosed, documentID, doc.Status)
	}
	if doc.PaidAmount.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s has paid %s", ErrAlreadyPaid, documentID, doc.PaidAmount.String())
	}

	newLines, err := s.buildLines(documentID, req.Lines)
	if err != nil {
		return nil, err
	}
	newProducts, err := s.resolveProducts(ctx, businessID, newLines)
	if err != nil {
		return nil, err
	}
	oldProducts, err := s.resolveCancelProducts(ctx, businessID, doc)
	if err != nil {
		return nil, err
	}

	totals := accounting.CalculateDocumentTotals(newLines)
	if totals.Total.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: got %s", ErrZeroTotal, totals.Total.String())
	}

	original, err := s.findPostingTransaction(ctx, businessID, doc)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	updated := *doc
	updated.Subtotal = totals.Subtotal
	updated.DiscountTotal = totals.Discount
	updated.TaxTotal = totals.Tax
	updated.TotalAmount = totals.Total
	updated.BalanceAmount = totals.Total.Sub(doc.PaidAmount)
	updated.Lines = newLines
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	// Reverse the old lines first, then apply the new ones. The repo applies
	// the effects in order under one set of locks, so the new-line stock check
	// sees the reverted quantities.
	effects := reversalEffects(*doc, oldProducts, userID, now)
	effects = append(effects, postingEffects(updated, newLines, newProducts, userID, now)...)
	if err := s.preCheckStock(ctx, businessID, effects); err != nil {
		return nil, err
	}

	baseAudit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	reversal := domain.Transaction{
		TransactionID:   uuid.NewString(),
		BusinessID:      businessID,
		Description:     fmt.Sprintf("Reversal of %s", original.Description),
		Amount:          original.Amount,
		TransactionType: domain.TxnRefund,
		DebitAccountID:  original.CreditAccountID,
		CreditAccountID: original.DebitAccountID,
		DocumentID:      &doc.DocumentID,
		PartyID:         doc.PartyID,
		TransactionDate: now,
		AuditFields:     baseAudit,
	}
	repost := domain.Transaction{
		TransactionID:   uuid.NewString(),
		BusinessID:      businessID,
		Description:     original.Description,
		Amount:          totals.Total,
		TransactionType: original.TransactionType,
		DebitAccountID:  original.DebitAccountID,
		CreditAccountID: original.CreditAccountID,
		DocumentID:      &doc.DocumentID,
		PartyID:         doc.PartyID,
		TransactionDate: now,
		AuditFields:     baseAudit,
	}

	if err := s.docRepo.ReplaceLines(ctx, updated, effects, []domain.Transaction{reversal, repost}); err != nil {
		s.LogError(ctx, err, "Failed to update document items", slog.String("document_id", documentID))
		return nil, err
	}

	s.LogInfo(ctx, "Document items updated",
		slog.String("document_id", documentID),
		slog.String("total", totals.Total.String()),
	)
	return &updated, nil
}

// GetDocument retrieves a document with its lines.
func (s *postingService) GetDocument(ctx context.Context, businessID, documentID string) (*domain.Document, error) {
	return s.getDocument(ctx, businessID, documentID)
}

func (s *postingService) getDocument(ctx context.Context, businessID, documentID string) (*domain.Document, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, businessID, documentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, documentID)
		}
		return nil, err
	}
	return doc, nil
}

// ListDocuments retrieves document headers with cursor pagination.
func (s *postingService) ListDocuments(ctx context.Context, businessID string, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var kind *domain.DocumentKind
	if params.Kind != nil {
		k := domain.DocumentKind(*params.Kind)
		kind = &k
	}
	var status *domain.DocumentStatus
	if params.Status != nil {
		st := domain.DocumentStatus(*params.Status)
		status = &st
	}

	docs, nextToken, err := s.docRepo.ListDocuments(ctx, businessID, kind, status, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]dto.DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = dto.ToDocumentResponse(&docs[i])
	}
	return &dto.ListDocumentsResponse{Documents: responses, NextToken: nextToken}, nil
}
