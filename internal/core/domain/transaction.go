package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType categorizes the business event a posting records.
type TransactionType string

const (
	TxnSale     TransactionType = "SALE"
	TxnPurchase TransactionType = "PURCHASE"
	TxnExpense  TransactionType = "EXPENSE"
	TxnPayment  TransactionType = "PAYMENT"
	TxnReceipt  TransactionType = "RECEIPT"
	TxnRefund   TransactionType = "REFUND"
	TxnTransfer TransactionType = "TRANSFER"
)

// Transaction is a single double-entry posting: it debits one account and
// credits another by the same positive amount. Rows are append-only; committed
// postings are undone only by a compensating Transaction, never edited in place.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary key (UUID)
	BusinessID      string          `json:"businessID"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"` // Always positive
	TransactionType TransactionType `json:"transactionType"`
	DebitAccountID  string          `json:"debitAccountID"`  // Must differ from CreditAccountID
	CreditAccountID string          `json:"creditAccountID"` //
	DocumentID      *string         `json:"documentID,omitempty"` // Originating document, if any
	PartyID         *string         `json:"partyID,omitempty"`    // Customer/supplier reference, if any
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields
}
