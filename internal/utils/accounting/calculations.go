package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
)

// MoneyPrecision is the fixed decimal precision for all monetary values.
const MoneyPrecision = 2

var hundred = decimal.NewFromInt(100)

// LineAmounts holds the rounded components of a single document line.
type LineAmounts struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// DocumentTotals holds the accumulated document-level amounts.
type DocumentTotals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CalculateLineAmounts computes the rounded amounts for one line. Each
// component is rounded to MoneyPrecision before it contributes to anything
// else; accumulating already-rounded line values keeps totals reproducible and
// free of cross-line rounding drift.
func CalculateLineAmounts(line domain.DocumentLine) LineAmounts {
	subtotal := line.Quantity.Mul(line.UnitPrice).Round(MoneyPrecision)
	discount := subtotal.Mul(line.DiscountRate).Div(hundred).Round(MoneyPrecision)
	tax := subtotal.Sub(discount).Mul(line.TaxRate).Div(hundred).Round(MoneyPrecision)
	total := subtotal.Sub(discount).Add(tax)
	return LineAmounts{Subtotal: subtotal, Discount: discount, Tax: tax, Total: total}
}

// CalculateDocumentTotals accumulates rounded line amounts into document
// totals. Total = subtotal - discount + tax.
func CalculateDocumentTotals(lines []domain.DocumentLine) DocumentTotals {
	totals := DocumentTotals{
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}
	for _, line := range lines {
		amounts := CalculateLineAmounts(line)
		totals.Subtotal = totals.Subtotal.Add(amounts.Subtotal)
		totals.Discount = totals.Discount.Add(amounts.Discount)
		totals.Tax = totals.Tax.Add(amounts.Tax)
		totals.Total = totals.Total.Add(amounts.Total)
	}
	return totals
}

// RecomputeRunningBalances rewrites the Balance of every entry in the slice,
// in order, starting from priorBalance. Entries must already be sorted
// ascending by date. It returns the same slice for convenience.
func RecomputeRunningBalances(priorBalance decimal.Decimal, entries []domain.CashbookEntry) []domain.CashbookEntry {
	balance := priorBalance
	for i := range entries {
		balance = balance.Add(entries[i].SignedAmount())
		entries[i].Balance = balance
	}
	return entries
}

// PaymentTolerance absorbs per-line rounding when deciding whether a document
// balance has been fully settled.
var PaymentTolerance = decimal.NewFromFloat(0.01)

// IsSettled reports whether the remaining balance is within rounding tolerance
// of zero.
func IsSettled(balance decimal.Decimal) bool {
	return balance.Abs().LessThanOrEqual(PaymentTolerance)
}
