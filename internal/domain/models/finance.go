package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes cash received from cash paid out.
type TransactionType string

const (
	TransactionInward  TransactionType = "Inward"
	TransactionOutward TransactionType = "Outward"
)

// FinanceTransaction is one farm-wide cash ledger entry. Amounts are decimals
// so balance arithmetic stays exact.
type FinanceTransaction struct {
	ID                  string          `json:"id"`
	Date                time.Time       `json:"date"`
	VoucherNo           string          `json:"voucherNo"`
	Type                TransactionType `json:"type"`
	SourceOrExpenseType string          `json:"sourceOrExpenseType"`
	Amount              decimal.Decimal `json:"amount"`
	Remarks             string          `json:"remarks"`
}
