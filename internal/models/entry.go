package models

import "github.com/shopspring/decimal"

// EntrySide indicates whether an entry row is a Debit or a Credit.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// Entry is the database representation of one ledger line.
// Amount is a NUMERIC column scanned into a precise decimal.
type Entry struct {
	EntryID   string          `db:"entry_id"`
	VoucherID string          `db:"voucher_id"`
	AccountID string          `db:"account_id"`
	Side      EntrySide       `db:"side"`
	Amount    decimal.Decimal `db:"amount"`
	AuditFields
}
