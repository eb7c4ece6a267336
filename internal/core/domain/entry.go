package domain

import "github.com/shopspring/decimal"

// EntrySide indicates whether an entry line is a Debit or a Credit.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// Entry represents a single ledger line within a voucher, affecting one account.
// Entries of a DRAFT voucher are replaced as a whole set on update; entries of
// a POSTED voucher are immutable forever.
type Entry struct {
	EntryID   string          `json:"entryID"`   // Primary Key (UUID)
	VoucherID string          `json:"voucherID"` // FK -> vouchers.voucher_id (Not Null)
	AccountID string          `json:"accountID"` // FK -> accounts.account_id (Not Null)
	Side      EntrySide       `json:"side"`
	Amount    decimal.Decimal `json:"amount"` // Strictly positive once posted
	AuditFields
}
