package models

// AccountType defines the fundamental accounting classification of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Account is the database representation of a ledger account.
// Role is an advisory tag used by the resolution step; it may be empty.
type Account struct {
	AccountID   string      `db:"account_id"`
	CompanyID   string      `db:"company_id"`
	Code        string      `db:"code"`
	Name        string      `db:"name"`
	AccountType AccountType `db:"account_type"`
	Role        string      `db:"role"`
	AuditFields
}
