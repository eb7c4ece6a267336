package domain

// AccountType defines the fundamental accounting classification of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// AccountRole is an advisory semantic tag used by the account resolution step
// to find control accounts (e.g. the cash account, the sales account).
// The ledger core itself only ever works with resolved account IDs.
type AccountRole string

const (
	RoleCash         AccountRole = "CASH"
	RoleBank         AccountRole = "BANK"
	RoleReceivable   AccountRole = "AR"
	RolePayable      AccountRole = "AP"
	RoleOwnerCapital AccountRole = "OWNER"
	RoleSales        AccountRole = "SALES"
	RolePurchase     AccountRole = "PURCHASE"
)

// Account represents a ledger bucket within a company's chart of accounts.
type Account struct {
	AccountID   string      `json:"accountID"`   // Primary Key (UUID)
	CompanyID   string      `json:"companyID"`   // FK -> companies.company_id (Not Null)
	Code        string      `json:"code"`        // Unique per company
	Name        string      `json:"name"`        // Display name
	AccountType AccountType `json:"accountType"` // Exactly one classification
	Role        AccountRole `json:"role"`        // Advisory; empty if none
	AuditFields
}
