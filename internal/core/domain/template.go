package domain

import "github.com/shopspring/decimal"

// VoucherSubType refines a voucher type into a concrete business intent.
// The set is open: templates recognize the constants below and reject
// anything else rather than defaulting.
type VoucherSubType string

const (
	CashSale        VoucherSubType = "CASH_SALE"
	CreditSale      VoucherSubType = "CREDIT_SALE"
	CashPurchase    VoucherSubType = "CASH_PURCHASE"
	CreditPurchase  VoucherSubType = "CREDIT_PURCHASE"
	CustomerReceipt VoucherSubType = "CUSTOMER_RECEIPT"
	VendorPayment   VoucherSubType = "VENDOR_PAYMENT"
	OwnerWithdrawal VoucherSubType = "OWNER_WITHDRAWAL"
)

// ControlAccounts carries the pre-resolved control account IDs a template may
// reference. Role-to-account resolution happens before the core is called;
// templates never look accounts up themselves.
type ControlAccounts struct {
	SalesAccountID           string `json:"salesAccountID"`
	PurchaseExpenseAccountID string `json:"purchaseExpenseAccountID"`
	AccountsReceivableID     string `json:"accountsReceivableID"`
	AccountsPayableID        string `json:"accountsPayableID"`
	OwnerCapitalID           string `json:"ownerCapitalID"`
}

// VoucherIntent is the business-intent input to the template engine.
// No accounting freedom here: the caller states what happened and the
// template decides the debit/credit pairing.
type VoucherIntent struct {
	VoucherType      VoucherTypeCode
	SubType          VoucherSubType
	Amount           decimal.Decimal // Total business amount
	PaymentAccountID string          // Cash/bank account, required for cash intents
	Accounts         ControlAccounts
}

// EntryProposal is one proposed ledger line produced by the template engine,
// not yet persisted.
type EntryProposal struct {
	AccountID string
	Side      EntrySide
	Amount    decimal.Decimal
}
