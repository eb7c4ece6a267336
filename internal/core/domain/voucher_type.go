package domain

// VoucherTypeCode names a transaction category. Immutable reference data.
type VoucherTypeCode string

const (
	Sale     VoucherTypeCode = "SALE"
	Purchase VoucherTypeCode = "PURCHASE"
	Receipt  VoucherTypeCode = "RECEIPT"
	Payment  VoucherTypeCode = "PAYMENT"
)

// VoucherType is a named transaction category scoped to a company.
type VoucherType struct {
	VoucherTypeID string          `json:"voucherTypeID"` // Primary Key (UUID)
	CompanyID     string          `json:"companyID"`     // FK -> companies.company_id (Not Null)
	Code          VoucherTypeCode `json:"code"`
	Name          string          `json:"name"`
	AuditFields
}
