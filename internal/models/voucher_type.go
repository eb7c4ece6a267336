package models

// VoucherType is the database representation of a voucher type.
// Reference data: rows are never updated after seeding.
type VoucherType struct {
	VoucherTypeID string `db:"voucher_type_id"`
	CompanyID     string `db:"company_id"`
	Code          string `db:"code"`
	Name          string `db:"name"`
	AuditFields
}
