package models

import "time"

// VoucherStatus indicates the lifecycle state of a voucher row.
type VoucherStatus string

const (
	Draft  VoucherStatus = "DRAFT"
	Posted VoucherStatus = "POSTED"
)

// Voucher is the database representation of a voucher header.
// VoucherNumber is NULL while the voucher is a draft.
type Voucher struct {
	VoucherID     string        `db:"voucher_id"`
	CompanyID     string        `db:"company_id"`
	VoucherTypeID string        `db:"voucher_type_id"`
	Status        VoucherStatus `db:"status"`
	VoucherDate   time.Time     `db:"voucher_date"`
	VoucherNumber *int64        `db:"voucher_number"`
	Narration     string        `db:"narration"`
	PartyID       *string       `db:"party_id"`
	AuditFields
}
