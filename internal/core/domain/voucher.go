package domain

import "time"

// VoucherStatus indicates the lifecycle state of a voucher.
// DRAFT is mutable; POSTED is terminal and immutable. There are no other states.
type VoucherStatus string

const (
	Draft  VoucherStatus = "DRAFT"
	Posted VoucherStatus = "POSTED"
)

// Voucher is a transaction header grouping a balanced set of entries.
// VoucherNumber is nil while the voucher is a draft and is assigned exactly
// once, inside the posting transaction; it is never changed or reused.
type Voucher struct {
	VoucherID     string        `json:"voucherID"`     // Primary Key (UUID)
	CompanyID     string        `json:"companyID"`     // FK -> companies.company_id (Not Null)
	VoucherTypeID string        `json:"voucherTypeID"` // FK -> voucher_types.voucher_type_id (Not Null)
	Status        VoucherStatus `json:"status"`
	VoucherDate   time.Time     `json:"voucherDate"`
	VoucherNumber *int64        `json:"voucherNumber,omitempty"` // Assigned at posting
	Narration     string        `json:"narration,omitempty"`
	PartyID       *string       `json:"partyID,omitempty"` // Optional counterparty
	Entries       []Entry       `json:"entries,omitempty"` // Often loaded separately
	AuditFields
}

// PostingResult is returned by the posting engine after a successful
// DRAFT -> POSTED transition.
type PostingResult struct {
	VoucherID     string        `json:"voucherID"`
	VoucherNumber int64         `json:"voucherNumber"`
	Status        VoucherStatus `json:"status"`
}
