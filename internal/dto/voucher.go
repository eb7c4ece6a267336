package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
)

// CreateVoucherRequest is the client-facing payload for creating a draft
// voucher. The caller states business intent only; debit/credit pairing is
// decided by the template engine and the payment/control accounts are
// resolved from roles before the core is invoked.
type CreateVoucherRequest struct {
	VoucherType string          `json:"voucherType" binding:"required,oneof=SALE PURCHASE RECEIPT PAYMENT"`
	SubType     string          `json:"subType" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,positive_decimal"`
	VoucherDate time.Time       `json:"voucherDate" binding:"required"`
	PaymentMode string          `json:"paymentMode,omitempty" binding:"omitempty,oneof=CASH BANK"`
	Narration   string          `json:"narration,omitempty"`
	PartyID     *string         `json:"partyID,omitempty"`
}

// UpdateVoucherRequest is the client-facing payload for updating a draft.
// The entire entry set is regenerated from the new intent.
type UpdateVoucherRequest = CreateVoucherRequest

// DraftVoucherInput is the resolved, core-facing input for draft creation and
// update: intent plus pre-resolved account identifiers, no roles.
type DraftVoucherInput struct {
	VoucherType      domain.VoucherTypeCode
	SubType          domain.VoucherSubType
	Amount           decimal.Decimal
	VoucherDate      time.Time
	Narration        string
	PartyID          *string
	PaymentAccountID string
	Accounts         domain.ControlAccounts
}

// Intent projects the core-facing input onto the template engine's input.
func (in DraftVoucherInput) Intent() domain.VoucherIntent {
	return domain.VoucherIntent{
		VoucherType:      in.VoucherType,
		SubType:          in.SubType,
		Amount:           in.Amount,
		PaymentAccountID: in.PaymentAccountID,
		Accounts:         in.Accounts,
	}
}

// EntryResponse defines the data returned for one ledger line.
type EntryResponse struct {
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Side      string          `json:"side"`
	Amount    decimal.Decimal `json:"amount"`
}

// VoucherResponse defines the data returned for a voucher header.
type VoucherResponse struct {
	VoucherID     string          `json:"voucherID"`
	CompanyID     string          `json:"companyID"`
	VoucherTypeID string          `json:"voucherTypeID"`
	Status        string          `json:"status"`
	VoucherDate   time.Time       `json:"voucherDate"`
	VoucherNumber *int64          `json:"voucherNumber,omitempty"`
	Narration     string          `json:"narration,omitempty"`
	PartyID       *string         `json:"partyID,omitempty"`
	Entries       []EntryResponse `json:"entries,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PostVoucherResponse is returned after a successful posting.
type PostVoucherResponse struct {
	VoucherID     string `json:"voucherID"`
	VoucherNumber int64  `json:"voucherNumber"`
	Status        string `json:"status"`
}

// ToEntryResponse converts a domain.Entry to its response DTO.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:   e.EntryID,
		AccountID: e.AccountID,
		Side:      string(e.Side),
		Amount:    e.Amount,
	}
}

// ToVoucherResponse converts a domain.Voucher to its response DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	resp := VoucherResponse{
		VoucherID:     v.VoucherID,
		CompanyID:     v.CompanyID,
		VoucherTypeID: v.VoucherTypeID,
		Status:        string(v.Status),
		VoucherDate:   v.VoucherDate,
		VoucherNumber: v.VoucherNumber,
		Narration:     v.Narration,
		PartyID:       v.PartyID,
		CreatedAt:     v.CreatedAt,
	}
	if len(v.Entries) > 0 {
		resp.Entries = make([]EntryResponse, len(v.Entries))
		for i := range v.Entries {
			resp.Entries[i] = ToEntryResponse(&v.Entries[i])
		}
	}
	return resp
}

// ToPostVoucherResponse converts a posting result to its response DTO.
func ToPostVoucherResponse(r *domain.PostingResult) PostVoucherResponse {
	return PostVoucherResponse{
		VoucherID:     r.VoucherID,
		VoucherNumber: r.VoucherNumber,
		Status:        string(r.Status),
	}
}
