package services

import (
	"context"

	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	"github.com/voucherledger/voucher_ledger_app/internal/dto"
)

// VoucherSvcFacade exposes draft management and the posting engine.
type VoucherSvcFacade interface {
	// CreateDraft resolves the intent through the template engine and
	// persists the header plus generated entries atomically, status DRAFT.
	CreateDraft(ctx context.Context, companyID string, input dto.DraftVoucherInput) (*domain.Voucher, error)

	// UpdateDraft re-resolves the intent and atomically replaces the whole
	// entry set along with the header fields.
	UpdateDraft(ctx context.Context, companyID string, voucherID string, input dto.DraftVoucherInput) (*domain.Voucher, error)

	// DeleteDraft removes a draft voucher and its entries atomically.
	DeleteDraft(ctx context.Context, companyID string, voucherID string) error

	// PostVoucher runs the DRAFT -> POSTED transition. The operation is
	// irreversible; ErrSerializationConflict is the only retryable failure.
	PostVoucher(ctx context.Context, companyID string, voucherID string) (*domain.PostingResult, error)

	// GetVoucherByID returns a voucher with its entries populated.
	GetVoucherByID(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error)

	// ListDraftVouchers returns the company's draft vouchers, newest first.
	ListDraftVouchers(ctx context.Context, companyID string, limit int) ([]domain.Voucher, error)
}
