package repositories

import (
	"context"

	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
)

// VoucherRepositoryFacade defines persistence operations for vouchers and
// their entries. Multi-step operations are atomic: a failure at any step
// leaves prior state fully intact.
type VoucherRepositoryFacade interface {
	// CreateDraftVoucher persists a DRAFT voucher header and its entries as
	// one atomic unit.
	CreateDraftVoucher(ctx context.Context, voucher domain.Voucher, entries []domain.Entry) error

	// ReplaceDraftVoucher atomically updates the header fields of a DRAFT
	// voucher and replaces its entire entry set. It re-checks existence and
	// DRAFT status inside the transaction and returns ErrNotFound or
	// ErrInvalidState accordingly.
	ReplaceDraftVoucher(ctx context.Context, voucher domain.Voucher, entries []domain.Entry) error

	// DeleteDraftVoucher atomically removes a DRAFT voucher's entries and then
	// its header. Returns ErrNotFound or ErrInvalidState under the same rules
	// as ReplaceDraftVoucher.
	DeleteDraftVoucher(ctx context.Context, voucherID string) error

	// PostVoucher performs the DRAFT -> POSTED transition inside a single
	// serializable transaction: re-validates the entry set, assigns the next
	// voucher number for the voucher's (company, voucher type), and marks the
	// voucher POSTED. A lost serialization race surfaces as
	// ErrSerializationConflict, which the caller may retry.
	PostVoucher(ctx context.Context, voucherID string) (*domain.PostingResult, error)

	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	FindEntriesByVoucherID(ctx context.Context, voucherID string) ([]domain.Entry, error)
	ListDraftVouchersByCompany(ctx context.Context, companyID string, limit int) ([]domain.Voucher, error)
}

// VoucherTypeRepositoryFacade reads voucher type reference data.
type VoucherTypeRepositoryFacade interface {
	FindVoucherTypeByCode(ctx context.Context, companyID string, code domain.VoucherTypeCode) (*domain.VoucherType, error)
	FindVoucherTypeByID(ctx context.Context, voucherTypeID string) (*domain.VoucherType, error)
}
