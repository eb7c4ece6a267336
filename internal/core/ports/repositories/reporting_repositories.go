package repositories

import (
	"context"
	"time"

	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
)

// ReportingRepository aggregates posted ledger entries for reports.
// All queries are restricted to POSTED vouchers; from/to are optional
// inclusive bounds on the voucher date.
type ReportingRepository interface {
	// GetTrialBalanceData returns per-account debit and credit sums for a
	// company. Balance and totals are computed by the service.
	GetTrialBalanceData(ctx context.Context, companyID string, from, to *time.Time) ([]domain.TrialBalanceRow, error)

	// GetProfitAndLossData returns per-account debit and credit sums
	// restricted to INCOME and EXPENSE accounts.
	GetProfitAndLossData(ctx context.Context, companyID string, from, to *time.Time) ([]domain.TrialBalanceRow, error)
}
