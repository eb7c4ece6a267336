package services

import (
	"context"
	"time"

	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
)

// ReportingSvcFacade derives financial reports from posted entries.
// Reports are pure read/aggregate operations: re-running one over the same
// posted data always yields the same result.
type ReportingSvcFacade interface {
	// TrialBalance aggregates posted entries per account. Returns
	// ErrReportIntegrity if total debits and credits diverge, which the
	// posting engine should make structurally impossible.
	TrialBalance(ctx context.Context, companyID string, from, to *time.Time) (*domain.TrialBalanceReport, error)

	// ProfitAndLoss aggregates INCOME and EXPENSE accounts over posted
	// entries using the accounting sign convention.
	ProfitAndLoss(ctx context.Context, companyID string, from, to *time.Time) (*domain.PAndLReport, error)
}
