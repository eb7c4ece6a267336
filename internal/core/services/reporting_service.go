package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voucherledger/voucher_ledger_app/internal/apperrors"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	portsrepo "github.com/voucherledger/voucher_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/voucherledger/voucher_ledger_app/internal/core/ports/services"
	"github.com/voucherledger/voucher_ledger_app/internal/middleware"
	"github.com/voucherledger/voucher_ledger_app/internal/utils/accounting"
)

// reportingService derives reports from posted entries. Nothing is cached:
// every report recomputes from the entry table, so a report can always be
// re-derived identically from the same posted data.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance implements portssvc.ReportingSvcFacade.
func (s *reportingService) TrialBalance(ctx context.Context, companyID string, from, to *time.Time) (*domain.TrialBalanceReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, companyID, from, to)
	if err != nil {
		logger.Error("Failed to retrieve trial balance data", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i := range rows {
		rows[i].Balance = rows[i].Debit.Sub(rows[i].Credit)
		totalDebit = totalDebit.Add(rows[i].Debit)
		totalCredit = totalCredit.Add(rows[i].Credit)
	}

	// The posting engine makes an unbalanced ledger structurally impossible;
	// diverging totals here mean the stored data is corrupt.
	if !totalDebit.Equal(totalCredit) {
		logger.Error("Trial balance totals diverge",
			slog.String("company_id", companyID),
			slog.String("total_debit", totalDebit.String()),
			slog.String("total_credit", totalCredit.String()))
		return nil, fmt.Errorf("%w: trial balance debit %s != credit %s",
			apperrors.ErrReportIntegrity, totalDebit.String(), totalCredit.String())
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].AccountCode < rows[j].AccountCode })

	logger.Info("Trial balance generated", slog.String("company_id", companyID), slog.Int("row_count", len(rows)))
	return &domain.TrialBalanceReport{
		Rows:        rows,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
	}, nil
}

// ProfitAndLoss implements portssvc.ReportingSvcFacade.
func (s *reportingService) ProfitAndLoss(ctx context.Context, companyID string, from, to *time.Time) (*domain.PAndLReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.reportingRepo.GetProfitAndLossData(ctx, companyID, from, to)
	if err != nil {
		logger.Error("Failed to retrieve profit and loss data", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to retrieve profit and loss data: %w", err)
	}

	income := []domain.AccountAmount{}
	expenses := []domain.AccountAmount{}
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for _, row := range rows {
		amount := domain.AccountAmount{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			Name:        row.AccountName,
			NetAmount:   accounting.SignedBalance(row.AccountType, row.Debit, row.Credit),
		}
		switch row.AccountType {
		case domain.Income:
			income = append(income, amount)
			totalIncome = totalIncome.Add(amount.NetAmount)
		case domain.Expense:
			expenses = append(expenses, amount)
			totalExpense = totalExpense.Add(amount.NetAmount)
		default:
			return nil, fmt.Errorf("%w: account %s with type %s in profit and loss data",
				apperrors.ErrReportIntegrity, row.AccountID, row.AccountType)
		}
	}

	sort.Slice(income, func(i, j int) bool { return income[i].AccountCode < income[j].AccountCode })
	sort.Slice(expenses, func(i, j int) bool { return expenses[i].AccountCode < expenses[j].AccountCode })

	logger.Info("Profit and loss generated",
		slog.String("company_id", companyID),
		slog.Int("income_accounts", len(income)),
		slog.Int("expense_accounts", len(expenses)))

	return &domain.PAndLReport{
		Income:       income,
		Expenses:     expenses,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		NetProfit:    totalIncome.Sub(totalExpense),
	}, nil
}
