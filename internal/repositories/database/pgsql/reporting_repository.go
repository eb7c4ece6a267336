package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/voucherledger/voucher_ledger_app/internal/apperrors"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	portsrepo "github.com/voucherledger/voucher_ledger_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for report aggregation
// queries over posted entries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetTrialBalanceData returns per-account debit and credit sums over posted
// vouchers for a company, optionally bounded by voucher date.
func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, companyID string, from, to *time.Time) ([]domain.TrialBalanceRow, error) {
	return r.queryAccountSums(ctx, companyID, from, to, nil)
}

// GetProfitAndLossData returns per-account sums restricted to income and
// expense accounts.
func (r *PgxReportingRepository) GetProfitAndLossData(ctx context.Context, companyID string, from, to *time.Time) ([]domain.TrialBalanceRow, error) {
	return r.queryAccountSums(ctx, companyID, from, to, []string{
		string(domain.Income),
		string(domain.Expense),
	})
}

// queryAccountSums aggregates entry amounts per account. Only entries
// belonging to POSTED vouchers participate; accountTypes narrows the account
// classification when non-nil.
func (r *PgxReportingRepository) queryAccountSums(ctx context.Context, companyID string, from, to *time.Time, accountTypes []string) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			COALESCE(SUM(CASE WHEN e.side = 'DEBIT' THEN e.amount ELSE 0 END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN e.side = 'CREDIT' THEN e.amount ELSE 0 END), 0) AS total_credit
		FROM entries e
		JOIN vouchers v ON v.voucher_id = e.voucher_id
		JOIN accounts a ON a.account_id = e.account_id
		WHERE v.company_id = $1 AND v.status = 'POSTED'`
	args := []interface{}{companyID}

	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND v.voucher_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND v.voucher_date <= $%d", len(args))
	}
	if accountTypes != nil {
		args = append(args, accountTypes)
		query += fmt.Sprintf(" AND a.account_type = ANY($%d)", len(args))
	}

	query += `
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate account sums", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&row.AccountType,
			&row.Debit,
			&row.Credit,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account sums row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read account sums rows", err)
	}

	return result, nil
}
