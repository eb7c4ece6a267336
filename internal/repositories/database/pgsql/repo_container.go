package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/voucherledger/voucher_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires up all pgx-backed repositories against a
// shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		VoucherRepo:     newPgxVoucherRepository(pool),
		VoucherTypeRepo: newPgxVoucherTypeRepository(pool),
		AccountRepo:     newPgxAccountRepository(pool),
		ReportingRepo:   newPgxReportingRepository(pool),
	}
}
