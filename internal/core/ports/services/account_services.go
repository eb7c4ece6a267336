package services

import (
	"context"

	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
)

// AccountSvcFacade exposes chart-of-accounts reads used by the voucher flow
// and by the role-based account resolution step that precedes it.
type AccountSvcFacade interface {
	GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountByRole maps an advisory role (e.g. CASH) to a concrete
	// account within a company. First match wins.
	FindAccountByRole(ctx context.Context, companyID string, role domain.AccountRole) (*domain.Account, error)
}
