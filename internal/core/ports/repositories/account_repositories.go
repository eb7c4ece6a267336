package repositories

import (
	"context"

	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
)

// AccountRepositoryFacade defines read operations on the chart of accounts.
// Accounts are reference data for the ledger core; it never mutates them.
type AccountRepositoryFacade interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs returns the accounts matching the given IDs, keyed by
	// account ID. Missing IDs are simply absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountByRole returns the first account carrying the given advisory
	// role within a company. Callers that need uniqueness must guarantee one
	// role per company in their data.
	FindAccountByRole(ctx context.Context, companyID string, role domain.AccountRole) (*domain.Account, error)
}
