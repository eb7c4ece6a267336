package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/voucherledger/voucher_ledger_app/internal/apperrors"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	portsrepo "github.com/voucherledger/voucher_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/voucherledger/voucher_ledger_app/internal/core/ports/services"
	"github.com/voucherledger/voucher_ledger_app/internal/middleware"
)

// accountService provides read access to the chart of accounts.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// GetAccountByID retrieves an account, hiding accounts of other companies
// behind ErrNotFound.
func (s *accountService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	if account.CompanyID != companyID {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return account, nil
}

// GetAccountsByIDs retrieves a batch of accounts keyed by ID. Accounts that
// do not exist or belong to another company are omitted from the result.
func (s *accountService) GetAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for id, acc := range accountsMap {
		if acc.CompanyID != companyID {
			delete(accountsMap, id)
		}
	}
	return accountsMap, nil
}

// FindAccountByRole maps a semantic role to the first matching account in the
// company. This backs the resolution step the API layer performs before
// calling the ledger core.
func (s *accountService) FindAccountByRole(ctx context.Context, companyID string, role domain.AccountRole) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByRole(ctx, companyID, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No account for role", slog.String("company_id", companyID), slog.String("role", string(role)))
			return nil, fmt.Errorf("%w: no account with role %s", apperrors.ErrNotFound, role)
		}
		return nil, fmt.Errorf("failed to find account by role %s: %w", role, err)
	}
	return account, nil
}
