package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voucherledger/voucher_ledger_app/internal/apperrors"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	portsrepo "github.com/voucherledger/voucher_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/voucherledger/voucher_ledger_app/internal/core/ports/services"
	"github.com/voucherledger/voucher_ledger_app/internal/core/templates"
	"github.com/voucherledger/voucher_ledger_app/internal/dto"
	"github.com/voucherledger/voucher_ledger_app/internal/middleware"
	"github.com/voucherledger/voucher_ledger_app/internal/utils/accounting"
)

// voucherService implements draft management and posting on top of the
// template engine and the voucher repository.
type voucherService struct {
	voucherRepo     portsrepo.VoucherRepositoryFacade
	voucherTypeRepo portsrepo.VoucherTypeRepositoryFacade
	accountSvc      portssvc.AccountSvcFacade
}

// NewVoucherService creates a new VoucherService.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryFacade, voucherTypeRepo portsrepo.VoucherTypeRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo:     voucherRepo,
		voucherTypeRepo: voucherTypeRepo,
		accountSvc:      accountSvc,
	}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// resolveEntries runs the template engine for an intent and re-checks the
// balance invariant before anything touches the database.
func (s *voucherService) resolveEntries(ctx context.Context, companyID string, input dto.DraftVoucherInput) ([]domain.EntryProposal, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: voucher amount must be positive, got %s", apperrors.ErrValidation, input.Amount.String())
	}

	proposals, err := templates.GenerateEntries(input.Intent())
	if err != nil {
		return nil, err
	}

	if err := accounting.ValidateProposalBalance(proposals); err != nil {
		return nil, err
	}

	// Every referenced account must exist and belong to the company.
	accountIDs := make([]string, 0, len(proposals))
	seen := make(map[string]struct{}, len(proposals))
	for _, p := range proposals {
		if _, ok := seen[p.AccountID]; !ok {
			seen[p.AccountID] = struct{}{}
			accountIDs = append(accountIDs, p.AccountID)
		}
	}
	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, companyID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts for voucher: %w", err)
	}
	for _, id := range accountIDs {
		if _, found := accountsMap[id]; !found {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
	}

	return proposals, nil
}

// CreateDraft implements portssvc.VoucherSvcFacade.
func (s *voucherService) CreateDraft(ctx context.Context, companyID string, input dto.DraftVoucherInput) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucherType, err := s.voucherTypeRepo.FindVoucherTypeByCode(ctx, companyID, input.VoucherType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: voucher type %s", apperrors.ErrNotFound, input.VoucherType)
		}
		return nil, fmt.Errorf("failed to resolve voucher type: %w", err)
	}

	proposals, err := s.resolveEntries(ctx, companyID, input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	voucherID := uuid.NewString()

	voucher := domain.Voucher{
		VoucherID:     voucherID,
		CompanyID:     companyID,
		VoucherTypeID: voucherType.VoucherTypeID,
		Status:        domain.Draft,
		VoucherDate:   input.VoucherDate,
		Narration:     input.Narration,
		PartyID:       input.PartyID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	entries := proposalsToEntries(voucherID, proposals, now)

	if err := s.voucherRepo.CreateDraftVoucher(ctx, voucher, entries); err != nil {
		logger.Error("Failed to save draft voucher", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save draft voucher: %w", err)
	}

	logger.Info("Draft voucher created",
		slog.String("voucher_id", voucherID),
		slog.String("company_id", companyID),
		slog.String("voucher_type", string(input.VoucherType)),
		slog.String("sub_type", string(input.SubType)))

	voucher.Entries = entries
	return &voucher, nil
}

// UpdateDraft implements portssvc.VoucherSvcFacade. The whole entry set is
// regenerated from the new intent; partial replacement is never observable.
func (s *voucherService) UpdateDraft(ctx context.Context, companyID string, voucherID string, input dto.DraftVoucherInput) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucher, err := s.findCompanyVoucher(ctx, companyID, voucherID)
	if err != nil {
		return nil, err
	}
	if voucher.Status != domain.Draft {
		return nil, fmt.Errorf("%w: voucher %s is %s", apperrors.ErrInvalidState, voucherID, voucher.Status)
	}

	voucherType, err := s.voucherTypeRepo.FindVoucherTypeByCode(ctx, companyID, input.VoucherType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: voucher type %s", apperrors.ErrNotFound, input.VoucherType)
		}
		return nil, fmt.Errorf("failed to resolve voucher type: %w", err)
	}

	proposals, err := s.resolveEntries(ctx, companyID, input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	voucher.VoucherTypeID = voucherType.VoucherTypeID
	voucher.VoucherDate = input.VoucherDate
	voucher.Narration = input.Narration
	voucher.PartyID = input.PartyID
	voucher.LastUpdatedAt = now

	entries := proposalsToEntries(voucherID, proposals, now)

	// The repository re-checks DRAFT status inside the same transaction that
	// replaces the entries, so a concurrent posting cannot slip through.
	if err := s.voucherRepo.ReplaceDraftVoucher(ctx, *voucher, entries); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidState) {
			return nil, err
		}
		logger.Error("Failed to replace draft voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to update draft voucher: %w", err)
	}

	logger.Info("Draft voucher updated", slog.String("voucher_id", voucherID), slog.String("company_id", companyID))

	voucher.Entries = entries
	return voucher, nil
}

// DeleteDraft implements portssvc.VoucherSvcFacade.
func (s *voucherService) DeleteDraft(ctx context.Context, companyID string, voucherID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucher, err := s.findCompanyVoucher(ctx, companyID, voucherID)
	if err != nil {
		return err
	}
	if voucher.Status != domain.Draft {
		return fmt.Errorf("%w: voucher %s is %s", apperrors.ErrInvalidState, voucherID, voucher.Status)
	}

	if err := s.voucherRepo.DeleteDraftVoucher(ctx, voucherID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidState) {
			return err
		}
		logger.Error("Failed to delete draft voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return fmt.Errorf("failed to delete draft voucher: %w", err)
	}

	logger.Info("Draft voucher deleted", slog.String("voucher_id", voucherID), slog.String("company_id", companyID))
	return nil
}

// PostVoucher implements portssvc.VoucherSvcFacade. The repository performs
// validation, numbering and the status flip inside one serializable
// transaction; this method only scopes the voucher to the company and maps
// the outcome. ErrSerializationConflict is transient and safe for the caller
// to retry; every other failure is deterministic.
func (s *voucherService) PostVoucher(ctx context.Context, companyID string, voucherID string) (*domain.PostingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.findCompanyVoucher(ctx, companyID, voucherID); err != nil {
		return nil, err
	}

	result, err := s.voucherRepo.PostVoucher(ctx, voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSerializationConflict) {
			logger.Warn("Posting lost serialization race", slog.String("voucher_id", voucherID))
			return nil, err
		}
		if isPostingValidationErr(err) {
			logger.Warn("Posting rejected", slog.String("voucher_id", voucherID), slog.String("error", err.Error()))
			return nil, err
		}
		logger.Error("Failed to post voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to post voucher %s: %w", voucherID, err)
	}

	logger.Info("Voucher posted",
		slog.String("voucher_id", voucherID),
		slog.String("company_id", companyID),
		slog.Int64("voucher_number", result.VoucherNumber))
	return result, nil
}

// GetVoucherByID implements portssvc.VoucherSvcFacade.
func (s *voucherService) GetVoucherByID(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error) {
	voucher, err := s.findCompanyVoucher(ctx, companyID, voucherID)
	if err != nil {
		return nil, err
	}

	entries, err := s.voucherRepo.FindEntriesByVoucherID(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve entries for voucher %s: %w", voucherID, err)
	}
	voucher.Entries = entries
	return voucher, nil
}

// ListDraftVouchers implements portssvc.VoucherSvcFacade.
func (s *voucherService) ListDraftVouchers(ctx context.Context, companyID string, limit int) ([]domain.Voucher, error) {
	if limit <= 0 {
		limit = 50
	}
	vouchers, err := s.voucherRepo.ListDraftVouchersByCompany(ctx, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list draft vouchers: %w", err)
	}
	return vouchers, nil
}

// findCompanyVoucher loads a voucher and hides vouchers of other companies
// behind ErrNotFound.
func (s *voucherService) findCompanyVoucher(ctx context.Context, companyID string, voucherID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, voucherID)
		}
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}
	if voucher.CompanyID != companyID {
		return nil, fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, voucherID)
	}
	return voucher, nil
}

func proposalsToEntries(voucherID string, proposals []domain.EntryProposal, now time.Time) []domain.Entry {
	entries := make([]domain.Entry, len(proposals))
	for i, p := range proposals {
		entries[i] = domain.Entry{
			EntryID:   uuid.NewString(),
			VoucherID: voucherID,
			AccountID: p.AccountID,
			Side:      p.Side,
			Amount:    p.Amount,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}
	return entries
}

func isPostingValidationErr(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrInvalidState) ||
		errors.Is(err, apperrors.ErrIncompleteVoucher) ||
		errors.Is(err, apperrors.ErrInvalidAmount) ||
		errors.Is(err, apperrors.ErrUnbalancedVoucher)
}
