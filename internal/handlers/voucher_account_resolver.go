package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/voucherledger/voucher_ledger_app/internal/apperrors"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	"github.com/voucherledger/voucher_ledger_app/internal/core/ports/services"
	"github.com/voucherledger/voucher_ledger_app/internal/dto"
)

// voucherAccountResolver translates the advisory roles in a client request
// (payment mode, control accounts implied by the sub-type) into concrete
// account IDs before the core is invoked. The core never sees roles.
type voucherAccountResolver struct {
	accountService services.AccountSvcFacade
}

func newVoucherAccountResolver(as services.AccountSvcFacade) *voucherAccountResolver {
	return &voucherAccountResolver{accountService: as}
}

// controlRolesBySubType lists the control account roles each sub-type's
// template references. The payment account is handled separately via the
// request's payment mode.
var controlRolesBySubType = map[domain.VoucherSubType][]domain.AccountRole{
	domain.CashSale:        {domain.RoleSales},
	domain.CreditSale:      {domain.RoleSales, domain.RoleReceivable},
	domain.CashPurchase:    {domain.RolePurchase},
	domain.CreditPurchase:  {domain.RolePurchase, domain.RolePayable},
	domain.CustomerReceipt: {domain.RoleReceivable},
	domain.VendorPayment:   {domain.RolePayable},
	domain.OwnerWithdrawal: {domain.RoleOwnerCapital},
}

// ResolveDraftInput builds the core-facing draft input from a client request.
// Unknown sub-types and missing role accounts surface as ErrUnresolvedTemplate
// so callers get the same failure mode the template engine itself produces.
func (r *voucherAccountResolver) ResolveDraftInput(ctx context.Context, companyID string, req dto.CreateVoucherRequest) (dto.DraftVoucherInput, error) {
	subType := domain.VoucherSubType(req.SubType)

	roles, ok := controlRolesBySubType[subType]
	if !ok {
		return dto.DraftVoucherInput{}, fmt.Errorf("%w: unknown sub-type %q", apperrors.ErrUnresolvedTemplate, req.SubType)
	}

	input := dto.DraftVoucherInput{
		VoucherType: domain.VoucherTypeCode(req.VoucherType),
		SubType:     subType,
		Amount:      req.Amount,
		VoucherDate: req.VoucherDate,
		Narration:   req.Narration,
		PartyID:     req.PartyID,
	}

	if req.PaymentMode != "" {
		paymentRole := domain.RoleCash
		if req.PaymentMode == "BANK" {
			paymentRole = domain.RoleBank
		}
		account, err := r.resolveRole(ctx, companyID, paymentRole)
		if err != nil {
			return dto.DraftVoucherInput{}, err
		}
		input.PaymentAccountID = account.AccountID
	}

	for _, role := range roles {
		account, err := r.resolveRole(ctx, companyID, role)
		if err != nil {
			return dto.DraftVoucherInput{}, err
		}
		switch role {
		case domain.RoleSales:
			input.Accounts.SalesAccountID = account.AccountID
		case domain.RolePurchase:
			input.Accounts.PurchaseExpenseAccountID = account.AccountID
		case domain.RoleReceivable:
			input.Accounts.AccountsReceivableID = account.AccountID
		case domain.RolePayable:
			input.Accounts.AccountsPayableID = account.AccountID
		case domain.RoleOwnerCapital:
			input.Accounts.OwnerCapitalID = account.AccountID
		}
	}

	return input, nil
}

func (r *voucherAccountResolver) resolveRole(ctx context.Context, companyID string, role domain.AccountRole) (*domain.Account, error) {
	account, err := r.accountService.FindAccountByRole(ctx, companyID, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no account configured for role %s", apperrors.ErrUnresolvedTemplate, role)
		}
		return nil, err
	}
	return account, nil
}
