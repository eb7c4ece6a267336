// Package templates maps business intent to balanced debit/credit entry
// proposals. It is the single source of accounting truth: every other
// component trusts its output instead of re-deriving debit/credit logic.
// Everything here is pure and deterministic; no I/O, no lookups.
package templates

import (
	"fmt"

	"github.com/voucherledger/voucher_ledger_app/internal/apperrors"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
)

// GenerateEntries resolves a voucher intent into its proposed ledger lines.
// Every template emits a minimally balanced pair: two lines with opposite
// sides and equal amounts. An unrecognized (voucherType, subType) pair or a
// missing required payment account fails with ErrUnresolvedTemplate; there is
// never a silent default.
func GenerateEntries(intent domain.VoucherIntent) ([]domain.EntryProposal, error) {
	switch intent.VoucherType {
	case domain.Sale:
		return saleTemplate(intent)
	case domain.Purchase:
		return purchaseTemplate(intent)
	case domain.Receipt:
		return receiptTemplate(intent)
	case domain.Payment:
		return paymentTemplate(intent)
	default:
		return nil, fmt.Errorf("%w: unsupported voucher type %q", apperrors.ErrUnresolvedTemplate, intent.VoucherType)
	}
}

func saleTemplate(intent domain.VoucherIntent) ([]domain.EntryProposal, error) {
	switch intent.SubType {
	case domain.CashSale:
		if intent.PaymentAccountID == "" {
			return nil, fmt.Errorf("%w: payment account required for %s", apperrors.ErrUnresolvedTemplate, domain.CashSale)
		}
		return balancedPair(intent.PaymentAccountID, intent.Accounts.SalesAccountID, intent), nil
	case domain.CreditSale:
		return balancedPair(intent.Accounts.AccountsReceivableID, intent.Accounts.SalesAccountID, intent), nil
	default:
		return nil, unsupportedSubType(intent)
	}
}

func purchaseTemplate(intent domain.VoucherIntent) ([]domain.EntryProposal, error) {
	switch intent.SubType {
	case domain.CashPurchase:
		if intent.PaymentAccountID == "" {
			return nil, fmt.Errorf("%w: payment account required for %s", apperrors.ErrUnresolvedTemplate, domain.CashPurchase)
		}
		return balancedPair(intent.Accounts.PurchaseExpenseAccountID, intent.PaymentAccountID, intent), nil
	case domain.CreditPurchase:
		return balancedPair(intent.Accounts.PurchaseExpenseAccountID, intent.Accounts.AccountsPayableID, intent), nil
	default:
		return nil, unsupportedSubType(intent)
	}
}

func receiptTemplate(intent domain.VoucherIntent) ([]domain.EntryProposal, error) {
	if intent.SubType != domain.CustomerReceipt {
		return nil, unsupportedSubType(intent)
	}
	if intent.PaymentAccountID == "" {
		return nil, fmt.Errorf("%w: payment account required for %s", apperrors.ErrUnresolvedTemplate, domain.CustomerReceipt)
	}
	return balancedPair(intent.PaymentAccountID, intent.Accounts.AccountsReceivableID, intent), nil
}

func paymentTemplate(intent domain.VoucherIntent) ([]domain.EntryProposal, error) {
	if intent.PaymentAccountID == "" {
		return nil, fmt.Errorf("%w: payment account required for %s vouchers", apperrors.ErrUnresolvedTemplate, domain.Payment)
	}
	switch intent.SubType {
	case domain.VendorPayment:
		return balancedPair(intent.Accounts.AccountsPayableID, intent.PaymentAccountID, intent), nil
	case domain.OwnerWithdrawal:
		return balancedPair(intent.Accounts.OwnerCapitalID, intent.PaymentAccountID, intent), nil
	default:
		return nil, unsupportedSubType(intent)
	}
}

// balancedPair builds the debit/credit pair every template reduces to in this
// scope. Multi-line splits would extend this, but the balance invariant must
// hold for any N-line template.
func balancedPair(debitAccountID, creditAccountID string, intent domain.VoucherIntent) []domain.EntryProposal {
	return []domain.EntryProposal{
		{AccountID: debitAccountID, Side: domain.Debit, Amount: intent.Amount},
		{AccountID: creditAccountID, Side: domain.Credit, Amount: intent.Amount},
	}
}

func unsupportedSubType(intent domain.VoucherIntent) error {
	return fmt.Errorf("%w: unsupported sub-type %q for voucher type %s", apperrors.ErrUnresolvedTemplate, intent.SubType, intent.VoucherType)
}
