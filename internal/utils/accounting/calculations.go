package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/voucherledger/voucher_ledger_app/internal/apperrors"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
)

// SumEntrySides returns the debit and credit totals of a set of entries.
func SumEntrySides(entries []domain.Entry) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, e := range entries {
		if e.Side == domain.Debit {
			debits = debits.Add(e.Amount)
		} else {
			credits = credits.Add(e.Amount)
		}
	}
	return debits, credits
}

// ValidateVoucherEntries enforces the posting preconditions on an entry set:
// at least two lines, every amount strictly positive, and debit total exactly
// equal to credit total. Amounts are compared as exact decimals, never with a
// floating-point tolerance.
func ValidateVoucherEntries(entries []domain.Entry) error {
	if len(entries) < 2 {
		return apperrors.ErrIncompleteVoucher
	}

	for _, e := range entries {
		if e.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: entry %s has amount %s", apperrors.ErrInvalidAmount, e.EntryID, e.Amount.String())
		}
	}

	debits, credits := SumEntrySides(entries)
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debit total is %s, credit total is %s",
			apperrors.ErrUnbalancedVoucher, debits.String(), credits.String())
	}

	return nil
}

// ValidateProposalBalance re-checks that a template's proposals balance.
// The template engine guarantees this; the draft manager re-checks before
// persisting anything.
func ValidateProposalBalance(proposals []domain.EntryProposal) error {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, p := range proposals {
		if p.Side == domain.Debit {
			debits = debits.Add(p.Amount)
		} else {
			credits = credits.Add(p.Amount)
		}
	}
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debit total is %s, credit total is %s",
			apperrors.ErrImbalancedTemplate, debits.String(), credits.String())
	}
	return nil
}

// SignedBalance applies the reporting convention for a net (debit - credit)
// figure: income accounts report credit minus debit, expense accounts debit
// minus credit.
func SignedBalance(accountType domain.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	if accountType == domain.Income {
		return credit.Sub(debit)
	}
	return debit.Sub(credit)
}
