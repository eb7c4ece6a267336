package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/voucherledger/voucher_ledger_app/internal/apperrors"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	"github.com/voucherledger/voucher_ledger_app/internal/utils/accounting"
)

func entry(id string, side domain.EntrySide, amount string) domain.Entry {
	return domain.Entry{
		EntryID: id,
		Side:    side,
		Amount:  decimal.RequireFromString(amount),
	}
}

func TestSumEntrySides(t *testing.T) {
	entries := []domain.Entry{
		entry("e1", domain.Debit, "100.50"),
		entry("e2", domain.Debit, "49.50"),
		entry("e3", domain.Credit, "150.00"),
	}

	debits, credits := accounting.SumEntrySides(entries)
	assert.True(t, debits.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, credits.Equal(decimal.RequireFromString("150.00")))
}

func TestValidateVoucherEntries_Valid(t *testing.T) {
	entries := []domain.Entry{
		entry("e1", domain.Debit, "150.00"),
		entry("e2", domain.Credit, "150.00"),
	}
	assert.NoError(t, accounting.ValidateVoucherEntries(entries))
}

func TestValidateVoucherEntries_TooFewLines(t *testing.T) {
	err := accounting.ValidateVoucherEntries([]domain.Entry{entry("e1", domain.Debit, "100")})
	assert.ErrorIs(t, err, apperrors.ErrIncompleteVoucher)

	err = accounting.ValidateVoucherEntries(nil)
	assert.ErrorIs(t, err, apperrors.ErrIncompleteVoucher)
}

func TestValidateVoucherEntries_NonPositiveAmount(t *testing.T) {
	entries := []domain.Entry{
		entry("e1", domain.Debit, "0"),
		entry("e2", domain.Credit, "0"),
	}
	assert.ErrorIs(t, accounting.ValidateVoucherEntries(entries), apperrors.ErrInvalidAmount)

	entries = []domain.Entry{
		entry("e1", domain.Debit, "-10"),
		entry("e2", domain.Credit, "-10"),
	}
	assert.ErrorIs(t, accounting.ValidateVoucherEntries(entries), apperrors.ErrInvalidAmount)
}

func TestValidateVoucherEntries_Unbalanced(t *testing.T) {
	entries := []domain.Entry{
		entry("e1", domain.Debit, "100.01"),
		entry("e2", domain.Credit, "100.00"),
	}
	assert.ErrorIs(t, accounting.ValidateVoucherEntries(entries), apperrors.ErrUnbalancedVoucher)
}

func TestValidateVoucherEntries_ExactDecimalComparison(t *testing.T) {
	// 0.1 + 0.2 must equal 0.3 exactly; no float tolerance anywhere.
	entries := []domain.Entry{
		entry("e1", domain.Debit, "0.1"),
		entry("e2", domain.Debit, "0.2"),
		entry("e3", domain.Credit, "0.3"),
	}
	assert.NoError(t, accounting.ValidateVoucherEntries(entries))
}

func TestValidateProposalBalance(t *testing.T) {
	balanced := []domain.EntryProposal{
		{AccountID: "a", Side: domain.Debit, Amount: decimal.NewFromInt(75)},
		{AccountID: "b", Side: domain.Credit, Amount: decimal.NewFromInt(75)},
	}
	assert.NoError(t, accounting.ValidateProposalBalance(balanced))

	unbalanced := []domain.EntryProposal{
		{AccountID: "a", Side: domain.Debit, Amount: decimal.NewFromInt(75)},
		{AccountID: "b", Side: domain.Credit, Amount: decimal.NewFromInt(70)},
	}
	assert.ErrorIs(t, accounting.ValidateProposalBalance(unbalanced), apperrors.ErrImbalancedTemplate)
}

func TestSignedBalance(t *testing.T) {
	debit := decimal.NewFromInt(40)
	credit := decimal.NewFromInt(100)

	// Income accounts report credit minus debit.
	assert.True(t, accounting.SignedBalance(domain.Income, debit, credit).Equal(decimal.NewFromInt(60)))

	// Expense (and everything else) reports debit minus credit.
	assert.True(t, accounting.SignedBalance(domain.Expense, credit, debit).Equal(decimal.NewFromInt(60)))
	assert.True(t, accounting.SignedBalance(domain.Asset, credit, debit).Equal(decimal.NewFromInt(60)))
}
