package templates_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voucherledger/voucher_ledger_app/internal/apperrors"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	"github.com/voucherledger/voucher_ledger_app/internal/core/templates"
)

func testControlAccounts() domain.ControlAccounts {
	return domain.ControlAccounts{
		SalesAccountID:           "acc-sales",
		PurchaseExpenseAccountID: "acc-purchase",
		AccountsReceivableID:     "acc-ar",
		AccountsPayableID:        "acc-ap",
		OwnerCapitalID:           "acc-owner",
	}
}

func intentFor(vt domain.VoucherTypeCode, st domain.VoucherSubType, payment string) domain.VoucherIntent {
	return domain.VoucherIntent{
		VoucherType:      vt,
		SubType:          st,
		Amount:           decimal.NewFromInt(500),
		PaymentAccountID: payment,
		Accounts:         testControlAccounts(),
	}
}

func TestGenerateEntries_CashSale(t *testing.T) {
	proposals, err := templates.GenerateEntries(intentFor(domain.Sale, domain.CashSale, "acc-cash"))
	require.NoError(t, err)
	require.Len(t, proposals, 2)

	assert.Equal(t, "acc-cash", proposals[0].AccountID)
	assert.Equal(t, domain.Debit, proposals[0].Side)
	assert.Equal(t, "acc-sales", proposals[1].AccountID)
	assert.Equal(t, domain.Credit, proposals[1].Side)
	assert.True(t, proposals[0].Amount.Equal(proposals[1].Amount))
}

func TestGenerateEntries_AllSupportedIntentsBalance(t *testing.T) {
	cases := []struct {
		name        string
		voucherType domain.VoucherTypeCode
		subType     domain.VoucherSubType
		payment     string
		wantDebit   string
		wantCredit  string
	}{
		{"cash sale", domain.Sale, domain.CashSale, "acc-cash", "acc-cash", "acc-sales"},
		{"credit sale", domain.Sale, domain.CreditSale, "", "acc-ar", "acc-sales"},
		{"cash purchase", domain.Purchase, domain.CashPurchase, "acc-cash", "acc-purchase", "acc-cash"},
		{"credit purchase", domain.Purchase, domain.CreditPurchase, "", "acc-purchase", "acc-ap"},
		{"customer receipt", domain.Receipt, domain.CustomerReceipt, "acc-bank", "acc-bank", "acc-ar"},
		{"vendor payment", domain.Payment, domain.VendorPayment, "acc-bank", "acc-ap", "acc-bank"},
		{"owner withdrawal", domain.Payment, domain.OwnerWithdrawal, "acc-cash", "acc-owner", "acc-cash"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intent := intentFor(tc.voucherType, tc.subType, tc.payment)
			proposals, err := templates.GenerateEntries(intent)
			require.NoError(t, err)
			require.Len(t, proposals, 2)

			assert.Equal(t, tc.wantDebit, proposals[0].AccountID)
			assert.Equal(t, domain.Debit, proposals[0].Side)
			assert.Equal(t, tc.wantCredit, proposals[1].AccountID)
			assert.Equal(t, domain.Credit, proposals[1].Side)

			// Both lines carry the full intent amount.
			assert.True(t, proposals[0].Amount.Equal(intent.Amount))
			assert.True(t, proposals[1].Amount.Equal(intent.Amount))
		})
	}
}

func TestGenerateEntries_UnknownVoucherType(t *testing.T) {
	_, err := templates.GenerateEntries(intentFor("JOURNAL", domain.CashSale, "acc-cash"))
	assert.ErrorIs(t, err, apperrors.ErrUnresolvedTemplate)
}

func TestGenerateEntries_UnknownSubType(t *testing.T) {
	cases := []struct {
		name        string
		voucherType domain.VoucherTypeCode
		subType     domain.VoucherSubType
	}{
		{"sale with purchase sub-type", domain.Sale, domain.CashPurchase},
		{"purchase with sale sub-type", domain.Purchase, domain.CreditSale},
		{"receipt with withdrawal sub-type", domain.Receipt, domain.OwnerWithdrawal},
		{"payment with receipt sub-type", domain.Payment, domain.CustomerReceipt},
		{"completely unknown sub-type", domain.Sale, domain.VoucherSubType("BARTER")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := templates.GenerateEntries(intentFor(tc.voucherType, tc.subType, "acc-cash"))
			assert.ErrorIs(t, err, apperrors.ErrUnresolvedTemplate)
		})
	}
}

func TestGenerateEntries_MissingPaymentAccount(t *testing.T) {
	cases := []struct {
		name        string
		voucherType domain.VoucherTypeCode
		subType     domain.VoucherSubType
	}{
		{"cash sale", domain.Sale, domain.CashSale},
		{"cash purchase", domain.Purchase, domain.CashPurchase},
		{"customer receipt", domain.Receipt, domain.CustomerReceipt},
		{"vendor payment", domain.Payment, domain.VendorPayment},
		{"owner withdrawal", domain.Payment, domain.OwnerWithdrawal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := templates.GenerateEntries(intentFor(tc.voucherType, tc.subType, ""))
			assert.ErrorIs(t, err, apperrors.ErrUnresolvedTemplate)
		})
	}
}

func TestGenerateEntries_CreditIntentsNeedNoPaymentAccount(t *testing.T) {
	for _, tc := range []struct {
		voucherType domain.VoucherTypeCode
		subType     domain.VoucherSubType
	}{
		{domain.Sale, domain.CreditSale},
		{domain.Purchase, domain.CreditPurchase},
	} {
		_, err := templates.GenerateEntries(intentFor(tc.voucherType, tc.subType, ""))
		assert.NoError(t, err)
	}
}
