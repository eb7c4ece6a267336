package dto

import (
	"github.com/shopspring/decimal"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
)

// ReportParams holds the query parameters shared by the report endpoints.
type ReportParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// TrialBalanceRowResponse is one account row of the trial balance report.
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceResponse is the full trial balance payload.
type TrialBalanceResponse struct {
	Rows        []TrialBalanceRowResponse `json:"rows"`
	TotalDebit  decimal.Decimal           `json:"totalDebit"`
	TotalCredit decimal.Decimal           `json:"totalCredit"`
}

// PAndLRowResponse is one account row of the profit and loss report.
type PAndLRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
}

// PAndLResponse is the full profit and loss payload.
type PAndLResponse struct {
	Income       []PAndLRowResponse `json:"income"`
	Expenses     []PAndLRowResponse `json:"expenses"`
	TotalIncome  decimal.Decimal    `json:"totalIncome"`
	TotalExpense decimal.Decimal    `json:"totalExpense"`
	NetProfit    decimal.Decimal    `json:"netProfit"`
}

// ToTrialBalanceResponse converts a domain trial balance report.
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(report.Rows))
	for i, r := range report.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountID:   r.AccountID,
			AccountCode: r.AccountCode,
			AccountName: r.AccountName,
			AccountType: string(r.AccountType),
			Debit:       r.Debit,
			Credit:      r.Credit,
			Balance:     r.Balance,
		}
	}
	return TrialBalanceResponse{
		Rows:        rows,
		TotalDebit:  report.TotalDebit,
		TotalCredit: report.TotalCredit,
	}
}

// ToPAndLResponse converts a domain profit and loss report.
func ToPAndLResponse(report *domain.PAndLReport) PAndLResponse {
	toRows := func(amounts []domain.AccountAmount) []PAndLRowResponse {
		rows := make([]PAndLRowResponse, len(amounts))
		for i, a := range amounts {
			rows[i] = PAndLRowResponse{
				AccountID:   a.AccountID,
				AccountCode: a.AccountCode,
				Name:        a.Name,
				Amount:      a.NetAmount,
			}
		}
		return rows
	}
	return PAndLResponse{
		Income:       toRows(report.Income),
		Expenses:     toRows(report.Expenses),
		TotalIncome:  report.TotalIncome,
		TotalExpense: report.TotalExpense,
		NetProfit:    report.NetProfit,
	}
}
