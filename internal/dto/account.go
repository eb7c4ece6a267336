package dto

import (
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
)

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string `json:"accountID"`
	CompanyID   string `json:"companyID"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
	Role        string `json:"role,omitempty"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		CompanyID:   a.CompanyID,
		Code:        a.Code,
		Name:        a.Name,
		AccountType: string(a.AccountType),
		Role:        string(a.Role),
	}
}
