package mapping

import (
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	"github.com/voucherledger/voucher_ledger_app/internal/models"
)

// ToDomainAccount converts an account database model to its domain form.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		CompanyID:   m.CompanyID,
		Code:        m.Code,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		Role:        domain.AccountRole(m.Role),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAccount converts a domain.Account to its database model.
func ToModelAccount(a domain.Account) models.Account {
	return models.Account{
		AccountID:   a.AccountID,
		CompanyID:   a.CompanyID,
		Code:        a.Code,
		Name:        a.Name,
		AccountType: models.AccountType(a.AccountType),
		Role:        string(a.Role),
		AuditFields: ToModelAuditFields(a.AuditFields),
	}
}
