package mapping

import (
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	"github.com/voucherledger/voucher_ledger_app/internal/models"
)

// ToModelAuditFields converts domain audit fields to their model form.
func ToModelAuditFields(af domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     af.CreatedAt,
		LastUpdatedAt: af.LastUpdatedAt,
	}
}

// ToDomainAuditFields converts model audit fields to their domain form.
func ToDomainAuditFields(af models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     af.CreatedAt,
		LastUpdatedAt: af.LastUpdatedAt,
	}
}
