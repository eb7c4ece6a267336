package mapping

import (
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	"github.com/voucherledger/voucher_ledger_app/internal/models"
)

// ToModelVoucher converts a domain.Voucher to its database model.
func ToModelVoucher(v domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:     v.VoucherID,
		CompanyID:     v.CompanyID,
		VoucherTypeID: v.VoucherTypeID,
		Status:        models.VoucherStatus(v.Status),
		VoucherDate:   v.VoucherDate,
		VoucherNumber: v.VoucherNumber,
		Narration:     v.Narration,
		PartyID:       v.PartyID,
		AuditFields:   ToModelAuditFields(v.AuditFields),
	}
}

// ToDomainVoucher converts a voucher database model to its domain form.
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:     m.VoucherID,
		CompanyID:     m.CompanyID,
		VoucherTypeID: m.VoucherTypeID,
		Status:        domain.VoucherStatus(m.Status),
		VoucherDate:   m.VoucherDate,
		VoucherNumber: m.VoucherNumber,
		Narration:     m.Narration,
		PartyID:       m.PartyID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelEntry converts a domain.Entry to its database model.
func ToModelEntry(e domain.Entry) models.Entry {
	return models.Entry{
		EntryID:     e.EntryID,
		VoucherID:   e.VoucherID,
		AccountID:   e.AccountID,
		Side:        models.EntrySide(e.Side),
		Amount:      e.Amount,
		AuditFields: ToModelAuditFields(e.AuditFields),
	}
}

// ToDomainEntry converts an entry database model to its domain form.
func ToDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:     m.EntryID,
		VoucherID:   m.VoucherID,
		AccountID:   m.AccountID,
		Side:        domain.EntrySide(m.Side),
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntrySlice converts a slice of entry models to domain entries.
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	entries := make([]domain.Entry, len(ms))
	for i, m := range ms {
		entries[i] = ToDomainEntry(m)
	}
	return entries
}

// ToDomainVoucherType converts a voucher type model to its domain form.
func ToDomainVoucherType(m models.VoucherType) domain.VoucherType {
	return domain.VoucherType{
		VoucherTypeID: m.VoucherTypeID,
		CompanyID:     m.CompanyID,
		Code:          domain.VoucherTypeCode(m.Code),
		Name:          m.Name,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
