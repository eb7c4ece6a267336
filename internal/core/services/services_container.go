package services

import (
	portsrepo "github.com/voucherledger/voucher_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/voucherledger/voucher_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Account service first since the voucher service depends on it.
	container.Account = NewAccountService(repos.AccountRepo)
	container.Voucher = NewVoucherService(repos.VoucherRepo, repos.VoucherTypeRepo, container.Account)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
