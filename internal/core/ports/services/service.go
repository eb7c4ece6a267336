package services

// ServiceContainer bundles all service facades for injection into handlers.
type ServiceContainer struct {
	Voucher   VoucherSvcFacade
	Account   AccountSvcFacade
	Reporting ReportingSvcFacade
}
