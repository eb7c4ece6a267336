package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	VoucherRepo     VoucherRepositoryFacade
	VoucherTypeRepo VoucherTypeRepositoryFacade
	AccountRepo     AccountRepositoryFacade
	ReportingRepo   ReportingRepository
}
