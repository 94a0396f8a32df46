package services

// ServiceContainer bundles all service facades for injection into handlers.
type ServiceContainer struct {
	Voucher VoucherSvcFacade
	Balance BalanceSvcFacade
}
