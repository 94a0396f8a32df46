package services

import (
	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
	portsrepo "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/repositories"
	portssvc "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/services"
)

// NewServiceContainer wires the service layer onto the repositories. The
// posting configuration is resolved once by the caller before this runs.
func NewServiceContainer(cfg domain.PostingConfig, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Voucher: NewVoucherService(cfg, repos.VoucherRepo, repos.AccountRepo, repos.CurrencyRepo),
		Balance: NewBalanceService(repos.ReportingRepo, repos.CurrencyRepo),
	}
}
