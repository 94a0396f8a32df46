package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	voucherRepo := newPgxVoucherRepository(dbPool)
	transactionTypeRepo := newPgxTransactionTypeRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:         accountRepo,
		CurrencyRepo:        currencyRepo,
		VoucherRepo:         voucherRepo,
		TransactionTypeRepo: transactionTypeRepo,
		ReportingRepo:       reportingRepo,
	}
}
