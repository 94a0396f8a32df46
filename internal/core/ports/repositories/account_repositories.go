package repositories

import (
	"context"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
)

// AccountRepositoryFacade defines read operations over the chart of accounts.
// Master-data maintenance is owned by the data-access layer outside this
// engine; the engine only validates against it.
type AccountRepositoryFacade interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
}

// CurrencyRepositoryFacade defines read operations over currencies.
type CurrencyRepositoryFacade interface {
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)
	FindBaseCurrency(ctx context.Context) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// TransactionTypeRepositoryFacade defines read operations over registered
// transaction kinds.
type TransactionTypeRepositoryFacade interface {
	ListTransactionTypes(ctx context.Context) ([]domain.TransactionType, error)
}
