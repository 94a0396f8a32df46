package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
)

// validTransactionKind accepts only the kinds the posting engine knows how
// to build lines for.
func validTransactionKind(fl validator.FieldLevel) bool {
	switch domain.TransactionKind(fl.Field().String()) {
	case domain.KindCashEntry,
		domain.KindInterpartyTransfer,
		domain.KindBankTransfer,
		domain.KindManagerCheque,
		domain.KindGeneralTrading,
		domain.KindManualJournal:
		return true
	}
	return false
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("txnkind", validTransactionKind)
	}
}
