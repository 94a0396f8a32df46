package domain

// TransactionKind identifies the business shape of a voucher and selects the
// line-building and commission rules applied to it.
type TransactionKind string

const (
	KindCashEntry          TransactionKind = "CASH_ENTRY"
	KindInterpartyTransfer TransactionKind = "INTERPARTY_TRANSFER"
	KindBankTransfer       TransactionKind = "BANK_TRANSFER"
	KindManagerCheque      TransactionKind = "MANAGER_CHEQUE"
	KindGeneralTrading     TransactionKind = "GENERAL_TRADING"
	KindManualJournal      TransactionKind = "MANUAL_JOURNAL"
)

// TransactionType is a row of the transaction_types table: the persisted
// registration of a kind with its numeric type code.
type TransactionType struct {
	TypeID   string          `json:"typeID"` // Primary Key (e.g., UUID)
	TypeCode int             `json:"typeCode"`
	Kind     TransactionKind `json:"kind"`
	Name     string          `json:"name"`
	AuditFields
}
