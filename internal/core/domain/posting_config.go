package domain

// PostingConfig carries the system accounts and registrations the posting
// engine needs. It is resolved once at startup and injected, never re-queried
// per operation.
type PostingConfig struct {
	CommissionAccountID string
	BaseCurrency        Currency
	TypeCodes           map[TransactionKind]int
}

// KindRegistered reports whether the given kind has a registered type code.
func (c PostingConfig) KindRegistered(kind TransactionKind) bool {
	_, ok := c.TypeCodes[kind]
	return ok
}
