package models

// TransactionType maps a row of the transaction_types table.
type TransactionType struct {
	TypeID   string `db:"type_id"`
	TypeCode int    `db:"type_code"`
	Kind     string `db:"kind"`
	Name     string `db:"name"`
	AuditFields
}
