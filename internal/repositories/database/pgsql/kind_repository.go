package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/apperrors"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
	portsrepo "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/repositories"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/models"
)

type PgxTransactionTypeRepository struct {
	BaseRepository
}

// newPgxTransactionTypeRepository creates a new repository for registered
// transaction kinds.
func newPgxTransactionTypeRepository(pool *pgxpool.Pool) portsrepo.TransactionTypeRepositoryFacade {
	return &PgxTransactionTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionTypeRepositoryFacade = (*PgxTransactionTypeRepository)(nil)

// ListTransactionTypes retrieves all registered transaction kinds.
func (r *PgxTransactionTypeRepository) ListTransactionTypes(ctx context.Context) ([]domain.TransactionType, error) {
	query := `
		SELECT type_id, type_code, kind, name, created_at, created_by, last_updated_at, last_updated_by
		FROM transaction_types
		ORDER BY type_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction types", err)
	}
	defer rows.Close()

	types := []domain.TransactionType{}
	for rows.Next() {
		var m models.TransactionType
		err := rows.Scan(
			&m.TypeID,
			&m.TypeCode,
			&m.Kind,
			&m.Name,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction type row", err)
		}
		types = append(types, domain.TransactionType{
			TypeID:   m.TypeID,
			TypeCode: m.TypeCode,
			Kind:     domain.TransactionKind(m.Kind),
			Name:     m.Name,
			AuditFields: domain.AuditFields{
				CreatedAt:     m.CreatedAt,
				CreatedBy:     m.CreatedBy,
				LastUpdatedAt: m.LastUpdatedAt,
				LastUpdatedBy: m.LastUpdatedBy,
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction type rows", err)
	}
	return types, nil
}
