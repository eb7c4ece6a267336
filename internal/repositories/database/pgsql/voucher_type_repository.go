package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/voucherledger/voucher_ledger_app/internal/apperrors"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	portsrepo "github.com/voucherledger/voucher_ledger_app/internal/core/ports/repositories"
	"github.com/voucherledger/voucher_ledger_app/internal/models"
	"github.com/voucherledger/voucher_ledger_app/internal/utils/mapping"
)

type PgxVoucherTypeRepository struct {
	BaseRepository
}

// newPgxVoucherTypeRepository creates a new repository for voucher type
// reference data.
func newPgxVoucherTypeRepository(pool *pgxpool.Pool) portsrepo.VoucherTypeRepositoryFacade {
	return &PgxVoucherTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VoucherTypeRepositoryFacade = (*PgxVoucherTypeRepository)(nil)

// FindVoucherTypeByCode retrieves a voucher type by its code within a company.
func (r *PgxVoucherTypeRepository) FindVoucherTypeByCode(ctx context.Context, companyID string, code domain.VoucherTypeCode) (*domain.VoucherType, error) {
	query := `
		SELECT voucher_type_id, company_id, code, name, created_at, last_updated_at
		FROM voucher_types
		WHERE company_id = $1 AND code = $2;
	`
	return r.scanVoucherType(r.Pool.QueryRow(ctx, query, companyID, string(code)), "code "+string(code))
}

// FindVoucherTypeByID retrieves a voucher type by its ID.
func (r *PgxVoucherTypeRepository) FindVoucherTypeByID(ctx context.Context, voucherTypeID string) (*domain.VoucherType, error) {
	query := `
		SELECT voucher_type_id, company_id, code, name, created_at, last_updated_at
		FROM voucher_types
		WHERE voucher_type_id = $1;
	`
	return r.scanVoucherType(r.Pool.QueryRow(ctx, query, voucherTypeID), "ID "+voucherTypeID)
}

func (r *PgxVoucherTypeRepository) scanVoucherType(row pgx.Row, what string) (*domain.VoucherType, error) {
	var m models.VoucherType
	err := row.Scan(
		&m.VoucherTypeID,
		&m.CompanyID,
		&m.Code,
		&m.Name,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher type by "+what, err)
	}

	voucherType := mapping.ToDomainVoucherType(m)
	return &voucherType, nil
}
