package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/voucherledger/voucher_ledger_app/internal/apperrors"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	portsrepo "github.com/voucherledger/voucher_ledger_app/internal/core/ports/repositories"
	"github.com/voucherledger/voucher_ledger_app/internal/models"
	"github.com/voucherledger/voucher_ledger_app/internal/utils/accounting"
	"github.com/voucherledger/voucher_ledger_app/internal/utils/mapping"
)

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher and entry data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

const voucherColumns = `voucher_id, company_id, voucher_type_id, status, voucher_date, voucher_number, narration, party_id, created_at, last_updated_at`

// CreateDraftVoucher inserts a DRAFT voucher header and its entries as one
// atomic unit.
func (r *PgxVoucherRepository) CreateDraftVoucher(ctx context.Context, voucher domain.Voucher, entries []domain.Entry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelVoucher := mapping.ToModelVoucher(voucher)
	voucherQuery := `
		INSERT INTO vouchers (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, voucherQuery,
		modelVoucher.VoucherID,
		modelVoucher.CompanyID,
		modelVoucher.VoucherTypeID,
		modelVoucher.Status,
		modelVoucher.VoucherDate,
		modelVoucher.VoucherNumber,
		modelVoucher.Narration,
		modelVoucher.PartyID,
		modelVoucher.CreatedAt,
		modelVoucher.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert voucher "+modelVoucher.VoucherID, err)
	}

	if err := insertEntries(ctx, tx, entries); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ReplaceDraftVoucher updates the header of a DRAFT voucher and swaps its
// entire entry set inside one transaction. The status check runs against a
// locked row, so a concurrent posting either finishes first (and this fails
// with ErrInvalidState) or waits for this transaction.
func (r *PgxVoucherRepository) ReplaceDraftVoucher(ctx context.Context, voucher domain.Voucher, entries []domain.Entry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := lockDraftVoucher(ctx, tx, voucher.VoucherID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM entries WHERE voucher_id = $1;`, voucher.VoucherID); err != nil {
		return apperrors.NewAppError(500, "failed to delete entries for voucher "+voucher.VoucherID, err)
	}

	modelVoucher := mapping.ToModelVoucher(voucher)
	updateQuery := `
		UPDATE vouchers
		SET voucher_type_id = $2,
		    voucher_date = $3,
		    narration = $4,
		    party_id = $5,
		    last_updated_at = $6
		WHERE voucher_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery,
		modelVoucher.VoucherID,
		modelVoucher.VoucherTypeID,
		modelVoucher.VoucherDate,
		modelVoucher.Narration,
		modelVoucher.PartyID,
		modelVoucher.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update voucher "+voucher.VoucherID, err)
	}

	if err := insertEntries(ctx, tx, entries); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteDraftVoucher removes a DRAFT voucher's entries and then its header,
// atomically.
func (r *PgxVoucherRepository) DeleteDraftVoucher(ctx context.Context, voucherID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := lockDraftVoucher(ctx, tx, voucherID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM entries WHERE voucher_id = $1;`, voucherID); err != nil {
		return apperrors.NewAppError(500, "failed to delete entries for voucher "+voucherID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM vouchers WHERE voucher_id = $1;`, voucherID); err != nil {
		return apperrors.NewAppError(500, "failed to delete voucher "+voucherID, err)
	}

	return r.Commit(ctx, tx)
}

// PostVoucher performs the DRAFT -> POSTED transition. Everything runs inside
// one SERIALIZABLE transaction: the validation chain, the read of the current
// maximum voucher number for the voucher's (company, voucher type), and the
// header update. Serializable isolation is what guarantees that of two
// concurrent postings for the same pair, one observes the other's committed
// number; a lost race surfaces as ErrSerializationConflict for the caller to
// retry. The engine itself introduces no duplicates and no gaps (rolled-back
// attempts may leave gaps, which is acceptable).
func (r *PgxVoucherRepository) PostVoucher(ctx context.Context, voucherID string) (*domain.PostingResult, error) {
	tx, err := r.BeginSerializable(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Load and lock the header. The row lock serializes two posts of the
	// same voucher regardless of isolation level.
	var m models.Voucher
	headerQuery := `
		SELECT ` + voucherColumns + `
		FROM vouchers
		WHERE voucher_id = $1
		FOR UPDATE;
	`
	err = tx.QueryRow(ctx, headerQuery, voucherID).Scan(
		&m.VoucherID,
		&m.CompanyID,
		&m.VoucherTypeID,
		&m.Status,
		&m.VoucherDate,
		&m.VoucherNumber,
		&m.Narration,
		&m.PartyID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapPostingErr(err, "failed to load voucher "+voucherID+" for posting")
	}

	if m.Status != models.Draft {
		return nil, apperrors.ErrInvalidState
	}

	entries, err := queryEntries(ctx, tx, voucherID)
	if err != nil {
		return nil, err
	}

	if err := accounting.ValidateVoucherEntries(entries); err != nil {
		return nil, err
	}

	// Numbering: max committed number for this (company, voucherType) plus
	// one. This read-then-write is the race-prone step the serializable
	// isolation exists for.
	var maxNumber int64
	numberQuery := `
		SELECT COALESCE(MAX(voucher_number), 0)
		FROM vouchers
		WHERE company_id = $1 AND voucher_type_id = $2 AND status = 'POSTED';
	`
	if err := tx.QueryRow(ctx, numberQuery, m.CompanyID, m.VoucherTypeID).Scan(&maxNumber); err != nil {
		return nil, wrapPostingErr(err, "failed to read max voucher number for voucher "+voucherID)
	}
	nextNumber := maxNumber + 1

	updateQuery := `
		UPDATE vouchers
		SET status = 'POSTED',
		    voucher_number = $2,
		    last_updated_at = $3
		WHERE voucher_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, voucherID, nextNumber, time.Now().UTC()); err != nil {
		return nil, wrapPostingErr(err, "failed to mark voucher "+voucherID+" posted")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.PostingResult{
		VoucherID:     voucherID,
		VoucherNumber: nextNumber,
		Status:        domain.Posted,
	}, nil
}

// FindVoucherByID retrieves a voucher header by its ID.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	query := `
		SELECT ` + voucherColumns + `
		FROM vouchers
		WHERE voucher_id = $1;
	`
	var m models.Voucher
	err := r.Pool.QueryRow(ctx, query, voucherID).Scan(
		&m.VoucherID,
		&m.CompanyID,
		&m.VoucherTypeID,
		&m.Status,
		&m.VoucherDate,
		&m.VoucherNumber,
		&m.Narration,
		&m.PartyID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher by ID "+voucherID, err)
	}

	voucher := mapping.ToDomainVoucher(m)
	return &voucher, nil
}

// FindEntriesByVoucherID retrieves all entries of a voucher.
func (r *PgxVoucherRepository) FindEntriesByVoucherID(ctx context.Context, voucherID string) ([]domain.Entry, error) {
	return queryEntries(ctx, r.Pool, voucherID)
}

// ListDraftVouchersByCompany retrieves a company's draft vouchers, newest
// first.
func (r *PgxVoucherRepository) ListDraftVouchersByCompany(ctx context.Context, companyID string, limit int) ([]domain.Voucher, error) {
	query := `
		SELECT ` + voucherColumns + `
		FROM vouchers
		WHERE company_id = $1 AND status = 'DRAFT'
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query draft vouchers for company "+companyID, err)
	}
	defer rows.Close()

	vouchers := []domain.Voucher{}
	for rows.Next() {
		var m models.Voucher
		err := rows.Scan(
			&m.VoucherID,
			&m.CompanyID,
			&m.VoucherTypeID,
			&m.Status,
			&m.VoucherDate,
			&m.VoucherNumber,
			&m.Narration,
			&m.PartyID,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan voucher row for company "+companyID, err)
		}
		vouchers = append(vouchers, mapping.ToDomainVoucher(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating voucher rows for company "+companyID, err)
	}

	return vouchers, nil
}

// rowQuerier is the subset of pgx shared by Pool and Tx that entry queries need.
type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func queryEntries(ctx context.Context, q rowQuerier, voucherID string) ([]domain.Entry, error) {
	query := `
		SELECT entry_id, voucher_id, account_id, side, amount, created_at, last_updated_at
		FROM entries
		WHERE voucher_id = $1
		ORDER BY created_at, entry_id;
	`
	rows, err := q.Query(ctx, query, voucherID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for voucher "+voucherID, err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		var e models.Entry
		err := rows.Scan(
			&e.EntryID,
			&e.VoucherID,
			&e.AccountID,
			&e.Side,
			&e.Amount,
			&e.CreatedAt,
			&e.LastUpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row for voucher "+voucherID, err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows for voucher "+voucherID, err)
	}

	return mapping.ToDomainEntrySlice(entries), nil
}

// insertEntries batch-inserts entry rows inside the given transaction.
func insertEntries(ctx context.Context, tx pgx.Tx, entries []domain.Entry) error {
	batch := &pgx.Batch{}
	entryQuery := `
		INSERT INTO entries (entry_id, voucher_id, account_id, side, amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, entry := range entries {
		modelEntry := mapping.ToModelEntry(entry)
		batch.Queue(entryQuery,
			modelEntry.EntryID,
			modelEntry.VoucherID,
			modelEntry.AccountID,
			modelEntry.Side,
			modelEntry.Amount,
			modelEntry.CreatedAt,
			modelEntry.LastUpdatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute entry insert batch", err)
	}
	return nil
}

// lockDraftVoucher locks a voucher row and verifies it exists and is DRAFT.
func lockDraftVoucher(ctx context.Context, tx pgx.Tx, voucherID string) error {
	var status models.VoucherStatus
	err := tx.QueryRow(ctx, `SELECT status FROM vouchers WHERE voucher_id = $1 FOR UPDATE;`, voucherID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock voucher "+voucherID, err)
	}
	if status != models.Draft {
		return apperrors.ErrInvalidState
	}
	return nil
}

// wrapPostingErr maps serialization failures to the transient conflict error
// and wraps everything else.
func wrapPostingErr(err error, msg string) error {
	if isSerializationFailure(err) {
		return apperrors.ErrSerializationConflict
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		// The partial unique index on (company_id, voucher_type_id,
		// voucher_number) backs the numbering guarantee at the schema level;
		// hitting it is equivalent to losing the serialization race.
		return apperrors.ErrSerializationConflict
	}
	return apperrors.NewAppError(500, msg, err)
}
