package blocklist_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"payswitch/internal/domain/blocklist"
	"payswitch/pkg/postgres"
)

const uniqueViolation = "23505"

type PgBlocklistRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgBlocklistRepo(pg *postgres.Postgres) blocklist.BlocklistRepo {
	return &PgBlocklistRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) CreateEntry(ctx context.Context, req blocklist.AddRequest) (*blocklist.Entry, error) {
	id := uuid.New().String()

	query, args, err := r.builder.Insert("blocklist_entries").
		Columns("id", "merchant_id", "fingerprint_id", "data_kind").
		Values(id, req.MerchantID, req.FingerprintID, req.DataKind).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	entry := blocklist.Entry{
		ID:            id,
		MerchantID:    req.MerchantID,
		FingerprintID: req.FingerprintID,
		DataKind:      req.DataKind,
	}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&entry.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, blocklist.ErrEntryExists
		}
		return nil, fmt.Errorf("create blocklist entry: %w", err)
	}

	return &entry, nil
}

func (r *repo) DeleteEntry(ctx context.Context, merchantID, fingerprintID string) (*blocklist.Entry, error) {
	query, args, err := r.builder.Delete("blocklist_entries").
		Where(squirrel.Eq{"merchant_id": merchantID, "fingerprint_id": fingerprintID}).
		Suffix("RETURNING id, merchant_id, fingerprint_id, data_kind, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete query: %w", err)
	}

	var entry blocklist.Entry
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&entry.ID, &entry.MerchantID, &entry.FingerprintID, &entry.DataKind, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blocklist.ErrEntryNotFound
		}
		return nil, fmt.Errorf("delete blocklist entry: %w", err)
	}

	return &entry, nil
}

func (r *repo) ListEntries(ctx context.Context, q blocklist.ListQuery) ([]blocklist.Entry, error) {
	builder := r.builder.
		Select("id", "merchant_id", "fingerprint_id", "data_kind", "created_at").
		From("blocklist_entries").
		Where(squirrel.Eq{"merchant_id": q.MerchantID}).
		OrderBy("created_at DESC").
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset))
	if q.DataKind != nil {
		builder = builder.Where(squirrel.Eq{"data_kind": *q.DataKind})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query blocklist entries: %w", err)
	}
	defer rows.Close()

	entries := []blocklist.Entry{}
	for rows.Next() {
		var entry blocklist.Entry
		if err := rows.Scan(&entry.ID, &entry.MerchantID, &entry.FingerprintID, &entry.DataKind, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan blocklist entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read blocklist entries: %w", err)
	}

	return entries, nil
}

func (r *repo) SetGuardStatus(ctx context.Context, merchantID string, enabled bool) error {
	query, args, err := r.builder.Insert("blocklist_guards").
		Columns("merchant_id", "enabled").
		Values(merchantID, enabled).
		Suffix("ON CONFLICT (merchant_id) DO UPDATE SET enabled = EXCLUDED.enabled, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("set guard status: %w", err)
	}
	return nil
}

// GuardStatus reports enforcement for the merchant. Absence of a row means
// the guard was never enabled.
func (r *repo) GuardStatus(ctx context.Context, merchantID string) (bool, error) {
	query, args, err := r.builder.Select("enabled").
		From("blocklist_guards").
		Where(squirrel.Eq{"merchant_id": merchantID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build select query: %w", err)
	}

	var enabled bool
	err = r.db.QueryRow(ctx, query, args...).Scan(&enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("get guard status: %w", err)
	}

	return enabled, nil
}
