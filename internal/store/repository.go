// AngelaMos | 2026
// repository.go

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/carterperez-dev/saleboard/internal/billing"
	"github.com/carterperez-dev/saleboard/internal/core"
)

type Repository interface {
	Create(ctx context.Context, store *Store) error
	GetByID(ctx context.Context, id string) (*Store, error)
	GetByIDForUpdate(ctx context.Context, id string) (*Store, error)
	Update(ctx context.Context, store *Store) error
	UpdateBilling(
		ctx context.Context,
		id string,
		patch billing.StorePatch,
	) error
	SetBanned(ctx context.Context, id string, banned bool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListStoresParams) ([]Store, int, error)
	Overview(ctx context.Context) (*Overview, error)
}

// Overview aggregates marketplace-wide counts for the admin dashboard.
type Overview struct {
	TotalStores   int `db:"total_stores"   json:"total_stores"`
	BannedStores  int `db:"banned_stores"  json:"banned_stores"`
	TrialStores   int `db:"trial_stores"   json:"trial_stores"`
	ActiveStores  int `db:"active_stores"  json:"active_stores"`
	ExpiredStores int `db:"expired_stores" json:"expired_stores"`
	TotalPosts    int `db:"total_posts"    json:"total_posts"`
	ActivePosts   int `db:"active_posts"   json:"active_posts"`
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const storeColumns = `
	id, name, address, phone, website, plan, trial_ends_at,
	billing_status, is_banned, categories, created_at, updated_at`

func (r *repository) Create(ctx context.Context, store *Store) error {
	query := `
		INSERT INTO stores (
			id, name, address, phone, website, plan, trial_ends_at,
			billing_status, categories
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, store, query,
		store.ID,
		store.Name,
		store.Address,
		store.Phone,
		store.Website,
		store.Plan,
		store.TrialEndsAt,
		store.BillingStatus,
		store.Categories,
	)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Store, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM stores WHERE id = $1`,
		storeColumns,
	)

	var store Store
	err := r.db.GetContext(ctx, &store, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get store: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}

	return &store, nil
}

// GetByIDForUpdate locks the store row for the duration of the enclosing
// transaction. Quota checks and billing transitions read through this so
// concurrent creates against the same store serialize instead of racing.
func (r *repository) GetByIDForUpdate(
	ctx context.Context,
	id string,
) (*Store, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM stores WHERE id = $1 FOR UPDATE`,
		storeColumns,
	)

	var store Store
	err := r.db.GetContext(ctx, &store, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get store for update: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get store for update: %w", err)
	}

	return &store, nil
}

func (r *repository) Update(ctx context.Context, store *Store) error {
	query := `
		UPDATE stores
		SET name = $2, address = $3, phone = $4, website = $5,
		    categories = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &store.UpdatedAt, query,
		store.ID,
		store.Name,
		store.Address,
		store.Phone,
		store.Website,
		store.Categories,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update store: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}

	return nil
}

func (r *repository) UpdateBilling(
	ctx context.Context,
	id string,
	patch billing.StorePatch,
) error {
	if patch.IsZero() {
		return nil
	}

	sets := []string{"updated_at = NOW()"}
	args := []any{id}
	argIdx := 2

	if patch.Plan != nil {
		sets = append(sets, fmt.Sprintf("plan = $%d", argIdx))
		args = append(args, *patch.Plan)
		argIdx++
	}

	if patch.TrialEndsAt != nil {
		sets = append(sets, fmt.Sprintf("trial_ends_at = $%d", argIdx))
		args = append(args, *patch.TrialEndsAt)
		argIdx++
	}

	if patch.BillingStatus != nil {
		sets = append(sets, fmt.Sprintf("billing_status = $%d", argIdx))
		args = append(args, *patch.BillingStatus)
		argIdx++
	}

	query := fmt.Sprintf(
		"UPDATE stores SET %s WHERE id = $1",
		strings.Join(sets, ", "),
	)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update store billing: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update store billing: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update store billing: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) SetBanned(
	ctx context.Context,
	id string,
	banned bool,
) error {
	query := `
		UPDATE stores
		SET is_banned = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, banned)
	if err != nil {
		return fmt.Errorf("set store banned: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set store banned: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("set store banned: %w", core.ErrNotFound)
	}

	return nil
}

// Delete removes a store. Posts, users, and their refresh tokens cascade at
// the schema level.
func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM stores WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete store: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListStoresParams,
) ([]Store, int, error) {
	params.Normalize()

	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, "TRUE")

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"name ILIKE $%d", argIdx))
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	if params.Banned != nil {
		conditions = append(conditions, fmt.Sprintf("is_banned = $%d", argIdx))
		args = append(args, *params.Banned)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM stores WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count stores: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM stores
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		storeColumns, whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var stores []Store
	if err := r.db.SelectContext(ctx, &stores, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list stores: %w", err)
	}

	return stores, total, nil
}

func (r *repository) Overview(ctx context.Context) (*Overview, error) {
	query := `
		SELECT
			COUNT(*) AS total_stores,
			COUNT(*) FILTER (WHERE is_banned) AS banned_stores,
			COUNT(*) FILTER (WHERE billing_status = 'trial') AS trial_stores,
			COUNT(*) FILTER (WHERE billing_status = 'active') AS active_stores,
			COUNT(*) FILTER (WHERE billing_status = 'expired') AS expired_stores,
			(SELECT COUNT(*) FROM posts) AS total_posts,
			(SELECT COUNT(*) FROM posts
				WHERE ends_at IS NULL OR ends_at > NOW()) AS active_posts
		FROM stores`

	var overview Overview
	if err := r.db.GetContext(ctx, &overview, query); err != nil {
		return nil, fmt.Errorf("marketplace overview: %w", err)
	}

	return &overview, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
