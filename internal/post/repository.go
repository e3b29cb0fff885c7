// AngelaMos | 2026
// repository.go

package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/carterperez-dev/saleboard/internal/core"
)

type Repository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	GetListingByID(ctx context.Context, id string) (*Listing, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]Listing, error)
	CountActive(
		ctx context.Context,
		storeID string,
		now time.Time,
	) (int, error)
	IncrementViewCount(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const postColumns = `
	p.id, p.store_id, p.title, p.description, p.category, p.categories,
	p.price_original, p.price_sale, p.images, p.buy_url,
	p.starts_at, p.ends_at, p.view_count, p.created_at, p.updated_at`

const storeSummaryColumns = `
	s.id AS "store.id", s.name AS "store.name",
	s.address AS "store.address", s.phone AS "store.phone",
	s.website AS "store.website", s.plan AS "store.plan",
	s.billing_status AS "store.billing_status",
	s.is_banned AS "store.is_banned",
	s.categories AS "store.categories",
	s.created_at AS "store.created_at"`

func (r *repository) Create(ctx context.Context, post *Post) error {
	query := `
		INSERT INTO posts (
			id, store_id, title, description, category, categories,
			price_original, price_sale, images, buy_url, starts_at, ends_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING view_count, created_at, updated_at`

	err := r.db.GetContext(ctx, post, query,
		post.ID,
		post.StoreID,
		post.Title,
		post.Description,
		post.Category,
		post.Categories,
		post.PriceOriginal,
		post.PriceSale,
		post.Images,
		post.BuyURL,
		post.StartsAt,
		post.EndsAt,
	)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Post, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM posts p WHERE p.id = $1`,
		postColumns,
	)

	var post Post
	err := r.db.GetContext(ctx, &post, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get post: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	return &post, nil
}

func (r *repository) GetListingByID(
	ctx context.Context,
	id string,
) (*Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM posts p
		JOIN stores s ON s.id = p.store_id
		WHERE p.id = $1`,
		postColumns, storeSummaryColumns)

	var listing Listing
	err := r.db.GetContext(ctx, &listing, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get listing: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	return &listing, nil
}

func (r *repository) Update(ctx context.Context, post *Post) error {
	query := `
		UPDATE posts
		SET title = $2, description = $3, category = $4, categories = $5,
		    price_original = $6, price_sale = $7, images = $8, buy_url = $9,
		    starts_at = $10, ends_at = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &post.UpdatedAt, query,
		post.ID,
		post.Title,
		post.Description,
		post.Category,
		post.Categories,
		post.PriceOriginal,
		post.PriceSale,
		post.Images,
		post.BuyURL,
		post.StartsAt,
		post.EndsAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update post: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete post: %w", core.ErrNotFound)
	}

	return nil
}

// ListAll fetches every post with its store summary. Filtering, ban
// removal, and ordering happen in the Rank pipeline so the business rules
// stay in one testable place.
func (r *repository) ListAll(ctx context.Context) ([]Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM posts p
		JOIN stores s ON s.id = p.store_id`,
		postColumns, storeSummaryColumns)

	var listings []Listing
	if err := r.db.SelectContext(ctx, &listings, query); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return listings, nil
}

// CountActive counts the posts that occupy quota slots: end date absent or
// in the future. Expired posts stop counting even when not deleted.
func (r *repository) CountActive(
	ctx context.Context,
	storeID string,
	now time.Time,
) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM posts
		WHERE store_id = $1
		  AND (ends_at IS NULL OR ends_at > $2)`

	var count int
	if err := r.db.GetContext(ctx, &count, query, storeID, now); err != nil {
		return 0, fmt.Errorf("count active posts: %w", err)
	}

	return count, nil
}

func (r *repository) IncrementViewCount(
	ctx context.Context,
	id string,
) error {
	query := `
		UPDATE posts
		SET view_count = view_count + 1
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}

	return nil
}
