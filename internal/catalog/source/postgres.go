package source

import (
	"context"
	"fmt"

	"github.com/atomicstack/menu-browser/internal/catalog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const menuQuery = `
	SELECT id, name, description, price, category, image, featured
	FROM menu_items
	ORDER BY position, id`

// querier is satisfied by *pgxpool.Pool and test fakes.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Postgres reads entries from the menu_items table.
type Postgres struct {
	db    querier
	close func()
}

// NewPostgres wraps an existing pool or connection.
func NewPostgres(db querier) *Postgres {
	return &Postgres{db: db}
}

// NewPostgresFromDSN opens a pool for dsn. The pool is released by Close.
func NewPostgresFromDSN(ctx context.Context, dsn string) (*Postgres, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database pool: %w", err)
	}
	return &Postgres{db: pool, close: pool.Close}, nil
}

func (p *Postgres) Name() string { return string(KindPostgres) }

// Close releases the pool when the source owns one.
func (p *Postgres) Close() {
	if p.close != nil {
		p.close()
	}
}

func (p *Postgres) Load(ctx context.Context) ([]catalog.Entry, error) {
	rows, err := p.db.Query(ctx, menuQuery)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	entries := []catalog.Entry{}
	for rows.Next() {
		var (
			e           catalog.Entry
			description *string
			image       *string
			featured    *bool
		)
		if err := rows.Scan(&e.ID, &e.Name, &description, &e.Price, &e.Category, &image, &featured); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		if description != nil {
			e.Description = *description
		}
		if image != nil {
			e.Image = *image
		}
		if featured != nil {
			e.Featured = *featured
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read menu items: %w", err)
	}
	return entries, nil
}
