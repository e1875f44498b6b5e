package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/vominhduc11/dealerhub/internal/domain/errors"
	"github.com/vominhduc11/dealerhub/internal/domain/model"
	"github.com/vominhduc11/dealerhub/internal/domain/repository"
)

// dbPool is the subset of pgxpool.Pool the storage uses; tests substitute a
// pgxmock pool through it.
type dbPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (dbPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL. It persists the
// catalog mirror and dealer accounts; cart and order state never touch it.
type Storage struct {
	pool   dbPool
	logger *slog.Logger
}

type dealerRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Dealers() repository.DealerRepository {
	return &dealerRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS dealers (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            sku TEXT NOT NULL,
            category TEXT NOT NULL DEFAULT '',
            unit_price BIGINT NOT NULL,
            unit TEXT NOT NULL DEFAULT '',
            stock BIGINT NOT NULL DEFAULT 0,
            min_order_qty BIGINT NOT NULL DEFAULT 1,
            pack_size BIGINT NOT NULL DEFAULT 1,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	if _, err := s.pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_products_category ON products (category)`); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	return nil
}

// --- DealerRepository implementation ---

func (r *dealerRepository) Create(ctx context.Context, login, passwordHash string) (*model.Dealer, error) {
	const query = `INSERT INTO dealers (login, password_hash)
                   VALUES ($1, $2)
                   ON CONFLICT (login) DO NOTHING
                   RETURNING id, login, password_hash, created_at`

	var dealer model.Dealer
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash).
		Scan(&dealer.ID, &dealer.Login, &dealer.PasswordHash, &dealer.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &dealer, nil
}

func (r *dealerRepository) GetByLogin(ctx context.Context, login string) (*model.Dealer, error) {
	const query = `SELECT id, login, password_hash, created_at FROM dealers WHERE login=$1`
	return r.scanDealer(r.storage.pool.QueryRow(ctx, query, login))
}

func (r *dealerRepository) GetByID(ctx context.Context, id int64) (*model.Dealer, error) {
	const query = `SELECT id, login, password_hash, created_at FROM dealers WHERE id=$1`
	return r.scanDealer(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *dealerRepository) scanDealer(row pgx.Row) (*model.Dealer, error) {
	var dealer model.Dealer
	if err := row.Scan(&dealer.ID, &dealer.Login, &dealer.PasswordHash, &dealer.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &dealer, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, name, sku, category, unit_price, unit, stock, min_order_qty, pack_size
                   FROM products ORDER BY category, name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.UnitPrice, &p.Unit, &p.Stock, &p.MinOrderQty, &p.PackSize); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	const query = `SELECT id, name, sku, category, unit_price, unit, stock, min_order_qty, pack_size
                   FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.UnitPrice, &p.Unit, &p.Stock, &p.MinOrderQty, &p.PackSize)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Upsert(ctx context.Context, product model.Product) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `INSERT INTO products (id, name, sku, category, unit_price, unit, stock, min_order_qty, pack_size, updated_at)
                       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
                       ON CONFLICT (id) DO UPDATE
                       SET name = EXCLUDED.name,
                           sku = EXCLUDED.sku,
                           category = EXCLUDED.category,
                           unit_price = EXCLUDED.unit_price,
                           unit = EXCLUDED.unit,
                           stock = EXCLUDED.stock,
                           min_order_qty = EXCLUDED.min_order_qty,
                           pack_size = EXCLUDED.pack_size,
                           updated_at = NOW()`
		_, err := tx.Exec(ctx, query,
			product.ID, product.Name, product.SKU, product.Category,
			product.UnitPrice, product.Unit, product.Stock, product.MinOrderQty, product.PackSize)
		return err
	})
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
