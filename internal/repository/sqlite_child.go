package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/martagraells/extraplan/internal/db"
	"github.com/martagraells/extraplan/internal/domain"
)

// SQLiteChildRepo implements ChildRepo over a SQLite connection or
// transaction.
type SQLiteChildRepo struct {
	db db.DBTX
}

// NewSQLiteChildRepo creates a new SQLiteChildRepo.
func NewSQLiteChildRepo(conn db.DBTX) *SQLiteChildRepo {
	return &SQLiteChildRepo{db: conn}
}

func (r *SQLiteChildRepo) Create(ctx context.Context, c *domain.Child) error {
	query := `INSERT INTO children (id, name, color, grade, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Color, string(c.Grade), c.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting child: %w", err)
	}
	return nil
}

func (r *SQLiteChildRepo) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	query := `SELECT id, name, color, grade, created_at FROM children WHERE id = ?`
	c, err := scanChild(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("child %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning child: %w", err)
	}
	return c, nil
}

// List returns the roster in insertion order, which drives display and
// report ordering throughout.
func (r *SQLiteChildRepo) List(ctx context.Context) ([]*domain.Child, error) {
	query := `SELECT id, name, color, grade, created_at FROM children ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing children: %w", err)
	}
	defer rows.Close()

	var children []*domain.Child
	for rows.Next() {
		c, err := scanChild(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning child: %w", err)
		}
		children = append(children, c)
	}
	return children, rows.Err()
}

// Delete removes the child; assignment rows follow via ON DELETE CASCADE.
func (r *SQLiteChildRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM children WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting child: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting child: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("child %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteChildRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM children`); err != nil {
		return fmt.Errorf("clearing children: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChild(row rowScanner) (*domain.Child, error) {
	var c domain.Child
	var grade, createdAt string
	if err := row.Scan(&c.ID, &c.Name, &c.Color, &grade, &createdAt); err != nil {
		return nil, err
	}
	c.Grade = domain.Grade(grade)
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	c.CreatedAt = t
	return &c, nil
}
