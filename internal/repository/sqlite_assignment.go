package repository

import (
	"context"
	"fmt"

	"github.com/martagraells/extraplan/internal/db"
)

// SQLiteAssignmentRepo implements AssignmentRepo over a SQLite connection
// or transaction.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssignmentRepo creates a new SQLiteAssignmentRepo.
func NewSQLiteAssignmentRepo(conn db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: conn}
}

// Add appends the child to the activity's list. The position counter keeps
// list order stable across exports. Adding an existing pair is a no-op.
func (r *SQLiteAssignmentRepo) Add(ctx context.Context, activityID, childID string) error {
	query := `INSERT OR IGNORE INTO assignments (activity_id, child_id, position)
		VALUES (?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM assignments WHERE activity_id = ?))`
	if _, err := r.db.ExecContext(ctx, query, activityID, childID, activityID); err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) Remove(ctx context.Context, activityID, childID string) error {
	query := `DELETE FROM assignments WHERE activity_id = ? AND child_id = ?`
	if _, err := r.db.ExecContext(ctx, query, activityID, childID); err != nil {
		return fmt.Errorf("deleting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) Exists(ctx context.Context, activityID, childID string) (bool, error) {
	query := `SELECT COUNT(*) FROM assignments WHERE activity_id = ? AND child_id = ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, activityID, childID).Scan(&count); err != nil {
		return false, fmt.Errorf("checking assignment: %w", err)
	}
	return count > 0, nil
}

// ListAll returns the full assignment map, each list in stored order.
func (r *SQLiteAssignmentRepo) ListAll(ctx context.Context) (map[string][]string, error) {
	query := `SELECT activity_id, child_id FROM assignments ORDER BY activity_id, position, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	assignments := make(map[string][]string)
	for rows.Next() {
		var activityID, childID string
		if err := rows.Scan(&activityID, &childID); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		assignments[activityID] = append(assignments[activityID], childID)
	}
	return assignments, rows.Err()
}

func (r *SQLiteAssignmentRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assignments`); err != nil {
		return fmt.Errorf("clearing assignments: %w", err)
	}
	return nil
}
