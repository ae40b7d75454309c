package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/concierge/internal/db"
	"github.com/alexanderramin/concierge/internal/domain"
)

const exclusionColumns = `id, user_id, venue_name, category, reason, created_at`

// SQLiteExclusionRepo implements ExclusionRepo using a SQLite database.
type SQLiteExclusionRepo struct {
	db db.DBTX
}

// NewSQLiteExclusionRepo creates a new SQLiteExclusionRepo.
func NewSQLiteExclusionRepo(conn db.DBTX) *SQLiteExclusionRepo {
	return &SQLiteExclusionRepo{db: conn}
}

func (r *SQLiteExclusionRepo) Add(ctx context.Context, e *domain.VenueExclusion) (bool, error) {
	query := `INSERT OR IGNORE INTO venue_exclusions (id, user_id, venue_name, category, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		strings.TrimSpace(e.VenueName),
		string(e.Category),
		e.Reason,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("inserting exclusion: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteExclusionRepo) Find(ctx context.Context, userID, venueName string, category domain.Category) (*domain.VenueExclusion, error) {
	query := `SELECT ` + exclusionColumns + ` FROM venue_exclusions
		WHERE user_id = ? AND lower(venue_name) = lower(?) AND category = ?`
	row := r.db.QueryRowContext(ctx, query, userID, strings.TrimSpace(venueName), string(category))

	var e domain.VenueExclusion
	var cat, createdAt string
	err := row.Scan(&e.ID, &e.UserID, &e.VenueName, &cat, &e.Reason, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("venue exclusion: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning exclusion: %w", err)
	}
	e.Category = domain.Category(cat)
	if e.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *SQLiteExclusionRepo) ListByUser(ctx context.Context, userID string) ([]*domain.VenueExclusion, error) {
	query := `SELECT ` + exclusionColumns + ` FROM venue_exclusions
		WHERE user_id = ? ORDER BY category, lower(venue_name)`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing exclusions: %w", err)
	}
	defer rows.Close()

	var out []*domain.VenueExclusion
	for rows.Next() {
		var e domain.VenueExclusion
		var cat, createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.VenueName, &cat, &e.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning exclusion row: %w", err)
		}
		e.Category = domain.Category(cat)
		if e.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exclusions: %w", err)
	}
	return out, nil
}

func (r *SQLiteExclusionRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM venue_exclusions WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting exclusion: %w", err)
	}
	return requireRow(res, "venue exclusion")
}
