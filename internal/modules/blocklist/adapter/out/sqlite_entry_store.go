package out

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"focusflow/internal/modules/blocklist/domain"
	blocklistout "focusflow/internal/modules/blocklist/port/out"
	apperrors "focusflow/internal/platform/errors"
	"focusflow/internal/platform/sqlitedb"
)

const entryColumns = `id, user_id, type, value, created_at`

type SQLiteEntryStore struct {
	db *sql.DB
}

func NewSQLiteEntryStore(db *sql.DB) blocklistout.EntryStore {
	return &SQLiteEntryStore{db: db}
}

func (s *SQLiteEntryStore) ListByUser(ctx context.Context, userID string) ([]domain.Entry, error) {
	return s.query(ctx, `SELECT `+entryColumns+` FROM blocklists WHERE user_id = ? ORDER BY created_at ASC, rowid ASC`, userID)
}

func (s *SQLiteEntryStore) FindByValues(ctx context.Context, userID string, values []string) ([]domain.Entry, error) {
	if len(values) == 0 {
		return []domain.Entry{}, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	args := make([]any, 0, len(values)+1)
	args = append(args, userID)
	for _, v := range values {
		args = append(args, v)
	}
	return s.query(ctx,
		`SELECT `+entryColumns+` FROM blocklists WHERE user_id = ? AND value IN (`+placeholders+`) ORDER BY created_at ASC, rowid ASC`,
		args...,
	)
}

func (s *SQLiteEntryStore) InsertMany(ctx context.Context, entries []domain.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", apperrors.ErrStore, err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO blocklists (`+entryColumns+`) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare insert: %w", apperrors.ErrStore, err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.ID, e.UserID, string(e.Type), e.Value, sqlitedb.FormatTime(e.CreatedAt)); err != nil {
			return fmt.Errorf("%w: insert blocklist entry %s: %w", apperrors.ErrStore, e.Value, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", apperrors.ErrStore, err)
	}
	return nil
}

func (s *SQLiteEntryStore) Delete(ctx context.Context, userID, entryID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM blocklists WHERE id = ? AND user_id = ?`, entryID, userID)
	if err != nil {
		return false, fmt.Errorf("%w: delete blocklist entry: %w", apperrors.ErrStore, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: delete blocklist entry: %w", apperrors.ErrStore, err)
	}
	return affected > 0, nil
}

func (s *SQLiteEntryStore) query(ctx context.Context, query string, args ...any) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query blocklist: %w", apperrors.ErrStore, err)
	}
	defer rows.Close()

	out := []domain.Entry{}
	for rows.Next() {
		var (
			e         domain.Entry
			entryType string
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &entryType, &e.Value, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scan blocklist entry: %w", apperrors.ErrStore, err)
		}
		ts, err := sqlitedb.ParseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrStore, err)
		}
		e.Type = domain.EntryType(entryType)
		e.CreatedAt = ts
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate blocklist: %w", apperrors.ErrStore, err)
	}
	return out, nil
}
