package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"focusflow/internal/modules/session/domain"
	sessionout "focusflow/internal/modules/session/port/out"
	apperrors "focusflow/internal/platform/errors"
	"focusflow/internal/platform/sqlitedb"
)

const sessionColumns = `id, user_id, start_time, end_time, work_duration, break_duration, title, status, interruptions, abort_reason`

var errSessionNotFound = apperrors.New(apperrors.ErrNotFound, "Session not found")

type SQLiteSessionStore struct {
	db *sql.DB
}

func NewSQLiteSessionStore(db *sql.DB) sessionout.SessionStore {
	return &SQLiteSessionStore{db: db}
}

func (s *SQLiteSessionStore) Create(ctx context.Context, session domain.Session) error {
	const stmt = `INSERT INTO sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, stmt,
		session.ID,
		session.UserID,
		sqlitedb.FormatTime(session.StartTime),
		sqlitedb.NullTime(session.EndTime),
		session.WorkDuration,
		session.BreakDuration,
		session.Title,
		string(session.Status),
		session.Interruptions,
		session.AbortReason,
	)
	if err != nil {
		return fmt.Errorf("%w: insert session: %w", apperrors.ErrStore, err)
	}
	return nil
}

func (s *SQLiteSessionStore) Complete(ctx context.Context, userID, sessionID string, endTime time.Time) (domain.Session, error) {
	return s.updateOne(ctx, userID, sessionID,
		`UPDATE sessions SET end_time = ?, status = ? WHERE id = ? AND user_id = ?`,
		sqlitedb.FormatTime(endTime), string(domain.StatusCompleted), sessionID, userID,
	)
}

func (s *SQLiteSessionStore) Abort(ctx context.Context, userID, sessionID string, endTime time.Time, reason string) (domain.Session, error) {
	return s.updateOne(ctx, userID, sessionID,
		`UPDATE sessions SET end_time = ?, status = ?, abort_reason = ? WHERE id = ? AND user_id = ?`,
		sqlitedb.FormatTime(endTime), string(domain.StatusAborted), reason, sessionID, userID,
	)
}

func (s *SQLiteSessionStore) IncrementInterruptions(ctx context.Context, userID, sessionID string) (domain.Session, error) {
	return s.updateOne(ctx, userID, sessionID,
		`UPDATE sessions SET interruptions = interruptions + 1 WHERE id = ? AND user_id = ?`,
		sessionID, userID,
	)
}

func (s *SQLiteSessionStore) FindRunning(ctx context.Context, userID string) (domain.Session, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE user_id = ? AND status = ? ORDER BY start_time DESC LIMIT 1`,
		userID, string(domain.StatusRunning),
	)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("%w: find running session: %w", apperrors.ErrStore, err)
	}
	return session, true, nil
}

func (s *SQLiteSessionStore) ListByUser(ctx context.Context, userID string) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE user_id = ? ORDER BY start_time ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list sessions: %w", apperrors.ErrStore, err)
	}
	defer rows.Close()

	out := []domain.Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan session: %w", apperrors.ErrStore, err)
		}
		out = append(out, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate sessions: %w", apperrors.ErrStore, err)
	}
	return out, nil
}

// updateOne runs an owner-scoped update and reads the record back in the
// same transaction.
func (s *SQLiteSessionStore) updateOne(ctx context.Context, userID, sessionID, stmt string, args ...any) (domain.Session, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: begin: %w", apperrors.ErrStore, err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, stmt, args...)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: update session: %w", apperrors.ErrStore, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: update session: %w", apperrors.ErrStore, err)
	}
	if affected == 0 {
		return domain.Session{}, errSessionNotFound
	}
	row := tx.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = ? AND user_id = ?`, sessionID, userID)
	session, err := scanSession(row)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: reload session: %w", apperrors.ErrStore, err)
	}
	if err := tx.Commit(); err != nil {
		return domain.Session{}, fmt.Errorf("%w: commit: %w", apperrors.ErrStore, err)
	}
	return session, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (domain.Session, error) {
	var (
		session   domain.Session
		startTime string
		endTime   sql.NullString
		status    string
	)
	if err := row.Scan(
		&session.ID,
		&session.UserID,
		&startTime,
		&endTime,
		&session.WorkDuration,
		&session.BreakDuration,
		&session.Title,
		&status,
		&session.Interruptions,
		&session.AbortReason,
	); err != nil {
		return domain.Session{}, err
	}
	start, err := sqlitedb.ParseTime(startTime)
	if err != nil {
		return domain.Session{}, err
	}
	end, err := sqlitedb.ParseNullTime(endTime)
	if err != nil {
		return domain.Session{}, err
	}
	session.StartTime = start
	session.EndTime = end
	session.Status = domain.Status(status)
	return session, nil
}
