package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"focusflow/internal/modules/account/domain"
	accountout "focusflow/internal/modules/account/port/out"
	apperrors "focusflow/internal/platform/errors"
	"focusflow/internal/platform/sqlitedb"
)

type SQLiteAccountStore struct {
	db *sql.DB
}

func NewSQLiteAccountStore(db *sql.DB) accountout.AccountStore {
	return &SQLiteAccountStore{db: db}
}

func (s *SQLiteAccountStore) Create(ctx context.Context, account domain.Account) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (id, name, token_hash, created_at) VALUES (?, ?, ?, ?)`,
		account.ID, account.Name, account.TokenHash, sqlitedb.FormatTime(account.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("%w: insert account: %w", apperrors.ErrStore, err)
	}
	return nil
}

func (s *SQLiteAccountStore) FindByTokenHash(ctx context.Context, hash string) (domain.Account, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, token_hash, created_at FROM accounts WHERE token_hash = ?`, hash)
	account, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Account{}, false, nil
	}
	if err != nil {
		return domain.Account{}, false, fmt.Errorf("%w: find account: %w", apperrors.ErrStore, err)
	}
	return account, true, nil
}

func (s *SQLiteAccountStore) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, token_hash, created_at FROM accounts ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: list accounts: %w", apperrors.ErrStore, err)
	}
	defer rows.Close()
	out := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan account: %w", apperrors.ErrStore, err)
		}
		out = append(out, account)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (domain.Account, error) {
	var (
		account   domain.Account
		createdAt string
	)
	if err := row.Scan(&account.ID, &account.Name, &account.TokenHash, &createdAt); err != nil {
		return domain.Account{}, err
	}
	ts, err := sqlitedb.ParseTime(createdAt)
	if err != nil {
		return domain.Account{}, err
	}
	account.CreatedAt = ts
	return account, nil
}
