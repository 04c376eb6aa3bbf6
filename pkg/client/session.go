package client

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const (
	keyToken   = "token"
	keyAccount = "user"
)

// Session is the client's view of an authenticated login: the raw bearer
// token plus the account returned by the login exchange. Both fields are
// zero when logged out.
type Session struct {
	Token   string
	Account *Account
}

// Authenticated reports whether both token and account are present. Either
// one missing means logged out.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.Account != nil
}

// SessionStore persists the session in a local SQLite database so it
// survives process restarts. Token and account are written inside a single
// transaction; a crash cannot leave one persisted without the other.
type SessionStore struct {
	db *sql.DB
}

// OpenSessionStore opens (creating if needed) the session database at path.
func OpenSessionStore(path string) (*SessionStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS session (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init session store: %w", err)
	}
	return &SessionStore{db: db}, nil
}

func (s *SessionStore) Close() error {
	return s.db.Close()
}

// Load returns the persisted session. A missing key or an undecodable
// account yields a logged-out session, not an error.
func (s *SessionStore) Load(ctx context.Context) (Session, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM session WHERE key IN (?, ?)`, keyToken, keyAccount)
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, 2)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return Session{}, fmt.Errorf("load session: %w", err)
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}

	tok, okTok := values[keyToken]
	raw, okAcc := values[keyAccount]
	if !okTok || !okAcc {
		return Session{}, nil
	}

	var account Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return Session{}, nil
	}
	return Session{Token: tok, Account: &account}, nil
}

// Save persists token and account atomically.
func (s *SessionStore) Save(ctx context.Context, token string, account *Account) error {
	raw, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("encode account: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const upsert = `INSERT INTO session (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := tx.ExecContext(ctx, upsert, keyToken, token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, keyAccount, string(raw)); err != nil {
		return fmt.Errorf("save session account: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes both persisted values.
func (s *SessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`, keyToken, keyAccount); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
