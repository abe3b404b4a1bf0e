package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"leetdeck/internal/common"
	"leetdeck/internal/domain/model"
)

type sqliteTrackedUserRepository struct {
	db  *sql.DB
	key string
}

// NewSQLiteTrackedUserRepository stores the tracked-user slot in a local
// sqlite file, the default backend for single-machine installs. The slot
// table is created on first use.
func NewSQLiteTrackedUserRepository(ctx context.Context, db *sql.DB, key string) (TrackedUserRepository, error) {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS slots (
		key     TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`)
	if err != nil {
		return nil, common.Errorf("sqliteTrackedUserRepository: create slots table: %w", err)
	}
	return &sqliteTrackedUserRepository{db: db, key: key}, nil
}

func (r *sqliteTrackedUserRepository) Load(ctx context.Context) ([]model.UserRecord, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM slots WHERE key = ?`, r.key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, common.Errorf("sqliteTrackedUserRepository.Load: %w", err)
	}

	var users []model.UserRecord
	if err := json.Unmarshal(payload, &users); err != nil {
		return nil, common.Errorf("sqliteTrackedUserRepository.Load: decode slot %q: %w", r.key, err)
	}
	return users, nil
}

func (r *sqliteTrackedUserRepository) Save(ctx context.Context, users []model.UserRecord) error {
	payload, err := json.Marshal(users)
	if err != nil {
		return common.Errorf("sqliteTrackedUserRepository.Save: encode slot %q: %w", r.key, err)
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO slots (key, payload) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET payload = excluded.payload`, r.key, payload)
	if err != nil {
		return common.Errorf("sqliteTrackedUserRepository.Save: %w", err)
	}
	return nil
}
