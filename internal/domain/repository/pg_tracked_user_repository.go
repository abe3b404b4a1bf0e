package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"leetdeck/internal/common"
	"leetdeck/internal/domain/model"
)

type pgTrackedUserRepository struct {
	db  *sql.DB
	key string
}

// NewPgTrackedUserRepository stores the tracked-user slot in a single-row
// postgres table, for deployments that already run postgres.
func NewPgTrackedUserRepository(ctx context.Context, db *sql.DB, key string) (TrackedUserRepository, error) {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS slots (
		key     TEXT PRIMARY KEY,
		payload BYTEA NOT NULL
	)`)
	if err != nil {
		return nil, common.Errorf("pgTrackedUserRepository: create slots table: %w", err)
	}
	return &pgTrackedUserRepository{db: db, key: key}, nil
}

func (r *pgTrackedUserRepository) Load(ctx context.Context) ([]model.UserRecord, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM slots WHERE key = $1`, r.key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, common.Errorf("pgTrackedUserRepository.Load: %w", err)
	}

	var users []model.UserRecord
	if err := json.Unmarshal(payload, &users); err != nil {
		return nil, common.Errorf("pgTrackedUserRepository.Load: decode slot %q: %w", r.key, err)
	}
	return users, nil
}

func (r *pgTrackedUserRepository) Save(ctx context.Context, users []model.UserRecord) error {
	payload, err := json.Marshal(users)
	if err != nil {
		return common.Errorf("pgTrackedUserRepository.Save: encode slot %q: %w", r.key, err)
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO slots (key, payload) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload`, r.key, payload)
	if err != nil {
		return common.Errorf("pgTrackedUserRepository.Save: %w", err)
	}
	return nil
}
