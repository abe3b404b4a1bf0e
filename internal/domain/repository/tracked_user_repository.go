package repository

import (
	"context"

	"leetdeck/internal/domain/model"
)

// TrackedUserRepository persists the full tracked-user list as one JSON array
// under a single named slot. Load is called once at startup; Save overwrites
// the whole slot after every mutation. The service layer is the only writer.
type TrackedUserRepository interface {
	Load(ctx context.Context) ([]model.UserRecord, error)
	Save(ctx context.Context, users []model.UserRecord) error
}
