package profile

import (
	"context"
	"database/sql"
	"fmt"
)

// Store reads identities. Implementations return (nil, nil) when nothing matches.
type Store interface {
	GetByID(ctx context.Context, id string) (*Identity, error)
	GetByAccountID(ctx context.Context, aid int64) (*Identity, error)
}

// Repository handles profile reads from Postgres
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new profile repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectProfile = `
	SELECT id, aid, edition,
	       pmc_nickname, pmc_side, pmc_level, pmc_member_category,
	       scav_nickname, scav_savage_lock_time
	FROM profiles
`

// GetByID retrieves a profile by its profile id, which is also the session id
func (r *Repository) GetByID(ctx context.Context, id string) (*Identity, error) {
	identity, err := scanIdentity(r.db.QueryRowContext(ctx, selectProfile+" WHERE id = $1", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return identity, nil
}

// GetByAccountID retrieves a profile by its account id
func (r *Repository) GetByAccountID(ctx context.Context, aid int64) (*Identity, error) {
	identity, err := scanIdentity(r.db.QueryRowContext(ctx, selectProfile+" WHERE aid = $1", aid))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile by aid: %w", err)
	}
	return identity, nil
}

func scanIdentity(row *sql.Row) (*Identity, error) {
	identity := &Identity{}
	err := row.Scan(
		&identity.ProfileID,
		&identity.AccountID,
		&identity.Edition,
		&identity.PMC.Nickname,
		&identity.PMC.Side,
		&identity.PMC.Level,
		&identity.PMC.MemberCategory,
		&identity.Scav.Nickname,
		&identity.Scav.SavageLockTime,
	)
	if err != nil {
		return nil, err
	}
	return identity, nil
}
