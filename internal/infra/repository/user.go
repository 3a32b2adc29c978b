package repository

import (
	"context"

	"oficina-criativa/internal/domain/user"
	"oficina-criativa/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Upsert inserts the candidate on first login and returns the stored
// id and role either way. Roles are never downgraded here: an admin
// logging in through the magic link stays admin.
func (r *UserRepository) Upsert(ctx context.Context, candidate *user.User) (uuid.UUID, user.Role, error) {
	const query = `
		INSERT INTO users (id, email, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, role
	`
	var (
		id      uuid.UUID
		rawRole string
	)
	row := r.pool.QueryRow(ctx, query, candidate.ID(), candidate.Email().Value(), candidate.Role().String())
	if err := row.Scan(&id, &rawRole); err != nil {
		return uuid.Nil, "", infra.WrapRepoErr("failed to upsert user", err)
	}

	role, err := user.NewRole(rawRole)
	if err != nil {
		return uuid.Nil, "", infra.WrapRepoErr("stored role is invalid", err)
	}

	return id, role, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE users SET last_login_at = now() WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
