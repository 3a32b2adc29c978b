package readstore

import (
	"context"

	"oficina-criativa/internal/infra"
	"oficina-criativa/internal/pkg/ptr"
	"oficina-criativa/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, role, last_login_at
		FROM users
		WHERE id = $1
	`
	var (
		v         queries.AuthorizedUserView
		lastLogin pgtype.Timestamptz
	)
	if err := s.pool.QueryRow(ctx, query, id).Scan(&v.ID, &v.Email, &v.Role, &lastLogin); err != nil {
		return nil, infra.WrapRepoErr("failed to read user", err)
	}
	v.LastLogin = ptr.TimeFromPgtype(lastLogin)
	return &v, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, role, last_login_at, COALESCE(password_hash, '')
		FROM users
		WHERE email = $1
	`
	var (
		v         queries.AuthorizedUserView
		lastLogin pgtype.Timestamptz
		hash      string
	)
	if err := s.pool.QueryRow(ctx, query, email).Scan(&v.ID, &v.Email, &v.Role, &lastLogin, &hash); err != nil {
		return nil, "", infra.WrapRepoErr("failed to read user", err)
	}
	v.LastLogin = ptr.TimeFromPgtype(lastLogin)
	return &v, hash, nil
}
