package readstore

import (
	"context"

	"lunchmate/internal/infra"
	"lunchmate/internal/pkg/pgconv"
	"lunchmate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) queries.UserReadStore {
	return &userReadStore{db: db}
}

func (s *userReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := s.db.QueryRow(ctx,
		`SELECT id, email, name, role, is_active FROM users WHERE id = $1`,
		id,
	).Scan(&view.ID, &view.Email, &view.Name, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}

func (s *userReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, email, name, role, is_active, password_hash FROM users WHERE email = $1`,
		email,
	).Scan(&view.ID, &view.Email, &view.Name, &view.Role, &view.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user", err)
	}
	return &view, passwordHash, nil
}
