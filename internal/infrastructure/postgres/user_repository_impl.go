package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abdrasaq14/payever-test/internal/domain/entity"
	"github.com/abdrasaq14/payever-test/internal/domain/repository"
	"github.com/abdrasaq14/payever-test/pkg/apperrors"
)

const (
	pgUniqueViolation  = "23505"
	pgInvalidTextInput = "22P02" // e.g. a path param that is not a uuid
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (first_name, email, avatar)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, u.FirstName, u.Email, u.Avatar)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.Wrap(apperrors.Validation, "email already exists", err)
		}
		return apperrors.Wrap(apperrors.Validation, "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, first_name, email, avatar, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)

	if err := row.Scan(&u.ID, &u.FirstName, &u.Email, &u.Avatar,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, notFoundOr(err)
	}
	return u, nil
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id string, filename *string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET avatar = $1, updated_at = now()
		WHERE id = $2
	`, filename, id)
	if err != nil {
		return notFoundOr(err)
	}
	if res.RowsAffected() == 0 {
		return apperrors.New(apperrors.NotFound, "user not found")
	}
	return nil
}

// notFoundOr maps no-rows and malformed-uuid errors to NotFound; a user with
// an id that cannot be a uuid does not exist either.
func notFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.Wrap(apperrors.NotFound, "user not found", err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextInput {
		return apperrors.Wrap(apperrors.NotFound, "user not found", err)
	}
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
