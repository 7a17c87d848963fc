package infra_postgres_user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	infra_pg_tx "github.com/ysn7199/yourmovies/core/internal/infra/postgres/tx"
	"github.com/ysn7199/yourmovies/core/internal/model"
)

const uniqueViolation = "23505"

type UserDB struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  []byte    `db:"password"`
	IsAdmin   bool      `db:"is_admin"`
	CreatedAt time.Time `db:"created_at"`
}

func (u *UserDB) ToDomain() model.User {
	return model.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Store(ctx context.Context, u model.User) error {
	query := `
		INSERT INTO users (id, username, email, password, is_admin)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := infra_pg_tx.ExecutorFrom(ctx, r.db).ExecContext(ctx, query,
		u.ID, u.Username, u.Email, u.Password, u.IsAdmin)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("user %s: %w", u.Email, model.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to store user: %w", err)
	}

	return nil
}

func (r *Repository) LoadByEmail(ctx context.Context, email string) (model.User, error) {
	query := `
		SELECT id, username, email, password, is_admin, created_at
		FROM users
		WHERE email = $1
	`
	return r.load(ctx, query, email)
}

func (r *Repository) LoadByID(ctx context.Context, ID uuid.UUID) (model.User, error) {
	query := `
		SELECT id, username, email, password, is_admin, created_at
		FROM users
		WHERE id = $1
	`
	return r.load(ctx, query, ID)
}

func (r *Repository) Exists(ctx context.Context, ID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := infra_pg_tx.ExecutorFrom(ctx, r.db).GetContext(ctx, &exists, query, ID); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *Repository) load(ctx context.Context, query string, arg interface{}) (model.User, error) {
	var userDB UserDB
	err := infra_pg_tx.ExecutorFrom(ctx, r.db).GetContext(ctx, &userDB, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, fmt.Errorf("user %v: %w", arg, model.ErrNotFound)
		}
		return model.User{}, fmt.Errorf("failed to load user: %w", err)
	}
	return userDB.ToDomain(), nil
}
