package database

import (
	"context"

	"github.com/Jsplashe/fridge-app-v2/internal/apperrors"
	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

// CreateUser inserts a new account with a pre-hashed password.
func (db *DB) CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error) {
	user := &models.User{}
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, password_hash, created_at
	`, email, passwordHash).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "user")
	}
	return user, nil
}

// GetUserByEmail retrieves an account for login.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := db.Pool.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at FROM users WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "user")
	}
	return user, nil
}

// GetUserByID retrieves an account by id.
func (db *DB) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	err := db.Pool.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, apperrors.FromPostgres(err, "user")
	}
	return user, nil
}
