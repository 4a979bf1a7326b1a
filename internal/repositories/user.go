package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JP-maker/gamegauge-api/internal/models"
	"github.com/jmoiron/sqlx"
)

const userColumns = `id, username, email, password_hash, email_verified, verification_token,
	reset_password_token, reset_token_expires_at, created_at, updated_at`

// UserReadRepository looks users up by their unique keys.
// Every lookup returns (nil, nil) when no row matches.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email, email)
}

func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username, username)
}

func (r *UserReadRepository) GetByResetToken(ctx context.Context, token string) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE reset_password_token = $1`, token, redacted)
}

func (r *UserReadRepository) GetByVerificationToken(ctx context.Context, token string) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE verification_token = $1`, token, redacted)
}

// redacted stands in for secret lookup keys in the query log.
const redacted = "[redacted]"

// getOne runs a single-row lookup by arg; logged replaces arg in the query log.
func (r *UserReadRepository) getOne(ctx context.Context, query, arg, logged string) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logQuery(ctx, query, []any{logged}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository persists user records.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts user and fills in the generated id and timestamps.
// A unique violation is returned as *models.DuplicateKeyError.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (username, email, password_hash, email_verified, verification_token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	args := []any{user.Username, user.Email, user.PasswordHash, user.EmailVerified, user.VerificationToken}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	logQuery(ctx, query, []any{user.Username, user.Email}, user.ID, err)

	if err != nil {
		return duplicateKey(err)
	}
	return nil
}

// Update saves every mutable column of user.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) error {
	const query = `
		UPDATE users
		SET username = $2, email = $3, password_hash = $4, email_verified = $5,
		    verification_token = $6, reset_password_token = $7, reset_token_expires_at = $8,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	args := []any{
		user.ID, user.Username, user.Email, user.PasswordHash, user.EmailVerified,
		user.VerificationToken, user.ResetPasswordToken, user.ResetTokenExpiresAt,
	}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&user.UpdatedAt)

	logQuery(ctx, query, []any{user.ID, user.Username, user.Email}, user.UpdatedAt, err)

	if err != nil {
		return duplicateKey(err)
	}
	return nil
}

func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, []any{id}, rowsAffected, err)

	return err
}
