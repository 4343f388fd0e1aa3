package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/psiarze/internal/models"
)

const userColumns = `id, email, username, password_hash, created_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with id or ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmail returns the user with email or ErrNotFound.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// GetByUsername returns the user with username or ErrNotFound.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)
	logQuery(query, []any{arg}, user.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// Search returns up to limit profiles whose username contains search (case-insensitive),
// sorted by username, excluding excludeID.
func (r *UserReadRepository) Search(ctx context.Context, excludeID uuid.UUID, search string, limit int) ([]models.UserProfile, error) {
	const query = `
		SELECT id, email, username, created_at
		FROM users
		WHERE id <> $1
		  AND ($2 = '' OR username ILIKE '%' || $2 || '%')
		ORDER BY username
		LIMIT $3
	`
	args := []any{excludeID, escapeLike(search), limit}

	profiles := []models.UserProfile{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &profiles, query, args...)
	logQuery(query, args, len(profiles), err)
	if err != nil {
		return nil, mapError(err)
	}
	return profiles, nil
}

// ListProfiles returns the profiles of ids sorted by username.
func (r *UserReadRepository) ListProfiles(ctx context.Context, ids []uuid.UUID) ([]models.UserProfile, error) {
	profiles := []models.UserProfile{}
	if len(ids) == 0 {
		return profiles, nil
	}

	const query = `
		SELECT id, email, username, created_at
		FROM users
		WHERE id = ANY($1::uuid[])
		ORDER BY username
	`
	args := []any{uuidStrings(ids)}

	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &profiles, query, args...)
	logQuery(query, args, len(profiles), err)
	if err != nil {
		return nil, mapError(err)
	}
	return profiles, nil
}

// GetUsernames resolves ids to usernames in one query. Unknown ids are absent from the map.
func (r *UserReadRepository) GetUsernames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	usernames := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return usernames, nil
	}

	const query = `SELECT id, username FROM users WHERE id = ANY($1::uuid[])`
	args := []any{uuidStrings(ids)}

	var rows []struct {
		ID       uuid.UUID `db:"id"`
		Username string    `db:"username"`
	}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, args...)
	logQuery(query, args, len(rows), err)
	if err != nil {
		return nil, mapError(err)
	}

	for _, row := range rows {
		usernames[row.ID] = row.Username
	}
	return usernames, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a user. Duplicate email or username yields a *UniqueViolationError.
func (r *UserWriteRepository) Create(ctx context.Context, email, username, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (id, email, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + userColumns

	id := uuid.New()
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, id, email, username, passwordHash)

	// password hash stays out of the log
	logQuery(query, []any{id, email, username}, user.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
