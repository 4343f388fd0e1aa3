package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/psiarze/internal/models"
)

const friendRequestColumns = `id, from_user_id, to_user_id, status, created_at`

// FriendRequestReadRepository handles friend request reads and friendship queries.
// Accepted requests are the single source of the friend graph.
type FriendRequestReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFriendRequestReadRepository(db *sqlx.DB, txGetter TxGetter) *FriendRequestReadRepository {
	return &FriendRequestReadRepository{db: db, txGetter: txGetter}
}

// GetByIDForUpdate returns the request id or ErrNotFound, holding a row lock
// until the transaction ends.
func (r *FriendRequestReadRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.FriendRequestDB, error) {
	const query = `SELECT ` + friendRequestColumns + ` FROM friend_requests WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

// FindBetween returns the request between a and b in either direction, whatever its status.
func (r *FriendRequestReadRepository) FindBetween(ctx context.Context, a, b uuid.UUID) (*models.FriendRequestDB, error) {
	const query = `
		SELECT ` + friendRequestColumns + `
		FROM friend_requests
		WHERE (from_user_id = $1 AND to_user_id = $2)
		   OR (from_user_id = $2 AND to_user_id = $1)
		LIMIT 1
	`
	return r.getOne(ctx, query, a, b)
}

func (r *FriendRequestReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.FriendRequestDB, error) {
	var req models.FriendRequestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &req, query, args...)
	logQuery(query, args, req.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &req, nil
}

// ListForUser returns every request sent or received by userID, newest first.
func (r *FriendRequestReadRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.FriendRequestDB, error) {
	const query = `
		SELECT ` + friendRequestColumns + `
		FROM friend_requests
		WHERE from_user_id = $1 OR to_user_id = $1
		ORDER BY created_at DESC, id
	`

	reqs := []models.FriendRequestDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &reqs, query, userID)
	logQuery(query, []any{userID}, len(reqs), err)
	if err != nil {
		return nil, mapError(err)
	}
	return reqs, nil
}

// AreFriends reports whether an accepted request links a and b.
func (r *FriendRequestReadRepository) AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM friend_requests
			WHERE status = 'accepted'
			  AND ((from_user_id = $1 AND to_user_id = $2)
			    OR (from_user_id = $2 AND to_user_id = $1))
		)
	`

	var ok bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &ok, query, a, b)
	logQuery(query, []any{a, b}, ok, err)
	if err != nil {
		return false, mapError(err)
	}
	return ok, nil
}

// ListFriendIDs returns the ids of everyone with an accepted request to or from userID.
func (r *FriendRequestReadRepository) ListFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT CASE WHEN from_user_id = $1 THEN to_user_id ELSE from_user_id END AS friend_id
		FROM friend_requests
		WHERE status = 'accepted'
		  AND (from_user_id = $1 OR to_user_id = $1)
	`

	ids := []uuid.UUID{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ids, query, userID)
	logQuery(query, []any{userID}, len(ids), err)
	if err != nil {
		return nil, mapError(err)
	}
	return ids, nil
}

// FriendRequestWriteRepository handles friend request write operations
type FriendRequestWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFriendRequestWriteRepository(db *sqlx.DB, txGetter TxGetter) *FriendRequestWriteRepository {
	return &FriendRequestWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a pending request. A second request for the same unordered pair
// fails with a *UniqueViolationError on ConstraintFriendRequestPair.
func (r *FriendRequestWriteRepository) Create(ctx context.Context, fromUserID, toUserID uuid.UUID) (*models.FriendRequestDB, error) {
	const query = `
		INSERT INTO friend_requests (id, from_user_id, to_user_id, status, created_at)
		VALUES ($1, $2, $3, 'pending', NOW())
		RETURNING ` + friendRequestColumns

	args := []any{uuid.New(), fromUserID, toUserID}

	var req models.FriendRequestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &req, query, args...)
	logQuery(query, args, req.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &req, nil
}

// UpdateStatus moves a pending request to status. ErrNotFound means the request
// does not exist or is no longer pending.
func (r *FriendRequestWriteRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.FriendRequestDB, error) {
	const query = `
		UPDATE friend_requests
		SET status = $2
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + friendRequestColumns

	var req models.FriendRequestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &req, query, id, status)
	logQuery(query, []any{id, status}, req.Status, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &req, nil
}
