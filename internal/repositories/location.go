package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/psiarze/internal/models"
)

const locationColumns = `id, seq, user_id, lat, lng, is_sharing, created_at`

// LocationReadRepository handles location snapshot reads
type LocationReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLocationReadRepository(db *sqlx.DB, txGetter TxGetter) *LocationReadRepository {
	return &LocationReadRepository{db: db, txGetter: txGetter}
}

// LatestSharing returns, for each of userIDs, the newest snapshot joined with the
// username, keeping only users whose newest snapshot is sharing. Result is sorted by username.
func (r *LocationReadRepository) LatestSharing(ctx context.Context, userIDs []uuid.UUID) ([]models.LocationView, error) {
	views := []models.LocationView{}
	if len(userIDs) == 0 {
		return views, nil
	}

	const query = `
		SELECT l.user_id, u.username, l.lat, l.lng, l.is_sharing, l.created_at
		FROM (
			SELECT DISTINCT ON (user_id) user_id, lat, lng, is_sharing, created_at
			FROM user_locations
			WHERE user_id = ANY($1::uuid[])
			ORDER BY user_id, seq DESC
		) l
		JOIN users u ON u.id = l.user_id
		WHERE l.is_sharing
		ORDER BY u.username
	`
	args := []any{uuidStrings(userIDs)}

	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &views, query, args...)
	logQuery(query, args, len(views), err)
	if err != nil {
		return nil, mapError(err)
	}
	return views, nil
}

// LocationWriteRepository handles location snapshot writes
type LocationWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLocationWriteRepository(db *sqlx.DB, txGetter TxGetter) *LocationWriteRepository {
	return &LocationWriteRepository{db: db, txGetter: txGetter}
}

// Insert appends a snapshot. Earlier snapshots are kept.
func (r *LocationWriteRepository) Insert(ctx context.Context, userID uuid.UUID, lat, lng float64, isSharing bool) (*models.LocationDB, error) {
	const query = `
		INSERT INTO user_locations (id, user_id, lat, lng, is_sharing, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + locationColumns

	args := []any{uuid.New(), userID, lat, lng, isSharing}

	var loc models.LocationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &loc, query, args...)
	logQuery(query, args, loc.Seq, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &loc, nil
}
