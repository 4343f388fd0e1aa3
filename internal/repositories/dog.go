package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/psiarze/internal/models"
)

const dogColumns = `id, owner_id, name, breed, age, weight, created_at`

// DogReadRepository handles dog read operations
type DogReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDogReadRepository(db *sqlx.DB, txGetter TxGetter) *DogReadRepository {
	return &DogReadRepository{db: db, txGetter: txGetter}
}

// ListByOwner returns the owner's dogs, newest first.
func (r *DogReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.DogDB, error) {
	const query = `SELECT ` + dogColumns + ` FROM dogs WHERE owner_id = $1 ORDER BY created_at DESC, id`

	dogs := []models.DogDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &dogs, query, ownerID)
	logQuery(query, []any{ownerID}, len(dogs), err)
	if err != nil {
		return nil, mapError(err)
	}
	return dogs, nil
}

// GetOwned returns the dog id if it belongs to ownerID. A dog of another owner
// is reported as ErrNotFound.
func (r *DogReadRepository) GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*models.DogDB, error) {
	const query = `SELECT ` + dogColumns + ` FROM dogs WHERE id = $1 AND owner_id = $2`

	var dog models.DogDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &dog, query, id, ownerID)
	logQuery(query, []any{id, ownerID}, dog.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &dog, nil
}

// DogWriteRepository handles dog write operations
type DogWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDogWriteRepository(db *sqlx.DB, txGetter TxGetter) *DogWriteRepository {
	return &DogWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a dog for ownerID.
func (r *DogWriteRepository) Create(ctx context.Context, ownerID uuid.UUID, in models.DogInput) (*models.DogDB, error) {
	const query = `
		INSERT INTO dogs (id, owner_id, name, breed, age, weight, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + dogColumns

	args := []any{uuid.New(), ownerID, in.Name, in.Breed, in.Age, in.Weight}

	var dog models.DogDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &dog, query, args...)
	logQuery(query, args, dog.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &dog, nil
}

// Update stores the mutable fields of dog. Only the owner's row is touched.
func (r *DogWriteRepository) Update(ctx context.Context, dog *models.DogDB) (*models.DogDB, error) {
	const query = `
		UPDATE dogs
		SET name = $3, breed = $4, age = $5, weight = $6
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + dogColumns

	args := []any{dog.ID, dog.OwnerID, dog.Name, dog.Breed, dog.Age, dog.Weight}

	var updated models.DogDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)
	logQuery(query, args, updated.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

// Delete removes the owner's dog id. Returns ErrNotFound when nothing was deleted.
func (r *DogWriteRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const query = `DELETE FROM dogs WHERE id = $1 AND owner_id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, ownerID)
	var affected int64
	if err == nil {
		affected, err = res.RowsAffected()
	}
	logQuery(query, []any{id, ownerID}, affected, err)
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
