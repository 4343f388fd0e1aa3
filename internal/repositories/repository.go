package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/psiarze/internal/logger"
)

// Unique constraint names declared by the schema migrations.
const (
	ConstraintUsersEmail        = "users_email_key"
	ConstraintUsersUsername     = "users_username_key"
	ConstraintFriendRequestPair = "friend_requests_pair_key"
	ConstraintRoomMember        = "chat_room_members_room_user_key"
)

const uniqueViolationCode = "23505"

var (
	// ErrNotFound is returned when a query matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrUniqueViolation matches every *UniqueViolationError.
	ErrUniqueViolation = errors.New("unique constraint violation")
)

// UniqueViolationError reports which unique constraint rejected a write.
type UniqueViolationError struct {
	Constraint string
}

func (e *UniqueViolationError) Error() string {
	return "unique constraint violation: " + e.Constraint
}

// Is makes errors.Is(err, ErrUniqueViolation) hold.
func (e *UniqueViolationError) Is(target error) bool {
	return target == ErrUniqueViolation
}

// IsUniqueViolation reports whether err is a violation of constraint.
// An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var uv *UniqueViolationError
	if !errors.As(err, &uv) {
		return false
	}
	return constraint == "" || uv.Constraint == constraint
}

// TxGetter returns the transaction of the current unit of work, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return &UniqueViolationError{Constraint: pgErr.ConstraintName}
	}
	return err
}

// logQuery logs a query in a single line with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
