package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/psiarze/internal/models"
)

const messageColumns = `id, seq, room_id, sender_id, kind, text, created_at`

// ChatReadRepository handles chat room and message reads
type ChatReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewChatReadRepository(db *sqlx.DB, txGetter TxGetter) *ChatReadRepository {
	return &ChatReadRepository{db: db, txGetter: txGetter}
}

// FindRoomBetween returns the room whose members are exactly a and b.
func (r *ChatReadRepository) FindRoomBetween(ctx context.Context, a, b uuid.UUID) (*models.ChatRoomDB, error) {
	const query = `
		SELECT r.id, r.created_at
		FROM chat_rooms r
		JOIN chat_room_members ma ON ma.room_id = r.id AND ma.user_id = $1
		JOIN chat_room_members mb ON mb.room_id = r.id AND mb.user_id = $2
		WHERE (SELECT COUNT(*) FROM chat_room_members m WHERE m.room_id = r.id) = 2
		ORDER BY r.created_at
		LIMIT 1
	`

	var room models.ChatRoomDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &room, query, a, b)
	logQuery(query, []any{a, b}, room.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &room, nil
}

// ListRoomsForUser returns the rooms userID belongs to, newest first. Each room is
// named after the other member.
func (r *ChatReadRepository) ListRoomsForUser(ctx context.Context, userID uuid.UUID) ([]models.ChatRoomView, error) {
	const query = `
		SELECT r.id, r.created_at, COALESCE(u.username, '') AS name
		FROM chat_rooms r
		JOIN chat_room_members me ON me.room_id = r.id AND me.user_id = $1
		LEFT JOIN chat_room_members other ON other.room_id = r.id AND other.user_id <> $1
		LEFT JOIN users u ON u.id = other.user_id
		ORDER BY r.created_at DESC, r.id
	`

	rooms := []models.ChatRoomView{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rooms, query, userID)
	logQuery(query, []any{userID}, len(rooms), err)
	if err != nil {
		return nil, mapError(err)
	}
	return rooms, nil
}

// IsMember reports whether userID belongs to roomID.
func (r *ChatReadRepository) IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM chat_room_members WHERE room_id = $1 AND user_id = $2)`

	var ok bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &ok, query, roomID, userID)
	logQuery(query, []any{roomID, userID}, ok, err)
	if err != nil {
		return false, mapError(err)
	}
	return ok, nil
}

// ListMessages returns the messages of roomID in send order.
func (r *ChatReadRepository) ListMessages(ctx context.Context, roomID uuid.UUID) ([]models.ChatMessageDB, error) {
	const query = `
		SELECT ` + messageColumns + `
		FROM chat_messages
		WHERE room_id = $1
		ORDER BY created_at, seq
	`

	msgs := []models.ChatMessageDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &msgs, query, roomID)
	logQuery(query, []any{roomID}, len(msgs), err)
	if err != nil {
		return nil, mapError(err)
	}
	return msgs, nil
}

// ChatWriteRepository handles chat room and message writes
type ChatWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewChatWriteRepository(db *sqlx.DB, txGetter TxGetter) *ChatWriteRepository {
	return &ChatWriteRepository{db: db, txGetter: txGetter}
}

// LockPair takes a transaction-scoped advisory lock on the unordered pair {a, b}.
// Must run inside a unit of work.
func (r *ChatWriteRepository) LockPair(ctx context.Context, a, b uuid.UUID) error {
	const query = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

	key := pairKey(a, b)
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, key)
	logQuery(query, []any{key}, nil, err)
	return mapError(err)
}

// CreateRoom inserts an empty room.
func (r *ChatWriteRepository) CreateRoom(ctx context.Context) (*models.ChatRoomDB, error) {
	const query = `INSERT INTO chat_rooms (id, created_at) VALUES ($1, NOW()) RETURNING id, created_at`

	id := uuid.New()
	var room models.ChatRoomDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &room, query, id)
	logQuery(query, []any{id}, room.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &room, nil
}

// AddMember adds userID to roomID. Adding a member twice fails with a
// *UniqueViolationError on ConstraintRoomMember.
func (r *ChatWriteRepository) AddMember(ctx context.Context, roomID, userID uuid.UUID) error {
	const query = `INSERT INTO chat_room_members (id, room_id, user_id) VALUES ($1, $2, $3)`

	args := []any{uuid.New(), roomID, userID}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)
	return mapError(err)
}

// CreateMessage appends a message to roomID.
func (r *ChatWriteRepository) CreateMessage(ctx context.Context, roomID, senderID uuid.UUID, kind, text string) (*models.ChatMessageDB, error) {
	const query = `
		INSERT INTO chat_messages (id, room_id, sender_id, kind, text, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + messageColumns

	args := []any{uuid.New(), roomID, senderID, kind, text}

	var msg models.ChatMessageDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &msg, query, args...)
	logQuery(query, args[:4], msg.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &msg, nil
}

func pairKey(a, b uuid.UUID) string {
	lo, hi := a.String(), b.String()
	if hi < lo {
		lo, hi = hi, lo
	}
	return "chat:" + lo + ":" + hi
}
