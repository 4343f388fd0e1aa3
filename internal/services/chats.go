package services

//go:generate mockgen -source=chats.go -destination=chats_mock.go -package=services

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sbilibin2017/psiarze/internal/models"
	"github.com/sbilibin2017/psiarze/internal/repositories"
)

const maxMessageLen = 4000

// ChatReader defines read operations for rooms and messages.
type ChatReader interface {
	FindRoomBetween(ctx context.Context, a, b uuid.UUID) (*models.ChatRoomDB, error)
	ListRoomsForUser(ctx context.Context, userID uuid.UUID) ([]models.ChatRoomView, error)
	IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error)
	ListMessages(ctx context.Context, roomID uuid.UUID) ([]models.ChatMessageDB, error)
}

// ChatWriter defines write operations for rooms and messages.
type ChatWriter interface {
	LockPair(ctx context.Context, a, b uuid.UUID) error
	CreateRoom(ctx context.Context) (*models.ChatRoomDB, error)
	AddMember(ctx context.Context, roomID, userID uuid.UUID) error
	CreateMessage(ctx context.Context, roomID, senderID uuid.UUID, kind, text string) (*models.ChatMessageDB, error)
}

// ChatService handles direct-message rooms between two users.
type ChatService struct {
	tx        Transactor
	users     UserReader
	reader    ChatReader
	writer    ChatWriter
	publisher *ActivityPublisher
}

// NewChatService creates a new ChatService.
func NewChatService(tx Transactor, users UserReader, reader ChatReader, writer ChatWriter, publisher *ActivityPublisher) *ChatService {
	return &ChatService{
		tx:        tx,
		users:     users,
		reader:    reader,
		writer:    writer,
		publisher: publisher,
	}
}

// CreateOrGetRoom returns the room of userID and otherID, creating it on first use.
func (s *ChatService) CreateOrGetRoom(ctx context.Context, userID, otherID uuid.UUID) (*models.ChatRoomView, error) {
	if userID == otherID {
		return nil, ErrSelfRoom
	}

	var (
		view    *models.ChatRoomView
		created bool
	)
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		other, err := s.users.GetByID(ctx, otherID)
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		// concurrent calls for the same pair queue here and see each other's room
		if err := s.writer.LockPair(ctx, userID, otherID); err != nil {
			return err
		}

		room, err := s.reader.FindRoomBetween(ctx, userID, otherID)
		if errors.Is(err, repositories.ErrNotFound) {
			room, err = s.createRoom(ctx, userID, otherID)
			created = err == nil
		}
		if err != nil {
			return err
		}

		view = &models.ChatRoomView{ID: room.ID, CreatedAt: room.CreatedAt, Name: other.Username}
		return nil
	})
	if err != nil {
		logFailure("failed to create or get room", err, "userID", userID, "otherID", otherID)
		return nil, err
	}

	if created {
		s.publisher.Publish(ctx, models.EventChatRoomCreated, userID, view.ID)
	}
	return view, nil
}

func (s *ChatService) createRoom(ctx context.Context, userID, otherID uuid.UUID) (*models.ChatRoomDB, error) {
	room, err := s.writer.CreateRoom(ctx)
	if err != nil {
		return nil, err
	}
	for _, member := range []uuid.UUID{userID, otherID} {
		err := s.writer.AddMember(ctx, room.ID, member)
		if repositories.IsUniqueViolation(err, repositories.ConstraintRoomMember) {
			return nil, ErrDuplicateMember
		}
		if err != nil {
			return nil, err
		}
	}
	return room, nil
}

// ListRooms returns the rooms userID belongs to, newest first.
func (s *ChatService) ListRooms(ctx context.Context, userID uuid.UUID) ([]models.ChatRoomView, error) {
	var rooms []models.ChatRoomView
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		rooms, err = s.reader.ListRoomsForUser(ctx, userID)
		return err
	})
	if err != nil {
		logFailure("failed to list rooms", err, "userID", userID)
		return nil, err
	}
	return rooms, nil
}

// ListMessages returns the messages of a room userID belongs to, oldest first.
// To a non-member the room does not exist.
func (s *ChatService) ListMessages(ctx context.Context, userID, roomID uuid.UUID) ([]models.ChatMessageDB, error) {
	var msgs []models.ChatMessageDB
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		ok, err := s.reader.IsMember(ctx, roomID, userID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRoomNotFound
		}
		msgs, err = s.reader.ListMessages(ctx, roomID)
		return err
	})
	if err != nil {
		logFailure("failed to list messages", err, "userID", userID, "roomID", roomID)
		return nil, err
	}
	return msgs, nil
}

// SendMessage appends a message from userID to roomID. An empty kind means text.
func (s *ChatService) SendMessage(ctx context.Context, userID, roomID uuid.UUID, kind, text string) (*models.ChatMessageDB, error) {
	if kind == "" {
		kind = models.MessageKindText
	}
	if kind != models.MessageKindText && kind != models.MessageKindAnnounce {
		return nil, ErrInvalidKind
	}
	if n := utf8.RuneCountInString(text); n == 0 || n > maxMessageLen {
		return nil, invalid("text must be 1-4000 characters")
	}

	var msg *models.ChatMessageDB
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		ok, err := s.reader.IsMember(ctx, roomID, userID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRoomNotFound
		}
		msg, err = s.writer.CreateMessage(ctx, roomID, userID, kind, text)
		return err
	})
	if err != nil {
		logFailure("failed to send message", err, "userID", userID, "roomID", roomID)
		return nil, err
	}

	s.publisher.Publish(ctx, models.EventChatMessageSent, userID, roomID)
	return msg, nil
}
