package services

//go:generate mockgen -source=friends.go -destination=friends_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/psiarze/internal/models"
	"github.com/sbilibin2017/psiarze/internal/repositories"
)

// FriendRequestReader defines read operations for friend requests.
type FriendRequestReader interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.FriendRequestDB, error)
	FindBetween(ctx context.Context, a, b uuid.UUID) (*models.FriendRequestDB, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.FriendRequestDB, error)
}

// FriendRequestWriter defines write operations for friend requests.
type FriendRequestWriter interface {
	Create(ctx context.Context, fromUserID, toUserID uuid.UUID) (*models.FriendRequestDB, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.FriendRequestDB, error)
}

// FriendGraph answers friendship questions. Two users are friends when an
// accepted request names both of them, in either direction.
type FriendGraph interface {
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)
	ListFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// FriendService handles friend requests and friend lists.
type FriendService struct {
	tx        Transactor
	users     UserReader
	reader    FriendRequestReader
	writer    FriendRequestWriter
	graph     FriendGraph
	publisher *ActivityPublisher
}

// NewFriendService creates a new FriendService.
func NewFriendService(
	tx Transactor,
	users UserReader,
	reader FriendRequestReader,
	writer FriendRequestWriter,
	graph FriendGraph,
	publisher *ActivityPublisher,
) *FriendService {
	return &FriendService{
		tx:        tx,
		users:     users,
		reader:    reader,
		writer:    writer,
		graph:     graph,
		publisher: publisher,
	}
}

// SendRequest creates a pending request from fromID to toID. Any earlier request
// between the two users, in either direction and with any status, blocks a new one.
func (s *FriendService) SendRequest(ctx context.Context, fromID, toID uuid.UUID) (*models.FriendRequestView, error) {
	if fromID == toID {
		return nil, ErrSelfRequest
	}

	var view *models.FriendRequestView
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetByID(ctx, toID); errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		} else if err != nil {
			return err
		}

		if _, err := s.reader.FindBetween(ctx, fromID, toID); err == nil {
			return ErrDuplicateRequest
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		req, err := s.writer.Create(ctx, fromID, toID)
		if repositories.IsUniqueViolation(err, repositories.ConstraintFriendRequestPair) {
			return ErrDuplicateRequest
		}
		if err != nil {
			return err
		}

		views, err := s.annotate(ctx, []models.FriendRequestDB{*req})
		if err != nil {
			return err
		}
		view = &views[0]
		return nil
	})
	if err != nil {
		logFailure("failed to send friend request", err, "from", fromID, "to", toID)
		return nil, err
	}

	s.publisher.Publish(ctx, models.EventFriendRequestSent, fromID, toID)
	return view, nil
}

// Accept marks a pending request addressed to callerID as accepted.
func (s *FriendService) Accept(ctx context.Context, callerID, requestID uuid.UUID) (*models.FriendRequestView, error) {
	view, err := s.respond(ctx, callerID, requestID, models.FriendRequestAccepted)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, models.EventFriendRequestAccepted, callerID, view.FromUserID)
	return view, nil
}

// Reject marks a pending request addressed to callerID as rejected.
func (s *FriendService) Reject(ctx context.Context, callerID, requestID uuid.UUID) (*models.FriendRequestView, error) {
	view, err := s.respond(ctx, callerID, requestID, models.FriendRequestRejected)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, models.EventFriendRequestRejected, callerID, view.FromUserID)
	return view, nil
}

func (s *FriendService) respond(ctx context.Context, callerID, requestID uuid.UUID, status string) (*models.FriendRequestView, error) {
	var view *models.FriendRequestView
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		req, err := s.reader.GetByIDForUpdate(ctx, requestID)
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRequestNotFound
		}
		if err != nil {
			return err
		}
		// only the recipient may answer; to anyone else the request does not exist
		if req.ToUserID != callerID {
			return ErrRequestNotFound
		}
		if req.Status != models.FriendRequestPending {
			return ErrRequestNotPending
		}

		updated, err := s.writer.UpdateStatus(ctx, requestID, status)
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRequestNotPending
		}
		if err != nil {
			return err
		}

		views, err := s.annotate(ctx, []models.FriendRequestDB{*updated})
		if err != nil {
			return err
		}
		view = &views[0]
		return nil
	})
	if err != nil {
		logFailure("failed to answer friend request", err, "caller", callerID, "request", requestID, "status", status)
		return nil, err
	}
	return view, nil
}

// ListRequests returns every request sent or received by userID, newest first.
func (s *FriendService) ListRequests(ctx context.Context, userID uuid.UUID) ([]models.FriendRequestView, error) {
	var views []models.FriendRequestView
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		reqs, err := s.reader.ListForUser(ctx, userID)
		if err != nil {
			return err
		}
		views, err = s.annotate(ctx, reqs)
		return err
	})
	if err != nil {
		logFailure("failed to list friend requests", err, "userID", userID)
		return nil, err
	}
	return views, nil
}

// ListFriends returns the profiles of userID's friends sorted by username.
func (s *FriendService) ListFriends(ctx context.Context, userID uuid.UUID) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		ids, err := s.graph.ListFriendIDs(ctx, userID)
		if err != nil {
			return err
		}
		profiles, err = s.users.ListProfiles(ctx, ids)
		return err
	})
	if err != nil {
		logFailure("failed to list friends", err, "userID", userID)
		return nil, err
	}
	return profiles, nil
}

// annotate attaches both usernames to each request using one lookup.
func (s *FriendService) annotate(ctx context.Context, reqs []models.FriendRequestDB) ([]models.FriendRequestView, error) {
	views := make([]models.FriendRequestView, 0, len(reqs))
	if len(reqs) == 0 {
		return views, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(reqs)*2)
	ids := make([]uuid.UUID, 0, len(reqs)*2)
	for _, r := range reqs {
		for _, id := range []uuid.UUID{r.FromUserID, r.ToUserID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	names, err := s.users.GetUsernames(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, r := range reqs {
		views = append(views, models.FriendRequestView{
			FriendRequestDB: r,
			FromUsername:    names[r.FromUserID],
			ToUsername:      names[r.ToUserID],
		})
	}
	return views, nil
}
