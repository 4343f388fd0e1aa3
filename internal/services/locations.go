package services

//go:generate mockgen -source=locations.go -destination=locations_mock.go -package=services

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/sbilibin2017/psiarze/internal/models"
)

// LocationReader defines read operations for location snapshots.
type LocationReader interface {
	LatestSharing(ctx context.Context, userIDs []uuid.UUID) ([]models.LocationView, error)
}

// LocationWriter defines write operations for location snapshots.
type LocationWriter interface {
	Insert(ctx context.Context, userID uuid.UUID, lat, lng float64, isSharing bool) (*models.LocationDB, error)
}

// LocationService shares users' locations with their friends.
type LocationService struct {
	tx     Transactor
	graph  FriendGraph
	reader LocationReader
	writer LocationWriter
}

// NewLocationService creates a new LocationService.
func NewLocationService(tx Transactor, graph FriendGraph, reader LocationReader, writer LocationWriter) *LocationService {
	return &LocationService{tx: tx, graph: graph, reader: reader, writer: writer}
}

// UpsertMine records a new snapshot for user. Earlier snapshots are kept; the
// newest one is the user's current location.
func (s *LocationService) UpsertMine(ctx context.Context, user *models.UserDB, lat, lng float64, isSharing bool) (*models.LocationView, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return nil, invalid("lat must be between -90 and 90")
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return nil, invalid("lng must be between -180 and 180")
	}

	var loc *models.LocationDB
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		loc, err = s.writer.Insert(ctx, user.ID, lat, lng, isSharing)
		return err
	})
	if err != nil {
		logFailure("failed to save location", err, "userID", user.ID)
		return nil, err
	}

	return &models.LocationView{
		UserID:    loc.UserID,
		Username:  user.Username,
		Lat:       loc.Lat,
		Lng:       loc.Lng,
		IsSharing: loc.IsSharing,
		CreatedAt: loc.CreatedAt,
	}, nil
}

// ListFriendLocations returns the current location of every friend who is sharing it.
func (s *LocationService) ListFriendLocations(ctx context.Context, userID uuid.UUID) ([]models.LocationView, error) {
	var views []models.LocationView
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		ids, err := s.graph.ListFriendIDs(ctx, userID)
		if err != nil {
			return err
		}
		views, err = s.reader.LatestSharing(ctx, ids)
		return err
	})
	if err != nil {
		logFailure("failed to list friend locations", err, "userID", userID)
		return nil, err
	}
	return views, nil
}

// GetFriendLocation returns friendID's current location. A friend whose newest
// snapshot is not shared has no location.
func (s *LocationService) GetFriendLocation(ctx context.Context, userID, friendID uuid.UUID) (*models.LocationView, error) {
	var view *models.LocationView
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		ok, err := s.graph.AreFriends(ctx, userID, friendID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFriends
		}

		views, err := s.reader.LatestSharing(ctx, []uuid.UUID{friendID})
		if err != nil {
			return err
		}
		if len(views) == 0 {
			return ErrNoLocation
		}
		view = &views[0]
		return nil
	})
	if err != nil {
		logFailure("failed to get friend location", err, "userID", userID, "friendID", friendID)
		return nil, err
	}
	return view, nil
}
