package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/psiarze/internal/models"
)

// DiscoverLimit caps the number of profiles returned by Discover.
const DiscoverLimit = 50

// UserService handles user discovery.
type UserService struct {
	tx     Transactor
	reader UserReader
}

// NewUserService creates a new UserService.
func NewUserService(tx Transactor, reader UserReader) *UserService {
	return &UserService{tx: tx, reader: reader}
}

// Discover returns up to DiscoverLimit other users whose username contains search.
func (s *UserService) Discover(ctx context.Context, userID uuid.UUID, search string) ([]models.UserProfile, error) {
	search = strings.TrimSpace(search)

	var profiles []models.UserProfile
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		profiles, err = s.reader.Search(ctx, userID, search, DiscoverLimit)
		return err
	})
	if err != nil {
		logFailure("failed to discover users", err, "userID", userID, "search", search)
		return nil, err
	}
	return profiles, nil
}
