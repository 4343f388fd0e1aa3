package services

//go:generate mockgen -source=dogs.go -destination=dogs_mock.go -package=services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sbilibin2017/psiarze/internal/models"
	"github.com/sbilibin2017/psiarze/internal/repositories"
)

const (
	maxDogNameLen  = 80
	maxDogBreedLen = 120
)

// DogReader defines read operations for dogs.
type DogReader interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.DogDB, error)
	GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*models.DogDB, error)
}

// DogWriter defines write operations for dogs.
type DogWriter interface {
	Create(ctx context.Context, ownerID uuid.UUID, in models.DogInput) (*models.DogDB, error)
	Update(ctx context.Context, dog *models.DogDB) (*models.DogDB, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// DogService manages the dogs of their owners.
type DogService struct {
	tx     Transactor
	reader DogReader
	writer DogWriter
}

// NewDogService creates a new DogService.
func NewDogService(tx Transactor, reader DogReader, writer DogWriter) *DogService {
	return &DogService{tx: tx, reader: reader, writer: writer}
}

// ListMine returns the owner's dogs, newest first.
func (s *DogService) ListMine(ctx context.Context, ownerID uuid.UUID) ([]models.DogDB, error) {
	var dogs []models.DogDB
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		dogs, err = s.reader.ListByOwner(ctx, ownerID)
		return err
	})
	if err != nil {
		logFailure("failed to list dogs", err, "ownerID", ownerID)
		return nil, err
	}
	return dogs, nil
}

// Create adds a dog for ownerID.
func (s *DogService) Create(ctx context.Context, ownerID uuid.UUID, in models.DogInput) (*models.DogDB, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	if err := validateDog(in.Name, in.Breed, in.Age, in.Weight); err != nil {
		return nil, err
	}

	var dog *models.DogDB
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		dog, err = s.writer.Create(ctx, ownerID, in)
		return err
	})
	if err != nil {
		logFailure("failed to create dog", err, "ownerID", ownerID)
		return nil, err
	}
	return dog, nil
}

// Update applies patch to the owner's dog. Nil patch fields are left unchanged.
func (s *DogService) Update(ctx context.Context, ownerID, dogID uuid.UUID, patch models.DogPatch) (*models.DogDB, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if patch.Breed != nil {
		breed := strings.TrimSpace(*patch.Breed)
		patch.Breed = &breed
	}

	var dog *models.DogDB
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		current, err := s.reader.GetOwned(ctx, ownerID, dogID)
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDogNotFound
		}
		if err != nil {
			return err
		}

		patch.Apply(current)
		if err := validateDog(current.Name, current.Breed, current.Age, current.Weight); err != nil {
			return err
		}

		dog, err = s.writer.Update(ctx, current)
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDogNotFound
		}
		return err
	})
	if err != nil {
		logFailure("failed to update dog", err, "ownerID", ownerID, "dogID", dogID)
		return nil, err
	}
	return dog, nil
}

// Delete removes the owner's dog.
func (s *DogService) Delete(ctx context.Context, ownerID, dogID uuid.UUID) error {
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		err := s.writer.Delete(ctx, ownerID, dogID)
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDogNotFound
		}
		return err
	})
	if err != nil {
		logFailure("failed to delete dog", err, "ownerID", ownerID, "dogID", dogID)
		return err
	}
	return nil
}

func validateDog(name, breed string, age *int, weight *float64) error {
	if n := utf8.RuneCountInString(name); n < 1 || n > maxDogNameLen {
		return invalid("name must be 1-80 characters")
	}
	if utf8.RuneCountInString(breed) > maxDogBreedLen {
		return invalid("breed must be at most 120 characters")
	}
	if age != nil && *age < 0 {
		return invalid("age must not be negative")
	}
	if weight != nil && *weight < 0 {
		return invalid("weight must not be negative")
	}
	return nil
}
