package handlers

//go:generate mockgen -source=dogs.go -destination=dogs_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/psiarze/internal/models"
	"github.com/sbilibin2017/psiarze/internal/services"
)

// DogLister lists the caller's dogs.
type DogLister interface {
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]models.DogDB, error)
}

// DogCreator adds a dog.
type DogCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, in models.DogInput) (*models.DogDB, error)
}

// DogUpdater changes a dog.
type DogUpdater interface {
	Update(ctx context.Context, ownerID, dogID uuid.UUID, patch models.DogPatch) (*models.DogDB, error)
}

// DogDeleter removes a dog.
type DogDeleter interface {
	Delete(ctx context.Context, ownerID, dogID uuid.UUID) error
}

// DogRequest represents the JSON body for creating a dog
// swagger:model DogRequest
type DogRequest struct {
	// required: true
	// default: Rex
	Name string `json:"name"`
	// default: Beagle
	Breed  string   `json:"breed"`
	Age    *int     `json:"age"`
	Weight *float64 `json:"weight"`
}

// DogUpdateRequest represents the JSON body for a partial dog update.
// Omitted or null fields are left unchanged.
// swagger:model DogUpdateRequest
type DogUpdateRequest struct {
	Name   *string  `json:"name"`
	Breed  *string  `json:"breed"`
	Age    *int     `json:"age"`
	Weight *float64 `json:"weight"`
}

// NewListDogsHandler returns the caller's dogs, newest first.
// @Summary My dogs
// @Tags dogs
// @Produce json
// @Success 200 {array} models.DogDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /dogs/mine [get]
// @Security BearerAuth
func NewListDogsHandler(svc DogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		dogs, err := svc.ListMine(r.Context(), user.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dogs)
	}
}

// NewCreateDogHandler adds a dog to the caller's profile.
// @Summary Add a dog
// @Tags dogs
// @Accept json
// @Produce json
// @Param dog body handlers.DogRequest true "Dog"
// @Success 201 {object} models.DogDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /dogs/mine [post]
// @Security BearerAuth
func NewCreateDogHandler(svc DogCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req DogRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		dog, err := svc.Create(r.Context(), user.ID, models.DogInput{
			Name:   req.Name,
			Breed:  req.Breed,
			Age:    req.Age,
			Weight: req.Weight,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, dog)
	}
}

// NewUpdateDogHandler partially updates one of the caller's dogs.
// @Summary Update a dog
// @Tags dogs
// @Accept json
// @Produce json
// @Param id path string true "Dog ID"
// @Param dog body handlers.DogUpdateRequest true "Fields to change"
// @Success 200 {object} models.DogDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 404 {object} handlers.ErrorResponse "Dog not found"
// @Router /dogs/mine/{id} [put]
// @Security BearerAuth
func NewUpdateDogHandler(svc DogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		dogID, ok := pathID(w, r, "id", services.ErrDogNotFound)
		if !ok {
			return
		}

		var req DogUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		dog, err := svc.Update(r.Context(), user.ID, dogID, models.DogPatch{
			Name:   req.Name,
			Breed:  req.Breed,
			Age:    req.Age,
			Weight: req.Weight,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dog)
	}
}

// NewDeleteDogHandler removes one of the caller's dogs.
// @Summary Delete a dog
// @Tags dogs
// @Produce json
// @Param id path string true "Dog ID"
// @Success 200 {object} handlers.OKResponse
// @Failure 404 {object} handlers.ErrorResponse "Dog not found"
// @Router /dogs/mine/{id} [delete]
// @Security BearerAuth
func NewDeleteDogHandler(svc DogDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		dogID, ok := pathID(w, r, "id", services.ErrDogNotFound)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), user.ID, dogID); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, OKResponse{OK: true})
	}
}
