package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/waypost/api/internal/model"
)

// PlaceRepository defines the interface for place storage.
// CreateWithOwner and DeleteWithOwner are transactional: they update the
// place table and the creator's places set together or not at all.
type PlaceRepository interface {
	CreateWithOwner(ctx context.Context, place *model.Place) error
	GetByID(ctx context.Context, id string) (*model.Place, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*model.Place, error)
	Update(ctx context.Context, place *model.Place) error
	DeleteWithOwner(ctx context.Context, placeID, creatorID string) error
}

// ImageRemover removes stored place images
type ImageRemover interface {
	Remove(filename string) error
}

// PlaceService handles place operations
type PlaceService struct {
	placeRepo PlaceRepository
	userRepo  UserRepository
	geocoder  Geocoder
	images    ImageRemover
	logger    *slog.Logger
}

// NewPlaceService creates a new place service
func NewPlaceService(placeRepo PlaceRepository, userRepo UserRepository, geocoder Geocoder, images ImageRemover, logger *slog.Logger) *PlaceService {
	return &PlaceService{
		placeRepo: placeRepo,
		userRepo:  userRepo,
		geocoder:  geocoder,
		images:    images,
		logger:    logger,
	}
}

// GetByID retrieves a place by ID
func (s *PlaceService) GetByID(ctx context.Context, placeID string) (*model.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}
	return place, nil
}

// ListByCreator retrieves all places created by a user.
// A user with no places gets an empty list, not an error.
func (s *PlaceService) ListByCreator(ctx context.Context, userID string) ([]*model.Place, error) {
	return s.placeRepo.ListByCreator(ctx, userID)
}

// CreatePlaceRequest represents a place creation request
type CreatePlaceRequest struct {
	Title       string
	Description string
	Address     string
	Image       string
	CreatorID   string
}

// Create validates the request, resolves the address to coordinates and
// persists the place together with the creator's back-reference
func (s *PlaceService) Create(ctx context.Context, req CreatePlaceRequest) (*model.Place, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	address := strings.TrimSpace(req.Address)

	if err := validatePlaceFields(title, description); err != nil {
		return nil, err
	}
	if address == "" {
		return nil, ErrAddressRequired
	}

	// The creator must exist before we resolve the address; no point
	// spending a geocoding call on a request that cannot succeed
	creator, err := s.userRepo.GetByID(ctx, req.CreatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, ErrUserNotFound
	}

	location, err := s.geocoder.Resolve(ctx, address)
	if err != nil {
		return nil, err
	}

	place := &model.Place{
		Title:       title,
		Description: description,
		Address:     address,
		Location:    location,
		Image:       req.Image,
		Creator:     creator.ID,
	}

	if err := s.placeRepo.CreateWithOwner(ctx, place); err != nil {
		return nil, err
	}

	return place, nil
}

// UpdatePlaceRequest represents a place update request.
// Only title and description are editable; the address and its derived
// location are fixed at creation time.
type UpdatePlaceRequest struct {
	Title       string
	Description string
}

// Update updates a place's title and description. Only the creator may edit.
func (s *PlaceService) Update(ctx context.Context, placeID, userID string, req UpdatePlaceRequest) (*model.Place, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)

	if err := validatePlaceFields(title, description); err != nil {
		return nil, err
	}

	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}

	if place.Creator != userID {
		return nil, ErrNotPlaceOwner
	}

	place.Title = title
	place.Description = description

	if err := s.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}

	return place, nil
}

// Delete removes a place and the creator's back-reference. Only the creator
// may delete. The stored image is removed best-effort after the records are
// gone; a failed file removal never fails the request.
func (s *PlaceService) Delete(ctx context.Context, placeID, userID string) error {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return err
	}
	if place == nil {
		return ErrPlaceNotFound
	}

	if place.Creator != userID {
		return ErrNotPlaceOwner
	}

	if err := s.placeRepo.DeleteWithOwner(ctx, place.ID, place.Creator); err != nil {
		return err
	}

	if place.Image != "" && s.images != nil {
		if err := s.images.Remove(place.Image); err != nil {
			s.logger.Warn("failed to remove place image",
				"place_id", place.ID,
				"image", place.Image,
				"error", err,
			)
		}
	}

	return nil
}

// Length limits count runes, not bytes, so multibyte text is measured the
// way users see it.
func validatePlaceFields(title, description string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > model.MaxTitleLength {
		return ErrTitleTooLong
	}
	descLen := utf8.RuneCountInString(description)
	if descLen < model.MinDescriptionLength {
		return ErrDescriptionTooShort
	}
	if descLen > model.MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
