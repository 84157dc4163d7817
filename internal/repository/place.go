package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/waypost/api/internal/database"
	"github.com/waypost/api/internal/model"
)

// PlaceRepository handles place data access
type PlaceRepository struct {
	db database.Database
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(db database.Database) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// newPlaceID generates a record id usable in both statements of a creation
// batch. Dashes are stripped so the id needs no escaping in SurrealQL.
func newPlaceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// CreateWithOwner creates a place and appends its id to the creator's places
// set in one transaction. Both writes commit together or not at all. The id
// is generated client-side so the two statements can reference the same
// record before it exists.
func (r *PlaceRepository) CreateWithOwner(ctx context.Context, place *model.Place) error {
	pid := newPlaceID()
	placeRef := "place:" + pid

	createQuery := `
		CREATE type::thing('place', $pid) CONTENT {
			title: $title,
			description: $description,
			address: $address,
			location: { lat: $lat, lng: $lng },
			image: $image,
			creator: $creator,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	createVars := map[string]interface{}{
		"pid":         pid,
		"title":       place.Title,
		"description": place.Description,
		"address":     place.Address,
		"lat":         place.Location.Lat,
		"lng":         place.Location.Lng,
		"image":       place.Image,
		"creator":     place.Creator,
	}

	linkQuery := `
		UPDATE type::record($uid) SET
			places += $place_ref,
			updated_on = time::now()
	`
	linkVars := map[string]interface{}{
		"uid":       place.Creator,
		"place_ref": placeRef,
	}

	batch := database.NewAtomicBatch()
	batch.Add(createQuery, createVars)
	batch.Add(linkQuery, linkVars)

	if err := batch.Execute(ctx, r.db); err != nil {
		return err
	}
	place.ID = placeRef

	// Re-read so the caller sees the store-assigned timestamps
	created, err := r.GetByID(ctx, placeRef)
	if err != nil {
		return err
	}
	if created == nil {
		return database.ErrNotFound
	}
	place.CreatedOn = created.CreatedOn
	place.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a place by ID. Returns (nil, nil) when not found.
func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*model.Place, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parsePlaceRecord(result)
}

// ListByCreator retrieves all places created by the given user, oldest first.
// A user with no places yields an empty slice, not an error.
func (r *PlaceRepository) ListByCreator(ctx context.Context, creatorID string) ([]*model.Place, error) {
	query := `SELECT * FROM place WHERE creator = $creator ORDER BY created_on ASC`
	vars := map[string]interface{}{"creator": creatorID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Place{}, nil
	}

	places := make([]*model.Place, 0, len(records))
	for _, record := range records {
		place, err := parsePlaceRecord(record)
		if err != nil {
			return nil, err
		}
		places = append(places, place)
	}

	return places, nil
}

// Update updates a place's editable fields and refreshes the caller's copy
// with the store-assigned update timestamp
func (r *PlaceRepository) Update(ctx context.Context, place *model.Place) error {
	query := `
		UPDATE type::record($id) SET
			title = $title,
			description = $description,
			updated_on = time::now()
	`

	vars := map[string]interface{}{
		"id":          place.ID,
		"title":       place.Title,
		"description": place.Description,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}

	updated, err := parsePlaceRecord(result)
	if err != nil {
		return err
	}
	place.CreatedOn = updated.CreatedOn
	place.UpdatedOn = updated.UpdatedOn
	return nil
}

// DeleteWithOwner deletes a place and removes its id from the creator's
// places set in one transaction. Both writes commit together or not at all.
func (r *PlaceRepository) DeleteWithOwner(ctx context.Context, placeID, creatorID string) error {
	deleteQuery := `DELETE type::record($id)`
	deleteVars := map[string]interface{}{
		"id": placeID,
	}

	unlinkQuery := `
		UPDATE type::record($uid) SET
			places -= $place_ref,
			updated_on = time::now()
	`
	unlinkVars := map[string]interface{}{
		"uid":       creatorID,
		"place_ref": placeID,
	}

	batch := database.NewAtomicBatch()
	batch.Add(deleteQuery, deleteVars)
	batch.Add(unlinkQuery, unlinkVars)

	return batch.Execute(ctx, r.db)
}

// parsePlaceRecord converts a raw SurrealDB record into a model.Place
func parsePlaceRecord(result interface{}) (*model.Place, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Unwrap the response wrapper when present
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	place := &model.Place{
		ID:          convertSurrealID(data["id"]),
		Title:       getString(data, "title"),
		Description: getString(data, "description"),
		Address:     getString(data, "address"),
		Image:       getString(data, "image"),
		Creator:     convertSurrealID(data["creator"]),
		CreatedOn:   parseTime(data["created_on"]),
		UpdatedOn:   parseTime(data["updated_on"]),
	}

	if loc, ok := data["location"].(map[string]interface{}); ok {
		place.Location = model.Location{
			Lat: getFloat(loc, "lat"),
			Lng: getFloat(loc, "lng"),
		}
	}

	return place, nil
}
