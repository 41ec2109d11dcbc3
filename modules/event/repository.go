package event

import (
	"errors"
	"fmt"

	domain "github.com/example/event-planner/domain/event"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no event matches both the ID and the owner.
// An event owned by somebody else is reported exactly the same way, so the
// existence of other users' records never leaks.
var ErrNotFound = errors.New("event not found")

// Repository handles event persistence using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new event Repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the events table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&domain.Event{})
}

// Create saves a new event.
func (r *Repository) Create(event *domain.Event) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// FindByOwner returns all events for the owner, ordered by ascending date.
// An empty result is not an error.
func (r *Repository) FindByOwner(ownerID string) ([]*domain.Event, error) {
	var events []*domain.Event
	if err := r.db.Where("owner_id = ?", ownerID).Order("date asc").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// FindOwned resolves an event by ID scoped to its owner. Every read and
// mutation goes through this single accessor so the ownership check cannot
// drift between operations.
func (r *Repository) FindOwned(ownerID, id string) (*domain.Event, error) {
	var event domain.Event
	err := r.db.First(&event, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return &event, nil
}

// Save persists the full state of an already-resolved event.
func (r *Repository) Save(event *domain.Event) error {
	if err := r.db.Save(event).Error; err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

// DeleteOwned removes an event scoped to its owner. Deleting an event that
// does not exist (or is owned by somebody else) returns ErrNotFound.
func (r *Repository) DeleteOwned(ownerID, id string) error {
	result := r.db.Delete(&domain.Event{}, "id = ? AND owner_id = ?", id, ownerID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
