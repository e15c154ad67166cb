package recontact

import (
	"context"
	"time"
)

// Target represents a registered reconnaissance target.
type Target struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the target contains invalid fields.
func (t *Target) Validate() error {
	if t.Name == "" {
		return Errorf(EINVALID, "target name required")
	}
	if t.URL == "" {
		return Errorf(EINVALID, "target URL required")
	}
	return nil
}

// TargetService represents a service for managing targets.
type TargetService interface {
	// CreateTarget creates a new target.
	// Returns ECONFLICT if a target with the same name exists.
	CreateTarget(ctx context.Context, target *Target) error

	// FindTargetByID retrieves a target by ID.
	// Returns ENOTFOUND if the target does not exist.
	FindTargetByID(ctx context.Context, id string) (*Target, error)

	// FindTargetByName retrieves a target by name.
	// Returns ENOTFOUND if the target does not exist.
	FindTargetByName(ctx context.Context, name string) (*Target, error)

	// FindTargets retrieves targets matching the filter.
	FindTargets(ctx context.Context, filter TargetFilter) ([]*Target, error)

	// UpdateTarget updates an existing target.
	// Returns ENOTFOUND if the target does not exist.
	UpdateTarget(ctx context.Context, id string, upd TargetUpdate) (*Target, error)

	// DeleteTarget permanently removes a target and all associated records.
	// Returns ENOTFOUND if the target does not exist.
	DeleteTarget(ctx context.Context, id string) error
}

// TargetFilter represents a filter for FindTargets.
type TargetFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// TargetUpdate represents fields that can be updated on a target.
type TargetUpdate struct {
	Name *string `json:"name"`
	URL  *string `json:"url"`
}
