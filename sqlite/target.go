package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/recontact"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ recontact.TargetService = (*TargetService)(nil)

// TargetService implements recontact.TargetService using SQLite.
type TargetService struct {
	db *DB
}

// NewTargetService creates a new TargetService.
func NewTargetService(db *DB) *TargetService {
	return &TargetService{db: db}
}

// CreateTarget creates a new target.
func (s *TargetService) CreateTarget(ctx context.Context, target *recontact.Target) error {
	if err := target.Validate(); err != nil {
		return err
	}

	target.ID = uuid.New().String()
	now := time.Now().UTC()
	target.CreatedAt = now
	target.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO targets (id, name, url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, target.ID, target.Name, target.URL,
		target.CreatedAt.Format(time.RFC3339), target.UpdatedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return recontact.Errorf(recontact.ECONFLICT, "target %q already exists", target.Name)
	}
	return err
}

// FindTargetByID retrieves a target by ID.
func (s *TargetService) FindTargetByID(ctx context.Context, id string) (*recontact.Target, error) {
	return s.findTarget(ctx, "id = ?", id)
}

// FindTargetByName retrieves a target by name.
func (s *TargetService) FindTargetByName(ctx context.Context, name string) (*recontact.Target, error) {
	return s.findTarget(ctx, "name = ?", name)
}

func (s *TargetService) findTarget(ctx context.Context, where string, arg any) (*recontact.Target, error) {
	var target recontact.Target
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, url, created_at, updated_at
		FROM targets
		WHERE `+where,
		arg).Scan(&target.ID, &target.Name, &target.URL, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, recontact.Errorf(recontact.ENOTFOUND, "target not found")
	}
	if err != nil {
		return nil, err
	}

	if target.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if target.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &target, nil
}

// FindTargets retrieves targets matching the filter.
func (s *TargetService) FindTargets(ctx context.Context, filter recontact.TargetFilter) ([]*recontact.Target, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, url, created_at, updated_at FROM targets WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []*recontact.Target
	for rows.Next() {
		var target recontact.Target
		var createdAt, updatedAt string

		if err := rows.Scan(&target.ID, &target.Name, &target.URL, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if target.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if target.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		targets = append(targets, &target)
	}

	return targets, rows.Err()
}

// UpdateTarget updates an existing target.
func (s *TargetService) UpdateTarget(ctx context.Context, id string, upd recontact.TargetUpdate) (*recontact.Target, error) {
	target, err := s.FindTargetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		target.Name = *upd.Name
	}
	if upd.URL != nil {
		target.URL = *upd.URL
	}

	if err := target.Validate(); err != nil {
		return nil, err
	}

	target.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE targets
		SET name = ?, url = ?, updated_at = ?
		WHERE id = ?
	`, target.Name, target.URL, target.UpdatedAt.Format(time.RFC3339), id)

	if isUniqueViolation(err) {
		return nil, recontact.Errorf(recontact.ECONFLICT, "target %q already exists", target.Name)
	}
	if err != nil {
		return nil, err
	}

	return target, nil
}

// DeleteTarget permanently removes a target. Associated records are
// removed by the ON DELETE CASCADE constraint.
func (s *TargetService) DeleteTarget(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM targets WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return recontact.Errorf(recontact.ENOTFOUND, "target not found")
	}

	return nil
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
