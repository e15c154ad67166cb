package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/recontact"
	"github.com/fwojciec/recontact/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestTargetService_CreateTarget(t *testing.T) {
	t.Parallel()

	t.Run("creates target with generated ID and timestamps", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTargetService(db)
		ctx := context.Background()

		target := &recontact.Target{
			Name: "example",
			URL:  "https://example.com/team",
		}

		err := svc.CreateTarget(ctx, target)
		require.NoError(t, err)

		assert.NotEmpty(t, target.ID, "ID should be generated")
		assert.False(t, target.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.False(t, target.UpdatedAt.IsZero(), "UpdatedAt should be set")
	})

	t.Run("returns error for invalid target", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTargetService(db)
		ctx := context.Background()

		target := &recontact.Target{} // missing required fields

		err := svc.CreateTarget(ctx, target)
		require.Error(t, err)
		assert.Equal(t, recontact.EINVALID, recontact.ErrorCode(err))
	})

	t.Run("returns ECONFLICT for duplicate name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTargetService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateTarget(ctx, &recontact.Target{Name: "example", URL: "https://example.com"}))

		err := svc.CreateTarget(ctx, &recontact.Target{Name: "example", URL: "https://example.org"})
		require.Error(t, err)
		assert.Equal(t, recontact.ECONFLICT, recontact.ErrorCode(err))
	})
}

func TestTargetService_FindTargetByID(t *testing.T) {
	t.Parallel()

	t.Run("returns target when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTargetService(db)
		ctx := context.Background()

		target := &recontact.Target{Name: "example", URL: "https://example.com/team"}
		require.NoError(t, svc.CreateTarget(ctx, target))

		found, err := svc.FindTargetByID(ctx, target.ID)
		require.NoError(t, err)
		assert.Equal(t, target.ID, found.ID)
		assert.Equal(t, target.Name, found.Name)
		assert.Equal(t, target.URL, found.URL)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTargetService(db)
		ctx := context.Background()

		_, err := svc.FindTargetByID(ctx, "missing")
		require.Error(t, err)
		assert.Equal(t, recontact.ENOTFOUND, recontact.ErrorCode(err))
	})
}

func TestTargetService_FindTargetByName(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewTargetService(db)
	ctx := context.Background()

	target := &recontact.Target{Name: "example", URL: "https://example.com"}
	require.NoError(t, svc.CreateTarget(ctx, target))

	found, err := svc.FindTargetByName(ctx, "example")
	require.NoError(t, err)
	assert.Equal(t, target.ID, found.ID)

	_, err = svc.FindTargetByName(ctx, "missing")
	assert.Equal(t, recontact.ENOTFOUND, recontact.ErrorCode(err))
}

func TestTargetService_FindTargets(t *testing.T) {
	t.Parallel()

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTargetService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateTarget(ctx, &recontact.Target{Name: "alpha", URL: "https://alpha.example.com"}))
		require.NoError(t, svc.CreateTarget(ctx, &recontact.Target{Name: "beta", URL: "https://beta.example.com"}))

		name := "alpha"
		targets, err := svc.FindTargets(ctx, recontact.TargetFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, targets, 1)
		assert.Equal(t, "alpha", targets[0].Name)
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTargetService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateTarget(ctx, &recontact.Target{Name: "alpha", URL: "https://alpha.example.com"}))
		require.NoError(t, svc.CreateTarget(ctx, &recontact.Target{Name: "beta", URL: "https://beta.example.com"}))

		targets, err := svc.FindTargets(ctx, recontact.TargetFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, targets, 1)
	})
}

func TestTargetService_UpdateTarget(t *testing.T) {
	t.Parallel()

	t.Run("updates fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTargetService(db)
		ctx := context.Background()

		target := &recontact.Target{Name: "example", URL: "https://example.com"}
		require.NoError(t, svc.CreateTarget(ctx, target))

		newURL := "https://example.com/contact"
		updated, err := svc.UpdateTarget(ctx, target.ID, recontact.TargetUpdate{URL: &newURL})
		require.NoError(t, err)
		assert.Equal(t, newURL, updated.URL)
		assert.Equal(t, "example", updated.Name)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTargetService(db)
		ctx := context.Background()

		name := "new-name"
		_, err := svc.UpdateTarget(ctx, "missing", recontact.TargetUpdate{Name: &name})
		assert.Equal(t, recontact.ENOTFOUND, recontact.ErrorCode(err))
	})
}

func TestTargetService_DeleteTarget(t *testing.T) {
	t.Parallel()

	t.Run("deletes target and cascades to records", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		targets := sqlite.NewTargetService(db)
		records := sqlite.NewRecordService(db)
		ctx := context.Background()

		target := &recontact.Target{Name: "example", URL: "https://example.com"}
		require.NoError(t, targets.CreateTarget(ctx, target))

		rec := testRecord(target.ID)
		require.NoError(t, records.CreateRecord(ctx, rec))

		require.NoError(t, targets.DeleteTarget(ctx, target.ID))

		_, err := targets.FindTargetByID(ctx, target.ID)
		assert.Equal(t, recontact.ENOTFOUND, recontact.ErrorCode(err))

		_, err = records.FindRecordByID(ctx, rec.ID)
		assert.Equal(t, recontact.ENOTFOUND, recontact.ErrorCode(err), "records cascade with the target")
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewTargetService(db)
		ctx := context.Background()

		err := svc.DeleteTarget(ctx, "missing")
		assert.Equal(t, recontact.ENOTFOUND, recontact.ErrorCode(err))
	})
}
