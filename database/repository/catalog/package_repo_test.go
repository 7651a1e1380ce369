package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lstours/database"
)

func TestMemoryPackageRepo_GetAll(t *testing.T) {
	repo := NewMemoryPackageRepo(database.Load(), 0)

	items, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, items)

	// Callers get a copy: mutating the result never touches the dataset.
	original := items[0].Title
	items[0].Title = "mutated"

	again, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, original, again[0].Title)
}

func TestMemoryPackageRepo_GetBySlug(t *testing.T) {
	repo := NewMemoryPackageRepo(database.Load(), 0)

	pkg, err := repo.GetBySlug(context.Background(), "hill-country-tea-trails")
	require.NoError(t, err)
	require.NotNil(t, pkg)
	assert.Equal(t, "hill-country-tea-trails", pkg.Slug)
	assert.NotEmpty(t, pkg.ItineraryDays)

	// An unknown slug is not an error, just absent.
	pkg, err = repo.GetBySlug(context.Background(), "no-such-tour")
	require.NoError(t, err)
	assert.Nil(t, pkg)
}

func TestMemoryPackageRepo_GetFeatured(t *testing.T) {
	repo := NewMemoryPackageRepo(database.Load(), 0)

	items, err := repo.GetFeatured(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, pkg := range items {
		assert.True(t, pkg.Featured, "package %s should be featured", pkg.Slug)
	}
}

func TestMemoryPackageRepo_GetByRegion(t *testing.T) {
	repo := NewMemoryPackageRepo(database.Load(), 0)

	items, err := repo.GetByRegion(context.Background(), "hill")
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, pkg := range items {
		assert.Contains(t, pkg.Regions, "Hill Country")
	}

	upper, err := repo.GetByRegion(context.Background(), "HILL COUNTRY")
	require.NoError(t, err)
	assert.Len(t, upper, len(items), "region matching is case-insensitive")

	none, err := repo.GetByRegion(context.Background(), "atlantis")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryPackageRepo_LatencyHonorsContext(t *testing.T) {
	repo := NewMemoryPackageRepo(database.Load(), 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := repo.GetAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)

	_, err = repo.GetBySlug(ctx, "hill-country-tea-trails")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryDestinationRepo_GetBySlug(t *testing.T) {
	repo := NewMemoryDestinationRepo(database.Load(), 0)

	dest, err := repo.GetBySlug(context.Background(), "sigiriya")
	require.NoError(t, err)
	require.NotNil(t, dest)
	assert.Equal(t, "sigiriya", dest.Slug)

	dest, err = repo.GetBySlug(context.Background(), "no-such-place")
	require.NoError(t, err)
	assert.Nil(t, dest)
}

func TestMemoryContentRepo(t *testing.T) {
	repo := NewMemoryContentRepo(database.Load(), 0)

	services, err := repo.Services(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, services)

	testimonials, err := repo.Testimonials(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, testimonials)
}
