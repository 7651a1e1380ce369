package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lstours/models"
)

type stubPackageRepo struct {
	items   []models.TourPackage
	err     error
	getAlls int
}

func (r *stubPackageRepo) GetAll(ctx context.Context) ([]models.TourPackage, error) {
	r.getAlls++
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

func (r *stubPackageRepo) GetBySlug(ctx context.Context, slug string) (*models.TourPackage, error) {
	for i := range r.items {
		if r.items[i].Slug == slug {
			pkg := r.items[i]
			return &pkg, nil
		}
	}
	return nil, nil
}

func (r *stubPackageRepo) GetFeatured(ctx context.Context) ([]models.TourPackage, error) {
	var out []models.TourPackage
	for _, pkg := range r.items {
		if pkg.Featured {
			out = append(out, pkg)
		}
	}
	return out, nil
}

func (r *stubPackageRepo) GetByRegion(ctx context.Context, region string) ([]models.TourPackage, error) {
	return nil, nil
}

type stubDestinationRepo struct {
	items []models.Destination
	err   error
}

func (r *stubDestinationRepo) GetAll(ctx context.Context) ([]models.Destination, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

func (r *stubDestinationRepo) GetBySlug(ctx context.Context, slug string) (*models.Destination, error) {
	return nil, nil
}

func (r *stubDestinationRepo) GetByRegion(ctx context.Context, region string) ([]models.Destination, error) {
	return nil, nil
}

func newTestService(repo *stubPackageRepo, destRepo *stubDestinationRepo) *DefaultCatalogService {
	if destRepo == nil {
		destRepo = &stubDestinationRepo{}
	}
	return NewDefaultCatalogService(repo, destRepo, nil, zap.NewNop())
}

func TestCatalogService_PackagesLoadOnce(t *testing.T) {
	repo := &stubPackageRepo{items: enginePackages()}
	svc := newTestService(repo, nil)

	first, err := svc.Packages(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 5)

	second, err := svc.Packages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.getAlls, "the collection loads exactly once")
}

func TestCatalogService_FailedLoadLeavesCollectionEmpty(t *testing.T) {
	repo := &stubPackageRepo{err: errors.New("boom")}
	svc := newTestService(repo, nil)

	_, err := svc.Packages(context.Background())
	require.Error(t, err)

	// The failure is terminal: later reads see an empty collection and do
	// not hit the repository again.
	items, err := svc.Packages(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, repo.getAlls)

	statuses := svc.Statuses()
	assert.Equal(t, "failed: boom", statuses[CollectionPackages])
	assert.Equal(t, "idle", statuses[CollectionDestinations])
}

func TestCatalogService_FilteredPackages(t *testing.T) {
	repo := &stubPackageRepo{items: enginePackages()}
	svc := newTestService(repo, nil)

	filters := models.DefaultFilterState()
	filters.Interests = []string{"wildlife"}

	out, err := svc.FilteredPackages(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "safari-week", out[0].Slug)
}

func TestCatalogService_DestinationsLoadIndependently(t *testing.T) {
	repo := &stubPackageRepo{items: enginePackages()}
	destRepo := &stubDestinationRepo{err: errors.New("dead link")}
	svc := newTestService(repo, destRepo)

	_, err := svc.Packages(context.Background())
	require.NoError(t, err)

	_, err = svc.Destinations(context.Background())
	require.Error(t, err)

	statuses := svc.Statuses()
	assert.Equal(t, "succeeded", statuses[CollectionPackages])
	assert.Equal(t, "failed: dead link", statuses[CollectionDestinations])
}

func TestViewCacheKey_DistinctStatesDistinctKeys(t *testing.T) {
	a := models.DefaultFilterState()
	b := models.DefaultFilterState()
	assert.Equal(t, viewCacheKey(a), viewCacheKey(b))

	b.Regions = []string{"hill-country"}
	assert.NotEqual(t, viewCacheKey(a), viewCacheKey(b))

	c := b
	c.SortBy = models.SortPriceLow
	assert.NotEqual(t, viewCacheKey(b), viewCacheKey(c))
}
