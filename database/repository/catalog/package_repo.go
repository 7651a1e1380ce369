package catalog

import (
	"context"
	"strings"
	"time"

	"lstours/database"
	"lstours/models"
)

// MemoryPackageRepo serves packages from the fixed dataset.
type MemoryPackageRepo struct {
	data    *database.Dataset
	latency time.Duration
}

// NewMemoryPackageRepo builds a package repository over the dataset with the
// given simulated fetch latency.
func NewMemoryPackageRepo(data *database.Dataset, latency time.Duration) *MemoryPackageRepo {
	return &MemoryPackageRepo{data: data, latency: latency}
}

func (r *MemoryPackageRepo) GetAll(ctx context.Context) ([]models.TourPackage, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	out := make([]models.TourPackage, len(r.data.Packages))
	copy(out, r.data.Packages)
	return out, nil
}

func (r *MemoryPackageRepo) GetBySlug(ctx context.Context, slug string) (*models.TourPackage, error) {
	if err := simulateLatency(ctx, lookupLatency(r.latency)); err != nil {
		return nil, err
	}
	for i := range r.data.Packages {
		if r.data.Packages[i].Slug == slug {
			pkg := r.data.Packages[i]
			return &pkg, nil
		}
	}
	return nil, nil
}

func (r *MemoryPackageRepo) GetFeatured(ctx context.Context) ([]models.TourPackage, error) {
	if err := simulateLatency(ctx, lookupLatency(r.latency)); err != nil {
		return nil, err
	}
	var out []models.TourPackage
	for _, pkg := range r.data.Packages {
		if pkg.Featured {
			out = append(out, pkg)
		}
	}
	return out, nil
}

func (r *MemoryPackageRepo) GetByRegion(ctx context.Context, region string) ([]models.TourPackage, error) {
	if err := simulateLatency(ctx, lookupLatency(r.latency)); err != nil {
		return nil, err
	}
	needle := strings.ToLower(region)
	var out []models.TourPackage
	for _, pkg := range r.data.Packages {
		for _, r := range pkg.Regions {
			if strings.Contains(strings.ToLower(r), needle) {
				out = append(out, pkg)
				break
			}
		}
	}
	return out, nil
}
