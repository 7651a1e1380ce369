// Package catalog provides read-only repositories over the fixed dataset.
// There is no real backend: implementations serve from memory and simulate
// fetch latency so the service behaves like a remote data source.
package catalog

import (
	"context"
	"time"

	"lstours/models"
)

// PackageRepository defines read access to tour packages.
type PackageRepository interface {
	// GetAll returns every package.
	GetAll(ctx context.Context) ([]models.TourPackage, error)
	// GetBySlug returns the package with the given slug, or nil when absent.
	GetBySlug(ctx context.Context, slug string) (*models.TourPackage, error)
	// GetFeatured returns packages flagged as featured.
	GetFeatured(ctx context.Context) ([]models.TourPackage, error)
	// GetByRegion returns packages whose regions contain the given region
	// name (case-insensitive substring match).
	GetByRegion(ctx context.Context, region string) ([]models.TourPackage, error)
}

// DestinationRepository defines read access to destinations.
type DestinationRepository interface {
	GetAll(ctx context.Context) ([]models.Destination, error)
	GetBySlug(ctx context.Context, slug string) (*models.Destination, error)
	GetByRegion(ctx context.Context, region string) ([]models.Destination, error)
}

// ContentRepository defines read access to the static page content.
type ContentRepository interface {
	Services(ctx context.Context) ([]models.TravelService, error)
	Testimonials(ctx context.Context) ([]models.Testimonial, error)
}

// simulateLatency blocks for d, honoring context cancellation. A zero or
// negative d returns immediately.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// lookupLatency is the shorter delay used for single-record lookups,
// mirroring the full-collection vs lookup split of the mock service layer.
func lookupLatency(d time.Duration) time.Duration {
	return d * 2 / 3
}
